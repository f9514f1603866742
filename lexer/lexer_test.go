package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type tokenCase struct {
	Input    string
	Expected []Kind
}

func TestScanTokens_Punctuation(t *testing.T) {
	tests := []tokenCase{
		{
			Input:    "(){},.-+;*/",
			Expected: []Kind{LeftParen, RightParen, LeftBrace, RightBrace, Comma, Dot, Minus, Plus, Semicolon, Star, Slash, Eof},
		},
		{
			Input:    "! != = == < <= > >=",
			Expected: []Kind{Bang, BangEqual, Equal, EqualEqual, Less, LessEqual, Greater, GreaterEqual, Eof},
		},
		{
			Input:    "// a whole line is a comment\n+",
			Expected: []Kind{Plus, Eof},
		},
	}

	for _, tc := range tests {
		tokens, err := New(tc.Input).ScanTokens()
		require.NoError(t, err)
		kinds := make([]Kind, len(tokens))
		for i, tok := range tokens {
			kinds[i] = tok.Kind
		}
		assert.Equal(t, tc.Expected, kinds, "input: %q", tc.Input)
	}
}

func TestScanTokens_Literals(t *testing.T) {
	tokens, err := New(`var x = "hi there"; var y = 12.5;`).ScanTokens()
	require.NoError(t, err)
	require.Len(t, tokens, 11)
	assert.Equal(t, String, tokens[3].Kind)
	assert.Equal(t, "hi there", tokens[3].Literal)
	assert.Equal(t, Number, tokens[8].Kind)
	assert.Equal(t, 12.5, tokens[8].Literal)
}

func TestScanTokens_Keywords(t *testing.T) {
	tokens, err := New("and class else false fun for if nil or print return super this true var while").ScanTokens()
	require.NoError(t, err)
	want := []Kind{And, Class, Else, False, Fun, For, If, Nil, Or, Print, Return, Super, This, True, Var, While, Eof}
	require.Len(t, tokens, len(want))
	for i, k := range want {
		assert.Equal(t, k, tokens[i].Kind)
	}
}

func TestScanTokens_Identifier(t *testing.T) {
	tokens, err := New("fooBar_1 café").ScanTokens()
	require.NoError(t, err)
	require.Len(t, tokens, 3)
	assert.Equal(t, Identifier, tokens[0].Kind)
	assert.Equal(t, "fooBar_1", tokens[0].Literal)
	assert.Equal(t, Identifier, tokens[1].Kind)
	assert.Equal(t, "café", tokens[1].Literal)
}

func TestScanTokens_AlwaysEndsWithEof(t *testing.T) {
	tokens, err := New("").ScanTokens()
	require.NoError(t, err)
	require.Len(t, tokens, 1)
	assert.Equal(t, Eof, tokens[0].Kind)
}

func TestScanTokens_UnterminatedString(t *testing.T) {
	_, err := New(`"never closed`).ScanTokens()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Unterminated string")
}

func TestScanTokens_UnexpectedCharacter(t *testing.T) {
	_, err := New("@").ScanTokens()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Unexpected character")
}

func TestScanTokens_LineTracking(t *testing.T) {
	tokens, err := New("var a = 1;\nvar b = 2;").ScanTokens()
	require.NoError(t, err)
	var bLine int
	for _, tok := range tokens {
		if tok.Kind == Identifier && tok.Literal == "b" {
			bLine = tok.Line
		}
	}
	assert.Equal(t, 2, bLine)
}
