/*
Package parser implements a recursive-descent parser for Wisp,
converting a lexer.Token stream into the Expr/Stmt AST defined in
ast.go.

The grammar is precedence-cascaded exactly as spec.md §4.2 lays it out
(equality -> comparison -> term -> factor -> unary -> call -> primary),
the same cascade original_source/src/parser.rs uses. The struct shape
and token-lookahead helpers (peek/previous, advance, consume) are
grounded on the teacher's parser.Parser
(_examples/akashmaji946-go-mix/parser/parser.go), but the error-handling
contract differs: the teacher collects into an Errors slice and keeps
parsing past a bad token, while spec.md requires the parser to halt and
report the first error it hits, matching original_source's
Result<Vec<Stmt>, String>. See DESIGN.md's "Deviations" section.
*/
package parser

import (
	"fmt"

	"github.com/wisplang/wisp/lexer"
	"github.com/wisplang/wisp/objects"
)

// Error is a parse-time failure, carrying the offending token's line
// for diagnostics (spec.md §4.2). Its rendered message carries no line
// prefix — just "<msg> at '<lexeme>'" / "<msg> at end" — matching
// original_source/src/parser.rs's error() exactly; Line is kept on the
// struct for callers that want it without parsing the string.
type Error struct {
	Line    int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Parser holds the token stream, the index of the current token, and
// the collected non-halting arity errors.
type Parser struct {
	tokens      []lexer.Token
	current     int
	arityErrors []error
}

// New creates a Parser over an already-scanned token stream.
func New(tokens []lexer.Token) *Parser {
	return &Parser{tokens: tokens}
}

// Parse runs the program grammar rule (spec.md §4.2) and returns the
// parsed statement sequence, or the first parse error encountered.
// Exceeding the 255-parameter/argument ceiling is reported but does not
// halt the parse (spec.md §4.2); such errors are collected in
// arityErrors and the first one, if any, is surfaced here alongside
// the otherwise-complete statement list.
func (p *Parser) Parse() ([]Stmt, error) {
	var statements []Stmt
	for !p.isAtEnd() {
		stmt, err := p.declaration()
		if err != nil {
			return nil, err
		}
		statements = append(statements, stmt)
	}
	if len(p.arityErrors) > 0 {
		return statements, p.arityErrors[0]
	}
	return statements, nil
}

// reportArityError records a non-halting diagnostic for an over-limit
// parameter/argument list (spec.md §4.2) without aborting the parse in
// progress.
func (p *Parser) reportArityError(tok lexer.Token, message string) {
	p.arityErrors = append(p.arityErrors, p.errorAt(tok, message))
}

// declaration -> funDecl | varDecl | statement
func (p *Parser) declaration() (Stmt, error) {
	switch {
	case p.check(lexer.Fun):
		p.advance()
		return p.function("function")
	case p.check(lexer.Var):
		p.advance()
		return p.varDeclaration()
	default:
		return p.statement()
	}
}

// function -> IDENTIFIER "(" params? ")" block, with a 255-parameter
// ceiling (spec.md §4.2).
func (p *Parser) function(kind string) (Stmt, error) {
	name, err := p.consume(lexer.Identifier, "Expect "+kind+" name.")
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(lexer.LeftParen, "Expect '(' after "+kind+" name."); err != nil {
		return nil, err
	}

	var params []lexer.Token
	if !p.check(lexer.RightParen) {
		for {
			if len(params) >= 255 {
				p.reportArityError(p.peek(), "Can't have more than 255 parameters.")
			}
			param, err := p.consume(lexer.Identifier, "Expect parameter name.")
			if err != nil {
				return nil, err
			}
			params = append(params, param)
			if !p.match(lexer.Comma) {
				break
			}
		}
	}
	if _, err := p.consume(lexer.RightParen, "Expect ')' after parameters."); err != nil {
		return nil, err
	}

	if _, err := p.consume(lexer.LeftBrace, "Expect '{' before "+kind+" body."); err != nil {
		return nil, err
	}
	body, err := p.block()
	if err != nil {
		return nil, err
	}
	return &FunctionStmt{Name: name, Params: params, Body: body}, nil
}

// varDecl -> "var" IDENTIFIER ( "=" expression )? ";"
func (p *Parser) varDeclaration() (Stmt, error) {
	name, err := p.consume(lexer.Identifier, "Expect variable name.")
	if err != nil {
		return nil, err
	}

	var initializer Expr
	if p.match(lexer.Equal) {
		initializer, err = p.expression()
		if err != nil {
			return nil, err
		}
	}

	if _, err := p.consume(lexer.Semicolon, "Expect ';' after variable declaration."); err != nil {
		return nil, err
	}
	return &VarStmt{Name: name, Initializer: initializer}, nil
}

// statement -> exprStmt | forStmt | ifStmt | printStmt | returnStmt
//
//	| whileStmt | block
func (p *Parser) statement() (Stmt, error) {
	switch {
	case p.check(lexer.For):
		p.advance()
		return p.forStatement()
	case p.check(lexer.If):
		p.advance()
		return p.ifStatement()
	case p.check(lexer.Print):
		p.advance()
		return p.printStatement()
	case p.check(lexer.Return):
		p.advance()
		return p.returnStatement()
	case p.check(lexer.While):
		p.advance()
		return p.whileStatement()
	case p.check(lexer.LeftBrace):
		p.advance()
		stmts, err := p.block()
		if err != nil {
			return nil, err
		}
		return &BlockStmt{Statements: stmts}, nil
	default:
		return p.expressionStatement()
	}
}

// forStmt desugars `for (init; cond; incr) body` into the equivalent
// block/while form, per spec.md §4.2 — there is no ForStmt AST node.
func (p *Parser) forStatement() (Stmt, error) {
	if _, err := p.consume(lexer.LeftParen, "Expect '(' after 'for'."); err != nil {
		return nil, err
	}

	var initializer Stmt
	var err error
	switch {
	case p.match(lexer.Semicolon):
		initializer = nil
	case p.check(lexer.Var):
		p.advance()
		initializer, err = p.varDeclaration()
	default:
		initializer, err = p.expressionStatement()
	}
	if err != nil {
		return nil, err
	}

	var condition Expr
	if !p.check(lexer.Semicolon) {
		condition, err = p.expression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.consume(lexer.Semicolon, "Expect ';' after loop condition."); err != nil {
		return nil, err
	}

	var increment Expr
	if !p.check(lexer.RightParen) {
		increment, err = p.expression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.consume(lexer.RightParen, "Expect ')' after for clauses."); err != nil {
		return nil, err
	}

	body, err := p.statement()
	if err != nil {
		return nil, err
	}

	if increment != nil {
		body = &BlockStmt{Statements: []Stmt{body, &ExpressionStmt{Expression: increment}}}
	}
	if condition == nil {
		condition = &Literal{Value: objects.Boolean{Value: true}}
	}
	body = &WhileStmt{Condition: condition, Body: body}
	if initializer != nil {
		body = &BlockStmt{Statements: []Stmt{initializer, body}}
	}
	return body, nil
}

// ifStmt -> "if" "(" expression ")" statement ( "else" statement )?
func (p *Parser) ifStatement() (Stmt, error) {
	if _, err := p.consume(lexer.LeftParen, "Expect '(' after 'if'."); err != nil {
		return nil, err
	}
	condition, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(lexer.RightParen, "Expect ')' after if condition."); err != nil {
		return nil, err
	}

	thenBranch, err := p.statement()
	if err != nil {
		return nil, err
	}

	var elseBranch Stmt
	if p.match(lexer.Else) {
		elseBranch, err = p.statement()
		if err != nil {
			return nil, err
		}
	}
	return &IfStmt{Condition: condition, Then: thenBranch, Else: elseBranch}, nil
}

// printStmt -> "print" expression ";"
func (p *Parser) printStatement() (Stmt, error) {
	value, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(lexer.Semicolon, "Expect ';' after value."); err != nil {
		return nil, err
	}
	return &PrintStmt{Expression: value}, nil
}

// returnStmt -> "return" expression? ";"
func (p *Parser) returnStatement() (Stmt, error) {
	keyword := p.previous()
	var value Expr
	var err error
	if !p.check(lexer.Semicolon) {
		value, err = p.expression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.consume(lexer.Semicolon, "Expect ';' after return value."); err != nil {
		return nil, err
	}
	return &ReturnStmt{Keyword: keyword, Value: value}, nil
}

// whileStmt -> "while" "(" expression ")" statement
func (p *Parser) whileStatement() (Stmt, error) {
	if _, err := p.consume(lexer.LeftParen, "Expect '(' after 'while'."); err != nil {
		return nil, err
	}
	condition, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(lexer.RightParen, "Expect ')' after condition."); err != nil {
		return nil, err
	}
	body, err := p.statement()
	if err != nil {
		return nil, err
	}
	return &WhileStmt{Condition: condition, Body: body}, nil
}

// exprStmt -> expression ";"
func (p *Parser) expressionStatement() (Stmt, error) {
	expr, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(lexer.Semicolon, "Expect ';' after expression."); err != nil {
		return nil, err
	}
	return &ExpressionStmt{Expression: expr}, nil
}

// block -> "{" declaration* "}"
func (p *Parser) block() ([]Stmt, error) {
	var statements []Stmt
	for !p.check(lexer.RightBrace) && !p.isAtEnd() {
		stmt, err := p.declaration()
		if err != nil {
			return nil, err
		}
		statements = append(statements, stmt)
	}
	if _, err := p.consume(lexer.RightBrace, "Expect '}' after block."); err != nil {
		return nil, err
	}
	return statements, nil
}

// --- token-stream primitives ---

func (p *Parser) isAtEnd() bool {
	return p.peek().Kind == lexer.Eof
}

func (p *Parser) peek() lexer.Token {
	return p.tokens[p.current]
}

func (p *Parser) previous() lexer.Token {
	return p.tokens[p.current-1]
}

func (p *Parser) advance() lexer.Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) check(kind lexer.Kind) bool {
	return p.peek().Kind == kind
}

func (p *Parser) match(kinds ...lexer.Kind) bool {
	for _, k := range kinds {
		if p.check(k) {
			p.advance()
			return true
		}
	}
	return false
}

// consume advances past the current token if it has the expected kind,
// otherwise fails with message, formatted the way original_source's
// parser formats its own "at '...'" / "at end" diagnostics.
func (p *Parser) consume(kind lexer.Kind, message string) (lexer.Token, error) {
	if p.check(kind) {
		return p.advance(), nil
	}
	return lexer.Token{}, p.errorAt(p.peek(), message)
}

func (p *Parser) errorAt(tok lexer.Token, message string) error {
	if tok.Kind == lexer.Eof {
		return &Error{Line: tok.Line, Message: message + " at end"}
	}
	return &Error{Line: tok.Line, Message: fmt.Sprintf("%s at '%s'", message, tok.Lexeme)}
}
