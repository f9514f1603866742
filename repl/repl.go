/*
Package repl implements Wisp's interactive read-eval-print loop
(spec.md §6.3): read a line, evaluate it as a program fragment, print
errors to output, run until EOF.

Grounded on the teacher's repl.Repl
(_examples/akashmaji946-go-mix/repl/repl.go): same banner/prompt shape,
the same chzyer/readline + fatih/color combination for line editing and
colored diagnostics, and the same "construct one evaluator before the
loop, reuse it for every line" structure — which is also this repo's
resolution of DESIGN.md's Open Question 3 (a persistent top-level
environment across REPL lines, spec.md §7).
*/
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"
	"github.com/wisplang/wisp/eval"
	"github.com/wisplang/wisp/lexer"
	"github.com/wisplang/wisp/objects"
	"github.com/wisplang/wisp/parser"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl is an interactive session: a banner/prompt skin wrapped around
// one persistent Evaluator.
type Repl struct {
	Banner  string
	Version string
	Line    string
	Prompt  string
}

// New creates a Repl with Wisp's own banner and prompt.
func New() *Repl {
	return &Repl{
		Banner:  banner,
		Version: version,
		Line:    strings.Repeat("-", 60),
		Prompt:  "wisp >>> ",
	}
}

const version = "v0.1.0"

const banner = `
 __      __.__
/  \    /  \__| ____ ____
\   \/\/   /  |/ ___/\____\
 \        /|  |\___ \|  |_)
  \__/\  / |__|____  >___  >
       \/          \/    \/
`

// PrintBannerInfo prints the startup banner, matching the teacher's
// color scheme (blue separators, green banner, yellow version line,
// cyan instructions).
func (r *Repl) PrintBannerInfo(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Wisp "+r.Version)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Type your code and press enter.")
	cyanColor.Fprintf(writer, "%s\n", "Type '.exit' or press Ctrl-D to quit.")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start runs the read-eval-print loop against reader/writer until the
// user exits or input ends. One Evaluator, and therefore one global
// environment, is created before the loop and reused for every line
// (spec.md §7).
func (r *Repl) Start(reader io.Reader, writer io.Writer) {
	r.PrintBannerInfo(writer)

	rl, err := readline.NewEx(&readline.Config{
		Prompt: r.Prompt,
		Stdin:  io.NopCloser(reader),
	})
	if err != nil {
		redColor.Fprintf(writer, "[REPL ERROR] %v\n", err)
		return
	}
	defer rl.Close()

	evaluator := eval.New()
	evaluator.SetWriter(writer)

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good bye!\n"))
			return
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == ".exit" {
			writer.Write([]byte("Good bye!\n"))
			return
		}

		rl.SaveHistory(line)
		r.evalLine(writer, line, evaluator)
	}
}

// evalLine scans, parses, and evaluates one line, printing a parse or
// runtime error in red, matching the teacher's executeWithRecovery —
// but threading errors back as values (this repo's Eval never panics
// on a well-formed error path) rather than relying on panic/recover.
func (r *Repl) evalLine(writer io.Writer, line string, evaluator *eval.Evaluator) {
	tokens, err := lexer.New(line).ScanTokens()
	if err != nil {
		redColor.Fprintf(writer, "%s\n", err.Error())
		return
	}

	statements, err := parser.New(tokens).Parse()
	if err != nil {
		redColor.Fprintf(writer, "%s\n", err.Error())
		return
	}

	result := evaluator.Run(statements)
	if errVal, ok := result.(*objects.Error); ok {
		redColor.Fprintf(writer, "%s\n", errVal.Message)
	}
}
