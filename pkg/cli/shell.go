package cli

import (
	"bufio"
	"fmt"
	"io"

	"github.com/pintlang/pint/internal/config"
	"github.com/pintlang/pint/internal/diagnostics"
	"github.com/pintlang/pint/internal/evaluator"
	"github.com/pintlang/pint/internal/lexer"
	"github.com/pintlang/pint/internal/parser"
	"github.com/pintlang/pint/internal/pipeline"
	"github.com/pintlang/pint/internal/prettyprinter"
)

const shellGreeting = "pint interactive shell (Ctrl+D to exit)"

// Shell is the interactive read-eval-print loop. One global namespace
// survives across inputs; incomplete block statements switch to the
// continuation prompt and accumulate lines until the parser stops reporting
// an unexpected end of input.
type Shell struct {
	Settings config.Settings
	Opts     *Options

	in     *bufio.Scanner
	out    io.Writer
	errOut io.Writer

	globalNs *evaluator.Namespace
	buffer   string
	readMore bool
}

func NewShell(settings config.Settings, in io.Reader, out, errOut io.Writer) *Shell {
	return &Shell{
		Settings: settings,
		Opts:     &Options{},
		in:       bufio.NewScanner(in),
		out:      out,
		errOut:   errOut,
		globalNs: evaluator.NewNamespace(),
	}
}

func (s *Shell) Loop() int {
	fmt.Fprintln(s.out, shellGreeting)

	for {
		if s.readMore {
			fmt.Fprint(s.out, s.Settings.ContinuationPrompt)
		} else {
			fmt.Fprint(s.out, s.Settings.Prompt)
		}

		if !s.in.Scan() {
			fmt.Fprintln(s.out)
			return 0
		}
		line := s.in.Text()

		if s.readMore {
			// An empty line closes an open block, like the usual Python
			// shell behavior.
			if line == "" {
				s.readMore = false
				s.execute(s.buffer)
				s.buffer = ""
				continue
			}
			s.buffer += line + "\n"
			continue
		}

		if line == "" {
			continue
		}

		s.buffer = line + "\n"
		if s.inputUnfinished(s.buffer) {
			s.readMore = true
			continue
		}
		s.execute(s.buffer)
		s.buffer = ""
	}
}

// inputUnfinished parses the buffered input and reports whether the parser
// ran out of tokens mid-statement, meaning the user has not finished typing.
func (s *Shell) inputUnfinished(source string) bool {
	ctx := &pipeline.Context{SourceCode: source, FilePath: "<shell>"}
	pipeline.New(&lexer.LexerProcessor{}, &parser.ParserProcessor{}).Run(ctx)
	return ctx.HasError(diagnostics.ErrP002)
}

func (s *Shell) execute(source string) {
	ctx := &pipeline.Context{
		SourceCode: source,
		FilePath:   "<shell>",
		Env:        s.globalNs,
	}

	if s.Settings.PrintParseTree {
		treeCtx := &pipeline.Context{SourceCode: source, FilePath: "<shell>"}
		pipeline.New(&lexer.LexerProcessor{}, &parser.ParserProcessor{}).Run(treeCtx)
		if treeCtx.AstRoot != nil {
			fmt.Fprint(s.out, prettyprinter.NewCodePrinter().Print(treeCtx.AstRoot))
		}
	}

	ctx = pipeline.New(
		&lexer.LexerProcessor{},
		&parser.ParserProcessor{},
		&evaluator.EvaluatorProcessor{Out: s.out, MaxEvalDepth: s.Settings.MaxEvalDepth},
	).Run(ctx)

	if ctx.Failed() {
		for _, diag := range ctx.Errors {
			fmt.Fprintln(s.errOut, diag.Error())
		}
		return
	}

	s.echo(ctx.Result)
}

// echo prints the value of the last evaluated statement, suppressing None
// and the empty result sequences compound statements produce.
func (s *Shell) echo(result interface{}) {
	obj, ok := result.(evaluator.Object)
	if !ok || obj == nil {
		return
	}
	switch obj := obj.(type) {
	case *evaluator.None:
		return
	case *evaluator.List:
		if len(obj.Elements) == 0 {
			return
		}
	}
	fmt.Fprintln(s.out, obj.Inspect())
}
