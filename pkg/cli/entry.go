package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/pintlang/pint/internal/config"
	"github.com/pintlang/pint/internal/evaluator"
	"github.com/pintlang/pint/internal/lexer"
	"github.com/pintlang/pint/internal/parser"
	"github.com/pintlang/pint/internal/pipeline"
	"github.com/pintlang/pint/internal/prettyprinter"
)

// Options are the host flags understood by the pint binary.
type Options struct {
	File           string // source file to run
	Eval           string // -e one-liner
	PrintTokens    bool
	PrintParseTree bool
	ConfigPath     string
}

func ParseArgs(args []string) (*Options, error) {
	opts := &Options{}
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch arg {
		case "-e", "--eval":
			if i+1 >= len(args) {
				return nil, fmt.Errorf("%s requires an argument", arg)
			}
			i++
			opts.Eval = args[i]
		case "--tokens":
			opts.PrintTokens = true
		case "--parse-tree":
			opts.PrintParseTree = true
		case "--config":
			if i+1 >= len(args) {
				return nil, fmt.Errorf("%s requires an argument", arg)
			}
			i++
			opts.ConfigPath = args[i]
		case "-h", "--help", "help":
			return nil, errUsage
		default:
			if strings.HasPrefix(arg, "-") {
				return nil, fmt.Errorf("unknown flag %s", arg)
			}
			if opts.File != "" {
				return nil, fmt.Errorf("only one source file may be given")
			}
			opts.File = arg
		}
	}
	return opts, nil
}

var errUsage = fmt.Errorf(`usage: pint [flags] [file%s]

flags:
  -e, --eval EXPR   evaluate a one-line program and exit
  --tokens          print the token stream before running
  --parse-tree      print the parsed tree before running
  --config PATH     load settings from PATH instead of ~/%s

with no file and an interactive stdin, pint starts a shell`,
	config.SourceFileExt, config.SettingsFileName)

// Entry is the whole pint binary behind flag parsing. Returns the process
// exit code.
func Entry(args []string, in io.Reader, out, errOut io.Writer) int {
	opts, err := ParseArgs(args)
	if err != nil {
		fmt.Fprintln(errOut, err)
		if err == errUsage {
			return 0
		}
		return 2
	}

	settings := config.DefaultSettings()
	if opts.ConfigPath != "" {
		settings, err = config.LoadSettings(opts.ConfigPath)
		if err != nil {
			fmt.Fprintln(errOut, err)
			return 2
		}
	} else {
		settings = config.LoadUserSettings()
	}
	if opts.PrintParseTree {
		settings.PrintParseTree = true
	}

	switch {
	case opts.Eval != "":
		return runSource(opts.Eval, "<eval>", opts, settings, out, errOut)
	case opts.File != "":
		path := resolveSourceFile(opts.File)
		data, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintln(errOut, err)
			return 2
		}
		return runSource(string(data), path, opts, settings, out, errOut)
	default:
		if stdinIsTerminal(in) {
			shell := NewShell(settings, in, out, errOut)
			shell.Opts = opts
			return shell.Loop()
		}
		data, err := io.ReadAll(in)
		if err != nil {
			fmt.Fprintln(errOut, err)
			return 2
		}
		return runSource(string(data), "<stdin>", opts, settings, out, errOut)
	}
}

// resolveSourceFile returns the path to read. When the bare path does not
// exist it retries with the recognized source extensions appended, so
// `pint prog` finds prog.pint.
func resolveSourceFile(path string) string {
	if _, err := os.Stat(path); err == nil {
		return path
	}
	for _, ext := range config.SourceFileExtensions {
		if _, err := os.Stat(path + ext); err == nil {
			return path + ext
		}
	}
	return path
}

func stdinIsTerminal(in io.Reader) bool {
	f, ok := in.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// runSource pushes one whole program through the pipeline.
func runSource(source, path string, opts *Options, settings config.Settings, out, errOut io.Writer) int {
	ctx := &pipeline.Context{
		SourceCode: source,
		FilePath:   path,
		Env:        newGlobalNamespace(),
	}

	p := pipeline.New(
		&lexer.LexerProcessor{},
		&parser.ParserProcessor{},
		&evaluator.EvaluatorProcessor{Out: out, MaxEvalDepth: settings.MaxEvalDepth},
	)

	if opts.PrintTokens {
		tokCtx := &pipeline.Context{SourceCode: source, FilePath: path}
		(&lexer.LexerProcessor{}).Process(tokCtx)
		for _, tok := range tokCtx.Tokens {
			fmt.Fprintf(out, "%s %q\n", tok.Type, tok.Lexeme)
		}
	}
	if settings.PrintParseTree {
		lexCtx := &pipeline.Context{SourceCode: source, FilePath: path}
		(&lexer.LexerProcessor{}).Process(lexCtx)
		(&parser.ParserProcessor{}).Process(lexCtx)
		if lexCtx.AstRoot != nil {
			fmt.Fprint(out, prettyprinter.NewCodePrinter().Print(lexCtx.AstRoot))
		}
	}

	ctx = p.Run(ctx)
	if ctx.Failed() {
		for _, diag := range ctx.Errors {
			fmt.Fprintln(errOut, diag.Error())
		}
		return 1
	}
	return 0
}

func newGlobalNamespace() *evaluator.Namespace {
	return evaluator.NewNamespace()
}
