package evaluator

import (
	"io"

	"github.com/pintlang/pint/internal/config"
	"github.com/pintlang/pint/internal/diagnostics"
	"github.com/pintlang/pint/internal/pipeline"
	"github.com/pintlang/pint/internal/token"
)

// EvaluatorProcessor is the pipeline stage running the tree evaluator. It
// reuses the namespace carried in ctx.Env when present, so a REPL keeps one
// global namespace alive across inputs.
type EvaluatorProcessor struct {
	Out          io.Writer
	MaxEvalDepth int
}

func (ep *EvaluatorProcessor) Process(ctx *pipeline.Context) *pipeline.Context {
	if ctx.AstRoot == nil || ctx.Failed() {
		return ctx
	}

	eval := New()
	if ep.Out != nil {
		eval.Out = ep.Out
	}
	if ep.MaxEvalDepth > 0 {
		eval.MaxEvalDepth = ep.MaxEvalDepth
	} else {
		eval.MaxEvalDepth = config.DefaultMaxEvalDepth
	}

	ns, ok := ctx.Env.(*Namespace)
	if !ok || ns == nil {
		ns = NewNamespace()
		ctx.Env = ns
	}
	eval.GlobalNs = ns
	eval.CurrentNs = ns

	result := eval.Eval(ctx.AstRoot, ns)
	if err, ok := result.(*Error); ok {
		tok := token.Token{Line: err.Line, Column: err.Column}
		diag := diagnostics.NewError(diagnosticCode(err.Kind), tok,
			string(err.Kind)+": "+err.Message)
		diag.File = ctx.FilePath
		ctx.Errors = append(ctx.Errors, diag)
		return ctx
	}

	ctx.Result = result
	return ctx
}

func diagnosticCode(kind ErrorKind) string {
	switch kind {
	case UnboundNameError:
		return diagnostics.ErrR100
	case ArityError:
		return diagnostics.ErrR101
	default:
		return diagnostics.ErrR102
	}
}
