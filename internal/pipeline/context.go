package pipeline

import (
	"github.com/pintlang/pint/internal/ast"
	"github.com/pintlang/pint/internal/diagnostics"
	"github.com/pintlang/pint/internal/token"
)

// Processor is a single pipeline stage.
type Processor interface {
	Process(ctx *Context) *Context
}

// Context carries a single unit of source through the stages. The REPL
// creates a fresh Context per input line but threads the same Env through,
// so one global namespace survives across inputs.
type Context struct {
	SourceCode string
	FilePath   string

	Tokens  []token.Token
	AstRoot *ast.Program

	// Env is the global namespace the evaluator runs against. Declared as
	// interface{} to keep this package free of an evaluator dependency; the
	// EvaluatorProcessor type-asserts it.
	Env interface{}

	// Result is the value of the last evaluated statement, for REPL echo.
	Result interface{}

	Errors []*diagnostics.Error
}

// Failed reports whether any stage recorded a diagnostic.
func (c *Context) Failed() bool { return len(c.Errors) > 0 }

// HasError reports whether a diagnostic with the given code was recorded.
func (c *Context) HasError(code string) bool {
	for _, err := range c.Errors {
		if err.Code == code {
			return true
		}
	}
	return false
}
