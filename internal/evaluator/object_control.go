package evaluator

import (
	"fmt"

	"github.com/pintlang/pint/internal/ast"
)

// Control-flow signals are ordinary first-class evaluation results, not a
// non-local exit mechanism. Every compound statement inspects the result of
// each nested statement and reacts: if/while pass Return upward, while
// consumes Break/Continue, everything swallows Pass.

// ReturnSignal carries the return expression unevaluated; the call machinery
// evaluates it in the callee namespace once the signal reaches the function
// body boundary.
type ReturnSignal struct {
	Expr ast.Expression // nil for a bare return
}

func (rs *ReturnSignal) Type() ObjectType { return RETURN_SIGNAL_OBJ }
func (rs *ReturnSignal) Inspect() string  { return "Return" }

type BreakSignal struct{}

func (bs *BreakSignal) Type() ObjectType { return BREAK_SIGNAL_OBJ }
func (bs *BreakSignal) Inspect() string  { return "Break" }

type ContinueSignal struct{}

func (cs *ContinueSignal) Type() ObjectType { return CONTINUE_SIGNAL_OBJ }
func (cs *ContinueSignal) Inspect() string  { return "Continue" }

type PassSignal struct{}

func (ps *PassSignal) Type() ObjectType { return PASS_SIGNAL_OBJ }
func (ps *PassSignal) Inspect() string  { return "Pass" }

// isSignal reports whether obj is one of the four control-flow signals.
func isSignal(obj Object) bool {
	switch obj.(type) {
	case *ReturnSignal, *BreakSignal, *ContinueSignal, *PassSignal:
		return true
	}
	return false
}

// ErrorKind classifies runtime errors so callers can match without parsing
// messages.
type ErrorKind string

const (
	UnboundNameError ErrorKind = "UnboundNameError"
	ArityError       ErrorKind = "ArityError"
	TypeError        ErrorKind = "TypeError"
)

// Error is a runtime evaluation error flowing through evaluation as an
// Object. Never recovered inside the evaluator; the pipeline boundary turns
// it into a diagnostic.
type Error struct {
	Kind    ErrorKind
	Message string
	Line    int
	Column  int
}

func (e *Error) Type() ObjectType { return ERROR_OBJ }
func (e *Error) Inspect() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s at %d:%d: %s", e.Kind, e.Line, e.Column, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}
