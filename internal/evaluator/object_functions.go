package evaluator

import (
	"fmt"
	"strings"

	"github.com/pintlang/pint/internal/ast"
)

// Function is a user-defined callable. Ns is the namespace created once at
// definition time: its outer scope is the namespace that was active when the
// def statement ran, and it stays the function's namespace for every
// invocation. Parameters and locals therefore persist between calls.
type Function struct {
	Name   string
	Params []string
	Body   []ast.Statement
	Ns     *Namespace
	Line   int
	Column int
}

func (f *Function) Type() ObjectType { return FUNCTION_OBJ }
func (f *Function) Inspect() string {
	return fmt.Sprintf("<function %s(%s)>", f.Name, strings.Join(f.Params, ", "))
}

type BuiltinFunction func(args ...Object) Object

type Builtin struct {
	Name string
	Fn   BuiltinFunction
}

func (b *Builtin) Type() ObjectType { return BUILTIN_OBJ }
func (b *Builtin) Inspect() string  { return fmt.Sprintf("<built-in function %s>", b.Name) }
