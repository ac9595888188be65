package evaluator

import (
	"fmt"
	"strings"

	"github.com/pintlang/pint/internal/config"
)

// Builtins are resolved as a fallback after the namespace chain, so a user
// binding shadows a builtin of the same name. None of them is ever written
// into a namespace.
var Builtins = map[string]*Builtin{
	config.LenFuncName: {
		Name: config.LenFuncName,
		Fn: func(args ...Object) Object {
			if len(args) != 1 {
				return newArityError(config.LenFuncName, 1, len(args))
			}
			switch arg := args[0].(type) {
			case *String:
				return &Integer{Value: int64(len(arg.Value))}
			case *List:
				return &Integer{Value: int64(len(arg.Elements))}
			}
			return newTypeError("object of type %s has no len()", args[0].Type())
		},
	},
	config.TypeFuncName: {
		Name: config.TypeFuncName,
		Fn: func(args ...Object) Object {
			if len(args) != 1 {
				return newArityError(config.TypeFuncName, 1, len(args))
			}
			return &String{Value: string(args[0].Type())}
		},
	},
}

// newPrintBuiltin builds the print builtin for one evaluator. It closes over
// the evaluator and reads Out at call time, so the writer can be swapped
// after construction. print lives on the evaluator instead of in Builtins
// because of that writer, but it resolves through the same fallback path and
// is shadowed by user bindings the same way.
func newPrintBuiltin(e *Evaluator) *Builtin {
	return &Builtin{
		Name: config.PrintFuncName,
		Fn: func(args ...Object) Object {
			parts := make([]string, len(args))
			for i, a := range args {
				if s, ok := a.(*String); ok {
					parts[i] = s.Value
					continue
				}
				parts[i] = a.Inspect()
			}
			fmt.Fprintln(e.Out, strings.Join(parts, " "))
			return NONE
		},
	}
}

// lookupBuiltin resolves a name against the builtin fallbacks. Called only
// after the namespace chain came up empty.
func (e *Evaluator) lookupBuiltin(name string) (*Builtin, bool) {
	if name == config.PrintFuncName {
		return e.printFn, true
	}
	b, ok := Builtins[name]
	return b, ok
}
