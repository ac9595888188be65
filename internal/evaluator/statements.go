package evaluator

import (
	"github.com/pintlang/pint/internal/ast"
)

// evalAssignStatement evaluates the target in store context (yielding the
// bare name) and the value in load context, then writes into the active
// namespace. Assignment never writes through to an outer scope.
func (e *Evaluator) evalAssignStatement(node *ast.AssignStatement, ns *Namespace) Object {
	target := e.Eval(node.Target, ns)
	if isError(target) {
		return target
	}
	name, ok := target.(*String)
	if !ok {
		return newError("cannot assign to %s", target.Type())
	}

	value := e.Eval(node.Value, ns)
	if isError(value) {
		return value
	}

	ns.Set(name.Value, value)
	return nil
}

// evalFunctionDef creates the function's namespace once, at definition time,
// with the currently active namespace as its outer scope, and binds the
// callable under its name. Calling the value is where the namespace switch
// happens; see apply.go.
func (e *Evaluator) evalFunctionDef(node *ast.FunctionDef, ns *Namespace) Object {
	fnNs := NewEnclosedNamespace(ns)
	fn := &Function{
		Name:   node.Name,
		Params: node.Params,
		Body:   node.Body,
		Ns:     fnNs,
		Line:   node.Token.Line,
		Column: node.Token.Column,
	}
	ns.Set(node.Name, fn)
	return nil
}

// evalIfStatement picks body or orelse by comparing the test against boolean
// true, then iterates the chosen branch. Any signal other than Pass stops
// iteration and propagates to the enclosing construct unchanged; Pass is
// swallowed. Plain statement results accumulate in order.
func (e *Evaluator) evalIfStatement(node *ast.IfStatement, ns *Namespace) Object {
	test := e.Eval(node.Test, ns)
	if isError(test) {
		return test
	}

	branch := node.Orelse
	if equalsTrue(test) {
		branch = node.Body
	}

	var results []Object
	for _, stmt := range branch {
		res := e.Eval(stmt, ns)
		if res == nil {
			continue
		}
		if isError(res) {
			return res
		}
		if isSignal(res) {
			if _, ok := res.(*PassSignal); ok {
				continue
			}
			return res
		}
		results = appendResult(results, res)
	}

	return &List{Elements: results}
}

// evalWhileStatement re-evaluates the test before each iteration. Break and
// Continue are fully consumed here and never propagate past their own loop.
// Return propagates out of the entire statement.
func (e *Evaluator) evalWhileStatement(node *ast.WhileStatement, ns *Namespace) Object {
	var results []Object

	for {
		test := e.Eval(node.Test, ns)
		if isError(test) {
			return test
		}
		if !equalsTrue(test) {
			break
		}

		shouldBreak := false
		for _, stmt := range node.Body {
			res := e.Eval(stmt, ns)
			if res == nil {
				continue
			}
			if isError(res) {
				return res
			}

			if isSignal(res) {
				switch res.(type) {
				case *BreakSignal:
					shouldBreak = true
				case *ContinueSignal:
					// stop this iteration, re-test
				case *PassSignal:
					continue
				case *ReturnSignal:
					return res
				}
				break
			}

			results = appendResult(results, res)
		}
		if shouldBreak {
			break
		}
	}

	return &List{Elements: results}
}

// appendResult flattens nested statement result sequences, so a loop inside
// a loop contributes its values in order rather than as a sub-list.
func appendResult(results []Object, res Object) []Object {
	if list, ok := res.(*List); ok {
		return append(results, list.Elements...)
	}
	return append(results, res)
}
