package evaluator

import (
	"io"
	"os"

	"github.com/pintlang/pint/internal/ast"
	"github.com/pintlang/pint/internal/config"
)

type Evaluator struct {
	Out io.Writer

	// GlobalNs is the process-wide root namespace, created once per
	// interpreter run.
	GlobalNs *Namespace

	// CurrentNs tracks the namespace evaluation currently operates against.
	// It is interpreter-owned state threaded through every Eval call rather
	// than a package global; the deferred restore in Eval reinstates the
	// caller's namespace on every exit path (normal, Return signal, error).
	CurrentNs *Namespace

	// MaxEvalDepth bounds the nesting depth of Eval calls.
	MaxEvalDepth int

	evalDepth int
	printFn   *Builtin
}

func New() *Evaluator {
	ns := NewNamespace()
	e := &Evaluator{
		Out:          os.Stdout,
		GlobalNs:     ns,
		CurrentNs:    ns,
		MaxEvalDepth: config.DefaultMaxEvalDepth,
	}
	e.printFn = newPrintBuiltin(e)
	return e
}

func (e *Evaluator) Eval(node ast.Node, ns *Namespace) Object {
	e.evalDepth++
	if e.evalDepth > e.MaxEvalDepth {
		e.evalDepth--
		return newError("maximum recursion depth exceeded")
	}

	oldNs := e.CurrentNs
	e.CurrentNs = ns
	defer func() {
		e.CurrentNs = oldNs
		e.evalDepth--
	}()

	obj := e.evalCore(node, ns)
	if err, ok := obj.(*Error); ok {
		if err.Line == 0 {
			if provider, ok := node.(ast.TokenProvider); ok {
				tok := provider.GetToken()
				err.Line = tok.Line
				err.Column = tok.Column
			}
		}
	}
	return obj
}

func (e *Evaluator) evalCore(node ast.Node, ns *Namespace) Object {
	switch node := node.(type) {
	// Statements
	case *ast.Program:
		return e.evalProgram(node, ns)
	case *ast.AssignStatement:
		return e.evalAssignStatement(node, ns)
	case *ast.FunctionDef:
		return e.evalFunctionDef(node, ns)
	case *ast.IfStatement:
		return e.evalIfStatement(node, ns)
	case *ast.WhileStatement:
		return e.evalWhileStatement(node, ns)
	case *ast.ReturnStatement:
		return &ReturnSignal{Expr: node.Value}
	case *ast.BreakStatement:
		return &BreakSignal{}
	case *ast.ContinueStatement:
		return &ContinueSignal{}
	case *ast.PassStatement:
		return &PassSignal{}
	case *ast.ExpressionStatement:
		return e.Eval(node.Expression, ns)

	// Expressions
	case *ast.Name:
		return e.evalName(node, ns)
	case *ast.IntegerLiteral:
		return &Integer{Value: node.Value}
	case *ast.FloatLiteral:
		return &Float{Value: node.Value}
	case *ast.StringLiteral:
		return &String{Value: node.Value}
	case *ast.BooleanLiteral:
		return nativeBoolToBooleanObject(node.Value)
	case *ast.NoneLiteral:
		return NONE
	case *ast.PrefixExpression:
		return e.evalPrefixExpression(node, ns)
	case *ast.InfixExpression:
		return e.evalInfixExpression(node, ns)
	case *ast.CallExpression:
		return e.evalCallExpression(node, ns)
	}

	return newError("unknown node type %T", node)
}

// evalProgram runs top-level statements in order. A stray control-flow
// signal at top level has no propagation target and is discarded.
func (e *Evaluator) evalProgram(program *ast.Program, ns *Namespace) Object {
	var result Object = NONE

	for _, stmt := range program.Statements {
		res := e.Eval(stmt, ns)
		if res == nil {
			continue
		}
		if isError(res) {
			return res
		}
		if isSignal(res) {
			continue
		}
		result = res
	}

	return result
}
