package prettyprinter

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/pintlang/pint/internal/ast"
)

// Operator precedence (higher = binds tighter). Mirrors the parser, so the
// printed source reparses to the same tree.
var operatorPrecedence = map[string]int{
	"or":  1,
	"and": 2,
	"==":  4,
	"!=":  4,
	"<":   4,
	"<=":  4,
	">":   4,
	">=":  4,
	"|":   5,
	"^":   6,
	"&":   7,
	"<<":  8,
	">>":  8,
	"+":   9,
	"-":   9,
	"*":   10,
	"/":   10,
	"%":   10,
}

const (
	notPrecedence   = 3
	unaryPrecedence = 11
)

func getPrecedence(op string) int {
	if p, ok := operatorPrecedence[op]; ok {
		return p
	}
	return 12
}

// CodePrinter renders an AST back to runnable source: one statement per
// line, suites indented four spaces, parentheses only where precedence
// requires them.
type CodePrinter struct {
	buf    bytes.Buffer
	indent int
}

func NewCodePrinter() *CodePrinter {
	return &CodePrinter{}
}

func (p *CodePrinter) Print(program *ast.Program) string {
	p.buf.Reset()
	p.indent = 0
	for _, stmt := range program.Statements {
		p.printStatement(stmt)
	}
	return p.buf.String()
}

func (p *CodePrinter) writeIndent() {
	for i := 0; i < p.indent; i++ {
		p.buf.WriteString("    ")
	}
}

func (p *CodePrinter) line(s string) {
	p.writeIndent()
	p.buf.WriteString(s)
	p.buf.WriteByte('\n')
}

func (p *CodePrinter) printStatement(stmt ast.Statement) {
	switch stmt := stmt.(type) {
	case *ast.AssignStatement:
		p.line(stmt.Target.Value + " = " + p.expr(stmt.Value))
	case *ast.ExpressionStatement:
		p.line(p.expr(stmt.Expression))
	case *ast.ReturnStatement:
		if stmt.Value == nil {
			p.line("return")
		} else {
			p.line("return " + p.expr(stmt.Value))
		}
	case *ast.BreakStatement:
		p.line("break")
	case *ast.ContinueStatement:
		p.line("continue")
	case *ast.PassStatement:
		p.line("pass")
	case *ast.FunctionDef:
		p.line("def " + stmt.Name + "(" + strings.Join(stmt.Params, ", ") + "):")
		p.printSuite(stmt.Body)
	case *ast.WhileStatement:
		p.line("while " + p.expr(stmt.Test) + ":")
		p.printSuite(stmt.Body)
	case *ast.IfStatement:
		p.printIf(stmt)
	}
}

func (p *CodePrinter) printSuite(body []ast.Statement) {
	p.indent++
	if len(body) == 0 {
		p.line("pass")
	}
	for _, s := range body {
		p.printStatement(s)
	}
	p.indent--
}

// printIf flattens the nested Orelse representation back into an elif chain.
func (p *CodePrinter) printIf(stmt *ast.IfStatement) {
	p.line("if " + p.expr(stmt.Test) + ":")
	p.printSuite(stmt.Body)

	for len(stmt.Orelse) > 0 {
		if nested, ok := stmt.Orelse[0].(*ast.IfStatement); ok && len(stmt.Orelse) == 1 {
			p.line("elif " + p.expr(nested.Test) + ":")
			p.printSuite(nested.Body)
			stmt = nested
			continue
		}
		p.line("else:")
		p.printSuite(stmt.Orelse)
		return
	}
}

func (p *CodePrinter) expr(e ast.Expression) string {
	return p.exprPrec(e, 0)
}

// exprPrec prints e, adding parentheses when its top operator binds looser
// than the surrounding context requires.
func (p *CodePrinter) exprPrec(e ast.Expression, context int) string {
	switch e := e.(type) {
	case *ast.Name:
		return e.Value
	case *ast.IntegerLiteral, *ast.FloatLiteral, *ast.BooleanLiteral:
		return e.TokenLiteral()
	case *ast.NoneLiteral:
		return "None"
	case *ast.StringLiteral:
		return fmt.Sprintf("%q", e.Value)
	case *ast.InfixExpression:
		prec := getPrecedence(e.Operator)
		s := p.exprPrec(e.Left, prec) + " " + e.Operator + " " + p.exprPrec(e.Right, prec+1)
		if prec < context {
			return "(" + s + ")"
		}
		return s
	case *ast.PrefixExpression:
		if e.Operator == "not" {
			s := "not " + p.exprPrec(e.Right, notPrecedence+1)
			if notPrecedence < context {
				return "(" + s + ")"
			}
			return s
		}
		s := e.Operator + p.exprPrec(e.Right, unaryPrecedence+1)
		if unaryPrecedence < context {
			return "(" + s + ")"
		}
		return s
	case *ast.CallExpression:
		args := make([]string, len(e.Arguments))
		for i, a := range e.Arguments {
			args[i] = p.expr(a)
		}
		return p.exprPrec(e.Function, unaryPrecedence+1) + "(" + strings.Join(args, ", ") + ")"
	default:
		return e.String()
	}
}
