package ast

import (
	"fmt"
	"strings"

	"github.com/pintlang/pint/internal/token"
)

// AssignStatement binds the value of an expression to a name in the active
// namespace. Target always carries Store context.
type AssignStatement struct {
	Token  token.Token
	Target *Name
	Value  Expression
}

func (as *AssignStatement) statementNode()       {}
func (as *AssignStatement) TokenLiteral() string { return as.Token.Lexeme }
func (as *AssignStatement) String() string {
	return fmt.Sprintf("%s = %s", as.Target.String(), as.Value.String())
}
func (as *AssignStatement) GetToken() token.Token {
	if as == nil {
		return token.Token{}
	}
	return as.Token
}

// augOps maps an augmented assignment operator to the binary operator it
// desugars into.
var augOps = map[token.TokenType]string{
	token.PLUS_ASSIGN:     "+",
	token.MINUS_ASSIGN:    "-",
	token.ASTERISK_ASSIGN: "*",
	token.SLASH_ASSIGN:    "/",
	token.PERCENT_ASSIGN:  "%",
	token.AMP_ASSIGN:      "&",
	token.PIPE_ASSIGN:     "|",
	token.CARET_ASSIGN:    "^",
	token.LSHIFT_ASSIGN:   "<<",
	token.RSHIFT_ASSIGN:   ">>",
}

// NewAugAssignStatement desugars `x <op>= e` into `x = x <op> e` at
// construction time: a load-context Name for the current value, the binary
// operator, and a store-context Name as the target. Augmented assignment
// therefore has exactly the scoping and side-effect behavior of the
// equivalent plain assignment, and no evaluation path of its own.
func NewAugAssignStatement(opTok token.Token, name token.Token, value Expression) *AssignStatement {
	load := &Name{Token: name, Value: name.Lexeme, Ctx: Load}
	store := &Name{Token: name, Value: name.Lexeme, Ctx: Store}
	binOp := &InfixExpression{
		Token:    opTok,
		Left:     load,
		Operator: augOps[opTok.Type],
		Right:    value,
	}
	return &AssignStatement{Token: name, Target: store, Value: binOp}
}

// FunctionDef introduces a named function. Evaluating the definition creates
// the function's captured namespace; calling the resulting value evaluates
// Body inside it.
type FunctionDef struct {
	Token  token.Token // the 'def' token
	Name   string
	Params []string
	Body   []Statement
}

func (fd *FunctionDef) statementNode()       {}
func (fd *FunctionDef) TokenLiteral() string { return fd.Token.Lexeme }
func (fd *FunctionDef) String() string {
	var out strings.Builder
	fmt.Fprintf(&out, "def %s(%s):", fd.Name, strings.Join(fd.Params, ", "))
	for _, s := range fd.Body {
		out.WriteString(" " + s.String())
	}
	return out.String()
}
func (fd *FunctionDef) GetToken() token.Token {
	if fd == nil {
		return token.Token{}
	}
	return fd.Token
}

// IfStatement. elif clauses have no representation of their own: they appear
// as a nested IfStatement as the sole element of Orelse.
type IfStatement struct {
	Token  token.Token
	Test   Expression
	Body   []Statement
	Orelse []Statement
}

func (is *IfStatement) statementNode()       {}
func (is *IfStatement) TokenLiteral() string { return is.Token.Lexeme }
func (is *IfStatement) String() string {
	var out strings.Builder
	fmt.Fprintf(&out, "if %s:", is.Test.String())
	for _, s := range is.Body {
		out.WriteString(" " + s.String())
	}
	if len(is.Orelse) > 0 {
		out.WriteString(" else:")
		for _, s := range is.Orelse {
			out.WriteString(" " + s.String())
		}
	}
	return out.String()
}
func (is *IfStatement) GetToken() token.Token {
	if is == nil {
		return token.Token{}
	}
	return is.Token
}

type WhileStatement struct {
	Token token.Token
	Test  Expression
	Body  []Statement
}

func (ws *WhileStatement) statementNode()       {}
func (ws *WhileStatement) TokenLiteral() string { return ws.Token.Lexeme }
func (ws *WhileStatement) String() string {
	var out strings.Builder
	fmt.Fprintf(&out, "while %s:", ws.Test.String())
	for _, s := range ws.Body {
		out.WriteString(" " + s.String())
	}
	return out.String()
}
func (ws *WhileStatement) GetToken() token.Token {
	if ws == nil {
		return token.Token{}
	}
	return ws.Token
}

// ReturnStatement carries its expression unevaluated; the call machinery
// evaluates it in the callee namespace when the signal reaches the function
// body boundary.
type ReturnStatement struct {
	Token token.Token
	Value Expression // may be nil
}

func (rs *ReturnStatement) statementNode()       {}
func (rs *ReturnStatement) TokenLiteral() string { return rs.Token.Lexeme }
func (rs *ReturnStatement) String() string {
	if rs.Value == nil {
		return "return"
	}
	return "return " + rs.Value.String()
}
func (rs *ReturnStatement) GetToken() token.Token {
	if rs == nil {
		return token.Token{}
	}
	return rs.Token
}

type BreakStatement struct {
	Token token.Token
}

func (bs *BreakStatement) statementNode()       {}
func (bs *BreakStatement) TokenLiteral() string { return bs.Token.Lexeme }
func (bs *BreakStatement) String() string       { return "break" }
func (bs *BreakStatement) GetToken() token.Token {
	if bs == nil {
		return token.Token{}
	}
	return bs.Token
}

type ContinueStatement struct {
	Token token.Token
}

func (cs *ContinueStatement) statementNode()       {}
func (cs *ContinueStatement) TokenLiteral() string { return cs.Token.Lexeme }
func (cs *ContinueStatement) String() string       { return "continue" }
func (cs *ContinueStatement) GetToken() token.Token {
	if cs == nil {
		return token.Token{}
	}
	return cs.Token
}

type PassStatement struct {
	Token token.Token
}

func (ps *PassStatement) statementNode()       {}
func (ps *PassStatement) TokenLiteral() string { return ps.Token.Lexeme }
func (ps *PassStatement) String() string       { return "pass" }
func (ps *PassStatement) GetToken() token.Token {
	if ps == nil {
		return token.Token{}
	}
	return ps.Token
}

// ExpressionStatement wraps an expression in statement position; the REPL
// prints its result.
type ExpressionStatement struct {
	Token      token.Token
	Expression Expression
}

func (es *ExpressionStatement) statementNode()       {}
func (es *ExpressionStatement) TokenLiteral() string { return es.Token.Lexeme }
func (es *ExpressionStatement) String() string       { return es.Expression.String() }
func (es *ExpressionStatement) GetToken() token.Token {
	if es == nil {
		return token.Token{}
	}
	return es.Token
}
