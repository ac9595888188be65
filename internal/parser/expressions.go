package parser

import (
	"strconv"

	"github.com/pintlang/pint/internal/ast"
	"github.com/pintlang/pint/internal/token"
)

// Operator precedence levels, loosest first.
const (
	_ int = iota
	LOWEST
	OR_PREC      // or
	AND_PREC     // and
	NOT_PREC     // not x
	COMPARE      // == != < <= > >=
	BITOR        // |
	BITXOR       // ^
	BITAND       // &
	SHIFT        // << >>
	SUM          // + -
	PRODUCT      // * / %
	PREFIX       // -x
	CALL         // f(x)
)

var precedences = map[token.TokenType]int{
	token.OR:       OR_PREC,
	token.AND:      AND_PREC,
	token.EQ:       COMPARE,
	token.NOT_EQ:   COMPARE,
	token.LT:       COMPARE,
	token.GT:       COMPARE,
	token.LE:       COMPARE,
	token.GE:       COMPARE,
	token.PIPE:     BITOR,
	token.CARET:    BITXOR,
	token.AMP:      BITAND,
	token.LSHIFT:   SHIFT,
	token.RSHIFT:   SHIFT,
	token.PLUS:     SUM,
	token.MINUS:    SUM,
	token.ASTERISK: PRODUCT,
	token.SLASH:    PRODUCT,
	token.PERCENT:  PRODUCT,
	token.LPAREN:   CALL,
}

func (p *Parser) peekPrecedence() int {
	if prec, ok := precedences[p.peekToken.Type]; ok {
		return prec
	}
	return LOWEST
}

func (p *Parser) curPrecedence() int {
	if prec, ok := precedences[p.curToken.Type]; ok {
		return prec
	}
	return LOWEST
}

// parseExpression leaves curToken on the last token of the expression.
func (p *Parser) parseExpression(precedence int) ast.Expression {
	prefix := p.prefixParseFns[p.curToken.Type]
	if prefix == nil {
		p.noPrefixParseFnError()
		return nil
	}
	leftExp := prefix()
	if leftExp == nil {
		return nil
	}

	for precedence < p.peekPrecedence() {
		infix := p.infixParseFns[p.peekToken.Type]
		if infix == nil {
			return leftExp
		}
		p.nextToken()
		leftExp = infix(leftExp)
		if leftExp == nil {
			return nil
		}
	}

	return leftExp
}

func (p *Parser) noPrefixParseFnError() {
	if p.curTokenIs(token.EOF) {
		p.errorAt(p.curToken, "unexpected end of input in expression")
		return
	}
	if p.curTokenIs(token.NEWLINE) {
		p.errorAt(p.curToken, "unexpected end of line in expression")
		return
	}
	p.errorAt(p.curToken, "unexpected %s in expression", p.curToken.Type)
}

// parseName always builds a load-context reference; assignment targets are
// constructed with Store context by the statement parser, never here.
func (p *Parser) parseName() ast.Expression {
	return &ast.Name{Token: p.curToken, Value: p.curToken.Lexeme, Ctx: ast.Load}
}

func (p *Parser) parseIntegerLiteral() ast.Expression {
	value, err := strconv.ParseInt(p.curToken.Lexeme, 10, 64)
	if err != nil {
		p.errorAt(p.curToken, "could not parse %q as integer", p.curToken.Lexeme)
		return nil
	}
	return &ast.IntegerLiteral{Token: p.curToken, Value: value}
}

func (p *Parser) parseFloatLiteral() ast.Expression {
	value, err := strconv.ParseFloat(p.curToken.Lexeme, 64)
	if err != nil {
		p.errorAt(p.curToken, "could not parse %q as float", p.curToken.Lexeme)
		return nil
	}
	return &ast.FloatLiteral{Token: p.curToken, Value: value}
}

func (p *Parser) parseStringLiteral() ast.Expression {
	return &ast.StringLiteral{Token: p.curToken, Value: p.curToken.Literal}
}

func (p *Parser) parseBooleanLiteral() ast.Expression {
	return &ast.BooleanLiteral{Token: p.curToken, Value: p.curTokenIs(token.TRUE)}
}

func (p *Parser) parseNoneLiteral() ast.Expression {
	return &ast.NoneLiteral{Token: p.curToken}
}

func (p *Parser) parsePrefixExpression() ast.Expression {
	expression := &ast.PrefixExpression{Token: p.curToken, Operator: p.curToken.Lexeme}
	p.nextToken()
	expression.Right = p.parseExpression(PREFIX)
	if expression.Right == nil {
		return nil
	}
	return expression
}

func (p *Parser) parseNotExpression() ast.Expression {
	expression := &ast.PrefixExpression{Token: p.curToken, Operator: "not"}
	p.nextToken()
	expression.Right = p.parseExpression(NOT_PREC)
	if expression.Right == nil {
		return nil
	}
	return expression
}

func (p *Parser) parseInfixExpression(left ast.Expression) ast.Expression {
	expression := &ast.InfixExpression{
		Token:    p.curToken,
		Left:     left,
		Operator: p.curToken.Lexeme,
	}
	precedence := p.curPrecedence()
	p.nextToken()
	expression.Right = p.parseExpression(precedence)
	if expression.Right == nil {
		return nil
	}
	return expression
}

func (p *Parser) parseGroupedExpression() ast.Expression {
	p.nextToken()
	exp := p.parseExpression(LOWEST)
	if exp == nil {
		return nil
	}
	if !p.expectPeek(token.RPAREN) {
		return nil
	}
	return exp
}

func (p *Parser) parseCallExpression(function ast.Expression) ast.Expression {
	exp := &ast.CallExpression{Token: p.curToken, Function: function}

	for !p.peekTokenIs(token.RPAREN) {
		p.nextToken()
		arg := p.parseExpression(LOWEST)
		if arg == nil {
			return nil
		}
		exp.Arguments = append(exp.Arguments, arg)
		if p.peekTokenIs(token.COMMA) {
			p.nextToken()
		} else if !p.peekTokenIs(token.RPAREN) {
			p.peekError(token.RPAREN)
			return nil
		}
	}
	p.nextToken() // onto ')'

	return exp
}
