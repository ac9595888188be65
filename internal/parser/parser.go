package parser

import (
	"fmt"

	"github.com/pintlang/pint/internal/ast"
	"github.com/pintlang/pint/internal/diagnostics"
	"github.com/pintlang/pint/internal/pipeline"
	"github.com/pintlang/pint/internal/token"
)

type (
	prefixParseFn func() ast.Expression
	infixParseFn  func(ast.Expression) ast.Expression
)

// Parser is a recursive-descent parser over the lexer's token stream. It
// records diagnostics into the pipeline context instead of stopping at the
// first error; an unexpected end of input gets the dedicated ErrP002 code so
// the REPL can tell "read more" apart from a real syntax error.
type Parser struct {
	tokens []token.Token
	pos    int

	curToken  token.Token
	peekToken token.Token

	ctx *pipeline.Context

	prefixParseFns map[token.TokenType]prefixParseFn
	infixParseFns  map[token.TokenType]infixParseFn
}

func New(tokens []token.Token, ctx *pipeline.Context) *Parser {
	p := &Parser{tokens: tokens, ctx: ctx}

	p.prefixParseFns = make(map[token.TokenType]prefixParseFn)
	p.registerPrefix(token.IDENT, p.parseName)
	p.registerPrefix(token.INT, p.parseIntegerLiteral)
	p.registerPrefix(token.FLOAT, p.parseFloatLiteral)
	p.registerPrefix(token.STRING, p.parseStringLiteral)
	p.registerPrefix(token.TRUE, p.parseBooleanLiteral)
	p.registerPrefix(token.FALSE, p.parseBooleanLiteral)
	p.registerPrefix(token.NONE, p.parseNoneLiteral)
	p.registerPrefix(token.MINUS, p.parsePrefixExpression)
	p.registerPrefix(token.NOT, p.parseNotExpression)
	p.registerPrefix(token.LPAREN, p.parseGroupedExpression)

	p.infixParseFns = make(map[token.TokenType]infixParseFn)
	for _, t := range []token.TokenType{
		token.PLUS, token.MINUS, token.ASTERISK, token.SLASH, token.PERCENT,
		token.AMP, token.PIPE, token.CARET, token.LSHIFT, token.RSHIFT,
		token.EQ, token.NOT_EQ, token.LT, token.GT, token.LE, token.GE,
		token.AND, token.OR,
	} {
		p.registerInfix(t, p.parseInfixExpression)
	}
	p.registerInfix(token.LPAREN, p.parseCallExpression)

	// Prime curToken and peekToken.
	p.nextToken()
	p.nextToken()
	return p
}

func (p *Parser) registerPrefix(t token.TokenType, fn prefixParseFn) { p.prefixParseFns[t] = fn }
func (p *Parser) registerInfix(t token.TokenType, fn infixParseFn) { p.infixParseFns[t] = fn }

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	if p.pos < len(p.tokens) {
		p.peekToken = p.tokens[p.pos]
		p.pos++
	} else if len(p.tokens) > 0 {
		p.peekToken = p.tokens[len(p.tokens)-1]
	}
}

func (p *Parser) curTokenIs(t token.TokenType) bool  { return p.curToken.Type == t }
func (p *Parser) peekTokenIs(t token.TokenType) bool { return p.peekToken.Type == t }

func (p *Parser) expectPeek(t token.TokenType) bool {
	if p.peekTokenIs(t) {
		p.nextToken()
		return true
	}
	p.peekError(t)
	return false
}

func (p *Parser) peekError(t token.TokenType) {
	if p.peekTokenIs(token.EOF) {
		p.ctx.Errors = append(p.ctx.Errors, diagnostics.NewError(
			diagnostics.ErrP002,
			p.peekToken,
			fmt.Sprintf("unexpected end of input, expected %s", t),
		))
		return
	}
	p.ctx.Errors = append(p.ctx.Errors, diagnostics.NewError(
		diagnostics.ErrP001,
		p.peekToken,
		fmt.Sprintf("expected %s, got %s", t, p.peekToken.Type),
	))
}

func (p *Parser) errorAt(tok token.Token, format string, args ...interface{}) {
	code := diagnostics.ErrP001
	if tok.Type == token.EOF {
		code = diagnostics.ErrP002
	}
	p.ctx.Errors = append(p.ctx.Errors, diagnostics.NewError(code, tok, fmt.Sprintf(format, args...)))
}

// skipToStatementBoundary advances past the rest of the current logical line
// so one syntax error does not cascade.
func (p *Parser) skipToStatementBoundary() {
	for !p.curTokenIs(token.NEWLINE) && !p.curTokenIs(token.EOF) {
		p.nextToken()
	}
	if p.curTokenIs(token.NEWLINE) {
		p.nextToken()
	}
}

func (p *Parser) ParseProgram() *ast.Program {
	program := &ast.Program{}

	for !p.curTokenIs(token.EOF) {
		if p.curTokenIs(token.NEWLINE) {
			p.nextToken()
			continue
		}
		stmt := p.parseStatement()
		if stmt == nil {
			p.skipToStatementBoundary()
			continue
		}
		program.Statements = append(program.Statements, stmt)
	}

	return program
}

// parseStatement parses one statement and leaves curToken on the first token
// after it (simple statements consume their terminating NEWLINE, compound
// statements the DEDENT that closes their suite).
func (p *Parser) parseStatement() ast.Statement {
	switch p.curToken.Type {
	case token.IF:
		return p.parseIfStatement()
	case token.WHILE:
		return p.parseWhileStatement()
	case token.DEF:
		return p.parseFunctionDef()
	default:
		stmt := p.parseSimpleStatement()
		if stmt == nil {
			return nil
		}
		if !p.endOfLine() {
			return nil
		}
		return stmt
	}
}

// endOfLine consumes the NEWLINE terminating a simple statement.
func (p *Parser) endOfLine() bool {
	if p.curTokenIs(token.NEWLINE) {
		p.nextToken()
		return true
	}
	if p.curTokenIs(token.EOF) {
		return true
	}
	p.errorAt(p.curToken, "unexpected %s after statement", p.curToken.Type)
	return false
}

func (p *Parser) parseSimpleStatement() ast.Statement {
	switch p.curToken.Type {
	case token.RETURN:
		return p.parseReturnStatement()
	case token.BREAK:
		stmt := &ast.BreakStatement{Token: p.curToken}
		p.nextToken()
		return stmt
	case token.CONTINUE:
		stmt := &ast.ContinueStatement{Token: p.curToken}
		p.nextToken()
		return stmt
	case token.PASS:
		stmt := &ast.PassStatement{Token: p.curToken}
		p.nextToken()
		return stmt
	case token.IDENT:
		if p.peekTokenIs(token.ASSIGN) {
			return p.parseAssignStatement()
		}
		if token.IsAugAssign(p.peekToken.Type) {
			return p.parseAugAssignStatement()
		}
		return p.parseExpressionStatement()
	default:
		return p.parseExpressionStatement()
	}
}

func (p *Parser) parseReturnStatement() ast.Statement {
	stmt := &ast.ReturnStatement{Token: p.curToken}
	p.nextToken()
	if p.curTokenIs(token.NEWLINE) || p.curTokenIs(token.EOF) {
		return stmt
	}
	stmt.Value = p.parseExpression(LOWEST)
	if stmt.Value == nil {
		return nil
	}
	p.nextToken()
	return stmt
}

func (p *Parser) parseAssignStatement() ast.Statement {
	nameTok := p.curToken
	target := &ast.Name{Token: nameTok, Value: nameTok.Lexeme, Ctx: ast.Store}

	p.nextToken() // onto '='
	assignTok := p.curToken
	p.nextToken() // onto first value token

	value := p.parseExpression(LOWEST)
	if value == nil {
		return nil
	}
	p.nextToken()

	return &ast.AssignStatement{Token: assignTok, Target: target, Value: value}
}

func (p *Parser) parseAugAssignStatement() ast.Statement {
	nameTok := p.curToken

	p.nextToken() // onto the augmented operator
	opTok := p.curToken
	p.nextToken() // onto first value token

	value := p.parseExpression(LOWEST)
	if value == nil {
		return nil
	}
	p.nextToken()

	return ast.NewAugAssignStatement(opTok, nameTok, value)
}

func (p *Parser) parseExpressionStatement() ast.Statement {
	stmt := &ast.ExpressionStatement{Token: p.curToken}
	stmt.Expression = p.parseExpression(LOWEST)
	if stmt.Expression == nil {
		return nil
	}
	p.nextToken()
	return stmt
}

func (p *Parser) parseIfStatement() ast.Statement {
	stmt := &ast.IfStatement{Token: p.curToken}
	p.nextToken()

	stmt.Test = p.parseExpression(LOWEST)
	if stmt.Test == nil {
		return nil
	}
	if !p.expectPeek(token.COLON) {
		return nil
	}

	stmt.Body = p.parseSuite()
	if stmt.Body == nil {
		return nil
	}

	// elif chains nest as an IfStatement inside Orelse; parseIfStatement
	// never inspects the leading keyword, so it handles both.
	if p.curTokenIs(token.ELIF) {
		nested := p.parseIfStatement()
		if nested == nil {
			return nil
		}
		stmt.Orelse = []ast.Statement{nested}
		return stmt
	}

	if p.curTokenIs(token.ELSE) {
		if !p.expectPeek(token.COLON) {
			return nil
		}
		stmt.Orelse = p.parseSuite()
		if stmt.Orelse == nil {
			return nil
		}
	}

	return stmt
}

func (p *Parser) parseWhileStatement() ast.Statement {
	stmt := &ast.WhileStatement{Token: p.curToken}
	p.nextToken()

	stmt.Test = p.parseExpression(LOWEST)
	if stmt.Test == nil {
		return nil
	}
	if !p.expectPeek(token.COLON) {
		return nil
	}

	stmt.Body = p.parseSuite()
	if stmt.Body == nil {
		return nil
	}
	return stmt
}

func (p *Parser) parseFunctionDef() ast.Statement {
	stmt := &ast.FunctionDef{Token: p.curToken}

	if !p.expectPeek(token.IDENT) {
		return nil
	}
	stmt.Name = p.curToken.Lexeme

	if !p.expectPeek(token.LPAREN) {
		return nil
	}

	for !p.peekTokenIs(token.RPAREN) {
		if !p.expectPeek(token.IDENT) {
			return nil
		}
		stmt.Params = append(stmt.Params, p.curToken.Lexeme)
		if p.peekTokenIs(token.COMMA) {
			p.nextToken()
		} else if !p.peekTokenIs(token.RPAREN) {
			p.peekError(token.RPAREN)
			return nil
		}
	}
	p.nextToken() // onto ')'

	if !p.expectPeek(token.COLON) {
		return nil
	}

	stmt.Body = p.parseSuite()
	if stmt.Body == nil {
		return nil
	}
	return stmt
}

// parseSuite parses the statements following a ':'. Either an inline simple
// statement on the same line, or a NEWLINE INDENT block DEDENT. curToken is
// on the ':' when called; on return it is past the suite.
func (p *Parser) parseSuite() []ast.Statement {
	p.nextToken() // past ':'

	if !p.curTokenIs(token.NEWLINE) {
		stmt := p.parseSimpleStatement()
		if stmt == nil {
			return nil
		}
		if !p.endOfLine() {
			return nil
		}
		return []ast.Statement{stmt}
	}

	p.nextToken() // past NEWLINE
	if p.curTokenIs(token.EOF) {
		p.errorAt(p.curToken, "expected an indented block")
		return nil
	}
	if !p.curTokenIs(token.INDENT) {
		p.errorAt(p.curToken, "expected an indented block, got %s", p.curToken.Type)
		return nil
	}
	p.nextToken() // past INDENT

	var body []ast.Statement
	for !p.curTokenIs(token.DEDENT) && !p.curTokenIs(token.EOF) {
		if p.curTokenIs(token.NEWLINE) {
			p.nextToken()
			continue
		}
		stmt := p.parseStatement()
		if stmt == nil {
			return nil
		}
		body = append(body, stmt)
	}
	if p.curTokenIs(token.DEDENT) {
		p.nextToken()
	}

	if len(body) == 0 {
		p.errorAt(p.curToken, "expected at least one statement in block")
		return nil
	}
	return body
}
