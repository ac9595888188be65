package lexer

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/pintlang/pint/internal/token"
)

// Lexer scans Python-style source: newline-terminated logical lines with
// INDENT/DEDENT tokens synthesized from leading whitespace. Inside
// parentheses newlines are insignificant (implicit line joining).
type Lexer struct {
	input        string
	position     int  // current position in input (points to current char)
	readPosition int  // current reading position in input (after current char)
	ch           rune // current char under examination
	line         int  // current line number
	column       int  // current column number

	indents     []int         // indentation stack, always holds at least 0
	pending     []token.Token // queued INDENT/DEDENT/NEWLINE tokens
	atLineStart bool
	parenDepth  int
	eofEmitted  bool
}

func New(input string) *Lexer {
	l := &Lexer{
		input:       input,
		line:        1,
		column:      0,
		indents:     []int{0},
		atLineStart: true,
	}
	l.readChar()
	return l
}

func (l *Lexer) readChar() {
	if l.ch == '\n' {
		l.line++
		l.column = 0
	}

	if l.readPosition >= len(l.input) {
		l.ch = 0
	} else {
		r, w := utf8.DecodeRuneInString(l.input[l.readPosition:])
		l.ch = r
		l.position = l.readPosition
		l.readPosition += w
		l.column++
		return
	}

	l.position = l.readPosition
	l.readPosition++
	l.column++
}

func (l *Lexer) peekChar() rune {
	if l.readPosition >= len(l.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.readPosition:])
	return r
}

// Tokens scans the whole input and returns the token stream, terminated by
// EOF. Illegal input shows up as ILLEGAL tokens carrying the message in
// Literal; the LexerProcessor turns those into diagnostics.
func (l *Lexer) Tokens() []token.Token {
	var toks []token.Token
	for {
		tok := l.NextToken()
		toks = append(toks, tok)
		if tok.Type == token.EOF {
			return toks
		}
	}
}

func (l *Lexer) NextToken() token.Token {
	if len(l.pending) > 0 {
		tok := l.pending[0]
		l.pending = l.pending[1:]
		return tok
	}

	if l.atLineStart && l.parenDepth == 0 {
		if tok, ok := l.scanIndentation(); ok {
			return tok
		}
	}

	l.skipSpaces()
	l.skipComment()

	switch l.ch {
	case '\n':
		l.readChar()
		if l.parenDepth > 0 {
			return l.NextToken()
		}
		l.atLineStart = true
		return token.Token{Type: token.NEWLINE, Lexeme: "\n", Line: l.line - 1, Column: l.column}
	case 0:
		return l.eofToken()
	case '=':
		if l.peekChar() == '=' {
			l.readChar()
			return l.emit(token.EQ, "==")
		}
		return l.emitChar(token.ASSIGN)
	case '+':
		if l.peekChar() == '=' {
			l.readChar()
			return l.emit(token.PLUS_ASSIGN, "+=")
		}
		return l.emitChar(token.PLUS)
	case '-':
		if l.peekChar() == '=' {
			l.readChar()
			return l.emit(token.MINUS_ASSIGN, "-=")
		}
		return l.emitChar(token.MINUS)
	case '*':
		if l.peekChar() == '=' {
			l.readChar()
			return l.emit(token.ASTERISK_ASSIGN, "*=")
		}
		return l.emitChar(token.ASTERISK)
	case '/':
		if l.peekChar() == '=' {
			l.readChar()
			return l.emit(token.SLASH_ASSIGN, "/=")
		}
		return l.emitChar(token.SLASH)
	case '%':
		if l.peekChar() == '=' {
			l.readChar()
			return l.emit(token.PERCENT_ASSIGN, "%=")
		}
		return l.emitChar(token.PERCENT)
	case '&':
		if l.peekChar() == '=' {
			l.readChar()
			return l.emit(token.AMP_ASSIGN, "&=")
		}
		return l.emitChar(token.AMP)
	case '|':
		if l.peekChar() == '=' {
			l.readChar()
			return l.emit(token.PIPE_ASSIGN, "|=")
		}
		return l.emitChar(token.PIPE)
	case '^':
		if l.peekChar() == '=' {
			l.readChar()
			return l.emit(token.CARET_ASSIGN, "^=")
		}
		return l.emitChar(token.CARET)
	case '<':
		if l.peekChar() == '<' {
			l.readChar()
			if l.peekChar() == '=' {
				l.readChar()
				return l.emit(token.LSHIFT_ASSIGN, "<<=")
			}
			return l.emit(token.LSHIFT, "<<")
		}
		if l.peekChar() == '=' {
			l.readChar()
			return l.emit(token.LE, "<=")
		}
		return l.emitChar(token.LT)
	case '>':
		if l.peekChar() == '>' {
			l.readChar()
			if l.peekChar() == '=' {
				l.readChar()
				return l.emit(token.RSHIFT_ASSIGN, ">>=")
			}
			return l.emit(token.RSHIFT, ">>")
		}
		if l.peekChar() == '=' {
			l.readChar()
			return l.emit(token.GE, ">=")
		}
		return l.emitChar(token.GT)
	case '!':
		if l.peekChar() == '=' {
			l.readChar()
			return l.emit(token.NOT_EQ, "!=")
		}
		tok := l.illegal("unexpected character '!'")
		l.readChar()
		return tok
	case '(':
		l.parenDepth++
		return l.emitChar(token.LPAREN)
	case ')':
		if l.parenDepth > 0 {
			l.parenDepth--
		}
		return l.emitChar(token.RPAREN)
	case ',':
		return l.emitChar(token.COMMA)
	case ':':
		return l.emitChar(token.COLON)
	case '\'', '"':
		return l.readString(l.ch)
	default:
		if isIdentStart(l.ch) {
			return l.readIdentifier()
		}
		if unicode.IsDigit(l.ch) {
			return l.readNumber()
		}
		tok := l.illegal("unexpected character " + strings.TrimSpace(string(l.ch)))
		l.readChar()
		return tok
	}
}

// scanIndentation measures leading whitespace at a line start and queues the
// INDENT/DEDENT tokens it implies. Blank and comment-only lines produce
// nothing at all, so they never affect block structure.
func (l *Lexer) scanIndentation() (token.Token, bool) {
	width := 0
	for l.ch == ' ' || l.ch == '\t' {
		if l.ch == '\t' {
			width = (width/8 + 1) * 8
		} else {
			width++
		}
		l.readChar()
	}

	if l.ch == '#' {
		l.skipComment()
	}
	if l.ch == '\n' {
		l.readChar()
		return l.NextToken(), true
	}
	if l.ch == 0 {
		return l.eofToken(), true
	}

	l.atLineStart = false
	current := l.indents[len(l.indents)-1]

	if width > current {
		l.indents = append(l.indents, width)
		return token.Token{Type: token.INDENT, Line: l.line, Column: 1}, true
	}

	if width < current {
		for len(l.indents) > 1 && l.indents[len(l.indents)-1] > width {
			l.indents = l.indents[:len(l.indents)-1]
			l.pending = append(l.pending, token.Token{Type: token.DEDENT, Line: l.line, Column: 1})
		}
		if l.indents[len(l.indents)-1] != width {
			// Drop the DEDENTs queued above so the parser does not see
			// phantom block closures after the error.
			l.pending = nil
			return token.Token{
				Type:    token.ILLEGAL,
				Literal: "unindent does not match any outer indentation level",
				Line:    l.line,
				Column:  1,
			}, true
		}
		tok := l.pending[0]
		l.pending = l.pending[1:]
		return tok, true
	}

	return token.Token{}, false
}

// eofToken closes the final logical line and any open blocks before EOF, so
// the parser never needs a special case for files without a trailing newline.
func (l *Lexer) eofToken() token.Token {
	if !l.eofEmitted {
		l.eofEmitted = true
		if !l.atLineStart {
			l.pending = append(l.pending, token.Token{Type: token.NEWLINE, Lexeme: "\n", Line: l.line, Column: l.column})
		}
		for len(l.indents) > 1 {
			l.indents = l.indents[:len(l.indents)-1]
			l.pending = append(l.pending, token.Token{Type: token.DEDENT, Line: l.line, Column: l.column})
		}
		l.pending = append(l.pending, token.Token{Type: token.EOF, Line: l.line, Column: l.column})
		tok := l.pending[0]
		l.pending = l.pending[1:]
		return tok
	}
	return token.Token{Type: token.EOF, Line: l.line, Column: l.column}
}

func (l *Lexer) readIdentifier() token.Token {
	line, column := l.line, l.column
	start := l.position
	for isIdentStart(l.ch) || unicode.IsDigit(l.ch) {
		l.readChar()
	}
	lexeme := l.input[start:l.position]
	return token.Token{
		Type:    token.LookupIdent(lexeme),
		Lexeme:  lexeme,
		Literal: lexeme,
		Line:    line,
		Column:  column,
	}
}

func (l *Lexer) readNumber() token.Token {
	line, column := l.line, l.column
	start := l.position
	typ := token.TokenType(token.INT)
	for unicode.IsDigit(l.ch) {
		l.readChar()
	}
	if l.ch == '.' && unicode.IsDigit(l.peekChar()) {
		typ = token.FLOAT
		l.readChar()
		for unicode.IsDigit(l.ch) {
			l.readChar()
		}
	}
	lexeme := l.input[start:l.position]
	return token.Token{Type: typ, Lexeme: lexeme, Literal: lexeme, Line: line, Column: column}
}

func (l *Lexer) readString(quote rune) token.Token {
	line, column := l.line, l.column
	start := l.position
	var out strings.Builder
	l.readChar()
	for l.ch != quote {
		if l.ch == 0 || l.ch == '\n' {
			return token.Token{
				Type:    token.ILLEGAL,
				Literal: "unterminated string literal",
				Line:    line,
				Column:  column,
			}
		}
		if l.ch == '\\' {
			l.readChar()
			switch l.ch {
			case 'n':
				out.WriteRune('\n')
			case 't':
				out.WriteRune('\t')
			case '\\':
				out.WriteRune('\\')
			case '\'':
				out.WriteRune('\'')
			case '"':
				out.WriteRune('"')
			default:
				out.WriteRune('\\')
				out.WriteRune(l.ch)
			}
		} else {
			out.WriteRune(l.ch)
		}
		l.readChar()
	}
	l.readChar()
	return token.Token{
		Type:    token.STRING,
		Lexeme:  l.input[start:l.position],
		Literal: out.String(),
		Line:    line,
		Column:  column,
	}
}

func (l *Lexer) skipSpaces() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\r' {
		l.readChar()
	}
}

func (l *Lexer) skipComment() {
	if l.ch == '#' {
		for l.ch != '\n' && l.ch != 0 {
			l.readChar()
		}
	}
}

func (l *Lexer) emit(t token.TokenType, lexeme string) token.Token {
	tok := token.Token{Type: t, Lexeme: lexeme, Literal: lexeme, Line: l.line, Column: l.column - len(lexeme) + 1}
	l.readChar()
	return tok
}

func (l *Lexer) emitChar(t token.TokenType) token.Token {
	tok := token.Token{Type: t, Lexeme: string(l.ch), Literal: string(l.ch), Line: l.line, Column: l.column}
	l.readChar()
	return tok
}

func (l *Lexer) illegal(message string) token.Token {
	return token.Token{Type: token.ILLEGAL, Literal: message, Line: l.line, Column: l.column}
}

func isIdentStart(ch rune) bool {
	return ch == '_' || unicode.IsLetter(ch)
}
