package lexer

import (
	"testing"

	"github.com/pintlang/pint/internal/token"
)

func tokenTypes(input string) []token.TokenType {
	var types []token.TokenType
	for _, tok := range New(input).Tokens() {
		types = append(types, tok.Type)
	}
	return types
}

func assertTypes(t *testing.T, input string, want []token.TokenType) {
	t.Helper()
	got := tokenTypes(input)
	if len(got) != len(want) {
		t.Fatalf("input %q:\ngot  %v\nwant %v", input, got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("input %q: token %d is %s, want %s\ngot  %v\nwant %v",
				input, i, got[i], want[i], got, want)
		}
	}
}

func TestSimpleStatement(t *testing.T) {
	assertTypes(t, "x = 5",
		[]token.TokenType{token.IDENT, token.ASSIGN, token.INT, token.NEWLINE, token.EOF})
}

func TestOperators(t *testing.T) {
	assertTypes(t, "a + b - c * d / e % f",
		[]token.TokenType{
			token.IDENT, token.PLUS, token.IDENT, token.MINUS, token.IDENT,
			token.ASTERISK, token.IDENT, token.SLASH, token.IDENT,
			token.PERCENT, token.IDENT, token.NEWLINE, token.EOF,
		})
	assertTypes(t, "a & b | c ^ d << e >> f",
		[]token.TokenType{
			token.IDENT, token.AMP, token.IDENT, token.PIPE, token.IDENT,
			token.CARET, token.IDENT, token.LSHIFT, token.IDENT,
			token.RSHIFT, token.IDENT, token.NEWLINE, token.EOF,
		})
	assertTypes(t, "a == b != c <= d >= e < f > g",
		[]token.TokenType{
			token.IDENT, token.EQ, token.IDENT, token.NOT_EQ, token.IDENT,
			token.LE, token.IDENT, token.GE, token.IDENT, token.LT,
			token.IDENT, token.GT, token.IDENT, token.NEWLINE, token.EOF,
		})
}

func TestAugmentedOperators(t *testing.T) {
	tests := []struct {
		input string
		want  token.TokenType
	}{
		{"x += 1", token.PLUS_ASSIGN},
		{"x -= 1", token.MINUS_ASSIGN},
		{"x *= 1", token.ASTERISK_ASSIGN},
		{"x /= 1", token.SLASH_ASSIGN},
		{"x %= 1", token.PERCENT_ASSIGN},
		{"x &= 1", token.AMP_ASSIGN},
		{"x |= 1", token.PIPE_ASSIGN},
		{"x ^= 1", token.CARET_ASSIGN},
		{"x <<= 1", token.LSHIFT_ASSIGN},
		{"x >>= 1", token.RSHIFT_ASSIGN},
	}
	for _, tt := range tests {
		assertTypes(t, tt.input,
			[]token.TokenType{token.IDENT, tt.want, token.INT, token.NEWLINE, token.EOF})
	}
}

func TestKeywords(t *testing.T) {
	assertTypes(t, "def return if elif else while break continue pass True False None and or not",
		[]token.TokenType{
			token.DEF, token.RETURN, token.IF, token.ELIF, token.ELSE,
			token.WHILE, token.BREAK, token.CONTINUE, token.PASS,
			token.TRUE, token.FALSE, token.NONE, token.AND, token.OR,
			token.NOT, token.NEWLINE, token.EOF,
		})
}

func TestIndentation(t *testing.T) {
	input := "while x:\n    x = 1\n    if y:\n        pass\ny = 2\n"
	assertTypes(t, input, []token.TokenType{
		token.WHILE, token.IDENT, token.COLON, token.NEWLINE,
		token.INDENT, token.IDENT, token.ASSIGN, token.INT, token.NEWLINE,
		token.IF, token.IDENT, token.COLON, token.NEWLINE,
		token.INDENT, token.PASS, token.NEWLINE,
		token.DEDENT, token.DEDENT,
		token.IDENT, token.ASSIGN, token.INT, token.NEWLINE,
		token.EOF,
	})
}

func TestDedentAtEOF(t *testing.T) {
	assertTypes(t, "if x:\n    pass", []token.TokenType{
		token.IF, token.IDENT, token.COLON, token.NEWLINE,
		token.INDENT, token.PASS, token.NEWLINE, token.DEDENT, token.EOF,
	})
}

func TestBlankAndCommentLinesIgnored(t *testing.T) {
	input := "x = 1\n\n# a comment\n   # indented comment\ny = 2\n"
	assertTypes(t, input, []token.TokenType{
		token.IDENT, token.ASSIGN, token.INT, token.NEWLINE,
		token.IDENT, token.ASSIGN, token.INT, token.NEWLINE,
		token.EOF,
	})
}

func TestTrailingCommentOnCodeLine(t *testing.T) {
	assertTypes(t, "x = 1  # trailing", []token.TokenType{
		token.IDENT, token.ASSIGN, token.INT, token.NEWLINE, token.EOF,
	})
}

func TestImplicitLineJoiningInParens(t *testing.T) {
	input := "x = (1 +\n     2)\n"
	assertTypes(t, input, []token.TokenType{
		token.IDENT, token.ASSIGN, token.LPAREN, token.INT, token.PLUS,
		token.INT, token.RPAREN, token.NEWLINE, token.EOF,
	})
}

func TestInconsistentDedent(t *testing.T) {
	input := "if x:\n    pass\n  pass\n"
	toks := New(input).Tokens()
	found := false
	for _, tok := range toks {
		if tok.Type == token.ILLEGAL {
			found = true
			if tok.Literal != "unindent does not match any outer indentation level" {
				t.Errorf("unexpected message %q", tok.Literal)
			}
		}
	}
	if !found {
		t.Error("expected an ILLEGAL token for inconsistent dedent")
	}
}

// The DEDENTs queued while popping the indent stack are dropped once the
// dedent turns out inconsistent; the stream after the ILLEGAL token must not
// close blocks that were never closed in the source.
func TestInconsistentDedentEmitsNoPhantomDedents(t *testing.T) {
	toks := New("if x:\n    pass\n  pass\n").Tokens()
	illegalAt := -1
	for i, tok := range toks {
		if tok.Type == token.ILLEGAL {
			illegalAt = i
			break
		}
	}
	if illegalAt < 0 {
		t.Fatal("expected an ILLEGAL token for inconsistent dedent")
	}
	for _, tok := range toks[illegalAt+1:] {
		if tok.Type == token.DEDENT {
			t.Errorf("DEDENT after the indentation error: %v", tokenTypes("if x:\n    pass\n  pass\n"))
			break
		}
	}
}

func TestNumbersAndStrings(t *testing.T) {
	toks := New(`x = 3.25
s = "he\tsaid \"hi\""
t = 'single'
`).Tokens()

	var lits []string
	for _, tok := range toks {
		switch tok.Type {
		case token.FLOAT, token.STRING:
			lits = append(lits, tok.Literal)
		}
	}
	want := []string{"3.25", "he\tsaid \"hi\"", "single"}
	if len(lits) != len(want) {
		t.Fatalf("got literals %q, want %q", lits, want)
	}
	for i := range want {
		if lits[i] != want[i] {
			t.Errorf("literal %d is %q, want %q", i, lits[i], want[i])
		}
	}
}

func TestUnterminatedString(t *testing.T) {
	toks := New(`x = "oops`).Tokens()
	found := false
	for _, tok := range toks {
		if tok.Type == token.ILLEGAL && tok.Literal == "unterminated string literal" {
			found = true
		}
	}
	if !found {
		t.Error("expected an ILLEGAL token for the unterminated string")
	}
}

func TestPositions(t *testing.T) {
	toks := New("x = 5\ny = 6\n").Tokens()
	if toks[0].Line != 1 || toks[0].Column != 1 {
		t.Errorf("first token at %d:%d, want 1:1", toks[0].Line, toks[0].Column)
	}
	// Token 4 is the y on line 2.
	y := toks[4]
	if y.Lexeme != "y" {
		t.Fatalf("token 4 is %q, want y", y.Lexeme)
	}
	if y.Line != 2 || y.Column != 1 {
		t.Errorf("y at %d:%d, want 2:1", y.Line, y.Column)
	}
}
