package token

type TokenType string

type Token struct {
	Type    TokenType
	Lexeme  string
	Literal string
	Line    int
	Column  int
}

const (
	ILLEGAL = "ILLEGAL"
	EOF     = "EOF"

	// Layout. NEWLINE terminates a logical line; INDENT/DEDENT are
	// synthesized by the lexer from leading whitespace.
	NEWLINE = "NEWLINE"
	INDENT  = "INDENT"
	DEDENT  = "DEDENT"

	// Identifiers and literals
	IDENT  = "IDENT"
	INT    = "INT"
	FLOAT  = "FLOAT"
	STRING = "STRING"

	// Operators
	ASSIGN   = "="
	PLUS     = "+"
	MINUS    = "-"
	ASTERISK = "*"
	SLASH    = "/"
	PERCENT  = "%"
	AMP      = "&"
	PIPE     = "|"
	CARET    = "^"
	LSHIFT   = "<<"
	RSHIFT   = ">>"

	PLUS_ASSIGN     = "+="
	MINUS_ASSIGN    = "-="
	ASTERISK_ASSIGN = "*="
	SLASH_ASSIGN    = "/="
	PERCENT_ASSIGN  = "%="
	AMP_ASSIGN      = "&="
	PIPE_ASSIGN     = "|="
	CARET_ASSIGN    = "^="
	LSHIFT_ASSIGN   = "<<="
	RSHIFT_ASSIGN   = ">>="

	EQ     = "=="
	NOT_EQ = "!="
	LT     = "<"
	GT     = ">"
	LE     = "<="
	GE     = ">="

	// Delimiters
	LPAREN = "("
	RPAREN = ")"
	COMMA  = ","
	COLON  = ":"

	// Keywords
	DEF      = "DEF"
	RETURN   = "RETURN"
	IF       = "IF"
	ELIF     = "ELIF"
	ELSE     = "ELSE"
	WHILE    = "WHILE"
	BREAK    = "BREAK"
	CONTINUE = "CONTINUE"
	PASS     = "PASS"
	TRUE     = "TRUE"
	FALSE    = "FALSE"
	NONE     = "NONE"
	AND      = "AND"
	OR       = "OR"
	NOT      = "NOT"
)

var keywords = map[string]TokenType{
	"def":      DEF,
	"return":   RETURN,
	"if":       IF,
	"elif":     ELIF,
	"else":     ELSE,
	"while":    WHILE,
	"break":    BREAK,
	"continue": CONTINUE,
	"pass":     PASS,
	"True":     TRUE,
	"False":    FALSE,
	"None":     NONE,
	"and":      AND,
	"or":       OR,
	"not":      NOT,
}

// LookupIdent returns the keyword token type for ident, or IDENT.
func LookupIdent(ident string) TokenType {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return IDENT
}

// IsAugAssign reports whether t is one of the augmented assignment operators.
func IsAugAssign(t TokenType) bool {
	switch t {
	case PLUS_ASSIGN, MINUS_ASSIGN, ASTERISK_ASSIGN, SLASH_ASSIGN, PERCENT_ASSIGN,
		AMP_ASSIGN, PIPE_ASSIGN, CARET_ASSIGN, LSHIFT_ASSIGN, RSHIFT_ASSIGN:
		return true
	}
	return false
}
