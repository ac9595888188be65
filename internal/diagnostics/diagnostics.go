package diagnostics

import (
	"fmt"

	"github.com/pintlang/pint/internal/token"
)

// Stable error codes. Tools matching on diagnostics key off these, not the
// message text.
const (
	ErrL001 = "L001" // lexer: illegal character or malformed literal
	ErrL002 = "L002" // lexer: inconsistent indentation
	ErrP001 = "P001" // parser: unexpected token
	ErrP002 = "P002" // parser: unexpected end of input (REPL reads more)
	ErrR100 = "R100" // runtime: unbound name
	ErrR101 = "R101" // runtime: call arity mismatch
	ErrR102 = "R102" // runtime: operator or type error
)

// Error is a positioned diagnostic produced by any pipeline stage.
type Error struct {
	Code    string
	File    string
	Line    int
	Column  int
	Message string
}

func NewError(code string, tok token.Token, message string) *Error {
	return &Error{
		Code:    code,
		Line:    tok.Line,
		Column:  tok.Column,
		Message: message,
	}
}

func (e *Error) Error() string {
	file := e.File
	if file == "" {
		file = "<input>"
	}
	if e.Line > 0 {
		return fmt.Sprintf("%s:%d:%d: [%s] %s", file, e.Line, e.Column, e.Code, e.Message)
	}
	return fmt.Sprintf("%s: [%s] %s", file, e.Code, e.Message)
}
