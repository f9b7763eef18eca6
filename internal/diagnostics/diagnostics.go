package diagnostics

import (
	"fmt"

	"github.com/funvibe/mython/internal/token"
)

// Diagnostic codes. L-codes come from the lexer, P-codes from the parser.
const (
	ErrL001 = "L001" // string literal error
	ErrL002 = "L002" // bad indentation
	ErrL003 = "L003" // number literal error

	ErrP001 = "P001" // unexpected token
	ErrP002 = "P002" // malformed statement
	ErrP003 = "P003" // malformed class definition
	ErrP004 = "P004" // malformed method definition
	ErrP005 = "P005" // malformed expression
)

// Diagnostic is a coded error anchored to a source position.
type Diagnostic struct {
	Code    string
	File    string
	Line    int
	Column  int
	Message string
}

func NewError(code string, tok token.Token, format string, args ...interface{}) *Diagnostic {
	return &Diagnostic{
		Code:    code,
		Line:    tok.Line,
		Column:  tok.Column,
		Message: fmt.Sprintf(format, args...),
	}
}

func (d *Diagnostic) Error() string {
	if d.File != "" {
		return fmt.Sprintf("%s:%d:%d: %s: %s", d.File, d.Line, d.Column, d.Code, d.Message)
	}
	return fmt.Sprintf("%d:%d: %s: %s", d.Line, d.Column, d.Code, d.Message)
}
