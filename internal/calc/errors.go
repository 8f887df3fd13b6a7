package calc

import (
	"errors"
	"fmt"

	"decint/internal/bignum"
)

var (
	ErrEmpty          = errors.New("empty expression")
	ErrMissingOperand = errors.New("not enough operands")
	ErrExtraOperand   = errors.New("too many operands")
	ErrShiftRange     = errors.New("shift amount out of range")
)

// Error reports where evaluation of an expression failed.
type Error struct {
	Expr  string // normalized expression text
	Index int    // zero-based token index, -1 when no single token is at fault
	Token string
	Col   int // rune column of the fault within Expr
	Err   error
}

func (e *Error) Error() string {
	if e.Index < 0 {
		return e.Err.Error()
	}
	return fmt.Sprintf("token %d %q: %v", e.Index+1, e.Token, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Message returns the underlying failure without the token prefix.
func (e *Error) Message() string {
	return e.Err.Error()
}

func tokenError(expr string, idx int, tok Token, err error) *Error {
	col := tok.Col
	var perr *bignum.ParseError
	if errors.As(err, &perr) {
		col += perr.Pos
	}
	return &Error{Expr: expr, Index: idx, Token: tok.Text, Col: col, Err: err}
}
