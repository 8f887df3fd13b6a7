package bignum

import (
	"errors"
	"fmt"
	"slices"
)

var ErrParse = errors.New("invalid numeric format")

// ParseErrorKind classifies a [ParseError].
type ParseErrorKind uint8

const (
	// UnexpectedCharacter is a character that is neither a digit nor a sign.
	UnexpectedCharacter ParseErrorKind = iota + 1
	// MisplacedSign is a '-' that is not the first character, including a second '-'.
	MisplacedSign
	// MissingDigits is an input without any digit.
	MissingDigits
)

func (k ParseErrorKind) String() string {
	switch k {
	case UnexpectedCharacter:
		return "unexpected character"
	case MisplacedSign:
		return "misplaced sign"
	case MissingDigits:
		return "missing digits"
	default:
		return "unknown"
	}
}

// ParseError describes why [Parse] rejected its input.
// Pos is the 0-based rune index of Char in Input.
type ParseError struct {
	Kind  ParseErrorKind
	Input string
	Char  rune
	Pos   int
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case MissingDigits:
		return fmt.Sprintf("%v: %q: %v", ErrParse, e.Input, e.Kind)
	default:
		return fmt.Sprintf("%v: %q: %v %q at position %d", ErrParse, e.Input, e.Kind, e.Char, e.Pos)
	}
}

func (e *ParseError) Unwrap() error { return ErrParse }

// Parse converts a decimal string to a BigInt.
// The accepted grammar is:
//
//	sign   ::= '-'
//	digits ::= digit { digit }
//	int    ::= [sign] digits
//
// Leading zeros are allowed and dropped; "-0" is zero.
func Parse(s string) (BigInt, error) {
	digits := make([]uint8, 0, len(s))
	var factor int8 = 1
	pos := 0
	for _, ch := range s {
		switch {
		case ch >= '0' && ch <= '9':
			digits = append(digits, uint8(ch-'0'))
		case ch == '-' && pos == 0:
			factor = -1
		case ch == '-':
			return BigInt{}, &ParseError{Kind: MisplacedSign, Input: s, Char: ch, Pos: pos}
		default:
			return BigInt{}, &ParseError{Kind: UnexpectedCharacter, Input: s, Char: ch, Pos: pos}
		}
		pos++
	}
	if len(digits) == 0 {
		return BigInt{}, &ParseError{Kind: MissingDigits, Input: s}
	}
	slices.Reverse(digits)
	return fromParts(digits, factor), nil
}

// MustParse is like [Parse] but panics if the string cannot be parsed.
func MustParse(s string) BigInt {
	i, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("MustParse(%q) failed: %v", s, err))
	}
	return i
}
