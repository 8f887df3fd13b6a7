package bignum

import (
	"errors"
	"slices"
)

// BigInt represents a big signed integer.
// It is safe for concurrent use by multiple goroutines.
type BigInt struct {
	// digits are base-10 little-endian magnitude (digits[0] is least significant).
	//
	// Canonical zero is represented as signum=0 and nil/empty digits.
	digits []uint8
	signum int8
}

// ErrNegativeShift indicates a negative power of ten passed to [Shift].
var ErrNegativeShift = errors.New("negative shift")

// fromParts normalizes a raw digit buffer and applies factor (+1 or -1)
// unless the buffer turns out to be zero.
func fromParts(digits []uint8, factor int8) BigInt {
	digits = trimDigits(digits)
	if len(digits) == 0 {
		return BigInt{}
	}
	return BigInt{digits: digits, signum: factor}
}

// Zero returns the canonical zero.
func Zero() BigInt { return BigInt{} }

// One returns 1.
func One() BigInt { return BigInt{digits: []uint8{1}, signum: 1} }

// Sign returns -1, 0 or +1.
func (i BigInt) Sign() int { return int(i.signum) }

// IsZero reports whether the integer is zero.
func (i BigInt) IsZero() bool { return i.signum == 0 }

// Len returns the number of decimal digits in the magnitude.
// Zero has no digits.
func (i BigInt) Len() int { return len(i.digits) }

// Digits returns a copy of the magnitude digits, least significant first.
func (i BigInt) Digits() []uint8 { return slices.Clone(i.digits) }

// Abs returns the absolute value.
func (i BigInt) Abs() BigInt {
	if i.signum < 0 {
		return i.Negated()
	}
	return i
}

// Negated returns the negated value.
// The digit buffer is shared, which is fine since it is never written.
func (i BigInt) Negated() BigInt {
	return BigInt{digits: i.digits, signum: -i.signum}
}

// Cmp compares two BigInt values and returns -1, 0, or 1.
func (i BigInt) Cmp(j BigInt) int { return int(Compare(i, j)) }

// Equal reports whether i and j have the same value.
func (i BigInt) Equal(j BigInt) bool { return i.signum == j.signum && slices.Equal(i.digits, j.digits) }

// Neg returns -a.
func Neg(a BigInt) BigInt { return a.Negated() }

// Add returns a + b.
func Add(a, b BigInt) BigInt {
	switch {
	case b.signum == 0:
		return a
	case a.signum == 0:
		return b
	case a.signum < 0 && b.signum < 0:
		return Add(a.Negated(), b.Negated()).Negated()
	case a.signum > 0 && b.signum > 0:
		return fromParts(addDigits(a.digits, b.digits), 1)
	}
	pos, neg := a, b
	if pos.signum < 0 {
		pos, neg = b, a
	}
	digits, factor := subDigits(pos.digits, neg.digits)
	return fromParts(digits, factor)
}

// Sub returns a - b.
func Sub(a, b BigInt) BigInt {
	return Add(a, b.Negated())
}

// Shift returns x * 10^k.
func Shift(x BigInt, k int) (BigInt, error) {
	if k < 0 {
		return BigInt{}, ErrNegativeShift
	}
	return shift(x, k), nil
}

func shift(x BigInt, k int) BigInt {
	return fromParts(shiftDigits(x.digits, k), x.signum)
}

// split returns the magnitudes of the n least significant digits of x and
// of the remaining digits, both non-negative.
func (i BigInt) split(n int) (lo, hi BigInt) {
	l, h := splitDigits(i.digits, n)
	return fromParts(l, 1), fromParts(h, 1)
}
