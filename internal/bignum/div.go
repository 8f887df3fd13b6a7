package bignum

import (
	"errors"
	"fmt"
)

// ErrDivisionPrecondition indicates a negative dividend or a non-positive
// divisor passed to [Div] or [DivMod].
var ErrDivisionPrecondition = errors.New("division requires dividend >= 0 and divisor > 0")

// Div returns ⌊dividend / divisor⌋ for dividend >= 0 and divisor > 0.
// Other operands yield an error matching [ErrDivisionPrecondition].
func Div(dividend, divisor BigInt) (BigInt, error) {
	q, _, err := DivMod(dividend, divisor)
	return q, err
}

// DivMod returns q = ⌊dividend / divisor⌋ and r = dividend - q·divisor
// for dividend >= 0 and divisor > 0.
//
// The quotient is produced one decimal place at a time, highest first:
// the divisor is aligned to the place with [Shift] and subtracted from the
// running remainder while it still fits.
func DivMod(dividend, divisor BigInt) (q, r BigInt, err error) {
	if dividend.signum < 0 || divisor.signum <= 0 {
		return BigInt{}, BigInt{}, fmt.Errorf("%w: got %v / %v", ErrDivisionPrecondition, dividend, divisor)
	}
	places := len(dividend.digits) - len(divisor.digits)
	if dividend.signum == 0 || places < 0 {
		return BigInt{}, dividend, nil
	}

	quot := make([]uint8, places+1)
	rem := dividend
	for i := places; i >= 0; i-- {
		shifted := shift(divisor, i)
		var count uint8
		for Compare(rem, shifted) != Less {
			rem = Sub(rem, shifted)
			count++
		}
		// rem < 10·shifted holds on entry to every place.
		if count >= base {
			panic(fmt.Sprintf("bignum: quotient digit %d at place %d", count, i))
		}
		quot[i] = count
		if rem.signum == 0 {
			break
		}
	}
	return fromParts(quot, 1), rem, nil
}

// MustDiv is like [Div] but panics if the division preconditions are violated.
func MustDiv(dividend, divisor BigInt) BigInt {
	q, err := Div(dividend, divisor)
	if err != nil {
		panic(fmt.Sprintf("MustDiv(%v, %v) failed: %v", dividend, divisor, err))
	}
	return q
}
