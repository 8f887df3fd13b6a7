package calc

import (
	"fmt"

	"fortio.org/safecast"

	"decint/internal/bignum"
)

// MaxShift bounds the place count accepted by "shl".
const MaxShift = 1 << 20

type operator struct {
	arity int
	unary func(x bignum.BigInt) bignum.BigInt
	// binary receives the left operand first
	binary func(x, y bignum.BigInt) (bignum.BigInt, error)
}

var operators = map[string]operator{
	"+":   {arity: 2, binary: total(bignum.Add)},
	"-":   {arity: 2, binary: total(bignum.Sub)},
	"*":   {arity: 2, binary: total(bignum.Mul)},
	"/":   {arity: 2, binary: bignum.Div},
	"%":   {arity: 2, binary: rem},
	"cmp": {arity: 2, binary: cmp},
	"max": {arity: 2, binary: total(bignum.Max)},
	"min": {arity: 2, binary: total(bignum.Min)},
	"shl": {arity: 2, binary: shl},
	"neg": {arity: 1, unary: bignum.Neg},
	"abs": {arity: 1, unary: bignum.BigInt.Abs},
}

// IsOperator reports whether tok names an operator.
func IsOperator(tok string) bool {
	_, ok := operators[tok]
	return ok
}

func total(fn func(x, y bignum.BigInt) bignum.BigInt) func(x, y bignum.BigInt) (bignum.BigInt, error) {
	return func(x, y bignum.BigInt) (bignum.BigInt, error) {
		return fn(x, y), nil
	}
}

func rem(x, y bignum.BigInt) (bignum.BigInt, error) {
	_, r, err := bignum.DivMod(x, y)
	return r, err
}

func cmp(x, y bignum.BigInt) (bignum.BigInt, error) {
	return bignum.FromInt64(int64(x.Cmp(y))), nil
}

func shl(x, k bignum.BigInt) (bignum.BigInt, error) {
	places, err := k.Int64()
	if err != nil || places < 0 || places > MaxShift {
		return bignum.BigInt{}, fmt.Errorf("%w: %v (want 0..%d)", ErrShiftRange, k, MaxShift)
	}
	n, err := safecast.Conv[int](places)
	if err != nil {
		return bignum.BigInt{}, fmt.Errorf("%w: %w", ErrShiftRange, err)
	}
	return bignum.Shift(x, n)
}
