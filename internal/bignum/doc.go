// Package bignum implements immutable arbitrary-precision signed integers
// stored as base-10 digit buffers.
//
// # Representation
//
// A [BigInt] holds its magnitude as a slice of decimal digits, least
// significant first, and its sign separately as -1, 0 or +1.
// The value is sign × Σ digits[i]·10^i.
//
// Every value handed out by this package is normalized:
//
//   - zero is the empty digit slice with sign 0, and it is the only zero;
//   - a non-zero value has a non-zero most significant digit;
//   - every digit is in [0, 9].
//
// The zero value of [BigInt] is the number 0.
//
// # Operations
//
//   - parsing and formatting: [Parse], [MustParse], [BigInt.String];
//   - signed arithmetic: [Add], [Sub], [Neg], [Mul], [Shift];
//   - ordering: [Compare], [BigInt.Cmp];
//   - floor division of non-negative values: [Div], [DivMod], [MustDiv];
//   - conversions: [FromInt64], [FromUint64], [BigInt.Int64], [BigInt.Uint64].
//
// [Mul] uses the three-product divide-and-conquer recurrence and runs in
// roughly O(n^1.585) digit operations. [Div] is schoolbook long division
// by repeated subtraction, one quotient digit per place.
//
// # Errors
//
// Addition, subtraction, negation, multiplication and comparison are total.
// [Parse] reports a [*ParseError] matching [ErrParse].
// [Div] and [DivMod] report [ErrDivisionPrecondition] when the dividend is
// negative or the divisor is not positive; they never return a wrong quotient.
//
// # Concurrency
//
// Values are never mutated after construction and operations never write
// into an operand's digits, so a BigInt may be shared between goroutines
// without synchronization.
package bignum
