package bignum

import (
	"errors"
	"fmt"
	"math"

	"fortio.org/safecast"
)

// ErrRange indicates a value that does not fit the requested native type.
var ErrRange = errors.New("value out of range")

// FromUint64 creates a BigInt from a uint64.
func FromUint64(v uint64) BigInt {
	if v == 0 {
		return BigInt{}
	}
	digits := make([]uint8, 0, 20)
	for v > 0 {
		digits = append(digits, uint8(v%base)) //nolint:gosec // G115: v%10 fits in uint8.
		v /= base
	}
	return BigInt{digits: digits, signum: 1}
}

// FromInt64 creates a BigInt from an int64.
func FromInt64(v int64) BigInt {
	if v >= 0 {
		return FromUint64(uint64(v))
	}
	u := uint64(-(v + 1)) //nolint:gosec // G115: -(v+1) is non-negative and fits in uint64 here.
	u++
	return FromUint64(u).Negated()
}

// magnitude64 returns |i| as a uint64 if it fits.
func (i BigInt) magnitude64() (uint64, error) {
	var mag uint64
	for k := len(i.digits) - 1; k >= 0; k-- {
		d := uint64(i.digits[k])
		if mag > (math.MaxUint64-d)/base {
			return 0, fmt.Errorf("%w: %v does not fit in 64 bits", ErrRange, i)
		}
		mag = mag*base + d
	}
	return mag, nil
}

// Uint64 converts a non-negative BigInt to uint64.
func (i BigInt) Uint64() (uint64, error) {
	if i.signum < 0 {
		return 0, fmt.Errorf("%w: %v is negative", ErrRange, i)
	}
	return i.magnitude64()
}

// Int64 converts BigInt to int64 if possible.
func (i BigInt) Int64() (int64, error) {
	mag, err := i.magnitude64()
	if err != nil {
		return 0, err
	}
	// Negative: allow magnitude up to 2^63.
	if i.signum < 0 && mag == uint64(math.MaxInt64)+1 {
		return math.MinInt64, nil
	}
	v, err := safecast.Conv[int64](mag)
	if err != nil {
		return 0, fmt.Errorf("%w: %v: %w", ErrRange, i, err)
	}
	if i.signum < 0 {
		return -v, nil
	}
	return v, nil
}
