package bignum

// Ordering is the result of [Compare].
type Ordering int8

const (
	Less    Ordering = -1
	Equal   Ordering = 0
	Greater Ordering = 1
)

// String returns "<", "=" or ">".
func (o Ordering) String() string {
	switch o {
	case Less:
		return "<"
	case Equal:
		return "="
	case Greater:
		return ">"
	default:
		return "?"
	}
}

// Compare orders a and b by the sign of a - b, so it always agrees with [Sub].
func Compare(a, b BigInt) Ordering {
	return Ordering(Sub(a, b).signum)
}

// Max returns the larger of a and b.
func Max(a, b BigInt) BigInt {
	if Compare(a, b) == Less {
		return b
	}
	return a
}

// Min returns the smaller of a and b.
func Min(a, b BigInt) BigInt {
	if Compare(a, b) == Greater {
		return b
	}
	return a
}
