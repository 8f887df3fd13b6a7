package bignum

// Digit buffers are little-endian base-10 magnitudes: d[0] is the units
// digit. Canonical zero is the nil/empty slice. Kernels below never write
// into their arguments.

const base = 10

func trimDigits(d []uint8) []uint8 {
	for len(d) > 0 && d[len(d)-1] == 0 {
		d = d[:len(d)-1]
	}
	if len(d) == 0 {
		return nil
	}
	return d
}

func digitAt(d []uint8, i int) uint8 {
	if i < len(d) {
		return d[i]
	}
	return 0
}

// addDigits calculates x + y.
func addDigits(x, y []uint8) []uint8 {
	if len(x) < len(y) {
		x, y = y, x
	}
	if len(x) == 0 {
		return nil
	}
	out := make([]uint8, len(x)+1)
	var carry uint8
	for i := range x {
		sum := x[i] + digitAt(y, i) + carry
		if sum >= base {
			sum -= base
			carry = 1
		} else {
			carry = 0
		}
		out[i] = sum
	}
	out[len(x)] = carry
	return trimDigits(out)
}

// subBorrow calculates x - y digit by digit and reports the borrow left
// over past the most significant position. A non-zero borrow means y > x
// and the returned digits are then meaningless.
func subBorrow(x, y []uint8) ([]uint8, uint8) {
	n := max(len(x), len(y))
	out := make([]uint8, n)
	var borrow uint8
	for i := range n {
		d := int(digitAt(x, i)) - int(digitAt(y, i)) - int(borrow)
		if d < 0 {
			d += base
			borrow = 1
		} else {
			borrow = 0
		}
		out[i] = uint8(d) //nolint:gosec // G115: d is in [0, 9] here.
	}
	return out, borrow
}

// subDigits calculates |x - y| and returns +1 if x >= y, -1 otherwise.
func subDigits(x, y []uint8) ([]uint8, int8) {
	out, borrow := subBorrow(x, y)
	if borrow == 0 {
		return trimDigits(out), 1
	}
	// y > x: y - x cannot borrow.
	out, borrow = subBorrow(y, x)
	if borrow != 0 {
		panic("bignum: borrow after operand swap")
	}
	return trimDigits(out), -1
}

// shiftDigits calculates x * 10^k.
func shiftDigits(x []uint8, k int) []uint8 {
	x = trimDigits(x)
	if len(x) == 0 || k <= 0 {
		return x
	}
	out := make([]uint8, len(x)+k)
	copy(out[k:], x)
	return out
}

// splitDigits returns copies of the n least significant digits of x and
// of the rest. Positions past len(x) read as zero, so the split never
// pads or otherwise touches x itself.
func splitDigits(x []uint8, n int) (lo, hi []uint8) {
	if n >= len(x) {
		lo = make([]uint8, len(x))
		copy(lo, x)
		return trimDigits(lo), nil
	}
	lo = make([]uint8, n)
	copy(lo, x[:n])
	hi = make([]uint8, len(x)-n)
	copy(hi, x[n:])
	return trimDigits(lo), trimDigits(hi)
}
