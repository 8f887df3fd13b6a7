package bignum

// Mul returns a * b.
func Mul(a, b BigInt) BigInt {
	if a.signum == 0 || b.signum == 0 {
		return BigInt{}
	}
	prod := mulMagnitude(a.Abs(), b.Abs())
	return fromParts(prod.digits, a.signum*b.signum)
}

// mulMagnitude multiplies two non-negative values with three half-size
// products per level:
//
//	x = xh·10^m + xl, y = yh·10^m + yl, n = 2m
//	x·y = hi·10^n + (mid - hi - lo)·10^m + lo
//	hi = xh·yh, lo = xl·yl, mid = (xh+xl)·(yh+yl)
func mulMagnitude(x, y BigInt) BigInt {
	if x.signum == 0 || y.signum == 0 {
		return BigInt{}
	}
	if len(x.digits) == 1 && len(y.digits) == 1 {
		p := x.digits[0] * y.digits[0] // at most 81
		return fromParts([]uint8{p % base, p / base}, 1)
	}

	n := max(len(x.digits), len(y.digits))
	n += n % 2
	m := n / 2

	xl, xh := x.split(m)
	yl, yh := y.split(m)

	hi := mulMagnitude(xh, yh)
	lo := mulMagnitude(xl, yl)
	mid := mulMagnitude(Add(xh, xl), Add(yh, yl))
	cross := Sub(Sub(mid, hi), lo)

	return Add(Add(shift(hi, n), shift(cross, m)), lo)
}
