package bignum

import (
	"fmt"
)

// String returns the canonical decimal form: "0" for zero, otherwise an
// optional '-' followed by the digits without leading zeros.
func (i BigInt) String() string {
	return string(i.appendDecimal(nil))
}

func (i BigInt) appendDecimal(buf []byte) []byte {
	if i.signum == 0 {
		return append(buf, '0')
	}
	if i.signum < 0 {
		buf = append(buf, '-')
	}
	for k := len(i.digits) - 1; k >= 0; k-- {
		buf = append(buf, '0'+i.digits[k])
	}
	return buf
}

// MarshalText implements [encoding.TextMarshaler].
func (i BigInt) MarshalText() ([]byte, error) {
	return i.appendDecimal(nil), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
// Also see [Parse].
func (i *BigInt) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*i = v
	return nil
}

// Format implements [fmt.Formatter].
// The following verbs are available:
//
//	%d, %s, %v: -123
//	%q:        "-123"
//
// Flags '+' and ' ' force a sign column, width pads with spaces (or
// with zeros after the sign for '0'), and '-' pads on the right.
func (i BigInt) Format(state fmt.State, verb rune) {
	switch verb {
	case 'd', 's', 'v', 'q':
	default:
		fmt.Fprintf(state, "%%!%c(bignum.BigInt=%s)", verb, i.String())
		return
	}

	var sign []byte
	switch {
	case i.signum < 0:
		sign = []byte{'-'}
	case state.Flag('+'):
		sign = []byte{'+'}
	case state.Flag(' '):
		sign = []byte{' '}
	}
	body := i.Abs().appendDecimal(nil)
	if verb == 'q' {
		body = append(append([]byte{'"'}, body...), '"')
	}

	pad := 0
	if w, ok := state.Width(); ok && w > len(sign)+len(body) {
		pad = w - len(sign) - len(body)
	}

	out := make([]byte, 0, len(sign)+len(body)+pad)
	switch {
	case pad > 0 && state.Flag('-'):
		out = append(append(out, sign...), body...)
		out = appendRepeat(out, ' ', pad)
	case pad > 0 && state.Flag('0') && verb != 'q':
		out = append(out, sign...)
		out = appendRepeat(out, '0', pad)
		out = append(out, body...)
	default:
		out = appendRepeat(out, ' ', pad)
		out = append(append(out, sign...), body...)
	}
	_, _ = state.Write(out) //nolint:errcheck
}

func appendRepeat(buf []byte, b byte, n int) []byte {
	for range n {
		buf = append(buf, b)
	}
	return buf
}
