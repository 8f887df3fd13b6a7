package bignum

import (
	"errors"
	"fmt"
	"testing"
)

func TestDiv(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			dividend, divisor, want, wantRem string
		}{
			{"141", "7", "20", "1"},
			{"121", "11", "11", "0"},
			{"2", "42", "0", "2"},
			{"0", "42", "0", "0"},
			{"42", "42", "1", "0"},
			{"42", "1", "42", "0"},
			{"1000", "10", "100", "0"},
			{"1000", "1", "1000", "0"},
			{"999", "9", "111", "0"},
			{"99", "100", "0", "99"},
			{"100", "99", "1", "1"},
			{"74088", "1764", "42", "0"},
			{"1219326311370217952237463801111263526900", "98765432109876543210", "12345678901234567890", "0"},
			{"1219326311370217952237463801111263526901", "98765432109876543210", "12345678901234567890", "1"},
		}
		for _, tt := range tests {
			a, b := MustParse(tt.dividend), MustParse(tt.divisor)
			q, r, err := DivMod(a, b)
			if err != nil {
				t.Errorf("DivMod(%v, %v) failed: %v", tt.dividend, tt.divisor, err)
				continue
			}
			if q.String() != tt.want || r.String() != tt.wantRem {
				t.Errorf("DivMod(%v, %v) = (%v, %v), want (%v, %v)", tt.dividend, tt.divisor, q, r, tt.want, tt.wantRem)
			}
			q2, err := Div(a, b)
			if err != nil || !q2.Equal(q) {
				t.Errorf("Div(%v, %v) = %v, %v, want %v", tt.dividend, tt.divisor, q2, err, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]struct {
			dividend, divisor string
		}{
			"zero divisor":      {"1", "0"},
			"zero by zero":      {"0", "0"},
			"negative divisor":  {"10", "-2"},
			"negative dividend": {"-10", "2"},
			"both negative":     {"-10", "-2"},
		}
		for name, tt := range tests {
			t.Run(name, func(t *testing.T) {
				q, err := Div(MustParse(tt.dividend), MustParse(tt.divisor))
				if !errors.Is(err, ErrDivisionPrecondition) {
					t.Fatalf("Div(%v, %v) error = %v, want %v", tt.dividend, tt.divisor, err, ErrDivisionPrecondition)
				}
				if !q.IsZero() {
					t.Fatalf("Div(%v, %v) = %v alongside an error, want 0", tt.dividend, tt.divisor, q)
				}
			})
		}
	})
}

func TestMustDiv(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		if got := MustDiv(MustParse("141"), MustParse("7")); got.String() != "20" {
			t.Errorf("MustDiv(141, 7) = %v, want 20", got)
		}
	})
	t.Run("panic", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("MustDiv(1, 0) did not panic")
			}
		}()
		MustDiv(One(), Zero())
	})
}

// TestDivMod_DigitBound walks every divisor leading digit with remainders
// just below, at and just above multiples of the aligned divisor, where an
// alignment slip would show up as a quotient digit outside 0..9.
func TestDivMod_DigitBound(t *testing.T) {
	tails := []string{"", "0", "7", "99", "000", "123", "999"}
	for lead := 1; lead <= 9; lead++ {
		for _, tail := range tails {
			divisor := MustParse(fmt.Sprintf("%d%s", lead, tail))
			for _, place := range []int{0, 1, 3} {
				shifted := shift(divisor, place)
				for mult := int64(1); mult <= 9; mult++ {
					at := Mul(shifted, FromInt64(mult))
					for _, delta := range []int64{-1, 0, 1} {
						dividend := Add(at, FromInt64(delta))
						q, r, err := DivMod(dividend, divisor)
						if err != nil {
							t.Fatalf("DivMod(%v, %v) failed: %v", dividend, divisor, err)
						}
						checkDivision(t, dividend, divisor, q, r)
					}
				}
			}
		}
	}
}

func checkDivision(t *testing.T, dividend, divisor, q, r BigInt) {
	t.Helper()
	for _, d := range q.digits {
		if d > 9 {
			t.Fatalf("DivMod(%v, %v) produced digit %d", dividend, divisor, d)
		}
	}
	if r.Sign() < 0 || Compare(r, divisor) != Less {
		t.Fatalf("DivMod(%v, %v) remainder %v not in [0, divisor)", dividend, divisor, r)
	}
	if got := Add(Mul(q, divisor), r); !got.Equal(dividend) {
		t.Fatalf("DivMod(%v, %v) = (%v, %v), but q*d+r = %v", dividend, divisor, q, r, got)
	}
	// q*d <= dividend < (q+1)*d
	if Compare(Mul(q, divisor), dividend) == Greater {
		t.Fatalf("DivMod(%v, %v): q*d > dividend", dividend, divisor)
	}
	if Compare(dividend, Mul(Add(q, One()), divisor)) != Less {
		t.Fatalf("DivMod(%v, %v): dividend >= (q+1)*d", dividend, divisor)
	}
}

func BenchmarkDiv(b *testing.B) {
	dividend := MustParse("1219326311370217952237463801111263526901")
	divisor := MustParse("98765432109876543210")
	for i := 0; i < b.N; i++ {
		_, _ = Div(dividend, divisor)
	}
}
