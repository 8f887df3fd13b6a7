package bignum

import (
	"encoding"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/vmihailenco/msgpack/v5"
)

func TestBigInt_Interfaces(t *testing.T) {
	var v any = BigInt{}
	if _, ok := v.(fmt.Stringer); !ok {
		t.Errorf("%T does not implement fmt.Stringer", v)
	}
	if _, ok := v.(fmt.Formatter); !ok {
		t.Errorf("%T does not implement fmt.Formatter", v)
	}
	if _, ok := v.(encoding.TextMarshaler); !ok {
		t.Errorf("%T does not implement encoding.TextMarshaler", v)
	}
	v = &BigInt{}
	if _, ok := v.(encoding.TextUnmarshaler); !ok {
		t.Errorf("%T does not implement encoding.TextUnmarshaler", v)
	}
}

func TestBigInt_Format(t *testing.T) {
	tests := []struct {
		format string
		x      string
		want   string
	}{
		{"%v", "-123", "-123"},
		{"%s", "123", "123"},
		{"%d", "0", "0"},
		{"%q", "-5", `"-5"`},
		{"%+d", "5", "+5"},
		{"% d", "5", " 5"},
		{"%6d", "-42", "   -42"},
		{"%-6d|", "-42", "-42   |"},
		{"%06d", "-42", "-00042"},
		{"%2d", "12345", "12345"},
		{"%x", "10", "%!x(bignum.BigInt=10)"},
	}
	for _, tt := range tests {
		if got := fmt.Sprintf(tt.format, MustParse(tt.x)); got != tt.want {
			t.Errorf("fmt.Sprintf(%q, %v) = %q, want %q", tt.format, tt.x, got, tt.want)
		}
	}
}

func TestBigInt_JSON(t *testing.T) {
	type payload struct {
		N BigInt `json:"n"`
	}
	data, err := json.Marshal(payload{N: MustParse("-98765432109876543210")})
	if err != nil {
		t.Fatalf("json.Marshal failed: %v", err)
	}
	if got, want := string(data), `{"n":"-98765432109876543210"}`; got != want {
		t.Fatalf("json.Marshal = %s, want %s", got, want)
	}
	var back payload
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("json.Unmarshal failed: %v", err)
	}
	if back.N.String() != "-98765432109876543210" {
		t.Fatalf("json round trip = %v", back.N)
	}
	if err := json.Unmarshal([]byte(`{"n":"4x"}`), &back); !errors.Is(err, ErrParse) {
		t.Fatalf("json.Unmarshal of bad digits error = %v, want %v", err, ErrParse)
	}
}

func TestBigInt_TOML(t *testing.T) {
	var cfg struct {
		Limit BigInt `toml:"limit"`
	}
	if _, err := toml.Decode(`limit = "123456789012345678901234567890"`, &cfg); err != nil {
		t.Fatalf("toml.Decode failed: %v", err)
	}
	if cfg.Limit.String() != "123456789012345678901234567890" {
		t.Fatalf("toml.Decode limit = %v", cfg.Limit)
	}
}

func TestBigInt_Msgpack(t *testing.T) {
	for _, s := range []string{"0", "42", "-1764", "1219326311370217952237463801111263526900"} {
		x := MustParse(s)
		data, err := msgpack.Marshal(x)
		if err != nil {
			t.Fatalf("msgpack.Marshal(%v) failed: %v", x, err)
		}
		var str string
		if err := msgpack.Unmarshal(data, &str); err != nil || str != s {
			t.Fatalf("msgpack payload of %v decodes as string %q, %v", x, str, err)
		}
		var back BigInt
		if err := msgpack.Unmarshal(data, &back); err != nil {
			t.Fatalf("msgpack.Unmarshal failed: %v", err)
		}
		if !back.Equal(x) {
			t.Fatalf("msgpack round trip = %v, want %v", back, x)
		}
	}

	data, err := msgpack.Marshal("--1")
	if err != nil {
		t.Fatal(err)
	}
	var back BigInt
	if err := msgpack.Unmarshal(data, &back); !errors.Is(err, ErrParse) {
		t.Fatalf("msgpack.Unmarshal(\"--1\") error = %v, want %v", err, ErrParse)
	}
}

func TestFromInt64(t *testing.T) {
	tests := []struct {
		v    int64
		want string
	}{
		{0, "0"},
		{7, "7"},
		{-7, "-7"},
		{math.MaxInt64, "9223372036854775807"},
		{math.MinInt64, "-9223372036854775808"},
	}
	for _, tt := range tests {
		if got := FromInt64(tt.v).String(); got != tt.want {
			t.Errorf("FromInt64(%d) = %s, want %s", tt.v, got, tt.want)
		}
	}
	if got := FromUint64(math.MaxUint64).String(); got != "18446744073709551615" {
		t.Errorf("FromUint64(MaxUint64) = %s", got)
	}
}

func TestBigInt_Int64(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		for _, v := range []int64{0, 1, -1, 1764, math.MaxInt64, math.MinInt64, math.MinInt64 + 1} {
			got, err := FromInt64(v).Int64()
			if err != nil || got != v {
				t.Errorf("FromInt64(%d).Int64() = %d, %v", v, got, err)
			}
		}
	})
	t.Run("error", func(t *testing.T) {
		for _, s := range []string{"9223372036854775808", "-9223372036854775809", "18446744073709551616", "100000000000000000000000"} {
			if _, err := MustParse(s).Int64(); !errors.Is(err, ErrRange) {
				t.Errorf("MustParse(%q).Int64() error = %v, want %v", s, err, ErrRange)
			}
		}
	})
}

func TestBigInt_Uint64(t *testing.T) {
	got, err := MustParse("18446744073709551615").Uint64()
	if err != nil || got != math.MaxUint64 {
		t.Errorf("Uint64(MaxUint64) = %d, %v", got, err)
	}
	if _, err := MustParse("18446744073709551616").Uint64(); !errors.Is(err, ErrRange) {
		t.Errorf("Uint64(MaxUint64+1) error = %v, want %v", err, ErrRange)
	}
	if _, err := MustParse("-1").Uint64(); !errors.Is(err, ErrRange) {
		t.Errorf("Uint64(-1) error = %v, want %v", err, ErrRange)
	}
}
