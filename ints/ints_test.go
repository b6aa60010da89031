package ints

import (
	"math"
	"strconv"
	"testing"

	"lukechampine.com/frand"
)

func TestMarshalUnmarshal(t *testing.T) {
	b := make([]byte, 0, 24)
	var rem []byte
	var err error
	for i := 0; i < 100000; i++ {
		n := New(uint64(frand.Intn(math.MaxInt64)))
		b = n.Marshal(b[:0])
		if string(b) != strconv.FormatUint(n.N, 10) {
			t.Fatalf("got %s expected %d", b, n.N)
		}
		m := &T{}
		if rem, err = m.Unmarshal(b); err != nil {
			t.Fatal(err)
		}
		if len(rem) != 0 {
			t.Fatalf("remainder %q after %s", rem, b)
		}
		if m.N != n.N {
			t.Fatalf("decoded %d expected %d", m.N, n.N)
		}
	}
}

func TestAppendInt(t *testing.T) {
	for _, v := range []int64{0, 1, -1, 42, -69420, math.MaxInt64, math.MinInt64 + 1} {
		got := string(AppendInt(nil, v))
		if got != strconv.FormatInt(v, 10) {
			t.Fatalf("got %s expected %d", got, v)
		}
	}
}

func TestParseUintHex(t *testing.T) {
	for s, expect := range map[string]uint64{
		"0x1F":               31,
		"0xff":               255,
		"0x0":                0,
		"7":                  7,
		"0":                  0,
		"9223372036854775807": math.MaxInt64,
	} {
		v, err := ParseUint(s)
		if err != nil {
			t.Fatalf("%s: %v", s, err)
		}
		if v != expect {
			t.Fatalf("%s: got %d expected %d", s, v, expect)
		}
	}
}

func TestParseIntSign(t *testing.T) {
	for s, expect := range map[string]int64{
		"-123": -123,
		"+55":  55,
		"-0x10": -16,
	} {
		v, err := ParseInt(s)
		if err != nil {
			t.Fatalf("%s: %v", s, err)
		}
		if v != expect {
			t.Fatalf("%s: got %d expected %d", s, v, expect)
		}
	}
}

func TestParseErrors(t *testing.T) {
	for _, s := range []string{"", "abc", "12x", "0x", "0xZZ", "123456789012345678901"} {
		if _, err := ParseUint(s); err == nil {
			t.Fatalf("expected error for %q", s)
		}
	}
}

func TestParseUintBounds(t *testing.T) {
	v, err := ParseUint("18446744073709551615")
	if err != nil || v != math.MaxUint64 {
		t.Fatalf("max uint64: got %d, %v", v, err)
	}
	// one past the maximum must error, never wrap to zero
	for _, s := range []string{
		"18446744073709551616",
		"99999999999999999999",
		"0x10000000000000000",
	} {
		if v, err = ParseUint(s); err == nil {
			t.Fatalf("%s: expected overflow error, got %d", s, v)
		}
	}
}

func TestParseIntBounds(t *testing.T) {
	for s, expect := range map[string]int64{
		"9223372036854775807":  math.MaxInt64,
		"-9223372036854775808": math.MinInt64,
	} {
		v, err := ParseInt(s)
		if err != nil || v != expect {
			t.Fatalf("%s: got %d, %v", s, v, err)
		}
	}
	// magnitudes past the signed range must error, never wrap negative
	for _, s := range []string{
		"9223372036854775808",
		"-9223372036854775809",
		"18446744073709551616",
	} {
		if v, err := ParseInt(s); err == nil {
			t.Fatalf("%s: expected overflow error, got %d", s, v)
		}
	}
}

func TestParseLeadingZeros(t *testing.T) {
	for s, expect := range map[string]uint64{
		"0123": 123,
		"007":  7,
		"000":  0,
		"010":  10,
	} {
		v, err := ParseUint(s)
		if err != nil || v != expect {
			t.Fatalf("%s: got %d, %v", s, v, err)
		}
	}
	if v, err := ParseInt("-0123"); err != nil || v != -123 {
		t.Fatalf("-0123: got %d, %v", v, err)
	}
}
