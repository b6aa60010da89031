package escape

import (
	"testing"
)

func TestAppendQuoted(t *testing.T) {
	for in, expect := range map[string]string{
		"":            `""`,
		"plain":       `"plain"`,
		"say \"hi\"":  `"say \"hi\""`,
		"back\\slash": `"back\\slash"`,
		"a/b":         `"a/b"`,
		"\b\t\n\f\r":  `"\b\t\n\f\r"`,
		"\x00\x1f":    `"\u0000\u001f"`,
		"utf8 λ":      "\"utf8 λ\"",
	} {
		got := string(AppendQuotedString(nil, in))
		if got != expect {
			t.Fatalf("%q: got %s expected %s", in, got, expect)
		}
	}
}

func TestControlCharactersAllEscaped(t *testing.T) {
	for c := byte(0); c < 0x20; c++ {
		out := Append(nil, []byte{c})
		if len(out) < 2 || out[0] != '\\' {
			t.Fatalf("control 0x%02x not escaped: %q", c, out)
		}
	}
}
