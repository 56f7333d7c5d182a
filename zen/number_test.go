package zen

import (
	"errors"
	"testing"
)

func TestParseIntegerRadixes(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"0x1F", "31"},
		{"017", "15"},
		{"-5", "-5"},
		{"+5", "5"},
		{"#FF", "255"},
		{"-0x10", "-16"},
		{"0", "0"},
		{"42", "42"},
	}
	for _, c := range cases {
		value, err := ParseInteger(c.in)
		if err != nil {
			t.Fatalf("ParseInteger(%q) failed: %v", c.in, err)
		}
		if value.String() != c.want {
			t.Fatalf("ParseInteger(%q): expected %s, got %s", c.in, c.want, value)
		}
	}
}

func TestParseIntegerArbitraryPrecision(t *testing.T) {
	value, err := ParseInteger("0x10000000000000000")
	if err != nil {
		t.Fatalf("ParseInteger failed: %v", err)
	}
	if value.String() != "18446744073709551616" {
		t.Fatalf("expected 2^64, got %s", value)
	}
}

func TestParseIntegerRejectsMalformed(t *testing.T) {
	for _, in := range []string{"", "0x-1", "#-1", "-", "08", "12a", "0xZ", "--5"} {
		_, err := ParseInteger(in)
		if err == nil {
			t.Fatalf("ParseInteger(%q): expected error", in)
		}
		var nfe *NumberFormatError
		if !errors.As(err, &nfe) {
			t.Fatalf("ParseInteger(%q): expected NumberFormatError, got %T", in, err)
		}
	}
}
