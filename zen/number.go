package zen

import (
	"fmt"
	"math/big"
	"strings"
)

// NumberFormatError reports a malformed integer literal reaching the
// decoder. Under normal lexer output this is unreachable, but the
// decoder validates independently and fails closed rather than
// truncating.
type NumberFormatError struct {
	Text string
}

func (e *NumberFormatError) Error() string {
	return fmt.Sprintf("malformed number %q", e.Text)
}

// ParseInteger decodes integer-literal text into an arbitrary-precision
// integer. An optional sign is followed by a radix prefix (`0x` or `#`
// for hexadecimal, a leading zero for octal) and digits in that radix.
// A sign appearing after the prefix is rejected.
func ParseInteger(text string) (*big.Int, error) {
	s := text
	negative := false
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		negative = s[0] == '-'
		s = s[1:]
	}

	base := 10
	switch {
	case strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X"):
		base = 16
		s = s[2:]
	case strings.HasPrefix(s, "#"):
		base = 16
		s = s[1:]
	case len(s) > 1 && s[0] == '0':
		base = 8
		s = s[1:]
	}

	if s == "" {
		return nil, &NumberFormatError{Text: text}
	}
	if s[0] == '+' || s[0] == '-' {
		return nil, &NumberFormatError{Text: text}
	}

	value, ok := new(big.Int).SetString(s, base)
	if !ok {
		return nil, &NumberFormatError{Text: text}
	}
	if negative {
		value.Neg(value)
	}
	return value, nil
}
