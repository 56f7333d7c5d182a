package zen

import "strings"

// Unescape decodes a quoted string literal into its logical value. The
// surrounding quote characters are stripped and the body is processed
// left to right. The escape syntax is a superset of the usual C-style
// set:
//
//	\\ \r \n \f \t \a \e \' \"
//	\cX      control character, ord(X) xor 64
//	\0..\777 octal, one to three digits, greedy
//	\xXX     hex, exactly two digits
//	\x{...}  hex, one to eight digits
//	\uXXXX   hex, exactly four digits
//	\UXXXXXXXX hex, exactly eight digits
//
// `\b` and any unrecognized escape pass through as a literal backslash
// followed by the character; a trailing backslash at end of input is
// preserved. Unescape is a pure function and never fails.
func Unescape(quoted string) string {
	body := quoted
	if len(body) >= 2 {
		first, last := body[0], body[len(body)-1]
		if first == last && (first == '"' || first == '\'') {
			body = body[1 : len(body)-1]
		}
	}
	if !strings.ContainsRune(body, '\\') {
		return body
	}

	var b strings.Builder
	b.Grow(len(body))

	i := 0
	for i < len(body) {
		c := body[i]
		if c != '\\' {
			b.WriteByte(c)
			i++
			continue
		}
		if i+1 >= len(body) {
			// Trailing unconsumed backslash.
			b.WriteByte('\\')
			break
		}

		e := body[i+1]
		switch e {
		case '\\':
			b.WriteByte('\\')
			i += 2
		case 'r':
			b.WriteByte('\r')
			i += 2
		case 'n':
			b.WriteByte('\n')
			i += 2
		case 'f':
			b.WriteByte('\f')
			i += 2
		case 't':
			b.WriteByte('\t')
			i += 2
		case 'a':
			b.WriteByte('\a')
			i += 2
		case 'e':
			b.WriteByte(0x1b)
			i += 2
		case '\'', '"':
			b.WriteByte(e)
			i += 2
		case 'c':
			if i+2 < len(body) {
				b.WriteByte(body[i+2] ^ 64)
				i += 3
			} else {
				b.WriteString(`\c`)
				i += 2
			}
		case '0', '1', '2', '3', '4', '5', '6', '7':
			value := 0
			j := i + 1
			for j < len(body) && j < i+4 && body[j] >= '0' && body[j] <= '7' {
				value = value*8 + int(body[j]-'0')
				j++
			}
			b.WriteRune(rune(value))
			i = j
		case 'x':
			if i+2 < len(body) && body[i+2] == '{' {
				if value, end, ok := bracedHex(body, i+3); ok {
					b.WriteRune(rune(value))
					i = end
					break
				}
			}
			if value, ok := fixedHex(body, i+2, 2); ok {
				b.WriteRune(rune(value))
				i += 4
			} else {
				b.WriteString(`\x`)
				i += 2
			}
		case 'u':
			if value, ok := fixedHex(body, i+2, 4); ok {
				b.WriteRune(rune(value))
				i += 6
			} else {
				b.WriteString(`\u`)
				i += 2
			}
		case 'U':
			if value, ok := fixedHex(body, i+2, 8); ok {
				b.WriteRune(rune(value))
				i += 10
			} else {
				b.WriteString(`\U`)
				i += 2
			}
		default:
			b.WriteByte('\\')
			b.WriteByte(e)
			i += 2
		}
	}

	return b.String()
}

// fixedHex reads exactly n hex digits at body[start:].
func fixedHex(body string, start, n int) (int, bool) {
	if start+n > len(body) {
		return 0, false
	}
	value := 0
	for i := start; i < start+n; i++ {
		d, ok := hexDigit(body[i])
		if !ok {
			return 0, false
		}
		value = value*16 + d
	}
	return value, true
}

// bracedHex reads one to eight hex digits followed by a closing brace,
// returning the index just past the brace.
func bracedHex(body string, start int) (int, int, bool) {
	value := 0
	i := start
	for i < len(body) && i < start+8 {
		d, ok := hexDigit(body[i])
		if !ok {
			break
		}
		value = value*16 + d
		i++
	}
	if i == start || i >= len(body) || body[i] != '}' {
		return 0, 0, false
	}
	return value, i + 1, true
}

func hexDigit(c byte) (int, bool) {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0'), true
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10, true
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10, true
	default:
		return 0, false
	}
}
