package zen

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Tokenize converts source text into a token sequence. Whitespace and
// comments are skipped; a LexError is returned when no lexical rule
// matches the remaining input.
func Tokenize(source string) ([]Token, error) {
	return TokenizeRange(source, 0, len(source), false)
}

// TokenizeRange lexes the half-open byte range [from, to) of source.
// A token that lexes successfully but would extend past to is rejected
// and lexing stops before it. In tolerant mode unrecognized input stops
// lexing cleanly and the tokens accumulated so far are returned,
// supporting speculative re-lexing of edited or incomplete buffers.
func TokenizeRange(source string, from, to int, tolerant bool) ([]Token, error) {
	if from < 0 {
		from = 0
	}
	if to > len(source) {
		to = len(source)
	}

	l := &lexer{src: source, pos: from, end: to}
	var tokens []Token

	for {
		l.skipWhitespaceAndComments()
		if l.pos >= l.end {
			return tokens, nil
		}

		tok, ok := l.scanToken()
		if !ok {
			if tolerant {
				return tokens, nil
			}
			return nil, &LexError{Offset: l.pos, source: source}
		}
		if tok.Offset+len(tok.Text) > to {
			// Over-reads past the requested slice are discarded.
			return tokens, nil
		}
		tokens = append(tokens, tok)
	}
}

type lexer struct {
	src string
	pos int
	end int
}

func (l *lexer) skipWhitespaceAndComments() {
	for l.pos < l.end {
		switch l.src[l.pos] {
		case ' ', '\t', '\r', '\n':
			l.pos++
		case '/':
			if strings.HasPrefix(l.src[l.pos:], "//") {
				l.skipLineComment()
			} else if strings.HasPrefix(l.src[l.pos:], "/*") {
				l.skipBlockComment()
			} else {
				return
			}
		default:
			return
		}
	}
}

func (l *lexer) skipLineComment() {
	for l.pos < l.end && l.src[l.pos] != '\n' {
		l.pos++
	}
}

func (l *lexer) skipBlockComment() {
	l.pos += 2
	for l.pos < l.end {
		if strings.HasPrefix(l.src[l.pos:], "*/") {
			l.pos += 2
			return
		}
		l.pos++
	}
	// An unterminated block comment extends to the end of input.
}

// scanToken attempts each lexical rule at the current position in fixed
// priority order: identifier/keyword, operators (longest first), float
// literal, int literal, string literal.
func (l *lexer) scanToken() (Token, bool) {
	if tok, ok := l.scanIdentifier(); ok {
		return tok, true
	}
	if tok, ok := l.scanOperator(); ok {
		return tok, true
	}
	if tok, ok := l.scanFloat(); ok {
		return tok, true
	}
	if tok, ok := l.scanInt(); ok {
		return tok, true
	}
	if tok, ok := l.scanString(); ok {
		return tok, true
	}
	return Token{}, false
}

func (l *lexer) scanIdentifier() (Token, bool) {
	r, w := utf8.DecodeRuneInString(l.src[l.pos:])
	if !isIdentifierStart(r) {
		return Token{}, false
	}

	start := l.pos
	l.pos += w
	for l.pos < len(l.src) {
		r, w = utf8.DecodeRuneInString(l.src[l.pos:])
		if !isIdentifierRune(r) {
			break
		}
		l.pos += w
	}

	text := l.src[start:l.pos]
	kind := tokenIdent
	if kw, ok := keywords[text]; ok {
		kind = kw
	}
	return Token{Kind: kind, Text: text, Offset: start}, true
}

func (l *lexer) scanOperator() (Token, bool) {
	rest := l.src[l.pos:]
	for _, op := range operators {
		if strings.HasPrefix(rest, op.text) {
			tok := Token{Kind: op.kind, Text: op.text, Offset: l.pos}
			l.pos += len(op.text)
			return tok, true
		}
	}
	return Token{}, false
}

// scanFloat matches an optional leading minus, digits, a mandatory
// decimal point, more digits, an optional exponent, and an optional
// single type-suffix letter.
func (l *lexer) scanFloat() (Token, bool) {
	i := l.pos
	if i < len(l.src) && l.src[i] == '-' {
		i++
	}

	digits := l.digitRun(i)
	if digits == i {
		return Token{}, false
	}
	i = digits
	if i >= len(l.src) || l.src[i] != '.' {
		return Token{}, false
	}
	i++

	digits = l.digitRun(i)
	if digits == i {
		return Token{}, false
	}
	i = digits

	if i < len(l.src) && (l.src[i] == 'e' || l.src[i] == 'E') {
		j := i + 1
		if j < len(l.src) && (l.src[j] == '+' || l.src[j] == '-') {
			j++
		}
		digits = l.digitRun(j)
		if digits > j {
			i = digits
		}
	}

	if i < len(l.src) {
		switch l.src[i] {
		case 'f', 'F', 'd', 'D':
			i++
		}
	}

	tok := Token{Kind: tokenFloatValue, Text: l.src[l.pos:i], Offset: l.pos}
	l.pos = i
	return tok, true
}

// scanInt matches a decimal run with an optional leading minus, or an
// unsigned 0x-prefixed hexadecimal run.
func (l *lexer) scanInt() (Token, bool) {
	i := l.pos
	if strings.HasPrefix(l.src[i:], "0x") || strings.HasPrefix(l.src[i:], "0X") {
		j := l.hexRun(i + 2)
		if j > i+2 {
			tok := Token{Kind: tokenIntValue, Text: l.src[i:j], Offset: i}
			l.pos = j
			return tok, true
		}
	}

	if i < len(l.src) && l.src[i] == '-' {
		i++
	}
	digits := l.digitRun(i)
	if digits == i {
		return Token{}, false
	}

	tok := Token{Kind: tokenIntValue, Text: l.src[l.pos:digits], Offset: l.pos}
	l.pos = digits
	return tok, true
}

// scanString matches a single- or double-quoted literal. Backslash
// escapes are carried through verbatim; decoding happens later in
// Unescape. The token text keeps its surrounding quotes.
func (l *lexer) scanString() (Token, bool) {
	quote := l.src[l.pos]
	if quote != '"' && quote != '\'' {
		return Token{}, false
	}

	i := l.pos + 1
	for i < len(l.src) {
		switch l.src[i] {
		case '\\':
			i += 2
		case quote:
			tok := Token{Kind: tokenStringValue, Text: l.src[l.pos : i+1], Offset: l.pos}
			l.pos = i + 1
			return tok, true
		case '\n':
			return Token{}, false
		default:
			i++
		}
	}
	return Token{}, false
}

func (l *lexer) digitRun(i int) int {
	for i < len(l.src) && l.src[i] >= '0' && l.src[i] <= '9' {
		i++
	}
	return i
}

func (l *lexer) hexRun(i int) int {
	for i < len(l.src) && isHexDigit(l.src[i]) {
		i++
	}
	return i
}

func isHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func isIdentifierStart(r rune) bool {
	return unicode.IsLetter(r) || r == '_'
}

func isIdentifierRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}
