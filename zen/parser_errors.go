package zen

import (
	"fmt"
	"strings"
)

// LexError reports input that matched no lexical rule. Offset is the
// byte position of the offending character.
type LexError struct {
	Offset int
	source string
}

func (e *LexError) Error() string {
	var b strings.Builder
	if e.source != "" {
		pos := offsetPosition(e.source, e.Offset)
		fmt.Fprintf(&b, "unrecognized token at %d:%d", pos.Line, pos.Column)
		if frame := formatCodeFrame(e.source, pos); frame != "" {
			b.WriteString("\n")
			b.WriteString(frame)
		}
	} else {
		fmt.Fprintf(&b, "unrecognized token at offset %d", e.Offset)
	}
	return b.String()
}

// ParseError reports an expected token or construct that was absent.
// Token is the actual next token, or nil at end of input.
type ParseError struct {
	Msg    string
	Token  *Token
	source string
}

func (e *ParseError) Error() string {
	var b strings.Builder
	switch {
	case e.Token == nil:
		fmt.Fprintf(&b, "parse error at end of input: %s", e.Msg)
	case e.source != "":
		pos := offsetPosition(e.source, e.Token.Offset)
		fmt.Fprintf(&b, "parse error at %d:%d: %s, found %s", pos.Line, pos.Column, e.Msg, tokenLabel(e.Token.Kind))
		if frame := formatCodeFrame(e.source, pos); frame != "" {
			b.WriteString("\n")
			b.WriteString(frame)
		}
	default:
		fmt.Fprintf(&b, "parse error at offset %d: %s, found %s", e.Token.Offset, e.Msg, tokenLabel(e.Token.Kind))
	}
	return b.String()
}

func tokenLabel(kind TokenKind) string {
	switch kind {
	case tokenIdent:
		return "identifier"
	case tokenIntValue:
		return "integer"
	case tokenFloatValue:
		return "float"
	case tokenStringValue:
		return "string"
	default:
		if len(kind) > 0 && kind[0] >= 'A' && kind[0] <= 'Z' {
			return fmt.Sprintf("'%s'", strings.ToLower(string(kind)))
		}
		return fmt.Sprintf("%q", string(kind))
	}
}
