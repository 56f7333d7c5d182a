package zen

// tokenStream is a monotonically advancing cursor over a token
// sequence. All parsing is expressed through its four operations;
// nothing indexes into the sequence directly.
type tokenStream struct {
	tokens []Token
	pos    int
	source string
}

func newTokenStream(tokens []Token, source string) *tokenStream {
	return &tokenStream{tokens: tokens, source: source}
}

// peek returns the next token without consuming it, or nil at the end.
func (ts *tokenStream) peek() *Token {
	if ts.pos >= len(ts.tokens) {
		return nil
	}
	return &ts.tokens[ts.pos]
}

// next consumes and returns the next token, or nil at the end.
func (ts *tokenStream) next() *Token {
	tok := ts.peek()
	if tok != nil {
		ts.pos++
	}
	return tok
}

// optional consumes and returns the next token only if its kind
// matches; otherwise it is a no-op returning nil.
func (ts *tokenStream) optional(kind TokenKind) *Token {
	tok := ts.peek()
	if tok == nil || tok.Kind != kind {
		return nil
	}
	ts.pos++
	return tok
}

// require is like optional but fails with a ParseError carrying msg and
// the actual token when the kinds do not match.
func (ts *tokenStream) require(kind TokenKind, msg string) (*Token, error) {
	if tok := ts.optional(kind); tok != nil {
		return tok, nil
	}
	return nil, &ParseError{Msg: msg, Token: ts.peek(), source: ts.source}
}

func (ts *tokenStream) errorf(msg string) error {
	return &ParseError{Msg: msg, Token: ts.peek(), source: ts.source}
}
