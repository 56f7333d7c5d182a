package zen

// parseStatement dispatches on the lookahead token kind. Anything that
// is not a recognized statement form parses as an expression statement
// with a required trailing semicolon.
func (p *parser) parseStatement() (Statement, error) {
	if err := p.enterNesting(); err != nil {
		return nil, err
	}
	defer p.exitNesting()

	tok := p.ts.peek()
	if tok == nil {
		return nil, p.ts.errorf("statement expected")
	}

	switch tok.Kind {
	case tokenLBrace:
		p.ts.next()
		body, err := p.parseBlockBody()
		if err != nil {
			return nil, err
		}
		return &BlockStmt{Body: body, offset: tok.Offset}, nil

	case tokenReturn:
		p.ts.next()
		var value Expression
		if next := p.ts.peek(); next == nil || next.Kind != tokenSemicolon {
			var err error
			value, err = p.parseExpression()
			if err != nil {
				return nil, err
			}
		}
		if _, err := p.ts.require(tokenSemicolon, "; expected"); err != nil {
			return nil, err
		}
		return &ReturnStmt{Value: value, offset: tok.Offset}, nil

	case tokenVar, tokenVal:
		return p.parseVarDecl()

	case tokenIf:
		p.ts.next()
		cond, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		then, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		var els Statement
		if p.ts.optional(tokenElse) != nil {
			els, err = p.parseStatement()
			if err != nil {
				return nil, err
			}
		}
		return &IfStmt{Cond: cond, Then: then, Else: els, offset: tok.Offset}, nil

	case tokenFor:
		return p.parseForStatement()

	case tokenWhile:
		p.ts.next()
		cond, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		body, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		return &WhileStmt{Cond: cond, Body: body, offset: tok.Offset}, nil

	case tokenBreak:
		p.ts.next()
		if _, err := p.ts.require(tokenSemicolon, "; expected"); err != nil {
			return nil, err
		}
		return &BreakStmt{offset: tok.Offset}, nil

	case tokenContinue:
		p.ts.next()
		if _, err := p.ts.require(tokenSemicolon, "; expected"); err != nil {
			return nil, err
		}
		return &ContinueStmt{offset: tok.Offset}, nil
	}

	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.ts.require(tokenSemicolon, "; expected"); err != nil {
		return nil, err
	}
	return &ExprStmt{Expr: expr, offset: tok.Offset}, nil
}

// parseBlockBody parses statements up to and including the closing
// brace; the opening brace is already consumed.
func (p *parser) parseBlockBody() ([]Statement, error) {
	body := []Statement{}
	for {
		if p.ts.optional(tokenRBrace) != nil {
			return body, nil
		}
		if p.ts.peek() == nil {
			return nil, p.ts.errorf("} expected")
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		body = append(body, stmt)
	}
}

func (p *parser) parseVarDecl() (Statement, error) {
	tok := p.ts.next()
	isFinal := tok.Kind == tokenVal

	name, err := p.ts.require(tokenIdent, "identifier expected")
	if err != nil {
		return nil, err
	}

	var typ ZenType
	if p.ts.optional(tokenAs) != nil {
		typ, err = p.parseType()
		if err != nil {
			return nil, err
		}
	}

	var init Expression
	if p.ts.optional(tokenAssign) != nil {
		init, err = p.parseExpression()
		if err != nil {
			return nil, err
		}
	}

	if _, err := p.ts.require(tokenSemicolon, "; expected"); err != nil {
		return nil, err
	}
	return &VarDeclStmt{Name: name.Text, Type: typ, Init: init, IsFinal: isFinal, offset: tok.Offset}, nil
}

// parseForStatement parses `for a, b in iterable body`.
func (p *parser) parseForStatement() (Statement, error) {
	tok := p.ts.next()

	first, err := p.ts.require(tokenIdent, "identifier expected")
	if err != nil {
		return nil, err
	}
	names := []string{first.Text}
	for p.ts.optional(tokenComma) != nil {
		name, err := p.ts.require(tokenIdent, "identifier expected")
		if err != nil {
			return nil, err
		}
		names = append(names, name.Text)
	}

	if _, err := p.ts.require(tokenIn, "in expected"); err != nil {
		return nil, err
	}

	iterable, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	body, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	return &ForStmt{Names: names, Iterable: iterable, Body: body, offset: tok.Offset}, nil
}
