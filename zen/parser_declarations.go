package zen

// parseFunctionDecl parses a named function: `function name(params)
// [as Type] { body }`. It also serves class methods.
func (p *parser) parseFunctionDecl() (*FunctionDecl, error) {
	tok := p.ts.next()

	name, err := p.ts.require(tokenIdent, "identifier expected")
	if err != nil {
		return nil, err
	}

	params, err := p.parseParams()
	if err != nil {
		return nil, err
	}

	var returnType ZenType
	if p.ts.optional(tokenAs) != nil {
		returnType, err = p.parseType()
		if err != nil {
			return nil, err
		}
	}

	if _, err := p.ts.require(tokenLBrace, "{ expected"); err != nil {
		return nil, err
	}
	body, err := p.parseBlockBody()
	if err != nil {
		return nil, err
	}

	return &FunctionDecl{
		Name:       name.Text,
		Params:     params,
		ReturnType: returnType,
		Body:       body,
		offset:     tok.Offset,
	}, nil
}

// parseParams parses a parenthesized, comma-separated parameter list:
// `(a as int, b)`. Unannotated parameters carry a nil type.
func (p *parser) parseParams() ([]Param, error) {
	if _, err := p.ts.require(tokenLParen, "( expected"); err != nil {
		return nil, err
	}

	params := []Param{}
	for {
		if p.ts.optional(tokenRParen) != nil {
			return params, nil
		}

		name, err := p.ts.require(tokenIdent, "identifier expected")
		if err != nil {
			return nil, err
		}
		param := Param{Name: name.Text}
		if p.ts.optional(tokenAs) != nil {
			param.Type, err = p.parseType()
			if err != nil {
				return nil, err
			}
		}
		params = append(params, param)

		if p.ts.optional(tokenComma) == nil {
			if _, err := p.ts.require(tokenRParen, ") expected"); err != nil {
				return nil, err
			}
			return params, nil
		}
	}
}

// parseGlobal parses a `global`/`static` binding: `global name
// [as Type] = value;`.
func (p *parser) parseGlobal() (*GlobalDecl, error) {
	tok := p.ts.next()
	isStatic := tok.Kind == tokenStatic

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

	if _, err := p.ts.require(tokenAssign, "= expected"); err != nil {
		return nil, err
	}
	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.ts.require(tokenSemicolon, "; expected"); err != nil {
		return nil, err
	}

	return &GlobalDecl{
		Name:     name.Text,
		Type:     typ,
		Value:    value,
		IsStatic: isStatic,
		offset:   tok.Offset,
	}, nil
}
