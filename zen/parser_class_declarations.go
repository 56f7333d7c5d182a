package zen

// parseClassDecl parses a zenClass declaration. The body dispatches on
// member keywords (var/val/static for fields, zenConstructor for
// constructors, function for methods) until none match, then requires
// the closing brace.
func (p *parser) parseClassDecl() (*ClassDecl, error) {
	tok := p.ts.next()

	name, err := p.ts.require(tokenIdent, "identifier expected")
	if err != nil {
		return nil, err
	}
	if _, err := p.ts.require(tokenLBrace, "{ expected"); err != nil {
		return nil, err
	}

	class := &ClassDecl{Name: name.Text, offset: tok.Offset}
	for {
		member := p.ts.peek()
		if member == nil {
			return nil, p.ts.errorf("} expected")
		}

		switch member.Kind {
		case tokenVar, tokenVal, tokenStatic:
			field, err := p.parseField()
			if err != nil {
				return nil, err
			}
			class.Fields = append(class.Fields, field)

		case tokenCtor:
			ctor, err := p.parseConstructor()
			if err != nil {
				return nil, err
			}
			class.Constructors = append(class.Constructors, ctor)

		case tokenFunction:
			method, err := p.parseFunctionDecl()
			if err != nil {
				return nil, err
			}
			class.Methods = append(class.Methods, method)

		default:
			if _, err := p.ts.require(tokenRBrace, "} expected"); err != nil {
				return nil, err
			}
			return class, nil
		}
	}
}

func (p *parser) parseField() (*Field, error) {
	tok := p.ts.next()

	name, err := p.ts.require(tokenIdent, "identifier expected")
	if err != nil {
		return nil, err
	}

	field := &Field{
		Name:     name.Text,
		IsFinal:  tok.Kind == tokenVal,
		IsStatic: tok.Kind == tokenStatic,
		offset:   tok.Offset,
	}

	if p.ts.optional(tokenAs) != nil {
		field.Type, err = p.parseType()
		if err != nil {
			return nil, err
		}
	}
	if p.ts.optional(tokenAssign) != nil {
		field.Init, err = p.parseExpression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.ts.require(tokenSemicolon, "; expected"); err != nil {
		return nil, err
	}
	return field, nil
}

func (p *parser) parseConstructor() (*Constructor, error) {
	tok := p.ts.next()

	params, err := p.parseParams()
	if err != nil {
		return nil, err
	}
	if _, err := p.ts.require(tokenLBrace, "{ expected"); err != nil {
		return nil, err
	}
	body, err := p.parseBlockBody()
	if err != nil {
		return nil, err
	}
	return &Constructor{Params: params, Body: body, offset: tok.Offset}, nil
}
