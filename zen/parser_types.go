package zen

// primitiveTypes maps type-keyword token kinds to their Raw names.
var primitiveTypes = map[TokenKind]string{
	tokenAny:    "any",
	tokenVoid:   "void",
	tokenBool:   "bool",
	tokenByte:   "byte",
	tokenShort:  "short",
	tokenInt:    "int",
	tokenLong:   "long",
	tokenFloat:  "float",
	tokenDouble: "double",
	tokenString: "string",
}

// parseType parses one ZenType: a base type followed by zero or more
// postfix array/map suffixes applied left to right.
func (p *parser) parseType() (ZenType, error) {
	base, err := p.parseBaseType()
	if err != nil {
		return nil, err
	}

	for p.ts.optional(tokenLBracket) != nil {
		if p.ts.optional(tokenRBracket) != nil {
			base = &ArrayType{Elem: base}
			continue
		}
		key, err := p.parseType()
		if err != nil {
			return nil, err
		}
		if _, err := p.ts.require(tokenRBracket, "] expected"); err != nil {
			return nil, err
		}
		// V[K] reads base-as-value, bracket-contents-as-key.
		base = &AssociativeType{Key: key, Value: base}
	}

	return base, nil
}

func (p *parser) parseBaseType() (ZenType, error) {
	if err := p.enterNesting(); err != nil {
		return nil, err
	}
	defer p.exitNesting()

	tok := p.ts.peek()
	if tok == nil {
		return nil, p.ts.errorf("unknown type")
	}

	if name, ok := primitiveTypes[tok.Kind]; ok {
		p.ts.next()
		return &RawType{Name: name}, nil
	}

	switch tok.Kind {
	case tokenIdent:
		p.ts.next()
		name := tok.Text
		for p.ts.optional(tokenDot) != nil {
			segment, err := p.ts.require(tokenIdent, "identifier expected")
			if err != nil {
				return nil, err
			}
			name += "." + segment.Text
		}
		return &RawType{Name: name}, nil

	case tokenFunction:
		p.ts.next()
		if _, err := p.ts.require(tokenLParen, "( expected"); err != nil {
			return nil, err
		}
		var args []ZenType
		if p.ts.optional(tokenRParen) == nil {
			for {
				arg, err := p.parseType()
				if err != nil {
					return nil, err
				}
				args = append(args, arg)
				if p.ts.optional(tokenComma) == nil {
					break
				}
			}
			if _, err := p.ts.require(tokenRParen, ") expected"); err != nil {
				return nil, err
			}
		}
		ret, err := p.parseType()
		if err != nil {
			return nil, err
		}
		return &FunctionType{Args: args, Return: ret}, nil

	case tokenLBracket:
		p.ts.next()
		elem, err := p.parseType()
		if err != nil {
			return nil, err
		}
		if _, err := p.ts.require(tokenRBracket, "] expected"); err != nil {
			return nil, err
		}
		return &ListType{Elem: elem}, nil
	}

	return nil, p.ts.errorf("unknown type")
}
