package zen

import (
	"math"
	"strconv"
)

// compoundAssignOps maps compound-assignment tokens to the logical
// operator recorded on the OpAssign node.
var compoundAssignOps = map[TokenKind]Operator{
	tokenPlusAsgn:  OpAdd,
	tokenMinusAsgn: OpSub,
	tokenMulAsgn:   OpMul,
	tokenDivAsgn:   OpDiv,
	tokenModAsgn:   OpMod,
	tokenOrAsgn:    OpOr,
	tokenAndAsgn:   OpAnd,
	tokenXorAsgn:   OpXor,
	tokenCatAsgn:   OpCat,
}

var compareOps = map[TokenKind]Operator{
	tokenEQ:    OpEQ,
	tokenNotEQ: OpNE,
	tokenLT:    OpLT,
	tokenLTE:   OpLE,
	tokenGT:    OpGT,
	tokenGTE:   OpGE,
}

// parseExpression parses one expression at the lowest precedence
// level. Each layer below parses the next higher layer for its
// operands and consumes its own operators eagerly.
func (p *parser) parseExpression() (Expression, error) {
	return p.parseAssign()
}

func (p *parser) parseAssign() (Expression, error) {
	if err := p.enterNesting(); err != nil {
		return nil, err
	}
	defer p.exitNesting()

	left, err := p.parseConditional()
	if err != nil {
		return nil, err
	}

	tok := p.ts.peek()
	if tok == nil {
		return left, nil
	}

	if tok.Kind == tokenAssign {
		p.ts.next()
		value, err := p.parseAssign()
		if err != nil {
			return nil, err
		}
		return &AssignExpr{Target: left, Value: value, offset: left.Pos()}, nil
	}

	if op, ok := compoundAssignOps[tok.Kind]; ok {
		p.ts.next()
		value, err := p.parseAssign()
		if err != nil {
			return nil, err
		}
		return &OpAssignExpr{Op: op, Target: left, Value: value, offset: left.Pos()}, nil
	}

	return left, nil
}

func (p *parser) parseConditional() (Expression, error) {
	cond, err := p.parseOrOr()
	if err != nil {
		return nil, err
	}

	if p.ts.optional(tokenQuestion) == nil {
		return cond, nil
	}

	then, err := p.parseOrOr()
	if err != nil {
		return nil, err
	}
	if _, err := p.ts.require(tokenColon, ": expected"); err != nil {
		return nil, err
	}
	els, err := p.parseConditional()
	if err != nil {
		return nil, err
	}
	return &ConditionalExpr{Cond: cond, Then: then, Else: els, offset: cond.Pos()}, nil
}

func (p *parser) parseOrOr() (Expression, error) {
	return p.parseBinaryLeft(tokenOrOr, OpOrOr, p.parseAndAnd)
}

func (p *parser) parseAndAnd() (Expression, error) {
	return p.parseBinaryLeft(tokenAndAnd, OpAndAnd, p.parseBitOr)
}

func (p *parser) parseBitOr() (Expression, error) {
	return p.parseBinaryLeft(tokenOr, OpOr, p.parseBitXor)
}

func (p *parser) parseBitXor() (Expression, error) {
	return p.parseBinaryLeft(tokenXor, OpXor, p.parseBitAnd)
}

func (p *parser) parseBitAnd() (Expression, error) {
	return p.parseBinaryLeft(tokenAnd, OpAnd, p.parseCompare)
}

// parseBinaryLeft builds a strictly left-associative chain of one
// binary operator over the next precedence layer.
func (p *parser) parseBinaryLeft(kind TokenKind, op Operator, next func() (Expression, error)) (Expression, error) {
	left, err := next()
	if err != nil {
		return nil, err
	}
	for p.ts.optional(kind) != nil {
		right, err := next()
		if err != nil {
			return nil, err
		}
		left = &BinaryExpr{Op: op, Left: left, Right: right, offset: left.Pos()}
	}
	return left, nil
}

// parseCompare allows at most one comparison operator: comparisons do
// not chain. The infix in/has keyword produces a contains node instead
// and does not consume a following comparison operator.
func (p *parser) parseCompare() (Expression, error) {
	left, err := p.parseAdd()
	if err != nil {
		return nil, err
	}

	tok := p.ts.peek()
	if tok == nil {
		return left, nil
	}

	if op, ok := compareOps[tok.Kind]; ok {
		p.ts.next()
		right, err := p.parseAdd()
		if err != nil {
			return nil, err
		}
		return &CompareExpr{Op: op, Left: left, Right: right, offset: left.Pos()}, nil
	}

	if tok.Kind == tokenIn {
		p.ts.next()
		right, err := p.parseAdd()
		if err != nil {
			return nil, err
		}
		return &BinaryExpr{Op: OpContains, Left: left, Right: right, offset: left.Pos()}, nil
	}

	return left, nil
}

func (p *parser) parseAdd() (Expression, error) {
	left, err := p.parseMul()
	if err != nil {
		return nil, err
	}
	for {
		var op Operator
		switch {
		case p.ts.optional(tokenPlus) != nil:
			op = OpAdd
		case p.ts.optional(tokenMinus) != nil:
			op = OpSub
		case p.ts.optional(tokenCat) != nil:
			op = OpCat
		default:
			return left, nil
		}
		right, err := p.parseMul()
		if err != nil {
			return nil, err
		}
		left = &BinaryExpr{Op: op, Left: left, Right: right, offset: left.Pos()}
	}
}

func (p *parser) parseMul() (Expression, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		var op Operator
		switch {
		case p.ts.optional(tokenMul) != nil:
			op = OpMul
		case p.ts.optional(tokenDiv) != nil:
			op = OpDiv
		case p.ts.optional(tokenMod) != nil:
			op = OpMod
		default:
			return left, nil
		}
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = &BinaryExpr{Op: op, Left: left, Right: right, offset: left.Pos()}
	}
}

func (p *parser) parseUnary() (Expression, error) {
	if err := p.enterNesting(); err != nil {
		return nil, err
	}
	defer p.exitNesting()

	if tok := p.ts.optional(tokenNot); tok != nil {
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &UnaryExpr{Op: OpNot, Operand: operand, offset: tok.Offset}, nil
	}
	if tok := p.ts.optional(tokenMinus); tok != nil {
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &UnaryExpr{Op: OpNeg, Operand: operand, offset: tok.Offset}, nil
	}
	return p.parsePostfix()
}

// parsePostfix chains member access, ranges, indexing, calls, casts,
// and instanceof checks greedily until none match.
func (p *parser) parsePostfix() (Expression, error) {
	base, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}

	for {
		tok := p.ts.peek()
		if tok == nil {
			return base, nil
		}

		switch tok.Kind {
		case tokenDot:
			p.ts.next()
			base, err = p.parseMember(base)
			if err != nil {
				return nil, err
			}

		case tokenDotDot:
			p.ts.next()
			right, err := p.parseAssign()
			if err != nil {
				return nil, err
			}
			base = &BinaryExpr{Op: OpRange, Left: base, Right: right, offset: base.Pos()}

		case tokenIdent:
			// Speculative check for the contextual `to` range spelling.
			// The identifier is consumed either way and is not restored
			// on a mismatch.
			p.ts.next()
			if tok.Text != "to" {
				return base, nil
			}
			right, err := p.parseAssign()
			if err != nil {
				return nil, err
			}
			base = &BinaryExpr{Op: OpRange, Left: base, Right: right, offset: base.Pos()}

		case tokenLBracket:
			p.ts.next()
			index, err := p.parseAssign()
			if err != nil {
				return nil, err
			}
			if _, err := p.ts.require(tokenRBracket, "] expected"); err != nil {
				return nil, err
			}
			if p.ts.optional(tokenAssign) != nil {
				value, err := p.parseAssign()
				if err != nil {
					return nil, err
				}
				base = &IndexSetExpr{Base: base, Index: index, Value: value, offset: base.Pos()}
			} else {
				base = &IndexExpr{Base: base, Index: index, offset: base.Pos()}
			}

		case tokenLParen:
			p.ts.next()
			args, err := p.parseCallArgs()
			if err != nil {
				return nil, err
			}
			base = &CallExpr{Callee: base, Args: args, offset: base.Pos()}

		case tokenAs:
			p.ts.next()
			typ, err := p.parseType()
			if err != nil {
				return nil, err
			}
			base = &CastExpr{Base: base, Type: typ, offset: base.Pos()}

		case tokenInstanceof:
			p.ts.next()
			typ, err := p.parseType()
			if err != nil {
				return nil, err
			}
			base = &InstanceOfExpr{Base: base, Type: typ, offset: base.Pos()}

		default:
			return base, nil
		}
	}
}

// parseMember parses the name after a consumed dot: an identifier or a
// string literal whose unescaped value becomes the member name.
func (p *parser) parseMember(base Expression) (Expression, error) {
	if id := p.ts.optional(tokenIdent); id != nil {
		return &MemberExpr{Base: base, Name: id.Text, offset: base.Pos()}, nil
	}
	if str := p.ts.optional(tokenStringValue); str != nil {
		return &MemberExpr{Base: base, Name: Unescape(str.Text), offset: base.Pos()}, nil
	}
	return nil, p.ts.errorf("invalid expression")
}

func (p *parser) parseCallArgs() ([]Expression, error) {
	var args []Expression
	for {
		if p.ts.optional(tokenRParen) != nil {
			return args, nil
		}
		arg, err := p.parseAssign()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		if p.ts.optional(tokenComma) == nil {
			if _, err := p.ts.require(tokenRParen, ") expected"); err != nil {
				return nil, err
			}
			return args, nil
		}
	}
}

func (p *parser) parsePrimary() (Expression, error) {
	tok := p.ts.peek()
	if tok == nil {
		return nil, p.ts.errorf("invalid expression")
	}

	switch tok.Kind {
	case tokenIntValue:
		p.ts.next()
		return intLiteral(tok)

	case tokenFloatValue:
		p.ts.next()
		return floatLiteral(tok)

	case tokenStringValue:
		p.ts.next()
		return &StringLiteral{Value: Unescape(tok.Text), offset: tok.Offset}, nil

	case tokenIdent:
		p.ts.next()
		return &VariableExpr{Name: tok.Text, offset: tok.Offset}, nil

	case tokenTrue, tokenFalse:
		p.ts.next()
		return &BoolLiteral{Value: tok.Kind == tokenTrue, offset: tok.Offset}, nil

	case tokenNull:
		p.ts.next()
		return &NullLiteral{offset: tok.Offset}, nil

	case tokenFunction:
		p.ts.next()
		return p.parseFunctionLiteral(tok.Offset)

	case tokenLT:
		p.ts.next()
		return p.parseBracketCapture(tok.Offset)

	case tokenLBracket:
		p.ts.next()
		return p.parseListLiteral(tok.Offset)

	case tokenLBrace:
		p.ts.next()
		return p.parseMapLiteral(tok.Offset)

	case tokenLParen:
		p.ts.next()
		expr, err := p.parseAssign()
		if err != nil {
			return nil, err
		}
		if _, err := p.ts.require(tokenRParen, ") expected"); err != nil {
			return nil, err
		}
		return expr, nil
	}

	return nil, p.ts.errorf("invalid expression")
}

// intLiteral decodes an integer token, marking values outside the
// signed 32-bit range as long.
func intLiteral(tok *Token) (Expression, error) {
	value, err := ParseInteger(tok.Text)
	if err != nil {
		return nil, err
	}
	if !value.IsInt64() {
		return nil, &NumberFormatError{Text: tok.Text}
	}
	v := value.Int64()
	isLong := v > math.MaxInt32 || v < math.MinInt32
	return &IntLiteral{Value: v, IsLong: isLong, offset: tok.Offset}, nil
}

// floatLiteral decodes a float token; an `f`/`F` suffix selects single
// width, `d`/`D` or no suffix selects double.
func floatLiteral(tok *Token) (Expression, error) {
	text := tok.Text
	isDouble := true
	switch text[len(text)-1] {
	case 'f', 'F':
		isDouble = false
		text = text[:len(text)-1]
	case 'd', 'D':
		text = text[:len(text)-1]
	}

	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return nil, &NumberFormatError{Text: tok.Text}
	}
	return &FloatLiteral{Value: value, IsDouble: isDouble, offset: tok.Offset}, nil
}

// parseFunctionLiteral parses `function(params) [as Type] { body }`
// with the leading function keyword already consumed.
func (p *parser) parseFunctionLiteral(offset int) (Expression, error) {
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

	return &FunctionLiteral{Params: params, ReturnType: returnType, Body: body, offset: offset}, nil
}

// parseBracketCapture collects tokens verbatim until the matching `>`;
// the run is not parsed further.
func (p *parser) parseBracketCapture(offset int) (Expression, error) {
	var tokens []Token
	for {
		tok := p.ts.next()
		if tok == nil {
			return nil, p.ts.errorf("> expected")
		}
		if tok.Kind == tokenGT {
			return &BracketExpr{Tokens: tokens, offset: offset}, nil
		}
		tokens = append(tokens, *tok)
	}
}

func (p *parser) parseListLiteral(offset int) (Expression, error) {
	var elements []Expression
	for {
		if p.ts.optional(tokenRBracket) != nil {
			return &ListLiteral{Elements: elements, offset: offset}, nil
		}
		elem, err := p.parseAssign()
		if err != nil {
			return nil, err
		}
		elements = append(elements, elem)
		if p.ts.optional(tokenComma) == nil {
			if _, err := p.ts.require(tokenRBracket, "] expected"); err != nil {
				return nil, err
			}
			return &ListLiteral{Elements: elements, offset: offset}, nil
		}
	}
}

func (p *parser) parseMapLiteral(offset int) (Expression, error) {
	var keys, values []Expression
	for {
		if p.ts.optional(tokenRBrace) != nil {
			return &MapLiteral{Keys: keys, Values: values, offset: offset}, nil
		}
		key, err := p.parseAssign()
		if err != nil {
			return nil, err
		}
		if _, err := p.ts.require(tokenColon, ": expected"); err != nil {
			return nil, err
		}
		value, err := p.parseAssign()
		if err != nil {
			return nil, err
		}
		keys = append(keys, key)
		values = append(values, value)
		if p.ts.optional(tokenComma) == nil {
			if _, err := p.ts.require(tokenRBrace, "} expected"); err != nil {
				return nil, err
			}
			return &MapLiteral{Keys: keys, Values: values, offset: offset}, nil
		}
	}
}
