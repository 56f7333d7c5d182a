package zen

// Parse turns a token sequence into a compilation unit. It consumes
// every token or fails with a ParseError; a failed parse yields no
// partial unit.
func Parse(tokens []Token) (*CompilationUnit, error) {
	return parseTokens(tokens, "")
}

// ParseSource lexes and parses source text in one call. Diagnostics
// carry line/column positions and a code frame for the offending line.
func ParseSource(source string) (*CompilationUnit, error) {
	tokens, err := Tokenize(source)
	if err != nil {
		return nil, err
	}
	return parseTokens(tokens, source)
}

func parseTokens(tokens []Token, source string) (*CompilationUnit, error) {
	p := &parser{ts: newTokenStream(tokens, source)}
	return p.parseUnit()
}

type parser struct {
	ts    *tokenStream
	depth int
}

// maxNestingDepth bounds recursive grammar entry so pathologically
// nested input fails with a ParseError instead of exhausting the stack.
const maxNestingDepth = 500

func (p *parser) enterNesting() error {
	p.depth++
	if p.depth > maxNestingDepth {
		return p.ts.errorf("nesting too deep")
	}
	return nil
}

func (p *parser) exitNesting() { p.depth-- }

func (p *parser) parseUnit() (*CompilationUnit, error) {
	unit := &CompilationUnit{}

	// A leading run of imports, before anything else.
	for {
		tok := p.ts.optional(tokenImport)
		if tok == nil {
			break
		}
		imp, err := p.parseImport(tok.Offset)
		if err != nil {
			return nil, err
		}
		unit.Imports = append(unit.Imports, imp)
	}

	for p.ts.peek() != nil {
		switch p.ts.peek().Kind {
		case tokenGlobal, tokenStatic:
			global, err := p.parseGlobal()
			if err != nil {
				return nil, err
			}
			unit.Statements = append(unit.Statements, global)
		case tokenFunction:
			fn, err := p.parseFunctionDecl()
			if err != nil {
				return nil, err
			}
			unit.Functions = append(unit.Functions, fn)
		case tokenClass:
			class, err := p.parseClassDecl()
			if err != nil {
				return nil, err
			}
			unit.Classes = append(unit.Classes, class)
		default:
			stmt, err := p.parseStatement()
			if err != nil {
				return nil, err
			}
			unit.Statements = append(unit.Statements, stmt)
		}
	}

	return unit, nil
}

func (p *parser) parseImport(offset int) (*Import, error) {
	first, err := p.ts.require(tokenIdent, "identifier expected")
	if err != nil {
		return nil, err
	}

	imp := &Import{Path: []string{first.Text}, offset: offset}
	for p.ts.optional(tokenDot) != nil {
		segment, err := p.ts.require(tokenIdent, "identifier expected")
		if err != nil {
			return nil, err
		}
		imp.Path = append(imp.Path, segment.Text)
	}

	if p.ts.optional(tokenAs) != nil {
		alias, err := p.ts.require(tokenIdent, "identifier expected")
		if err != nil {
			return nil, err
		}
		imp.Alias = alias.Text
	}

	if _, err := p.ts.require(tokenSemicolon, "; expected"); err != nil {
		return nil, err
	}
	return imp, nil
}
