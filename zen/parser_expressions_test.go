package zen

import (
	"errors"
	"testing"
)

func parseTestExpr(t *testing.T, source string) Expression {
	t.Helper()
	p := &parser{ts: newTokenStream(mustTokenize(t, source), source)}
	expr, err := p.parseExpression()
	if err != nil {
		t.Fatalf("parseExpression(%q) failed: %v", source, err)
	}
	if tok := p.ts.peek(); tok != nil {
		t.Fatalf("parseExpression(%q) left trailing token %+v", source, tok)
	}
	return expr
}

func TestExprMultiplicationBindsTighter(t *testing.T) {
	expr := parseTestExpr(t, "1 + 2 * 3")
	add, ok := expr.(*BinaryExpr)
	if !ok || add.Op != OpAdd {
		t.Fatalf("expected addition at the root, got %#v", expr)
	}
	if add.Left.(*IntLiteral).Value != 1 {
		t.Fatalf("unexpected left operand %#v", add.Left)
	}
	mul, ok := add.Right.(*BinaryExpr)
	if !ok || mul.Op != OpMul {
		t.Fatalf("expected multiplication on the right, got %#v", add.Right)
	}
}

func TestExprAssignmentIsRightAssociative(t *testing.T) {
	expr := parseTestExpr(t, "a = b = c")
	outer, ok := expr.(*AssignExpr)
	if !ok {
		t.Fatalf("expected assignment, got %#v", expr)
	}
	if outer.Target.(*VariableExpr).Name != "a" {
		t.Fatalf("unexpected target %#v", outer.Target)
	}
	inner, ok := outer.Value.(*AssignExpr)
	if !ok || inner.Target.(*VariableExpr).Name != "b" {
		t.Fatalf("expected nested assignment to b, got %#v", outer.Value)
	}
	if inner.Value.(*VariableExpr).Name != "c" {
		t.Fatalf("unexpected innermost value %#v", inner.Value)
	}
}

func TestExprCompoundAssignments(t *testing.T) {
	cases := []struct {
		source string
		op     Operator
	}{
		{"x += 1", OpAdd},
		{"x -= 1", OpSub},
		{"x *= 1", OpMul},
		{"x /= 1", OpDiv},
		{"x %= 1", OpMod},
		{"x |= 1", OpOr},
		{"x &= 1", OpAnd},
		{"x ^= 1", OpXor},
		{`x ~= "s"`, OpCat},
	}
	for _, c := range cases {
		expr := parseTestExpr(t, c.source)
		opAssign, ok := expr.(*OpAssignExpr)
		if !ok {
			t.Fatalf("%q: expected compound assignment, got %#v", c.source, expr)
		}
		if opAssign.Op != c.op {
			t.Fatalf("%q: expected op %s, got %s", c.source, c.op, opAssign.Op)
		}
	}
}

func TestExprConditionalIsRightAssociative(t *testing.T) {
	expr := parseTestExpr(t, "a ? b : c ? d : e")
	outer, ok := expr.(*ConditionalExpr)
	if !ok {
		t.Fatalf("expected conditional, got %#v", expr)
	}
	if outer.Then.(*VariableExpr).Name != "b" {
		t.Fatalf("unexpected then branch %#v", outer.Then)
	}
	inner, ok := outer.Else.(*ConditionalExpr)
	if !ok || inner.Cond.(*VariableExpr).Name != "c" {
		t.Fatalf("expected nested conditional in else, got %#v", outer.Else)
	}
}

func TestExprComparisonsDoNotChain(t *testing.T) {
	_, err := ParseSource("a < b < c;")
	if err == nil {
		t.Fatalf("expected a chained comparison to fail")
	}
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected ParseError, got %T", err)
	}
}

func TestExprContains(t *testing.T) {
	for _, source := range []string{"x in list", "x has list"} {
		expr := parseTestExpr(t, source)
		bin, ok := expr.(*BinaryExpr)
		if !ok || bin.Op != OpContains {
			t.Fatalf("%q: expected contains, got %#v", source, expr)
		}
		if bin.Left.(*VariableExpr).Name != "x" || bin.Right.(*VariableExpr).Name != "list" {
			t.Fatalf("%q: operand order must match the source, got %#v", source, bin)
		}
	}
}

func TestExprConcatIsLeftAssociative(t *testing.T) {
	expr := parseTestExpr(t, `a ~ b ~ c`)
	outer, ok := expr.(*BinaryExpr)
	if !ok || outer.Op != OpCat {
		t.Fatalf("expected concat, got %#v", expr)
	}
	inner, ok := outer.Left.(*BinaryExpr)
	if !ok || inner.Op != OpCat || inner.Left.(*VariableExpr).Name != "a" {
		t.Fatalf("expected left-nested concat, got %#v", outer.Left)
	}
	if outer.Right.(*VariableExpr).Name != "c" {
		t.Fatalf("unexpected right operand %#v", outer.Right)
	}
}

func TestExprUnaryNesting(t *testing.T) {
	expr := parseTestExpr(t, "!-x")
	not, ok := expr.(*UnaryExpr)
	if !ok || not.Op != OpNot {
		t.Fatalf("expected not, got %#v", expr)
	}
	neg, ok := not.Operand.(*UnaryExpr)
	if !ok || neg.Op != OpNeg {
		t.Fatalf("expected nested negation, got %#v", not.Operand)
	}
	if neg.Operand.(*VariableExpr).Name != "x" {
		t.Fatalf("unexpected operand %#v", neg.Operand)
	}
}

func TestExprPostfixChain(t *testing.T) {
	expr := parseTestExpr(t, "a.b[0](1, 2) as int")
	cast, ok := expr.(*CastExpr)
	if !ok || cast.Type.(*RawType).Name != "int" {
		t.Fatalf("expected cast to int, got %#v", expr)
	}
	call, ok := cast.Base.(*CallExpr)
	if !ok || len(call.Args) != 2 {
		t.Fatalf("expected a two-argument call, got %#v", cast.Base)
	}
	index, ok := call.Callee.(*IndexExpr)
	if !ok {
		t.Fatalf("expected index below the call, got %#v", call.Callee)
	}
	member, ok := index.Base.(*MemberExpr)
	if !ok || member.Name != "b" {
		t.Fatalf("expected member access at the base, got %#v", index.Base)
	}
	if member.Base.(*VariableExpr).Name != "a" {
		t.Fatalf("unexpected receiver %#v", member.Base)
	}
}

func TestExprIndexAssignment(t *testing.T) {
	expr := parseTestExpr(t, "a[1] = 2")
	set, ok := expr.(*IndexSetExpr)
	if !ok {
		t.Fatalf("expected index assignment, got %#v", expr)
	}
	if set.Index.(*IntLiteral).Value != 1 || set.Value.(*IntLiteral).Value != 2 {
		t.Fatalf("unexpected index assignment %#v", set)
	}
}

func TestExprInstanceOf(t *testing.T) {
	expr := parseTestExpr(t, "x instanceof string")
	inst, ok := expr.(*InstanceOfExpr)
	if !ok || inst.Type.(*RawType).Name != "string" {
		t.Fatalf("expected instanceof string, got %#v", expr)
	}
}

func TestExprRanges(t *testing.T) {
	for _, source := range []string{"1 .. 10", "1 to 10"} {
		expr := parseTestExpr(t, source)
		rng, ok := expr.(*BinaryExpr)
		if !ok || rng.Op != OpRange {
			t.Fatalf("%q: expected range, got %#v", source, expr)
		}
		if rng.Left.(*IntLiteral).Value != 1 || rng.Right.(*IntLiteral).Value != 10 {
			t.Fatalf("%q: unexpected bounds %#v", source, rng)
		}
	}
}

func TestExprPostfixConsumesNonRangeIdentifier(t *testing.T) {
	// An identifier following an expression is consumed while checking
	// for the `to` range spelling and is not restored on a mismatch.
	p := &parser{ts: newTokenStream(mustTokenize(t, "a b"), "a b")}
	expr, err := p.parseExpression()
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if expr.(*VariableExpr).Name != "a" {
		t.Fatalf("expected the leading variable, got %#v", expr)
	}
	if tok := p.ts.peek(); tok != nil {
		t.Fatalf("the trailing identifier must be consumed, got %+v", tok)
	}
}

func TestExprMemberByStringLiteral(t *testing.T) {
	expr := parseTestExpr(t, `a."hello world"`)
	member, ok := expr.(*MemberExpr)
	if !ok || member.Name != "hello world" {
		t.Fatalf("expected string member access, got %#v", expr)
	}
}

func TestExprBracketCapture(t *testing.T) {
	expr := parseTestExpr(t, "<minecraft:stone:1>")
	bracket, ok := expr.(*BracketExpr)
	if !ok {
		t.Fatalf("expected bracket expression, got %#v", expr)
	}
	texts := make([]string, len(bracket.Tokens))
	for i, tok := range bracket.Tokens {
		texts[i] = tok.Text
	}
	want := []string{"minecraft", ":", "stone", ":", "1"}
	if len(texts) != len(want) {
		t.Fatalf("expected %v, got %v", want, texts)
	}
	for i := range want {
		if texts[i] != want[i] {
			t.Fatalf("token %d: expected %q, got %q", i, want[i], texts[i])
		}
	}
}

func TestExprUnterminatedBracketCapture(t *testing.T) {
	p := &parser{ts: newTokenStream(mustTokenize(t, "<minecraft:stone"), "<minecraft:stone")}
	_, err := p.parseExpression()
	if err == nil {
		t.Fatalf("expected unterminated bracket to fail")
	}
}

func TestExprListLiteralTrailingComma(t *testing.T) {
	expr := parseTestExpr(t, "[1, 2,]")
	list, ok := expr.(*ListLiteral)
	if !ok || len(list.Elements) != 2 {
		t.Fatalf("expected 2 elements, got %#v", expr)
	}
	if empty := parseTestExpr(t, "[]").(*ListLiteral); len(empty.Elements) != 0 {
		t.Fatalf("expected empty list, got %#v", empty)
	}
}

func TestExprMapLiteral(t *testing.T) {
	expr := parseTestExpr(t, `{one : 1, "two" : 2}`)
	m, ok := expr.(*MapLiteral)
	if !ok {
		t.Fatalf("expected map literal, got %#v", expr)
	}
	if len(m.Keys) != 2 || len(m.Values) != 2 {
		t.Fatalf("expected 2 entries, got %#v", m)
	}
	if m.Keys[0].(*VariableExpr).Name != "one" || m.Keys[1].(*StringLiteral).Value != "two" {
		t.Fatalf("unexpected keys %#v", m.Keys)
	}
	if m.Values[1].(*IntLiteral).Value != 2 {
		t.Fatalf("unexpected values %#v", m.Values)
	}
}

func TestExprFunctionLiteral(t *testing.T) {
	expr := parseTestExpr(t, "function(x as int) as bool { return true; }")
	fn, ok := expr.(*FunctionLiteral)
	if !ok {
		t.Fatalf("expected function literal, got %#v", expr)
	}
	if len(fn.Params) != 1 || fn.Params[0].Name != "x" || fn.Params[0].Type.(*RawType).Name != "int" {
		t.Fatalf("unexpected params %#v", fn.Params)
	}
	if fn.ReturnType.(*RawType).Name != "bool" {
		t.Fatalf("unexpected return type %#v", fn.ReturnType)
	}
	if len(fn.Body) != 1 {
		t.Fatalf("unexpected body %#v", fn.Body)
	}
}

func TestExprIntLiteralWidths(t *testing.T) {
	if lit := parseTestExpr(t, "2147483647").(*IntLiteral); lit.IsLong {
		t.Fatalf("max int32 must not be long")
	}
	if lit := parseTestExpr(t, "2147483648").(*IntLiteral); !lit.IsLong {
		t.Fatalf("max int32 + 1 must be long")
	}
	neg := parseTestExpr(t, "-2147483648").(*UnaryExpr)
	if neg.Operand.(*IntLiteral).Value != 2147483648 {
		t.Fatalf("unexpected negated literal %#v", neg.Operand)
	}
}

func TestExprIntLiteralOverflow(t *testing.T) {
	p := &parser{ts: newTokenStream(mustTokenize(t, "9223372036854775808"), "9223372036854775808")}
	_, err := p.parseExpression()
	var nfe *NumberFormatError
	if !errors.As(err, &nfe) {
		t.Fatalf("expected NumberFormatError, got %v", err)
	}
}

func TestExprFloatLiteralSuffixes(t *testing.T) {
	if lit := parseTestExpr(t, "2.5f").(*FloatLiteral); lit.IsDouble || lit.Value != 2.5 {
		t.Fatalf("unexpected single literal %#v", lit)
	}
	if lit := parseTestExpr(t, "2.5").(*FloatLiteral); !lit.IsDouble || lit.Value != 2.5 {
		t.Fatalf("unexpected double literal %#v", lit)
	}
	if lit := parseTestExpr(t, "2.5d").(*FloatLiteral); !lit.IsDouble || lit.Value != 2.5 {
		t.Fatalf("unexpected suffixed double literal %#v", lit)
	}
}

func TestExprStringLiteralIsUnescaped(t *testing.T) {
	lit := parseTestExpr(t, `"a\nb"`).(*StringLiteral)
	if lit.Value != "a\nb" {
		t.Fatalf("expected decoded value, got %q", lit.Value)
	}
}

func TestExprErrorAtEndOfInput(t *testing.T) {
	p := &parser{ts: newTokenStream(mustTokenize(t, "1 +"), "1 +")}
	_, err := p.parseExpression()
	if err == nil {
		t.Fatalf("expected parse error")
	}
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected ParseError, got %T", err)
	}
	if parseErr.Token != nil {
		t.Fatalf("expected end-of-input error, got token %+v", parseErr.Token)
	}
}
