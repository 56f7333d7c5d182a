package zen

import (
	"errors"
	"strings"
	"testing"
)

func TestParseImports(t *testing.T) {
	unit, err := ParseSource("import crafttweaker.item.IItemStack; import mods.jei.JEI as jei;")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if len(unit.Imports) != 2 {
		t.Fatalf("expected 2 imports, got %d", len(unit.Imports))
	}

	first := unit.Imports[0]
	if strings.Join(first.Path, ".") != "crafttweaker.item.IItemStack" {
		t.Fatalf("unexpected path %v", first.Path)
	}
	if first.Alias != "" || first.Name() != "IItemStack" {
		t.Fatalf("unexpected import name %q", first.Name())
	}

	second := unit.Imports[1]
	if second.Alias != "jei" || second.Name() != "jei" {
		t.Fatalf("unexpected alias %q", second.Alias)
	}
}

func TestParseImportsOnlyLead(t *testing.T) {
	// Imports after the first non-import item parse as expressions and
	// fail on the keyword.
	_, err := ParseSource("val x = 1; import a.b;")
	if err == nil {
		t.Fatalf("expected a late import to fail")
	}
}

func TestParseGlobals(t *testing.T) {
	unit, err := ParseSource("global answer as int = 42; static greeting = \"hi\";")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if len(unit.Statements) != 2 {
		t.Fatalf("expected 2 statements, got %d", len(unit.Statements))
	}

	global := unit.Statements[0].(*GlobalDecl)
	if global.Name != "answer" || global.IsStatic {
		t.Fatalf("unexpected global %#v", global)
	}
	if global.Type.(*RawType).Name != "int" {
		t.Fatalf("unexpected type %#v", global.Type)
	}
	if global.Value.(*IntLiteral).Value != 42 {
		t.Fatalf("unexpected value %#v", global.Value)
	}

	static := unit.Statements[1].(*GlobalDecl)
	if static.Name != "greeting" || !static.IsStatic {
		t.Fatalf("unexpected static %#v", static)
	}
	if static.Type != nil {
		t.Fatalf("expected no declared type, got %#v", static.Type)
	}
}

func TestParseGlobalRequiresValue(t *testing.T) {
	_, err := ParseSource("global x as int;")
	if err == nil {
		t.Fatalf("expected a global without a value to fail")
	}
}

func TestParseFunctionDecl(t *testing.T) {
	unit, err := ParseSource("function add(a as int, b as int) as int { return a + b; }")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if len(unit.Functions) != 1 {
		t.Fatalf("expected 1 function, got %d", len(unit.Functions))
	}

	fn := unit.Functions[0]
	if fn.Name != "add" || len(fn.Params) != 2 {
		t.Fatalf("unexpected function %#v", fn)
	}
	if fn.Params[0].Name != "a" || fn.Params[0].Type.(*RawType).Name != "int" {
		t.Fatalf("unexpected parameter %#v", fn.Params[0])
	}
	if fn.ReturnType.(*RawType).Name != "int" {
		t.Fatalf("unexpected return type %#v", fn.ReturnType)
	}
	if len(fn.Body) != 1 {
		t.Fatalf("unexpected body %#v", fn.Body)
	}
}

func TestParseClassDecl(t *testing.T) {
	source := `zenClass Foo {
	var x as int;
	val name = "foo";
	static count as int = 0;
	zenConstructor(x as int) {
		print(x);
	}
	function bar() as void {
		return;
	}
}`
	unit, err := ParseSource(source)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if len(unit.Classes) != 1 {
		t.Fatalf("expected 1 class, got %d", len(unit.Classes))
	}

	class := unit.Classes[0]
	if class.Name != "Foo" {
		t.Fatalf("unexpected class name %q", class.Name)
	}
	if len(class.Fields) != 3 {
		t.Fatalf("expected 3 fields, got %d", len(class.Fields))
	}
	if class.Fields[0].Name != "x" || class.Fields[0].IsFinal || class.Fields[0].IsStatic {
		t.Fatalf("unexpected field %#v", class.Fields[0])
	}
	if !class.Fields[1].IsFinal {
		t.Fatalf("val field must be final, got %#v", class.Fields[1])
	}
	if !class.Fields[2].IsStatic || class.Fields[2].Init.(*IntLiteral).Value != 0 {
		t.Fatalf("unexpected static field %#v", class.Fields[2])
	}
	if len(class.Constructors) != 1 || len(class.Constructors[0].Params) != 1 {
		t.Fatalf("unexpected constructors %#v", class.Constructors)
	}
	if len(class.Methods) != 1 || class.Methods[0].Name != "bar" {
		t.Fatalf("unexpected methods %#v", class.Methods)
	}
	if class.Methods[0].ReturnType.(*RawType).Name != "void" {
		t.Fatalf("unexpected method return type %#v", class.Methods[0].ReturnType)
	}
}

func TestParseClassKeywordAliases(t *testing.T) {
	unit, err := ParseSource("frigginClass Bar { frigginConstructor() { } }")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if len(unit.Classes) != 1 || unit.Classes[0].Name != "Bar" {
		t.Fatalf("unexpected classes %#v", unit.Classes)
	}
	if len(unit.Classes[0].Constructors) != 1 {
		t.Fatalf("expected 1 constructor, got %#v", unit.Classes[0].Constructors)
	}
}

func TestParseMixedUnitKeepsSourceOrder(t *testing.T) {
	source := `import a.b;
global g = 1;
function f() { }
zenClass C { }
f();`
	unit, err := ParseSource(source)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if len(unit.Imports) != 1 || len(unit.Functions) != 1 || len(unit.Classes) != 1 {
		t.Fatalf("unexpected unit %#v", unit)
	}
	if len(unit.Statements) != 2 {
		t.Fatalf("expected global + call, got %#v", unit.Statements)
	}
	if _, ok := unit.Statements[0].(*GlobalDecl); !ok {
		t.Fatalf("expected the global first, got %#v", unit.Statements[0])
	}
	if _, ok := unit.Statements[1].(*ExprStmt); !ok {
		t.Fatalf("expected the call second, got %#v", unit.Statements[1])
	}
}

func TestParseFromTokens(t *testing.T) {
	tokens := mustTokenize(t, "val x = 1;")
	unit, err := Parse(tokens)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if len(unit.Statements) != 1 {
		t.Fatalf("expected 1 statement, got %#v", unit.Statements)
	}
	if unit.Statements[0].(*VarDeclStmt).Name != "x" {
		t.Fatalf("unexpected statement %#v", unit.Statements[0])
	}
}

func TestParseErrorCarriesPosition(t *testing.T) {
	_, err := ParseSource("val x =\n;")
	if err == nil {
		t.Fatalf("expected parse error")
	}
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected ParseError, got %T", err)
	}
	msg := parseErr.Error()
	if !strings.Contains(msg, "line 2") {
		t.Fatalf("expected a line 2 position, got %q", msg)
	}
}

func TestParseErrorAtEndOfInput(t *testing.T) {
	_, err := ParseSource("function f(")
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected ParseError, got %v", err)
	}
	if parseErr.Token != nil {
		t.Fatalf("expected end-of-input error, got %+v", parseErr.Token)
	}
	if !strings.Contains(parseErr.Error(), "end of input") {
		t.Fatalf("unexpected message %q", parseErr.Error())
	}
}

func TestParseDeepNestingFails(t *testing.T) {
	source := strings.Repeat("(", 600) + "1" + strings.Repeat(")", 600) + ";"
	_, err := ParseSource(source)
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected ParseError, got %v", err)
	}
}
