package zen

// Import is one `import a.b.c;` or `import a.b.c as d;` declaration.
type Import struct {
	Path   []string
	Alias  string
	offset int
}

func (d *Import) Pos() int { return d.offset }

// Name returns the alias if present, otherwise the last path segment.
func (d *Import) Name() string {
	if d.Alias != "" {
		return d.Alias
	}
	return d.Path[len(d.Path)-1]
}

// Param is a declared function or constructor parameter. Type is nil
// when unannotated.
type Param struct {
	Name string
	Type ZenType
}

// FunctionDecl is a named function; it doubles as a class method.
// ReturnType is nil when unannotated.
type FunctionDecl struct {
	Name       string
	Params     []Param
	ReturnType ZenType
	Body       []Statement
	offset     int
}

func (d *FunctionDecl) Pos() int { return d.offset }

// Field is a class field. IsFinal marks `val`, IsStatic marks `static`.
type Field struct {
	Name     string
	Type     ZenType
	Init     Expression
	IsFinal  bool
	IsStatic bool
	offset   int
}

func (d *Field) Pos() int { return d.offset }

// Constructor is one zenConstructor declaration.
type Constructor struct {
	Params []Param
	Body   []Statement
	offset int
}

func (d *Constructor) Pos() int { return d.offset }

// ClassDecl is a zenClass declaration with its members in source order.
type ClassDecl struct {
	Name         string
	Fields       []*Field
	Constructors []*Constructor
	Methods      []*FunctionDecl
	offset       int
}

func (d *ClassDecl) Pos() int { return d.offset }

// GlobalDecl is a top-level `global`/`static` binding. Type is nil when
// unannotated; IsStatic distinguishes the two keywords. Globals live in
// the unit's statement list, so GlobalDecl is a Statement.
type GlobalDecl struct {
	Name     string
	Type     ZenType
	Value    Expression
	IsStatic bool
	offset   int
}

func (d *GlobalDecl) stmtNode() {}
func (d *GlobalDecl) Pos() int  { return d.offset }

// CompilationUnit is the parse result: imports, top-level functions,
// classes, and loose statements, each in source order.
type CompilationUnit struct {
	Imports    []*Import
	Functions  []*FunctionDecl
	Classes    []*ClassDecl
	Statements []Statement
}
