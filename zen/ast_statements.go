package zen

type BlockStmt struct {
	Body   []Statement
	offset int
}

func (s *BlockStmt) stmtNode() {}
func (s *BlockStmt) Pos() int  { return s.offset }

// ReturnStmt carries a nil Value for a bare `return;`.
type ReturnStmt struct {
	Value  Expression
	offset int
}

func (s *ReturnStmt) stmtNode() {}
func (s *ReturnStmt) Pos() int  { return s.offset }

// VarDeclStmt is a `var`/`val` declaration. Type and Init are nil when
// absent; IsFinal marks `val`.
type VarDeclStmt struct {
	Name    string
	Type    ZenType
	Init    Expression
	IsFinal bool
	offset  int
}

func (s *VarDeclStmt) stmtNode() {}
func (s *VarDeclStmt) Pos() int  { return s.offset }

type IfStmt struct {
	Cond   Expression
	Then   Statement
	Else   Statement
	offset int
}

func (s *IfStmt) stmtNode() {}
func (s *IfStmt) Pos() int  { return s.offset }

// ForStmt binds one or more names over an iterable.
type ForStmt struct {
	Names    []string
	Iterable Expression
	Body     Statement
	offset   int
}

func (s *ForStmt) stmtNode() {}
func (s *ForStmt) Pos() int  { return s.offset }

type WhileStmt struct {
	Cond   Expression
	Body   Statement
	offset int
}

func (s *WhileStmt) stmtNode() {}
func (s *WhileStmt) Pos() int  { return s.offset }

type BreakStmt struct {
	offset int
}

func (s *BreakStmt) stmtNode() {}
func (s *BreakStmt) Pos() int  { return s.offset }

type ContinueStmt struct {
	offset int
}

func (s *ContinueStmt) stmtNode() {}
func (s *ContinueStmt) Pos() int  { return s.offset }

type ExprStmt struct {
	Expr   Expression
	offset int
}

func (s *ExprStmt) stmtNode() {}
func (s *ExprStmt) Pos() int  { return s.offset }
