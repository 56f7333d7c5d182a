package zen

// Node is any AST node. Pos returns the byte offset of the node's first
// token in the original source.
type Node interface {
	Pos() int
}

type Statement interface {
	Node
	stmtNode()
}

type Expression interface {
	Node
	exprNode()
}

// Operator tags binary, unary, comparison, and compound-assignment
// nodes with their logical operation.
type Operator string

const (
	OpAdd      Operator = "+"
	OpSub      Operator = "-"
	OpCat      Operator = "~"
	OpMul      Operator = "*"
	OpDiv      Operator = "/"
	OpMod      Operator = "%"
	OpOr       Operator = "|"
	OpAnd      Operator = "&"
	OpXor      Operator = "^"
	OpOrOr     Operator = "||"
	OpAndAnd   Operator = "&&"
	OpRange    Operator = ".."
	OpContains Operator = "in"

	OpEQ  Operator = "=="
	OpNE  Operator = "!="
	OpLT  Operator = "<"
	OpLE  Operator = "<="
	OpGT  Operator = ">"
	OpGE  Operator = ">="

	OpNot Operator = "!"
	OpNeg Operator = "-"
)

// IntLiteral carries the decoded value of an integer literal. IsLong
// marks values outside the signed 32-bit range.
type IntLiteral struct {
	Value  int64
	IsLong bool
	offset int
}

func (e *IntLiteral) exprNode() {}
func (e *IntLiteral) Pos() int  { return e.offset }

// FloatLiteral carries the decoded value of a float literal. IsDouble
// is false only for an explicit `f`/`F` suffix.
type FloatLiteral struct {
	Value    float64
	IsDouble bool
	offset   int
}

func (e *FloatLiteral) exprNode() {}
func (e *FloatLiteral) Pos() int  { return e.offset }

type StringLiteral struct {
	Value  string
	offset int
}

func (e *StringLiteral) exprNode() {}
func (e *StringLiteral) Pos() int  { return e.offset }

type BoolLiteral struct {
	Value  bool
	offset int
}

func (e *BoolLiteral) exprNode() {}
func (e *BoolLiteral) Pos() int  { return e.offset }

type NullLiteral struct {
	offset int
}

func (e *NullLiteral) exprNode() {}
func (e *NullLiteral) Pos() int  { return e.offset }

type VariableExpr struct {
	Name   string
	offset int
}

func (e *VariableExpr) exprNode() {}
func (e *VariableExpr) Pos() int  { return e.offset }

type AssignExpr struct {
	Target Expression
	Value  Expression
	offset int
}

func (e *AssignExpr) exprNode() {}
func (e *AssignExpr) Pos() int  { return e.offset }

// OpAssignExpr is a compound assignment; Op is the logical operator of
// the compound form (`+=` carries OpAdd).
type OpAssignExpr struct {
	Op     Operator
	Target Expression
	Value  Expression
	offset int
}

func (e *OpAssignExpr) exprNode() {}
func (e *OpAssignExpr) Pos() int  { return e.offset }

type ConditionalExpr struct {
	Cond   Expression
	Then   Expression
	Else   Expression
	offset int
}

func (e *ConditionalExpr) exprNode() {}
func (e *ConditionalExpr) Pos() int  { return e.offset }

type BinaryExpr struct {
	Op     Operator
	Left   Expression
	Right  Expression
	offset int
}

func (e *BinaryExpr) exprNode() {}
func (e *BinaryExpr) Pos() int  { return e.offset }

type CompareExpr struct {
	Op     Operator
	Left   Expression
	Right  Expression
	offset int
}

func (e *CompareExpr) exprNode() {}
func (e *CompareExpr) Pos() int  { return e.offset }

type UnaryExpr struct {
	Op      Operator
	Operand Expression
	offset  int
}

func (e *UnaryExpr) exprNode() {}
func (e *UnaryExpr) Pos() int  { return e.offset }

type MemberExpr struct {
	Base   Expression
	Name   string
	offset int
}

func (e *MemberExpr) exprNode() {}
func (e *MemberExpr) Pos() int  { return e.offset }

type IndexExpr struct {
	Base   Expression
	Index  Expression
	offset int
}

func (e *IndexExpr) exprNode() {}
func (e *IndexExpr) Pos() int  { return e.offset }

// IndexSetExpr is an index expression immediately followed by `=`.
type IndexSetExpr struct {
	Base   Expression
	Index  Expression
	Value  Expression
	offset int
}

func (e *IndexSetExpr) exprNode() {}
func (e *IndexSetExpr) Pos() int  { return e.offset }

type CallExpr struct {
	Callee Expression
	Args   []Expression
	offset int
}

func (e *CallExpr) exprNode() {}
func (e *CallExpr) Pos() int  { return e.offset }

type CastExpr struct {
	Base   Expression
	Type   ZenType
	offset int
}

func (e *CastExpr) exprNode() {}
func (e *CastExpr) Pos() int  { return e.offset }

type InstanceOfExpr struct {
	Base   Expression
	Type   ZenType
	offset int
}

func (e *InstanceOfExpr) exprNode() {}
func (e *InstanceOfExpr) Pos() int  { return e.offset }

// FunctionLiteral is an anonymous `function(params) [as Type] { body }`.
type FunctionLiteral struct {
	Params     []Param
	ReturnType ZenType
	Body       []Statement
	offset     int
}

func (e *FunctionLiteral) exprNode() {}
func (e *FunctionLiteral) Pos() int  { return e.offset }

// BracketExpr captures a `< ... >` token run verbatim. The tokens are
// not parsed further; exterior semantic layers interpret them.
type BracketExpr struct {
	Tokens []Token
	offset int
}

func (e *BracketExpr) exprNode() {}
func (e *BracketExpr) Pos() int  { return e.offset }

type ListLiteral struct {
	Elements []Expression
	offset   int
}

func (e *ListLiteral) exprNode() {}
func (e *ListLiteral) Pos() int  { return e.offset }

// MapLiteral holds keys and values as two equal-length sequences in
// source order.
type MapLiteral struct {
	Keys   []Expression
	Values []Expression
	offset int
}

func (e *MapLiteral) exprNode() {}
func (e *MapLiteral) Pos() int  { return e.offset }
