package zen

import "strings"

// ZenType is a type annotation parsed from source. Each occurrence is a
// fresh tree owned by the declaring AST node.
type ZenType interface {
	zenType()
	String() string
}

// RawType is a named, non-generic type reference: a primitive or a
// dotted qualified name.
type RawType struct {
	Name string
}

func (*RawType) zenType()         {}
func (t *RawType) String() string { return t.Name }

// FunctionType is `function(T1, T2, ...) R`.
type FunctionType struct {
	Args   []ZenType
	Return ZenType
}

func (*FunctionType) zenType() {}

func (t *FunctionType) String() string {
	var b strings.Builder
	b.WriteString("function(")
	for i, arg := range t.Args {
		if i > 0 {
			b.WriteString(",")
		}
		b.WriteString(arg.String())
	}
	b.WriteString(")")
	b.WriteString(t.Return.String())
	return b.String()
}

// ListType is `[T]`.
type ListType struct {
	Elem ZenType
}

func (*ListType) zenType()         {}
func (t *ListType) String() string { return "[" + t.Elem.String() + "]" }

// ArrayType is the postfix `T[]`.
type ArrayType struct {
	Elem ZenType
}

func (*ArrayType) zenType()         {}
func (t *ArrayType) String() string { return t.Elem.String() + "[]" }

// AssociativeType is the postfix `V[K]`: the base type is the value and
// the bracket contents are the key, matching the map-literal-suffix
// convention rather than Map<K,V> declaration order.
type AssociativeType struct {
	Key   ZenType
	Value ZenType
}

func (*AssociativeType) zenType() {}

func (t *AssociativeType) String() string {
	return t.Value.String() + "[" + t.Key.String() + "]"
}
