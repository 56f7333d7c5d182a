package main

import (
	"fmt"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/mgomes/zenscript/zen"
)

// astCmd parses one script and prints an indented tree of the result.
var astCmd = &cobra.Command{
	Use:   "ast [flags] script_file",
	Short: "Parse a ZenScript file and print its syntax tree.",
	Run: func(cmd *cobra.Command, args []string) {
		if getFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}

		input, err := os.ReadFile(args[0])
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		unit, err := zen.ParseSource(string(input))
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", args[0], err)
			os.Exit(1)
		}
		fmt.Print(formatUnit(unit))
	},
}

func init() {
	rootCmd.AddCommand(astCmd)
}

// formatUnit renders a compilation unit as an indented tree, one node
// per line with its byte offset.
func formatUnit(unit *zen.CompilationUnit) string {
	p := &astPrinter{}
	for _, imp := range unit.Imports {
		if imp.Alias != "" {
			p.line(imp.Pos(), "Import %s as %s", strings.Join(imp.Path, "."), imp.Alias)
		} else {
			p.line(imp.Pos(), "Import %s", strings.Join(imp.Path, "."))
		}
	}
	for _, fn := range unit.Functions {
		p.function(fn)
	}
	for _, class := range unit.Classes {
		p.class(class)
	}
	for _, stmt := range unit.Statements {
		p.statement(stmt)
	}
	return p.b.String()
}

type astPrinter struct {
	b     strings.Builder
	depth int
}

func (p *astPrinter) line(offset int, format string, args ...any) {
	fmt.Fprintf(&p.b, "%s%s @%d\n", strings.Repeat("  ", p.depth), fmt.Sprintf(format, args...), offset)
}

func (p *astPrinter) nested(fn func()) {
	p.depth++
	fn()
	p.depth--
}

func (p *astPrinter) function(fn *zen.FunctionDecl) {
	p.line(fn.Pos(), "Function %s%s", fn.Name, signature(fn.Params, fn.ReturnType))
	p.nested(func() {
		for _, stmt := range fn.Body {
			p.statement(stmt)
		}
	})
}

func (p *astPrinter) class(class *zen.ClassDecl) {
	p.line(class.Pos(), "Class %s", class.Name)
	p.nested(func() {
		for _, field := range class.Fields {
			kind := "var"
			if field.IsFinal {
				kind = "val"
			}
			if field.IsStatic {
				kind = "static"
			}
			p.line(field.Pos(), "Field %s %s%s", kind, field.Name, typeSuffix(field.Type))
			if field.Init != nil {
				p.nested(func() { p.expression(field.Init) })
			}
		}
		for _, ctor := range class.Constructors {
			p.line(ctor.Pos(), "Constructor%s", signature(ctor.Params, nil))
			p.nested(func() {
				for _, stmt := range ctor.Body {
					p.statement(stmt)
				}
			})
		}
		for _, method := range class.Methods {
			p.function(method)
		}
	})
}

func (p *astPrinter) statement(stmt zen.Statement) {
	switch s := stmt.(type) {
	case *zen.BlockStmt:
		p.line(s.Pos(), "Block")
		p.nested(func() {
			for _, inner := range s.Body {
				p.statement(inner)
			}
		})
	case *zen.ReturnStmt:
		p.line(s.Pos(), "Return")
		if s.Value != nil {
			p.nested(func() { p.expression(s.Value) })
		}
	case *zen.VarDeclStmt:
		kind := "var"
		if s.IsFinal {
			kind = "val"
		}
		p.line(s.Pos(), "Declare %s %s%s", kind, s.Name, typeSuffix(s.Type))
		if s.Init != nil {
			p.nested(func() { p.expression(s.Init) })
		}
	case *zen.IfStmt:
		p.line(s.Pos(), "If")
		p.nested(func() {
			p.expression(s.Cond)
			p.statement(s.Then)
			if s.Else != nil {
				p.statement(s.Else)
			}
		})
	case *zen.ForStmt:
		p.line(s.Pos(), "For %s", strings.Join(s.Names, ", "))
		p.nested(func() {
			p.expression(s.Iterable)
			p.statement(s.Body)
		})
	case *zen.WhileStmt:
		p.line(s.Pos(), "While")
		p.nested(func() {
			p.expression(s.Cond)
			p.statement(s.Body)
		})
	case *zen.BreakStmt:
		p.line(s.Pos(), "Break")
	case *zen.ContinueStmt:
		p.line(s.Pos(), "Continue")
	case *zen.ExprStmt:
		p.line(s.Pos(), "Expr")
		p.nested(func() { p.expression(s.Expr) })
	case *zen.GlobalDecl:
		kind := "global"
		if s.IsStatic {
			kind = "static"
		}
		p.line(s.Pos(), "Global %s %s%s", kind, s.Name, typeSuffix(s.Type))
		p.nested(func() { p.expression(s.Value) })
	default:
		p.line(stmt.Pos(), "%T", stmt)
	}
}

func (p *astPrinter) expression(expr zen.Expression) {
	switch e := expr.(type) {
	case *zen.IntLiteral:
		if e.IsLong {
			p.line(e.Pos(), "Int %d (long)", e.Value)
		} else {
			p.line(e.Pos(), "Int %d", e.Value)
		}
	case *zen.FloatLiteral:
		if e.IsDouble {
			p.line(e.Pos(), "Float %g (double)", e.Value)
		} else {
			p.line(e.Pos(), "Float %g", e.Value)
		}
	case *zen.StringLiteral:
		p.line(e.Pos(), "String %q", e.Value)
	case *zen.BoolLiteral:
		p.line(e.Pos(), "Bool %t", e.Value)
	case *zen.NullLiteral:
		p.line(e.Pos(), "Null")
	case *zen.VariableExpr:
		p.line(e.Pos(), "Var %s", e.Name)
	case *zen.AssignExpr:
		p.line(e.Pos(), "Assign")
		p.nested(func() {
			p.expression(e.Target)
			p.expression(e.Value)
		})
	case *zen.OpAssignExpr:
		p.line(e.Pos(), "OpAssign %s", e.Op)
		p.nested(func() {
			p.expression(e.Target)
			p.expression(e.Value)
		})
	case *zen.ConditionalExpr:
		p.line(e.Pos(), "Conditional")
		p.nested(func() {
			p.expression(e.Cond)
			p.expression(e.Then)
			p.expression(e.Else)
		})
	case *zen.BinaryExpr:
		p.line(e.Pos(), "Binary %s", e.Op)
		p.nested(func() {
			p.expression(e.Left)
			p.expression(e.Right)
		})
	case *zen.CompareExpr:
		p.line(e.Pos(), "Compare %s", e.Op)
		p.nested(func() {
			p.expression(e.Left)
			p.expression(e.Right)
		})
	case *zen.UnaryExpr:
		p.line(e.Pos(), "Unary %s", e.Op)
		p.nested(func() { p.expression(e.Operand) })
	case *zen.MemberExpr:
		p.line(e.Pos(), "Member %s", e.Name)
		p.nested(func() { p.expression(e.Base) })
	case *zen.IndexExpr:
		p.line(e.Pos(), "Index")
		p.nested(func() {
			p.expression(e.Base)
			p.expression(e.Index)
		})
	case *zen.IndexSetExpr:
		p.line(e.Pos(), "IndexSet")
		p.nested(func() {
			p.expression(e.Base)
			p.expression(e.Index)
			p.expression(e.Value)
		})
	case *zen.CallExpr:
		p.line(e.Pos(), "Call")
		p.nested(func() {
			p.expression(e.Callee)
			for _, arg := range e.Args {
				p.expression(arg)
			}
		})
	case *zen.CastExpr:
		p.line(e.Pos(), "Cast as %s", e.Type)
		p.nested(func() { p.expression(e.Base) })
	case *zen.InstanceOfExpr:
		p.line(e.Pos(), "InstanceOf %s", e.Type)
		p.nested(func() { p.expression(e.Base) })
	case *zen.FunctionLiteral:
		p.line(e.Pos(), "FunctionLiteral%s", signature(e.Params, e.ReturnType))
		p.nested(func() {
			for _, stmt := range e.Body {
				p.statement(stmt)
			}
		})
	case *zen.BracketExpr:
		texts := make([]string, len(e.Tokens))
		for i, tok := range e.Tokens {
			texts[i] = tok.Text
		}
		p.line(e.Pos(), "Bracket <%s>", strings.Join(texts, ""))
	case *zen.ListLiteral:
		p.line(e.Pos(), "List (%d)", len(e.Elements))
		p.nested(func() {
			for _, elem := range e.Elements {
				p.expression(elem)
			}
		})
	case *zen.MapLiteral:
		p.line(e.Pos(), "Map (%d)", len(e.Keys))
		p.nested(func() {
			for i := range e.Keys {
				p.expression(e.Keys[i])
				p.expression(e.Values[i])
			}
		})
	default:
		p.line(expr.Pos(), "%T", expr)
	}
}

func signature(params []zen.Param, ret zen.ZenType) string {
	parts := make([]string, len(params))
	for i, param := range params {
		parts[i] = param.Name + typeSuffix(param.Type)
	}
	return "(" + strings.Join(parts, ", ") + ")" + typeSuffix(ret)
}

func typeSuffix(typ zen.ZenType) string {
	if typ == nil {
		return ""
	}
	return " as " + typ.String()
}
