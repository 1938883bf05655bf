// Package cppgen renders an emitted program as C++ source for the
// esphomelib runtime.
//
// Declared identifiers become pointer variables, so invocations on them use
// `->` while calls on global symbols such as `App` use `.`. Struct
// initializers are written with designated members, one per line.
package cppgen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/specialistvlad/espgen/internal/emit"
	"github.com/specialistvlad/espgen/internal/expr"
)

const indentUnit = "  "

// Render returns the source text of all statements, each terminated by a
// newline. Statements of different components are separated by a comment
// naming the component.
func Render(prog *emit.Program) string {
	var sb strings.Builder
	component := ""
	for i, s := range prog.Statements() {
		if s.Component != component {
			if i > 0 {
				sb.WriteString("\n")
			}
			fmt.Fprintf(&sb, "// %s:\n", s.Component)
			component = s.Component
		}
		sb.WriteString(Statement(s))
		sb.WriteString("\n")
	}
	return sb.String()
}

// Statement renders a single statement including the trailing semicolon.
func Statement(s emit.Statement) string {
	if s.Kind == emit.KindDeclare {
		return fmt.Sprintf("%s *%s = %s;", s.Identifier.Type, s.Identifier.Name, Expression(s.Expression))
	}
	return Expression(s.Expression) + ";"
}

// Expression renders an expression.
func Expression(e expr.Expression) string {
	var sb strings.Builder
	write(&sb, e, 0)
	return sb.String()
}

func write(sb *strings.Builder, e expr.Expression, depth int) {
	switch e := e.(type) {
	case expr.Literal:
		sb.WriteString(literal(e))
	case expr.Symbol:
		sb.WriteString(e.Name)
	case expr.Ref:
		sb.WriteString(e.Name)
	case *expr.Construct:
		sb.WriteString(e.Type.String())
		writeArgs(sb, e.Args, depth)
	case *expr.Call:
		if e.Receiver != nil {
			write(sb, e.Receiver, depth)
			if _, ok := e.Receiver.(expr.Ref); ok {
				sb.WriteString("->")
			} else {
				sb.WriteString(".")
			}
		}
		sb.WriteString(e.Method)
		writeArgs(sb, e.Args, depth)
	case *expr.StructInit:
		sb.WriteString(e.Type.String())
		sb.WriteString("{\n")
		for _, f := range e.Fields {
			sb.WriteString(strings.Repeat(indentUnit, depth+1))
			sb.WriteString(".")
			sb.WriteString(f.Name)
			sb.WriteString(" = ")
			write(sb, f.Value, depth+1)
			sb.WriteString(",\n")
		}
		sb.WriteString(strings.Repeat(indentUnit, depth))
		sb.WriteString("}")
	default:
		panic(fmt.Sprintf("cppgen: unsupported expression %T", e))
	}
}

func writeArgs(sb *strings.Builder, args []expr.Expression, depth int) {
	sb.WriteString("(")
	for i, arg := range args {
		if i > 0 {
			sb.WriteString(", ")
		}
		write(sb, arg, depth)
	}
	sb.WriteString(")")
}

func literal(l expr.Literal) string {
	switch l.Kind {
	case expr.LitString:
		return quote(l.Str)
	case expr.LitInt:
		return strconv.FormatInt(l.Int, 10)
	case expr.LitBool:
		return strconv.FormatBool(l.Bool)
	case expr.LitRaw:
		return l.Str
	}
	return "nullptr"
}

// quote writes a C++ string literal. Bytes outside printable ASCII use octal
// escapes, which unlike \x never swallow the following character.
func quote(s string) string {
	var sb strings.Builder
	sb.WriteByte('"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case '"':
			sb.WriteString(`\"`)
		case '\\':
			sb.WriteString(`\\`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		default:
			if c < 0x20 || c >= 0x7f {
				fmt.Fprintf(&sb, `\%03o`, c)
			} else {
				sb.WriteByte(c)
			}
		}
	}
	sb.WriteByte('"')
	return sb.String()
}
