package expr

import (
	"fmt"
	"sort"
	"strings"
)

// Expression is a side-effect free value construct. Expressions are built by
// component code and consumed by the statement emitter.
type Expression interface {
	// References returns the identifier names the expression mentions,
	// sorted and without duplicates.
	References() []string
	String() string
	isExpression()
}

// LiteralKind discriminates literal expressions.
type LiteralKind int

const (
	LitNull LiteralKind = iota
	LitString
	LitInt
	LitBool
	LitRaw
)

// Literal is a constant. Raw literals carry target source text verbatim.
type Literal struct {
	Kind LiteralKind
	Str  string
	Int  int64
	Bool bool
}

// Null is the absent-pointer literal.
func Null() Literal { return Literal{Kind: LitNull} }

// String is a string literal.
func String(s string) Literal { return Literal{Kind: LitString, Str: s} }

// Int is an integer literal.
func Int(i int64) Literal { return Literal{Kind: LitInt, Int: i} }

// Bool is a boolean literal.
func Bool(b bool) Literal { return Literal{Kind: LitBool, Bool: b} }

// Raw is a literal copied into the output unchanged.
func Raw(code string) Literal { return Literal{Kind: LitRaw, Str: code} }

func (Literal) References() []string { return nil }
func (Literal) isExpression()        {}

func (l Literal) String() string {
	switch l.Kind {
	case LitString:
		return fmt.Sprintf("%q", l.Str)
	case LitInt:
		return fmt.Sprintf("%d", l.Int)
	case LitBool:
		return fmt.Sprintf("%t", l.Bool)
	case LitRaw:
		return l.Str
	}
	return "null"
}

// Symbol names a global object of the target runtime that is not managed by
// the identifier registry, e.g. the application singleton.
type Symbol struct {
	Name string
}

func (Symbol) References() []string { return nil }
func (Symbol) isExpression()        {}
func (s Symbol) String() string     { return s.Name }

// Ref refers to a declared identifier.
type Ref struct {
	Name string
	Type Type
}

func (r Ref) References() []string { return []string{r.Name} }
func (Ref) isExpression()          {}
func (r Ref) String() string       { return r.Name }

// Construct creates a value of Type from positional arguments, e.g.
// `IPAddress(192, 168, 1, 1)`.
type Construct struct {
	Type Type
	Args []Expression
}

func (c *Construct) References() []string { return collectReferences(c.Args...) }
func (*Construct) isExpression()          {}
func (c *Construct) String() string {
	return c.Type.String() + "(" + join(c.Args) + ")"
}

// FieldValue is one named member of a struct initializer.
type FieldValue struct {
	Name  string
	Value Expression
}

// StructInit initializes a fixed-layout type. Fields keep the order given by
// the caller, which must match the member order of the target type.
type StructInit struct {
	Type   Type
	Fields []FieldValue
}

func (s *StructInit) References() []string {
	exprs := make([]Expression, len(s.Fields))
	for i, f := range s.Fields {
		exprs[i] = f.Value
	}
	return collectReferences(exprs...)
}
func (*StructInit) isExpression() {}
func (s *StructInit) String() string {
	parts := make([]string, len(s.Fields))
	for i, f := range s.Fields {
		parts[i] = "." + f.Name + " = " + f.Value.String()
	}
	return s.Type.String() + "{" + strings.Join(parts, ", ") + "}"
}

// Field returns the value of a named member.
func (s *StructInit) Field(name string) (Expression, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f.Value, true
		}
	}
	return nil, false
}

// Call invokes Method on Receiver with ordered arguments. A nil Receiver
// denotes a free function.
type Call struct {
	Receiver Expression
	Method   string
	Args     []Expression
}

func (c *Call) References() []string {
	if c.Receiver == nil {
		return collectReferences(c.Args...)
	}
	return collectReferences(append([]Expression{c.Receiver}, c.Args...)...)
}
func (*Call) isExpression() {}
func (c *Call) String() string {
	if c.Receiver == nil {
		return c.Method + "(" + join(c.Args) + ")"
	}
	return c.Receiver.String() + "." + c.Method + "(" + join(c.Args) + ")"
}

// collectReferences gathers unique identifier names from all expressions in
// a deterministic order.
func collectReferences(exprs ...Expression) []string {
	seen := make(map[string]struct{})
	for _, e := range exprs {
		if e == nil {
			continue
		}
		for _, name := range e.References() {
			seen[name] = struct{}{}
		}
	}
	if len(seen) == 0 {
		return nil
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func join(exprs []Expression) string {
	parts := make([]string, len(exprs))
	for i, e := range exprs {
		parts[i] = e.String()
	}
	return strings.Join(parts, ", ")
}
