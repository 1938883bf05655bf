package emit

import (
	"fmt"

	"github.com/specialistvlad/espgen/internal/expr"
	"github.com/specialistvlad/espgen/internal/registry"
)

// Kind discriminates statements.
type Kind int

const (
	// KindDeclare constructs a value and binds it to a new identifier.
	KindDeclare Kind = iota
	// KindInvoke calls a method on an identifier for its side effect.
	KindInvoke
)

// String names the kind.
func (k Kind) String() string {
	switch k {
	case KindDeclare:
		return "declare"
	case KindInvoke:
		return "invoke"
	}
	return "unknown"
}

// Statement is one unit of the generated program. For KindDeclare,
// Expression is the constructor; for KindInvoke it is the *expr.Call whose
// receiver is Identifier.
type Statement struct {
	Kind       Kind
	Identifier registry.Identifier
	Expression expr.Expression
	Component  string
}

// Call returns the invocation of a KindInvoke statement.
func (s Statement) Call() (*expr.Call, bool) {
	c, ok := s.Expression.(*expr.Call)
	return c, ok && s.Kind == KindInvoke
}

// References lists identifiers the statement depends on, excluding the one
// it declares.
func (s Statement) References() []string {
	refs := s.Expression.References()
	if s.Kind != KindDeclare {
		return refs
	}
	out := refs[:0:0]
	for _, r := range refs {
		if r != s.Identifier.Name {
			out = append(out, r)
		}
	}
	return out
}

// String renders the statement in a language neutral debug form.
func (s Statement) String() string {
	if s.Kind == KindDeclare {
		return fmt.Sprintf("%s %s = %s", s.Identifier.Type, s.Identifier.Name, s.Expression)
	}
	return s.Expression.String()
}
