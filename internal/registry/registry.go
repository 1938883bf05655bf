package registry

import (
	"fmt"

	"github.com/specialistvlad/espgen/internal/diag"
	"github.com/specialistvlad/espgen/internal/expr"
)

// Identifier is a declared name bound to the type of the entity it denotes.
// Site records who declared it, typically `component.field`.
type Identifier struct {
	Name string
	Type expr.Type
	Site string
}

// Ref returns an expression referring to the identifier.
func (id Identifier) Ref() expr.Ref {
	return expr.Ref{Name: id.Name, Type: id.Type}
}

// Registry holds the identifiers committed during one run.
type Registry struct {
	ids   map[string]Identifier
	order []string
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{ids: make(map[string]Identifier)}
}

// Reset drops every identifier. Called at the start of a run.
func (r *Registry) Reset() {
	r.ids = make(map[string]Identifier)
	r.order = nil
}

// Declare binds name to t. Redeclaring a name with the same type from the
// same site is a no-op; any other redeclaration is a conflict.
func (r *Registry) Declare(name string, t expr.Type, site string) (Identifier, error) {
	id := Identifier{Name: name, Type: t, Site: site}
	if existing, ok := r.ids[name]; ok {
		if existing == id {
			return existing, nil
		}
		return Identifier{}, duplicate(id, existing)
	}
	r.ids[name] = id
	r.order = append(r.order, name)
	return id, nil
}

// Resolve returns the identifier bound to name.
func (r *Registry) Resolve(name string) (Identifier, error) {
	if id, ok := r.ids[name]; ok {
		return id, nil
	}
	return Identifier{}, &diag.IdentifierConflictError{Name: name, Kind: diag.ErrUndeclaredIdentifier}
}

// Lookup is Resolve without an error.
func (r *Registry) Lookup(name string) (Identifier, bool) {
	id, ok := r.ids[name]
	return id, ok
}

// Identifiers returns all identifiers in declaration order.
func (r *Registry) Identifiers() []Identifier {
	out := make([]Identifier, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.ids[name])
	}
	return out
}

// Len returns the number of declared identifiers.
func (r *Registry) Len() int {
	return len(r.ids)
}

// GenerateName returns base if it is free, otherwise the first free name of
// base_2, base_3 and so on.
func (r *Registry) GenerateName(base string) string {
	return generateName(base, func(name string) bool {
		_, taken := r.ids[name]
		return taken
	})
}

func generateName(base string, taken func(string) bool) string {
	if !taken(base) {
		return base
	}
	for i := 2; ; i++ {
		name := fmt.Sprintf("%s_%d", base, i)
		if !taken(name) {
			return name
		}
	}
}

func duplicate(id, existing Identifier) error {
	return &diag.IdentifierConflictError{
		Name:   id.Name,
		Kind:   diag.ErrDuplicateIdentifier,
		Detail: fmt.Sprintf("already declared as %s by %s", existing.Type, existing.Site),
	}
}
