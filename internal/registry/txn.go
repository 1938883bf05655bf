package registry

import (
	"fmt"

	"github.com/specialistvlad/espgen/internal/diag"
	"github.com/specialistvlad/espgen/internal/expr"
)

// Txn stages declarations on top of a Registry. Staged names are visible to
// the transaction itself but reach the registry only on Commit.
type Txn struct {
	parent *Registry
	staged map[string]Identifier
	order  []string
	done   bool
}

// Begin starts a transaction. Only one transaction should be open at a time.
func (r *Registry) Begin() *Txn {
	return &Txn{parent: r, staged: make(map[string]Identifier)}
}

// Declare stages a declaration with the same rules as Registry.Declare.
func (t *Txn) Declare(name string, typ expr.Type, site string) (Identifier, error) {
	t.mustBeOpen()
	id := Identifier{Name: name, Type: typ, Site: site}
	if existing, ok := t.lookup(name); ok {
		if existing == id {
			return existing, nil
		}
		return Identifier{}, duplicate(id, existing)
	}
	t.staged[name] = id
	t.order = append(t.order, name)
	return id, nil
}

// Resolve looks a name up in the staged set first, then in the registry.
func (t *Txn) Resolve(name string) (Identifier, error) {
	if id, ok := t.lookup(name); ok {
		return id, nil
	}
	return Identifier{}, &diag.IdentifierConflictError{Name: name, Kind: diag.ErrUndeclaredIdentifier}
}

// GenerateName picks a name free in both the staged set and the registry.
func (t *Txn) GenerateName(base string) string {
	return generateName(base, func(name string) bool {
		_, taken := t.lookup(name)
		return taken
	})
}

// Commit publishes the staged declarations to the registry.
func (t *Txn) Commit() error {
	t.mustBeOpen()
	t.done = true
	for _, name := range t.order {
		id := t.staged[name]
		if _, err := t.parent.Declare(id.Name, id.Type, id.Site); err != nil {
			return err
		}
	}
	return nil
}

// Discard drops the staged declarations. Discarding a committed
// transaction is a no-op.
func (t *Txn) Discard() {
	t.done = true
	t.staged = nil
	t.order = nil
}

// Staged returns the declarations made in this transaction in order.
func (t *Txn) Staged() []Identifier {
	out := make([]Identifier, 0, len(t.order))
	for _, name := range t.order {
		out = append(out, t.staged[name])
	}
	return out
}

func (t *Txn) lookup(name string) (Identifier, bool) {
	if id, ok := t.staged[name]; ok {
		return id, true
	}
	return t.parent.Lookup(name)
}

func (t *Txn) mustBeOpen() {
	if t.done {
		panic(fmt.Sprintf("registry: transaction used after commit or discard (%d staged)", len(t.order)))
	}
}
