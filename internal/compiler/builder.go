package compiler

import (
	"log/slog"

	"github.com/specialistvlad/espgen/internal/component"
	"github.com/specialistvlad/espgen/internal/emit"
	"github.com/specialistvlad/espgen/internal/expr"
	"github.com/specialistvlad/espgen/internal/registry"
)

// Builder scopes declarations and statements to the component being
// compiled. It implements component.Builder.
type Builder struct {
	platform component.Platform
	txn      *registry.Txn
	emitter  *emit.Emitter
	logger   *slog.Logger
}

var _ component.Builder = (*Builder)(nil)

// Platform returns the target of the run.
func (b *Builder) Platform() component.Platform {
	return b.platform
}

// Declare stages an identifier.
func (b *Builder) Declare(name string, t expr.Type, site string) (registry.Identifier, error) {
	id, err := b.txn.Declare(name, t, site)
	if err != nil {
		return registry.Identifier{}, err
	}
	b.logger.Debug("Declaring identifier.", "name", name, "type", t.String(), "site", site)
	return id, nil
}

// Resolve finds identifiers staged by this component or committed by an
// earlier one.
func (b *Builder) Resolve(name string) (registry.Identifier, error) {
	return b.txn.Resolve(name)
}

// GenerateName returns a name not used so far in the run.
func (b *Builder) GenerateName(base string) string {
	return b.txn.GenerateName(base)
}

// DeclareAndBind buffers a construction statement.
func (b *Builder) DeclareAndBind(id registry.Identifier, ctor expr.Expression) emit.Statement {
	return b.emitter.DeclareAndBind(id, ctor)
}

// Invoke buffers a method invocation.
func (b *Builder) Invoke(id registry.Identifier, method string, args ...expr.Expression) emit.Statement {
	return b.emitter.Invoke(id, method, args...)
}

func (b *Builder) commit() error {
	if err := b.txn.Commit(); err != nil {
		b.emitter.Discard()
		return err
	}
	b.emitter.Flush()
	return nil
}

func (b *Builder) discard() {
	b.txn.Discard()
	b.emitter.Discard()
}
