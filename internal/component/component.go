package component

import (
	"context"

	"github.com/specialistvlad/espgen/internal/emit"
	"github.com/specialistvlad/espgen/internal/expr"
	"github.com/specialistvlad/espgen/internal/model"
	"github.com/specialistvlad/espgen/internal/registry"
	"github.com/specialistvlad/espgen/internal/schema"
)

// Component is one self-contained configuration entity.
type Component interface {
	// Name is the top-level document key handled by the component.
	Name() string
	// Schema validates the raw configuration, including cross-field checks.
	Schema() schema.Validator
	// ToCode emits the statements for an already validated configuration.
	ToCode(ctx context.Context, cfg model.Value, b Builder) error
	// LibDeps returns the external library the component needs on the
	// platform, or an empty string.
	LibDeps(p Platform) string
}

// Builder is the component's view of the current run.
type Builder interface {
	// Platform is the target of the run.
	Platform() Platform
	// Declare stages a new identifier. Declarations become visible to other
	// components only after this component finished successfully.
	Declare(name string, t expr.Type, site string) (registry.Identifier, error)
	// Resolve looks up an identifier declared by this or an earlier component.
	Resolve(name string) (registry.Identifier, error)
	// GenerateName returns a free identifier name derived from base.
	GenerateName(base string) string
	// DeclareAndBind records the construction of id.
	DeclareAndBind(id registry.Identifier, ctor expr.Expression) emit.Statement
	// Invoke records a method call on id.
	Invoke(id registry.Identifier, method string, args ...expr.Expression) emit.Statement
}
