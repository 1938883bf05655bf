package testutil

import (
	"context"

	"github.com/specialistvlad/espgen/internal/component"
	"github.com/specialistvlad/espgen/internal/expr"
	"github.com/specialistvlad/espgen/internal/model"
	"github.com/specialistvlad/espgen/internal/schema"
)

// FakeComponent is a configurable component for tests. Zero fields fall
// back to an empty schema, no code, and no library.
type FakeComponent struct {
	ComponentName string
	Validator     schema.Validator
	Generate      func(ctx context.Context, cfg model.Value, b component.Builder) error
	Deps          map[component.Platform]string

	// Calls counts ToCode invocations.
	Calls int
}

var _ component.Component = (*FakeComponent)(nil)

func (f *FakeComponent) Name() string { return f.ComponentName }

func (f *FakeComponent) Schema() schema.Validator {
	if f.Validator == nil {
		return schema.New()
	}
	return f.Validator
}

func (f *FakeComponent) ToCode(ctx context.Context, cfg model.Value, b component.Builder) error {
	f.Calls++
	if f.Generate == nil {
		return nil
	}
	return f.Generate(ctx, cfg, b)
}

func (f *FakeComponent) LibDeps(p component.Platform) string {
	return f.Deps[p]
}

// NewReferencingComponent returns a component that declares `id` with type
// t and, when `ref` is set, passes the referenced identifier to
// `App.init_<name>(ref)`. It exercises cross-component lookups.
func NewReferencingComponent(name string, t expr.Type) *FakeComponent {
	return &FakeComponent{
		ComponentName: name,
		Validator: schema.New(
			schema.Required("id", schema.Identifier),
			schema.Optional("ref", schema.Identifier),
		),
		Generate: func(_ context.Context, cfg model.Value, b component.Builder) error {
			id, err := b.Declare(cfg.GetString("id", ""), t, name+".id")
			if err != nil {
				return err
			}
			var args []expr.Expression
			if ref := cfg.GetString("ref", ""); ref != "" {
				target, err := b.Resolve(ref)
				if err != nil {
					return err
				}
				args = append(args, target.Ref())
			}
			b.DeclareAndBind(id, expr.BuildCall(expr.Symbol{Name: "App"}, "init_"+name, args...))
			return nil
		},
	}
}
