package compiler

import (
	"context"
	"fmt"
	"strings"

	"github.com/specialistvlad/espgen/internal/component"
	"github.com/specialistvlad/espgen/internal/ctxlog"
	"github.com/specialistvlad/espgen/internal/diag"
	"github.com/specialistvlad/espgen/internal/emit"
	"github.com/specialistvlad/espgen/internal/fieldpath"
	"github.com/specialistvlad/espgen/internal/model"
	"github.com/specialistvlad/espgen/internal/registry"
)

// Compiler compiles documents for one platform. A Compiler owns its
// registry and is not safe for concurrent use; concurrent runs need
// separate compilers.
type Compiler struct {
	catalog  *component.Catalog
	platform component.Platform
	registry *registry.Registry
}

// New creates a compiler over the components of catalog.
func New(catalog *component.Catalog, platform component.Platform) *Compiler {
	return &Compiler{
		catalog:  catalog,
		platform: platform,
		registry: registry.New(),
	}
}

// Result is the outcome of a run. It is populated with everything that
// compiled even when Run also returns an error.
type Result struct {
	Program *emit.Program
	// Identifiers are the committed identifiers in declaration order.
	Identifiers []registry.Identifier
	// Validated holds the validated configuration of every component that
	// compiled, keyed by component name in processing order.
	Validated model.Value
	// Compiled lists the components that compiled, in processing order.
	Compiled []string
	// LibDeps are the library requirements of the compiled components.
	LibDeps []string
}

// Run compiles doc, a mapping from component name to configuration. The
// registry is reset first so runs never see each other's identifiers. The
// returned error, if any, is a diag.List with one or more entries.
func (c *Compiler) Run(ctx context.Context, doc model.Value) (*Result, error) {
	logger := ctxlog.FromContext(ctx)
	c.registry.Reset()

	res := &Result{Program: emit.NewProgram(), Validated: model.Map()}
	if doc.IsNull() {
		doc = model.Map()
	}
	if doc.Kind() != model.KindMap {
		return res, diag.List{diag.NewShape(fieldpath.Root(), doc.Pos(), nil, "expected a mapping of components, got %s", doc.Kind())}
	}

	var errs diag.List
	for _, entry := range doc.Entries() {
		if err := ctx.Err(); err != nil {
			return res, errs.Append(fmt.Errorf("compilation interrupted before %q: %w", entry.Key, err))
		}
		logger.Debug("Compiling component.", "component", entry.Key)
		validated, err := c.compileOne(ctx, res.Program, entry)
		if err != nil {
			logger.Warn("Component skipped.", "component", entry.Key, "error", err)
			errs = errs.Append(diag.WithComponent(err, entry.Key))
			continue
		}
		res.Validated = res.Validated.Set(entry.Key, validated)
		res.Compiled = append(res.Compiled, entry.Key)
	}

	res.Identifiers = c.registry.Identifiers()
	res.LibDeps = c.catalog.LibDeps(c.platform, res.Compiled...)
	logger.Info("Compilation finished.",
		"components", len(res.Compiled),
		"statements", res.Program.Len(),
		"errors", len(errs),
	)
	return res, errs.ErrOrNil()
}

func (c *Compiler) compileOne(ctx context.Context, prog *emit.Program, entry model.Entry) (model.Value, error) {
	comp, ok := c.catalog.Lookup(entry.Key)
	if !ok {
		return model.Value{}, diag.NewField(fieldpath.Root(), entry.Value.Pos(),
			"component not found, known components are: %s", strings.Join(c.catalog.Names(), ", "))
	}

	raw := entry.Value
	// `wifi:` with no body configures a component with its defaults.
	if raw.IsNull() {
		raw = model.Map().WithPos(raw.Pos())
	}
	validated, err := comp.Schema().Validate(raw, fieldpath.Root())
	if err != nil {
		return model.Value{}, err
	}

	ctx = ctxlog.With(ctx, "component", entry.Key)
	b := &Builder{
		platform: c.platform,
		txn:      c.registry.Begin(),
		emitter:  prog.Emitter(entry.Key),
		logger:   ctxlog.FromContext(ctx),
	}
	if err := comp.ToCode(ctx, validated, b); err != nil {
		b.discard()
		return model.Value{}, err
	}
	if err := b.commit(); err != nil {
		return model.Value{}, err
	}
	return validated, nil
}

// Registry exposes the identifiers of the last run.
func (c *Compiler) Registry() *registry.Registry {
	return c.registry
}
