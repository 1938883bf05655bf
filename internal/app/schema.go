package app

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/invopop/jsonschema"
	"github.com/specialistvlad/espgen/internal/document"
	"github.com/specialistvlad/espgen/internal/schema"
)

// WriteSchema writes the JSON schema of one component, or of the whole
// document when name is empty.
func (a *App) WriteSchema(name string) error {
	var js *jsonschema.Schema
	if name != "" {
		comp, ok := a.catalog.Lookup(name)
		if !ok {
			return fmt.Errorf("unknown component %q, known components are: %s", name, strings.Join(a.catalog.Names(), ", "))
		}
		js = schema.JSONSchema(comp.Schema())
		js.Title = name
	} else {
		js = &jsonschema.Schema{
			Title:                "espgen configuration",
			Type:                 "object",
			Properties:           jsonschema.NewProperties(),
			AdditionalProperties: jsonschema.FalseSchema,
		}
		for _, n := range a.catalog.Names() {
			comp, _ := a.catalog.Lookup(n)
			js.Properties.Set(n, schema.JSONSchema(comp.Schema()))
		}
	}
	js.Version = jsonschema.Version

	data, err := json.MarshalIndent(js, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding schema failed: %w", err)
	}
	_, err = fmt.Fprintf(a.outW, "%s\n", data)
	return err
}

// WriteLibDeps writes the libraries the configured documents need on the
// target platform, one per line. Components are not validated.
func (a *App) WriteLibDeps(ctx context.Context) ([]string, error) {
	ctx = a.context(ctx)
	doc, err := document.Load(ctx, a.config.Paths...)
	if err != nil {
		return nil, a.report(doc, err)
	}
	deps := a.catalog.LibDeps(a.platform, doc.Root.Keys()...)
	for _, dep := range deps {
		if _, err := fmt.Fprintln(a.outW, dep); err != nil {
			return nil, err
		}
	}
	return deps, nil
}
