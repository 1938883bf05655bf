package schema

import (
	"github.com/invopop/jsonschema"
)

type docFunc func() *jsonschema.Schema

type documented interface {
	jsonSchema() *jsonschema.Schema
}

// JSONSchema describes what v accepts as a JSON schema document. Validators
// without documentation are rendered as the schema that accepts anything.
func JSONSchema(v Validator) *jsonschema.Schema {
	if d, ok := v.(documented); ok {
		if js := d.jsonSchema(); js != nil {
			return js
		}
	}
	return &jsonschema.Schema{}
}

func (s Schema) jsonSchema() *jsonschema.Schema {
	js := &jsonschema.Schema{
		Type:                 "object",
		Properties:           jsonschema.NewProperties(),
		AdditionalProperties: jsonschema.FalseSchema,
	}
	for _, f := range s.fields {
		prop := JSONSchema(f.Validator)
		if f.Description != "" {
			prop.Description = f.Description
		}
		if f.Default != nil {
			prop.Default = f.Default.Interface()
		}
		js.Properties.Set(f.Name, prop)
		if f.Presence == PresenceRequired {
			js.Required = append(js.Required, f.Name)
		}
	}
	return js
}

func (a *all) jsonSchema() *jsonschema.Schema {
	js := JSONSchema(a.first)
	for _, c := range a.checks {
		if d, ok := c.(interface{ decorate(*jsonschema.Schema) }); ok {
			d.decorate(js)
		}
	}
	return js
}

func (a *atLeastOneOf) decorate(js *jsonschema.Schema) {
	for _, name := range a.names {
		js.AnyOf = append(js.AnyOf, &jsonschema.Schema{Required: []string{name}})
	}
}

func (o *oneOf) jsonSchema() *jsonschema.Schema {
	js := &jsonschema.Schema{}
	for _, alt := range o.alternatives {
		js.AnyOf = append(js.AnyOf, JSONSchema(alt))
	}
	return js
}

// A chain is documented by its last documented step, which is the one that
// determines the final shape.
func (c *chain) jsonSchema() *jsonschema.Schema {
	for i := len(c.steps) - 1; i >= 0; i-- {
		if d, ok := c.steps[i].(documented); ok {
			if js := d.jsonSchema(); js != nil {
				return js
			}
		}
	}
	return nil
}

func (l *listOf) jsonSchema() *jsonschema.Schema {
	return &jsonschema.Schema{Type: "array", Items: JSONSchema(l.item)}
}

func (r *removed) jsonSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Deprecated:  true,
		Description: r.message + " since " + r.since.String(),
	}
}

func (p *primitive) jsonSchema() *jsonschema.Schema {
	if p.doc == nil {
		return nil
	}
	return p.doc()
}
