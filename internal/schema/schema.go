package schema

import (
	"fmt"
	"strings"

	"github.com/specialistvlad/espgen/internal/diag"
	"github.com/specialistvlad/espgen/internal/fieldpath"
	"github.com/specialistvlad/espgen/internal/model"
)

// Presence tells how a mapping treats an absent key.
type Presence int

const (
	// PresenceOptional fields may be omitted.
	PresenceOptional Presence = iota
	// PresenceRequired fields must be present.
	PresenceRequired
	// PresenceInclusive fields belong to a named group. Members are validated
	// when present; the group does not force its members to appear together.
	PresenceInclusive
)

// Field declares one key of a mapping schema.
type Field struct {
	Name        string
	Presence    Presence
	Group       string
	Validator   Validator
	Default     *model.Value
	Description string
}

// Required declares a key that must be present.
func Required(name string, v Validator) Field {
	return Field{Name: name, Presence: PresenceRequired, Validator: v}
}

// Optional declares a key that may be omitted.
func Optional(name string, v Validator) Field {
	return Field{Name: name, Presence: PresenceOptional, Validator: v}
}

// OptionalDefault declares a key that is filled with def when omitted. The
// default runs through the validator like any user supplied value.
func OptionalDefault(name string, v Validator, def model.Value) Field {
	return Field{Name: name, Presence: PresenceOptional, Validator: v, Default: &def}
}

// Inclusive declares a key that belongs to group.
func Inclusive(name, group string, v Validator) Field {
	return Field{Name: name, Presence: PresenceInclusive, Group: group, Validator: v}
}

// Describe returns a copy of the field with a description for generated
// documentation.
func (f Field) Describe(desc string) Field {
	f.Description = desc
	return f
}

// Schema validates a mapping against an ordered set of fields. Schemas are
// values; Extend returns a new schema and never modifies its receiver.
type Schema struct {
	fields []Field
}

// New builds a schema. Declaring the same key twice is a programming error
// and panics.
func New(fields ...Field) Schema {
	seen := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		if _, dup := seen[f.Name]; dup {
			panic(fmt.Sprintf("schema: field %q declared twice", f.Name))
		}
		if f.Validator == nil {
			panic(fmt.Sprintf("schema: field %q has no validator", f.Name))
		}
		seen[f.Name] = struct{}{}
	}
	cp := make([]Field, len(fields))
	copy(cp, fields)
	return Schema{fields: cp}
}

// Extend merges fields into a copy of the schema. A field whose name already
// exists replaces the base field in place; new fields are appended.
func (s Schema) Extend(fields ...Field) Schema {
	merged := make([]Field, len(s.fields), len(s.fields)+len(fields))
	copy(merged, s.fields)
	for _, f := range fields {
		replaced := false
		for i := range merged {
			if merged[i].Name == f.Name {
				merged[i] = f
				replaced = true
				break
			}
		}
		if !replaced {
			merged = append(merged, f)
		}
	}
	return New(merged...)
}

// Fields returns the fields in declaration order.
func (s Schema) Fields() []Field {
	cp := make([]Field, len(s.fields))
	copy(cp, s.fields)
	return cp
}

// Field looks up a field by name.
func (s Schema) Field(name string) (Field, bool) {
	for _, f := range s.fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// Validate checks a mapping. All field errors are collected before
// returning; the result keeps the input key order and appends defaults in
// schema order.
func (s Schema) Validate(v model.Value, path fieldpath.Path) (model.Value, error) {
	if v.Kind() != model.KindMap {
		return model.Value{}, diag.NewShape(path, v.Pos(), nil, "expected a mapping, got %s", v.Kind())
	}

	var errs diag.List
	out := model.Map().WithPos(v.Pos())

	for _, entry := range v.Entries() {
		fieldPath := path.Field(entry.Key)
		field, ok := s.Field(entry.Key)
		if !ok {
			errs = errs.Append(diag.NewField(fieldPath, posOr(entry.Value.Pos(), v.Pos()),
				"extra keys not allowed, valid keys are: %s", strings.Join(s.names(), ", ")))
			continue
		}
		validated, err := field.Validator.Validate(entry.Value, fieldPath)
		if err != nil {
			errs = errs.Append(asFieldError(err, fieldPath, posOr(entry.Value.Pos(), v.Pos())))
			continue
		}
		out = out.Set(entry.Key, validated)
	}

	for _, field := range s.fields {
		if v.Has(field.Name) {
			continue
		}
		switch {
		case field.Default != nil:
			fieldPath := path.Field(field.Name)
			validated, err := field.Validator.Validate(*field.Default, fieldPath)
			if err != nil {
				// A default that fails its own validator is a schema bug.
				panic(fmt.Sprintf("schema: default for %s is invalid: %v", fieldPath, err))
			}
			out = out.Set(field.Name, validated)
		case field.Presence == PresenceRequired:
			errs = errs.Append(diag.NewField(path.Field(field.Name), v.Pos(), "required key not provided"))
		}
	}

	if err := errs.ErrOrNil(); err != nil {
		return model.Value{}, err
	}
	return out, nil
}

func (s Schema) names() []string {
	names := make([]string, len(s.fields))
	for i, f := range s.fields {
		names[i] = f.Name
	}
	return names
}

func posOr(p, fallback model.Pos) model.Pos {
	if p.IsValid() {
		return p
	}
	return fallback
}
