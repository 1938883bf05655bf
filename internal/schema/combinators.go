package schema

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/specialistvlad/espgen/internal/diag"
	"github.com/specialistvlad/espgen/internal/fieldpath"
	"github.com/specialistvlad/espgen/internal/model"
	"github.com/specialistvlad/espgen/internal/validate"
)

// Validator checks the value found at path and returns its validated form.
type Validator interface {
	Validate(v model.Value, path fieldpath.Path) (model.Value, error)
}

// ValidatorFunc adapts a function to the Validator interface.
type ValidatorFunc func(v model.Value, path fieldpath.Path) (model.Value, error)

// Validate calls f.
func (f ValidatorFunc) Validate(v model.Value, path fieldpath.Path) (model.Value, error) {
	return f(v, path)
}

// Check is a post-structural predicate over an already validated value.
type Check interface {
	Check(v model.Value, path fieldpath.Path) error
}

// CheckFunc adapts a function to the Check interface.
type CheckFunc func(v model.Value, path fieldpath.Path) error

// Check calls f.
func (f CheckFunc) Check(v model.Value, path fieldpath.Path) error {
	return f(v, path)
}

// asFieldError attaches path and pos to plain errors returned by primitive
// validators. Errors that already carry a location pass through untouched.
func asFieldError(err error, path fieldpath.Path, pos model.Pos) error {
	if _, ok := err.(diag.List); ok {
		return err
	}
	var located diag.Located
	if errors.As(err, &located) {
		return err
	}
	return diag.NewField(path, pos, "%s", err.Error())
}

type all struct {
	first  Validator
	checks []Check
}

// All runs first and then every check against its output. Checks only run
// when structural validation succeeded, and the first failing check wins.
func All(first Validator, checks ...Check) Validator {
	return &all{first: first, checks: checks}
}

func (a *all) Validate(v model.Value, path fieldpath.Path) (model.Value, error) {
	out, err := a.first.Validate(v, path)
	if err != nil {
		return model.Value{}, err
	}
	for _, c := range a.checks {
		if err := c.Check(out, path); err != nil {
			return model.Value{}, asFieldError(err, path, v.Pos())
		}
	}
	return out, nil
}

type oneOf struct {
	alternatives []Validator
}

// OneOf accepts a value matching at least one alternative, trying them in
// order. When none match, the error of the first alternative is reported
// inside a SchemaShapeError.
func OneOf(alternatives ...Validator) Validator {
	if len(alternatives) == 0 {
		panic("schema: OneOf needs at least one alternative")
	}
	return &oneOf{alternatives: alternatives}
}

func (o *oneOf) Validate(v model.Value, path fieldpath.Path) (model.Value, error) {
	var first error
	for _, alt := range o.alternatives {
		out, err := alt.Validate(v, path)
		if err == nil {
			return out, nil
		}
		if first == nil {
			first = err
		}
	}
	return model.Value{}, diag.NewShape(path, v.Pos(), first, "value does not match any of the %d accepted shapes", len(o.alternatives))
}

type chain struct {
	steps []Validator
}

// Chain runs validators in sequence, each receiving the previous output.
func Chain(steps ...Validator) Validator {
	return &chain{steps: steps}
}

func (c *chain) Validate(v model.Value, path fieldpath.Path) (model.Value, error) {
	var err error
	for _, step := range c.steps {
		if v, err = step.Validate(v, path); err != nil {
			return model.Value{}, err
		}
	}
	return v, nil
}

type listOf struct {
	item Validator
}

// ListOf validates every item of a list with item. Errors from all items are
// collected.
func ListOf(item Validator) Validator {
	return &listOf{item: item}
}

func (l *listOf) Validate(v model.Value, path fieldpath.Path) (model.Value, error) {
	if v.Kind() != model.KindList {
		return model.Value{}, diag.NewShape(path, v.Pos(), nil, "expected a list, got %s", v.Kind())
	}
	var errs diag.List
	items := make([]model.Value, 0, v.Len())
	for i, item := range v.Items() {
		itemPath := path.Index(i)
		out, err := l.item.Validate(item, itemPath)
		if err != nil {
			errs = errs.Append(asFieldError(err, itemPath, posOr(item.Pos(), v.Pos())))
			continue
		}
		items = append(items, out)
	}
	if err := errs.ErrOrNil(); err != nil {
		return model.Value{}, err
	}
	return model.List(items...).WithPos(v.Pos()), nil
}

type atLeastOneOf struct {
	names []string
}

// RequireAtLeastOneOf fails with a SchemaShapeError when a mapping contains
// none of the named keys.
func RequireAtLeastOneOf(names ...string) Check {
	return &atLeastOneOf{names: names}
}

func (a *atLeastOneOf) Check(v model.Value, path fieldpath.Path) error {
	for _, name := range a.names {
		if v.Has(name) {
			return nil
		}
	}
	return diag.NewShape(path, v.Pos(), nil, "must contain at least one of %s", strings.Join(a.names, ", "))
}

type removed struct {
	since   *semver.Version
	message string
}

// Removed rejects any value of a key that is no longer supported. The key
// conflicts with where the setting lives now, so the failure is a
// CrossFieldError. since is the release that dropped the key and must be a
// valid semantic version.
func Removed(since, message string) Validator {
	v, err := semver.NewVersion(since)
	if err != nil {
		panic(fmt.Sprintf("schema: invalid version %q for removed field: %v", since, err))
	}
	return &removed{since: v, message: message}
}

func (r *removed) Validate(v model.Value, path fieldpath.Path) (model.Value, error) {
	return model.Value{}, diag.NewCrossField(path, v.Pos(), "%s since %s", r.message, r.since.String())
}

// Since returns the release that removed the key.
func (r *removed) Since() *semver.Version {
	return r.since
}

// Deprecation describes a removed key for documentation output.
type Deprecation interface {
	Since() *semver.Version
}

type primitive struct {
	fn  validate.Func
	doc docFunc
}

// Prim wraps a primitive validator; its errors become field errors at the
// path being validated.
func Prim(fn validate.Func) Validator {
	return &primitive{fn: fn}
}

func (p *primitive) Validate(v model.Value, path fieldpath.Path) (model.Value, error) {
	out, err := p.fn(v)
	if err != nil {
		return model.Value{}, asFieldError(err, path, v.Pos())
	}
	return out, nil
}
