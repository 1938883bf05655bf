// Package diag defines the errors raised while validating a configuration
// document and generating code from it.
//
// Every error records the component it belongs to and the field path inside
// that component's configuration. Errors never stop a run on their own; the
// compiler collects them into a List and hands the List to the driver.
package diag

import (
	"errors"
	"fmt"
	"strings"

	"github.com/specialistvlad/espgen/internal/fieldpath"
	"github.com/specialistvlad/espgen/internal/model"
)

// Code classifies an error.
type Code string

const (
	// CodeField indicates a single field failed its validator.
	CodeField Code = "field"
	// CodeShape indicates a value matched none of the accepted shapes.
	CodeShape Code = "shape"
	// CodeCrossField indicates a whole-document invariant failed.
	CodeCrossField Code = "cross-field"
	// CodeIdentifier indicates a duplicate or undeclared identifier.
	CodeIdentifier Code = "identifier"
)

var (
	// ErrDuplicateIdentifier is matched by errors.Is for duplicate declarations.
	ErrDuplicateIdentifier = errors.New("duplicate identifier")
	// ErrUndeclaredIdentifier is matched by errors.Is for failed lookups.
	ErrUndeclaredIdentifier = errors.New("undeclared identifier")
)

// Location is the common context carried by every error of this package.
type Location struct {
	Component string
	Path      fieldpath.Path
	Pos       model.Pos
}

func (l *Location) location() *Location { return l }

func (l Location) prefix() string {
	var parts []string
	if l.Component != "" {
		parts = append(parts, l.Component)
	}
	if !l.Path.IsRoot() {
		parts = append(parts, l.Path.String())
	}
	if len(parts) == 0 {
		return ""
	}
	return strings.Join(parts, ".") + ": "
}

// Located is implemented by all errors of this package.
type Located interface {
	error
	Code() Code
	Reason() string
	location() *Location
}

// FieldValidationError reports a single field whose value failed its validator.
type FieldValidationError struct {
	Location
	Message string
}

// NewField creates a FieldValidationError at path.
func NewField(path fieldpath.Path, pos model.Pos, format string, args ...any) *FieldValidationError {
	return &FieldValidationError{
		Location: Location{Path: path, Pos: pos},
		Message:  fmt.Sprintf(format, args...),
	}
}

func (e *FieldValidationError) Error() string  { return e.prefix() + e.Message }
func (e *FieldValidationError) Code() Code     { return CodeField }
func (e *FieldValidationError) Reason() string { return e.Message }

// SchemaShapeError reports a value that does not match any accepted shape.
// Cause holds the error of the alternative chosen for reporting, if any.
type SchemaShapeError struct {
	Location
	Message string
	Cause   error
}

// NewShape creates a SchemaShapeError at path.
func NewShape(path fieldpath.Path, pos model.Pos, cause error, format string, args ...any) *SchemaShapeError {
	return &SchemaShapeError{
		Location: Location{Path: path, Pos: pos},
		Message:  fmt.Sprintf(format, args...),
		Cause:    cause,
	}
}

func (e *SchemaShapeError) Error() string {
	if e.Cause != nil {
		return e.prefix() + e.Message + ": " + e.Cause.Error()
	}
	return e.prefix() + e.Message
}
func (e *SchemaShapeError) Code() Code     { return CodeShape }
func (e *SchemaShapeError) Reason() string { return e.Message }
func (e *SchemaShapeError) Unwrap() error  { return e.Cause }

// CrossFieldError reports a violated invariant spanning several fields.
type CrossFieldError struct {
	Location
	Message string
}

// NewCrossField creates a CrossFieldError at path.
func NewCrossField(path fieldpath.Path, pos model.Pos, format string, args ...any) *CrossFieldError {
	return &CrossFieldError{
		Location: Location{Path: path, Pos: pos},
		Message:  fmt.Sprintf(format, args...),
	}
}

func (e *CrossFieldError) Error() string  { return e.prefix() + e.Message }
func (e *CrossFieldError) Code() Code     { return CodeCrossField }
func (e *CrossFieldError) Reason() string { return e.Message }

// IdentifierConflictError reports a duplicate declaration or a reference to
// a name that was never declared. Kind is ErrDuplicateIdentifier or
// ErrUndeclaredIdentifier.
type IdentifierConflictError struct {
	Location
	Name   string
	Kind   error
	Detail string
}

func (e *IdentifierConflictError) Error() string {
	msg := fmt.Sprintf("%s %q", e.Kind, e.Name)
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return e.prefix() + msg
}
func (e *IdentifierConflictError) Code() Code     { return CodeIdentifier }
func (e *IdentifierConflictError) Reason() string { return e.Kind.Error() }
func (e *IdentifierConflictError) Unwrap() error  { return e.Kind }

// WithComponent stamps the component name on err and on every error it
// aggregates. Errors that already name a component are left alone.
func WithComponent(err error, component string) error {
	if err == nil {
		return nil
	}
	if list, ok := err.(List); ok {
		for _, e := range list {
			WithComponent(e, component)
		}
		return err
	}
	var located Located
	if errors.As(err, &located) {
		if loc := located.location(); loc.Component == "" {
			loc.Component = component
		}
	}
	return err
}

// LocationOf returns the location of err if it is one of this package's errors.
func LocationOf(err error) (Location, bool) {
	var located Located
	if errors.As(err, &located) {
		return *located.location(), true
	}
	return Location{}, false
}
