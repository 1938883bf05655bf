// Package validate holds the primitive validators: pure functions that check
// a single scalar from a configuration document and return it, possibly
// normalized into a typed leaf.
//
// Primitive validators know nothing about field paths. They return plain
// errors carrying a human readable reason; the schema layer attaches the path
// and source position of the offending field.
package validate
