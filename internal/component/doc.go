// Package component defines what a configuration component is and keeps the
// catalog of components compiled into the binary.
//
// A component owns one top-level key of the configuration document. It
// supplies the schema its configuration is validated against and turns the
// validated configuration into statements through a Builder. Builders are
// provided by the compiler and scope every declaration and statement to the
// component being processed.
package component
