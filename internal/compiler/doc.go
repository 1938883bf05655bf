// Package compiler runs one compilation of a configuration document.
//
// The top-level keys of the document name components and their order is the
// processing order. Each component is validated against its schema, then
// generates code through a Builder whose declarations and statements are
// staged. A component that fails leaves neither identifiers nor statements
// behind; the run continues with the next component and all errors are
// returned together at the end.
package compiler
