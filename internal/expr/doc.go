// Package expr builds the typed value expressions that generated statements
// are made of: literals, constructions, struct initializers, calls and
// references to declared identifiers.
//
// Expressions are plain values without side effects. The builders never
// reorder arguments or struct members, so the caller fully controls the
// layout that reaches the serializer.
package expr
