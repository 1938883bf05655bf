// Package document loads configuration documents into model values.
//
// YAML and HCL sources are supported. Both loaders keep the order of mapping
// keys, since the top-level order decides the order components are compiled
// in, and record the source position of every value for diagnostics.
package document
