// Package app contains the core application logic. It wires the document
// loader, the compiler, and the output encoders together, decoupled from any
// specific entrypoint like a CLI.
package app
