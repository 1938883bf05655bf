// Package cli builds the espgen command tree. It turns arguments into an
// app.Config and maps failures to process exit codes through ExitError.
package cli
