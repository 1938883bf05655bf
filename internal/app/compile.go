package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/espgen/internal/compiler"
	"github.com/specialistvlad/espgen/internal/diag"
	"github.com/specialistvlad/espgen/internal/document"
)

// ErrCompilationFailed is returned when the document had errors. The
// individual errors have already been written as diagnostics.
var ErrCompilationFailed = errors.New("compilation failed")

const diagnosticWidth = 100

// Compile loads the configured documents, compiles them, and writes the
// program in the configured output format. Diagnostics are written for every
// error found; the program is only written when there were none.
func (a *App) Compile(ctx context.Context) (*compiler.Result, error) {
	ctx = a.context(ctx)
	a.logger.Debug("App.Compile method started.", "paths", a.config.Paths, "platform", a.platform)

	if len(a.config.Paths) == 0 {
		return nil, errors.New("no document paths given")
	}

	doc, err := document.Load(ctx, a.config.Paths...)
	if err != nil {
		return nil, a.report(doc, err)
	}
	a.logger.Debug("Document loaded.", "components", doc.Root.Keys())

	res, err := compiler.New(a.catalog, a.platform).Run(ctx, doc.Root)
	if err != nil {
		return res, a.report(doc, err)
	}

	if err := encodeResult(a.outW, a.config.Output, a.platform.String(), res); err != nil {
		return res, err
	}
	a.logger.Debug("App.Compile method finished.")
	return res, nil
}

// report writes err as diagnostics. Errors without a source location are
// returned unchanged.
func (a *App) report(doc *document.Document, err error) error {
	diags := diag.ToDiagnostics(err)
	var files map[string]*hcl.File
	if doc != nil {
		files = doc.Files
	}
	wr := hcl.NewDiagnosticTextWriter(a.errW, files, diagnosticWidth, false)
	if werr := wr.WriteDiagnostics(diags); werr != nil {
		return fmt.Errorf("failed to write diagnostics: %w", werr)
	}
	return fmt.Errorf("%w with %d error(s)", ErrCompilationFailed, len(diags))
}
