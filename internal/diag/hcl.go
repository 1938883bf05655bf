package diag

import (
	"errors"
	"fmt"

	"github.com/hashicorp/hcl/v2"
)

var summaries = map[Code]string{
	CodeField:      "Invalid field value",
	CodeShape:      "Unexpected configuration shape",
	CodeCrossField: "Conflicting configuration",
	CodeIdentifier: "Identifier conflict",
}

// ToDiagnostics converts err into hcl.Diagnostics so that callers can render
// it with the HCL diagnostic writers. HCL parse diagnostics wrapped in err
// are returned as they are; other errors from outside this package become a
// diagnostic without a subject range.
func ToDiagnostics(err error) hcl.Diagnostics {
	if err == nil {
		return nil
	}

	var diags hcl.Diagnostics
	if list, ok := err.(List); ok {
		for _, e := range list {
			diags = append(diags, ToDiagnostics(e)...)
		}
		return diags
	}

	var parsed hcl.Diagnostics
	if errors.As(err, &parsed) {
		return parsed
	}

	var located Located
	if !errors.As(err, &located) {
		return hcl.Diagnostics{{
			Severity: hcl.DiagError,
			Summary:  "Compilation failed",
			Detail:   err.Error(),
		}}
	}

	loc := located.location()
	diag := &hcl.Diagnostic{
		Severity: hcl.DiagError,
		Summary:  summaries[located.Code()],
		Detail:   located.Error(),
	}
	if loc.Component != "" {
		diag.Summary = fmt.Sprintf("%s in %q", diag.Summary, loc.Component)
	}
	if loc.Pos.IsValid() {
		start := hcl.Pos{Line: loc.Pos.Line, Column: loc.Pos.Column, Byte: loc.Pos.Byte}
		end := hcl.Pos{Line: loc.Pos.Line, Column: loc.Pos.Column + 1, Byte: loc.Pos.Byte + 1}
		diag.Subject = &hcl.Range{Filename: loc.Pos.File, Start: start, End: end}
	}
	return hcl.Diagnostics{diag}
}
