package testutil

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/specialistvlad/espgen/internal/compiler"
	"github.com/specialistvlad/espgen/internal/component"
	"github.com/specialistvlad/espgen/internal/ctxlog"
	"github.com/specialistvlad/espgen/internal/model"
)

// Context returns a context carrying a debug logger that writes into buf.
func Context(buf *SafeBuffer) context.Context {
	logger := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return ctxlog.WithLogger(context.Background(), logger)
}

// CompileResult holds the outcome of Compile.
type CompileResult struct {
	*compiler.Result
	Err       error
	LogOutput string
}

// Compile runs the compiler over an in-memory document for platform.
func Compile(t *testing.T, platform component.Platform, doc model.Value, comps ...component.Component) *CompileResult {
	t.Helper()

	logBuffer := &SafeBuffer{}
	c := compiler.New(component.NewCatalog(comps...), platform)
	res, err := c.Run(Context(logBuffer), doc)

	if os.Getenv("ESPGEN_TEST_LOGS") == "true" {
		t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logBuffer.String())
	}
	return &CompileResult{Result: res, Err: err, LogOutput: logBuffer.String()}
}
