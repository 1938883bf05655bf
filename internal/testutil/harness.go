// Package testutil provides harnesses shared by the package and integration
// tests.
package testutil

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/specialistvlad/espgen/internal/app"
	"github.com/specialistvlad/espgen/internal/compiler"
	"github.com/specialistvlad/espgen/internal/component"
	"github.com/stretchr/testify/require"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// HarnessResult holds the outcomes of an integration test run.
type HarnessResult struct {
	// Output is what the app wrote to stdout.
	Output string
	// LogOutput holds logs and diagnostics.
	LogOutput string
	Err       error
	Result    *compiler.Result
}

// Option adjusts the configuration of an integration run.
type Option func(*harnessConfig)

type harnessConfig struct {
	app        app.Config
	components []component.Component
}

// WithPlatform sets the target platform.
func WithPlatform(p string) Option {
	return func(c *harnessConfig) { c.app.Platform = p }
}

// WithOutput sets the output format.
func WithOutput(format string) Option {
	return func(c *harnessConfig) { c.app.Output = format }
}

// WithComponents replaces the core components.
func WithComponents(comps ...component.Component) Option {
	return func(c *harnessConfig) { c.components = comps }
}

// RunIntegrationTest writes files into a temporary directory and compiles
// the directory through the app, the same way the CLI does.
func RunIntegrationTest(t *testing.T, files map[string]string, opts ...Option) *HarnessResult {
	t.Helper()
	return RunIntegrationTestWithContext(context.Background(), t, files, opts...)
}

// RunIntegrationTestWithContext is RunIntegrationTest with a caller context.
func RunIntegrationTestWithContext(ctx context.Context, t *testing.T, files map[string]string, opts ...Option) *HarnessResult {
	t.Helper()

	tmpDir := t.TempDir()
	for name, content := range files {
		filePath := filepath.Join(tmpDir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(filePath), 0o755))
		require.NoError(t, os.WriteFile(filePath, []byte(content), 0o644))
	}

	cfg := &harnessConfig{app: app.Config{
		Paths:     []string{tmpDir},
		Platform:  "esp32",
		Output:    "cpp",
		LogLevel:  "debug",
		LogFormat: "text",
	}}
	for _, opt := range opts {
		opt(cfg)
	}
	appConfig, err := app.NewConfig(cfg.app)
	require.NoError(t, err)

	out := &SafeBuffer{}
	logBuffer := &SafeBuffer{}
	testApp, err := app.NewApp(out, logBuffer, appConfig, cfg.components...)
	require.NoError(t, err)

	res, runErr := testApp.Compile(ctx)

	if os.Getenv("ESPGEN_TEST_LOGS") == "true" {
		t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logBuffer.String())
	}

	return &HarnessResult{
		Output:    out.String(),
		LogOutput: logBuffer.String(),
		Err:       runErr,
		Result:    res,
	}
}
