package cli

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"

	"github.com/specialistvlad/espgen/internal/app"
	"github.com/specialistvlad/espgen/internal/component"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Exit codes.
const (
	ExitFailure = 1
	ExitUsage   = 2
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

type globalFlags struct {
	platform  string
	logFormat string
	logLevel  string
}

func (g *globalFlags) register(fs *pflag.FlagSet) {
	fs.StringVarP(&g.platform, "platform", "p", "esp32", "Target platform. Options: 'esp32' or 'esp8266'.")
	fs.StringVar(&g.logFormat, "log-format", "text", "Log output format. Options: 'text' or 'json'.")
	fs.StringVar(&g.logLevel, "log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
}

// config validates the flags into an app.Config.
func (g *globalFlags) config(paths []string, output string) (*app.Config, error) {
	cfg, err := app.NewConfig(app.Config{
		Paths:     paths,
		Platform:  strings.ToLower(g.platform),
		Output:    strings.ToLower(output),
		LogFormat: strings.ToLower(g.logFormat),
		LogLevel:  strings.ToLower(g.logLevel),
	})
	if err != nil {
		return nil, &ExitError{Code: ExitUsage, Message: err.Error()}
	}
	slog.Debug("CLI parameter validation complete.", "config", cfg)
	return cfg, nil
}

// NewRootCommand builds the command tree. Command results go to outW, logs
// and diagnostics to errW.
func NewRootCommand(outW, errW io.Writer) *cobra.Command {
	flags := &globalFlags{}
	root := &cobra.Command{
		Use:   "espgen",
		Short: "Compile declarative device configuration into esphomelib C++ code.",
		Long: `espgen validates a device configuration written in YAML or HCL and
generates the C++ statements that set up the configured components.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(outW)
	root.SetErr(errW)
	flags.register(root.PersistentFlags())

	root.AddCommand(
		newCompileCommand(flags, outW, errW),
		newSchemaCommand(flags, outW, errW),
		newLibsCommand(flags, outW, errW),
	)
	return root
}

// Execute runs the command tree with args. Usage errors are returned as
// ExitError with ExitUsage, failed compilations with ExitFailure.
func Execute(ctx context.Context, args []string, outW, errW io.Writer) error {
	slog.Debug("CLI parser started.")
	root := NewRootCommand(outW, errW)
	root.SetArgs(args)
	err := root.ExecuteContext(ctx)
	if err == nil {
		return nil
	}

	var exitErr *ExitError
	switch {
	case errors.As(err, &exitErr):
		return exitErr
	case errors.Is(err, app.ErrCompilationFailed):
		return &ExitError{Code: ExitFailure, Message: err.Error()}
	case isUsageError(err):
		return &ExitError{Code: ExitUsage, Message: err.Error() + "\nRun 'espgen --help' for usage."}
	}
	return err
}

// isUsageError recognises the flag and argument errors produced by cobra,
// which have no exported type.
func isUsageError(err error) bool {
	msg := err.Error()
	for _, prefix := range []string{"unknown command", "unknown flag", "unknown shorthand flag", "invalid argument", "accepts ", "requires at least", "flag needs an argument"} {
		if strings.HasPrefix(msg, prefix) {
			return true
		}
	}
	return false
}

func newApp(cfg *app.Config, outW, errW io.Writer) (*app.App, error) {
	a, err := app.NewApp(outW, errW, cfg)
	if err != nil {
		return nil, &ExitError{Code: ExitUsage, Message: err.Error()}
	}
	return a, nil
}

func platformList() string {
	names := make([]string, len(component.Platforms))
	for i, p := range component.Platforms {
		names[i] = strings.ToLower(p.String())
	}
	return strings.Join(names, ", ")
}
