package cli

import (
	"io"

	"github.com/spf13/cobra"
)

func newCompileCommand(flags *globalFlags, outW, errW io.Writer) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "compile PATH...",
		Short: "Validate documents and print the generated program.",
		Long: `Validate one or more documents and print the generated program.

PATH is a .yaml, .yml or .hcl file or a directory containing such files.
Top-level keys name components and are compiled in document order.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.config(args, output)
			if err != nil {
				return err
			}
			a, err := newApp(cfg, outW, errW)
			if err != nil {
				return err
			}
			_, err = a.Compile(cmd.Context())
			return err
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "cpp", "Output format. Options: 'cpp', 'json', 'yaml' or 'table'.")
	return cmd
}

func newSchemaCommand(flags *globalFlags, outW, errW io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "schema [COMPONENT]",
		Short: "Print the JSON schema of a component or of the whole document.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.config(nil, "cpp")
			if err != nil {
				return err
			}
			a, err := newApp(cfg, outW, errW)
			if err != nil {
				return err
			}
			name := ""
			if len(args) == 1 {
				name = args[0]
			}
			if err := a.WriteSchema(name); err != nil {
				return &ExitError{Code: ExitUsage, Message: err.Error()}
			}
			return nil
		},
	}
}

func newLibsCommand(flags *globalFlags, outW, errW io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "libs PATH...",
		Short: "Print the libraries the configured components need on the platform.",
		Long:  "Print the libraries the configured components need. Supported platforms: " + platformList() + ".",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.config(args, "cpp")
			if err != nil {
				return err
			}
			a, err := newApp(cfg, outW, errW)
			if err != nil {
				return err
			}
			_, err = a.WriteLibDeps(cmd.Context())
			return err
		},
	}
}
