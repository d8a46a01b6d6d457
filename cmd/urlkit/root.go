package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/urlkit/internal/app"
)

// NewRootCmd creates the root command for urlkit.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "urlkit",
		Short: "URL and markup sanitization helpers",
		Long: `urlkit encodes and decodes URL components, escapes and strips markup and
extracts query and fragment parameters.

Every text command reads its argument, or standard input when no argument is
given, and writes the result to standard output.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringSlice("env-file", nil,
		"Load variables from .env files before reading the environment")

	cmd.AddCommand(
		NewEncodeCmd(),
		NewDecodeCmd(),
		NewEscapeCmd(),
		NewUnescapeCmd(),
		NewStripCmd(),
		NewTextCmd(),
		NewTrimCmd(),
		NewSlugCmd(),
		NewQueryCmd(),
		NewHashCmd(),
		NewServeCmd(),
		NewVersionCmd(),
	)

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadApp reads the configuration and builds the shared dependencies. Logs go
// to the command's stderr.
func loadApp(cmd *cobra.Command) (*app.App, error) {
	files, err := cmd.Flags().GetStringSlice("env-file")
	if err != nil {
		return nil, err
	}
	cfg, err := app.LoadConfig(files...)
	if err != nil {
		return nil, err
	}
	return app.New(cmd.Context(), cfg, cmd.ErrOrStderr())
}

// input returns the first argument or, without one, all of stdin minus a
// single trailing line break.
func input(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	b, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	s := strings.TrimSuffix(string(b), "\n")
	return strings.TrimSuffix(s, "\r"), nil
}
