// SPDX-License-Identifier: MIT

// Package cli implements the minuscule command-line tool.
package cli

import (
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/minuscule/internal/logger"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "json" | "text"
	LogMode string // "dev" | "prod"

	log *logger.Logger
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// Logger returns the logger built for this invocation, or a no-op logger
// before the root pre-run.
func (o *RootOptions) Logger() *logger.Logger {
	if o.log == nil {
		return logger.Nop()
	}
	return o.log
}

func (o *RootOptions) formatter(cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:    o.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   o.Verbose,
	}
}

// NewRootCommand creates the root command for the minuscule CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "minuscule",
		Short: "Minuscule posets, order ideals and their weight bijection",
		Long: `Build the minuscule poset of a simply-laced type (A_n, D_n, E_6, E_7) and
explore its lattice of order ideals: the bijection φ onto the weights of the
minuscule representation, Fon-Der-Flaass and Coxeter-word toggle actions,
cyclic sieving and homomesy predictions, and exhaustive verification.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return NewExitError(ExitCommandError,
					fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
			}
			if !slices.Contains(logger.ValidModes, opts.LogMode) {
				return NewExitError(ExitCommandError,
					fmt.Sprintf("invalid log mode %q: must be one of %v", opts.LogMode, logger.ValidModes))
			}
			log, err := logger.NewWithWriter(opts.LogMode, opts.Verbose, cmd.ErrOrStderr())
			if err != nil {
				return WrapExitError(ExitCommandError, "logger", err)
			}
			opts.log = log
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			opts.Logger().Sync()
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output (debug logs)")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.LogMode, "log-mode", logger.ModeDev, "log encoding (dev|prod)")

	// Add subcommands
	cmd.AddCommand(NewListCommand(opts))
	cmd.AddCommand(NewPosetCommand(opts))
	cmd.AddCommand(NewPhiCommand(opts))
	cmd.AddCommand(NewVerifyCommand(opts))
	cmd.AddCommand(NewOrbitCommand(opts))
	cmd.AddCommand(NewCSPCommand(opts))
	cmd.AddCommand(NewHomomesyCommand(opts))
	cmd.AddCommand(NewBatchCommand(opts))

	return cmd
}

// Execute runs the CLI with args and returns the process exit code.
// Errors that were not already reported by a command go to stderr.
func Execute(args []string, stdout, stderr io.Writer) int {
	cmd := NewRootCommand()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.Execute()
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if !errors.As(err, &exitErr) || exitErr.Err == nil {
		fmt.Fprintln(stderr, "Error:", err)
	}
	return GetExitCode(err)
}
