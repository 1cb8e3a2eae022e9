package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/halloy/verbump/internal/apperr"
	"github.com/halloy/verbump/internal/cli/buildinfo"
)

// verbose controls extra error detail printing.
var verbose bool

// Execute runs the root command and handles error formatting and exit codes.
func Execute(ctx context.Context) int {
	cmd := newRootCmd()
	if err := cmd.ExecuteContext(ctx); err != nil {
		printUserFriendly(err)
		switch {
		case apperr.IsKind(err, apperr.NotBuilt):
			return 3
		case apperr.IsKind(err, apperr.InvalidInput):
			return 2
		case apperr.IsKind(err, apperr.Unavailable) || apperr.IsKind(err, apperr.Timeout):
			return 69
		case apperr.IsKind(err, apperr.External):
			return 70
		default:
			return 1
		}
	}
	return 0
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "verbump",
		Short:         "Compose build version strings and commit version bumps from CI",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringP("config", "c", "", "Path to configuration file (defaults to verbump.yml or verbump.yaml in current directory)")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose error output")
	cmd.PersistentFlags().String("log-level", "info", "Log level: debug, info, warn, error")
	cmd.PersistentFlags().String("log-format", "auto", "Log format: auto, pretty, json")
	cmd.PersistentFlags().String("log-file", "", "Additional JSON log sink")

	cmd.AddCommand(newSetupCmd())
	cmd.AddCommand(newBumpCmd())
	cmd.AddCommand(newStampCmd())
	cmd.AddCommand(newVersionCmd())

	cmd.SetVersionTemplate(fmt.Sprintf("%s\n", buildinfo.VersionSimple()))
	cmd.Version = buildinfo.VersionSimple()

	return cmd
}

func printUserFriendly(err error) {
	var e *apperr.E
	if errors.As(err, &e) {
		// A skipped build is a normal outcome, never an error.
		if e.Kind == apperr.NotBuilt {
			fmt.Fprintf(os.Stderr, "not built: %s\n", e.Msg)
			return
		}
		if e.Msg != "" {
			fmt.Fprintf(os.Stderr, "Error: %s\n", e.Msg)
		} else {
			fmt.Fprintf(os.Stderr, "Error: %s\n", err.Error())
		}
		if verbose {
			fmt.Fprintln(os.Stderr, "Detail:", err)
		}
		if apperr.IsKind(err, apperr.Unavailable) {
			fmt.Fprintln(os.Stderr, "Hint: Is the working directory a git checkout with an origin remote?")
		}
		return
	}
	fmt.Fprintln(os.Stderr, "Error:", err)
}
