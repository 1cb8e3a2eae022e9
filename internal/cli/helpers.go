package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/halloy/verbump/internal/config"
	"github.com/halloy/verbump/internal/gitcli"
	"github.com/halloy/verbump/internal/logger"
	"github.com/halloy/verbump/internal/ui"
)

// Env bundles the components a command needs: config, logging, output, and
// the git collaborator.
type Env struct {
	Cfg     config.Config
	Log     logger.Logger
	Printer ui.StdPrinter
	Git     *gitcli.Client
}

// gitTimeout bounds every git invocation; the core has no cancellation
// semantics of its own.
const gitTimeout = 60 * time.Second

// SetupEnv performs the standard command setup: load config, build the
// logger from persistent flags, and wire a git client whose exec events
// feed the debug log.
func SetupEnv(cmd *cobra.Command) (*Env, error) {
	file, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(file)
	if err != nil {
		return nil, err
	}

	level, _ := cmd.Flags().GetString("log-level")
	format, _ := cmd.Flags().GetString("log-format")
	logFile, _ := cmd.Flags().GetString("log-file")
	log, _, err := logger.New(logger.Options{Level: level, Format: format, LogFile: logFile})
	if err != nil {
		return nil, err
	}
	log = log.With("run_id", logger.NewRunID())

	ex := (&gitcli.SystemExec{}).
		WithDefaultTimeout(gitTimeout).
		WithLogger(func(e gitcli.ExecEvent) {
			if e.Phase != "finish" {
				return
			}
			log.Debug("git_exec",
				"args", joinArgs(e.Args),
				"exit_code", e.ExitCode,
				"duration_ms", e.Duration.Milliseconds())
		})

	return &Env{
		Cfg:     cfg,
		Log:     log,
		Printer: ui.StdPrinter{Out: cmd.OutOrStdout(), Err: cmd.ErrOrStderr()},
		Git:     gitcli.NewWithExec(ex),
	}, nil
}

func joinArgs(args []string) string {
	out := "git"
	for _, a := range args {
		out += " " + a
	}
	return out
}
