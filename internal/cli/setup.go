package cli

import (
	"github.com/spf13/cobra"

	"github.com/halloy/verbump/internal/apperr"
	"github.com/halloy/verbump/internal/bump"
	"github.com/halloy/verbump/internal/semver"
	"github.com/halloy/verbump/internal/ui"
)

func newSetupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Decide whether the build proceeds and print its version string",
		Long: "Reads the stored semantic version and the triggering commit message. " +
			"If the commit was produced by a previous version bump, exits with the " +
			"not-built code (3) instead of printing a version string.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := SetupEnv(cmd)
			if err != nil {
				return err
			}
			ctx := cmd.Context()

			buildNumber, _ := cmd.Flags().GetString("build-number")
			msg, _ := cmd.Flags().GetString("commit-message")
			hash, _ := cmd.Flags().GetString("commit-hash")

			if msg == "" {
				if err := env.Git.CheckRepo(ctx); err != nil {
					return err
				}
				if msg, err = env.Git.HeadCommitMessage(ctx); err != nil {
					return err
				}
			}
			if hash == "" {
				// Best effort; an absent hash renders as "unknown".
				hash, _ = env.Git.HeadCommitHash(ctx)
			}

			current, err := semver.ReadFile(env.Cfg.VersionFile)
			if err != nil {
				return err
			}

			out := bump.Setup(msg, current, buildNumber, hash)
			if !out.Proceed {
				env.Printer.Info("%s", ui.Muted("skipping build: "+out.Reason))
				return apperr.New("cli.Setup", apperr.NotBuilt, "%s", out.Reason)
			}
			env.Log.Info("build_version",
				"version", out.Build.String(),
				"build_number", buildNumber,
				"short_commit", out.Build.ShortCommit)
			env.Printer.Plain("%s", out.Build.String())
			return nil
		},
	}

	cmd.Flags().String("build-number", "", "CI build number embedded in the version string")
	cmd.Flags().String("commit-message", "", "Commit message to inspect (default: HEAD message from git)")
	cmd.Flags().String("commit-hash", "", "Commit hash for the short-commit suffix (default: HEAD from git)")
	_ = cmd.MarkFlagRequired("build-number")

	return cmd
}
