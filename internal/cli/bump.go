package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/halloy/verbump/internal/apperr"
	"github.com/halloy/verbump/internal/bump"
	"github.com/halloy/verbump/internal/gitcli"
	"github.com/halloy/verbump/internal/semver"
)

func newBumpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bump",
		Short: "Increment the patch version and push it back to the repository",
		Long: "Writes patch+1 to the version file. If that changes the tracked state, " +
			"the file is committed with a skip marker and pushed; otherwise nothing " +
			"happens. A failed push is reported but does not fail the command unless " +
			"--strict is set, so the build can proceed with the un-bumped version.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := SetupEnv(cmd)
			if err != nil {
				return err
			}
			ctx := cmd.Context()

			if err := env.Git.CheckRepo(ctx); err != nil {
				return err
			}
			current, err := semver.ReadFile(env.Cfg.VersionFile)
			if err != nil {
				return err
			}

			branch, _ := cmd.Flags().GetString("branch")
			if branch == "" {
				if branch, err = env.Git.CurrentBranch(ctx); err != nil {
					return err
				}
			}
			branch = strings.TrimPrefix(branch, "origin/")

			remote, _ := cmd.Flags().GetString("remote")
			if remote == "" {
				if remote, err = env.Git.RemoteURL(ctx); err != nil {
					return err
				}
			}

			creds := gitcli.ResolveCredentials(env.Cfg.Git.CredentialsID)
			if creds.Empty() {
				env.Log.Warn("no push credentials resolved", "credentials_id", env.Cfg.Git.CredentialsID)
			}

			ctrl := &bump.Controller{
				Effects:     env.Git,
				VersionFile: env.Cfg.VersionFile,
				Ident:       gitcli.Identity{Name: env.Cfg.Git.UserName, Email: env.Cfg.Git.UserEmail},
				Creds:       creds,
				RemoteURL:   remote,
				Branch:      branch,
				Log:         env.Log,
			}

			_, dec, err := ctrl.IncrementAndCommit(ctx, current)
			if err != nil {
				return err
			}
			env.Printer.Plain("%s", dec.String())
			if dec.Outcome == bump.Failed {
				env.Printer.Warn("version bump not pushed; the build can continue with %s", current)
				strict, _ := cmd.Flags().GetBool("strict")
				if strict {
					return apperr.Wrap("cli.Bump", apperr.External, dec.Err, "version bump push failed")
				}
			}
			return nil
		},
	}

	cmd.Flags().String("branch", "", "Branch to push to (default: current branch, with any origin/ prefix stripped)")
	cmd.Flags().String("remote", "", "Remote URL to push to (default: remote.origin.url)")
	cmd.Flags().Bool("strict", false, "Exit non-zero when the push fails instead of continuing")

	return cmd
}
