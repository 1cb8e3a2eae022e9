package cli

import (
	"github.com/spf13/cobra"

	"github.com/halloy/verbump/internal/mavencli"
)

func newStampCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stamp",
		Short: "Write a version into the Maven build manifest",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := SetupEnv(cmd)
			if err != nil {
				return err
			}
			version, _ := cmd.Flags().GetString("version")
			dir, _ := cmd.Flags().GetString("dir")

			mvn := mavencli.New()
			if err := mvn.SetVersion(cmd.Context(), dir, version); err != nil {
				return err
			}
			env.Log.Info("manifest_stamped", "version", version, "dir", dir)
			env.Printer.Plain("stamped %s", version)
			return nil
		},
	}

	cmd.Flags().String("version", "", "Version to write (typically the setup output)")
	cmd.Flags().String("dir", "", "Directory containing the pom (default: current directory)")
	_ = cmd.MarkFlagRequired("version")

	return cmd
}
