package cli

import (
	"runtime"

	"github.com/spf13/cobra"

	"github.com/halloy/verbump/internal/cli/buildinfo"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version and build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			printLine := func(label, value string) {
				if value == "" {
					value = "unknown"
				}
				_, _ = out.Write([]byte(" " + label + value + "\n"))
			}
			_, _ = out.Write([]byte("Verbump\n"))
			printLine("Version:    ", buildinfo.Version())
			printLine("Go version: ", runtime.Version())
			printLine("Git commit: ", buildinfo.Commit())
			printLine("Built:      ", buildinfo.BuildDate())
			printLine("OS/Arch:    ", runtime.GOOS+"/"+runtime.GOARCH)
			return nil
		},
	}
}
