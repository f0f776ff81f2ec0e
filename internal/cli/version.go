package cli

import (
	"runtime/debug"

	"github.com/spf13/cobra"
)

// Version is stamped at build time with -ldflags "-X ervin/internal/cli.Version=...".
var Version = ""

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the version information",
		Long:  "Displays the build version and Go version used to build this tool.",
		Run: func(cmd *cobra.Command, _ []string) {
			info, ok := debug.ReadBuildInfo()
			v := Version
			if v == "" && ok {
				v = info.Main.Version
			}
			if v == "" {
				v = "unknown"
			}
			cmd.Println("ervin version\t", v)
			if ok {
				cmd.Println("go version\t", info.GoVersion)
			}
		},
	}
}
