package commands

import (
	"fmt"
	"runtime/debug"

	"github.com/spf13/cobra"
)

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Run: func(cmd *cobra.Command, args []string) {
			info, ok := debug.ReadBuildInfo()
			if !ok {
				fmt.Println("unknown")
				return
			}
			fmt.Printf("%s %s (%s)\n", info.Main.Path, info.Main.Version, info.GoVersion)
		},
	}
}
