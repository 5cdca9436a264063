package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/siyuan-infoblox/java-import-add/pkg/version"
)

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show detailed version information",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Fprintln(os.Stdout, version.Get().String())
		},
	}
}
