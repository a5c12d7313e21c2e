package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// buildVersion is overridden at link time with -ldflags "-X ...buildVersion=...".
var buildVersion = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the build version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(buildVersion)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
