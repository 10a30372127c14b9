package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// versionCmd prints currentReleaseVersion and takes no flags or arguments.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the installed chippy version",
	Long:  "Run `chippy version` to print the version of this chippy build",
	Args:  cobra.NoArgs,
	Run:   runVersion,
}

func runVersion(cmd *cobra.Command, args []string) {
	if len(args) != 0 {
		fmt.Println("the version command does not take any arguments")
		os.Exit(1)
	}
	fmt.Println(currentReleaseVersion)
}
