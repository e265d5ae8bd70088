package cmd

import (
	"fmt"

	"github.com/jsphweid/jsb/constants"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Prints the library version",
	Long:  `Prints the library version`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "jsb version %s\n", constants.Version)
	},
}
