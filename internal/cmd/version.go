package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iw2rmb/pinfield"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), pinfield.Banner(rootCmd.Name()))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
