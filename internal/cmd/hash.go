package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iw2rmb/pinfield/internal/verify"
)

var hashCmd = &cobra.Command{
	Use:   "hash CODE",
	Short: "Print a bcrypt hash of CODE",
	Long: `Print a bcrypt hash of CODE for use as verify.hash or --verify-hash.

Example:
  pinfield-demo run --verify-hash "$(pinfield-demo hash 4711)"`,
	Args: cobra.ExactArgs(1),
	RunE: runHash,
}

var hashCost int

func init() {
	rootCmd.AddCommand(hashCmd)

	hashCmd.Flags().IntVar(&hashCost, "cost", 0, "bcrypt cost (0 for the library default)")
}

func runHash(cmd *cobra.Command, args []string) error {
	hash, err := verify.HashCode(args[0], hashCost)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), hash)
	return nil
}
