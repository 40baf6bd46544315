package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "waiver",
	Short: "Summer camp liability release collection",
	Long:  `Collects signed liability release forms for summer camp, archives them with an audit trail, and notifies staff.`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
