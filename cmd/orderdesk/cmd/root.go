package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "orderdesk",
	Short: "Order administration console",
	Long: `orderdesk serves a password-gated console listing the orders held by the
order backend.

Available commands:
  serve      Run the console HTTP server (default)
  version    Print the version number

Use "orderdesk [command] --help" for more information about a specific command.`,
	SilenceUsage: true,
	RunE:         runServe,
}

// Execute executes the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
