package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"devsetup/internal/logger"
)

// debug indicates whether debug logging should be enabled.
// It is toggled via the `--debug` command-line flag.
var debug bool

// rootCmd is the base command for the `devsetup` CLI.
var rootCmd = &cobra.Command{
	Use:   "devsetup",
	Short: "Developer workstation provisioning tool",

	// PersistentPreRun runs before any subcommand; it initializes the
	// logger based on the debug flag.
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.Init(debug)
	},
}

// Execute registers flags and subcommands and runs the CLI. It is the entry
// point invoked from main.
func Execute() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(installCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
