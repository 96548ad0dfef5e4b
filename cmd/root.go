package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command for the accountability server
var rootCmd = &cobra.Command{
	Use:   "accountability",
	Short: "Personal daily-task tracker",
	Long: `accountability serves a month-at-a-time task tracker: register,
log in, keep per-day task lists for the current month and watch the
completion charts fill up.`,
	SilenceUsage: true,
}

// version will be set by main
var version = "dev"

// SetVersion sets the version for the root command
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

// Execute is the main entry point for the CLI application
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "accountability version %s\n" .Version}}`)

	// Running the server is the only job; default to it.
	if len(os.Args) == 1 {
		os.Args = append(os.Args, "serve")
	}

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(newServeCmd())
}
