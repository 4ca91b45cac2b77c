// Package cmd implements the epscaffold CLI commands.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/erispulse/epscaffold/internal/output"
)

var (
	verbose       bool
	themeOverride string

	appVersion = "dev"
)

var rootCmd = &cobra.Command{
	Use:   "epscaffold",
	Short: "ErisPulse scaffold generator",
	Long:  "epscaffold generates ErisPulse project skeletons: plugin modules, CLI extensions, and protocol adapters.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		output.SetupLogging(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&themeOverride, "theme", "", "TUI color theme: dark, light, or auto")

	rootCmd.AddCommand(scaffoldCmd)
}

// SetVersionInfo sets the version and commit for display.
func SetVersionInfo(version, commit string) {
	appVersion = version
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(fmt.Sprintf("epscaffold %s (commit: %s)\n", version, commit))
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
