package main

import (
	"github.com/spf13/cobra"
)

var (
	// Command line flags
	logLevel string
)

var rootCmd = &cobra.Command{
	Use:   "recipectl",
	Short: "Personalized recipe generator",
	Long: `recipectl generates recipes from a list of ingredients using a hosted Gemini model.
It can print a single recipe to the terminal or run the HTTP API.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

// Execute runs the root command and handles errors
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"Set the logging level (debug, info, warn, error), overrides LOG_LEVEL")
}
