package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pageza/alchemorsel-recipe-generator/backend/internal/api"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "recipectl %s\n", api.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
