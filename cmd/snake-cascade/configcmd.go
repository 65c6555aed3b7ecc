package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/snake-cascade/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Print the built-in default configuration YAML to stdout.
Redirect it to a file to use as a starting point:

  snake-cascade config > ~/.snake-cascade/config.yaml`,
	Args: cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		if _, err := os.Stdout.Write(config.DefaultYAML()); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}
