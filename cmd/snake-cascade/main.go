// snake-cascade is a terminal snake simulation with a color-cascade
// animation that sweeps the body on every growth.
//
// Usage:
//
//	snake-cascade play            - Play in the terminal
//	snake-cascade sim             - Run a headless simulation
//	snake-cascade runs            - Browse recorded runs
//	snake-cascade serve           - Start SSH server for remote play
//	snake-cascade config          - Print the default configuration
//
// Global flags:
//
//	--seed <value>  - Set RNG seed for reproducible runs
//	--db <path>     - Set database path (default: ~/.snake-cascade/runs.db)
//	--config <path> - Path to custom config YAML
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagSeed   int64
	flagDBPath string
	flagConfig string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake-cascade",
	Short: "Snake with a color cascade, in your terminal",
	Long: `snake-cascade is a terminal snake simulation. Every time the snake
grows, a color wave sweeps from the head down the body on its own
animation clock while the simulation speeds up with your score.

Available commands:
  play     - Play interactively in the terminal
  sim      - Run a headless simulation and print the result
  runs     - Browse recorded runs and their event trails
  serve    - Start SSH server for remote play
  config   - Print the default configuration YAML

Examples:
  snake-cascade play
  snake-cascade play --difficulty hard
  snake-cascade sim --ticks 500 --seed 42
  snake-cascade runs
  snake-cascade serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.snake-cascade/runs.db", "Path to run database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(serveCmd)
}
