package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/snake-cascade/internal/platform/tui"
	"github.com/vovakirdan/snake-cascade/internal/storage"
)

var flagRunsClear bool

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Browse recorded runs",
	Long: `Open an interactive browser over recorded runs. Each run shows
its score, length, duration, outcome, and seed; press Enter on a run to
see its event trail.

Examples:
  snake-cascade runs
  snake-cascade runs --db ./runs.db
  snake-cascade runs --clear`,
	Args: cobra.NoArgs,
	Run:  runRuns,
}

func init() {
	runsCmd.Flags().BoolVar(&flagRunsClear, "clear", false, "Delete all recorded runs and exit")
}

func runRuns(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening run database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagRunsClear {
		if err := store.ClearRuns(); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing runs: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Run history cleared.")
		return
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	if err := tui.RunHistory(store, width, height); err != nil {
		fmt.Fprintf(os.Stderr, "Error running history browser: %v\n", err)
		os.Exit(1)
	}
}
