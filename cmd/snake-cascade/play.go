package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/snake-cascade/internal/config"
	"github.com/vovakirdan/snake-cascade/internal/engine"
	"github.com/vovakirdan/snake-cascade/internal/platform/tui"
	"github.com/vovakirdan/snake-cascade/internal/storage"
)

var flagDifficulty string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start an interactive run. The simulation begins on the first
steering key.

Controls:
  Arrows/WASD - Steer
  P/Esc       - Pause
  R           - Restart (after game over)
  Q/Ctrl+C    - Quit

Difficulty options:
  easy   - Slower base speed, gentler speedup
  normal - Defaults from the config
  hard   - Faster base speed, steeper speedup
  fixed  - No score-driven speedup at all

Examples:
  snake-cascade play
  snake-cascade play --difficulty hard
  snake-cascade play --seed 42
  snake-cascade play --config ./my-config.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

// loadConfig loads the YAML config honoring the global --config flag and
// applies an optional difficulty preset.
func loadConfig(difficulty string) (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	if difficulty != "" {
		preset, err := config.ParsePreset(difficulty)
		if err != nil {
			return cfg, err
		}
		config.ApplyPreset(&cfg, preset)
	}

	return cfg, nil
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig(flagDifficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	eng, err := engine.New(cfg.EngineParams(flagSeed))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating engine: %v\n", err)
		os.Exit(1)
	}

	// Get terminal size for the screen buffer
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Open run storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open run database: %v\n", err)
		// Continue without storage - the game still works
		store = nil
	}

	runErr := tui.Run(eng, store, width, height)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
