// Package config provides YAML-based configuration loading and difficulty
// presets for the snake simulation.
package config

import (
	"fmt"
	"time"

	"github.com/vovakirdan/snake-cascade/internal/core"
	"github.com/vovakirdan/snake-cascade/internal/engine"
)

// Config contains all tunable simulation parameters.
type Config struct {
	Grid    GridConfig    `yaml:"grid"`
	Speed   SpeedConfig   `yaml:"speed"`
	Cascade CascadeConfig `yaml:"cascade"`
	Spawner SpawnerConfig `yaml:"spawner"`
}

// GridConfig defines the board geometry.
type GridConfig struct {
	Size int `yaml:"size"`
}

// SpeedConfig defines the score-driven speed progression, in milliseconds
// of simulation tick period.
type SpeedConfig struct {
	BaseMs      int `yaml:"base_ms"`      // Period at score zero
	DecrementMs int `yaml:"decrement_ms"` // Period reduction per point
	MinMs       int `yaml:"min_ms"`       // Hard floor
}

// CascadeConfig defines the color-wave animation clock and palette.
type CascadeConfig struct {
	PeriodMs    int `yaml:"period_ms"`
	PaletteSize int `yaml:"palette_size"`
}

// SpawnerConfig defines target placement behavior.
type SpawnerConfig struct {
	MaxAttempts int `yaml:"max_attempts"`
}

// Validate checks the config for values the engine would reject.
func (c Config) Validate() error {
	if c.Grid.Size < 2 {
		return fmt.Errorf("config: grid size %d too small", c.Grid.Size)
	}
	if c.Speed.BaseMs <= 0 || c.Speed.MinMs <= 0 {
		return fmt.Errorf("config: speed periods must be positive")
	}
	if c.Speed.MinMs > c.Speed.BaseMs {
		return fmt.Errorf("config: min period %dms exceeds base %dms", c.Speed.MinMs, c.Speed.BaseMs)
	}
	if c.Cascade.PeriodMs <= 0 {
		return fmt.Errorf("config: cascade period must be positive")
	}
	if c.Cascade.PaletteSize < 1 || c.Cascade.PaletteSize > core.MaxPaletteSize {
		return fmt.Errorf("config: palette size %d out of range [1, %d]", c.Cascade.PaletteSize, core.MaxPaletteSize)
	}
	return nil
}

// EngineParams converts the config into engine parameters for a run with
// the given seed.
func (c Config) EngineParams(seed int64) engine.Params {
	return engine.Params{
		GridSize:        c.Grid.Size,
		BasePeriod:      time.Duration(c.Speed.BaseMs) * time.Millisecond,
		PeriodDecrement: time.Duration(c.Speed.DecrementMs) * time.Millisecond,
		MinPeriod:       time.Duration(c.Speed.MinMs) * time.Millisecond,
		CascadePeriod:   time.Duration(c.Cascade.PeriodMs) * time.Millisecond,
		PaletteSize:     c.Cascade.PaletteSize,
		SpawnAttempts:   c.Spawner.MaxAttempts,
		Seed:            seed,
	}
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name from the command line.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q", name)
	}
}

// ApplyPreset adjusts the speed progression for a difficulty preset.
// "normal" leaves the loaded config untouched; "fixed" disables the
// score-driven speedup entirely.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Speed.BaseMs = 200
		cfg.Speed.DecrementMs = 5
		cfg.Speed.MinMs = 90
	case DifficultyHard:
		cfg.Speed.BaseMs = 110
		cfg.Speed.DecrementMs = 15
		cfg.Speed.MinMs = 35
	case DifficultyFixed:
		cfg.Speed.DecrementMs = 0
	}
}
