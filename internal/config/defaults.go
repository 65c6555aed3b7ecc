package config

import (
	_ "embed"
)

//go:embed defaults/engine.yaml
var defaultEngineYAML []byte

// DefaultConfig returns the built-in simulation configuration.
func DefaultConfig() Config {
	return Config{
		Grid: GridConfig{
			Size: 20,
		},
		Speed: SpeedConfig{
			BaseMs:      150,
			DecrementMs: 10,
			MinMs:       50,
		},
		Cascade: CascadeConfig{
			PeriodMs:    50,
			PaletteSize: 7,
		},
		Spawner: SpawnerConfig{
			MaxAttempts: 64,
		},
	}
}

// DefaultYAML returns the embedded default YAML, for writing out a
// starter config file.
func DefaultYAML() []byte {
	return defaultEngineYAML
}
