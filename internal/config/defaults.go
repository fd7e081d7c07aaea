package config

import (
	_ "embed"

	"github.com/vovakirdan/tui-darts/internal/darts"
)

//go:embed defaults/darts.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Countdown: CountdownConfig{
			StartingScore: darts.DefaultStartingScore,
		},
		HighLow: HighLowConfig{
			StartingLives: darts.DefaultStartingLives,
		},
		Rounds: RoundsConfig{
			TotalRounds: darts.DefaultTotalRounds,
		},
		Players: PlayersConfig{
			Min:           darts.MinPlayers,
			Max:           darts.MaxPlayers,
			MaxNameLength: darts.MaxNameLength,
		},
		Storage: StorageConfig{
			Path: "~/.darts/darts.db",
		},
		Log: LogConfig{
			Level: "info",
			File:  "~/.darts/darts.log",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
