// Package config provides YAML-based configuration loading and countdown
// presets for the darts scorekeeper.
package config

import (
	"fmt"

	"github.com/vovakirdan/tui-darts/internal/darts"
)

// Config contains all user-tunable settings.
type Config struct {
	Countdown CountdownConfig `yaml:"countdown"`
	HighLow   HighLowConfig   `yaml:"high_low"`
	Rounds    RoundsConfig    `yaml:"rounds"`
	Players   PlayersConfig   `yaml:"players"`
	Storage   StorageConfig   `yaml:"storage"`
	Log       LogConfig       `yaml:"log"`
}

// CountdownConfig defines countdown defaults.
type CountdownConfig struct {
	StartingScore int `yaml:"starting_score"`
}

// HighLowConfig defines high-low defaults.
type HighLowConfig struct {
	StartingLives int `yaml:"starting_lives"`
}

// RoundsConfig defines rounds defaults.
type RoundsConfig struct {
	TotalRounds int `yaml:"total_rounds"`
}

// PlayersConfig bounds the player list on the setup screen.
type PlayersConfig struct {
	Min           int `yaml:"min"`
	Max           int `yaml:"max"`
	MaxNameLength int `yaml:"max_name_length"`
}

// StorageConfig points at the SQLite database.
type StorageConfig struct {
	Path string `yaml:"path"` // Supports a leading ~
}

// LogConfig controls the log level and, for interactive commands, the file
// logs are written to.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`
}

// Validate checks that every value is usable.
func (c Config) Validate() error {
	if c.Countdown.StartingScore < 2 {
		return fmt.Errorf("config: countdown.starting_score must be at least 2, got %d", c.Countdown.StartingScore)
	}
	if c.HighLow.StartingLives < 1 {
		return fmt.Errorf("config: high_low.starting_lives must be positive, got %d", c.HighLow.StartingLives)
	}
	if c.Rounds.TotalRounds < 1 {
		return fmt.Errorf("config: rounds.total_rounds must be positive, got %d", c.Rounds.TotalRounds)
	}
	if c.Players.Min < darts.MinPlayers || c.Players.Max > darts.MaxPlayers || c.Players.Min > c.Players.Max {
		return fmt.Errorf("config: players.min/max must lie within %d-%d, got %d-%d",
			darts.MinPlayers, darts.MaxPlayers, c.Players.Min, c.Players.Max)
	}
	if c.Players.MaxNameLength < 1 || c.Players.MaxNameLength > darts.MaxNameLength {
		return fmt.Errorf("config: players.max_name_length must lie within 1-%d, got %d",
			darts.MaxNameLength, c.Players.MaxNameLength)
	}
	return nil
}

// SettingFor returns the configured value of a mode's single setting.
func (c Config) SettingFor(mode darts.Mode) int {
	switch mode {
	case darts.ModeCountdown:
		return c.Countdown.StartingScore
	case darts.ModeHighLow:
		return c.HighLow.StartingLives
	case darts.ModeRounds:
		return c.Rounds.TotalRounds
	}
	return 0
}
