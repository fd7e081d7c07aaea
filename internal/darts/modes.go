package darts

import "github.com/vovakirdan/tui-darts/internal/registry"

func init() {
	registry.Register(registry.ModeInfo{
		ID:      string(ModeCountdown),
		Title:   ModeCountdown.Title(),
		Summary: "Count down from the starting score to exactly zero. Overshooting or leaving 1 is a bust.",
		Order:   0,
		Setting: registry.Setting{Label: "Starting score", Default: DefaultStartingScore, Min: 2, Max: 10001},
	})
	registry.Register(registry.ModeInfo{
		ID:      string(ModeHighLow),
		Title:   ModeHighLow.Title(),
		Summary: "Call higher or lower than the last throw. Miss the call and lose a life; last player standing wins.",
		Order:   1,
		Setting: registry.Setting{Label: "Lives", Default: DefaultStartingLives, Min: 1, Max: 20},
	})
	registry.Register(registry.ModeInfo{
		ID:      string(ModeRounds),
		Title:   ModeRounds.Title(),
		Summary: "One throw per player per round. Highest total after the last round wins.",
		Order:   2,
		Setting: registry.Setting{Label: "Rounds", Default: DefaultTotalRounds, Min: 1, Max: 50},
	})
}

// OptionsFor builds game options for mode from the mode's single setting.
func OptionsFor(mode Mode, setting int) Options {
	opts := Options{Mode: mode}
	switch mode {
	case ModeCountdown:
		opts.StartingScore = setting
	case ModeHighLow:
		opts.StartingLives = setting
	case ModeRounds:
		opts.TotalRounds = setting
	}
	return opts
}

// SettingOf returns the value of a game's mode setting.
func SettingOf(s GameState) int {
	switch s.Mode {
	case ModeCountdown:
		return s.StartingScore
	case ModeHighLow:
		return s.StartingLives
	case ModeRounds:
		return s.TotalRounds
	}
	return 0
}
