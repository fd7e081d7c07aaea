package config

import (
	"fmt"
	"strconv"
)

// CountdownPreset is a named countdown variant.
type CountdownPreset string

const (
	Preset301  CountdownPreset = "301"
	Preset501  CountdownPreset = "501"
	Preset701  CountdownPreset = "701"
	Preset1001 CountdownPreset = "1001"
)

// CountdownPresets returns the supported presets in ascending order.
func CountdownPresets() []CountdownPreset {
	return []CountdownPreset{Preset301, Preset501, Preset701, Preset1001}
}

// StartingScore returns the preset's starting score.
func (p CountdownPreset) StartingScore() (int, error) {
	for _, known := range CountdownPresets() {
		if p == known {
			return strconv.Atoi(string(p))
		}
	}
	return 0, fmt.Errorf("config: unknown countdown preset %q", string(p))
}

// ApplyCountdownPreset modifies the config based on a countdown preset.
// An empty preset leaves the config unchanged.
func ApplyCountdownPreset(cfg *Config, preset CountdownPreset) error {
	if preset == "" {
		return nil
	}
	score, err := preset.StartingScore()
	if err != nil {
		return err
	}
	cfg.Countdown.StartingScore = score
	return nil
}
