package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-darts/internal/darts"
)

func TestEmbeddedDefaultsMatchBuiltin(t *testing.T) {
	cfg, err := parse(DefaultYAML())
	if err != nil {
		t.Fatalf("parse(embedded) failed: %v", err)
	}
	if cfg != Default() {
		t.Errorf("embedded defaults = %+v, want %+v", cfg, Default())
	}
}

func TestLoadCustomPartialFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "darts.yaml")
	data := []byte("countdown:\n  starting_score: 301\nrounds:\n  total_rounds: 3\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Countdown.StartingScore != 301 {
		t.Errorf("StartingScore = %d, want 301", cfg.Countdown.StartingScore)
	}
	if cfg.Rounds.TotalRounds != 3 {
		t.Errorf("TotalRounds = %d, want 3", cfg.Rounds.TotalRounds)
	}
	if cfg.HighLow.StartingLives != darts.DefaultStartingLives {
		t.Errorf("StartingLives = %d, want default %d", cfg.HighLow.StartingLives, darts.DefaultStartingLives)
	}
}

func TestLoadCustomErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load(missing) should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("players:\n  min: 1\n"), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("Load() should reject players.min below 2")
	}

	garbage := filepath.Join(dir, "garbage.yaml")
	if err := os.WriteFile(garbage, []byte("countdown: [not, a, map"), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	if _, err := Load(garbage); err == nil {
		t.Error("Load() should reject malformed YAML")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"starting score", func(c *Config) { c.Countdown.StartingScore = 1 }},
		{"lives", func(c *Config) { c.HighLow.StartingLives = 0 }},
		{"rounds", func(c *Config) { c.Rounds.TotalRounds = 0 }},
		{"max players", func(c *Config) { c.Players.Max = 9 }},
		{"min above max", func(c *Config) { c.Players.Min = 5; c.Players.Max = 4 }},
		{"name length", func(c *Config) { c.Players.MaxNameLength = 0 }},
	}

	if err := Default().Validate(); err != nil {
		t.Fatalf("Default().Validate() failed: %v", err)
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Validate() should fail")
			}
		})
	}
}

func TestApplyCountdownPreset(t *testing.T) {
	cfg := Default()
	if err := ApplyCountdownPreset(&cfg, Preset301); err != nil {
		t.Fatalf("ApplyCountdownPreset() failed: %v", err)
	}
	if cfg.SettingFor(darts.ModeCountdown) != 301 {
		t.Errorf("StartingScore = %d, want 301", cfg.Countdown.StartingScore)
	}

	if err := ApplyCountdownPreset(&cfg, ""); err != nil || cfg.Countdown.StartingScore != 301 {
		t.Errorf("empty preset changed config: %v", err)
	}
	if err := ApplyCountdownPreset(&cfg, "999"); err == nil {
		t.Error("unknown preset should fail")
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	got, err := ExpandHome("~/.darts/darts.db")
	if err != nil {
		t.Fatalf("ExpandHome() failed: %v", err)
	}
	if want := filepath.Join(home, ".darts", "darts.db"); got != want {
		t.Errorf("ExpandHome() = %q, want %q", got, want)
	}
	if got, _ := ExpandHome("/tmp/x.db"); got != "/tmp/x.db" {
		t.Errorf("ExpandHome(abs) = %q", got)
	}
}
