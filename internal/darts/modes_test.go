package darts

import (
	"testing"

	"github.com/vovakirdan/tui-darts/internal/registry"
)

func TestModesRegistered(t *testing.T) {
	list := registry.List()
	if len(list) != len(Modes()) {
		t.Fatalf("registry has %d modes, want %d", len(list), len(Modes()))
	}
	for i, m := range Modes() {
		if list[i].ID != string(m) {
			t.Errorf("mode %d = %q, want %q", i, list[i].ID, m)
		}
		if list[i].Setting.Default <= 0 {
			t.Errorf("mode %q has no default setting", m)
		}
	}
}

func TestOptionsForRoundTrip(t *testing.T) {
	for _, m := range Modes() {
		s, err := NewGame([]string{"A", "B"}, OptionsFor(m, 7))
		if err != nil {
			t.Fatalf("NewGame(%s) failed: %v", m, err)
		}
		if got := SettingOf(s); got != 7 {
			t.Errorf("SettingOf(%s) = %d, want 7", m, got)
		}
	}
}

func TestSettingClamp(t *testing.T) {
	info, err := registry.Lookup(string(ModeHighLow))
	if err != nil {
		t.Fatalf("Lookup() failed: %v", err)
	}
	if got := info.Setting.Clamp(0); got != info.Setting.Min {
		t.Errorf("Clamp(0) = %d, want %d", got, info.Setting.Min)
	}
	if got := info.Setting.Clamp(1000); got != info.Setting.Max {
		t.Errorf("Clamp(1000) = %d, want %d", got, info.Setting.Max)
	}
	if _, err := registry.Lookup("cricket"); err == nil {
		t.Error("Lookup(cricket) should fail")
	}
}
