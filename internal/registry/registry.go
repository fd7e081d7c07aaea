// Package registry provides a global catalogue of game modes.
// Modes register themselves in init() functions, allowing the CLI and the
// setup screen to list modes and their settings without hardcoding them.
package registry

import (
	"fmt"
	"sort"
	"sync"
)

// Setting describes the single numeric option a mode is configured with
// (starting score, lives, number of rounds).
type Setting struct {
	Label   string
	Default int
	Min     int
	Max     int
}

// Clamp restricts v to the setting's bounds.
func (s Setting) Clamp(v int) int {
	if v < s.Min {
		return s.Min
	}
	if v > s.Max {
		return s.Max
	}
	return v
}

// ModeInfo contains metadata about a registered mode.
type ModeInfo struct {
	ID      string
	Title   string
	Summary string
	Order   int // Display position, lowest first
	Setting Setting
}

var (
	modes = make(map[string]ModeInfo)
	mu    sync.RWMutex
)

// Register adds a mode to the registry.
// Typically called from an init() function.
// Panics if a mode with the same ID is already registered.
func Register(info ModeInfo) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := modes[info.ID]; exists {
		panic(fmt.Sprintf("registry: mode %q already registered", info.ID))
	}
	modes[info.ID] = info
}

// List returns all registered modes in display order.
func List() []ModeInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]ModeInfo, 0, len(modes))
	for _, m := range modes {
		result = append(result, m)
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Order != result[j].Order {
			return result[i].Order < result[j].Order
		}
		return result[i].ID < result[j].ID
	})

	return result
}

// Lookup returns the mode registered under id.
func Lookup(id string) (ModeInfo, error) {
	mu.RLock()
	defer mu.RUnlock()

	m, ok := modes[id]
	if !ok {
		return ModeInfo{}, fmt.Errorf("registry: unknown mode %q", id)
	}
	return m, nil
}

// Exists checks if a mode with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := modes[id]
	return ok
}
