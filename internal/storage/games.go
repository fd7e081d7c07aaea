package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-darts/internal/darts"
)

// DefaultSlot is the save slot used by local play.
const DefaultSlot = "local"

// SavedGame describes a stored game without decoding its state.
type SavedGame struct {
	Slot      string
	Mode      darts.Mode
	Revision  int64
	Finished  bool
	Players   []string
	UpdatedAt time.Time
}

// SaveGame stores state under slot. Saves carry a revision; a save whose
// revision is lower than the stored one is ignored and reported as false.
func (s *Store) SaveGame(slot string, revision int64, state darts.GameState) (bool, error) {
	data, err := json.Marshal(state)
	if err != nil {
		return false, fmt.Errorf("storage: cannot encode game: %w", err)
	}

	res, err := s.db.Exec(
		`INSERT INTO saved_games (slot, mode, revision, state, updated_at)
		 VALUES (?, ?, ?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(slot) DO UPDATE SET
		     mode = excluded.mode,
		     revision = excluded.revision,
		     state = excluded.state,
		     updated_at = excluded.updated_at
		 WHERE excluded.revision >= saved_games.revision`,
		slot, string(state.Mode), revision, string(data),
	)
	if err != nil {
		return false, fmt.Errorf("storage: cannot save game: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("storage: cannot get affected rows: %w", err)
	}
	return n > 0, nil
}

// LoadGame returns the game stored under slot, or nil if there is none.
func (s *Store) LoadGame(slot string) (*darts.GameState, error) {
	state, _, err := s.LoadGameRevision(slot)
	return state, err
}

// LoadGameRevision is LoadGame that also returns the stored revision.
func (s *Store) LoadGameRevision(slot string) (*darts.GameState, int64, error) {
	var (
		data     string
		revision int64
	)
	err := s.db.QueryRow(
		"SELECT state, revision FROM saved_games WHERE slot = ?",
		slot,
	).Scan(&data, &revision)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, 0, nil
	}
	if err != nil {
		return nil, 0, fmt.Errorf("storage: cannot query saved game: %w", err)
	}

	var state darts.GameState
	if err := json.Unmarshal([]byte(data), &state); err != nil {
		return nil, 0, fmt.Errorf("storage: cannot decode saved game %s: %w", slot, err)
	}
	return &state, revision, nil
}

// DeleteGame removes the game stored under slot.
func (s *Store) DeleteGame(slot string) error {
	_, err := s.db.Exec("DELETE FROM saved_games WHERE slot = ?", slot)
	if err != nil {
		return fmt.Errorf("storage: cannot delete saved game: %w", err)
	}
	return nil
}

// ListSavedGames returns every stored game, most recently updated first.
func (s *Store) ListSavedGames() ([]SavedGame, error) {
	rows, err := s.db.Query(
		`SELECT slot, mode, revision, state, updated_at
		 FROM saved_games
		 ORDER BY updated_at DESC, slot`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query saved games: %w", err)
	}
	defer rows.Close()

	var games []SavedGame
	for rows.Next() {
		var (
			g         SavedGame
			mode      string
			data      string
			updatedAt any
		)
		if err := rows.Scan(&g.Slot, &mode, &g.Revision, &data, &updatedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		g.Mode = darts.Mode(mode)
		g.UpdatedAt = scanTime(updatedAt)

		var state darts.GameState
		if err := json.Unmarshal([]byte(data), &state); err == nil {
			g.Finished = state.GameFinished
			for _, p := range state.Players {
				g.Players = append(g.Players, p.Name)
			}
		}
		games = append(games, g)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return games, nil
}
