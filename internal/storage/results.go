package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/vovakirdan/tui-darts/internal/darts"
)

// ErrGameNotFinished is returned when a result is requested for a game that
// is still in progress.
var ErrGameNotFinished = errors.New("storage: game is not finished")

// Result is the record of one finished game.
type Result struct {
	ID          int64
	ResultID    string
	Mode        darts.Mode
	WinnerName  string
	WinnerScore int
	PlayerCount int
	Turns       int
	Standings   []darts.Standing
	Duration    int // Duration in seconds
	CreatedAt   time.Time
}

// Leader is a player's win count.
type Leader struct {
	Name string
	Wins int
}

// ResultFromGame builds a Result for a finished game. The duration spans the
// first and last throws.
func ResultFromGame(s darts.GameState) (Result, error) {
	winner, ok := s.Winner()
	if !ok {
		return Result{}, ErrGameNotFinished
	}

	var first, last int64
	for _, p := range s.Players {
		for _, e := range p.ScoreHistory {
			if first == 0 || e.Timestamp < first {
				first = e.Timestamp
			}
			if e.Timestamp > last {
				last = e.Timestamp
			}
		}
	}

	return Result{
		ResultID:    uuid.NewString(),
		Mode:        s.Mode,
		WinnerName:  winner.Name,
		WinnerScore: darts.StandingValue(s.Mode, winner),
		PlayerCount: len(s.Players),
		Turns:       s.TurnCount(),
		Standings:   darts.Standings(s),
		Duration:    int((last - first) / 1000),
	}, nil
}

// RecordResult stores a finished game. A Result without a ResultID gets a
// fresh one. Returns the ID of the inserted record.
func (s *Store) RecordResult(r Result) (int64, error) {
	if r.ResultID == "" {
		r.ResultID = uuid.NewString()
	}
	standings, err := json.Marshal(r.Standings)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot encode standings: %w", err)
	}

	res, err := s.db.Exec(
		`INSERT INTO results
		 (result_id, mode, winner_name, winner_score, player_count, turns, standings, duration_secs)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ResultID,
		string(r.Mode),
		r.WinnerName,
		r.WinnerScore,
		r.PlayerCount,
		r.Turns,
		string(standings),
		r.Duration,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save result: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentResults retrieves the most recent results. An empty mode matches
// every mode.
func (s *Store) RecentResults(mode darts.Mode, limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, result_id, mode, winner_name, winner_score, player_count,
		        turns, standings, duration_secs, created_at
		 FROM results
		 WHERE ? = '' OR mode = ?
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		string(mode), string(mode), limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query results: %w", err)
	}
	defer rows.Close()

	var results []Result
	for rows.Next() {
		var (
			r         Result
			modeText  string
			standings string
			createdAt any
		)
		if err := rows.Scan(
			&r.ID,
			&r.ResultID,
			&modeText,
			&r.WinnerName,
			&r.WinnerScore,
			&r.PlayerCount,
			&r.Turns,
			&standings,
			&r.Duration,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Mode = darts.Mode(modeText)
		r.CreatedAt = scanTime(createdAt)
		if err := json.Unmarshal([]byte(standings), &r.Standings); err != nil {
			return nil, fmt.Errorf("storage: cannot decode standings for %s: %w", r.ResultID, err)
		}
		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return results, nil
}

// WinLeaders returns the players with the most wins, best first. An empty
// mode counts every mode.
func (s *Store) WinLeaders(mode darts.Mode, limit int) ([]Leader, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT winner_name, COUNT(*) AS wins
		 FROM results
		 WHERE ? = '' OR mode = ?
		 GROUP BY winner_name
		 ORDER BY wins DESC, winner_name
		 LIMIT ?`,
		string(mode), string(mode), limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query leaders: %w", err)
	}
	defer rows.Close()

	var leaders []Leader
	for rows.Next() {
		var l Leader
		if err := rows.Scan(&l.Name, &l.Wins); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		leaders = append(leaders, l)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return leaders, nil
}

// ModeStats contains aggregated statistics for one mode.
type ModeStats struct {
	Mode        darts.Mode
	GamesCount  int
	AvgTurns    float64
	AvgDuration float64
	LastPlayed  time.Time
}

// GetModeStats retrieves aggregated statistics for every mode that has been
// played, keyed by mode.
func (s *Store) GetModeStats() (map[darts.Mode]*ModeStats, error) {
	rows, err := s.db.Query(
		`SELECT mode, COUNT(*), AVG(turns), AVG(duration_secs), MAX(created_at)
		 FROM results
		 GROUP BY mode`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get mode stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[darts.Mode]*ModeStats)
	for rows.Next() {
		var (
			st         ModeStats
			mode       string
			lastPlayed any
		)
		if err := rows.Scan(&mode, &st.GamesCount, &st.AvgTurns, &st.AvgDuration, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		st.Mode = darts.Mode(mode)
		st.LastPlayed = scanTime(lastPlayed)
		stats[st.Mode] = &st
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}
