// Package darts implements the scorekeeping engine for dart games.
//
// Every exported transition takes a GameState by value and returns a new
// GameState. Inputs are never mutated, so a caller can keep the previous
// value around (for display, persistence or comparison) without copying it.
// The package has no UI or storage dependencies.
package darts

import (
	"fmt"
	"strings"
)

// Mode identifies which rule set a game is played under.
type Mode string

const (
	ModeCountdown Mode = "countdown"
	ModeHighLow   Mode = "high-low"
	ModeRounds    Mode = "rounds"
)

// Modes returns all supported modes in display order.
func Modes() []Mode {
	return []Mode{ModeCountdown, ModeHighLow, ModeRounds}
}

// Valid reports whether m is a known mode.
func (m Mode) Valid() bool {
	switch m {
	case ModeCountdown, ModeHighLow, ModeRounds:
		return true
	}
	return false
}

// Title returns a human-readable name for the mode.
func (m Mode) Title() string {
	switch m {
	case ModeCountdown:
		return "Countdown"
	case ModeHighLow:
		return "High-Low"
	case ModeRounds:
		return "Rounds"
	default:
		return string(m)
	}
}

// ParseMode converts user input to a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "countdown", "x01":
		return ModeCountdown, nil
	case "high-low", "highlow", "hilo":
		return ModeHighLow, nil
	case "rounds":
		return ModeRounds, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidMode, s)
}

// Direction is the side of the target a high-low throw has to land on.
type Direction string

const (
	DirectionHigher Direction = "higher"
	DirectionLower  Direction = "lower"
)

// Valid reports whether d is a known direction.
func (d Direction) Valid() bool {
	return d == DirectionHigher || d == DirectionLower
}

// Opposite returns the other direction.
func (d Direction) Opposite() Direction {
	if d == DirectionHigher {
		return DirectionLower
	}
	return DirectionHigher
}

// Game limits and defaults.
const (
	MinPlayers    = 2
	MaxPlayers    = 8
	MaxNameLength = 20

	MinThrow = 0
	MaxThrow = 180

	DefaultStartingScore = 501
	DefaultStartingLives = 5
	DefaultTotalRounds   = 10

	// HighLowStartScore is every high-low player's score before their first
	// throw, and the default challenge target.
	HighLowStartScore = 40
)

// ScoreEntry records a single throw in a player's history.
type ScoreEntry struct {
	Score         int `json:"score"`
	PreviousScore int `json:"previousScore"`
	// Timestamp is wall-clock time in Unix milliseconds.
	Timestamp int64 `json:"timestamp"`
	// Seq is strictly increasing across all players of a game and orders
	// entries when timestamps collide.
	Seq        int `json:"seq"`
	TurnNumber int `json:"turnNumber"`

	// Rounds
	RoundNumber int `json:"roundNumber,omitempty"`

	// High-low
	ChallengeDirection Direction `json:"challengeDirection,omitempty"`
	ChallengeTarget    *int      `json:"challengeTarget,omitempty"`
	ChallengerID       string    `json:"challengerId,omitempty"`
	PassedChallenge    *bool     `json:"passedChallenge,omitempty"`
	LivesBefore        *int      `json:"livesBefore,omitempty"`
	LivesAfter         *int      `json:"livesAfter,omitempty"`
}

// Player is a participant. Which score fields are meaningful depends on the
// game mode; the others stay zero.
type Player struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	IsWinner     bool         `json:"isWinner"`
	ScoreHistory []ScoreEntry `json:"scoreHistory"`

	// Countdown: remaining points. High-low: last thrown value.
	Score          int `json:"score,omitempty"`
	TurnStartScore int `json:"turnStartScore,omitempty"`

	// High-low
	Lives int `json:"lives,omitempty"`

	// Rounds
	TotalScore        int `json:"totalScore,omitempty"`
	CurrentRoundScore int `json:"currentRoundScore,omitempty"`
	RoundsCompleted   int `json:"roundsCompleted,omitempty"`
}

// LastEntry returns the player's most recent history entry.
func (p Player) LastEntry() (ScoreEntry, bool) {
	if len(p.ScoreHistory) == 0 {
		return ScoreEntry{}, false
	}
	return p.ScoreHistory[len(p.ScoreHistory)-1], true
}

// Challenge is the pending high-low target for the next throw.
type Challenge struct {
	PlayerID    string    `json:"playerId"`
	Direction   Direction `json:"direction"`
	TargetScore int       `json:"targetScore"`
}

// Passed reports whether thrown satisfies the challenge.
func (c Challenge) Passed(thrown int) bool {
	if c.Direction == DirectionHigher {
		return thrown > c.TargetScore
	}
	return thrown < c.TargetScore
}

// GameState is the complete, serializable state of one game.
type GameState struct {
	Mode               Mode     `json:"mode"`
	Players            []Player `json:"players"`
	CurrentPlayerIndex int      `json:"currentPlayerIndex"`
	GameFinished       bool     `json:"gameFinished"`
	WinnerID           string   `json:"winnerId,omitempty"`
	// LastThrowWasBust is set only by the transition that produced a bust.
	LastThrowWasBust bool `json:"lastThrowWasBust,omitempty"`

	// Countdown
	StartingScore int `json:"startingScore,omitempty"`

	// High-low
	StartingLives    int        `json:"startingLives,omitempty"`
	HighLowChallenge *Challenge `json:"highLowChallenge,omitempty"`

	// Rounds
	TotalRounds  int `json:"totalRounds,omitempty"`
	CurrentRound int `json:"currentRound,omitempty"`
}

// Clone returns a deep copy of s.
func (s GameState) Clone() GameState {
	c := s
	if s.Players != nil {
		c.Players = make([]Player, len(s.Players))
		for i, p := range s.Players {
			c.Players[i] = p.clone()
		}
	}
	if s.HighLowChallenge != nil {
		ch := *s.HighLowChallenge
		c.HighLowChallenge = &ch
	}
	return c
}

func (p Player) clone() Player {
	c := p
	if p.ScoreHistory != nil {
		c.ScoreHistory = make([]ScoreEntry, len(p.ScoreHistory))
		for i, e := range p.ScoreHistory {
			c.ScoreHistory[i] = e.clone()
		}
	}
	return c
}

func (e ScoreEntry) clone() ScoreEntry {
	c := e
	c.ChallengeTarget = cloneInt(e.ChallengeTarget)
	c.LivesBefore = cloneInt(e.LivesBefore)
	c.LivesAfter = cloneInt(e.LivesAfter)
	if e.PassedChallenge != nil {
		v := *e.PassedChallenge
		c.PassedChallenge = &v
	}
	return c
}

func cloneInt(p *int) *int {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func intPtr(v int) *int    { return &v }
func boolPtr(v bool) *bool { return &v }

// PlayerIndex returns the index of the player with the given id, or -1.
func (s GameState) PlayerIndex(id string) int {
	for i, p := range s.Players {
		if p.ID == id {
			return i
		}
	}
	return -1
}

// CurrentPlayer returns the player whose turn it is.
func (s GameState) CurrentPlayer() (Player, bool) {
	if s.CurrentPlayerIndex < 0 || s.CurrentPlayerIndex >= len(s.Players) {
		return Player{}, false
	}
	return s.Players[s.CurrentPlayerIndex], true
}

// Winner returns the winning player once the game is finished.
func (s GameState) Winner() (Player, bool) {
	if !s.GameFinished || s.WinnerID == "" {
		return Player{}, false
	}
	i := s.PlayerIndex(s.WinnerID)
	if i < 0 {
		return Player{}, false
	}
	return s.Players[i], true
}

// AlivePlayers returns the number of players with lives remaining.
func (s GameState) AlivePlayers() int {
	n := 0
	for _, p := range s.Players {
		if p.Lives > 0 {
			n++
		}
	}
	return n
}

// Leader returns the index of the player with the highest total score in a
// rounds game. Ties go to the earlier player.
func (s GameState) Leader() int {
	best := -1
	for i, p := range s.Players {
		if best < 0 || p.TotalScore > s.Players[best].TotalScore {
			best = i
		}
	}
	return best
}

// TurnCount returns the number of history entries across all players.
func (s GameState) TurnCount() int {
	n := 0
	for _, p := range s.Players {
		n += len(p.ScoreHistory)
	}
	return n
}

// lastEntry returns the globally most recent history entry and the index of
// the player owning it.
func (s GameState) lastEntry() (ScoreEntry, int, bool) {
	var (
		latest ScoreEntry
		owner  = -1
	)
	for i, p := range s.Players {
		e, ok := p.LastEntry()
		if !ok {
			continue
		}
		if owner < 0 || newer(e, latest) || (!newer(latest, e) && i > owner) {
			latest = e
			owner = i
		}
	}
	return latest, owner, owner >= 0
}

// newer reports whether a was recorded after b.
func newer(a, b ScoreEntry) bool {
	if a.Seq != b.Seq {
		return a.Seq > b.Seq
	}
	return a.Timestamp > b.Timestamp
}

// nextSeq returns the sequence number for a new history entry.
func (s GameState) nextSeq() int {
	if e, _, ok := s.lastEntry(); ok {
		return e.Seq + 1
	}
	return 1
}
