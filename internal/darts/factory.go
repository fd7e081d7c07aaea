package darts

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

// timeNow is the engine clock. Tests replace it for deterministic timestamps.
var timeNow = time.Now

func nowMillis() int64 {
	return timeNow().UnixMilli()
}

// Options configures a new game. Zero values select the defaults.
type Options struct {
	Mode          Mode
	StartingScore int // countdown
	StartingLives int // high-low
	TotalRounds   int // rounds
}

func (o Options) withDefaults() Options {
	if o.StartingScore == 0 {
		o.StartingScore = DefaultStartingScore
	}
	if o.StartingLives == 0 {
		o.StartingLives = DefaultStartingLives
	}
	if o.TotalRounds == 0 {
		o.TotalRounds = DefaultTotalRounds
	}
	return o
}

// NewPlayer creates a player for the given mode.
// High-low players always start at HighLowStartScore; startingScore only
// applies to countdown.
func NewPlayer(name string, startingScore int, mode Mode, lives int) Player {
	p := Player{
		ID:           uuid.NewString(),
		Name:         strings.TrimSpace(name),
		ScoreHistory: []ScoreEntry{},
	}

	switch mode {
	case ModeCountdown:
		p.Score = startingScore
		p.TurnStartScore = startingScore
	case ModeHighLow:
		p.Score = HighLowStartScore
		p.TurnStartScore = HighLowStartScore
		p.Lives = lives
	case ModeRounds:
		p.TotalScore = 0
		p.CurrentRoundScore = 0
		p.RoundsCompleted = 0
	}

	return p
}

// ValidateNames checks a list of player names against the player count and
// name length limits. A maxLen of zero uses MaxNameLength.
func ValidateNames(names []string, maxLen int) error {
	if maxLen <= 0 {
		maxLen = MaxNameLength
	}
	if len(names) < MinPlayers {
		return fmt.Errorf("%w: need at least %d, got %d", ErrTooFewPlayers, MinPlayers, len(names))
	}
	if len(names) > MaxPlayers {
		return fmt.Errorf("%w: at most %d, got %d", ErrTooManyPlayers, MaxPlayers, len(names))
	}
	for i, name := range names {
		trimmed := strings.TrimSpace(name)
		if trimmed == "" {
			return fmt.Errorf("%w: player %d has an empty name", ErrInvalidName, i+1)
		}
		if utf8.RuneCountInString(trimmed) > maxLen {
			return fmt.Errorf("%w: %q is longer than %d characters", ErrInvalidName, trimmed, maxLen)
		}
	}
	return nil
}

// NewGame creates a fresh game with one player per name, in order.
func NewGame(names []string, opts Options) (GameState, error) {
	if !opts.Mode.Valid() {
		return GameState{}, fmt.Errorf("%w: %q", ErrInvalidMode, opts.Mode)
	}
	if opts.StartingScore < 0 || opts.StartingLives < 0 || opts.TotalRounds < 0 {
		return GameState{}, fmt.Errorf("%w: values must be positive", ErrInvalidConfig)
	}
	if err := ValidateNames(names, MaxNameLength); err != nil {
		return GameState{}, err
	}
	opts = opts.withDefaults()

	s := GameState{
		Mode:               opts.Mode,
		Players:            make([]Player, 0, len(names)),
		CurrentPlayerIndex: 0,
	}
	for _, name := range names {
		s.Players = append(s.Players, NewPlayer(name, opts.StartingScore, opts.Mode, opts.StartingLives))
	}

	switch opts.Mode {
	case ModeCountdown:
		s.StartingScore = opts.StartingScore
	case ModeHighLow:
		s.StartingLives = opts.StartingLives
	case ModeRounds:
		s.TotalRounds = opts.TotalRounds
		s.CurrentRound = 1
	}

	return s, nil
}
