package darts

import "errors"

// Errors returned by the engine. Callers match them with errors.Is; the
// returned errors wrap these with the offending value.
var (
	ErrPlayerNotFound   = errors.New("darts: player not found")
	ErrInvalidScore     = errors.New("darts: invalid score")
	ErrInvalidMode      = errors.New("darts: invalid mode")
	ErrNoChallengeSet   = errors.New("darts: no challenge set")
	ErrWrongPlayer      = errors.New("darts: wrong player")
	ErrInvalidDirection = errors.New("darts: invalid challenge direction")
	ErrGameFinished     = errors.New("darts: game already finished")
	ErrTooFewPlayers    = errors.New("darts: not enough players")
	ErrTooManyPlayers   = errors.New("darts: too many players")
	ErrInvalidName      = errors.New("darts: invalid player name")
	ErrInvalidConfig    = errors.New("darts: invalid game configuration")
)
