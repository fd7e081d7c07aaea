package darts

import "fmt"

// IsBust reports whether thrown is not allowed against the remaining score.
// Overshooting is a bust, and so is leaving exactly 1 since no double can
// finish it.
func IsBust(currentScore, thrown int) bool {
	if thrown > currentScore {
		return true
	}
	if currentScore-thrown < 0 {
		return true
	}
	return currentScore-thrown == 1
}

// UpdatePlayerScore applies a countdown throw.
//
// On a bust the throw is still recorded, the player's score reverts to the
// turn-start score and the same player throws again. Otherwise the score is
// reduced, a player reaching exactly zero wins, and the turn passes on.
func UpdatePlayerScore(s GameState, playerID string, thrown int) (GameState, error) {
	if s.Mode != ModeCountdown {
		return GameState{}, fmt.Errorf("%w: countdown throw in %s game", ErrInvalidMode, s.Mode)
	}
	idx := s.PlayerIndex(playerID)
	if idx < 0 {
		return GameState{}, fmt.Errorf("%w: %q", ErrPlayerNotFound, playerID)
	}
	if err := validateThrow(thrown); err != nil {
		return GameState{}, err
	}
	if s.GameFinished {
		return GameState{}, ErrGameFinished
	}

	next := s.Clone()
	p := &next.Players[idx]
	current := p.Score

	p.ScoreHistory = append(p.ScoreHistory, ScoreEntry{
		Score:         thrown,
		PreviousScore: current,
		Timestamp:     nowMillis(),
		Seq:           s.nextSeq(),
		TurnNumber:    len(p.ScoreHistory) + 1,
	})

	if IsBust(current, thrown) {
		p.Score = p.TurnStartScore
		next.LastThrowWasBust = true
		return next, nil
	}

	p.Score = current - thrown
	next.LastThrowWasBust = false
	recomputeOutcome(&next)
	if next.GameFinished {
		return next, nil
	}

	next.CurrentPlayerIndex = idx
	return NextPlayer(next), nil
}

func validateThrow(thrown int) error {
	if thrown < MinThrow || thrown > MaxThrow {
		return fmt.Errorf("%w: %d is outside %d-%d", ErrInvalidScore, thrown, MinThrow, MaxThrow)
	}
	return nil
}
