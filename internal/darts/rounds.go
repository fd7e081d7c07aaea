package darts

import "fmt"

// UpdateRoundsPlayerScore adds a throw to the player's totals for the current
// round. Once every player has thrown in the round the next round begins
// with the first player; after the last round the highest total wins.
func UpdateRoundsPlayerScore(s GameState, playerID string, thrown int) (GameState, error) {
	if s.Mode != ModeRounds {
		return GameState{}, fmt.Errorf("%w: rounds throw in %s game", ErrInvalidMode, s.Mode)
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

	p.ScoreHistory = append(p.ScoreHistory, ScoreEntry{
		Score:         thrown,
		PreviousScore: p.CurrentRoundScore,
		Timestamp:     nowMillis(),
		Seq:           s.nextSeq(),
		TurnNumber:    len(p.ScoreHistory) + 1,
		RoundNumber:   next.CurrentRound,
	})
	p.CurrentRoundScore += thrown
	p.TotalScore += thrown

	if !roundComplete(next, next.CurrentRound) {
		next.CurrentPlayerIndex = (idx + 1) % len(next.Players)
		return next, nil
	}

	next.CurrentRound++
	for i := range next.Players {
		next.Players[i].CurrentRoundScore = 0
		next.Players[i].RoundsCompleted++
	}
	recomputeOutcome(&next)
	if !next.GameFinished {
		next.CurrentPlayerIndex = 0
	}
	return next, nil
}

// roundComplete reports whether every player has thrown in the round.
func roundComplete(s GameState, round int) bool {
	for _, p := range s.Players {
		if roundScore(p, round) < 0 {
			return false
		}
	}
	return true
}

// roundScore sums a player's throws in the round, or returns -1 if the
// player has not thrown in it.
func roundScore(p Player, round int) int {
	sum, found := 0, false
	for _, e := range p.ScoreHistory {
		if e.RoundNumber == round {
			sum += e.Score
			found = true
		}
	}
	if !found {
		return -1
	}
	return sum
}
