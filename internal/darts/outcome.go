package darts

import "fmt"

// Throw applies a thrown value for the player using the rules of the game's
// mode. High-low games need a challenge set first.
func Throw(s GameState, playerID string, thrown int) (GameState, error) {
	switch s.Mode {
	case ModeCountdown:
		return UpdatePlayerScore(s, playerID, thrown)
	case ModeHighLow:
		return ProcessHighLowTurn(s, playerID, thrown)
	case ModeRounds:
		return UpdateRoundsPlayerScore(s, playerID, thrown)
	}
	return GameState{}, fmt.Errorf("%w: %q", ErrInvalidMode, s.Mode)
}

// recomputeOutcome derives IsWinner, WinnerID and GameFinished from the
// scores alone.
func recomputeOutcome(s *GameState) {
	for i := range s.Players {
		s.Players[i].IsWinner = false
	}
	s.GameFinished = false
	s.WinnerID = ""

	winner := -1
	switch s.Mode {
	case ModeCountdown:
		for i, p := range s.Players {
			if p.Score == 0 {
				winner = i
				break
			}
		}
	case ModeHighLow:
		alive := -1
		for i, p := range s.Players {
			if p.Lives <= 0 {
				continue
			}
			if alive >= 0 {
				alive = -2
				break
			}
			alive = i
		}
		switch {
		case alive >= 0:
			winner = alive
		case alive == -1 && len(s.Players) > 0:
			// Nobody has lives left: the last player to lose one wins.
			if _, owner, ok := s.lastEntry(); ok {
				winner = owner
			}
		}
	case ModeRounds:
		if s.TotalRounds > 0 && s.CurrentRound > s.TotalRounds {
			winner = s.Leader()
		}
	}

	if winner < 0 {
		return
	}
	s.Players[winner].IsWinner = true
	s.WinnerID = s.Players[winner].ID
	s.GameFinished = true
}
