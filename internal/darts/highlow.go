package darts

import "fmt"

// SetHighLowChallenge sets the target the given player must beat with their
// next throw, replacing any pending challenge.
func SetHighLowChallenge(s GameState, playerID string, direction Direction, targetScore int) (GameState, error) {
	if s.Mode != ModeHighLow {
		return GameState{}, fmt.Errorf("%w: challenge in %s game", ErrInvalidMode, s.Mode)
	}
	if !direction.Valid() {
		return GameState{}, fmt.Errorf("%w: %q", ErrInvalidDirection, direction)
	}
	if err := validateThrow(targetScore); err != nil {
		return GameState{}, err
	}
	idx := s.PlayerIndex(playerID)
	if idx < 0 {
		return GameState{}, fmt.Errorf("%w: %q", ErrPlayerNotFound, playerID)
	}
	if s.GameFinished {
		return GameState{}, ErrGameFinished
	}
	if s.Players[idx].Lives <= 0 {
		return GameState{}, fmt.Errorf("%w: %s is eliminated", ErrWrongPlayer, s.Players[idx].Name)
	}

	next := s.Clone()
	next.HighLowChallenge = &Challenge{
		PlayerID:    playerID,
		Direction:   direction,
		TargetScore: targetScore,
	}
	return next, nil
}

// DefaultChallengeTarget returns the most recently thrown value in the game,
// or HighLowStartScore before the first throw.
func DefaultChallengeTarget(s GameState) int {
	if e, _, ok := s.lastEntry(); ok {
		return e.Score
	}
	return HighLowStartScore
}

// ProcessHighLowTurn resolves the pending challenge with the thrown value.
// The player's score becomes the thrown value; failing the challenge costs a
// life. The challenge is cleared and the turn passes to the next player who
// still has lives. When only one player has lives left, that player wins.
func ProcessHighLowTurn(s GameState, playerID string, thrown int) (GameState, error) {
	if s.Mode != ModeHighLow {
		return GameState{}, fmt.Errorf("%w: high-low throw in %s game", ErrInvalidMode, s.Mode)
	}
	ch := s.HighLowChallenge
	if ch == nil {
		return GameState{}, ErrNoChallengeSet
	}
	if ch.PlayerID != playerID {
		return GameState{}, fmt.Errorf("%w: challenge is for %q, not %q", ErrWrongPlayer, ch.PlayerID, playerID)
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
	passed := ch.Passed(thrown)
	livesBefore := p.Lives

	entry := ScoreEntry{
		Score:              thrown,
		PreviousScore:      p.Score,
		Timestamp:          nowMillis(),
		Seq:                s.nextSeq(),
		TurnNumber:         len(p.ScoreHistory) + 1,
		ChallengeDirection: ch.Direction,
		ChallengeTarget:    intPtr(ch.TargetScore),
		ChallengerID:       ch.PlayerID,
		PassedChallenge:    boolPtr(passed),
		LivesBefore:        intPtr(livesBefore),
	}

	p.Score = thrown
	if !passed {
		if p.Lives > 0 {
			p.Lives--
		}
		p.IsWinner = false
	}
	entry.LivesAfter = intPtr(p.Lives)
	p.ScoreHistory = append(p.ScoreHistory, entry)

	next.LastThrowWasBust = !passed
	next.HighLowChallenge = nil
	recomputeOutcome(&next)
	if next.GameFinished {
		next.CurrentPlayerIndex = next.PlayerIndex(next.WinnerID)
		return next, nil
	}

	next.CurrentPlayerIndex = idx
	return NextPlayer(next), nil
}
