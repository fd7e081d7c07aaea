package darts

// UndoLastScore reverts the most recent throw in the game, whoever made it,
// and hands the turn back to that player. A game with no throws is returned
// unchanged. Undoing a winning throw reopens the game.
//
// Throws are undone strictly in reverse order, one call at a time.
func UndoLastScore(s GameState) GameState {
	entry, idx, ok := s.lastEntry()
	if !ok {
		return s
	}

	next := s.Clone()
	p := &next.Players[idx]
	p.ScoreHistory = p.ScoreHistory[:len(p.ScoreHistory)-1]

	switch next.Mode {
	case ModeCountdown:
		p.Score = entry.PreviousScore
		p.TurnStartScore = entry.PreviousScore
	case ModeHighLow:
		p.Score = entry.PreviousScore
		if entry.LivesBefore != nil && entry.LivesAfter != nil && *entry.LivesBefore != *entry.LivesAfter {
			p.Lives = *entry.LivesBefore
		}
		if entry.ChallengeDirection.Valid() && entry.ChallengeTarget != nil {
			next.HighLowChallenge = &Challenge{
				PlayerID:    p.ID,
				Direction:   entry.ChallengeDirection,
				TargetScore: *entry.ChallengeTarget,
			}
		}
	case ModeRounds:
		p.TotalScore -= entry.Score
		p.CurrentRoundScore = entry.PreviousScore
		if entry.RoundNumber > 0 && entry.RoundNumber < next.CurrentRound {
			rewindRound(&next, entry.RoundNumber)
		}
	}

	recomputeOutcome(&next)
	next.CurrentPlayerIndex = idx
	next.LastThrowWasBust = false
	return next
}

// rewindRound reopens a round whose completing throw has just been removed.
func rewindRound(s *GameState, round int) {
	s.CurrentRound = round
	for i := range s.Players {
		p := &s.Players[i]
		if p.RoundsCompleted > 0 {
			p.RoundsCompleted--
		}
		if sum := roundScore(*p, round); sum > 0 {
			p.CurrentRoundScore = sum
		} else {
			p.CurrentRoundScore = 0
		}
	}
}
