package darts

// ResetOptions optionally overrides the configuration on reset. Zero fields
// keep the game's configured value.
type ResetOptions struct {
	StartingLives int
	StartingScore int
	TotalRounds   int
}

// ResetGame puts every player back to the mode's starting values and clears
// all history. Player ids, names, order and the mode are kept.
func ResetGame(s GameState, opts ResetOptions) GameState {
	next := s.Clone()

	startingScore := firstPositive(opts.StartingScore, s.StartingScore, DefaultStartingScore)
	startingLives := firstPositive(opts.StartingLives, s.StartingLives, DefaultStartingLives)
	totalRounds := firstPositive(opts.TotalRounds, s.TotalRounds, DefaultTotalRounds)

	for i := range next.Players {
		p := &next.Players[i]
		p.IsWinner = false
		p.ScoreHistory = []ScoreEntry{}

		switch next.Mode {
		case ModeCountdown:
			p.Score = startingScore
			p.TurnStartScore = startingScore
		case ModeHighLow:
			p.Score = HighLowStartScore
			p.TurnStartScore = HighLowStartScore
			p.Lives = startingLives
		case ModeRounds:
			p.TotalScore = 0
			p.CurrentRoundScore = 0
			p.RoundsCompleted = 0
		}
	}

	next.CurrentPlayerIndex = 0
	next.GameFinished = false
	next.WinnerID = ""
	next.LastThrowWasBust = false
	next.HighLowChallenge = nil

	switch next.Mode {
	case ModeCountdown:
		next.StartingScore = startingScore
	case ModeHighLow:
		next.StartingLives = startingLives
	case ModeRounds:
		next.TotalRounds = totalRounds
		next.CurrentRound = 1
	}

	return next
}

func firstPositive(values ...int) int {
	for _, v := range values {
		if v > 0 {
			return v
		}
	}
	return 0
}
