package darts

// NextPlayer advances the turn. High-low skips eliminated players; countdown
// snapshots the incoming player's score as the bust-reversion baseline.
// A finished game is returned unchanged.
func NextPlayer(s GameState) GameState {
	if s.GameFinished || len(s.Players) == 0 {
		return s
	}

	next := s.Clone()
	n := len(next.Players)

	switch next.Mode {
	case ModeCountdown:
		next.CurrentPlayerIndex = (next.CurrentPlayerIndex + 1) % n
		p := &next.Players[next.CurrentPlayerIndex]
		p.TurnStartScore = p.Score
	case ModeHighLow:
		candidate := (next.CurrentPlayerIndex + 1) % n
		idx := candidate
		// Bounded to one full cycle in case everyone is out.
		for i := 0; i < n; i++ {
			if next.Players[idx].Lives > 0 {
				break
			}
			idx = (idx + 1) % n
		}
		if next.Players[idx].Lives <= 0 {
			idx = candidate
		}
		next.CurrentPlayerIndex = idx
	case ModeRounds:
		next.CurrentPlayerIndex = (next.CurrentPlayerIndex + 1) % n
	}

	return next
}

// StartGame prepares the first turn. For countdown it sets the current
// player's turn-start score; other modes are returned unchanged.
func StartGame(s GameState) GameState {
	if s.Mode != ModeCountdown {
		return s
	}
	if _, ok := s.CurrentPlayer(); !ok {
		return s
	}
	next := s.Clone()
	p := &next.Players[next.CurrentPlayerIndex]
	p.TurnStartScore = p.Score
	return next
}
