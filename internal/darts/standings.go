package darts

import "sort"

// Standing is one player's place in a game.
type Standing struct {
	PlayerID string `json:"playerId"`
	Name     string `json:"name"`
	// Value is the number the mode ranks by: remaining score for countdown,
	// lives for high-low and the running total for rounds.
	Value  int  `json:"value"`
	Winner bool `json:"winner,omitempty"`
}

// StandingValue returns the number p is ranked by in mode.
func StandingValue(mode Mode, p Player) int {
	switch mode {
	case ModeCountdown:
		return p.Score
	case ModeHighLow:
		return p.Lives
	case ModeRounds:
		return p.TotalScore
	}
	return 0
}

// Standings ranks the players of s, best first. The winner always leads;
// the rest are ordered by StandingValue with ties kept in seat order.
func Standings(s GameState) []Standing {
	out := make([]Standing, len(s.Players))
	for i, p := range s.Players {
		out[i] = Standing{
			PlayerID: p.ID,
			Name:     p.Name,
			Value:    StandingValue(s.Mode, p),
			Winner:   p.IsWinner,
		}
	}
	lowerIsBetter := s.Mode == ModeCountdown
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Winner != out[j].Winner {
			return out[i].Winner
		}
		if lowerIsBetter {
			return out[i].Value < out[j].Value
		}
		return out[i].Value > out[j].Value
	})
	return out
}
