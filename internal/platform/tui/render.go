package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-darts/internal/darts"
)

// Shared styles.
var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	subtleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	currentStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	winnerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	outStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Strikethrough(true)
	bustStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("208"))
	okStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	boxStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	bannerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("22")).Padding(0, 2)
)

// centerText centers text within given width. Multi-line blocks are
// centered as a whole.
func centerText(text string, width int) string {
	if lipgloss.Width(text) >= width {
		return text
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, text)
}

// renderPlayers draws one line per player: turn marker, name, the number the
// mode is scored by and the player's last throw.
func renderPlayers(s darts.GameState) string {
	nameWidth := 6
	for _, p := range s.Players {
		if n := lipgloss.Width(p.Name); n > nameWidth {
			nameWidth = n
		}
	}

	lines := make([]string, 0, len(s.Players))
	for i, p := range s.Players {
		marker := "  "
		if i == s.CurrentPlayerIndex && !s.GameFinished {
			marker = "> "
		}

		line := fmt.Sprintf("%s%-*s  %s  %s", marker, nameWidth, p.Name, playerValue(s, p), lastThrow(p))

		switch {
		case p.IsWinner:
			line = winnerStyle.Render(line + "  WINNER")
		case s.Mode == darts.ModeHighLow && p.Lives <= 0:
			line = outStyle.Render(line)
		case i == s.CurrentPlayerIndex && !s.GameFinished:
			line = currentStyle.Render(line)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

// playerValue formats the number a player is scored by in the game's mode.
func playerValue(s darts.GameState, p darts.Player) string {
	switch s.Mode {
	case darts.ModeCountdown:
		return fmt.Sprintf("%5d left", p.Score)
	case darts.ModeHighLow:
		lives := strings.Repeat("*", max(p.Lives, 0))
		return fmt.Sprintf("%-*s  score %3d", max(s.StartingLives, 1), lives, p.Score)
	case darts.ModeRounds:
		return fmt.Sprintf("%5d total  %3d this round", p.TotalScore, p.CurrentRoundScore)
	}
	return ""
}

// lastThrow describes the player's most recent throw, if any.
func lastThrow(p darts.Player) string {
	e, ok := p.LastEntry()
	if !ok {
		return subtleStyle.Render("no throws")
	}
	return subtleStyle.Render(fmt.Sprintf("last %d", e.Score))
}

// renderHeader describes the game's mode and progress.
func renderHeader(s darts.GameState) string {
	parts := []string{strings.ToUpper(s.Mode.Title())}
	switch s.Mode {
	case darts.ModeCountdown:
		parts = append(parts, fmt.Sprintf("from %d", s.StartingScore))
	case darts.ModeHighLow:
		parts = append(parts, fmt.Sprintf("%d of %d players standing", s.AlivePlayers(), len(s.Players)))
	case darts.ModeRounds:
		round := min(s.CurrentRound, s.TotalRounds)
		parts = append(parts, fmt.Sprintf("round %d of %d", round, s.TotalRounds))
	}
	return strings.Join(parts, "  -  ")
}

// renderChallenge describes the pending high-low call.
func renderChallenge(s darts.GameState) string {
	if s.Mode != darts.ModeHighLow || s.GameFinished {
		return ""
	}
	target := darts.DefaultChallengeTarget(s)
	if ch := s.HighLowChallenge; ch != nil {
		target = ch.TargetScore
	}
	p, ok := s.CurrentPlayer()
	if !ok {
		return ""
	}
	if ch := s.HighLowChallenge; ch != nil && ch.PlayerID == p.ID {
		return fmt.Sprintf("%s must throw %s than %d", p.Name, ch.Direction, ch.TargetScore)
	}
	return fmt.Sprintf("%s: call higher or lower than %d", p.Name, target)
}
