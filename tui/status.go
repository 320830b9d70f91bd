package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/nathoo/gangwar/engine/combat"
	"github.com/nathoo/gangwar/types"
)

// statusParts returns the left and right halves of the status bar.
func statusParts(s *types.GameState) (string, string) {
	left := fmt.Sprintf(" %s | Day %d (%d/%d) | $%s | HP %d/%d",
		s.GangName, s.Day, s.Steps, s.MaxSteps, humanize.Comma(int64(s.Money)), s.Health, s.MaxHealth)
	right := fmt.Sprintf("Gang %d | Lives %d ", s.Members, s.Lives)
	if f := s.Fight; f != nil {
		right = fmt.Sprintf("FIGHT: %d %s (%.0f hp) | ", f.Count, combat.EnemyName(f.Enemy), f.Health) + right
	}
	return left, right
}

// renderStatusBar produces a full-width inverted status line. It turns red
// while a fight is open.
func (m Model) renderStatusBar() string {
	s := m.session.Engine.State
	left, right := statusParts(s)

	// Drop the fight summary's detail before squeezing the bar.
	if lipgloss.Width(left)+lipgloss.Width(right) > m.width && s.Fight != nil {
		right = fmt.Sprintf("FIGHT | Gang %d | Lives %d ", s.Members, s.Lives)
	}

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}

	bar := left + strings.Repeat(" ", gap) + right
	style := styleStatusBar
	if s.Fight != nil {
		style = styleStatusFight
	}
	return style.Width(m.width).Render(bar)
}
