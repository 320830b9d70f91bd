package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles used throughout the TUI.
var (
	styleStatusBar = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("252")).
			Bold(true)

	styleStatusFight = lipgloss.NewStyle().
				Background(lipgloss.Color("52")).
				Foreground(lipgloss.Color("231")).
				Bold(true)

	styleInputPrompt = lipgloss.NewStyle().
				Foreground(lipgloss.Color("34"))

	styleNarrative = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255"))

	styleHeading = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Bold(true)

	styleGain = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	styleLoss = lipgloss.NewStyle().
			Foreground(lipgloss.Color("203"))

	styleFight = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	styleDeath = lipgloss.NewStyle().
			Foreground(lipgloss.Color("231")).
			Background(lipgloss.Color("124")).
			Bold(true)

	styleSystem = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))

	styleError = lipgloss.NewStyle().
			Foreground(lipgloss.Color("208"))

	stylePlayerInput = lipgloss.NewStyle().
				Foreground(lipgloss.Color("34"))

	styleTrace = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

// lineKind identifies the type of an output line for styling.
type lineKind int

const (
	kindNarrative lineKind = iota
	kindHeading
	kindGain
	kindLoss
	kindFight
	kindDeath
	kindSystem
	kindError
	kindTrace
	kindInput // echoed player input
	kindMeta  // slash command output
)

// classifyLine determines what kind of output line this is.
func classifyLine(line string) lineKind {
	switch {
	case strings.HasPrefix(line, "[trace]"):
		return kindTrace
	case strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]"):
		return kindSystem
	case strings.HasPrefix(line, "== ") && strings.HasSuffix(line, " =="):
		return kindHeading
	case strings.Contains(line, "GAME OVER"), strings.Contains(line, "Lives left:"):
		return kindDeath
	case strings.HasPrefix(line, "+ $"), isCountChange(line, '+'):
		return kindGain
	case strings.HasPrefix(line, "- $"), isCountChange(line, '-'):
		return kindLoss
	case strings.Contains(line, "stand in your way"),
		strings.HasPrefix(line, "You're in the middle of a fight"):
		return kindFight
	case strings.HasPrefix(line, "No dice:"),
		strings.HasPrefix(line, "You don't have"),
		strings.HasPrefix(line, "I don't know how to"):
		return kindError
	default:
		return kindNarrative
	}
}

// isCountChange matches effect lines like "+3 weed" or "-10 health".
func isCountChange(line string, sign byte) bool {
	return len(line) > 1 && line[0] == sign && line[1] >= '0' && line[1] <= '9'
}

// renderLineKind applies the style for a given lineKind.
func renderLineKind(line string, kind lineKind) string {
	switch kind {
	case kindHeading:
		return styleHeading.Render(line)
	case kindGain:
		return styleGain.Render(line)
	case kindLoss:
		return styleLoss.Render(line)
	case kindFight:
		return styleFight.Render(line)
	case kindDeath:
		return styleDeath.Render(line)
	case kindSystem:
		return styleSystem.Render(line)
	case kindError:
		return styleError.Render(line)
	case kindTrace:
		return styleTrace.Render(line)
	case kindInput:
		return stylePlayerInput.Render(line)
	case kindMeta:
		return styledSystemMsg(line)
	default:
		return styleNarrative.Render(line)
	}
}

// styledSystemMsg renders a system message in gray with brackets.
func styledSystemMsg(text string) string {
	return styleSystem.Render("[" + text + "]")
}
