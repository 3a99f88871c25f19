package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abiram/tonedrill/internal/ui/components"
	"github.com/abiram/tonedrill/internal/ui/theme"
)

// Block title with a staff underline (same art as welcome/banner.go).
const stageTitleFull = `
────┬──────────●──────────────────┬────
────┼────●─────────────●──────────┼────
────┼─────────────●───────────────┼────
────┼──●──────────────────────────┼────
────┴─────────────────────────●───┴────

          T O N E D R I L L`

const stageTitleCompact = "T · O · N · E · D · R · I · L · L"

// contentWidth returns the uniform inner width used for all sections.
func contentWidth(frameWidth int) int {
	return components.ContentWidth(frameWidth)
}

// renderTitle returns the styled title block or compact fallback.
func renderTitle(cw int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Gold).
		Bold(true)

	if compact {
		return lipgloss.NewStyle().
			Width(cw).
			Align(lipgloss.Center).
			Render(style.Render(stageTitleCompact))
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(style.Render(stageTitleFull))
}

// renderStatsBar renders the dashboard stats in a bordered box matching
// the content width.
func renderStatsBar(completed, total int, levelName string, cw int, compact bool) string {
	completedStyle := lipgloss.NewStyle().Foreground(theme.Gold).Bold(true)
	levelStyle := lipgloss.NewStyle().Foreground(theme.Cyan).Bold(true)

	var stats string
	if compact {
		stats = fmt.Sprintf("%s %s",
			completedStyle.Render(fmt.Sprintf("★%d/%d", completed, total)),
			levelStyle.Render("▸ "+levelName),
		)
	} else {
		stats = fmt.Sprintf("%s  %s",
			completedStyle.Render(fmt.Sprintf("★ %d/%d LEVELS", completed, total)),
			levelStyle.Render("▸ NEXT: "+strings.ToUpper(levelName)),
		)
	}

	// Wrap in a double-border box at the same content width
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Cyan).
		Width(cw - 2). // account for border chars
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(stats)
}

// buttonWidth is the fixed width for menu buttons.
const buttonWidth = 22

// renderMenu renders each menu item as a fixed-width button.
func renderMenu(items []string, selected int, cw int) string {
	var buttons []string
	for i, label := range items {
		buttons = append(buttons, components.PanelButton(label, i == selected, buttonWidth))
	}
	block := strings.Join(buttons, "\n")

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(block)
}

// renderStageFrame wraps content in the shared stage frame.
func renderStageFrame(content string, width, height int) string {
	return components.StageFrame(content, width, height)
}
