package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abiram/tonedrill/internal/router"
	"github.com/abiram/tonedrill/internal/screen"
	"github.com/abiram/tonedrill/internal/session"
	"github.com/abiram/tonedrill/internal/ui/components"
	"github.com/abiram/tonedrill/internal/ui/layout"
	"github.com/abiram/tonedrill/internal/ui/theme"
)

// maxListedItems caps the weakest/strongest lists on screen.
const maxListedItems = 3

// SummaryScreen displays the session summary.
type SummaryScreen struct {
	summary *session.Summary
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a new SummaryScreen.
func New(summary *session.Summary) *SummaryScreen {
	return &SummaryScreen{summary: summary}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Session Summary"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Continue"},
		{Key: "Esc", Description: "Home"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			// The session screen replaced itself with this one, so a
			// single pop lands back where practice started.
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.summary
	if sum == nil {
		return ""
	}
	stats := sum.Stats

	var b strings.Builder

	// Title.
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("Session complete!"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(sum.LevelName))
	b.WriteString("\n\n")

	// Duration.
	mins := int(sum.Duration.Minutes())
	secs := int(sum.Duration.Seconds()) % 60
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Duration: %d:%02d", mins, secs)))
	b.WriteString("\n\n")

	// Stats line.
	statsLine := fmt.Sprintf("Questions: %d        Correct: %d        Accuracy: %.0f%%",
		stats.TotalQuestions, stats.CorrectAnswers, stats.Accuracy)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(statsLine))
	b.WriteString("\n")
	bar := components.NewProgressBar("", stats.Accuracy/100, false, min(width-16, 44))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
	b.WriteString("\n\n")

	// Advancement.
	if sum.CanAdvance {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Success).
			Bold(true).
			Render("★ Level passed — the next level is unlocked!"))
		b.WriteString("\n\n")
	}

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 60)))

	// Weakest and strongest items.
	if len(stats.ItemWeaknesses) > 0 {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("Items")))
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
		b.WriteString("\n\n")
		b.WriteString(s.renderItems(width))
		b.WriteString("\n")
	}

	// Insights.
	if len(sum.Insights) > 0 {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("Insights")))
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
		b.WriteString("\n\n")
		for _, line := range sum.Insights {
			wrapped := lipgloss.NewStyle().
				Width(min(width-8, 70)).
				Foreground(theme.Text).
				Render(line)
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, wrapped))
			b.WriteString("\n")
		}
	}

	return b.String()
}

// renderItems lists the weakest items first, then the strongest, from the
// ascending-accuracy item list.
func (s *SummaryScreen) renderItems(width int) string {
	items := s.summary.Stats.ItemWeaknesses

	var b strings.Builder
	shown := len(items)
	if shown > maxListedItems {
		shown = maxListedItems
	}
	for _, it := range items[:shown] {
		line := fmt.Sprintf("  %-24s %d/%d correct    %.0f%%",
			it.Label, it.Correct, it.Attempts, it.Accuracy)
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if it.Accuracy < 60 {
			style = style.Foreground(theme.Error)
		} else if it.Accuracy >= 90 {
			style = style.Foreground(theme.Success)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")
	}
	return b.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
