package session

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abiram/tonedrill/internal/curriculum"
	"github.com/abiram/tonedrill/internal/theory"
	"github.com/abiram/tonedrill/internal/ui/components"
	"github.com/abiram/tonedrill/internal/ui/theme"
)

// questionPrompt names what the learner is identifying.
func questionPrompt(cat theory.Category) string {
	switch cat {
	case theory.CategoryInterval:
		return "What interval did you hear?"
	case theory.CategoryTriad:
		return "What triad did you hear?"
	case theory.CategorySeventhChord:
		return "What seventh chord did you hear?"
	case theory.CategoryMode:
		return "What mode did you hear?"
	case theory.CategoryScaleDegree:
		return "Which scale degree did you hear?"
	default:
		return "What did you hear?"
	}
}

// renderQuestionView renders the active question display.
func (s *SessionScreen) renderQuestionView(width int) string {
	state := s.state
	q := state.CurrentQuestion
	if q == nil {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n  Preparing the next question...")
	}

	var b strings.Builder

	// Info line: level on the left, progress and correct count on the right.
	stats := state.Engine.SessionStats()
	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  Level: %s", state.Level.Name))

	infoRight := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Q %d/%d  %s %d",
			stats.TotalQuestions+1,
			targetQuestions,
			lipgloss.NewStyle().Foreground(theme.Success).Render("✓"),
			stats.CorrectAnswers,
		))

	infoLine := infoLeft
	rightPad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4
	if rightPad > 0 {
		infoLine += strings.Repeat(" ", rightPad) + infoRight
	}

	b.WriteString(infoLine)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", width-4)))
	b.WriteString("\n\n")

	// Stimulus card: the played notes, shown only during the playback window.
	var stimulus string
	if s.showStimulus {
		notes := strings.Join(q.PlayedNotes, "  ")
		stimulus = lipgloss.NewStyle().
			Foreground(theme.Accent).
			Bold(true).
			Render("♪  " + notes + "  ♪")
	} else {
		stimulus = lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render("♪  ···  ♪   (press P to replay)")
	}
	card := components.PanelCard(stimulus, components.ContentWidth(width))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, card))
	b.WriteString("\n\n")

	// Question prompt.
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(questionPrompt(q.Category)))
	b.WriteString("\n\n")

	b.WriteString(s.renderChoices(width))

	return b.String()
}

// renderChoices renders the answer options.
func (s *SessionScreen) renderChoices(width int) string {
	q := s.state.CurrentQuestion

	options := make([]string, len(q.Choices))
	for i, choice := range q.Choices {
		options[i] = curriculum.DisplayName(choice)
	}

	var b strings.Builder
	b.WriteString(components.NewMultiChoice(options, s.mcSelected).View())

	selectLine := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("\nSelect (1-%d) or use arrows + Enter", len(q.Choices)))
	b.WriteString(selectLine)

	// Center the whole block.
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, b.String())
}

// renderFeedback renders the post-answer feedback.
func (s *SessionScreen) renderFeedback(width int) string {
	a := s.state.LastAnswer
	q := s.state.CurrentQuestion

	var b strings.Builder
	b.WriteString("\n\n")

	if a != nil && a.IsCorrect {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Success).
			Bold(true).
			Render("Correct!"))
	} else {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Bold(true).
			Render("Not quite"))
		if a != nil {
			b.WriteString("\n")
			b.WriteString(lipgloss.NewStyle().
				Width(width).
				Align(lipgloss.Center).
				Foreground(theme.TextDim).
				Render(fmt.Sprintf("It was: %s", a.FullDescription)))
		}
	}

	// Reveal what was played.
	if q != nil && len(q.PlayedNotes) > 0 {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Accent).
			Render("♪  " + strings.Join(q.PlayedNotes, "  ") + "  ♪"))
	}

	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Press any key to continue..."))

	return b.String()
}

// renderQuitConfirm renders the quit confirmation dialog.
func renderQuitConfirm(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render("End session early?"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Answered questions are kept; the current one is discarded."))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Success).
		Render("[Y] Yes, end session"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Render("[N] No, keep going"))

	return b.String()
}

// renderSaving renders the end-of-session transition.
func renderSaving(width int) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("\n\n\n  Wrapping up...")
}

// renderError renders an error message.
func renderError(width int, errMsg string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render(fmt.Sprintf("\n\n\n  Error: %s\n\n  Press any key to go back.", errMsg))
}
