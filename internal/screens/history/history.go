package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/abiram/tonedrill/internal/curriculum"
	"github.com/abiram/tonedrill/internal/router"
	"github.com/abiram/tonedrill/internal/screen"
	"github.com/abiram/tonedrill/internal/store"
	"github.com/abiram/tonedrill/internal/ui/layout"
	"github.com/abiram/tonedrill/internal/ui/theme"
)

// historyLimit caps how many sessions are loaded.
const historyLimit = 50

type historyLoadedMsg struct {
	Sessions []store.SessionRecord
	Weakest  []store.ItemAggregate
	Err      error
}

// HistoryScreen displays past sessions and lifetime weak spots.
type HistoryScreen struct {
	st       *store.Store
	sessions []store.SessionRecord
	weakest  []store.ItemAggregate
	selected int
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(st *store.Store) *HistoryScreen {
	return &HistoryScreen{st: st}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		sessions, err := s.st.RecentSessions(ctx, historyLimit)
		if err != nil {
			return historyLoadedMsg{Err: err}
		}

		// Lifetime weak spots; a load failure here only hides the section.
		weakest, err := s.st.WeakestItems(ctx, 3, 5)
		if err != nil {
			return historyLoadedMsg{Sessions: sessions}
		}

		return historyLoadedMsg{Sessions: sessions, Weakest: weakest}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.sessions = msg.Sessions
			s.weakest = msg.Weakest
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.sessions)-1 {
				s.selected++
			}
			return s, nil
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading history...")
	}
	if len(s.sessions) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No sessions yet. Start practicing!")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, rec := range s.sessions {
		dateStr := rec.EndedAt.Format("Jan 02, 2006")
		dur := rec.EndedAt.Sub(rec.StartedAt)
		durationStr := fmt.Sprintf("%d:%02d", int(dur.Minutes()), int(dur.Seconds())%60)

		levelName := rec.LevelID
		if lv, err := curriculum.GetLevel(rec.LevelID); err == nil {
			levelName = lv.Name
		}

		passStr := ""
		if rec.Advanced {
			passStr = "  ★ passed"
		}

		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		line := fmt.Sprintf("%s%s  %s  %-24s %d questions  %.0f%% accuracy%s",
			prefix, dateStr, durationStr, levelName, rec.TotalQuestions, rec.Accuracy, passStr)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		} else if rec.Advanced {
			style = style.Foreground(theme.Success)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			style.Render(line)))
		b.WriteString("\n")
	}

	// Lifetime weak spots.
	if len(s.weakest) > 0 {
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("Lifetime weak spots")))
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", min(width-8, 50)))))
		b.WriteString("\n")
		for _, item := range s.weakest {
			line := fmt.Sprintf("  %-24s %d/%d correct    %.0f%%",
				item.FullDescription, item.Correct, item.Attempts, item.Accuracy)
			style := lipgloss.NewStyle().Foreground(theme.Text)
			if item.Accuracy < 60 {
				style = style.Foreground(theme.Error)
			}
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
			b.WriteString("\n")
		}
	}

	return b.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
