package components

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"github.com/abiram/tonedrill/internal/ui/theme"
)

// MultiChoice renders a numbered answer list with a movable cursor.
// Key handling stays with the owning screen; this component is display only,
// so the screen can keep recording answers through its own flow.
type MultiChoice struct {
	Options  []string
	Selected int
}

// NewMultiChoice creates a choice list with the cursor on selected.
func NewMultiChoice(options []string, selected int) MultiChoice {
	return MultiChoice{
		Options:  options,
		Selected: selected,
	}
}

// View renders the numbered options with the cursor marking the selection.
func (m MultiChoice) View() string {
	var s string
	for i, opt := range m.Options {
		prefix := "  "
		if i == m.Selected {
			prefix = "> "
		}
		line := fmt.Sprintf("%s%d) %s", prefix, i+1, opt)

		if i == m.Selected {
			s += lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line)
		} else {
			s += lipgloss.NewStyle().Foreground(theme.Text).Render(line)
		}
		s += "\n"
	}
	return s
}
