package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abiram/tonedrill/internal/ui/theme"
)

// ContentWidth returns the uniform inner width used for stacked panels.
// All boxes are rendered at this width so they visually align.
func ContentWidth(frameWidth int) int {
	// Leave room for stage border (2) + inner padding (4)
	w := frameWidth - 6
	if w > 60 {
		w = 60
	}
	if w < 20 {
		w = 20
	}
	return w
}

// StageFrame wraps content in a double-border frame, centering vertically
// and horizontally within the given dimensions.
func StageFrame(content string, width, height int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Primary).
		Width(width - 2).
		Height(height - 2).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

// PanelCard wraps content in a rounded-border card at the given content width.
func PanelCard(content string, cw int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(1, 2).
		Render(content)
}

// PanelButton renders a styled button matching the home menu style.
func PanelButton(label string, selected bool, width int) string {
	if selected {
		return theme.ButtonActive.
			Width(width).
			Align(lipgloss.Center).
			Render("▸ " + label)
	}
	return theme.ButtonInactive.
		Width(width).
		Align(lipgloss.Center).
		Render(label)
}
