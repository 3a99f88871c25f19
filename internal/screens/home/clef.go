package home

import (
	"charm.land/lipgloss/v2"

	"github.com/abiram/tonedrill/internal/ui/theme"
)

// ClefVariant selects which clef card art to display.
type ClefVariant int

const (
	ClefIdle        ClefVariant = iota // Default indigo
	ClefCelebrating                    // Gold — every level completed
)

const clefIdle = `┌─────┐
│  ♪  │
│ ─●─ │
│  ♫  │
└─────┘`

const clefCelebrating = `┌─────┐
│ ★♪★ │
│ ─●─ │
│  ♫  │
└─╥═╥─┘
  ╚═╝`

// renderClefBox renders the clef card centered in a box matching content width.
func renderClefBox(variant ClefVariant, cw int) string {
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(RenderClef(variant))
}

// RenderClef returns the clef card art for the given variant.
func RenderClef(variant ClefVariant) string {
	art := clefIdle
	fg := theme.Primary
	if variant == ClefCelebrating {
		art = clefCelebrating
		fg = theme.Gold
	}

	return lipgloss.NewStyle().
		Foreground(fg).
		Render(art)
}
