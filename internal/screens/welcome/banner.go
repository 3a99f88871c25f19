package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abiram/tonedrill/internal/ui/theme"
)

const bannerArt = `
────┬──────────●──────────────────┬────
────┼────●─────────────●──────────┼────
────┼─────────────●───────────────┼────
────┼──●──────────────────────────┼────
────┴─────────────────────────●───┴────

          T O N E D R I L L`

const bannerCompact = "T O N E D R I L L"

// RenderBanner returns the TONEDRILL banner styled in the primary color.
// Uses a compact fallback for terminals narrower than 45 columns.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 45 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
