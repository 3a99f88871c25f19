// Package curriculum defines the static ordered level catalog and the
// gating queries over it. Segments own their levels; the flattened
// all-levels view is a derived read-only index, never a second source
// of truth. Nothing here mutates after init.
package curriculum

import (
	"strings"
	"unicode"

	"github.com/abiram/tonedrill/internal/theory"
)

// Level is one curriculum step: a question category, the item set drilled
// at this step, and the accuracy required to unlock the next level.
type Level struct {
	ID          string
	Name        string
	Description string
	Category    theory.Category

	// Items is the ordered, non-empty set of qualities this level drills.
	Items []theory.Quality

	// UnlockThreshold is the session accuracy (0-100 percent) required
	// to advance past this level.
	UnlockThreshold float64

	// ScaleDegrees optionally restricts chord candidates to specific
	// 0-based degree indices. Nil means all 7.
	ScaleDegrees []int

	// Context tags scale_degree levels with their rendering context.
	Context theory.DegreeContext

	// Direction and Presentation are interval-level defaults.
	Direction    theory.Direction
	Presentation theory.Presentation

	// SegmentID back-references the owning segment. Filled by the
	// catalog index builder, never authored.
	SegmentID string
}

// Segment is a named grouping of contiguous levels for display. Purely
// organizational; gating is positional across the whole catalog.
type Segment struct {
	ID          string
	Name        string
	Description string
	Levels      []Level
}

// DisplayName formats a quality label for presentation: underscore-separated
// tokens become capitalized words ("half_diminished_7th" → "Half Diminished
// 7th"). Cosmetic only — answer matching always uses raw labels.
func DisplayName(q theory.Quality) string {
	parts := strings.Split(string(q), "_")
	for i, p := range parts {
		if p == "" {
			continue
		}
		r := []rune(p)
		r[0] = unicode.ToUpper(r[0])
		parts[i] = string(r)
	}
	return strings.Join(parts, " ")
}
