package curriculum

import (
	"fmt"
	"slices"
)

// catalog holds the segment list plus derived indices.
type catalog struct {
	segments []Segment
	flat     []Level        // derived projection, catalog order
	byID     map[string]*Level
	position map[string]int // level id → index in flat
}

// cat is the package-level catalog singleton, set by init() in seed.go.
var cat *catalog

// buildCatalog fills back-references and computes the flattened index.
func buildCatalog(segments []Segment) *catalog {
	c := &catalog{
		segments: segments,
		byID:     make(map[string]*Level),
		position: make(map[string]int),
	}
	for si := range c.segments {
		seg := &c.segments[si]
		for li := range seg.Levels {
			seg.Levels[li].SegmentID = seg.ID
			c.flat = append(c.flat, seg.Levels[li])
		}
	}
	for i := range c.flat {
		c.byID[c.flat[i].ID] = &c.flat[i]
		c.position[c.flat[i].ID] = i
	}
	return c
}

// Segments returns all segments in display order.
func Segments() []Segment {
	return slices.Clone(cat.segments)
}

// AllLevels returns every level in catalog order.
func AllLevels() []Level {
	return slices.Clone(cat.flat)
}

// GetLevel returns a level by ID, or an error if not found.
func GetLevel(id string) (Level, error) {
	l, ok := cat.byID[id]
	if !ok {
		return Level{}, fmt.Errorf("level not found: %q", id)
	}
	return *l, nil
}

// CurrentLevel returns the first level in catalog order whose ID is not in
// the completed set. When everything is completed it returns the last level;
// the catalog is terminal, there is no further gating.
func CurrentLevel(completed map[string]bool) Level {
	for _, l := range cat.flat {
		if !completed[l.ID] {
			return l
		}
	}
	return cat.flat[len(cat.flat)-1]
}

// CanAdvance reports whether a session accuracy (0-100) meets the level's
// unlock threshold. Unknown level IDs are never unlockable.
func CanAdvance(levelID string, sessionAccuracy float64) bool {
	l, ok := cat.byID[levelID]
	if !ok {
		return false
	}
	return sessionAccuracy >= l.UnlockThreshold
}

// IsUnlocked reports whether a level may be played: level N requires level
// N-1 completed, except the first. unlockAll is the debug override passed
// in by the caller; it is never process-wide state.
func IsUnlocked(levelID string, completed map[string]bool, unlockAll bool) bool {
	pos, ok := cat.position[levelID]
	if !ok {
		return false
	}
	if unlockAll || pos == 0 {
		return true
	}
	return completed[cat.flat[pos-1].ID]
}
