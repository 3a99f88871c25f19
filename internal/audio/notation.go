package audio

import (
	"context"
	"fmt"
	"time"

	"github.com/abiram/tonedrill/internal/theory"
)

// NotationPlayer is the bundled Player: it renders note-name sequences and
// nominal durations without producing sound. A real synthesis backend
// slots in behind the same interface.
type NotationPlayer struct {
	// NoteDuration is the nominal length of one melodic note.
	NoteDuration time.Duration
}

// NewNotationPlayer returns a NotationPlayer with the default pacing.
func NewNotationPlayer() *NotationPlayer {
	return &NotationPlayer{NoteDuration: 600 * time.Millisecond}
}

func (p *NotationPlayer) PlayInterval(_ context.Context, root theory.PitchClass, quality theory.Quality, direction theory.Direction, presentation theory.Presentation) (Rendered, error) {
	semis, ok := theory.IntervalSemitones(quality)
	if !ok {
		return Rendered{}, fmt.Errorf("unknown interval quality %q", quality)
	}
	if direction == theory.DirectionDescending {
		semis = -semis
	}
	upper := root.Transpose(semis)

	notes := []string{root.String(), upper.String()}
	dur := 2 * p.NoteDuration
	if presentation == theory.PresentationHarmonic {
		// Both notes sound at once.
		dur = p.NoteDuration
	}
	return Rendered{Notes: notes, Duration: dur}, nil
}

func (p *NotationPlayer) PlayChord(_ context.Context, root theory.PitchClass, offsets []int) (Rendered, error) {
	if len(offsets) == 0 {
		return Rendered{}, fmt.Errorf("empty chord")
	}
	notes := make([]string, len(offsets))
	for i, off := range offsets {
		notes[i] = root.Transpose(off).String()
	}
	return Rendered{Notes: notes, Duration: p.NoteDuration}, nil
}

func (p *NotationPlayer) PlayScale(_ context.Context, root theory.PitchClass, pattern []int) (Rendered, error) {
	if len(pattern) == 0 {
		return Rendered{}, fmt.Errorf("empty scale pattern")
	}
	notes := make([]string, 0, len(pattern)+1)
	for _, off := range pattern {
		notes = append(notes, root.Transpose(off).String())
	}
	notes = append(notes, root.String()) // close on the octave
	return Rendered{Notes: notes, Duration: time.Duration(len(notes)) * p.NoteDuration}, nil
}

func (p *NotationPlayer) PlayScaleDegree(ctx context.Context, key theory.PitchClass, degree int, degCtx theory.DegreeContext) (Rendered, error) {
	if degree < 0 || degree > 6 {
		return Rendered{}, fmt.Errorf("degree %d out of range", degree)
	}
	scale := theory.ScaleMajor
	if degCtx.Minor() {
		scale = theory.ScaleNaturalMinor
	}
	pattern := theory.ScalePattern(scale)
	root := key.Transpose(pattern[degree])

	if !degCtx.Harmonic() {
		return Rendered{Notes: []string{root.String()}, Duration: p.NoteDuration}, nil
	}

	category := theory.CategoryTriad
	if degCtx == theory.ContextMajor7ths || degCtx == theory.ContextMinor7ths {
		category = theory.CategorySeventhChord
	}
	quality := theory.QualityOfDegree(category, scale, degree)
	offsets, ok := theory.ChordSemitones(category, quality)
	if !ok {
		return Rendered{}, fmt.Errorf("no chord table entry for %s %s", category, quality)
	}
	return p.PlayChord(ctx, root, offsets)
}

var _ Player = (*NotationPlayer)(nil)
