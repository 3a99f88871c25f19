// Package audio defines the playback capability the core consumes. The
// core never touches waveforms; it asks a Player to render a musical
// specification and gets back the note labels actually played plus a
// nominal duration used to pace sequential playback.
package audio

import (
	"context"
	"time"

	"github.com/abiram/tonedrill/internal/theory"
)

// Rendered reports what a Player produced for one request.
type Rendered struct {
	// Notes are the rendered note labels in playback order.
	Notes []string

	// Duration is the total playback time, used by the caller to pace
	// the next question. Zero for players that render instantly.
	Duration time.Duration
}

// Player renders musical stimuli. Implementations may produce real audio
// or nothing at all; the core only consumes the returned note list.
type Player interface {
	// PlayInterval renders the two notes of an interval from root.
	PlayInterval(ctx context.Context, root theory.PitchClass, quality theory.Quality, direction theory.Direction, presentation theory.Presentation) (Rendered, error)

	// PlayChord renders the notes at the given semitone offsets from root,
	// sounded together.
	PlayChord(ctx context.Context, root theory.PitchClass, offsets []int) (Rendered, error)

	// PlayScale renders the pattern's offsets from root in sequence,
	// closing on the octave.
	PlayScale(ctx context.Context, root theory.PitchClass, pattern []int) (Rendered, error)

	// PlayScaleDegree renders a single degree of the key: a lone scale
	// tone for melodic contexts, the chord built on the degree for
	// harmonic ones.
	PlayScaleDegree(ctx context.Context, key theory.PitchClass, degree int, degCtx theory.DegreeContext) (Rendered, error)
}
