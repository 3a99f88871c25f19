// Package analytics accumulates the session's answer log and derives
// accuracy, weakness and confusion reports plus natural-language insights.
// The engine is the only writer of the log; answers are append-only and
// never mutated after creation.
package analytics

import (
	"time"

	"github.com/abiram/tonedrill/internal/theory"
)

// NoDegree marks an Answer whose root has no derived scale-degree position
// (scale_degree and mode questions, or a non-diatonic root).
const NoDegree = -1

// Answer is one scored trial. All derived fields are fixed at creation.
type Answer struct {
	QuestionID    string
	UserAnswer    theory.Quality
	CorrectAnswer theory.Quality

	// IsCorrect is derived: UserAnswer == CorrectAnswer.
	IsCorrect bool

	// FullDescription is derived: "{root} {display name of correct answer}".
	// It is the per-item aggregation key.
	FullDescription string

	SubmittedAt    time.Time
	ResponseTimeMs int

	// ItemType duplicates CorrectAnswer for aggregation keying.
	ItemType theory.Quality

	// ScaleDegree is the 0-based diatonic position of the question root
	// relative to the session key, or NoDegree. Never derived for
	// scale_degree and mode categories.
	ScaleDegree int

	// SessionKey is the key active when the question was asked. May differ
	// from the question's own root for scale_degree questions.
	SessionKey theory.PitchClass

	Category theory.Category

	// Direction and Presentation are set for interval answers only.
	Direction    theory.Direction
	Presentation theory.Presentation
}
