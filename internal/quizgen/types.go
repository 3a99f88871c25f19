package quizgen

import (
	"time"

	"github.com/abiram/tonedrill/internal/theory"
)

// Question is one generated trial, ready for playback and display.
// Immutable once created; discarded after its answer is recorded.
type Question struct {
	// ID is unique per instance: creation time plus a discriminator.
	ID string

	Category theory.Category

	// CorrectAnswer is the quality the learner must identify.
	CorrectAnswer theory.Quality

	// Root is the note the stimulus was built on. For scale_degree
	// questions this is always the session key.
	Root theory.PitchClass

	// SessionKey is the key active when the question was generated.
	SessionKey theory.PitchClass

	// Degree is the 0-based scale-degree index of Root within the session
	// key, or -1 when the category does not pin the root to a degree.
	Degree int

	// Choices is the level's item set — the answers offered to the learner.
	Choices []theory.Quality

	// PlayedNotes is what the player actually rendered. Opaque to the
	// core; kept for logging and display.
	PlayedNotes []string

	// PlayDuration paces the transition to the next question.
	PlayDuration time.Duration

	CreatedAt time.Time

	// Context tags scale_degree questions with their rendering context.
	Context theory.DegreeContext

	// Direction and Presentation are set for interval questions only.
	Direction    theory.Direction
	Presentation theory.Presentation
}

// CheckAnswer reports whether the learner's selection matches the question.
// Matching always uses raw quality labels, never display names.
func CheckAnswer(selected theory.Quality, q *Question) bool {
	if q == nil {
		return false
	}
	return selected == q.CorrectAnswer
}
