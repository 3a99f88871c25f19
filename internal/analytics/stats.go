package analytics

import "github.com/abiram/tonedrill/internal/theory"

// ItemWeakness aggregates accuracy over one item (root + quality).
type ItemWeakness struct {
	Label    string // the answers' FullDescription
	Attempts int
	Correct  int
	Accuracy float64 // percent
}

// DegreeWeakness aggregates accuracy over one (scale degree, category) pair.
type DegreeWeakness struct {
	Label    string // fixed Roman-numeral label, I..vii°
	Degree   int    // 0-6
	Category theory.Category
	Attempts int
	Correct  int
	Accuracy float64
}

// VariantWeakness aggregates accuracy over one interval variant —
// a (quality, direction, presentation) triple.
type VariantWeakness struct {
	Label        string
	Quality      theory.Quality
	Direction    theory.Direction
	Presentation theory.Presentation
	Attempts     int
	Correct      int
	Accuracy     float64
}

// ConfusionPair counts how often one answer was mistaken for another.
type ConfusionPair struct {
	Mistook     string // display label of what the learner chose
	ActuallyWas string // display label of the correct answer
	Count       int
}

// SessionStats is a point-in-time snapshot derived from the full answer
// log. Never stored; always recomputed on demand.
type SessionStats struct {
	TotalQuestions int
	CorrectAnswers int
	Accuracy       float64 // percent; 0 when TotalQuestions is 0

	// ItemWeaknesses is sorted ascending by accuracy, weakest first,
	// ties broken by first-seen order. Same ordering for the other
	// weakness lists.
	ItemWeaknesses    []ItemWeakness
	DegreeWeaknesses  []DegreeWeakness
	VariantWeaknesses []VariantWeakness

	// Confusions is sorted descending by count, ties first-seen.
	Confusions []ConfusionPair
}
