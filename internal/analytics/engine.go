package analytics

import (
	"fmt"
	"sort"

	"github.com/abiram/tonedrill/internal/curriculum"
	"github.com/abiram/tonedrill/internal/theory"
)

// Engine owns the session's answer log. Single-writer, no locking: the
// orchestrating flow is the only caller, one trial in flight at a time.
type Engine struct {
	answers []Answer
}

// NewEngine returns an empty engine.
func NewEngine() *Engine {
	return &Engine{}
}

// Record appends an answer to the log. No cross-field validation: callers
// are trusted to supply well-formed answers, and aggregation buckets by
// whatever values are present.
func (e *Engine) Record(a Answer) {
	e.answers = append(e.answers, a)
}

// Count returns the number of recorded answers.
func (e *Engine) Count() int {
	return len(e.answers)
}

// Answers returns a copy of the answer log in record order.
func (e *Engine) Answers() []Answer {
	out := make([]Answer, len(e.answers))
	copy(out, e.answers)
	return out
}

// Reset clears the answer log. Nothing else survives.
func (e *Engine) Reset() {
	e.answers = nil
}

// SessionStats recomputes the full snapshot from the answer log. No
// incremental caching; sessions are a few dozen answers.
func (e *Engine) SessionStats() SessionStats {
	stats := SessionStats{
		ItemWeaknesses:    []ItemWeakness{},
		DegreeWeaknesses:  []DegreeWeakness{},
		VariantWeaknesses: []VariantWeakness{},
		Confusions:        []ConfusionPair{},
	}

	stats.TotalQuestions = len(e.answers)
	for _, a := range e.answers {
		if a.IsCorrect {
			stats.CorrectAnswers++
		}
	}
	if stats.TotalQuestions > 0 {
		stats.Accuracy = pct(stats.CorrectAnswers, stats.TotalQuestions)
	}

	stats.ItemWeaknesses = e.itemWeaknesses()
	stats.DegreeWeaknesses = e.degreeWeaknesses()
	stats.VariantWeaknesses = e.variantWeaknesses()
	stats.Confusions = e.confusions()
	return stats
}

func (e *Engine) itemWeaknesses() []ItemWeakness {
	index := map[string]int{}
	out := []ItemWeakness{}
	for _, a := range e.answers {
		i, seen := index[a.FullDescription]
		if !seen {
			i = len(out)
			index[a.FullDescription] = i
			out = append(out, ItemWeakness{Label: a.FullDescription})
		}
		out[i].Attempts++
		if a.IsCorrect {
			out[i].Correct++
		}
	}
	for i := range out {
		out[i].Accuracy = pct(out[i].Correct, out[i].Attempts)
	}
	sortByAccuracy(out, func(w ItemWeakness) float64 { return w.Accuracy })
	return out
}

func (e *Engine) degreeWeaknesses() []DegreeWeakness {
	type key struct {
		degree   int
		category theory.Category
	}
	index := map[key]int{}
	out := []DegreeWeakness{}
	for _, a := range e.answers {
		if a.ScaleDegree < 0 || a.ScaleDegree > 6 {
			continue
		}
		k := key{a.ScaleDegree, a.Category}
		i, seen := index[k]
		if !seen {
			i = len(out)
			index[k] = i
			out = append(out, DegreeWeakness{
				Label:    theory.RomanNumeral(a.ScaleDegree),
				Degree:   a.ScaleDegree,
				Category: a.Category,
			})
		}
		out[i].Attempts++
		if a.IsCorrect {
			out[i].Correct++
		}
	}
	for i := range out {
		out[i].Accuracy = pct(out[i].Correct, out[i].Attempts)
	}
	sortByAccuracy(out, func(w DegreeWeakness) float64 { return w.Accuracy })
	return out
}

func (e *Engine) variantWeaknesses() []VariantWeakness {
	type key struct {
		quality      theory.Quality
		direction    theory.Direction
		presentation theory.Presentation
	}
	index := map[key]int{}
	out := []VariantWeakness{}
	for _, a := range e.answers {
		if a.Category != theory.CategoryInterval || a.Direction == "" || a.Presentation == "" {
			continue
		}
		k := key{a.ItemType, a.Direction, a.Presentation}
		i, seen := index[k]
		if !seen {
			i = len(out)
			index[k] = i
			out = append(out, VariantWeakness{
				Label:        variantLabel(a.ItemType, a.Direction, a.Presentation),
				Quality:      a.ItemType,
				Direction:    a.Direction,
				Presentation: a.Presentation,
			})
		}
		out[i].Attempts++
		if a.IsCorrect {
			out[i].Correct++
		}
	}
	for i := range out {
		out[i].Accuracy = pct(out[i].Correct, out[i].Attempts)
	}
	sortByAccuracy(out, func(w VariantWeakness) float64 { return w.Accuracy })
	return out
}

func (e *Engine) confusions() []ConfusionPair {
	type key struct {
		mistook, actual string
	}
	index := map[key]int{}
	out := []ConfusionPair{}
	for _, a := range e.answers {
		if a.IsCorrect {
			continue
		}
		mistook := curriculum.DisplayName(a.UserAnswer)
		actual := curriculum.DisplayName(a.CorrectAnswer)
		if a.Category == theory.CategoryInterval && a.Direction != "" && a.Presentation != "" {
			suffix := fmt.Sprintf(" (%s, %s)", a.Direction, a.Presentation)
			mistook += suffix
			actual += suffix
		}
		k := key{mistook, actual}
		i, seen := index[k]
		if !seen {
			i = len(out)
			index[k] = i
			out = append(out, ConfusionPair{Mistook: mistook, ActuallyWas: actual})
		}
		out[i].Count++
	}
	// Descending by count; stable sort keeps first-seen order for ties.
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	return out
}

// distinctItems counts the distinct item qualities attempted this session.
func (e *Engine) distinctItems() int {
	seen := map[theory.Quality]bool{}
	for _, a := range e.answers {
		seen[a.ItemType] = true
	}
	return len(seen)
}

func variantLabel(q theory.Quality, d theory.Direction, p theory.Presentation) string {
	return fmt.Sprintf("%s (%s, %s)", curriculum.DisplayName(q), d, p)
}

func pct(correct, attempts int) float64 {
	if attempts == 0 {
		return 0
	}
	return float64(correct) / float64(attempts) * 100
}

// sortByAccuracy sorts ascending by accuracy; stable, so equal accuracies
// keep first-seen order.
func sortByAccuracy[T any](s []T, accuracy func(T) float64) {
	sort.SliceStable(s, func(i, j int) bool { return accuracy(s[i]) < accuracy(s[j]) })
}
