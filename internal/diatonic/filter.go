// Package diatonic computes the set of musically valid answer candidates
// for a question category within a key.
package diatonic

import "github.com/abiram/tonedrill/internal/theory"

// Candidate is a (root, quality) pair that is diatonically correct in the
// key it was derived for. Degree is the 0-based scale-degree index of the
// root, or -1 when the category does not pin the root to a degree.
type Candidate struct {
	Root    theory.PitchClass
	Quality theory.Quality
	Degree  int
}

// Candidates returns the valid answer candidates for a category, item set
// and key. allowedDegrees restricts chord candidates to specific 0-based
// scale-degree indices; nil means all 7.
//
// The reference key is always major, even for minor-context levels —
// natural-minor degree mapping is a scale_degree concern handled by the
// generator, not here.
//
// An empty result signals a configuration inconsistency (the level's item
// set and degree restriction exclude every diatonic chord); callers must
// treat it as fatal to the level, never guess.
func Candidates(category theory.Category, qualities []theory.Quality, key theory.PitchClass, allowedDegrees []int) []Candidate {
	switch category {
	case theory.CategoryInterval:
		return intervalCandidates(qualities, key, allowedDegrees)
	case theory.CategoryTriad, theory.CategorySeventhChord:
		return chordCandidates(category, qualities, key, allowedDegrees)
	case theory.CategoryMode:
		return modeCandidates(qualities, key)
	}
	// scale_degree bypasses the filter: degree selection is direct.
	return nil
}

// intervalCandidates pairs every requested interval with every allowed
// diatonic root. Interval qualities are not themselves filtered — an
// interval is audible from any diatonic root; only the root is constrained.
func intervalCandidates(qualities []theory.Quality, key theory.PitchClass, allowedDegrees []int) []Candidate {
	roots := theory.DiatonicRoots(key, theory.ScaleMajor)
	degrees := normalizeDegrees(allowedDegrees)

	var out []Candidate
	for _, q := range qualities {
		if _, ok := theory.IntervalSemitones(q); !ok {
			continue
		}
		for _, d := range degrees {
			out = append(out, Candidate{Root: roots[d], Quality: q, Degree: d})
		}
	}
	return out
}

// chordCandidates builds the 7 diatonic chords of the key and keeps those
// whose quality is in the requested item set and whose degree is allowed.
func chordCandidates(category theory.Category, qualities []theory.Quality, key theory.PitchClass, allowedDegrees []int) []Candidate {
	roots := theory.DiatonicRoots(key, theory.ScaleMajor)
	wanted := make(map[theory.Quality]bool, len(qualities))
	for _, q := range qualities {
		wanted[q] = true
	}

	var out []Candidate
	for _, d := range normalizeDegrees(allowedDegrees) {
		q := theory.QualityOfDegree(category, theory.ScaleMajor, d)
		if wanted[q] {
			out = append(out, Candidate{Root: roots[d], Quality: q, Degree: d})
		}
	}
	return out
}

// modeCandidates pairs each requested mode verbatim with the tonic.
// Modes are evaluated relative to the key root, never degree-filtered.
func modeCandidates(qualities []theory.Quality, key theory.PitchClass) []Candidate {
	var out []Candidate
	for _, q := range qualities {
		if _, ok := theory.ModeSteps(q); !ok {
			continue
		}
		out = append(out, Candidate{Root: key, Quality: q, Degree: -1})
	}
	return out
}

// normalizeDegrees returns the in-range subset of allowed, in scale order,
// or all 7 indices when allowed is nil or empty.
func normalizeDegrees(allowed []int) []int {
	if len(allowed) == 0 {
		return []int{0, 1, 2, 3, 4, 5, 6}
	}
	seen := make(map[int]bool, len(allowed))
	for _, d := range allowed {
		if d >= 0 && d <= 6 {
			seen[d] = true
		}
	}
	var out []int
	for d := 0; d < 7; d++ {
		if seen[d] {
			out = append(out, d)
		}
	}
	return out
}
