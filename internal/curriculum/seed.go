package curriculum

import "github.com/abiram/tonedrill/internal/theory"

func init() {
	cat = buildCatalog(seedSegments())
}

// seedSegments is the authored curriculum. Order matters: gating is
// positional across segments.
func seedSegments() []Segment {
	return []Segment{
		{
			ID:          "intervals",
			Name:        "Intervals",
			Description: "Hear the distance between two notes",
			Levels: []Level{
				{
					ID:              "interval-steps",
					Name:            "Steps & Skips",
					Description:     "Seconds, thirds and the perfect fifth, ascending",
					Category:        theory.CategoryInterval,
					Items:           []theory.Quality{theory.IntervalMajor2nd, theory.IntervalMajor3rd, theory.IntervalPerfect5th},
					UnlockThreshold: 80,
					Direction:       theory.DirectionAscending,
					Presentation:    theory.PresentationMelodic,
				},
				{
					ID:              "interval-minor",
					Name:            "Minor Colors",
					Description:     "Minor seconds and thirds join the pool",
					Category:        theory.CategoryInterval,
					Items:           []theory.Quality{theory.IntervalMinor2nd, theory.IntervalMajor2nd, theory.IntervalMinor3rd, theory.IntervalMajor3rd, theory.IntervalPerfect4th, theory.IntervalPerfect5th},
					UnlockThreshold: 80,
					Direction:       theory.DirectionAscending,
					Presentation:    theory.PresentationMelodic,
				},
				{
					ID:              "interval-wide",
					Name:            "Wide Leaps",
					Description:     "Sixths, sevenths, the tritone and the octave",
					Category:        theory.CategoryInterval,
					Items:           []theory.Quality{theory.IntervalTritone, theory.IntervalMinor6th, theory.IntervalMajor6th, theory.IntervalMinor7th, theory.IntervalMajor7th, theory.IntervalOctave},
					UnlockThreshold: 85,
					Direction:       theory.DirectionAscending,
					Presentation:    theory.PresentationMelodic,
				},
				{
					ID:              "interval-descending",
					Name:            "Falling Intervals",
					Description:     "The full pool, descending",
					Category:        theory.CategoryInterval,
					Items:           theory.AllIntervals(),
					UnlockThreshold: 85,
					Direction:       theory.DirectionDescending,
					Presentation:    theory.PresentationMelodic,
				},
				{
					ID:              "interval-harmonic",
					Name:            "Harmonic Intervals",
					Description:     "Both notes at once",
					Category:        theory.CategoryInterval,
					Items:           theory.AllIntervals(),
					UnlockThreshold: 85,
					Direction:       theory.DirectionAscending,
					Presentation:    theory.PresentationHarmonic,
				},
			},
		},
		{
			ID:          "chords",
			Name:        "Chords",
			Description: "Triads and seventh chords within a key",
			Levels: []Level{
				{
					ID:              "triad-major-minor",
					Name:            "Major vs Minor",
					Description:     "The two basic triad flavors",
					Category:        theory.CategoryTriad,
					Items:           []theory.Quality{theory.TriadMajor, theory.TriadMinor},
					UnlockThreshold: 80,
				},
				{
					ID:              "triad-all",
					Name:            "All Diatonic Triads",
					Description:     "Major, minor and the diminished vii°",
					Category:        theory.CategoryTriad,
					Items:           []theory.Quality{theory.TriadMajor, theory.TriadMinor, theory.TriadDiminished},
					UnlockThreshold: 85,
				},
				{
					ID:              "triad-primary",
					Name:            "Primary Triads",
					Description:     "I, IV and V only",
					Category:        theory.CategoryTriad,
					Items:           []theory.Quality{theory.TriadMajor},
					ScaleDegrees:    []int{0, 3, 4},
					UnlockThreshold: 85,
				},
				{
					ID:              "seventh-basic",
					Name:            "Seventh Chords",
					Description:     "Major, minor and dominant sevenths",
					Category:        theory.CategorySeventhChord,
					Items:           []theory.Quality{theory.SeventhMajor, theory.SeventhMinor, theory.SeventhDominant},
					UnlockThreshold: 85,
				},
				{
					ID:              "seventh-all",
					Name:            "All Diatonic Sevenths",
					Description:     "The half-diminished vii joins the pool",
					Category:        theory.CategorySeventhChord,
					Items:           []theory.Quality{theory.SeventhMajor, theory.SeventhMinor, theory.SeventhDominant, theory.SeventhHalfDiminished},
					UnlockThreshold: 90,
				},
			},
		},
		{
			ID:          "modes",
			Name:        "Modes",
			Description: "The seven diatonic modes from a shared tonic",
			Levels: []Level{
				{
					ID:              "mode-major-minor",
					Name:            "Ionian vs Aeolian",
					Description:     "Plain major against natural minor",
					Category:        theory.CategoryMode,
					Items:           []theory.Quality{theory.ModeIonian, theory.ModeAeolian},
					UnlockThreshold: 80,
				},
				{
					ID:              "mode-common",
					Name:            "Dorian & Mixolydian",
					Description:     "The two workhorse modes",
					Category:        theory.CategoryMode,
					Items:           []theory.Quality{theory.ModeIonian, theory.ModeDorian, theory.ModeMixolydian, theory.ModeAeolian},
					UnlockThreshold: 85,
				},
				{
					ID:              "mode-all",
					Name:            "All Seven Modes",
					Description:     "Lydian, Phrygian and Locrian complete the set",
					Category:        theory.CategoryMode,
					Items:           theory.AllModes(),
					UnlockThreshold: 90,
				},
			},
		},
		{
			ID:          "degrees",
			Name:        "Scale Degrees",
			Description: "Place a tone or chord within the key",
			Levels: []Level{
				{
					ID:              "degree-anchor",
					Name:            "Tonal Anchors",
					Description:     "Do, mi and sol in major",
					Category:        theory.CategoryScaleDegree,
					Items:           []theory.Quality{"1", "3", "5"},
					UnlockThreshold: 80,
					Context:         theory.ContextMajor,
				},
				{
					ID:              "degree-major",
					Name:            "Major Scale Degrees",
					Description:     "All seven degrees, melodic",
					Category:        theory.CategoryScaleDegree,
					Items:           theory.DegreeQualities(),
					UnlockThreshold: 85,
					Context:         theory.ContextMajor,
				},
				{
					ID:              "degree-minor",
					Name:            "Minor Scale Degrees",
					Description:     "All seven degrees in natural minor",
					Category:        theory.CategoryScaleDegree,
					Items:           theory.DegreeQualities(),
					UnlockThreshold: 85,
					Context:         theory.ContextNaturalMinor,
				},
				{
					ID:              "degree-harmony",
					Name:            "Functional Harmony",
					Description:     "Hear the chord built on each degree",
					Category:        theory.CategoryScaleDegree,
					Items:           theory.DegreeQualities(),
					UnlockThreshold: 90,
					Context:         theory.ContextMajorTriads,
				},
			},
		},
	}
}
