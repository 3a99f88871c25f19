package theory

// Category identifies which table and filtering rule a question uses.
type Category string

const (
	CategoryInterval     Category = "interval"
	CategoryTriad        Category = "triad"
	CategorySeventhChord Category = "seventh_chord"
	CategoryMode         Category = "mode"
	CategoryScaleDegree  Category = "scale_degree"
)

// Direction is how an interval moves.
type Direction string

const (
	DirectionAscending  Direction = "ascending"
	DirectionDescending Direction = "descending"
)

// Presentation is how an interval's two notes are played.
type Presentation string

const (
	PresentationMelodic  Presentation = "melodic"  // one note after the other
	PresentationHarmonic Presentation = "harmonic" // both notes together
)

// DegreeContext tags how a scale-degree question is rendered.
type DegreeContext string

const (
	ContextMajor       DegreeContext = "major"
	ContextNaturalMinor DegreeContext = "natural_minor"
	ContextMajorTriads DegreeContext = "major_triads"
	ContextMinorTriads DegreeContext = "minor_triads"
	ContextMajor7ths   DegreeContext = "major_7ths"
	ContextMinor7ths   DegreeContext = "minor_7ths"
)

// Harmonic reports whether the context renders a chord rather than a single tone.
func (c DegreeContext) Harmonic() bool {
	switch c {
	case ContextMajorTriads, ContextMinorTriads, ContextMajor7ths, ContextMinor7ths:
		return true
	}
	return false
}

// Minor reports whether the context uses the natural-minor degree mapping.
func (c DegreeContext) Minor() bool {
	switch c {
	case ContextNaturalMinor, ContextMinorTriads, ContextMinor7ths:
		return true
	}
	return false
}
