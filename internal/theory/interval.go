package theory

// Quality is the category-specific label of a musical object: an interval
// name, a triad or seventh-chord quality, a mode name, or a scale-degree
// number ("1".."7"). Always drawn from a closed per-category set.
type Quality string

// Interval qualities, in ascending semitone order.
const (
	IntervalMinor2nd   Quality = "minor_2nd"
	IntervalMajor2nd   Quality = "major_2nd"
	IntervalMinor3rd   Quality = "minor_3rd"
	IntervalMajor3rd   Quality = "major_3rd"
	IntervalPerfect4th Quality = "perfect_4th"
	IntervalTritone    Quality = "tritone"
	IntervalPerfect5th Quality = "perfect_5th"
	IntervalMinor6th   Quality = "minor_6th"
	IntervalMajor6th   Quality = "major_6th"
	IntervalMinor7th   Quality = "minor_7th"
	IntervalMajor7th   Quality = "major_7th"
	IntervalOctave     Quality = "octave"
)

var intervalSemitones = map[Quality]int{
	IntervalMinor2nd:   1,
	IntervalMajor2nd:   2,
	IntervalMinor3rd:   3,
	IntervalMajor3rd:   4,
	IntervalPerfect4th: 5,
	IntervalTritone:    6,
	IntervalPerfect5th: 7,
	IntervalMinor6th:   8,
	IntervalMajor6th:   9,
	IntervalMinor7th:   10,
	IntervalMajor7th:   11,
	IntervalOctave:     12,
}

// IntervalSemitones returns the semitone distance (1-12) for an interval
// quality. The bool is false for unknown qualities.
func IntervalSemitones(q Quality) (int, bool) {
	n, ok := intervalSemitones[q]
	return n, ok
}

// AllIntervals returns the interval qualities in ascending semitone order.
func AllIntervals() []Quality {
	return []Quality{
		IntervalMinor2nd, IntervalMajor2nd, IntervalMinor3rd, IntervalMajor3rd,
		IntervalPerfect4th, IntervalTritone, IntervalPerfect5th, IntervalMinor6th,
		IntervalMajor6th, IntervalMinor7th, IntervalMajor7th, IntervalOctave,
	}
}
