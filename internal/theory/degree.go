package theory

// romanNumerals are the fixed display labels for scale degrees 0-6.
var romanNumerals = [7]string{"I", "ii", "iii", "IV", "V", "vi", "vii°"}

// RomanNumeral returns the fixed label for a 0-based scale degree.
// Out-of-range degrees return "?".
func RomanNumeral(degree int) string {
	if degree < 0 || degree > 6 {
		return "?"
	}
	return romanNumerals[degree]
}

// chordTones returns the semitone intervals from the degree's root to its
// third, fifth and seventh, stacked within the scale pattern.
func chordTones(pattern []int, degree int) (third, fifth, seventh int) {
	root := pattern[degree%7]
	third = ((pattern[(degree+2)%7] - root) % 12 + 12) % 12
	fifth = ((pattern[(degree+4)%7] - root) % 12 + 12) % 12
	seventh = ((pattern[(degree+6)%7] - root) % 12 + 12) % 12
	return third, fifth, seventh
}

// TriadQualityOfDegree returns the triad quality built on a 0-based degree
// of the given scale type.
func TriadQualityOfDegree(scale ScaleType, degree int) Quality {
	third, fifth, _ := chordTones(ScalePattern(scale), degree)
	switch {
	case third == 4 && fifth == 7:
		return TriadMajor
	case third == 3 && fifth == 7:
		return TriadMinor
	case third == 3 && fifth == 6:
		return TriadDiminished
	case third == 4 && fifth == 8:
		return TriadAugmented
	}
	// Unreachable for the diatonic major/minor patterns; diminished is the
	// closest label for anything else a malformed pattern could produce.
	return TriadDiminished
}

// SeventhQualityOfDegree returns the seventh-chord quality built on a
// 0-based degree of the given scale type. Unmatched interval combinations
// fall back to half-diminished (documented fallback, not a silent bug).
func SeventhQualityOfDegree(scale ScaleType, degree int) Quality {
	third, fifth, seventh := chordTones(ScalePattern(scale), degree)
	switch {
	case third == 4 && seventh == 11:
		return SeventhMajor
	case third == 4 && seventh == 10:
		return SeventhDominant
	case third == 3 && seventh == 10 && fifth == 6:
		return SeventhHalfDiminished
	case third == 3 && seventh == 10:
		return SeventhMinor
	case third == 3 && seventh == 9:
		return SeventhDiminished
	}
	return SeventhHalfDiminished
}

// QualityOfDegree dispatches to the triad or seventh table by category.
// Categories without degree-built chords return the empty quality.
func QualityOfDegree(category Category, scale ScaleType, degree int) Quality {
	switch category {
	case CategoryTriad:
		return TriadQualityOfDegree(scale, degree)
	case CategorySeventhChord:
		return SeventhQualityOfDegree(scale, degree)
	}
	return ""
}

// DiatonicRoots returns the 7 scale-order root notes of the key.
func DiatonicRoots(key PitchClass, scale ScaleType) []PitchClass {
	pattern := ScalePattern(scale)
	roots := make([]PitchClass, 7)
	for i, off := range pattern {
		roots[i] = key.Transpose(off)
	}
	return roots
}

// DegreeOf returns the 0-based major-scale degree of note relative to key,
// or -1 when the note is not diatonic in the key.
func DegreeOf(key, note PitchClass) int {
	offset := key.Interval(note)
	for i, off := range ScalePattern(ScaleMajor) {
		if off == offset {
			return i
		}
	}
	return -1
}
