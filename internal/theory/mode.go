package theory

// Mode qualities.
const (
	ModeIonian     Quality = "ionian"
	ModeDorian     Quality = "dorian"
	ModePhrygian   Quality = "phrygian"
	ModeLydian     Quality = "lydian"
	ModeMixolydian Quality = "mixolydian"
	ModeAeolian    Quality = "aeolian"
	ModeLocrian    Quality = "locrian"
)

// ScaleType selects a 7-note scale pattern for degree arithmetic.
type ScaleType string

const (
	ScaleMajor        ScaleType = "major"
	ScaleNaturalMinor ScaleType = "natural_minor"
)

// MajorScale is the 7 semitone offsets defining "diatonic" for major-context
// questions. NaturalMinorScale is the natural-minor substitution. Both are
// immutable; callers receive copies.
var (
	majorScale        = [7]int{0, 2, 4, 5, 7, 9, 11}
	naturalMinorScale = [7]int{0, 2, 3, 5, 7, 8, 10}
)

var modeSteps = map[Quality][7]int{
	ModeIonian:     {0, 2, 4, 5, 7, 9, 11},
	ModeDorian:     {0, 2, 3, 5, 7, 9, 10},
	ModePhrygian:   {0, 1, 3, 5, 7, 8, 10},
	ModeLydian:     {0, 2, 4, 6, 7, 9, 11},
	ModeMixolydian: {0, 2, 4, 5, 7, 9, 10},
	ModeAeolian:    {0, 2, 3, 5, 7, 8, 10},
	ModeLocrian:    {0, 1, 3, 5, 6, 8, 10},
}

// ScalePattern returns the 7 ascending offsets for a scale type.
func ScalePattern(s ScaleType) []int {
	if s == ScaleNaturalMinor {
		pat := naturalMinorScale
		return pat[:]
	}
	pat := majorScale
	return pat[:]
}

// ModeSteps returns the 7-step pattern for a mode quality (first offset
// always 0, strictly increasing). The bool is false for unknown modes.
func ModeSteps(q Quality) ([]int, bool) {
	pat, ok := modeSteps[q]
	if !ok {
		return nil, false
	}
	return pat[:], true
}

// AllModes returns the mode qualities in brightness-agnostic catalog order.
func AllModes() []Quality {
	return []Quality{
		ModeIonian, ModeDorian, ModePhrygian, ModeLydian,
		ModeMixolydian, ModeAeolian, ModeLocrian,
	}
}

// DegreeQualities are the scale-degree labels "1".."7".
func DegreeQualities() []Quality {
	return []Quality{"1", "2", "3", "4", "5", "6", "7"}
}
