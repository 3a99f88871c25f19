package theory

// Triad qualities.
const (
	TriadMajor      Quality = "major"
	TriadMinor      Quality = "minor"
	TriadDiminished Quality = "diminished"
	TriadAugmented  Quality = "augmented"
)

// Seventh-chord qualities.
const (
	SeventhMajor          Quality = "major_7th"
	SeventhMinor          Quality = "minor_7th"
	SeventhDominant       Quality = "dominant_7th"
	SeventhHalfDiminished Quality = "half_diminished_7th"
	SeventhDiminished     Quality = "diminished_7th"
)

// Semitone offsets from the root; root (0) is always included.
var triadSemitones = map[Quality][]int{
	TriadMajor:      {0, 4, 7},
	TriadMinor:      {0, 3, 7},
	TriadDiminished: {0, 3, 6},
	TriadAugmented:  {0, 4, 8},
}

var seventhSemitones = map[Quality][]int{
	SeventhMajor:          {0, 4, 7, 11},
	SeventhMinor:          {0, 3, 7, 10},
	SeventhDominant:       {0, 4, 7, 10},
	SeventhHalfDiminished: {0, 3, 6, 10},
	SeventhDiminished:     {0, 3, 6, 9},
}

// ChordSemitones returns the ordered semitone offsets for a triad or
// seventh-chord quality. The bool is false for unknown qualities.
func ChordSemitones(category Category, q Quality) ([]int, bool) {
	var table map[Quality][]int
	switch category {
	case CategoryTriad:
		table = triadSemitones
	case CategorySeventhChord:
		table = seventhSemitones
	default:
		return nil, false
	}
	offsets, ok := table[q]
	if !ok {
		return nil, false
	}
	out := make([]int, len(offsets))
	copy(out, offsets)
	return out, true
}

// AllTriads returns the triad qualities in table order.
func AllTriads() []Quality {
	return []Quality{TriadMajor, TriadMinor, TriadDiminished, TriadAugmented}
}

// AllSevenths returns the seventh-chord qualities in table order.
func AllSevenths() []Quality {
	return []Quality{SeventhMajor, SeventhMinor, SeventhDominant, SeventhHalfDiminished, SeventhDiminished}
}
