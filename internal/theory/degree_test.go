package theory

import "testing"

func TestTriadQualityOfDegree_Major(t *testing.T) {
	want := []Quality{
		TriadMajor, TriadMinor, TriadMinor, TriadMajor,
		TriadMajor, TriadMinor, TriadDiminished,
	}
	for d := 0; d < 7; d++ {
		got := TriadQualityOfDegree(ScaleMajor, d)
		if got != want[d] {
			t.Errorf("TriadQualityOfDegree(major, %d) = %s, want %s", d, got, want[d])
		}
	}
}

func TestTriadQualityOfDegree_NaturalMinor(t *testing.T) {
	want := []Quality{
		TriadMinor, TriadDiminished, TriadMajor, TriadMinor,
		TriadMinor, TriadMajor, TriadMajor,
	}
	for d := 0; d < 7; d++ {
		got := TriadQualityOfDegree(ScaleNaturalMinor, d)
		if got != want[d] {
			t.Errorf("TriadQualityOfDegree(natural_minor, %d) = %s, want %s", d, got, want[d])
		}
	}
}

func TestSeventhQualityOfDegree_Major(t *testing.T) {
	want := []Quality{
		SeventhMajor, SeventhMinor, SeventhMinor, SeventhMajor,
		SeventhDominant, SeventhMinor, SeventhHalfDiminished,
	}
	for d := 0; d < 7; d++ {
		got := SeventhQualityOfDegree(ScaleMajor, d)
		if got != want[d] {
			t.Errorf("SeventhQualityOfDegree(major, %d) = %s, want %s", d, got, want[d])
		}
	}
}

func TestSeventhQualityOfDegree_NaturalMinor(t *testing.T) {
	want := []Quality{
		SeventhMinor, SeventhHalfDiminished, SeventhMajor, SeventhMinor,
		SeventhMinor, SeventhMajor, SeventhDominant,
	}
	for d := 0; d < 7; d++ {
		got := SeventhQualityOfDegree(ScaleNaturalMinor, d)
		if got != want[d] {
			t.Errorf("SeventhQualityOfDegree(natural_minor, %d) = %s, want %s", d, got, want[d])
		}
	}
}

func TestDiatonicRoots(t *testing.T) {
	roots := DiatonicRoots(C, ScaleMajor)
	want := []PitchClass{C, D, E, F, G, A, B}
	for i := range want {
		if roots[i] != want[i] {
			t.Errorf("DiatonicRoots(C)[%d] = %s, want %s", i, roots[i], want[i])
		}
	}

	// Works for every key: roots must all be distinct and start on the key.
	for _, key := range AllPitchClasses() {
		roots := DiatonicRoots(key, ScaleMajor)
		if roots[0] != key {
			t.Errorf("DiatonicRoots(%s)[0] = %s, want %s", key, roots[0], key)
		}
		seen := map[PitchClass]bool{}
		for _, r := range roots {
			if seen[r] {
				t.Errorf("DiatonicRoots(%s) has duplicate root %s", key, r)
			}
			seen[r] = true
		}
	}
}

func TestDegreeOf(t *testing.T) {
	tests := []struct {
		key  PitchClass
		note PitchClass
		want int
	}{
		{C, C, 0},
		{C, D, 1},
		{C, B, 6},
		{C, CSharp, -1}, // chromatic
		{G, FSharp, 6},
		{A, CSharp, 2},
	}
	for _, tt := range tests {
		if got := DegreeOf(tt.key, tt.note); got != tt.want {
			t.Errorf("DegreeOf(%s, %s) = %d, want %d", tt.key, tt.note, got, tt.want)
		}
	}
}

func TestRomanNumeral(t *testing.T) {
	if got := RomanNumeral(0); got != "I" {
		t.Errorf("RomanNumeral(0) = %q, want I", got)
	}
	if got := RomanNumeral(6); got != "vii°" {
		t.Errorf("RomanNumeral(6) = %q, want vii°", got)
	}
	if got := RomanNumeral(7); got != "?" {
		t.Errorf("RomanNumeral(7) = %q, want ?", got)
	}
}

func TestPitchClassArithmetic(t *testing.T) {
	if got := B.Transpose(1); got != C {
		t.Errorf("B.Transpose(1) = %s, want C", got)
	}
	if got := C.Transpose(-1); got != B {
		t.Errorf("C.Transpose(-1) = %s, want B", got)
	}
	if got := G.Interval(C); got != 5 {
		t.Errorf("G.Interval(C) = %d, want 5", got)
	}
}

func TestParsePitch(t *testing.T) {
	p, ok := ParsePitch("F#")
	if !ok || p != FSharp {
		t.Errorf("ParsePitch(F#) = %s, %v", p, ok)
	}
	if _, ok := ParsePitch("H"); ok {
		t.Error("ParsePitch(H) should fail")
	}
}

func TestIntervalSemitones(t *testing.T) {
	tests := []struct {
		q    Quality
		want int
	}{
		{IntervalMinor2nd, 1},
		{IntervalTritone, 6},
		{IntervalPerfect5th, 7},
		{IntervalOctave, 12},
	}
	for _, tt := range tests {
		got, ok := IntervalSemitones(tt.q)
		if !ok || got != tt.want {
			t.Errorf("IntervalSemitones(%s) = %d, %v, want %d", tt.q, got, ok, tt.want)
		}
	}
	if _, ok := IntervalSemitones("ninth"); ok {
		t.Error("IntervalSemitones(ninth) should fail")
	}
}

func TestChordSemitones(t *testing.T) {
	offsets, ok := ChordSemitones(CategoryTriad, TriadMajor)
	if !ok {
		t.Fatal("ChordSemitones(triad, major) not found")
	}
	want := []int{0, 4, 7}
	for i := range want {
		if offsets[i] != want[i] {
			t.Errorf("major triad offsets = %v, want %v", offsets, want)
			break
		}
	}

	if _, ok := ChordSemitones(CategoryMode, ModeDorian); ok {
		t.Error("ChordSemitones should reject non-chord categories")
	}

	// Returned slices must be copies, not aliases into the table.
	offsets[0] = 99
	again, _ := ChordSemitones(CategoryTriad, TriadMajor)
	if again[0] != 0 {
		t.Error("ChordSemitones aliases internal table")
	}
}

func TestModeSteps(t *testing.T) {
	for _, m := range AllModes() {
		steps, ok := ModeSteps(m)
		if !ok {
			t.Fatalf("ModeSteps(%s) not found", m)
		}
		if len(steps) != 7 || steps[0] != 0 {
			t.Errorf("ModeSteps(%s) = %v, want 7 steps starting at 0", m, steps)
		}
		for i := 1; i < len(steps); i++ {
			if steps[i] <= steps[i-1] {
				t.Errorf("ModeSteps(%s) not strictly increasing: %v", m, steps)
			}
		}
	}
}
