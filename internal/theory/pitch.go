// Package theory holds the static music-theory tables: pitch classes,
// interval and chord semitone sets, mode patterns, and the diatonic
// chord-building rule. Everything here is a pure lookup with no state.
package theory

// PitchClass is one of the 12 chromatic pitch classes, 0 = C.
type PitchClass int

const (
	C PitchClass = iota
	CSharp
	D
	DSharp
	E
	F
	FSharp
	G
	GSharp
	A
	ASharp
	B
)

// pitchNames is the fixed chromatic order used everywhere in the app.
var pitchNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// String returns the sharp-spelled name of the pitch class.
func (p PitchClass) String() string {
	return pitchNames[((int(p)%12)+12)%12]
}

// Transpose returns the pitch class n semitones above p (n may be negative).
func (p PitchClass) Transpose(n int) PitchClass {
	return PitchClass((((int(p) + n) % 12) + 12) % 12)
}

// Interval returns the ascending semitone distance from p to q (0-11).
func (p PitchClass) Interval(q PitchClass) int {
	return ((int(q) - int(p)) % 12 + 12) % 12
}

// AllPitchClasses returns the 12 pitch classes in chromatic order.
func AllPitchClasses() []PitchClass {
	all := make([]PitchClass, 12)
	for i := range all {
		all[i] = PitchClass(i)
	}
	return all
}

// ParsePitch returns the pitch class for a sharp-spelled name like "F#".
// The bool is false if the name is not one of the 12 chromatic names.
func ParsePitch(name string) (PitchClass, bool) {
	for i, n := range pitchNames {
		if n == name {
			return PitchClass(i), true
		}
	}
	return 0, false
}
