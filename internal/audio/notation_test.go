package audio

import (
	"context"
	"testing"

	"github.com/abiram/tonedrill/internal/theory"
)

func TestPlayInterval(t *testing.T) {
	p := NewNotationPlayer()
	ctx := context.Background()

	tests := []struct {
		root      theory.PitchClass
		quality   theory.Quality
		direction theory.Direction
		want      []string
	}{
		{theory.C, theory.IntervalMajor3rd, theory.DirectionAscending, []string{"C", "E"}},
		{theory.C, theory.IntervalMajor3rd, theory.DirectionDescending, []string{"C", "G#"}},
		{theory.A, theory.IntervalPerfect5th, theory.DirectionAscending, []string{"A", "E"}},
		{theory.B, theory.IntervalMinor2nd, theory.DirectionAscending, []string{"B", "C"}},
	}
	for _, tt := range tests {
		got, err := p.PlayInterval(ctx, tt.root, tt.quality, tt.direction, theory.PresentationMelodic)
		if err != nil {
			t.Fatalf("PlayInterval(%s, %s, %s): %v", tt.root, tt.quality, tt.direction, err)
		}
		if len(got.Notes) != 2 || got.Notes[0] != tt.want[0] || got.Notes[1] != tt.want[1] {
			t.Errorf("PlayInterval(%s, %s, %s) = %v, want %v", tt.root, tt.quality, tt.direction, got.Notes, tt.want)
		}
	}

	if _, err := p.PlayInterval(ctx, theory.C, "ninth", theory.DirectionAscending, theory.PresentationMelodic); err == nil {
		t.Error("unknown interval should error")
	}
}

func TestPlayInterval_HarmonicShorter(t *testing.T) {
	p := NewNotationPlayer()
	ctx := context.Background()
	mel, _ := p.PlayInterval(ctx, theory.C, theory.IntervalPerfect5th, theory.DirectionAscending, theory.PresentationMelodic)
	har, _ := p.PlayInterval(ctx, theory.C, theory.IntervalPerfect5th, theory.DirectionAscending, theory.PresentationHarmonic)
	if har.Duration >= mel.Duration {
		t.Errorf("harmonic duration %v should be shorter than melodic %v", har.Duration, mel.Duration)
	}
}

func TestPlayChord(t *testing.T) {
	p := NewNotationPlayer()
	offsets, _ := theory.ChordSemitones(theory.CategoryTriad, theory.TriadMinor)
	got, err := p.PlayChord(context.Background(), theory.A, offsets)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"A", "C", "E"}
	for i := range want {
		if got.Notes[i] != want[i] {
			t.Errorf("A minor = %v, want %v", got.Notes, want)
			break
		}
	}
}

func TestPlayScale(t *testing.T) {
	p := NewNotationPlayer()
	steps, _ := theory.ModeSteps(theory.ModeDorian)
	got, err := p.PlayScale(context.Background(), theory.D, steps)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"D", "E", "F", "G", "A", "B", "C", "D"}
	if len(got.Notes) != len(want) {
		t.Fatalf("D dorian = %v, want %v", got.Notes, want)
	}
	for i := range want {
		if got.Notes[i] != want[i] {
			t.Errorf("D dorian = %v, want %v", got.Notes, want)
			break
		}
	}
}

func TestPlayScaleDegree(t *testing.T) {
	p := NewNotationPlayer()
	ctx := context.Background()

	// Melodic major: degree 4 of C is G alone.
	got, err := p.PlayScaleDegree(ctx, theory.C, 4, theory.ContextMajor)
	if err != nil {
		t.Fatal(err)
	}
	if len(got.Notes) != 1 || got.Notes[0] != "G" {
		t.Errorf("degree 5 of C major = %v, want [G]", got.Notes)
	}

	// Melodic natural minor: degree 2 of A minor is C.
	got, err = p.PlayScaleDegree(ctx, theory.A, 2, theory.ContextNaturalMinor)
	if err != nil {
		t.Fatal(err)
	}
	if len(got.Notes) != 1 || got.Notes[0] != "C" {
		t.Errorf("degree 3 of A minor = %v, want [C]", got.Notes)
	}

	// Harmonic: the chord on degree 4 of C major is G major.
	got, err = p.PlayScaleDegree(ctx, theory.C, 4, theory.ContextMajorTriads)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"G", "B", "D"}
	if len(got.Notes) != 3 {
		t.Fatalf("V of C = %v, want %v", got.Notes, want)
	}
	for i := range want {
		if got.Notes[i] != want[i] {
			t.Errorf("V of C = %v, want %v", got.Notes, want)
			break
		}
	}

	if _, err := p.PlayScaleDegree(ctx, theory.C, 7, theory.ContextMajor); err == nil {
		t.Error("out-of-range degree should error")
	}
}
