package curriculum

import (
	"testing"

	"github.com/abiram/tonedrill/internal/theory"
)

func TestCatalog_Seed(t *testing.T) {
	levels := AllLevels()
	if len(levels) == 0 {
		t.Fatal("empty catalog")
	}

	seen := map[string]bool{}
	for _, l := range levels {
		if seen[l.ID] {
			t.Errorf("duplicate level id %q", l.ID)
		}
		seen[l.ID] = true
		if len(l.Items) == 0 {
			t.Errorf("level %q has empty item set", l.ID)
		}
		if l.UnlockThreshold < 0 || l.UnlockThreshold > 100 {
			t.Errorf("level %q threshold %v out of range", l.ID, l.UnlockThreshold)
		}
		if l.SegmentID == "" {
			t.Errorf("level %q missing segment back-reference", l.ID)
		}
		for _, d := range l.ScaleDegrees {
			if d < 0 || d > 6 {
				t.Errorf("level %q degree index %d out of range", l.ID, d)
			}
		}
		if l.Category == theory.CategoryScaleDegree && l.Context == "" {
			t.Errorf("scale_degree level %q missing context", l.ID)
		}
	}
}

func TestCatalog_FlatViewMatchesSegments(t *testing.T) {
	var fromSegments []string
	for _, seg := range Segments() {
		for _, l := range seg.Levels {
			fromSegments = append(fromSegments, l.ID)
		}
	}
	flat := AllLevels()
	if len(flat) != len(fromSegments) {
		t.Fatalf("flat view has %d levels, segments have %d", len(flat), len(fromSegments))
	}
	for i, l := range flat {
		if l.ID != fromSegments[i] {
			t.Errorf("flat[%d] = %q, segments give %q", i, l.ID, fromSegments[i])
		}
	}
}

func TestCatalog_NoContradictoryLevels(t *testing.T) {
	// Every chord level must yield at least one diatonic candidate;
	// an authored items/degrees combination that filters to nothing
	// would make the level unplayable.
	for _, l := range AllLevels() {
		if l.Category != theory.CategoryTriad && l.Category != theory.CategorySeventhChord {
			continue
		}
		found := false
		degrees := l.ScaleDegrees
		if len(degrees) == 0 {
			degrees = []int{0, 1, 2, 3, 4, 5, 6}
		}
		for _, d := range degrees {
			q := theory.QualityOfDegree(l.Category, theory.ScaleMajor, d)
			for _, item := range l.Items {
				if q == item {
					found = true
				}
			}
		}
		if !found {
			t.Errorf("level %q filters to zero candidates", l.ID)
		}
	}
}

func TestCurrentLevel(t *testing.T) {
	levels := AllLevels()

	if got := CurrentLevel(nil); got.ID != levels[0].ID {
		t.Errorf("CurrentLevel(nil) = %q, want first level %q", got.ID, levels[0].ID)
	}

	allButLast := map[string]bool{}
	for _, l := range levels[:len(levels)-1] {
		allButLast[l.ID] = true
	}
	last := levels[len(levels)-1]
	if got := CurrentLevel(allButLast); got.ID != last.ID {
		t.Errorf("CurrentLevel(all but last) = %q, want %q", got.ID, last.ID)
	}

	all := map[string]bool{}
	for _, l := range levels {
		all[l.ID] = true
	}
	if got := CurrentLevel(all); got.ID != last.ID {
		t.Errorf("CurrentLevel(all) = %q, want terminal %q", got.ID, last.ID)
	}
}

func TestCanAdvance(t *testing.T) {
	l := AllLevels()[2] // interval-wide, threshold 85
	if CanAdvance(l.ID, l.UnlockThreshold-1) {
		t.Errorf("CanAdvance(%q, %.0f) = true, want false", l.ID, l.UnlockThreshold-1)
	}
	if !CanAdvance(l.ID, l.UnlockThreshold) {
		t.Errorf("CanAdvance(%q, %.0f) = false, want true", l.ID, l.UnlockThreshold)
	}
	if CanAdvance("no-such-level", 100) {
		t.Error("CanAdvance(unknown) = true, want false")
	}
}

func TestIsUnlocked(t *testing.T) {
	levels := AllLevels()
	first, second := levels[0], levels[1]

	if !IsUnlocked(first.ID, nil, false) {
		t.Error("first level should always be unlocked")
	}
	if IsUnlocked(second.ID, nil, false) {
		t.Error("second level should be locked with nothing completed")
	}
	if !IsUnlocked(second.ID, map[string]bool{first.ID: true}, false) {
		t.Error("second level should unlock once the first is completed")
	}
	if !IsUnlocked(second.ID, nil, true) {
		t.Error("debug override should unlock everything")
	}
	if IsUnlocked("no-such-level", nil, true) {
		t.Error("unknown level should stay locked even with override")
	}
}

func TestGetLevel(t *testing.T) {
	l := AllLevels()[0]
	got, err := GetLevel(l.ID)
	if err != nil || got.ID != l.ID {
		t.Errorf("GetLevel(%q) = %v, %v", l.ID, got.ID, err)
	}
	if _, err := GetLevel("bogus"); err == nil {
		t.Error("GetLevel(bogus) should error")
	}
}

func TestDisplayName(t *testing.T) {
	tests := []struct {
		in   theory.Quality
		want string
	}{
		{"major", "Major"},
		{"minor_3rd", "Minor 3rd"},
		{"half_diminished_7th", "Half Diminished 7th"},
		{"1", "1"},
	}
	for _, tt := range tests {
		if got := DisplayName(tt.in); got != tt.want {
			t.Errorf("DisplayName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
