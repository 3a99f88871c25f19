package analytics

import (
	"fmt"
	"reflect"
	"testing"
	"time"

	"github.com/abiram/tonedrill/internal/curriculum"
	"github.com/abiram/tonedrill/internal/theory"
)

// answer builds a well-formed Answer the way the session layer does.
func answer(root theory.PitchClass, correct, user theory.Quality, category theory.Category, degree int) Answer {
	return Answer{
		QuestionID:      fmt.Sprintf("q-%s-%s", root, correct),
		UserAnswer:      user,
		CorrectAnswer:   correct,
		IsCorrect:       user == correct,
		FullDescription: fmt.Sprintf("%s %s", root, curriculum.DisplayName(correct)),
		SubmittedAt:     time.Now(),
		ResponseTimeMs:  1500,
		ItemType:        correct,
		ScaleDegree:     degree,
		SessionKey:      theory.C,
		Category:        category,
	}
}

func TestSessionStats_Empty(t *testing.T) {
	e := NewEngine()
	stats := e.SessionStats()

	if stats.TotalQuestions != 0 || stats.CorrectAnswers != 0 {
		t.Errorf("empty stats = %+v", stats)
	}
	if stats.Accuracy != 0 {
		t.Errorf("empty accuracy = %v, want 0", stats.Accuracy)
	}
	if stats.ItemWeaknesses == nil || stats.DegreeWeaknesses == nil ||
		stats.VariantWeaknesses == nil || stats.Confusions == nil {
		t.Error("list fields must be empty, never nil")
	}
	if len(e.Insights()) != 0 {
		t.Errorf("empty log insights = %v, want none", e.Insights())
	}
}

func TestSessionStats_Idempotent(t *testing.T) {
	e := NewEngine()
	e.Record(answer(theory.C, theory.TriadMajor, theory.TriadMajor, theory.CategoryTriad, 0))
	e.Record(answer(theory.D, theory.TriadMinor, theory.TriadMajor, theory.CategoryTriad, 1))

	first := e.SessionStats()
	second := e.SessionStats()
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated SessionStats differ:\n%+v\n%+v", first, second)
	}
}

func TestSessionStats_MajorMinorScenario(t *testing.T) {
	// 10 answers on "C Major" triads: 7 correct, 3 mistaking minor for major.
	e := NewEngine()
	for i := 0; i < 7; i++ {
		e.Record(answer(theory.C, theory.TriadMajor, theory.TriadMajor, theory.CategoryTriad, 0))
	}
	for i := 0; i < 3; i++ {
		e.Record(answer(theory.C, theory.TriadMajor, theory.TriadMinor, theory.CategoryTriad, 0))
	}

	stats := e.SessionStats()
	if stats.TotalQuestions != 10 || stats.CorrectAnswers != 7 {
		t.Fatalf("totals = %d/%d, want 7/10", stats.CorrectAnswers, stats.TotalQuestions)
	}
	if stats.Accuracy != 70.0 {
		t.Errorf("accuracy = %v, want 70.0", stats.Accuracy)
	}

	if len(stats.Confusions) != 1 {
		t.Fatalf("confusions = %+v, want one pair", stats.Confusions)
	}
	top := stats.Confusions[0]
	if top.Mistook != "Minor" || top.ActuallyWas != "Major" || top.Count != 3 {
		t.Errorf("top confusion = %+v, want Minor/Major x3", top)
	}

	insights := e.Insights()
	if len(insights) == 0 {
		t.Fatal("no insights")
	}
	if insights[0] != "Keep practicing. Target the weak items below." {
		t.Errorf("band insight = %q, want the 60-75 band message", insights[0])
	}
}

func TestConfusionCountsSumToIncorrect(t *testing.T) {
	e := NewEngine()
	wrong := 0
	pairs := []struct {
		correct, user theory.Quality
	}{
		{theory.TriadMajor, theory.TriadMinor},
		{theory.TriadMajor, theory.TriadMinor},
		{theory.TriadMinor, theory.TriadDiminished},
		{theory.TriadDiminished, theory.TriadDiminished}, // correct
		{theory.TriadMinor, theory.TriadMajor},
	}
	for _, p := range pairs {
		e.Record(answer(theory.C, p.correct, p.user, theory.CategoryTriad, 0))
		if p.correct != p.user {
			wrong++
		}
	}

	sum := 0
	for _, c := range e.SessionStats().Confusions {
		sum += c.Count
	}
	if sum != wrong {
		t.Errorf("confusion counts sum to %d, want %d incorrect answers", sum, wrong)
	}
}

func TestItemWeaknesses_OrderAndTies(t *testing.T) {
	e := NewEngine()
	// "C Major": 2/2, "D Minor": 0/2, "E Minor": 1/2, "F Major": 0/2.
	e.Record(answer(theory.C, theory.TriadMajor, theory.TriadMajor, theory.CategoryTriad, 0))
	e.Record(answer(theory.C, theory.TriadMajor, theory.TriadMajor, theory.CategoryTriad, 0))
	e.Record(answer(theory.D, theory.TriadMinor, theory.TriadMajor, theory.CategoryTriad, 1))
	e.Record(answer(theory.D, theory.TriadMinor, theory.TriadMajor, theory.CategoryTriad, 1))
	e.Record(answer(theory.E, theory.TriadMinor, theory.TriadMinor, theory.CategoryTriad, 2))
	e.Record(answer(theory.E, theory.TriadMinor, theory.TriadMajor, theory.CategoryTriad, 2))
	e.Record(answer(theory.F, theory.TriadMajor, theory.TriadMinor, theory.CategoryTriad, 3))
	e.Record(answer(theory.F, theory.TriadMajor, theory.TriadMinor, theory.CategoryTriad, 3))

	items := e.SessionStats().ItemWeaknesses
	wantOrder := []string{"D Minor", "F Major", "E Minor", "C Major"}
	if len(items) != len(wantOrder) {
		t.Fatalf("got %d items, want %d", len(items), len(wantOrder))
	}
	for i, w := range items {
		if w.Label != wantOrder[i] {
			t.Errorf("item[%d] = %s (%.0f%%), want %s", i, w.Label, w.Accuracy, wantOrder[i])
		}
	}
}

func TestDegreeWeaknesses(t *testing.T) {
	e := NewEngine()
	e.Record(answer(theory.G, theory.TriadMajor, theory.TriadMajor, theory.CategoryTriad, 4))
	e.Record(answer(theory.G, theory.TriadMajor, theory.TriadMinor, theory.CategoryTriad, 4))
	e.Record(answer(theory.B, theory.TriadDiminished, theory.TriadMinor, theory.CategoryTriad, 6))

	// Mode answers never carry a degree and must not participate.
	a := answer(theory.C, theory.ModeDorian, theory.ModeDorian, theory.CategoryMode, NoDegree)
	e.Record(a)

	degrees := e.SessionStats().DegreeWeaknesses
	if len(degrees) != 2 {
		t.Fatalf("got %d degree groups, want 2: %+v", len(degrees), degrees)
	}
	// vii° at 0% sorts before V at 50%.
	if degrees[0].Label != "vii°" || degrees[0].Accuracy != 0 {
		t.Errorf("weakest degree = %+v, want vii° at 0%%", degrees[0])
	}
	if degrees[1].Label != "V" || degrees[1].Accuracy != 50 {
		t.Errorf("second degree = %+v, want V at 50%%", degrees[1])
	}
}

func intervalAnswer(correct, user theory.Quality, d theory.Direction, p theory.Presentation) Answer {
	a := answer(theory.C, correct, user, theory.CategoryInterval, 0)
	a.Direction = d
	a.Presentation = p
	return a
}

func TestVariantWeaknesses(t *testing.T) {
	e := NewEngine()
	e.Record(intervalAnswer(theory.IntervalMinor3rd, theory.IntervalMajor3rd, theory.DirectionAscending, theory.PresentationMelodic))
	e.Record(intervalAnswer(theory.IntervalMinor3rd, theory.IntervalMinor3rd, theory.DirectionAscending, theory.PresentationMelodic))
	e.Record(intervalAnswer(theory.IntervalMinor3rd, theory.IntervalMinor3rd, theory.DirectionDescending, theory.PresentationMelodic))

	// Interval answers without direction/presentation never join a variant.
	e.Record(answer(theory.C, theory.IntervalPerfect5th, theory.IntervalPerfect5th, theory.CategoryInterval, 0))

	variants := e.SessionStats().VariantWeaknesses
	if len(variants) != 2 {
		t.Fatalf("got %d variants, want 2: %+v", len(variants), variants)
	}
	if variants[0].Accuracy != 50 || variants[0].Direction != theory.DirectionAscending {
		t.Errorf("weakest variant = %+v", variants[0])
	}
	wantLabel := "Minor 3rd (ascending, melodic)"
	if variants[0].Label != wantLabel {
		t.Errorf("variant label = %q, want %q", variants[0].Label, wantLabel)
	}
}

func TestConfusions_IntervalSuffix(t *testing.T) {
	e := NewEngine()
	e.Record(intervalAnswer(theory.IntervalMinor3rd, theory.IntervalMajor3rd, theory.DirectionAscending, theory.PresentationMelodic))

	confusions := e.SessionStats().Confusions
	if len(confusions) != 1 {
		t.Fatalf("confusions = %+v", confusions)
	}
	if confusions[0].Mistook != "Major 3rd (ascending, melodic)" {
		t.Errorf("mistook = %q, want direction/presentation suffix", confusions[0].Mistook)
	}
}

func TestInsights_ConfusionNeedsMoreThanTwoItems(t *testing.T) {
	// Only two distinct qualities attempted: a repeated confusion must not
	// be reported, since any miss trivially picks the only alternative.
	e := NewEngine()
	for i := 0; i < 3; i++ {
		e.Record(answer(theory.C, theory.TriadMajor, theory.TriadMinor, theory.CategoryTriad, 0))
	}
	e.Record(answer(theory.D, theory.TriadMinor, theory.TriadMinor, theory.CategoryTriad, 1))

	for _, line := range e.Insights() {
		if len(line) > 12 && line[:12] == "You answered" {
			t.Errorf("confusion reported with only 2 distinct items: %q", line)
		}
	}

	// A third distinct quality unlocks the rule.
	e.Record(answer(theory.B, theory.TriadDiminished, theory.TriadDiminished, theory.CategoryTriad, 6))
	found := false
	for _, line := range e.Insights() {
		if len(line) > 12 && line[:12] == "You answered" {
			found = true
		}
	}
	if !found {
		t.Errorf("top confusion not reported with 3 distinct items: %v", e.Insights())
	}
}

func TestInsights_Bands(t *testing.T) {
	tests := []struct {
		correct, total int
		want           string
	}{
		{10, 10, "Excellent session! You're ready to advance."},
		{8, 10, "Good progress. You're almost there."},
		{6, 10, "Keep practicing. Target the weak items below."},
		{3, 10, "This level is still challenging. Slow down and listen twice before answering."},
	}
	for _, tt := range tests {
		e := NewEngine()
		for i := 0; i < tt.correct; i++ {
			e.Record(answer(theory.C, theory.TriadMajor, theory.TriadMajor, theory.CategoryTriad, 0))
		}
		for i := tt.correct; i < tt.total; i++ {
			e.Record(answer(theory.C, theory.TriadMajor, theory.TriadMinor, theory.CategoryTriad, 0))
		}
		insights := e.Insights()
		if len(insights) == 0 || insights[0] != tt.want {
			t.Errorf("%d/%d: band = %v, want %q", tt.correct, tt.total, insights, tt.want)
		}
	}
}

func TestInsights_VariantFocusAndStrength(t *testing.T) {
	e := NewEngine()
	// Weak variant: minor 2nd descending, 0/2.
	e.Record(intervalAnswer(theory.IntervalMinor2nd, theory.IntervalMajor2nd, theory.DirectionDescending, theory.PresentationMelodic))
	e.Record(intervalAnswer(theory.IntervalMinor2nd, theory.IntervalMajor2nd, theory.DirectionDescending, theory.PresentationMelodic))
	// Strong variant: perfect 5th ascending, 2/2.
	e.Record(intervalAnswer(theory.IntervalPerfect5th, theory.IntervalPerfect5th, theory.DirectionAscending, theory.PresentationMelodic))
	e.Record(intervalAnswer(theory.IntervalPerfect5th, theory.IntervalPerfect5th, theory.DirectionAscending, theory.PresentationMelodic))

	var focus string
	for _, line := range e.Insights() {
		if len(line) > 10 && line[:10] == "Focus area" {
			focus = line
		}
	}
	if focus == "" {
		t.Fatalf("no focus line in %v", e.Insights())
	}
	wantFocus := "Focus area: Minor 2nd (descending, melodic) at 0% accuracy."
	wantStrength := "Strength: Perfect 5th (ascending, melodic) at 100% accuracy."
	if focus != wantFocus+" "+wantStrength {
		t.Errorf("focus line = %q, want %q", focus, wantFocus+" "+wantStrength)
	}
}

func TestReset(t *testing.T) {
	e := NewEngine()
	e.Record(answer(theory.C, theory.TriadMajor, theory.TriadMajor, theory.CategoryTriad, 0))
	e.Reset()
	if e.Count() != 0 {
		t.Errorf("Count after Reset = %d", e.Count())
	}
	if stats := e.SessionStats(); stats.TotalQuestions != 0 {
		t.Errorf("stats after Reset = %+v", stats)
	}
}

func TestAnswers_ReturnsCopy(t *testing.T) {
	e := NewEngine()
	e.Record(answer(theory.C, theory.TriadMajor, theory.TriadMajor, theory.CategoryTriad, 0))
	got := e.Answers()
	got[0].IsCorrect = false
	if !e.Answers()[0].IsCorrect {
		t.Error("Answers aliases the internal log")
	}
}
