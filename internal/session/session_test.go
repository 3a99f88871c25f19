package session

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/abiram/tonedrill/internal/analytics"
	"github.com/abiram/tonedrill/internal/audio"
	"github.com/abiram/tonedrill/internal/curriculum"
	"github.com/abiram/tonedrill/internal/quizgen"
	"github.com/abiram/tonedrill/internal/theory"
)

func newTestState(t *testing.T, levelID string, seed int64) *State {
	t.Helper()
	level, err := curriculum.GetLevel(levelID)
	if err != nil {
		t.Fatalf("GetLevel(%q): %v", levelID, err)
	}
	rng := rand.New(rand.NewSource(seed))
	gen := quizgen.New(audio.NewNotationPlayer(), rng)
	return NewState("test-session", level, gen, rng)
}

func TestTrialLifecycle(t *testing.T) {
	state := newTestState(t, "triad-all", 1)
	ctx := context.Background()

	if err := BeginTrial(ctx, state); err != nil {
		t.Fatal(err)
	}
	if state.Phase != PhaseAwaiting || state.CurrentQuestion == nil {
		t.Fatalf("after BeginTrial: phase=%d question=%v", state.Phase, state.CurrentQuestion)
	}

	// Double-begin while a question is in flight must fail.
	if err := BeginTrial(ctx, state); err == nil {
		t.Error("BeginTrial allowed a second in-flight question")
	}

	correct := state.CurrentQuestion.CorrectAnswer
	a := HandleAnswer(state, correct)
	if a == nil || !a.IsCorrect {
		t.Fatalf("HandleAnswer = %+v", a)
	}
	if state.Phase != PhaseAnswered {
		t.Errorf("phase = %d, want PhaseAnswered", state.Phase)
	}
	if state.Engine.Count() != 1 {
		t.Errorf("engine count = %d, want 1", state.Engine.Count())
	}

	// Further selections while answered are no-ops.
	if again := HandleAnswer(state, correct); again != nil {
		t.Error("second HandleAnswer scored the same question")
	}
	if state.Engine.Count() != 1 {
		t.Errorf("engine count = %d after duplicate answer", state.Engine.Count())
	}

	NextTrial(state)
	if state.Phase != PhaseIdle {
		t.Errorf("phase = %d, want PhaseIdle", state.Phase)
	}
}

func TestEnd_DiscardsInFlightQuestion(t *testing.T) {
	state := newTestState(t, "triad-all", 2)
	if err := BeginTrial(context.Background(), state); err != nil {
		t.Fatal(err)
	}

	End(state)
	if state.Phase != PhaseTerminal || state.CurrentQuestion != nil {
		t.Errorf("after End: phase=%d question=%v", state.Phase, state.CurrentQuestion)
	}
	if state.Engine.Count() != 0 {
		t.Error("in-flight question was retroactively recorded")
	}
	if err := BeginTrial(context.Background(), state); err == nil {
		t.Error("BeginTrial allowed after End")
	}
}

func TestKeyRotation(t *testing.T) {
	state := newTestState(t, "triad-all", 3)
	ctx := context.Background()

	firstKey := state.Key
	keys := map[theory.PitchClass]bool{}
	for i := 0; i < KeyRotationInterval*3; i++ {
		if err := BeginTrial(ctx, state); err != nil {
			t.Fatal(err)
		}
		keys[state.Key] = true
		if state.CurrentQuestion.SessionKey != state.Key {
			t.Errorf("question key %s != session key %s", state.CurrentQuestion.SessionKey, state.Key)
		}
		HandleAnswer(state, state.CurrentQuestion.CorrectAnswer)
		NextTrial(state)
	}
	if len(keys) < 2 {
		t.Errorf("key never rotated away from %s over %d questions", firstKey, KeyRotationInterval*3)
	}
}

func TestBuildAnswer_Derivations(t *testing.T) {
	q := &quizgen.Question{
		ID:            "q-1",
		Category:      theory.CategoryTriad,
		CorrectAnswer: theory.TriadMinor,
		Root:          theory.E,
		SessionKey:    theory.C,
		Degree:        2,
	}
	a := BuildAnswer(q, theory.TriadMajor, time.Now(), 2500)

	if a.IsCorrect {
		t.Error("wrong answer marked correct")
	}
	if a.FullDescription != "E Minor" {
		t.Errorf("FullDescription = %q, want %q", a.FullDescription, "E Minor")
	}
	if a.ItemType != theory.TriadMinor {
		t.Errorf("ItemType = %s, want correct answer", a.ItemType)
	}
	if a.ScaleDegree != 2 {
		t.Errorf("ScaleDegree = %d, want 2 (E is the third of C)", a.ScaleDegree)
	}
	if a.ResponseTimeMs != 2500 {
		t.Errorf("ResponseTimeMs = %d", a.ResponseTimeMs)
	}
}

func TestBuildAnswer_DegreeSkippedByCategory(t *testing.T) {
	for _, category := range []theory.Category{theory.CategoryScaleDegree, theory.CategoryMode} {
		q := &quizgen.Question{
			ID:            "q-2",
			Category:      category,
			CorrectAnswer: "1",
			Root:          theory.C,
			SessionKey:    theory.C, // root is diatonic, but derivation must still skip
		}
		a := BuildAnswer(q, "1", time.Now(), 100)
		if a.ScaleDegree != analytics.NoDegree {
			t.Errorf("%s answer has ScaleDegree %d, want NoDegree", category, a.ScaleDegree)
		}
	}
}

func TestBuildAnswer_NonDiatonicRoot(t *testing.T) {
	q := &quizgen.Question{
		ID:            "q-3",
		Category:      theory.CategoryInterval,
		CorrectAnswer: theory.IntervalMajor3rd,
		Root:          theory.CSharp,
		SessionKey:    theory.C,
	}
	a := BuildAnswer(q, theory.IntervalMajor3rd, time.Now(), 100)
	if a.ScaleDegree != analytics.NoDegree {
		t.Errorf("non-diatonic root got degree %d", a.ScaleDegree)
	}
}

func TestBuildSummary(t *testing.T) {
	state := newTestState(t, "triad-major-minor", 4)
	ctx := context.Background()

	for i := 0; i < 10; i++ {
		if err := BeginTrial(ctx, state); err != nil {
			t.Fatal(err)
		}
		// Answer correctly except twice.
		sel := state.CurrentQuestion.CorrectAnswer
		if i < 2 {
			if sel == theory.TriadMajor {
				sel = theory.TriadMinor
			} else {
				sel = theory.TriadMajor
			}
		}
		HandleAnswer(state, sel)
		NextTrial(state)
	}

	sum := BuildSummary(state)
	if sum.Stats.TotalQuestions != 10 || sum.Stats.CorrectAnswers != 8 {
		t.Fatalf("summary totals = %d/%d", sum.Stats.CorrectAnswers, sum.Stats.TotalQuestions)
	}
	if sum.Stats.Accuracy != 80 {
		t.Errorf("accuracy = %v, want 80", sum.Stats.Accuracy)
	}
	// triad-major-minor unlocks at 80.
	if !sum.CanAdvance {
		t.Error("CanAdvance = false at threshold accuracy")
	}
}
