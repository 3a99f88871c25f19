// Package session orchestrates the per-trial state machine: generate and
// play a question, wait for the learner's selection, derive the Answer
// record, and hand it to the analytics engine.
package session

import (
	"context"
	"fmt"
	"time"

	"github.com/abiram/tonedrill/internal/analytics"
	"github.com/abiram/tonedrill/internal/curriculum"
	"github.com/abiram/tonedrill/internal/quizgen"
	"github.com/abiram/tonedrill/internal/theory"
)

// BeginTrial generates the next question, rotating the session key when
// its block is used up, and moves the machine to PhaseAwaiting.
func BeginTrial(ctx context.Context, state *State) error {
	if state.Phase == PhaseTerminal {
		return fmt.Errorf("session has ended")
	}
	if state.Phase == PhaseAwaiting {
		return fmt.Errorf("a question is already in flight")
	}

	if state.QuestionsInKey >= KeyRotationInterval {
		state.Key = quizgen.PickKey(state.RNG, state.Key)
		state.QuestionsInKey = 0
	}

	q, err := state.Generator.Next(ctx, state.Level, state.Key)
	if err != nil {
		return err
	}

	state.CurrentQuestion = q
	state.QuestionShownAt = time.Now()
	state.QuestionsInKey++
	state.LastAnswer = nil
	state.Phase = PhaseAwaiting
	return nil
}

// HandleAnswer scores the learner's first selection for the in-flight
// question and records it. Selections outside PhaseAwaiting are no-ops:
// at most one answer per question, enforced here so the engine is never
// called twice for the same question.
func HandleAnswer(state *State, selected theory.Quality) *analytics.Answer {
	if state.Phase != PhaseAwaiting || state.CurrentQuestion == nil {
		return nil
	}

	responseMs := int(time.Since(state.QuestionShownAt).Milliseconds())
	if responseMs < 0 {
		responseMs = 0
	}
	a := BuildAnswer(state.CurrentQuestion, selected, time.Now(), responseMs)
	state.Engine.Record(a)

	state.LastAnswer = &a
	state.CurrentQuestion = nil
	state.Phase = PhaseAnswered
	return &a
}

// NextTrial acknowledges feedback and returns the machine to PhaseIdle.
func NextTrial(state *State) {
	if state.Phase == PhaseAnswered {
		state.Phase = PhaseIdle
	}
}

// End terminates the session. An in-flight question is discarded without
// being scored — it must never be retroactively recorded.
func End(state *State) {
	state.CurrentQuestion = nil
	state.Phase = PhaseTerminal
}

// BuildAnswer derives the Answer record for a question and selection.
func BuildAnswer(q *quizgen.Question, selected theory.Quality, submittedAt time.Time, responseMs int) analytics.Answer {
	return analytics.Answer{
		QuestionID:      q.ID,
		UserAnswer:      selected,
		CorrectAnswer:   q.CorrectAnswer,
		IsCorrect:       quizgen.CheckAnswer(selected, q),
		FullDescription: fmt.Sprintf("%s %s", q.Root, curriculum.DisplayName(q.CorrectAnswer)),
		SubmittedAt:     submittedAt,
		ResponseTimeMs:  responseMs,
		ItemType:        q.CorrectAnswer,
		ScaleDegree:     deriveScaleDegree(q),
		SessionKey:      q.SessionKey,
		Category:        q.Category,
		Direction:       q.Direction,
		Presentation:    q.Presentation,
	}
}

// deriveScaleDegree computes the question root's diatonic position relative
// to the session key. Skipped entirely for scale_degree and mode questions;
// a non-diatonic root (impossible for diatonically filtered categories)
// also yields NoDegree.
func deriveScaleDegree(q *quizgen.Question) int {
	switch q.Category {
	case theory.CategoryScaleDegree, theory.CategoryMode:
		return analytics.NoDegree
	}
	d := theory.DegreeOf(q.SessionKey, q.Root)
	if d < 0 {
		return analytics.NoDegree
	}
	return d
}
