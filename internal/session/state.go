package session

import (
	"math/rand"
	"time"

	"github.com/abiram/tonedrill/internal/analytics"
	"github.com/abiram/tonedrill/internal/curriculum"
	"github.com/abiram/tonedrill/internal/quizgen"
	"github.com/abiram/tonedrill/internal/theory"
)

// Phase is the per-trial state machine position.
type Phase int

const (
	PhaseIdle     Phase = iota // between questions
	PhaseAwaiting              // stimulus played, waiting for the learner
	PhaseAnswered              // answer recorded, feedback showing
	PhaseTerminal              // session ended; no further trials
)

// KeyRotationInterval is how many questions share a session key before it
// rotates.
const KeyRotationInterval = 5

// State tracks one running practice session. Mutated only by the single
// orchestrating flow; at most one question is in flight at a time.
type State struct {
	// SessionID is the UUID for this session.
	SessionID string

	// Level is the curriculum level being drilled.
	Level curriculum.Level

	// Key is the active session key. Rotates every KeyRotationInterval
	// questions.
	Key theory.PitchClass

	// QuestionsInKey counts questions asked in the current key.
	QuestionsInKey int

	// CurrentQuestion is the in-flight question (nil outside a trial).
	// Discarded unscored if the session ends mid-question.
	CurrentQuestion *quizgen.Question

	// QuestionShownAt is when the current question was presented, for
	// response-time measurement.
	QuestionShownAt time.Time

	// LastAnswer is the most recently recorded answer, for feedback.
	LastAnswer *analytics.Answer

	// Engine owns the session's answer log.
	Engine *analytics.Engine

	// Generator produces questions.
	Generator *quizgen.Generator

	// RNG drives key rotation. Injected for deterministic tests.
	RNG *rand.Rand

	Phase     Phase
	StartTime time.Time
}

// NewState creates a session for a level, picking an initial key.
func NewState(sessionID string, level curriculum.Level, gen *quizgen.Generator, rng *rand.Rand) *State {
	return &State{
		SessionID: sessionID,
		Level:     level,
		Key:       theory.PitchClass(rng.Intn(12)),
		Engine:    analytics.NewEngine(),
		Generator: gen,
		RNG:       rng,
		Phase:     PhaseIdle,
		StartTime: time.Now(),
	}
}
