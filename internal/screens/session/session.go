package session

import (
	"context"
	"math/rand"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"

	"github.com/abiram/tonedrill/internal/audio"
	"github.com/abiram/tonedrill/internal/curriculum"
	"github.com/abiram/tonedrill/internal/quizgen"
	"github.com/abiram/tonedrill/internal/router"
	"github.com/abiram/tonedrill/internal/screen"
	"github.com/abiram/tonedrill/internal/screens/summary"
	sess "github.com/abiram/tonedrill/internal/session"
	"github.com/abiram/tonedrill/internal/store"
	"github.com/abiram/tonedrill/internal/theory"
	"github.com/abiram/tonedrill/internal/ui/layout"
)

// targetQuestions is the session length; the learner can end early with Esc.
const targetQuestions = 20

// SessionScreen implements screen.Screen for an active practice session.
type SessionScreen struct {
	st    *store.Store
	state *sess.State

	// mcSelected indexes into the current question's Choices.
	mcSelected int

	// showStimulus is true while the played notes are on screen.
	showStimulus bool

	quitConfirm bool
	ending      bool
	errMsg      string
}

var _ screen.Screen = (*SessionScreen)(nil)
var _ screen.KeyHintProvider = (*SessionScreen)(nil)

// New creates a SessionScreen for a level. st may be nil (nothing is
// persisted). keyOverride pins the starting session key.
func New(st *store.Store, level curriculum.Level, keyOverride *theory.PitchClass) *SessionScreen {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	gen := quizgen.New(audio.NewNotationPlayer(), rng)
	state := sess.NewState(uuid.NewString(), level, gen, rng)
	if keyOverride != nil {
		state.Key = *keyOverride
	}
	return &SessionScreen{
		st:    st,
		state: state,
	}
}

func (s *SessionScreen) Init() tea.Cmd {
	return s.beginTrial()
}

func (s *SessionScreen) Title() string {
	return "Practice"
}

// KeyLabel reports the active session key for the header.
func (s *SessionScreen) KeyLabel() string {
	if s.state == nil {
		return ""
	}
	return s.state.Key.String()
}

func (s *SessionScreen) KeyHints() []layout.KeyHint {
	if s.quitConfirm {
		return []layout.KeyHint{
			{Key: "Y", Description: "End session"},
			{Key: "N", Description: "Keep going"},
		}
	}
	if s.state.Phase == sess.PhaseAnswered {
		return []layout.KeyHint{
			{Key: "any key", Description: "Continue"},
		}
	}
	return []layout.KeyHint{
		{Key: "1-4 ↑↓", Description: "Select"},
		{Key: "Enter", Description: "Answer"},
		{Key: "P", Description: "Replay"},
		{Key: "Esc", Description: "End"},
	}
}

func (s *SessionScreen) View(width, height int) string {
	if s.errMsg != "" {
		return renderError(width, s.errMsg)
	}
	if s.quitConfirm {
		return renderQuitConfirm(width)
	}
	if s.ending {
		return renderSaving(width)
	}
	if s.state.Phase == sess.PhaseAnswered {
		return s.renderFeedback(width)
	}
	return s.renderQuestionView(width)
}

func (s *SessionScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case trialStartedMsg:
		return s.handleTrialStarted(msg)

	case stimulusDoneMsg:
		s.showStimulus = false
		return s, nil

	case sessionEndMsg:
		return s.handleSessionEnd()

	case sessionSavedMsg:
		return s.handleSessionSaved(msg)

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	return s, nil
}

// beginTrial advances the session state machine to the next question.
func (s *SessionScreen) beginTrial() tea.Cmd {
	state := s.state
	return func() tea.Msg {
		return trialStartedMsg{Err: sess.BeginTrial(context.Background(), state)}
	}
}

func (s *SessionScreen) handleTrialStarted(msg trialStartedMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.errMsg = msg.Err.Error()
		return s, nil
	}
	s.mcSelected = 0
	s.showStimulus = true
	return s, s.stimulusTimer()
}

// stimulusTimer hides the notes after the playback window, imitating a
// transient audio stimulus.
func (s *SessionScreen) stimulusTimer() tea.Cmd {
	d := 2 * time.Second
	if q := s.state.CurrentQuestion; q != nil && q.PlayDuration > 0 {
		d = q.PlayDuration + time.Second
	}
	return tea.Tick(d, func(time.Time) tea.Msg {
		return stimulusDoneMsg{}
	})
}

func (s *SessionScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	// Error state — any key goes back.
	if s.errMsg != "" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	if s.ending {
		return s, nil
	}

	// Quit confirmation dialog.
	if s.quitConfirm {
		switch key {
		case "y", "Y":
			s.quitConfirm = false
			return s, func() tea.Msg { return sessionEndMsg{} }
		case "n", "N", "esc":
			s.quitConfirm = false
			return s, nil
		}
		return s, nil
	}

	// Feedback — any key continues.
	if s.state.Phase == sess.PhaseAnswered {
		if s.state.Engine.Count() >= targetQuestions {
			return s, func() tea.Msg { return sessionEndMsg{} }
		}
		sess.NextTrial(s.state)
		return s, s.beginTrial()
	}

	// Active question.
	if s.state.Phase == sess.PhaseAwaiting {
		q := s.state.CurrentQuestion
		switch key {
		case "esc":
			s.quitConfirm = true
			return s, nil
		case "p":
			s.showStimulus = true
			return s, s.stimulusTimer()
		case "enter":
			return s.submitAnswer()
		case "up", "k":
			if s.mcSelected > 0 {
				s.mcSelected--
			}
			return s, nil
		case "down", "j":
			if s.mcSelected < len(q.Choices)-1 {
				s.mcSelected++
			}
			return s, nil
		case "1", "2", "3", "4", "5", "6", "7", "8", "9":
			idx := int(key[0] - '1')
			if idx < len(q.Choices) {
				s.mcSelected = idx
				return s.submitAnswer()
			}
			return s, nil
		}
	}

	return s, nil
}

// submitAnswer records the current selection.
func (s *SessionScreen) submitAnswer() (screen.Screen, tea.Cmd) {
	q := s.state.CurrentQuestion
	if q == nil || s.mcSelected < 0 || s.mcSelected >= len(q.Choices) {
		return s, nil
	}
	sess.HandleAnswer(s.state, q.Choices[s.mcSelected])
	s.showStimulus = false
	return s, nil
}

// handleSessionEnd finalizes the session, persists it, and prepares the
// summary.
func (s *SessionScreen) handleSessionEnd() (screen.Screen, tea.Cmd) {
	s.ending = true
	sess.End(s.state)
	sum := sess.BuildSummary(s.state)

	st := s.st
	state := s.state
	return s, func() tea.Msg {
		if st == nil {
			return sessionSavedMsg{Summary: sum}
		}

		ctx := context.Background()
		rec := store.SessionRecord{
			ID:             state.SessionID,
			LevelID:        state.Level.ID,
			StartedAt:      state.StartTime,
			EndedAt:        time.Now(),
			TotalQuestions: sum.Stats.TotalQuestions,
			CorrectAnswers: sum.Stats.CorrectAnswers,
			Accuracy:       sum.Stats.Accuracy,
			Advanced:       sum.CanAdvance,
		}
		if err := st.SaveSession(ctx, rec, state.Engine.Answers()); err != nil {
			return sessionSavedMsg{Summary: sum, Err: err}
		}
		if sum.CanAdvance {
			if err := st.MarkCompleted(ctx, state.Level.ID); err != nil {
				return sessionSavedMsg{Summary: sum, Err: err}
			}
		}
		return sessionSavedMsg{Summary: sum}
	}
}

func (s *SessionScreen) handleSessionSaved(msg sessionSavedMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.errMsg = msg.Err.Error()
		return s, nil
	}
	sum := msg.Summary
	return s, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: summary.New(sum)}
	}
}
