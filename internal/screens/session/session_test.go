package session

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abiram/tonedrill/internal/curriculum"
	"github.com/abiram/tonedrill/internal/screen"
	sess "github.com/abiram/tonedrill/internal/session"
	"github.com/abiram/tonedrill/internal/theory"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testLevel(t *testing.T) curriculum.Level {
	t.Helper()
	lv, err := curriculum.GetLevel("triad-major-minor")
	if err != nil {
		t.Fatalf("GetLevel: %v", err)
	}
	return lv
}

// testSessionScreen builds a screen with no store and a pinned key, then
// starts the first trial synchronously.
func testSessionScreen(t *testing.T) *SessionScreen {
	t.Helper()
	key := theory.C
	s := New(nil, testLevel(t), &key)

	cmd := s.Init()
	if cmd == nil {
		t.Fatal("Init returned no command")
	}
	msg, ok := cmd().(trialStartedMsg)
	if !ok {
		t.Fatalf("Init command produced %T, want trialStartedMsg", cmd())
	}
	if msg.Err != nil {
		t.Fatalf("first trial failed: %v", msg.Err)
	}
	var scr screen.Screen = s
	scr, _ = scr.Update(msg)
	return scr.(*SessionScreen)
}

func TestSessionScreen_Title(t *testing.T) {
	s := testSessionScreen(t)
	if s.Title() != "Practice" {
		t.Errorf("Title = %q, want %q", s.Title(), "Practice")
	}
}

func TestSessionScreen_KeyOverride(t *testing.T) {
	s := testSessionScreen(t)
	if s.state.Key != theory.C {
		t.Errorf("session key = %v, want C", s.state.Key)
	}
	if s.KeyLabel() != "C" {
		t.Errorf("KeyLabel = %q, want C", s.KeyLabel())
	}
}

func TestSessionScreen_StimulusVisibleThenHidden(t *testing.T) {
	s := testSessionScreen(t)

	if !s.showStimulus {
		t.Error("stimulus should be visible right after trial start")
	}

	var scr screen.Screen = s
	scr, _ = scr.Update(stimulusDoneMsg{})
	s = scr.(*SessionScreen)
	if s.showStimulus {
		t.Error("stimulus should be hidden after the playback window")
	}

	// Replay brings it back.
	scr, cmd := s.Update(keyPress('p'))
	s = scr.(*SessionScreen)
	if !s.showStimulus {
		t.Error("stimulus should reappear on replay")
	}
	if cmd == nil {
		t.Error("replay should schedule a hide timer")
	}
}

func TestSessionScreen_View(t *testing.T) {
	s := testSessionScreen(t)
	view := s.View(80, 24)
	if view == "" {
		t.Error("expected non-empty question view")
	}
}

func TestSessionScreen_QuitConfirm(t *testing.T) {
	s := testSessionScreen(t)

	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEscape))
	s = scr.(*SessionScreen)
	if !s.quitConfirm {
		t.Error("expected quit confirmation dialog")
	}

	scr, _ = s.Update(keyPress('n'))
	s = scr.(*SessionScreen)
	if s.quitConfirm {
		t.Error("expected quit confirmation to be dismissed")
	}
}

func TestSessionScreen_QuitConfirm_Yes(t *testing.T) {
	s := testSessionScreen(t)

	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEscape))
	_, cmd := scr.Update(keyPress('y'))
	if cmd == nil {
		t.Fatal("expected a command after quit confirmation")
	}
	if _, ok := cmd().(sessionEndMsg); !ok {
		t.Error("expected sessionEndMsg after confirming quit")
	}
}

func TestSessionScreen_AnswerSubmit(t *testing.T) {
	s := testSessionScreen(t)
	q := s.state.CurrentQuestion

	// Pick the correct choice explicitly so the outcome is deterministic.
	for i, c := range q.Choices {
		if c == q.CorrectAnswer {
			s.mcSelected = i
			break
		}
	}

	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	s = scr.(*SessionScreen)

	if s.state.Phase != sess.PhaseAnswered {
		t.Fatalf("phase = %v, want PhaseAnswered", s.state.Phase)
	}
	if s.state.LastAnswer == nil || !s.state.LastAnswer.IsCorrect {
		t.Error("expected a correct recorded answer")
	}
	if s.state.Engine.Count() != 1 {
		t.Errorf("engine count = %d, want 1", s.state.Engine.Count())
	}
}

func TestSessionScreen_NumberKeySubmits(t *testing.T) {
	s := testSessionScreen(t)

	var scr screen.Screen = s
	scr, _ = scr.Update(keyPress('1'))
	s = scr.(*SessionScreen)

	if s.state.Phase != sess.PhaseAnswered {
		t.Fatalf("phase = %v, want PhaseAnswered", s.state.Phase)
	}
	if s.state.Engine.Count() != 1 {
		t.Errorf("engine count = %d, want 1", s.state.Engine.Count())
	}
}

func TestSessionScreen_FeedbackContinues(t *testing.T) {
	s := testSessionScreen(t)

	var scr screen.Screen = s
	scr, _ = scr.Update(keyPress('1'))
	s = scr.(*SessionScreen)

	// Any key during feedback starts the next trial.
	scr, cmd := s.Update(keyPress(' '))
	s = scr.(*SessionScreen)
	if cmd == nil {
		t.Fatal("expected a begin-trial command after feedback")
	}
	msg, ok := cmd().(trialStartedMsg)
	if !ok {
		t.Fatalf("got %T, want trialStartedMsg", cmd())
	}
	if msg.Err != nil {
		t.Fatalf("second trial failed: %v", msg.Err)
	}
	scr, _ = s.Update(msg)
	s = scr.(*SessionScreen)
	if s.state.CurrentQuestion == nil {
		t.Error("expected a new in-flight question")
	}
}

func TestSessionScreen_EndWithoutStore(t *testing.T) {
	s := testSessionScreen(t)

	var scr screen.Screen = s
	scr, cmd := scr.Update(sessionEndMsg{})
	s = scr.(*SessionScreen)
	if cmd == nil {
		t.Fatal("expected a save command")
	}
	saved, ok := cmd().(sessionSavedMsg)
	if !ok {
		t.Fatalf("got %T, want sessionSavedMsg", cmd())
	}
	if saved.Err != nil {
		t.Errorf("save with nil store errored: %v", saved.Err)
	}
	if saved.Summary == nil {
		t.Fatal("expected a summary")
	}
	if s.state.Phase != sess.PhaseTerminal {
		t.Errorf("phase = %v, want PhaseTerminal", s.state.Phase)
	}
}

func TestSessionScreen_KeyHints(t *testing.T) {
	s := testSessionScreen(t)
	if len(s.KeyHints()) == 0 {
		t.Error("expected non-empty key hints")
	}
}
