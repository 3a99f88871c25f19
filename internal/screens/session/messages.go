package session

import (
	sess "github.com/abiram/tonedrill/internal/session"
)

// trialStartedMsg is sent when the next question has been generated.
type trialStartedMsg struct {
	Err error
}

// stimulusDoneMsg hides the played notes once the playback window elapses.
type stimulusDoneMsg struct{}

// sessionEndMsg triggers the session end flow.
type sessionEndMsg struct{}

// sessionSavedMsg is sent when the finished session has been persisted.
type sessionSavedMsg struct {
	Summary *sess.Summary
	Err     error
}
