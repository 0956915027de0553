package session

import (
	"context"

	"innkeeper/models"
)

// ResetStatus is the tagged outcome of an undo-last-exchange request. An
// unknown session is a reportable status, not an error.
type ResetStatus string

const (
	ResetClearedPair     ResetStatus = "cleared-pair"
	ResetClearedAll      ResetStatus = "cleared-all"
	ResetSessionNotFound ResetStatus = "session-not-found"
)

// Store maps session identifiers to dialogue state. Get lazily creates a
// fresh session seeded with the system prompt, so it never reports a missing
// session. Snapshots returned by Get are copies; all mutation goes through
// Append and Mutate.
type Store interface {
	Get(ctx context.Context, sessionID string) (*models.SessionState, error)
	Append(ctx context.Context, sessionID, role, content string) error
	Mutate(ctx context.Context, sessionID string, fn func(*models.SessionState)) error
	ResetLast(ctx context.Context, sessionID string) (ResetStatus, error)
}

func newSessionState(systemPrompt string) *models.SessionState {
	return &models.SessionState{
		Transcript: []models.ChatMessage{
			{Role: models.RoleSystem, Content: systemPrompt},
		},
		Step:       models.StepInitial,
		GuestNames: []string{},
	}
}

func copyState(st *models.SessionState) *models.SessionState {
	cp := *st
	cp.Transcript = append([]models.ChatMessage(nil), st.Transcript...)
	cp.GuestNames = append([]string(nil), st.GuestNames...)
	if st.SelectedHotelDetails != nil {
		hotel := *st.SelectedHotelDetails
		cp.SelectedHotelDetails = &hotel
	}
	return &cp
}

// resetTranscript trims the last user+assistant pair when at least two
// entries exist, otherwise clears the transcript entirely.
func resetTranscript(st *models.SessionState) ResetStatus {
	if len(st.Transcript) >= 2 {
		st.Transcript = st.Transcript[:len(st.Transcript)-2]
		return ResetClearedPair
	}
	st.Transcript = nil
	return ResetClearedAll
}
