package models

import "time"

// Turn is a single conversation turn kept in a session.
type Turn struct {
	Sender    string    `json:"sender"` // "user" or "bot"
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

// Slots holds the structured values extracted from free text so far.
// Zero values mean "not yet known"; extraction only ever fills slots,
// it never clears them.
type Slots struct {
	Age            int    `json:"age,omitempty"`
	DisabilityType string `json:"disabilityType,omitempty"`
	Percentage     int    `json:"percentage,omitempty"`
}

// Session is the per-user conversation state. One session per userId,
// turns in arrival order, truncated to a recent window.
type Session struct {
	UserID   string    `json:"userId"`
	Turns    []Turn    `json:"turns"`
	Language string    `json:"language"` // "mr" or "en"
	Slots    Slots     `json:"slots"`
	LastSeen time.Time `json:"lastSeen"`
}

// MaxSessionTurns bounds the conversation window kept per session.
const MaxSessionTurns = 10

// AppendTurn records a turn and trims the window from the front.
func (s *Session) AppendTurn(sender, text string, at time.Time) {
	s.Turns = append(s.Turns, Turn{Sender: sender, Text: text, Timestamp: at})
	if len(s.Turns) > MaxSessionTurns {
		s.Turns = s.Turns[len(s.Turns)-MaxSessionTurns:]
	}
	s.LastSeen = at
}
