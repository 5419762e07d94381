package conversation

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/shashikanthshadow/talentscout/internal/ai"
	"github.com/shashikanthshadow/talentscout/internal/candidate"
)

// Session is the state of one conversation. It is owned by a single caller and
// is not safe for concurrent use.
type Session struct {
	ID        string
	StartedAt time.Time
	Candidate *candidate.Candidate
	Phase     Phase
	// History is append-only for the lifetime of the session.
	History []ai.Turn
	// Error holds the last validation failure and is cleared on the next success.
	Error string
	// Questions is the most recent set of generated interview questions.
	Questions string
}

// NewSession returns an empty session in the intro phase.
func NewSession() *Session {
	return &Session{
		ID:        uuid.NewString(),
		StartedAt: time.Now(),
		Candidate: candidate.New(),
		Phase:     PhaseIntro,
		History:   make([]ai.Turn, 0),
	}
}

// Reset discards everything collected so far and starts a new session in place.
func (s *Session) Reset() {
	*s = *NewSession()
}

func (s *Session) say(text string) {
	s.History = append(s.History, ai.Turn{Role: ai.RoleAssistant, Text: text})
}

func (s *Session) hear(text string) {
	s.History = append(s.History, ai.Turn{Role: ai.RoleUser, Text: text})
}

// State is the compact view of the session sent to the model and shown in snapshots.
type State struct {
	SessionID string         `json:"session_id,omitempty"`
	Candidate map[string]any `json:"candidate"`
	Phase     Phase          `json:"phase"`
	Questions string         `json:"questions,omitempty"`
}

// Snapshot returns the live candidate view of the session.
func (s *Session) Snapshot() (State, error) {
	fields, err := candidate.Snapshot(s.Candidate)
	if err != nil {
		return State{}, err
	}

	return State{
		SessionID: s.ID,
		Candidate: fields,
		Phase:     s.Phase,
		Questions: s.Questions,
	}, nil
}

// advance validates and stores the answer for field, maintaining the error slot.
func (s *Session) advance(field candidate.Field, raw string) bool {
	if _, err := candidate.Advance(s.Candidate, field, raw); err != nil {
		s.Error = validationMessage(err)
		return false
	}

	s.Error = ""
	return true
}

func validationMessage(err error) string {
	var verr *candidate.ValidationError
	if errors.As(err, &verr) {
		return verr.Message
	}
	return err.Error()
}
