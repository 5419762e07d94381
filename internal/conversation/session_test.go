package conversation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashikanthshadow/talentscout/internal/candidate"
)

func TestNewSession(t *testing.T) {
	s := NewSession()

	assert.NotEmpty(t, s.ID)
	assert.Equal(t, PhaseIntro, s.Phase)
	assert.Empty(t, s.History)
	assert.Empty(t, s.Error)

	field, missing := candidate.FirstMissing(s.Candidate)
	assert.True(t, missing)
	assert.Equal(t, candidate.FullName, field)
}

func TestSessionReset(t *testing.T) {
	s := NewSession()
	id := s.ID

	require.True(t, s.advance(candidate.FullName, "Jane Doe"))
	s.say("hello")
	s.Phase = PhaseQuestions
	s.Questions = "1. What is a goroutine?"

	s.Reset()

	assert.NotEqual(t, id, s.ID)
	assert.Equal(t, PhaseIntro, s.Phase)
	assert.Empty(t, s.History)
	assert.Empty(t, s.Questions)
	_, ok := s.Candidate.Get(candidate.FullName)
	assert.False(t, ok)
}

func TestSessionAdvanceErrorSlot(t *testing.T) {
	s := NewSession()

	assert.False(t, s.advance(candidate.Email, "a@b"))
	assert.Equal(t, candidate.MsgInvalidEmail, s.Error)
	assert.Nil(t, s.Candidate.Email)

	assert.True(t, s.advance(candidate.Email, "a.b@example.com"))
	assert.Empty(t, s.Error)
}

func TestSessionSnapshot(t *testing.T) {
	s := NewSession()
	require.True(t, s.advance(candidate.FullName, "Jane Doe"))

	state, err := s.Snapshot()
	require.NoError(t, err)

	assert.Equal(t, s.ID, state.SessionID)
	assert.Equal(t, PhaseIntro, state.Phase)
	assert.Equal(t, "Jane Doe", state.Candidate["full_name"])
	assert.Nil(t, state.Candidate["tech_stack"])
}
