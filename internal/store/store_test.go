package store

import (
	"testing"
	"time"

	"github.com/motmot/nexlink/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// memSlot is an in-test slot capturing every snapshot.
type memSlot struct {
	state *State
	saves int
}

func (m *memSlot) Load() (*State, error) { return m.state, nil }

func (m *memSlot) Save(state *State) error {
	m.state = state
	m.saves++
	return nil
}

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(nil, zap.NewNop())
	require.NoError(t, err)
	return s
}

func signupUser(t *testing.T, s *Store, name, email string) *models.User {
	t.Helper()
	u, err := s.Signup(name, email, "secret", "")
	require.NoError(t, err)
	return u
}

func TestNewEnsuresAssistant(t *testing.T) {
	s := newTestStore(t)

	ai := s.GetUserByID(AssistantID)
	require.NotNil(t, ai)
	assert.True(t, ai.IsAI)
	assert.Equal(t, AssistantName, ai.Name)
	assert.Equal(t, AssistantEmail, ai.Email)
	assert.Equal(t, "admin", ai.Password)
}

func TestNewLoadsExistingState(t *testing.T) {
	slot := &memSlot{state: &State{
		Users: []*models.User{{ID: "u1", Name: "Alice", Email: "a@x.com"}},
	}}

	s, err := New(slot, zap.NewNop())
	require.NoError(t, err)

	assert.NotNil(t, s.GetUserByID("u1"))
	// Assistant is ensured even on a loaded state.
	assert.NotNil(t, s.GetUserByID(AssistantID))
}

func TestPersistAfterEveryMutation(t *testing.T) {
	slot := &memSlot{}
	s, err := New(slot, zap.NewNop())
	require.NoError(t, err)

	before := slot.saves
	signupUser(t, s, "Alice", "alice@x.com")
	assert.Greater(t, slot.saves, before)

	before = slot.saves
	s.Logout()
	assert.Greater(t, slot.saves, before)
}

func TestNewSweepsExpiredStoriesOnLoad(t *testing.T) {
	old := time.Now().Add(-25 * time.Hour)
	slot := &memSlot{state: &State{
		Stories: []*models.Story{
			{ID: "expired", Timestamp: old},
			{ID: "fresh", Timestamp: time.Now().Add(-time.Hour)},
		},
	}}

	s, err := New(slot, zap.NewNop())
	require.NoError(t, err)

	stories := s.ActiveStories()
	require.Len(t, stories, 1)
	assert.Equal(t, "fresh", stories[0].ID)
}
