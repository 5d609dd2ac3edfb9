package persistence

import (
	"path/filepath"
	"testing"

	"github.com/motmot/nexlink/backend/internal/models"
	"github.com/motmot/nexlink/backend/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleState() *store.State {
	return &store.State{
		Users: []*models.User{
			{ID: "u1", Name: "Alice", Email: "alice@x.com", Password: "pw",
				Friends: []string{"u2"}, Followers: []string{}, Following: []string{"u2"}},
			{ID: "u2", Name: "Bob", Email: "bob@x.com", Password: "pw"},
		},
		Posts: []*models.Post{
			{ID: "p1", UserID: "u1", Content: "hello @Everyone", Likes: []string{"u2"}},
		},
		Chats: []*models.Chat{
			{ID: "c1", Type: models.ChatTypePrivate, Members: []string{"u1", "u2"},
				UnreadCounts: map[string]int{"u2": 3}},
		},
		CurrentUserID: "u1",
	}
}

func TestMemorySlotFirstLoadIsNil(t *testing.T) {
	slot := NewMemorySlot()
	state, err := slot.Load()
	require.NoError(t, err)
	assert.Nil(t, state)
}

func TestMemorySlotRoundTrip(t *testing.T) {
	slot := NewMemorySlot()
	require.NoError(t, slot.Save(sampleState()))

	loaded, err := slot.Load()
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, "u1", loaded.CurrentUserID)
	require.Len(t, loaded.Users, 2)
	assert.Equal(t, []string{"u2"}, loaded.Users[0].Friends)
	require.Len(t, loaded.Chats, 1)
	assert.Equal(t, 3, loaded.Chats[0].UnreadCounts["u2"])
}

func TestSQLiteSlotFirstLoadIsNil(t *testing.T) {
	slot, err := NewSQLiteSlot(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)

	state, err := slot.Load()
	require.NoError(t, err)
	assert.Nil(t, state)
}

func TestSQLiteSlotRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	slot, err := NewSQLiteSlot(path)
	require.NoError(t, err)
	require.NoError(t, slot.Save(sampleState()))

	// A second save upserts the same row rather than growing the table.
	updated := sampleState()
	updated.CurrentUserID = ""
	require.NoError(t, slot.Save(updated))

	// Reopen the file to prove durability.
	reopened, err := NewSQLiteSlot(path)
	require.NoError(t, err)

	loaded, err := reopened.Load()
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Empty(t, loaded.CurrentUserID)
	assert.Len(t, loaded.Users, 2)
	assert.Equal(t, "hello @Everyone", loaded.Posts[0].Content)
}

func TestStoreSurvivesRestart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	slot, err := NewSQLiteSlot(path)
	require.NoError(t, err)
	st, err := store.New(slot, nil)
	require.NoError(t, err)

	u, err := st.Signup("Alice", "alice@x.com", "pw", "")
	require.NoError(t, err)
	st.AddPost(u.ID, "persisted", "", "", "")

	slot2, err := NewSQLiteSlot(path)
	require.NoError(t, err)
	st2, err := store.New(slot2, nil)
	require.NoError(t, err)

	assert.NotNil(t, st2.GetUserByEmail("alice@x.com"))
	feed := st2.Feed()
	require.Len(t, feed, 1)
	assert.Equal(t, "persisted", feed[0].Content)
	// Session survives the restart too.
	require.NotNil(t, st2.CurrentUser())
	assert.Equal(t, u.ID, st2.CurrentUser().ID)
}
