package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminCreateUser(t *testing.T) {
	s := newTestStore(t)

	password, err := s.AdminCreateUser("Eve", "eve@x.com")
	require.NoError(t, err)
	assert.Len(t, password, 8)

	u := s.GetUserByEmail("eve@x.com")
	require.NotNil(t, u)
	assert.True(t, u.IsAIControlled)
	assert.Equal(t, password, u.Password)
}

func TestAdminDeleteUserCascades(t *testing.T) {
	s := newTestStore(t)
	alice := signupUser(t, s, "Alice", "alice@x.com")
	bob := signupUser(t, s, "Bob", "bob@x.com")

	alicePost := s.AddPost(alice.ID, "mine", "", "", "")
	bobPost := s.AddPost(bob.ID, "bobs", "", "", "")
	s.AddComment(bobPost.ID, alice.ID, "alice comment")
	s.AddComment(alicePost.ID, bob.ID, "bob comment")
	s.AddStory(alice.ID, "img", nil)

	require.True(t, s.AdminDeleteUser("alice@x.com"))

	assert.Nil(t, s.GetUserByID(alice.ID))
	assert.Nil(t, s.GetPost(alicePost.ID))
	assert.NotNil(t, s.GetPost(bobPost.ID))
	assert.Empty(t, s.CommentsForPost(bobPost.ID))
	// Bob's comment sat on Alice's deleted post; it survives as data
	// but the post is gone.
	assert.Len(t, s.CommentsForPost(alicePost.ID), 1)
	assert.Empty(t, s.ActiveStories())
}

func TestAdminDeleteUserByName(t *testing.T) {
	s := newTestStore(t)
	signupUser(t, s, "Alice", "alice@x.com")

	require.True(t, s.AdminDeleteUser("Alice"))
	assert.Nil(t, s.GetUserByEmail("alice@x.com"))
}

func TestAdminDeleteUserRefusals(t *testing.T) {
	s := newTestStore(t)

	assert.False(t, s.AdminDeleteUser("nobody"))
	assert.False(t, s.AdminDeleteUser(AssistantName))
	assert.False(t, s.AdminDeleteUser(AssistantEmail))
	assert.NotNil(t, s.GetUserByID(AssistantID))
}

func TestAdminDeleteActiveUserClearsSession(t *testing.T) {
	s := newTestStore(t)
	signupUser(t, s, "Alice", "alice@x.com")
	require.NotNil(t, s.CurrentUser())

	s.AdminDeleteUser("Alice")
	assert.Nil(t, s.CurrentUser())
}

func TestAdminForceLogoutAllKeepsOnlineFlag(t *testing.T) {
	s := newTestStore(t)
	alice := signupUser(t, s, "Alice", "alice@x.com")

	s.AdminForceLogoutAll()

	assert.Nil(t, s.CurrentUser())
	// Unlike a regular logout, the user is not marked offline.
	assert.True(t, s.GetUserByID(alice.ID).IsOnline)
}

func TestAdminRevealPassword(t *testing.T) {
	s := newTestStore(t)
	signupUser(t, s, "Alice", "alice@x.com")

	password, ok := s.AdminRevealPassword("alice@x.com")
	require.True(t, ok)
	assert.Equal(t, "secret", password)

	_, ok = s.AdminRevealPassword("nobody@x.com")
	assert.False(t, ok)
}

func TestAdminBanUser(t *testing.T) {
	s := newTestStore(t)
	alice := signupUser(t, s, "Alice", "alice@x.com")

	s.AdminBanUser(alice.ID)

	assert.True(t, s.GetUserByID(alice.ID).Blocked)
	assert.Nil(t, s.CurrentUser())
	assert.Nil(t, s.Login("alice@x.com", "secret"))
}
