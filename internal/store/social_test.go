package store

import (
	"testing"

	"github.com/motmot/nexlink/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFriendRequestFlow(t *testing.T) {
	s := newTestStore(t)
	alice := signupUser(t, s, "Alice", "alice@x.com")
	bob := signupUser(t, s, "Bob", "bob@x.com")

	s.SendFriendRequest(alice.ID, bob.ID)

	gotBob := s.GetUserByID(bob.ID)
	assert.Contains(t, gotBob.FriendRequests, alice.ID)

	notifs := s.NotificationsForUser(bob.ID)
	require.Len(t, notifs, 1)
	assert.Equal(t, models.NotificationFriendRequest, notifs[0].Type)

	s.AcceptFriendRequest(bob.ID, alice.ID)

	assert.Contains(t, s.GetUserByID(bob.ID).Friends, alice.ID)
	assert.Contains(t, s.GetUserByID(alice.ID).Friends, bob.ID)
	assert.Empty(t, s.GetUserByID(bob.ID).FriendRequests)
}

func TestSendFriendRequestIdempotent(t *testing.T) {
	s := newTestStore(t)
	alice := signupUser(t, s, "Alice", "alice@x.com")
	bob := signupUser(t, s, "Bob", "bob@x.com")

	s.SendFriendRequest(alice.ID, bob.ID)
	s.SendFriendRequest(alice.ID, bob.ID)

	assert.Len(t, s.GetUserByID(bob.ID).FriendRequests, 1)
	assert.Len(t, s.NotificationsForUser(bob.ID), 1)
}

func TestRejectFriendRequest(t *testing.T) {
	s := newTestStore(t)
	alice := signupUser(t, s, "Alice", "alice@x.com")
	bob := signupUser(t, s, "Bob", "bob@x.com")

	s.SendFriendRequest(alice.ID, bob.ID)
	s.RejectFriendRequest(bob.ID, alice.ID)

	assert.Empty(t, s.GetUserByID(bob.ID).FriendRequests)
	assert.Empty(t, s.GetUserByID(bob.ID).Friends)
}

func TestFollowUnfollowRestoresBothSides(t *testing.T) {
	s := newTestStore(t)
	alice := signupUser(t, s, "Alice", "alice@x.com")
	bob := signupUser(t, s, "Bob", "bob@x.com")

	s.Follow(alice.ID, bob.ID)
	assert.Contains(t, s.GetUserByID(alice.ID).Following, bob.ID)
	assert.Contains(t, s.GetUserByID(bob.ID).Followers, alice.ID)

	s.Unfollow(alice.ID, bob.ID)
	assert.NotContains(t, s.GetUserByID(alice.ID).Following, bob.ID)
	assert.NotContains(t, s.GetUserByID(bob.ID).Followers, alice.ID)
}

func TestFollowTwiceIsNoop(t *testing.T) {
	s := newTestStore(t)
	alice := signupUser(t, s, "Alice", "alice@x.com")
	bob := signupUser(t, s, "Bob", "bob@x.com")

	s.Follow(alice.ID, bob.ID)
	s.Follow(alice.ID, bob.ID)

	assert.Len(t, s.GetUserByID(alice.ID).Following, 1)
	assert.Len(t, s.GetUserByID(bob.ID).Followers, 1)
	// One follow notification, not two.
	assert.Len(t, s.NotificationsForUser(bob.ID), 1)
}

func TestBlockSeversRelationships(t *testing.T) {
	s := newTestStore(t)
	alice := signupUser(t, s, "Alice", "alice@x.com")
	bob := signupUser(t, s, "Bob", "bob@x.com")

	s.SendFriendRequest(alice.ID, bob.ID)
	s.AcceptFriendRequest(bob.ID, alice.ID)
	s.Follow(alice.ID, bob.ID)
	s.Follow(bob.ID, alice.ID)

	s.Block(alice.ID, bob.ID)

	a := s.GetUserByID(alice.ID)
	b := s.GetUserByID(bob.ID)
	assert.Contains(t, a.BlockedUsers, bob.ID)
	assert.Contains(t, b.BlockedBy, alice.ID)
	assert.Empty(t, a.Friends)
	assert.Empty(t, b.Friends)
	assert.Empty(t, a.Following)
	assert.Empty(t, a.Followers)
	assert.Empty(t, b.Following)
	assert.Empty(t, b.Followers)
}

func TestUnblockDoesNotRestoreFriendship(t *testing.T) {
	s := newTestStore(t)
	alice := signupUser(t, s, "Alice", "alice@x.com")
	bob := signupUser(t, s, "Bob", "bob@x.com")

	s.SendFriendRequest(alice.ID, bob.ID)
	s.AcceptFriendRequest(bob.ID, alice.ID)
	s.Block(alice.ID, bob.ID)
	s.Unblock(alice.ID, bob.ID)

	a := s.GetUserByID(alice.ID)
	b := s.GetUserByID(bob.ID)
	assert.Empty(t, a.BlockedUsers)
	assert.Empty(t, b.BlockedBy)
	// Severed relationships stay severed.
	assert.Empty(t, a.Friends)
	assert.Empty(t, b.Friends)
}
