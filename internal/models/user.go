package models

import "time"

// User represents a NexLink account.
//
// Relationship lists are sets in contract: friends is symmetric,
// followers/following and blockedUsers/blockedBy are dual-maintained
// pairs. They are only mutated through store operations, never
// directly.
type User struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password,omitempty"`
	Avatar   string `json:"avatar"`
	Bio      string `json:"bio,omitempty"`

	// IsAI marks the single built-in system assistant account.
	// IsAIControlled marks accounts created by the privileged
	// automation layer.
	IsAI           bool `json:"isAi"`
	IsAIControlled bool `json:"isAiControlled,omitempty"`

	Friends        []string `json:"friends"`
	FriendRequests []string `json:"friendRequests"`
	Followers      []string `json:"followers"`
	Following      []string `json:"following"`
	BlockedUsers   []string `json:"blockedUsers"`
	BlockedBy      []string `json:"blockedBy"`

	IsOnline   bool      `json:"isOnline"`
	LastActive time.Time `json:"lastActive"`

	// Blocked is the global suspension flag (ban), distinct from the
	// per-user block lists above.
	Blocked bool `json:"blocked"`
}

// HasBlocked reports whether u has blocked the given user.
func (u *User) HasBlocked(userID string) bool {
	return ContainsID(u.BlockedUsers, userID)
}

// IsFriend reports whether the given user is in u's friends set.
func (u *User) IsFriend(userID string) bool {
	return ContainsID(u.Friends, userID)
}

// HasPendingRequestFrom reports whether a friend request from the
// given user is pending on u.
func (u *User) HasPendingRequestFrom(userID string) bool {
	return ContainsID(u.FriendRequests, userID)
}
