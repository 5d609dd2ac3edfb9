package models

import "time"

// ChatType discriminates private and group chats.
type ChatType string

const (
	ChatTypePrivate ChatType = "private"
	ChatTypeGroup   ChatType = "group"
)

// Chat is a conversation between two or more members.
//
// For private chats at most one chat exists per unordered member pair;
// creation finds and reuses an existing one. For group chats the
// creator is the sole initial admin and admins is a subset of members.
type Chat struct {
	ID   string   `json:"id"`
	Type ChatType `json:"type"`

	// Name and Image are group metadata, empty for private chats.
	Name  string `json:"name,omitempty"`
	Image string `json:"image,omitempty"`

	Members []string `json:"members"`
	Admins  []string `json:"admins,omitempty"`

	// ArchivedBy lists members who hid this chat from their own view.
	// Any new message clears it for everyone.
	ArchivedBy []string `json:"archivedBy"`

	CreatedAt     time.Time `json:"createdAt"`
	LastMessageAt time.Time `json:"lastMessageAt"`

	// UnreadCounts maps member id to pending message count.
	UnreadCounts map[string]int `json:"unreadCounts"`
}

// HasMember reports whether the given user belongs to the chat.
func (c *Chat) HasMember(userID string) bool {
	return ContainsID(c.Members, userID)
}

// IsAdmin reports whether the given user administers the group.
func (c *Chat) IsAdmin(userID string) bool {
	return ContainsID(c.Admins, userID)
}

// ArchivedFor reports whether the given user has archived the chat.
func (c *Chat) ArchivedFor(userID string) bool {
	return ContainsID(c.ArchivedBy, userID)
}

// SameMembers reports whether the chat's member set equals the given
// set, ignoring order. Used for private chat deduplication.
func (c *Chat) SameMembers(members []string) bool {
	if len(c.Members) != len(members) {
		return false
	}
	for _, m := range members {
		if !ContainsID(c.Members, m) {
			return false
		}
	}
	return true
}

// Message is an append-only chat entry.
type Message struct {
	ID       string `json:"id"`
	ChatID   string `json:"chatId"`
	SenderID string `json:"senderId"`
	Content  string `json:"content"`
	Image    string `json:"image,omitempty"`

	// StorySnapshot captures the image of a story being replied to, so
	// the reply stays viewable after the story expires.
	StorySnapshot string `json:"storySnapshot,omitempty"`

	Timestamp time.Time `json:"timestamp"`
}
