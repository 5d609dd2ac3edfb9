package store

import (
	"sort"
	"strings"

	"github.com/motmot/nexlink/backend/internal/models"
)

// GetUserByID is an exact id lookup.
func (s *Store) GetUserByID(id string) *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.findUser(id)
}

// GetUserByName is a case-insensitive name lookup.
func (s *Store) GetUserByName(name string) *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	lower := strings.ToLower(name)
	for _, u := range s.state.Users {
		if strings.ToLower(u.Name) == lower {
			return u
		}
	}
	return nil
}

// GetUserByEmail is an exact, case-sensitive email lookup.
func (s *Store) GetUserByEmail(email string) *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.state.Users {
		if u.Email == email {
			return u
		}
	}
	return nil
}

// Users returns all accounts in insertion order.
func (s *Store) Users() []*models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*models.User{}, s.state.Users...)
}

// Feed returns all posts, most recent first.
func (s *Store) Feed() []*models.Post {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*models.Post{}, s.state.Posts...)
}

// GetPost returns a post by id, or nil. A share referencing a deleted
// post resolves to nil and is rendered as "original not found".
func (s *Store) GetPost(id string) *models.Post {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.findPost(id)
}

// CommentsForPost returns a post's comments in creation order.
func (s *Store) CommentsForPost(postID string) []*models.Comment {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []*models.Comment
	for _, c := range s.state.Comments {
		if c.PostID == postID {
			out = append(out, c)
		}
	}
	return out
}

// ActiveStories sweeps expired stories and returns the remainder in
// creation order. The sweep always runs before listing.
func (s *Store) ActiveStories() []*models.Story {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.sweepStoriesLocked() > 0 {
		s.persist()
	}
	return append([]*models.Story{}, s.state.Stories...)
}

// GetChat returns a chat by id, or nil.
func (s *Store) GetChat(id string) *models.Chat {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.findChat(id)
}

// ChatsForUser returns the chats the user belongs to, most recent
// message first. Archived chats are included; the caller splits them
// per archivedBy.
func (s *Store) ChatsForUser(userID string) []*models.Chat {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []*models.Chat
	for _, c := range s.state.Chats {
		if c.HasMember(userID) {
			out = append(out, c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].LastMessageAt.After(out[j].LastMessageAt)
	})
	return out
}

// MessagesForChat returns a chat's messages in send order.
func (s *Store) MessagesForChat(chatID string) []*models.Message {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []*models.Message
	for _, m := range s.state.Messages {
		if m.ChatID == chatID {
			out = append(out, m)
		}
	}
	return out
}

// NotificationsForUser returns the user's notifications, most recent
// first.
func (s *Store) NotificationsForUser(userID string) []*models.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []*models.Notification
	for _, n := range s.state.Notifications {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	return out
}

// UnreadNotificationCount returns how many of the user's notifications
// are unread.
func (s *Store) UnreadNotificationCount(userID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for _, n := range s.state.Notifications {
		if n.UserID == userID && !n.Read {
			count++
		}
	}
	return count
}

// MarkNotificationsRead marks every notification for the user as read.
// Read-marking is bulk per-user only.
func (s *Store) MarkNotificationsRead(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	changed := false
	for _, n := range s.state.Notifications {
		if n.UserID == userID && !n.Read {
			n.Read = true
			changed = true
		}
	}
	if changed {
		s.persist()
	}
}
