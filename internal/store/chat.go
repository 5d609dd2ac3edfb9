package store

import (
	"github.com/motmot/nexlink/backend/internal/metrics"
	"github.com/motmot/nexlink/backend/internal/models"
	"go.uber.org/zap"
)

// CreateChat builds a conversation. For private chats at most one chat
// exists per unordered member pair: an existing one is reused and its
// archivedBy is cleared for all members, un-hiding it for everyone.
// For group chats the first member becomes the sole initial admin.
func (s *Store) CreateChat(members []string, typ models.ChatType, name string) *models.Chat {
	s.mu.Lock()
	defer s.mu.Unlock()

	if typ == models.ChatTypePrivate {
		for _, c := range s.state.Chats {
			if c.Type == models.ChatTypePrivate && len(c.Members) == 2 && c.SameMembers(members) {
				c.ArchivedBy = []string{}
				s.persist()
				return c
			}
		}
	}

	chat := &models.Chat{
		ID:            s.newID(),
		Type:          typ,
		Name:          name,
		Members:       append([]string{}, members...),
		ArchivedBy:    []string{},
		CreatedAt:     s.now(),
		LastMessageAt: s.now(),
		UnreadCounts:  map[string]int{},
	}
	if typ == models.ChatTypeGroup && len(members) > 0 {
		chat.Admins = []string{members[0]}
	}
	s.state.Chats = append([]*models.Chat{chat}, s.state.Chats...)

	s.log.Debug("Chat created",
		zap.String("chat_id", chat.ID),
		zap.String("type", string(typ)),
		zap.Int("members", len(members)),
	)
	metrics.Get().StoreOperationsTotal.WithLabelValues("create_chat").Inc()
	s.persist()
	return chat
}

// SendMessage appends a message, bumps the chat's lastMessageAt,
// increments unread counters for every other member and clears
// archivedBy: a new message un-archives the chat for everyone. The
// sender does not need to be a current member; a reply landing after
// the sender left or archived the chat still succeeds.
func (s *Store) SendMessage(chatID, senderID, content, image, storySnapshot string) *models.Message {
	s.mu.Lock()
	defer s.mu.Unlock()

	msg := &models.Message{
		ID:            s.newID(),
		ChatID:        chatID,
		SenderID:      senderID,
		Content:       content,
		Image:         image,
		StorySnapshot: storySnapshot,
		Timestamp:     s.now(),
	}
	s.state.Messages = append(s.state.Messages, msg)

	if chat := s.findChat(chatID); chat != nil {
		if chat.UnreadCounts == nil {
			chat.UnreadCounts = map[string]int{}
		}
		for _, m := range chat.Members {
			if m != senderID {
				chat.UnreadCounts[m]++
			}
		}
		chat.LastMessageAt = msg.Timestamp
		chat.ArchivedBy = []string{}
	}

	metrics.Get().StoreOperationsTotal.WithLabelValues("send_message").Inc()
	s.persist()
	return msg
}

// MarkChatRead zeroes the member's unread counter. Idempotent; invoked
// whenever a user's view focuses the chat.
func (s *Store) MarkChatRead(chatID, userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	chat := s.findChat(chatID)
	if chat == nil {
		return
	}
	if chat.UnreadCounts == nil {
		chat.UnreadCounts = map[string]int{}
	}
	chat.UnreadCounts[userID] = 0
	s.persist()
}

// ArchiveChat hides the chat from the given user's view only.
func (s *Store) ArchiveChat(chatID, userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	chat := s.findChat(chatID)
	if chat == nil {
		return
	}
	chat.ArchivedBy = models.AppendUniqueID(chat.ArchivedBy, userID)
	s.persist()
}

// UnarchiveChat restores the chat in the given user's view.
func (s *Store) UnarchiveChat(chatID, userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	chat := s.findChat(chatID)
	if chat == nil {
		return
	}
	chat.ArchivedBy = models.RemoveID(chat.ArchivedBy, userID)
	s.persist()
}

// Group administration. The core does not permission-check these:
// restricting them to admins is the caller's responsibility.

// UpdateGroupInfo partially updates group metadata; empty fields keep
// their current value.
func (s *Store) UpdateGroupInfo(chatID, name, image string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	chat := s.findChat(chatID)
	if chat == nil {
		return
	}
	if name != "" {
		chat.Name = name
	}
	if image != "" {
		chat.Image = image
	}
	s.persist()
}

// AddGroupMember appends a member; adding an existing member changes
// nothing.
func (s *Store) AddGroupMember(chatID, userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	chat := s.findChat(chatID)
	if chat == nil {
		return
	}
	chat.Members = models.AppendUniqueID(chat.Members, userID)
	s.persist()
}

// RemoveGroupMember removes the user from members and, if present,
// from admins.
func (s *Store) RemoveGroupMember(chatID, userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	chat := s.findChat(chatID)
	if chat == nil {
		return
	}
	chat.Members = models.RemoveID(chat.Members, userID)
	chat.Admins = models.RemoveID(chat.Admins, userID)
	s.persist()
}

// MakeGroupAdmin promotes a member; promoting an admin again changes
// nothing.
func (s *Store) MakeGroupAdmin(chatID, userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	chat := s.findChat(chatID)
	if chat == nil {
		return
	}
	chat.Admins = models.AppendUniqueID(chat.Admins, userID)
	s.persist()
}

// LeaveGroup is self-removal from the group.
func (s *Store) LeaveGroup(chatID, userID string) {
	s.RemoveGroupMember(chatID, userID)
}

// findChat returns the live chat for id, or nil. Must be called with
// the mutex held.
func (s *Store) findChat(id string) *models.Chat {
	for _, c := range s.state.Chats {
		if c.ID == id {
			return c
		}
	}
	return nil
}
