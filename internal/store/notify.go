package store

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/motmot/nexlink/backend/internal/metrics"
	"github.com/motmot/nexlink/backend/internal/models"
)

// mentionPattern matches @ followed by an alphanumeric run. Tokens are
// resolved against user names with all whitespace stripped, so
// "@JaneDoe" reaches the user named "Jane Doe".
var mentionPattern = regexp.MustCompile(`@([a-zA-Z0-9]+)`)

// notify appends a notification for userID caused by actorID. Must be
// called with the mutex held. Notifications are most-recent-first and
// are never retracted once created.
func (s *Store) notify(userID, actorID string, typ models.NotificationType, entityID, message string) {
	n := &models.Notification{
		ID:        s.newID(),
		UserID:    userID,
		ActorID:   actorID,
		Type:      typ,
		EntityID:  entityID,
		Message:   message,
		Timestamp: s.now(),
	}
	s.state.Notifications = append([]*models.Notification{n}, s.state.Notifications...)
	metrics.Get().NotificationsCreatedTotal.WithLabelValues(string(typ)).Inc()
}

// fanOutEveryone broadcasts an "everyone" notification for a post whose
// content contains the @everyone token (case-insensitive). Recipients
// are all users except the author, users who have blocked the author,
// and AI accounts.
func (s *Store) fanOutEveryone(authorID, content, postID string) {
	if !strings.Contains(strings.ToLower(content), "@everyone") {
		return
	}
	for _, u := range s.state.Users {
		if u.ID == authorID || u.IsAI || u.HasBlocked(authorID) {
			continue
		}
		s.notify(u.ID, authorID, models.NotificationEveryone, postID, "mentioned @Everyone in a post.")
	}
}

// fanOutMentions scans content for @name tokens and notifies each
// resolved user other than the author. Resolution is a case-sensitive
// exact match against the user's name with whitespace removed. Mention
// and @everyone fan-out are independent: a user matched by both
// receives both notifications.
func (s *Store) fanOutMentions(authorID, content, entityID, message string) {
	for _, match := range mentionPattern.FindAllStringSubmatch(content, -1) {
		token := match[1]
		mentioned := s.findUserByStrippedName(token)
		if mentioned == nil || mentioned.ID == authorID {
			continue
		}
		s.notify(mentioned.ID, authorID, models.NotificationMention, entityID, message)
	}
}

// findUserByStrippedName resolves a mention token. Must be called with
// the mutex held.
func (s *Store) findUserByStrippedName(token string) *models.User {
	for _, u := range s.state.Users {
		if stripWhitespace(u.Name) == token {
			return u
		}
	}
	return nil
}

func stripWhitespace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
