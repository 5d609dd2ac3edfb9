package models

import "time"

// NotificationType enumerates the events that fan out into
// notifications.
type NotificationType string

const (
	NotificationFriendRequest NotificationType = "friend_request"
	NotificationMention       NotificationType = "mention"
	NotificationLike          NotificationType = "like"
	NotificationComment       NotificationType = "comment"
	NotificationFollow        NotificationType = "follow"
	NotificationShare         NotificationType = "share"
	NotificationEveryone      NotificationType = "everyone"
)

// Notification is created exclusively as a side effect of other
// operations and is never retracted, even when the triggering action
// (for example a like) is undone.
type Notification struct {
	ID      string           `json:"id"`
	UserID  string           `json:"userId"`
	ActorID string           `json:"actorId"`
	Type    NotificationType `json:"type"`

	// EntityID points at the post or comment the notification refers
	// to, for navigation. Empty for follow and friend request events.
	EntityID string `json:"entityId,omitempty"`

	// Message is the human-readable suffix rendered after the actor's
	// name, e.g. "liked your post."
	Message string `json:"message"`

	Read      bool      `json:"read"`
	Timestamp time.Time `json:"timestamp"`
}
