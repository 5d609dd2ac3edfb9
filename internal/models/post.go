package models

import "time"

// Post is a feed entry. Posts are immutable after creation except for
// the likes set, which is mutated only by the like toggle.
type Post struct {
	ID      string `json:"id"`
	UserID  string `json:"userId"`
	Content string `json:"content"`
	Image   string `json:"image,omitempty"`
	Video   string `json:"video,omitempty"`

	// Likes holds at most one entry per user.
	Likes []string `json:"likes"`

	Timestamp time.Time `json:"timestamp"`

	// SharedFromID is a non-owning reference to another post. It may
	// dangle if the original is later deleted; readers must treat a
	// missing original as "not found", not as an error.
	SharedFromID string `json:"sharedFromId,omitempty"`
}

// LikedBy reports whether the given user has liked the post.
func (p *Post) LikedBy(userID string) bool {
	return ContainsID(p.Likes, userID)
}

// Comment is an append-only reply to a post.
type Comment struct {
	ID        string    `json:"id"`
	PostID    string    `json:"postId"`
	UserID    string    `json:"userId"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}
