package models

import "time"

// StoryTTL is how long a story stays visible before the cleanup sweep
// removes it.
const StoryTTL = 24 * time.Hour

// StoryText is a text overlay placed on a story image. X and Y are
// percentages in [0,100].
type StoryText struct {
	ID      string  `json:"id"`
	Content string  `json:"content"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Color   string  `json:"color"`
	Scale   float64 `json:"scale"`
}

// Story is an ephemeral image post, removed permanently once it is
// older than StoryTTL.
type Story struct {
	ID        string      `json:"id"`
	UserID    string      `json:"userId"`
	Image     string      `json:"image"`
	Texts     []StoryText `json:"texts"`
	Timestamp time.Time   `json:"timestamp"`
	Viewers   []string    `json:"viewers"`
}

// Expired reports whether the story's age has reached the retention
// window at the given instant.
func (s *Story) Expired(now time.Time) bool {
	return now.Sub(s.Timestamp) >= StoryTTL
}
