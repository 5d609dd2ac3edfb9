// Package store implements the NexLink data core: an in-memory,
// locally-persisted social graph (users, posts, comments, stories,
// chats, messages, notifications) mutated through a single-writer
// operation surface.
//
// Every operation is a synchronous read-modify-write guarded by one
// mutex; a snapshot of the full state is written to the configured
// slot after each successful mutation. Returned entities are live
// references owned by the store and must be treated as read-only by
// callers.
package store

import (
	"net/url"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/motmot/nexlink/backend/internal/metrics"
	"github.com/motmot/nexlink/backend/internal/models"
	"go.uber.org/zap"
)

// Built-in system assistant account. It always exists, cannot be
// deleted, and is excluded from @everyone broadcasts.
const (
	AssistantID    = "nexus-ai-god-mode"
	AssistantName  = "Nexus AI"
	AssistantEmail = "ai@nexus.com"
)

// PresenceWindow is how recently a user must have been active to be
// shown as online when their own heartbeat flag is stale.
const PresenceWindow = 60 * time.Second

// State is the full persistable document: every collection plus the
// active session. Display-ordered collections keep their order in the
// slices (posts, chats and notifications are most-recent-first;
// comments, stories and messages are append-ordered).
type State struct {
	Users         []*models.User         `json:"users"`
	Posts         []*models.Post         `json:"posts"`
	Comments      []*models.Comment      `json:"comments"`
	Stories       []*models.Story        `json:"stories"`
	Chats         []*models.Chat         `json:"chats"`
	Messages      []*models.Message      `json:"messages"`
	Notifications []*models.Notification `json:"notifications"`
	CurrentUserID string                 `json:"currentUserId"`
}

// Slot is the persistence boundary: the whole state is written as one
// document after every mutation and read back once at startup. Load
// returns (nil, nil) on first run.
type Slot interface {
	Load() (*State, error)
	Save(*State) error
}

// Store owns all collections and mediates every mutation.
type Store struct {
	mu    sync.Mutex
	state *State
	slot  Slot
	log   *zap.Logger

	now   func() time.Time
	newID func() string
}

// New creates a store backed by the given slot. A nil slot keeps the
// state purely in memory. The loaded (or fresh) state is initialized:
// the system assistant account is ensured and expired stories are
// swept before anything is served.
func New(slot Slot, log *zap.Logger) (*Store, error) {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Store{
		slot:  slot,
		log:   log,
		now:   time.Now,
		newID: uuid.NewString,
	}

	if slot != nil {
		loaded, err := slot.Load()
		if err != nil {
			return nil, err
		}
		s.state = loaded
	}
	if s.state == nil {
		s.state = &State{}
	}

	s.ensureAssistant()
	s.sweepStoriesLocked()
	s.persist()

	return s, nil
}

// SetClock overrides the time source. Intended for tests.
func (s *Store) SetClock(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}

// SetIDGenerator overrides the id source. Intended for tests.
func (s *Store) SetIDGenerator(gen func() string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.newID = gen
}

// ensureAssistant guarantees the built-in assistant user exists.
func (s *Store) ensureAssistant() {
	for _, u := range s.state.Users {
		if u.IsAI {
			return
		}
	}
	s.state.Users = append(s.state.Users, &models.User{
		ID:             AssistantID,
		Name:           AssistantName,
		Email:          AssistantEmail,
		Password:       "admin",
		Avatar:         defaultAvatar(AssistantName),
		Bio:            "I am the system administrator of NexLink.",
		IsAI:           true,
		IsOnline:       true,
		Friends:        []string{},
		FriendRequests: []string{},
		Followers:      []string{},
		Following:      []string{},
		BlockedUsers:   []string{},
		BlockedBy:      []string{},
	})
}

// persist writes the current state through the slot. Must be called
// with the mutex held. Save failures are logged, never propagated:
// the in-memory state stays authoritative for the process lifetime.
func (s *Store) persist() {
	if s.slot == nil {
		return
	}
	if err := s.slot.Save(s.state); err != nil {
		s.log.Error("Failed to persist store snapshot", zap.Error(err))
		metrics.Get().SnapshotSavesTotal.WithLabelValues("error").Inc()
		return
	}
	metrics.Get().SnapshotSavesTotal.WithLabelValues("ok").Inc()
}

func defaultAvatar(name string) string {
	return "https://ui-avatars.com/api/?name=" + url.QueryEscape(name) + "&background=random"
}
