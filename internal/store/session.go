package store

import (
	"github.com/motmot/nexlink/backend/internal/errors"
	"github.com/motmot/nexlink/backend/internal/metrics"
	"github.com/motmot/nexlink/backend/internal/models"
	"go.uber.org/zap"
)

// Signup creates a new account. It fails with a DUPLICATE_EMAIL error
// when the email is already taken (case-sensitive exact match). The
// new user becomes the active session only when no session is open.
func (s *Store) Signup(name, email, password, avatar string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.state.Users {
		if u.Email == email {
			return nil, errors.DuplicateEmail()
		}
	}

	if avatar == "" {
		avatar = defaultAvatar(name)
	}
	user := &models.User{
		ID:             s.newID(),
		Name:           name,
		Email:          email,
		Password:       password,
		Avatar:         avatar,
		Friends:        []string{},
		FriendRequests: []string{},
		Followers:      []string{},
		Following:      []string{},
		BlockedUsers:   []string{},
		BlockedBy:      []string{},
		IsOnline:       true,
		LastActive:     s.now(),
	}
	s.state.Users = append(s.state.Users, user)
	if s.state.CurrentUserID == "" {
		s.state.CurrentUserID = user.ID
	}

	s.log.Info("User signed up", zap.String("user_id", user.ID), zap.String("name", name))
	metrics.Get().StoreOperationsTotal.WithLabelValues("signup").Inc()
	s.persist()
	return user, nil
}

// Login matches on exact email and password for a non-banned account.
// Any mismatch, including a correct password on a banned account,
// returns nil: the caller cannot tell the cases apart, matching the
// single generic failure shown upstream.
func (s *Store) Login(email, password string) *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.state.Users {
		if u.Email == email && u.Password == password && !u.Blocked {
			u.IsOnline = true
			u.LastActive = s.now()
			s.state.CurrentUserID = u.ID
			s.log.Info("User logged in", zap.String("user_id", u.ID))
			metrics.Get().StoreOperationsTotal.WithLabelValues("login").Inc()
			s.persist()
			return u
		}
	}
	return nil
}

// Logout marks the active user offline, stamps lastActive and clears
// the session. Safe to call without an open session.
func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if u := s.findUser(s.state.CurrentUserID); u != nil {
		u.IsOnline = false
		u.LastActive = s.now()
		s.log.Info("User logged out", zap.String("user_id", u.ID))
	}
	s.state.CurrentUserID = ""
	s.persist()
}

// Heartbeat refreshes a user's online flag and lastActive stamp. It is
// invoked periodically while a session is open and is a no-op for an
// unknown user.
func (s *Store) Heartbeat(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u := s.findUser(userID)
	if u == nil {
		return
	}
	u.IsOnline = true
	u.LastActive = s.now()
	s.persist()
}

// CurrentUser returns the active session's user, or nil.
func (s *Store) CurrentUser() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.findUser(s.state.CurrentUserID)
}

// ProfileUpdate is a partial profile change; nil fields are left
// untouched.
type ProfileUpdate struct {
	Name   *string
	Avatar *string
	Bio    *string
}

// UpdateProfile applies a partial update. Changing the avatar also
// publishes an automatic feed post announcing the new picture.
func (s *Store) UpdateProfile(userID string, updates ProfileUpdate) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	u := s.findUser(userID)
	if u == nil {
		return false
	}

	avatarChanged := updates.Avatar != nil && *updates.Avatar != u.Avatar
	if updates.Name != nil {
		u.Name = *updates.Name
	}
	if updates.Avatar != nil {
		u.Avatar = *updates.Avatar
	}
	if updates.Bio != nil {
		u.Bio = *updates.Bio
	}

	if avatarChanged {
		post := &models.Post{
			ID:        s.newID(),
			UserID:    userID,
			Content:   u.Name + " updated their profile picture.",
			Image:     u.Avatar,
			Likes:     []string{},
			Timestamp: s.now(),
		}
		s.state.Posts = append([]*models.Post{post}, s.state.Posts...)
	}

	metrics.Get().StoreOperationsTotal.WithLabelValues("update_profile").Inc()
	s.persist()
	return true
}

// IsUserOnline computes presence as observed by others: either the
// user's own heartbeat flag, or activity within the presence window.
func (s *Store) IsUserOnline(userID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	u := s.findUser(userID)
	if u == nil {
		return false
	}
	return u.IsOnline || s.now().Sub(u.LastActive) < PresenceWindow
}

// findUser returns the live user record for id, or nil. Must be called
// with the mutex held.
func (s *Store) findUser(id string) *models.User {
	if id == "" {
		return nil
	}
	for _, u := range s.state.Users {
		if u.ID == id {
			return u
		}
	}
	return nil
}
