package store

import (
	"strings"

	"github.com/google/uuid"
	"github.com/motmot/nexlink/backend/internal/metrics"
	"github.com/motmot/nexlink/backend/internal/models"
	"go.uber.org/zap"
)

// Privileged operations, invoked only by the trusted automation
// caller. They wrap ordinary operations with relaxed checks and are
// deliberately not guarded by any authorization layer in the core.

// AdminCreateUser signs up an account with a generated password and
// marks it automation-controlled. The generated password is returned
// so the automation can relay it.
func (s *Store) AdminCreateUser(name, email string) (string, error) {
	password := randomPassword()
	user, err := s.Signup(name, email, password, "")
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if u := s.findUser(user.ID); u != nil {
		u.IsAIControlled = true
	}
	s.log.Info("Automation created account", zap.String("user_id", user.ID))
	metrics.Get().StoreOperationsTotal.WithLabelValues("admin_create_user").Inc()
	s.persist()
	return password, nil
}

// AdminDeleteUser resolves the target by exact email or exact name and
// hard-deletes the account, cascading to its posts, comments and
// stories. It refuses for the system assistant or an unknown target,
// and clears the session when the target was the active user.
func (s *Store) AdminDeleteUser(identifier string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	var target *models.User
	for _, u := range s.state.Users {
		if u.Email == identifier || u.Name == identifier {
			target = u
			break
		}
	}
	if target == nil || target.IsAI {
		return false
	}

	users := s.state.Users[:0]
	for _, u := range s.state.Users {
		if u.ID != target.ID {
			users = append(users, u)
		}
	}
	s.state.Users = users

	posts := s.state.Posts[:0]
	for _, p := range s.state.Posts {
		if p.UserID != target.ID {
			posts = append(posts, p)
		}
	}
	s.state.Posts = posts

	comments := s.state.Comments[:0]
	for _, c := range s.state.Comments {
		if c.UserID != target.ID {
			comments = append(comments, c)
		}
	}
	s.state.Comments = comments

	stories := s.state.Stories[:0]
	for _, st := range s.state.Stories {
		if st.UserID != target.ID {
			stories = append(stories, st)
		}
	}
	s.state.Stories = stories

	if s.state.CurrentUserID == target.ID {
		s.state.CurrentUserID = ""
	}

	s.log.Warn("Automation deleted account",
		zap.String("user_id", target.ID),
		zap.String("name", target.Name),
	)
	metrics.Get().StoreOperationsTotal.WithLabelValues("admin_delete_user").Inc()
	s.persist()
	return true
}

// AdminForceLogoutAll clears the session unconditionally, without the
// offline-marking side effect of a regular logout.
func (s *Store) AdminForceLogoutAll() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.CurrentUserID = ""
	s.log.Warn("Automation forced logout of all sessions")
	metrics.Get().StoreOperationsTotal.WithLabelValues("admin_force_logout").Inc()
	s.persist()
}

// AdminRevealPassword looks up the plaintext password by exact email.
// Passwords are stored in the clear; recovery means handing the stored
// value back.
func (s *Store) AdminRevealPassword(email string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.state.Users {
		if u.Email == email {
			return u.Password, u.Password != ""
		}
	}
	return "", false
}

// AdminBanUser sets the global suspension flag and clears the session
// when the target was the active user. A banned account can no longer
// log in, indistinguishably from wrong credentials.
func (s *Store) AdminBanUser(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u := s.findUser(userID)
	if u == nil {
		return
	}
	u.Blocked = true
	if s.state.CurrentUserID == userID {
		s.state.CurrentUserID = ""
	}
	s.log.Warn("Automation banned user", zap.String("user_id", userID))
	metrics.Get().StoreOperationsTotal.WithLabelValues("admin_ban_user").Inc()
	s.persist()
}

// randomPassword generates a throwaway credential: eight lowercase
// alphanumerics.
func randomPassword() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
}
