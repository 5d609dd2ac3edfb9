// Package seed fills an empty store with realistic development data.
package seed

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/motmot/nexlink/backend/internal/models"
	"github.com/motmot/nexlink/backend/internal/store"
	"go.uber.org/zap"
)

// Seeder handles store seeding operations
type Seeder struct {
	store *store.Store
	log   *zap.Logger
}

// NewSeeder creates a new seeder instance
func NewSeeder(st *store.Store, log *zap.Logger) *Seeder {
	// Seed random generator for varied results across runs
	_ = gofakeit.Seed(time.Now().UnixNano())
	if log == nil {
		log = zap.NewNop()
	}
	return &Seeder{store: st, log: log}
}

// SeedDev populates the store with a connected development community:
// users with friendships and follows, posts with real mentions,
// comments, stories, and a few private chats. The session is left
// logged out when seeding finishes.
func (s *Seeder) SeedDev() error {
	s.log.Info("Creating users...")
	users, err := s.seedUsers(20)
	if err != nil {
		return fmt.Errorf("failed to seed users: %w", err)
	}

	s.log.Info("Creating friendships and follows...")
	s.seedRelationships(users)

	s.log.Info("Creating posts...")
	posts := s.seedPosts(users, 50)

	s.log.Info("Creating comments...")
	s.seedComments(users, posts, 100)

	s.log.Info("Creating stories...")
	s.seedStories(users, 10)

	s.log.Info("Creating chats...")
	s.seedChats(users, 8)

	// Signup leaves the first created user logged in.
	s.store.Logout()

	s.log.Info("Seeding complete",
		zap.Int("users", len(users)),
		zap.Int("posts", len(posts)),
	)
	return nil
}

func (s *Seeder) seedUsers(count int) ([]*models.User, error) {
	users := make([]*models.User, 0, count)
	for i := 0; i < count; i++ {
		name := gofakeit.Name()
		email := gofakeit.Email()
		password := gofakeit.Password(true, true, true, false, false, 12)

		user, err := s.store.Signup(name, email, password, "")
		if err != nil {
			// Generated email collided; skip this slot.
			s.log.Warn("skipping user", zap.String("email", email), zap.Error(err))
			continue
		}
		if gofakeit.Bool() {
			s.store.UpdateProfile(user.ID, store.ProfileUpdate{
				Bio: ptr(gofakeit.HipsterSentence()),
			})
		}
		users = append(users, user)
	}
	if len(users) == 0 {
		return nil, fmt.Errorf("no users created")
	}
	return users, nil
}

func (s *Seeder) seedRelationships(users []*models.User) {
	for _, u := range users {
		// Each user befriends and follows a handful of others.
		for i := 0; i < 3; i++ {
			other := users[rand.Intn(len(users))]
			if other.ID == u.ID {
				continue
			}
			s.store.SendFriendRequest(u.ID, other.ID)
			s.store.AcceptFriendRequest(other.ID, u.ID)
		}
		for i := 0; i < 5; i++ {
			other := users[rand.Intn(len(users))]
			if other.ID == u.ID {
				continue
			}
			s.store.Follow(u.ID, other.ID)
		}
	}
}

func (s *Seeder) seedPosts(users []*models.User, count int) []*models.Post {
	posts := make([]*models.Post, 0, count)
	for i := 0; i < count; i++ {
		author := users[rand.Intn(len(users))]
		content := gofakeit.Sentence(12)

		// A slice of posts mention another member so the notification
		// fan-out has something to chew on.
		if rand.Float64() < 0.2 {
			target := users[rand.Intn(len(users))]
			if target.ID != author.ID {
				content = fmt.Sprintf("%s @%s", content, mentionToken(target.Name))
			}
		}

		image := ""
		if rand.Float64() < 0.3 {
			image = imageURL(640, 480)
		}

		post := s.store.AddPost(author.ID, content, image, "", "")
		posts = append(posts, post)
	}
	return posts
}

func (s *Seeder) seedComments(users []*models.User, posts []*models.Post, count int) {
	if len(posts) == 0 {
		return
	}
	for i := 0; i < count; i++ {
		author := users[rand.Intn(len(users))]
		post := posts[rand.Intn(len(posts))]
		s.store.AddComment(post.ID, author.ID, gofakeit.Sentence(8))

		if rand.Float64() < 0.5 {
			liker := users[rand.Intn(len(users))]
			s.store.ToggleLike(post.ID, liker.ID)
		}
	}
}

func (s *Seeder) seedStories(users []*models.User, count int) {
	for i := 0; i < count; i++ {
		author := users[rand.Intn(len(users))]
		texts := []models.StoryText{}
		if gofakeit.Bool() {
			texts = append(texts, models.StoryText{
				ID:      gofakeit.UUID(),
				Content: gofakeit.HipsterSentence(),
				X:       float64(rand.Intn(80) + 10),
				Y:       float64(rand.Intn(80) + 10),
				Color:   gofakeit.HexColor(),
				Scale:   1,
			})
		}
		s.store.AddStory(author.ID, imageURL(1080, 1920), texts)
	}
}

func (s *Seeder) seedChats(users []*models.User, count int) {
	for i := 0; i < count; i++ {
		a := users[rand.Intn(len(users))]
		b := users[rand.Intn(len(users))]
		if a.ID == b.ID {
			continue
		}
		chat := s.store.CreateChat([]string{a.ID, b.ID}, models.ChatTypePrivate, "")
		for j := 0; j < rand.Intn(4)+1; j++ {
			sender := a.ID
			if j%2 == 1 {
				sender = b.ID
			}
			s.store.SendMessage(chat.ID, sender, gofakeit.Sentence(6), "", "")
		}
	}
}

// imageURL builds a placeholder image URL at the given dimensions,
// varied so seeded media doesn't all render identically.
func imageURL(width, height int) string {
	return fmt.Sprintf("https://picsum.photos/seed/%s/%d/%d", gofakeit.Word(), width, height)
}

// mentionToken renders a display name the way the mention scanner
// resolves it: whitespace removed.
func mentionToken(name string) string {
	return strings.Map(func(r rune) rune {
		if r == ' ' || r == '\t' {
			return -1
		}
		return r
	}, name)
}

func ptr(s string) *string { return &s }
