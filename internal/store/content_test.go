package store

import (
	"testing"
	"time"

	"github.com/motmot/nexlink/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func notificationsOfType(notifs []*models.Notification, typ models.NotificationType) []*models.Notification {
	var out []*models.Notification
	for _, n := range notifs {
		if n.Type == typ {
			out = append(out, n)
		}
	}
	return out
}

func TestFeedIsMostRecentFirst(t *testing.T) {
	s := newTestStore(t)
	alice := signupUser(t, s, "Alice", "alice@x.com")

	s.AddPost(alice.ID, "first", "", "", "")
	s.AddPost(alice.ID, "second", "", "", "")

	feed := s.Feed()
	require.Len(t, feed, 2)
	assert.Equal(t, "second", feed[0].Content)
	assert.Equal(t, "first", feed[1].Content)
}

func TestMentionNotification(t *testing.T) {
	s := newTestStore(t)
	alice := signupUser(t, s, "Alice", "alice@x.com")
	bob := signupUser(t, s, "Bob Smith", "bob@x.com")

	// Mention tokens resolve against names with whitespace stripped.
	post := s.AddPost(alice.ID, "hi @BobSmith", "", "", "")

	notifs := s.NotificationsForUser(bob.ID)
	require.Len(t, notifs, 1)
	assert.Equal(t, models.NotificationMention, notifs[0].Type)
	assert.Equal(t, post.ID, notifs[0].EntityID)
	assert.Equal(t, alice.ID, notifs[0].ActorID)
	assert.Equal(t, "mentioned you in a post.", notifs[0].Message)
}

func TestMentionIsCaseSensitive(t *testing.T) {
	s := newTestStore(t)
	alice := signupUser(t, s, "Alice", "alice@x.com")
	bob := signupUser(t, s, "Bob", "bob@x.com")

	s.AddPost(alice.ID, "hi @bob", "", "", "")
	assert.Empty(t, s.NotificationsForUser(bob.ID))
}

func TestSelfMentionIsIgnored(t *testing.T) {
	s := newTestStore(t)
	alice := signupUser(t, s, "Alice", "alice@x.com")

	s.AddPost(alice.ID, "note to @Alice", "", "", "")
	assert.Empty(t, s.NotificationsForUser(alice.ID))
}

func TestEveryoneBroadcast(t *testing.T) {
	s := newTestStore(t)
	alice := signupUser(t, s, "Alice", "alice@x.com")
	bob := signupUser(t, s, "Bob", "bob@x.com")
	carol := signupUser(t, s, "Carol", "carol@x.com")
	dave := signupUser(t, s, "Dave", "dave@x.com")

	// Dave blocked Alice, so he is excluded from her broadcasts.
	s.Block(dave.ID, alice.ID)

	s.AddPost(alice.ID, "hello @Everyone", "", "", "")

	assert.Len(t, notificationsOfType(s.NotificationsForUser(bob.ID), models.NotificationEveryone), 1)
	assert.Len(t, notificationsOfType(s.NotificationsForUser(carol.ID), models.NotificationEveryone), 1)
	assert.Empty(t, s.NotificationsForUser(dave.ID))
	assert.Empty(t, s.NotificationsForUser(alice.ID))
	// The assistant account never receives broadcasts.
	assert.Empty(t, s.NotificationsForUser(AssistantID))
	// @Everyone is not a mention.
	assert.Empty(t, notificationsOfType(s.NotificationsForUser(bob.ID), models.NotificationMention))
}

func TestEveryoneIsCaseInsensitive(t *testing.T) {
	s := newTestStore(t)
	alice := signupUser(t, s, "Alice", "alice@x.com")
	bob := signupUser(t, s, "Bob", "bob@x.com")

	s.AddPost(alice.ID, "big news @EVERYONE", "", "", "")
	assert.Len(t, s.NotificationsForUser(bob.ID), 1)
}

func TestShareNotification(t *testing.T) {
	s := newTestStore(t)
	alice := signupUser(t, s, "Alice", "alice@x.com")
	bob := signupUser(t, s, "Bob", "bob@x.com")

	original := s.AddPost(alice.ID, "original", "", "", "")
	s.AddPost(bob.ID, "look at this", "", "", original.ID)

	notifs := notificationsOfType(s.NotificationsForUser(alice.ID), models.NotificationShare)
	require.Len(t, notifs, 1)
	assert.Equal(t, bob.ID, notifs[0].ActorID)
}

func TestShareOwnPostNoNotification(t *testing.T) {
	s := newTestStore(t)
	alice := signupUser(t, s, "Alice", "alice@x.com")

	original := s.AddPost(alice.ID, "original", "", "", "")
	s.AddPost(alice.ID, "sharing myself", "", "", original.ID)

	assert.Empty(t, s.NotificationsForUser(alice.ID))
}

func TestShareDanglingOriginalAllowed(t *testing.T) {
	s := newTestStore(t)
	alice := signupUser(t, s, "Alice", "alice@x.com")

	post := s.AddPost(alice.ID, "sharing a ghost", "", "", "missing-post")
	require.NotNil(t, post)
	assert.Equal(t, "missing-post", post.SharedFromID)
}

func TestToggleLikeDoubleRestoresState(t *testing.T) {
	s := newTestStore(t)
	alice := signupUser(t, s, "Alice", "alice@x.com")
	bob := signupUser(t, s, "Bob", "bob@x.com")

	post := s.AddPost(alice.ID, "hello", "", "", "")

	s.ToggleLike(post.ID, bob.ID)
	assert.Contains(t, s.GetPost(post.ID).Likes, bob.ID)

	s.ToggleLike(post.ID, bob.ID)
	assert.Empty(t, s.GetPost(post.ID).Likes)

	// The like notification is emitted once and never retracted.
	notifs := notificationsOfType(s.NotificationsForUser(alice.ID), models.NotificationLike)
	assert.Len(t, notifs, 1)

	// Each new like edge notifies again; the retained notification from
	// the first pair is not deduplicated away.
	s.ToggleLike(post.ID, bob.ID)
	s.ToggleLike(post.ID, bob.ID)
	notifs = notificationsOfType(s.NotificationsForUser(alice.ID), models.NotificationLike)
	assert.Len(t, notifs, 2)
}

func TestToggleLikeOwnPostNoNotification(t *testing.T) {
	s := newTestStore(t)
	alice := signupUser(t, s, "Alice", "alice@x.com")

	post := s.AddPost(alice.ID, "hello", "", "", "")
	s.ToggleLike(post.ID, alice.ID)

	assert.Contains(t, s.GetPost(post.ID).Likes, alice.ID)
	assert.Empty(t, s.NotificationsForUser(alice.ID))
}

func TestCommentNotifiesOwnerAndMentions(t *testing.T) {
	s := newTestStore(t)
	alice := signupUser(t, s, "Alice", "alice@x.com")
	bob := signupUser(t, s, "Bob", "bob@x.com")
	carol := signupUser(t, s, "Carol", "carol@x.com")

	post := s.AddPost(alice.ID, "hello", "", "", "")
	s.AddComment(post.ID, bob.ID, "nice one @Carol")

	ownerNotifs := notificationsOfType(s.NotificationsForUser(alice.ID), models.NotificationComment)
	require.Len(t, ownerNotifs, 1)
	assert.Equal(t, "commented on your post.", ownerNotifs[0].Message)

	mentionNotifs := notificationsOfType(s.NotificationsForUser(carol.ID), models.NotificationMention)
	require.Len(t, mentionNotifs, 1)
	assert.Equal(t, "mentioned you in a comment.", mentionNotifs[0].Message)
	assert.Equal(t, post.ID, mentionNotifs[0].EntityID)
}

func TestCommentOnOwnPostNoOwnerNotification(t *testing.T) {
	s := newTestStore(t)
	alice := signupUser(t, s, "Alice", "alice@x.com")

	post := s.AddPost(alice.ID, "hello", "", "", "")
	s.AddComment(post.ID, alice.ID, "replying to myself")

	assert.Empty(t, s.NotificationsForUser(alice.ID))
}

func TestCommentEveryoneDoesNotBroadcast(t *testing.T) {
	s := newTestStore(t)
	alice := signupUser(t, s, "Alice", "alice@x.com")
	bob := signupUser(t, s, "Bob", "bob@x.com")

	post := s.AddPost(alice.ID, "hello", "", "", "")
	s.AddComment(post.ID, alice.ID, "@everyone look here")

	assert.Empty(t, s.NotificationsForUser(bob.ID))
}

func TestStoryExpiry(t *testing.T) {
	s := newTestStore(t)
	alice := signupUser(t, s, "Alice", "alice@x.com")

	base := time.Now()
	s.SetClock(func() time.Time { return base })
	fresh := s.AddStory(alice.ID, "img-fresh", nil)

	s.SetClock(func() time.Time { return base.Add(-24 * time.Hour) })
	// Backdate by adding under an earlier clock, then read at base+1h.
	old := s.AddStory(alice.ID, "img-old", nil)

	s.SetClock(func() time.Time { return base.Add(time.Hour) })
	stories := s.ActiveStories()
	require.Len(t, stories, 1)
	assert.Equal(t, fresh.ID, stories[0].ID)
	assert.NotEqual(t, old.ID, stories[0].ID)
}

func TestMarkStoryViewedIdempotent(t *testing.T) {
	s := newTestStore(t)
	alice := signupUser(t, s, "Alice", "alice@x.com")
	bob := signupUser(t, s, "Bob", "bob@x.com")

	story := s.AddStory(alice.ID, "img", nil)
	s.MarkStoryViewed(story.ID, bob.ID)
	s.MarkStoryViewed(story.ID, bob.ID)

	stories := s.ActiveStories()
	require.Len(t, stories, 1)
	assert.Equal(t, []string{bob.ID}, stories[0].Viewers)
}

func TestCleanupStoriesReportsRemoved(t *testing.T) {
	s := newTestStore(t)
	alice := signupUser(t, s, "Alice", "alice@x.com")

	base := time.Now()
	s.SetClock(func() time.Time { return base.Add(-25 * time.Hour) })
	s.AddStory(alice.ID, "img", nil)

	s.SetClock(func() time.Time { return base })
	assert.Equal(t, 1, s.CleanupStories())
	assert.Equal(t, 0, s.CleanupStories())
}
