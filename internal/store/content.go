package store

import (
	"github.com/motmot/nexlink/backend/internal/metrics"
	"github.com/motmot/nexlink/backend/internal/models"
	"go.uber.org/zap"
)

// AddPost creates a post at the head of the feed and runs notification
// fan-out against its content: the @everyone broadcast, @name
// mentions, and a share notification when sharedFromID resolves to a
// post owned by someone else. A dangling sharedFromID is allowed and
// simply produces no share notification.
func (s *Store) AddPost(userID, content, image, video, sharedFromID string) *models.Post {
	s.mu.Lock()
	defer s.mu.Unlock()

	post := &models.Post{
		ID:           s.newID(),
		UserID:       userID,
		Content:      content,
		Image:        image,
		Video:        video,
		Likes:        []string{},
		Timestamp:    s.now(),
		SharedFromID: sharedFromID,
	}

	s.fanOutEveryone(userID, content, post.ID)
	s.fanOutMentions(userID, content, post.ID, "mentioned you in a post.")
	if sharedFromID != "" {
		if original := s.findPost(sharedFromID); original != nil && original.UserID != userID {
			s.notify(original.UserID, userID, models.NotificationShare, post.ID, "shared your post.")
		}
	}

	s.state.Posts = append([]*models.Post{post}, s.state.Posts...)
	s.log.Debug("Post created", zap.String("post_id", post.ID), zap.String("user_id", userID))
	metrics.Get().StoreOperationsTotal.WithLabelValues("add_post").Inc()
	s.persist()
	return post
}

// AddComment appends a comment. The post owner is notified when
// someone else comments, and the same @name mention scan as posts is
// applied. There is deliberately no @everyone path for comments.
func (s *Store) AddComment(postID, userID, content string) *models.Comment {
	s.mu.Lock()
	defer s.mu.Unlock()

	if post := s.findPost(postID); post != nil && post.UserID != userID {
		s.notify(post.UserID, userID, models.NotificationComment, postID, "commented on your post.")
	}
	s.fanOutMentions(userID, content, postID, "mentioned you in a comment.")

	comment := &models.Comment{
		ID:        s.newID(),
		PostID:    postID,
		UserID:    userID,
		Content:   content,
		Timestamp: s.now(),
	}
	s.state.Comments = append(s.state.Comments, comment)
	metrics.Get().StoreOperationsTotal.WithLabelValues("add_comment").Inc()
	s.persist()
	return comment
}

// ToggleLike adds the user to the post's likes set, or removes them if
// already present. A notification is emitted only on the like edge and
// only for someone else's post; unliking never retracts it.
func (s *Store) ToggleLike(postID, userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	post := s.findPost(postID)
	if post == nil {
		return
	}

	if post.LikedBy(userID) {
		post.Likes = models.RemoveID(post.Likes, userID)
	} else {
		post.Likes = models.AppendUniqueID(post.Likes, userID)
		if post.UserID != userID {
			s.notify(post.UserID, userID, models.NotificationLike, postID, "liked your post.")
		}
	}
	metrics.Get().StoreOperationsTotal.WithLabelValues("toggle_like").Inc()
	s.persist()
}

// AddStory appends a story with the current timestamp and no viewers.
func (s *Store) AddStory(userID, image string, texts []models.StoryText) *models.Story {
	s.mu.Lock()
	defer s.mu.Unlock()

	if texts == nil {
		texts = []models.StoryText{}
	}
	story := &models.Story{
		ID:        s.newID(),
		UserID:    userID,
		Image:     image,
		Texts:     texts,
		Timestamp: s.now(),
		Viewers:   []string{},
	}
	s.state.Stories = append(s.state.Stories, story)
	metrics.Get().StoreOperationsTotal.WithLabelValues("add_story").Inc()
	s.persist()
	return story
}

// MarkStoryViewed records a viewer on a story. Viewing is idempotent.
func (s *Store) MarkStoryViewed(storyID, viewerID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, st := range s.state.Stories {
		if st.ID == storyID {
			st.Viewers = models.AppendUniqueID(st.Viewers, viewerID)
			s.persist()
			return
		}
	}
}

// CleanupStories permanently removes every story at or past the
// retention window and reports how many were dropped. It is idempotent
// and runs before any story listing.
func (s *Store) CleanupStories() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	removed := s.sweepStoriesLocked()
	if removed > 0 {
		s.persist()
	}
	return removed
}

// sweepStoriesLocked drops expired stories and returns how many were
// removed. Must be called with the mutex held.
func (s *Store) sweepStoriesLocked() int {
	now := s.now()
	kept := s.state.Stories[:0]
	removed := 0
	for _, st := range s.state.Stories {
		if st.Expired(now) {
			removed++
			continue
		}
		kept = append(kept, st)
	}
	s.state.Stories = kept
	if removed > 0 {
		s.log.Info("Expired stories removed", zap.Int("count", removed))
	}
	return removed
}

// findPost returns the live post for id, or nil. Must be called with
// the mutex held.
func (s *Store) findPost(id string) *models.Post {
	for _, p := range s.state.Posts {
		if p.ID == id {
			return p
		}
	}
	return nil
}
