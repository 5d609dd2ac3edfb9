package store

import (
	"github.com/motmot/nexlink/backend/internal/metrics"
	"github.com/motmot/nexlink/backend/internal/models"
	"go.uber.org/zap"
)

// SendFriendRequest records a pending request on the recipient and
// notifies them. It is an idempotent no-op when a request is already
// pending or the two users are already friends.
func (s *Store) SendFriendRequest(fromID, toID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	to := s.findUser(toID)
	if to == nil || to.HasPendingRequestFrom(fromID) || to.IsFriend(fromID) {
		return
	}

	to.FriendRequests = models.AppendUniqueID(to.FriendRequests, fromID)
	s.notify(toID, fromID, models.NotificationFriendRequest, "", "sent you a friend request.")
	metrics.Get().StoreOperationsTotal.WithLabelValues("send_friend_request").Inc()
	s.persist()
}

// AcceptFriendRequest makes the two users friends and clears the
// pending entry. Friends is a set, so accepting an already-accepted
// pair never accumulates duplicates.
func (s *Store) AcceptFriendRequest(userID, requesterID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user := s.findUser(userID)
	requester := s.findUser(requesterID)
	if user == nil || requester == nil {
		return
	}

	user.Friends = models.AppendUniqueID(user.Friends, requesterID)
	user.FriendRequests = models.RemoveID(user.FriendRequests, requesterID)
	requester.Friends = models.AppendUniqueID(requester.Friends, userID)

	s.log.Debug("Friend request accepted",
		zap.String("user_id", userID),
		zap.String("requester_id", requesterID),
	)
	metrics.Get().StoreOperationsTotal.WithLabelValues("accept_friend_request").Inc()
	s.persist()
}

// RejectFriendRequest drops the pending entry. No notification.
func (s *Store) RejectFriendRequest(userID, requesterID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user := s.findUser(userID)
	if user == nil {
		return
	}
	user.FriendRequests = models.RemoveID(user.FriendRequests, requesterID)
	s.persist()
}

// Follow adds the follower/following edge on both sides and notifies
// the target. Re-following an existing edge changes nothing and emits
// no second notification.
func (s *Store) Follow(followerID, targetID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	follower := s.findUser(followerID)
	target := s.findUser(targetID)
	if follower == nil || target == nil {
		return
	}
	if models.ContainsID(follower.Following, targetID) {
		return
	}

	follower.Following = models.AppendUniqueID(follower.Following, targetID)
	target.Followers = models.AppendUniqueID(target.Followers, followerID)
	s.notify(targetID, followerID, models.NotificationFollow, "", "started following you.")
	metrics.Get().StoreOperationsTotal.WithLabelValues("follow").Inc()
	s.persist()
}

// Unfollow removes the edge from both sides. No notification.
func (s *Store) Unfollow(followerID, targetID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	follower := s.findUser(followerID)
	target := s.findUser(targetID)
	if follower == nil || target == nil {
		return
	}

	follower.Following = models.RemoveID(follower.Following, targetID)
	target.Followers = models.RemoveID(target.Followers, followerID)
	metrics.Get().StoreOperationsTotal.WithLabelValues("unfollow").Inc()
	s.persist()
}

// Block marks the pair blocked in both directions and severs any
// existing friendship and follow relationship between them.
func (s *Store) Block(blockerID, targetID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	blocker := s.findUser(blockerID)
	target := s.findUser(targetID)
	if blocker == nil || target == nil {
		return
	}

	blocker.BlockedUsers = models.AppendUniqueID(blocker.BlockedUsers, targetID)
	blocker.Friends = models.RemoveID(blocker.Friends, targetID)
	blocker.Following = models.RemoveID(blocker.Following, targetID)
	blocker.Followers = models.RemoveID(blocker.Followers, targetID)

	target.BlockedBy = models.AppendUniqueID(target.BlockedBy, blockerID)
	target.Friends = models.RemoveID(target.Friends, blockerID)
	target.Following = models.RemoveID(target.Following, blockerID)
	target.Followers = models.RemoveID(target.Followers, blockerID)

	s.log.Info("User blocked",
		zap.String("blocker_id", blockerID),
		zap.String("target_id", targetID),
	)
	metrics.Get().StoreOperationsTotal.WithLabelValues("block").Inc()
	s.persist()
}

// Unblock removes the block markers only. Relationships severed by the
// block are not restored.
func (s *Store) Unblock(blockerID, targetID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	blocker := s.findUser(blockerID)
	target := s.findUser(targetID)
	if blocker == nil || target == nil {
		return
	}

	blocker.BlockedUsers = models.RemoveID(blocker.BlockedUsers, targetID)
	target.BlockedBy = models.RemoveID(target.BlockedBy, blockerID)
	metrics.Get().StoreOperationsTotal.WithLabelValues("unblock").Inc()
	s.persist()
}
