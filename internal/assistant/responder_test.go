package assistant

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/motmot/nexlink/backend/internal/models"
	"github.com/motmot/nexlink/backend/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestPoolRoundRobin(t *testing.T) {
	a := &MockClient{Response: "a"}
	b := &MockClient{Response: "b"}
	pool := NewPool(a, b)

	r1, err := pool.GenerateText(context.Background(), "p1")
	require.NoError(t, err)
	r2, err := pool.GenerateText(context.Background(), "p2")
	require.NoError(t, err)
	r3, err := pool.GenerateText(context.Background(), "p3")
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b", "a"}, []string{r1, r2, r3})
	assert.Len(t, a.Prompts(), 2)
	assert.Len(t, b.Prompts(), 1)
}

func TestPoolEmpty(t *testing.T) {
	pool := NewPool()
	_, err := pool.GenerateText(context.Background(), "p")
	assert.ErrorIs(t, err, ErrNoClients)
}

func TestReplyToChatSendsAsAssistant(t *testing.T) {
	st := newStore(t)
	u, err := st.Signup("Alice", "alice@x.com", "pw", "")
	require.NoError(t, err)

	chat := st.CreateChat([]string{u.ID, store.AssistantID}, models.ChatTypePrivate, "")

	mock := &MockClient{Response: "Happy to help!"}
	r := NewResponder(st, mock, zap.NewNop(), time.Hour, 0.0001)
	defer r.Stop()

	r.ReplyToChat(chat.ID, "hello assistant")

	require.Eventually(t, func() bool {
		return len(st.MessagesForChat(chat.ID)) == 1
	}, 2*time.Second, 10*time.Millisecond)

	msgs := st.MessagesForChat(chat.ID)
	assert.Equal(t, store.AssistantID, msgs[0].SenderID)
	assert.Equal(t, "Happy to help!", msgs[0].Content)
	prompts := mock.Prompts()
	require.Len(t, prompts, 1)
	assert.Contains(t, prompts[0], "hello assistant")
}

func TestReplyToChatGenerationFailureSendsNothing(t *testing.T) {
	st := newStore(t)
	u, err := st.Signup("Alice", "alice@x.com", "pw", "")
	require.NoError(t, err)
	chat := st.CreateChat([]string{u.ID, store.AssistantID}, models.ChatTypePrivate, "")

	mock := &MockClient{Err: errors.New("quota exceeded")}
	r := NewResponder(st, mock, zap.NewNop(), time.Hour, 0.0001)
	defer r.Stop()

	r.ReplyToChat(chat.ID, "hello")

	require.Eventually(t, func() bool {
		return len(mock.Prompts()) == 1
	}, 2*time.Second, 10*time.Millisecond)
	assert.Empty(t, st.MessagesForChat(chat.ID))
}

func TestReplyLandsEvenAfterArchive(t *testing.T) {
	st := newStore(t)
	u, err := st.Signup("Alice", "alice@x.com", "pw", "")
	require.NoError(t, err)
	chat := st.CreateChat([]string{u.ID, store.AssistantID}, models.ChatTypePrivate, "")

	// Archive before the reply lands; the late send still succeeds and
	// un-archives the chat.
	st.ArchiveChat(chat.ID, u.ID)

	mock := &MockClient{Response: "late reply"}
	r := NewResponder(st, mock, zap.NewNop(), time.Hour, 0.0001)
	defer r.Stop()

	r.ReplyToChat(chat.ID, "hi")

	require.Eventually(t, func() bool {
		return len(st.MessagesForChat(chat.ID)) == 1
	}, 2*time.Second, 10*time.Millisecond)
	assert.Empty(t, st.GetChat(chat.ID).ArchivedBy)
}
