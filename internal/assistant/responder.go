package assistant

import (
	"context"
	"math/rand"
	"strings"
	"time"

	"github.com/motmot/nexlink/backend/internal/metrics"
	"github.com/motmot/nexlink/backend/internal/store"
	"go.uber.org/zap"
)

const autoPostPrompt = "Generate a short, engaging, random social media post for 'Nexus AI'. " +
	"Keep it under 20 words. Optionally include @Everyone."

// Responder runs the assistant's autonomous behavior: the periodic
// auto-poster and asynchronous chat replies. Generation happens off
// the store's writer path; results land as ordinary operations with no
// ordering guarantee relative to intervening user actions.
type Responder struct {
	store  *store.Store
	client Client
	log    *zap.Logger

	interval time.Duration
	chance   float64

	ctx    context.Context
	cancel context.CancelFunc
}

// NewResponder creates a responder posting on the given interval with
// the given per-tick probability. The stock cadence is a 10s tick with
// a 20% chance.
func NewResponder(st *store.Store, client Client, log *zap.Logger, interval time.Duration, chance float64) *Responder {
	if log == nil {
		log = zap.NewNop()
	}
	if interval <= 0 {
		interval = 10 * time.Second
	}
	if chance <= 0 {
		chance = 0.2
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Responder{
		store:    st,
		client:   client,
		log:      log,
		interval: interval,
		chance:   chance,
		ctx:      ctx,
		cancel:   cancel,
	}
}

// Start begins the periodic auto-poster.
func (r *Responder) Start() {
	r.log.Info("Assistant responder starting", zap.Duration("interval", r.interval))
	go r.run()
}

// Stop cancels the auto-poster and any pending replies.
func (r *Responder) Stop() {
	r.log.Info("Assistant responder stopping")
	r.cancel()
}

func (r *Responder) run() {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if rand.Float64() < r.chance {
				r.autoPost()
			}
		case <-r.ctx.Done():
			return
		}
	}
}

// autoPost asks the collaborator for a post and publishes it as the
// assistant account. Only runs while someone is logged in; an idle
// network stays quiet.
func (r *Responder) autoPost() {
	if r.store.CurrentUser() == nil {
		return
	}

	ctx, cancel := context.WithTimeout(r.ctx, 30*time.Second)
	defer cancel()

	text, err := r.client.GenerateText(ctx, autoPostPrompt)
	if err != nil {
		r.log.Warn("Assistant auto-post generation failed", zap.Error(err))
		metrics.Get().AssistantCallsTotal.WithLabelValues("auto_post", "error").Inc()
		return
	}
	metrics.Get().AssistantCallsTotal.WithLabelValues("auto_post", "ok").Inc()

	text = strings.TrimSpace(text)
	if text == "" {
		return
	}
	r.store.AddPost(store.AssistantID, text, "", "", "")
}

// ReplyToChat generates a reply in the background and sends it as the
// assistant once the round-trip completes. The send is keyed by chat
// id only: the user may have archived or left the chat in the
// meantime, and the late message must still land normally.
func (r *Responder) ReplyToChat(chatID, userMessage string) {
	go func() {
		ctx, cancel := context.WithTimeout(r.ctx, 30*time.Second)
		defer cancel()

		prompt := "You are Nexus AI, the assistant of the NexLink social network. " +
			"Reply briefly and helpfully to this message: " + userMessage
		text, err := r.client.GenerateText(ctx, prompt)
		if err != nil {
			r.log.Warn("Assistant reply generation failed",
				zap.String("chat_id", chatID),
				zap.Error(err),
			)
			metrics.Get().AssistantCallsTotal.WithLabelValues("chat_reply", "error").Inc()
			return
		}
		metrics.Get().AssistantCallsTotal.WithLabelValues("chat_reply", "ok").Inc()

		text = strings.TrimSpace(text)
		if text == "" {
			return
		}
		r.store.SendMessage(chatID, store.AssistantID, text, "", "")
	}()
}
