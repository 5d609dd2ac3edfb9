// Package assistant holds the boundary to the external generative-AI
// collaborator: an opaque text-generation capability, the typed tool
// command surface it invokes, and the background responder that posts
// and replies as the built-in assistant account.
package assistant

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
)

// Client is the opaque generative-text capability. The core never
// initiates anything else against the collaborator.
type Client interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// ErrNoClients is returned by an empty pool.
var ErrNoClients = errors.New("assistant: no clients configured")

// Pool load-balances generation across several clients round-robin,
// one per configured API key.
type Pool struct {
	clients []Client
	next    atomic.Uint64
}

// NewPool builds a pool over the given clients.
func NewPool(clients ...Client) *Pool {
	return &Pool{clients: clients}
}

// GenerateText delegates to the next client in rotation.
func (p *Pool) GenerateText(ctx context.Context, prompt string) (string, error) {
	if len(p.clients) == 0 {
		return "", ErrNoClients
	}
	i := p.next.Add(1) - 1
	return p.clients[int(i)%len(p.clients)].GenerateText(ctx, prompt)
}

// MockClient is a canned-response client for tests and offline runs.
// Safe for concurrent use; generation runs on background goroutines.
type MockClient struct {
	Response string
	Err      error

	mu      sync.Mutex
	prompts []string
}

// GenerateText returns the canned response.
func (m *MockClient) GenerateText(_ context.Context, prompt string) (string, error) {
	m.mu.Lock()
	m.prompts = append(m.prompts, prompt)
	m.mu.Unlock()
	if m.Err != nil {
		return "", m.Err
	}
	return m.Response, nil
}

// Prompts returns a copy of every prompt received, in order.
func (m *MockClient) Prompts() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string{}, m.prompts...)
}
