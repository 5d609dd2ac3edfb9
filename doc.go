// Package backend provides the NexLink API server.
//
// This package contains the main application entry points. The actual
// functionality is organized into subpackages:
//
//   - internal/store: the in-memory, locally-persisted social data core
//   - internal/models: data model types shared across packages
//   - internal/persistence: the SQLite-backed snapshot slot
//   - internal/handlers: HTTP request handlers for all API endpoints
//   - internal/assistant: the generative-AI boundary and tool surface
//   - internal/ws: WebSocket presence push
//   - internal/services: background heartbeat and story cleanup tickers
//   - internal/seed: development data seeding
//   - internal/middleware: HTTP middleware (request ids, logging, metrics)
//
// See the individual package documentation for detailed reference.
package backend
