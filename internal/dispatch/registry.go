// Package dispatch routes requests to the single handler registered for
// their type. It is a structural decoupling layer: handlers run
// synchronously, with no retries and no queueing.
package dispatch

import (
	"context"
	"fmt"
	"sync"

	"github.com/flizwph/clothing-brand-sub001/domain"
)

// Request is anything routable by the registry. RequestName is the
// explicit type tag; no reflection is involved.
type Request interface {
	RequestName() string
}

// HandlerFunc handles one request type
type HandlerFunc func(ctx context.Context, req Request) (interface{}, error)

// Registry maps request names to handlers. Registration happens at
// startup; Dispatch is safe for concurrent use afterwards.
type Registry struct {
	mu       sync.RWMutex
	handlers map[string]HandlerFunc
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{handlers: make(map[string]HandlerFunc)}
}

// Register binds a handler to a request name. Binding the same name
// twice is a wiring bug and fails loudly.
func (r *Registry) Register(name string, handler HandlerFunc) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.handlers[name]; exists {
		return fmt.Errorf("handler already registered for %q", name)
	}
	r.handlers[name] = handler
	return nil
}

// Dispatch resolves the handler for the request's type and invokes it
// synchronously.
func (r *Registry) Dispatch(ctx context.Context, req Request) (interface{}, error) {
	r.mu.RLock()
	handler, ok := r.handlers[req.RequestName()]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrNoHandler, req.RequestName())
	}
	return handler(ctx, req)
}
