package refresh

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
)

// ErrStale возвращается, когда результат обновления вытеснен более новым запросом
var ErrStale = errors.New("refresh superseded by a newer request")

// Key what a refresh is about: a lesson and the period shown (week page, month)
type Key struct {
	LessonID string
	Period   string
}

// Ticket one in-flight refresh. Ctx is cancelled as soon as a newer refresh
// begins for the same scope.
type Ticket struct {
	ID    uuid.UUID
	Scope string
	Key   Key
	Ctx   context.Context

	cancel context.CancelFunc
}

// Coordinator last-request-wins bookkeeping per viewer scope.
// A scope is one viewing surface (e.g. a browser tab); only its latest ticket may commit.
type Coordinator struct {
	mu     sync.Mutex
	latest map[string]*Ticket
}

// NewCoordinator creates an empty coordinator
func NewCoordinator() *Coordinator {
	return &Coordinator{latest: make(map[string]*Ticket)}
}

// Begin registers a new refresh for scope and cancels the previous one
func (c *Coordinator) Begin(ctx context.Context, scope string, key Key) *Ticket {
	tctx, cancel := context.WithCancel(ctx)
	ticket := &Ticket{
		ID:     uuid.New(),
		Scope:  scope,
		Key:    key,
		Ctx:    tctx,
		cancel: cancel,
	}

	c.mu.Lock()
	prev := c.latest[scope]
	c.latest[scope] = ticket
	c.mu.Unlock()

	if prev != nil {
		prev.cancel()
	}
	return ticket
}

// Commit succeeds only if ticket is still the latest of its scope and was not cancelled.
// The ticket is released either way.
func (c *Coordinator) Commit(ticket *Ticket) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	current, ok := c.latest[ticket.Scope]
	latest := ok && current.ID == ticket.ID
	if latest {
		delete(c.latest, ticket.Scope)
	}
	alive := ticket.Ctx.Err() == nil
	ticket.cancel()

	if !latest || !alive {
		return ErrStale
	}
	return nil
}

// Release drops ticket without committing, e.g. when the refresh failed
func (c *Coordinator) Release(ticket *Ticket) {
	c.mu.Lock()
	if current, ok := c.latest[ticket.Scope]; ok && current.ID == ticket.ID {
		delete(c.latest, ticket.Scope)
	}
	c.mu.Unlock()
	ticket.cancel()
}

// Reset cancels the outstanding refresh of scope (service change, navigation away).
// Reports whether a refresh was in flight.
func (c *Coordinator) Reset(scope string) bool {
	c.mu.Lock()
	prev := c.latest[scope]
	delete(c.latest, scope)
	c.mu.Unlock()

	if prev == nil {
		return false
	}
	prev.cancel()
	return true
}

// Pending returns the number of scopes with an in-flight refresh
func (c *Coordinator) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.latest)
}
