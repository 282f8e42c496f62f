package client

import (
	"context"
	"sync"
)

// DeferredResult is the outcome of one asynchronous completion that resolved
// with messages. Results are ordered by resolution time.
type DeferredResult struct {
	Attribute string
	Messages  []string
}

// Gate collects deferred completions for one submission. The overall client
// result is final only when every registered completion has resolved; a
// cancelled submission ignores whatever unresolved completions would
// eventually report.
//
// A Gate is safe for concurrent use: fragments register during the
// synchronous pass, completions resolve from any goroutine.
type Gate struct {
	mu        sync.Mutex
	pending   int
	results   []DeferredResult
	done      chan struct{}
	cancelled bool
}

// NewGate returns an empty gate.
func NewGate() *Gate { return &Gate{} }

// Register adds a pending completion bound to an attribute. The returned
// Completion must eventually be resolved exactly once; Wait blocks until it
// is or the submission is cancelled.
func (g *Gate) Register(attr string) *Completion {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.pending++
	return &Completion{gate: g, attr: attr}
}

// Pending returns the number of unresolved completions.
func (g *Gate) Pending() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.pending
}

// Wait blocks until every registered completion has resolved and returns
// the failing results in resolution order. If ctx is cancelled first, the
// submission is abandoned: Wait returns ctx.Err() and late resolutions are
// discarded without effect.
func (g *Gate) Wait(ctx context.Context) ([]DeferredResult, error) {
	g.mu.Lock()
	if g.pending == 0 {
		results := g.snapshotLocked()
		g.mu.Unlock()
		return results, nil
	}
	if g.done == nil {
		g.done = make(chan struct{})
	}
	done := g.done
	g.mu.Unlock()

	select {
	case <-ctx.Done():
		g.mu.Lock()
		g.cancelled = true
		g.mu.Unlock()
		return nil, ctx.Err()
	case <-done:
		g.mu.Lock()
		results := g.snapshotLocked()
		g.mu.Unlock()
		return results, nil
	}
}

func (g *Gate) snapshotLocked() []DeferredResult {
	if len(g.results) == 0 {
		return nil
	}
	out := make([]DeferredResult, len(g.results))
	copy(out, g.results)
	return out
}

// Completion is one registered asynchronous check.
type Completion struct {
	gate *Gate
	attr string
	once sync.Once
}

// Attribute returns the attribute the completion is bound to.
func (c *Completion) Attribute() string { return c.attr }

// Resolve finishes the completion, with no messages on success. Resolving
// more than once is a no-op, as is resolving after cancellation.
func (c *Completion) Resolve(msgs ...string) {
	c.once.Do(func() {
		g := c.gate
		g.mu.Lock()
		defer g.mu.Unlock()
		if g.cancelled {
			return
		}
		if len(msgs) > 0 {
			g.results = append(g.results, DeferredResult{Attribute: c.attr, Messages: msgs})
		}
		g.pending--
		if g.pending == 0 && g.done != nil {
			close(g.done)
		}
	})
}
