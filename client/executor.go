package client

import (
	"context"
	"fmt"

	"github.com/dmitrymomot/validkit"
)

// Check is the execution context of one fragment: the four bound names of
// the fragment contract plus the full value map for cross-attribute
// operations.
type Check struct {
	// Attribute is the identifier of the field under test.
	Attribute string

	// Value is the client-observed value of the attribute.
	Value any

	// Values holds every submitted value, for operations like "compare".
	Values map[string]any

	// Params are the fragment's operation parameters.
	Params map[string]any

	// Message is the failure message the fragment carries.
	Message string

	// Sink receives failure messages for this attribute.
	Sink *Sink

	gate *Gate
}

// Defer registers an asynchronous completion for this attribute. The handler
// must arrange for it to be resolved; the overall result waits on it.
func (c Check) Defer() *Completion {
	return c.gate.Register(c.Attribute)
}

// HandlerFunc executes one fragment operation.
type HandlerFunc func(Check)

// Executor is a reference client runtime: it maps operation kinds to
// handlers and runs a form against a set of values. Production front ends
// replace it with their own renderer; the semantics here are the contract.
type Executor struct {
	ops map[string]HandlerFunc
}

// NewExecutor returns an executor with no registered operations.
func NewExecutor() *Executor {
	return &Executor{ops: make(map[string]HandlerFunc)}
}

// Handle registers the handler for an operation kind.
func (e *Executor) Handle(op string, fn HandlerFunc) {
	e.ops[op] = fn
}

// Result is the outcome of one client validation run.
type Result struct {
	// Messages maps attribute to ordered failure messages: synchronous
	// messages first, then deferred ones in resolution order.
	Messages map[string][]string
}

// OK reports whether no fragment and no deferred completion failed.
func (r *Result) OK() bool { return len(r.Messages) == 0 }

// Run executes the form fragments against the submitted values and waits for
// all deferred completions. An operation without a registered handler is a
// configuration fault. Cancellation of ctx abandons the submission:
// unresolved completions are ignored and Run returns the context error.
func (e *Executor) Run(ctx context.Context, form []validkit.FieldFragments, values map[string]any) (*Result, error) {
	gate := NewGate()
	sinks := make(map[string]*Sink, len(form))
	order := make([]string, 0, len(form))

	for _, field := range form {
		sink := &Sink{}
		sinks[field.Attribute] = sink
		order = append(order, field.Attribute)
		for _, frag := range field.Fragments {
			fn, ok := e.ops[frag.Op]
			if !ok {
				return nil, fmt.Errorf("no handler for operation %q", frag.Op)
			}
			fn(Check{
				Attribute: field.Attribute,
				Value:     values[field.Attribute],
				Values:    values,
				Params:    frag.Params,
				Message:   frag.Message,
				Sink:      sink,
				gate:      gate,
			})
		}
	}

	deferred, err := gate.Wait(ctx)
	if err != nil {
		return nil, err
	}

	msgs := make(map[string][]string)
	for _, attr := range order {
		if s := sinks[attr]; !s.Empty() {
			msgs[attr] = s.Messages()
		}
	}
	for _, dr := range deferred {
		msgs[dr.Attribute] = append(msgs[dr.Attribute], dr.Messages...)
	}
	if len(msgs) == 0 {
		return &Result{}, nil
	}
	return &Result{Messages: msgs}, nil
}
