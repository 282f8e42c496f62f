package validkit

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Key identifies an error bucket: either a named attribute or the model
// itself. Model-level errors are represented explicitly rather than through a
// sentinel attribute name, so they can never collide with a real attribute.
type Key struct {
	name  string
	model bool
}

// Attr returns the key for a named attribute.
func Attr(name string) Key { return Key{name: name} }

// ModelLevel returns the key for errors not tied to a specific attribute.
func ModelLevel() Key { return Key{model: true} }

// IsModelLevel reports whether the key denotes a model-level error.
func (k Key) IsModelLevel() bool { return k.model }

// Attribute returns the attribute name, or "" for a model-level key.
func (k Key) Attribute() string { return k.name }

// String renders the key for logs and wire formats. Model-level keys render
// as "*", which is also the key used in JSON output.
func (k Key) String() string {
	if k.model {
		return "*"
	}
	return k.name
}

type errorEntry struct {
	key Key
	msg string
}

// Errors is an insertion-ordered multimap of validation messages. Messages
// for one key are returned in the order they were added, and keys are
// reported in first-occurrence order. Nothing is deduplicated.
//
// Errors implements the error interface so a non-empty collection can be
// returned or logged directly.
type Errors struct {
	entries []errorEntry
	byKey   map[Key][]string
	order   []Key
}

// NewErrors returns an empty collection.
func NewErrors() *Errors {
	return &Errors{byKey: make(map[Key][]string)}
}

// Add appends a message under the given key.
func (e *Errors) Add(k Key, msg string) {
	if e.byKey == nil {
		e.byKey = make(map[Key][]string)
	}
	if _, ok := e.byKey[k]; !ok {
		e.order = append(e.order, k)
	}
	e.byKey[k] = append(e.byKey[k], msg)
	e.entries = append(e.entries, errorEntry{key: k, msg: msg})
}

// Has reports whether any message is recorded under the key.
func (e *Errors) Has(k Key) bool {
	return e != nil && len(e.byKey[k]) > 0
}

// HasAny reports whether the collection holds any message at all.
func (e *Errors) HasAny() bool {
	return e != nil && len(e.entries) > 0
}

// IsEmpty is the negation of HasAny.
func (e *Errors) IsEmpty() bool { return !e.HasAny() }

// Len returns the total number of recorded messages.
func (e *Errors) Len() int {
	if e == nil {
		return 0
	}
	return len(e.entries)
}

// Messages returns a copy of the messages recorded under the key, in
// insertion order.
func (e *Errors) Messages(k Key) []string {
	if e == nil || len(e.byKey[k]) == 0 {
		return nil
	}
	out := make([]string, len(e.byKey[k]))
	copy(out, e.byKey[k])
	return out
}

// First returns the first message recorded under the key, or "".
func (e *Errors) First(k Key) string {
	if e == nil || len(e.byKey[k]) == 0 {
		return ""
	}
	return e.byKey[k][0]
}

// FirstPerKey returns the first message for every key that has one.
func (e *Errors) FirstPerKey() map[Key]string {
	if e == nil {
		return nil
	}
	out := make(map[Key]string, len(e.order))
	for _, k := range e.order {
		out[k] = e.byKey[k][0]
	}
	return out
}

// Keys returns the keys in first-occurrence order.
func (e *Errors) Keys() []Key {
	if e == nil {
		return nil
	}
	out := make([]Key, len(e.order))
	copy(out, e.order)
	return out
}

// All returns every message in global insertion order, across keys.
func (e *Errors) All() []string {
	if e == nil {
		return nil
	}
	out := make([]string, 0, len(e.entries))
	for _, entry := range e.entries {
		out = append(out, entry.msg)
	}
	return out
}

// Clear drops all recorded messages. The engine calls this only at the start
// of a fresh pass; validators never clear mid-pass.
func (e *Errors) Clear() {
	e.entries = nil
	e.order = nil
	e.byKey = make(map[Key][]string)
}

// Error implements the error interface with a short human-readable summary.
func (e *Errors) Error() string {
	if e.IsEmpty() {
		return "validation failed"
	}
	parts := make([]string, 0, len(e.order))
	for _, k := range e.order {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.byKey[k][0]))
	}
	return fmt.Sprintf("validation error: %s", strings.Join(parts, ", "))
}

// MarshalJSON renders the collection as an object mapping attribute names to
// ordered message lists. Model-level messages appear under "*".
func (e *Errors) MarshalJSON() ([]byte, error) {
	out := make(map[string][]string, len(e.order))
	for _, k := range e.order {
		out[k.String()] = e.byKey[k]
	}
	return json.Marshal(out)
}
