package rules

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrymomot/validkit"
)

// ExistsFunc reports whether a value is already taken for an attribute. The
// store behind it — a database, a cache, an HTTP service — is external to the
// engine; an error from it is a fault, not a validation failure.
type ExistsFunc func(ctx context.Context, attribute string, value any) (bool, error)

// Unique fails when the attribute's value already exists according to the
// injected lookup. Server-only: it emits no client fragment and degrades to
// remote validation.
type Unique struct {
	// Exists performs the lookup. A nil Exists is a configuration fault.
	Exists ExistsFunc

	// Message overrides the default failure message.
	Message string
}

func (v Unique) CheckValue(ctx *validkit.Context) ([]string, error) {
	if v.Exists == nil {
		return nil, errors.New("unique validator has no lookup")
	}
	taken, err := v.Exists(ctx.Context(), ctx.Attribute(), ctx.Value())
	if err != nil {
		return nil, fmt.Errorf("unique lookup for %q: %w", ctx.Attribute(), err)
	}
	if !taken {
		return nil, nil
	}
	msg := v.Message
	if msg == "" {
		msg = "{attribute} \"{value}\" has already been taken."
	}
	return []string{validkit.FormatMessage(msg, map[string]any{"value": ctx.Value()})}, nil
}
