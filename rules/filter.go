package rules

import (
	"errors"
	"strings"

	"github.com/dmitrymomot/validkit"
)

// Filter is a data-filtering validator: it never fails, it rewrites the
// attribute value through Func. The mutation is deliberate and exempt from
// pass idempotence. Filters run on empty input too, so defaults can be
// injected.
type Filter struct {
	// Func transforms the current value. A nil Func is a configuration
	// fault.
	Func func(any) any
}

func (v Filter) CheckValue(ctx *validkit.Context) ([]string, error) {
	if v.Func == nil {
		return nil, errors.New("filter validator has no function")
	}
	ctx.SetValue(v.Func(ctx.Value()))
	return nil, nil
}

// DefaultSkipOnEmpty implements validkit.SkipEmptyDefault.
func (v Filter) DefaultSkipOnEmpty() bool { return false }

// Trim returns a filter that trims surrounding whitespace from string
// values and leaves everything else untouched.
func Trim() Filter {
	return Filter{Func: func(v any) any {
		if s, ok := v.(string); ok {
			return strings.TrimSpace(s)
		}
		return v
	}}
}
