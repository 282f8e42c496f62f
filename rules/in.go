package rules

import (
	"errors"

	"github.com/dmitrymomot/validkit"
)

// In validates that a value is one of an allowed list.
type In struct {
	// Values is the allowed list. An empty list is a configuration fault.
	Values []any

	// Not inverts the check: listed values fail.
	Not bool

	// Strict uses type-aware equality.
	Strict bool

	// Message overrides the default failure message.
	Message string
}

func (v In) CheckValue(ctx *validkit.Context) ([]string, error) {
	if len(v.Values) == 0 {
		return nil, errors.New("in validator has an empty value list")
	}
	val := ctx.Value()
	found := false
	for _, allowed := range v.Values {
		if equalValues(val, allowed, v.Strict) {
			found = true
			break
		}
	}
	if found != v.Not {
		return nil, nil
	}
	return []string{v.message()}, nil
}

func (v In) message() string {
	if v.Message != "" {
		return v.Message
	}
	if v.Not {
		return "{attribute} is in the list."
	}
	return "{attribute} is not in the list."
}

// ClientFragment implements validkit.ClientCoder.
func (v In) ClientFragment(ctx *validkit.Context) *validkit.Fragment {
	if len(v.Values) == 0 {
		return nil
	}
	return &validkit.Fragment{
		Op:      "in",
		Params:  map[string]any{"values": v.Values, "not": v.Not},
		Message: ctx.Expand(v.message()),
	}
}
