package rules

import (
	"errors"
	"regexp"

	"github.com/dmitrymomot/validkit"
)

// Match validates a string against a regular expression.
type Match struct {
	// Pattern is the compiled expression. A nil pattern is a configuration
	// fault, not a validation failure.
	Pattern *regexp.Regexp

	// Not inverts the check: values matching the pattern fail.
	Not bool

	// Message overrides the default failure message.
	Message string
}

func (v Match) CheckValue(ctx *validkit.Context) ([]string, error) {
	if v.Pattern == nil {
		return nil, errors.New("match validator has no pattern")
	}
	s, ok := stringValue(ctx.Value())
	if !ok {
		return []string{v.message()}, nil
	}
	if v.Pattern.MatchString(s) == v.Not {
		return []string{v.message()}, nil
	}
	return nil, nil
}

func (v Match) message() string {
	if v.Message != "" {
		return v.Message
	}
	return "{attribute} is invalid."
}

// ClientFragment implements validkit.ClientCoder. A nil pattern yields no
// fragment; the fault will surface when the server-side check runs.
func (v Match) ClientFragment(ctx *validkit.Context) *validkit.Fragment {
	if v.Pattern == nil {
		return nil
	}
	return &validkit.Fragment{
		Op:      "match",
		Params:  map[string]any{"pattern": v.Pattern.String(), "not": v.Not},
		Message: ctx.Expand(v.message()),
	}
}
