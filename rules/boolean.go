package rules

import (
	"github.com/dmitrymomot/validkit"
)

// Boolean validates that a value is one of two configured representations of
// true and false. Defaults follow form conventions: "1" and "0".
type Boolean struct {
	// TrueValue and FalseValue are the accepted representations.
	TrueValue  any
	FalseValue any

	// Strict uses type-aware equality.
	Strict bool

	// Message overrides the default failure message.
	Message string
}

func (v Boolean) values() (any, any) {
	t, f := v.TrueValue, v.FalseValue
	if t == nil {
		t = "1"
	}
	if f == nil {
		f = "0"
	}
	return t, f
}

func (v Boolean) CheckValue(ctx *validkit.Context) ([]string, error) {
	t, f := v.values()
	val := ctx.Value()
	if equalValues(val, t, v.Strict) || equalValues(val, f, v.Strict) {
		return nil, nil
	}
	msg := validkit.FormatMessage(v.message(), map[string]any{"true": t, "false": f})
	return []string{msg}, nil
}

func (v Boolean) message() string {
	if v.Message != "" {
		return v.Message
	}
	return "{attribute} must be either \"{true}\" or \"{false}\"."
}

// ClientFragment implements validkit.ClientCoder.
func (v Boolean) ClientFragment(ctx *validkit.Context) *validkit.Fragment {
	t, f := v.values()
	return &validkit.Fragment{
		Op:     "boolean",
		Params: map[string]any{"trueValue": t, "falseValue": f, "strict": v.Strict},
		Message: ctx.Expand(validkit.FormatMessage(v.message(), map[string]any{
			"true": t, "false": f,
		})),
	}
}
