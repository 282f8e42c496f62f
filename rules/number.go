package rules

import (
	"github.com/dmitrymomot/validkit"
)

// Number validates that a value is numeric — any numeric kind or a numeric
// string — and optionally within bounds.
type Number struct {
	// IntegerOnly rejects values with a fractional part.
	IntegerOnly bool

	// Min and Max are inclusive bounds; nil means unbounded.
	Min *float64
	Max *float64

	// Message overrides the "not a number" message.
	Message string

	// TooSmall and TooBig override the bound-specific messages.
	TooSmall string
	TooBig   string
}

func (v Number) CheckValue(ctx *validkit.Context) ([]string, error) {
	val := ctx.Value()

	var n float64
	if v.IntegerOnly {
		i, ok := intValue(val)
		if !ok {
			return []string{v.invalidMessage()}, nil
		}
		n = float64(i)
	} else {
		f, ok := floatValue(val)
		if !ok {
			return []string{v.invalidMessage()}, nil
		}
		n = f
	}

	var msgs []string
	if v.Min != nil && n < *v.Min {
		msg := v.TooSmall
		if msg == "" {
			msg = "{attribute} is too small (minimum is {min})."
		}
		msgs = append(msgs, validkit.FormatMessage(msg, map[string]any{"min": *v.Min}))
	}
	if v.Max != nil && n > *v.Max {
		msg := v.TooBig
		if msg == "" {
			msg = "{attribute} is too big (maximum is {max})."
		}
		msgs = append(msgs, validkit.FormatMessage(msg, map[string]any{"max": *v.Max}))
	}
	return msgs, nil
}

func (v Number) invalidMessage() string {
	if v.Message != "" {
		return v.Message
	}
	if v.IntegerOnly {
		return "{attribute} must be an integer."
	}
	return "{attribute} must be a number."
}

// ClientFragment implements validkit.ClientCoder.
func (v Number) ClientFragment(ctx *validkit.Context) *validkit.Fragment {
	params := map[string]any{"integerOnly": v.IntegerOnly}
	if v.Min != nil {
		params["min"] = *v.Min
	}
	if v.Max != nil {
		params["max"] = *v.Max
	}
	return &validkit.Fragment{
		Op:      "number",
		Params:  params,
		Message: ctx.Expand(v.invalidMessage()),
	}
}
