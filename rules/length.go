package rules

import (
	"unicode/utf8"

	"github.com/dmitrymomot/validkit"
)

// StringLength validates the rune length of a string value.
type StringLength struct {
	// Min is the minimum length; 0 means unbounded.
	Min int

	// Max is the maximum length; 0 means unbounded.
	Max int

	// Message is used when the value is not a string.
	Message string

	// TooShort and TooLong override the bound-specific messages.
	TooShort string
	TooLong  string
}

func (v StringLength) CheckValue(ctx *validkit.Context) ([]string, error) {
	s, ok := stringValue(ctx.Value())
	if !ok {
		msg := v.Message
		if msg == "" {
			msg = "{attribute} must be a string."
		}
		return []string{msg}, nil
	}

	n := utf8.RuneCountInString(s)
	var msgs []string
	if v.Min > 0 && n < v.Min {
		msg := v.TooShort
		if msg == "" {
			msg = "{attribute} is too short (minimum is {min} characters)."
		}
		msgs = append(msgs, validkit.FormatMessage(msg, map[string]any{"min": v.Min}))
	}
	if v.Max > 0 && n > v.Max {
		msg := v.TooLong
		if msg == "" {
			msg = "{attribute} is too long (maximum is {max} characters)."
		}
		msgs = append(msgs, validkit.FormatMessage(msg, map[string]any{"max": v.Max}))
	}
	return msgs, nil
}

// ClientFragment implements validkit.ClientCoder.
func (v StringLength) ClientFragment(ctx *validkit.Context) *validkit.Fragment {
	params := map[string]any{}
	if v.Min > 0 {
		params["min"] = v.Min
	}
	if v.Max > 0 {
		params["max"] = v.Max
	}
	msg := v.TooShort
	if msg == "" {
		msg = "{attribute} is too short (minimum is {min} characters)."
	}
	if v.Min == 0 {
		msg = v.TooLong
		if msg == "" {
			msg = "{attribute} is too long (maximum is {max} characters)."
		}
	}
	return &validkit.Fragment{
		Op:     "length",
		Params: params,
		Message: ctx.Expand(validkit.FormatMessage(msg, map[string]any{
			"min": v.Min, "max": v.Max,
		})),
	}
}
