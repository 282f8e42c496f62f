package rules

import (
	"github.com/dmitrymomot/validkit"
)

// Required fails when the attribute is empty. Unlike most validators it does
// not skip empty input — firing on emptiness is its entire point.
type Required struct {
	// Message overrides the default failure message.
	Message string

	// RequiredValue, when set, demands that the attribute equal this exact
	// value instead of merely being non-empty.
	RequiredValue any

	// Strict compares RequiredValue with type-aware equality instead of the
	// loose printed-representation comparison.
	Strict bool
}

func (v Required) CheckValue(ctx *validkit.Context) ([]string, error) {
	val := ctx.Value()
	if v.RequiredValue != nil {
		if equalValues(val, v.RequiredValue, v.Strict) {
			return nil, nil
		}
		msg := v.Message
		if msg == "" {
			msg = "{attribute} must be {requiredValue}."
		}
		return []string{validkit.FormatMessage(msg, map[string]any{"requiredValue": v.RequiredValue})}, nil
	}
	if !validkit.IsEmpty(val) {
		return nil, nil
	}
	return []string{v.message()}, nil
}

func (v Required) message() string {
	if v.Message != "" {
		return v.Message
	}
	return "{attribute} cannot be blank."
}

// DefaultSkipOnEmpty implements validkit.SkipEmptyDefault.
func (v Required) DefaultSkipOnEmpty() bool { return false }

// MarksRequired implements validkit.RequiredMarker.
func (v Required) MarksRequired() bool { return true }

// ClientFragment implements validkit.ClientCoder.
func (v Required) ClientFragment(ctx *validkit.Context) *validkit.Fragment {
	var params map[string]any
	msg := v.message()
	if v.RequiredValue != nil {
		params = map[string]any{"requiredValue": v.RequiredValue, "strict": v.Strict}
		if v.Message == "" {
			msg = "{attribute} must be {requiredValue}."
		}
		msg = validkit.FormatMessage(msg, map[string]any{"requiredValue": v.RequiredValue})
	}
	return &validkit.Fragment{
		Op:      "required",
		Params:  params,
		Message: ctx.Expand(msg),
	}
}
