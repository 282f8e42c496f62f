package rules

import (
	"errors"
	"fmt"

	"github.com/dmitrymomot/validkit"
)

// Compare validates an attribute against another attribute or a constant.
type Compare struct {
	// With names the attribute to compare against. Mutually exclusive with
	// Value; setting neither is a configuration fault.
	With string

	// Value is the constant to compare against.
	Value any

	// Operator is one of "==", "!=", ">", ">=", "<", "<=". Defaults to "==".
	// Ordering operators require both sides to be numeric.
	Operator string

	// Strict uses type-aware equality for "==" and "!=".
	Strict bool

	// Message overrides the default failure message.
	Message string
}

func (v Compare) CheckValue(ctx *validkit.Context) ([]string, error) {
	if (v.With == "") == (v.Value == nil) {
		return nil, errors.New("compare validator needs exactly one of With and Value")
	}

	target := v.Value
	targetName := fmt.Sprint(v.Value)
	if v.With != "" {
		target = ctx.ValueOf(v.With)
		targetName = ctx.LabelOf(v.With)
	}

	op := v.Operator
	if op == "" {
		op = "=="
	}

	ok, err := v.holds(ctx.Value(), target, op)
	if err != nil {
		return nil, err
	}
	if ok {
		return nil, nil
	}
	return []string{validkit.FormatMessage(v.message(op), map[string]any{"target": targetName})}, nil
}

func (v Compare) holds(a, b any, op string) (bool, error) {
	switch op {
	case "==":
		return equalValues(a, b, v.Strict), nil
	case "!=":
		return !equalValues(a, b, v.Strict), nil
	}

	af, aok := floatValue(a)
	bf, bok := floatValue(b)
	if !aok || !bok {
		// Non-numeric input under an ordering operator is a data problem,
		// not a fault: the comparison simply does not hold.
		return false, nil
	}
	switch op {
	case ">":
		return af > bf, nil
	case ">=":
		return af >= bf, nil
	case "<":
		return af < bf, nil
	case "<=":
		return af <= bf, nil
	default:
		return false, fmt.Errorf("compare validator: unknown operator %q", op)
	}
}

func (v Compare) message(op string) string {
	if v.Message != "" {
		return v.Message
	}
	switch op {
	case "!=":
		return "{attribute} must not be equal to \"{target}\"."
	case ">":
		return "{attribute} must be greater than \"{target}\"."
	case ">=":
		return "{attribute} must be greater than or equal to \"{target}\"."
	case "<":
		return "{attribute} must be less than \"{target}\"."
	case "<=":
		return "{attribute} must be less than or equal to \"{target}\"."
	default:
		return "{attribute} must be equal to \"{target}\"."
	}
}

// ClientFragment implements validkit.ClientCoder.
func (v Compare) ClientFragment(ctx *validkit.Context) *validkit.Fragment {
	op := v.Operator
	if op == "" {
		op = "=="
	}
	params := map[string]any{"operator": op, "strict": v.Strict}
	targetName := fmt.Sprint(v.Value)
	if v.With != "" {
		params["with"] = v.With
		targetName = ctx.LabelOf(v.With)
	} else {
		params["value"] = v.Value
	}
	return &validkit.Fragment{
		Op:      "compare",
		Params:  params,
		Message: ctx.Expand(validkit.FormatMessage(v.message(op), map[string]any{"target": targetName})),
	}
}
