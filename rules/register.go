package rules

import (
	"fmt"
	"regexp"

	"github.com/dmitrymomot/validkit"
)

func init() {
	Register(validkit.DefaultRegistry())
}

// Register adds the builtin validator aliases to a registry. The default
// registry is populated automatically on import; call this only for engines
// built around a private registry.
func Register(reg *validkit.Registry) {
	reg.Register("required", func(p map[string]any) (validkit.Checker, error) {
		strict, _ := paramBool(p, "strict")
		return Required{
			Message:       paramMessage(p),
			RequiredValue: p["requiredValue"],
			Strict:        strict,
		}, nil
	})

	reg.Register("email", func(p map[string]any) (validkit.Checker, error) {
		return Email{Message: paramMessage(p)}, nil
	})

	reg.Register("url", func(p map[string]any) (validkit.Checker, error) {
		scheme, _ := paramString(p, "defaultScheme")
		return URL{
			Message:       paramMessage(p),
			Schemes:       paramStrings(p, "schemes"),
			DefaultScheme: scheme,
		}, nil
	})

	reg.Register("match", func(p map[string]any) (validkit.Checker, error) {
		pattern, ok := paramString(p, "pattern")
		if !ok {
			return nil, fmt.Errorf("match: missing %q parameter", "pattern")
		}
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("match: %w", err)
		}
		not, _ := paramBool(p, "not")
		return Match{Pattern: re, Not: not, Message: paramMessage(p)}, nil
	})

	reg.Register("length", func(p map[string]any) (validkit.Checker, error) {
		min, err := paramInt(p, "min")
		if err != nil {
			return nil, err
		}
		max, err := paramInt(p, "max")
		if err != nil {
			return nil, err
		}
		tooShort, _ := paramString(p, "tooShort")
		tooLong, _ := paramString(p, "tooLong")
		return StringLength{
			Min: min, Max: max,
			Message:  paramMessage(p),
			TooShort: tooShort,
			TooLong:  tooLong,
		}, nil
	})

	reg.Register("number", numberFactory(false))
	reg.Register("integer", numberFactory(true))

	reg.Register("compare", func(p map[string]any) (validkit.Checker, error) {
		with, _ := paramString(p, "with")
		operator, _ := paramString(p, "operator")
		strict, _ := paramBool(p, "strict")
		return Compare{
			With:     with,
			Value:    p["value"],
			Operator: operator,
			Strict:   strict,
			Message:  paramMessage(p),
		}, nil
	})

	reg.Register("in", func(p map[string]any) (validkit.Checker, error) {
		not, _ := paramBool(p, "not")
		strict, _ := paramBool(p, "strict")
		return In{
			Values:  paramValues(p, "values"),
			Not:     not,
			Strict:  strict,
			Message: paramMessage(p),
		}, nil
	})

	reg.Register("boolean", func(p map[string]any) (validkit.Checker, error) {
		strict, _ := paramBool(p, "strict")
		return Boolean{
			TrueValue:  p["trueValue"],
			FalseValue: p["falseValue"],
			Strict:     strict,
			Message:    paramMessage(p),
		}, nil
	})

	reg.Register("trim", func(p map[string]any) (validkit.Checker, error) {
		return Trim(), nil
	})
}

func numberFactory(integerOnly bool) validkit.Factory {
	return func(p map[string]any) (validkit.Checker, error) {
		min, err := paramFloat(p, "min")
		if err != nil {
			return nil, err
		}
		max, err := paramFloat(p, "max")
		if err != nil {
			return nil, err
		}
		tooSmall, _ := paramString(p, "tooSmall")
		tooBig, _ := paramString(p, "tooBig")
		return Number{
			IntegerOnly: integerOnly,
			Min:         min,
			Max:         max,
			Message:     paramMessage(p),
			TooSmall:    tooSmall,
			TooBig:      tooBig,
		}, nil
	}
}
