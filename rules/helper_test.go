package rules_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/validkit"
)

// check runs a single checker against one value named "field" and returns the
// recorded failures. Skip-on-empty is disabled so empty inputs reach the
// checker too.
func check(t *testing.T, c validkit.Checker, value any) *validkit.Errors {
	t.Helper()
	errs, err := run(c, value)
	require.NoError(t, err)
	return errs
}

// checkFault runs a checker expecting a configuration or runtime fault.
func checkFault(t *testing.T, c validkit.Checker, value any) error {
	t.Helper()
	_, err := run(c, value)
	require.Error(t, err)
	return err
}

func run(c validkit.Checker, value any) (*validkit.Errors, error) {
	m := validkit.NewDynamic("field").
		WithRule(validkit.Rule{
			Attributes:  []string{"field"},
			Checker:     c,
			SkipOnEmpty: validkit.Bool(false),
		})
	m.Set("field", value)
	return validkit.New().Validate(context.Background(), m, validkit.ScenarioDefault)
}

func fieldMessages(errs *validkit.Errors) []string {
	return errs.Messages(validkit.Attr("field"))
}
