package rules_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/validkit"
	"github.com/dmitrymomot/validkit/rules"
)

func TestFilterRewritesValue(t *testing.T) {
	m := validkit.NewDynamic("name").
		WithRule(validkit.Rule{
			Attributes: []string{"name"},
			Checker:    rules.Filter{Func: func(v any) any { return strings.ToUpper(v.(string)) }},
		})
	m.Set("name", "bob")

	errs, err := validkit.New().Validate(context.Background(), m, validkit.ScenarioDefault)
	require.NoError(t, err)
	assert.True(t, errs.IsEmpty())
	assert.Equal(t, "BOB", m.Get("name"))
}

func TestFilterRunsOnEmptyInput(t *testing.T) {
	// Filters default to skip-on-empty false so they can inject defaults.
	m := validkit.NewDynamic("status").
		WithRule(validkit.Rule{
			Attributes: []string{"status"},
			Checker: rules.Filter{Func: func(v any) any {
				if validkit.IsEmpty(v) {
					return "draft"
				}
				return v
			}},
		})
	m.Set("status", "")

	_, err := validkit.New().Validate(context.Background(), m, validkit.ScenarioDefault)
	require.NoError(t, err)
	assert.Equal(t, "draft", m.Get("status"))
}

func TestFilterNilFuncIsFault(t *testing.T) {
	checkFault(t, rules.Filter{}, "x")
}

func TestTrim(t *testing.T) {
	t.Run("trims strings", func(t *testing.T) {
		m := validkit.NewDynamic("name").
			WithRule(validkit.Rule{Attributes: []string{"name"}, Checker: rules.Trim()})
		m.Set("name", "  bob \n")

		_, err := validkit.New().Validate(context.Background(), m, validkit.ScenarioDefault)
		require.NoError(t, err)
		assert.Equal(t, "bob", m.Get("name"))
	})

	t.Run("leaves non-strings alone", func(t *testing.T) {
		m := validkit.NewDynamic("count").
			WithRule(validkit.Rule{Attributes: []string{"count"}, Checker: rules.Trim()})
		m.Set("count", 42)

		_, err := validkit.New().Validate(context.Background(), m, validkit.ScenarioDefault)
		require.NoError(t, err)
		assert.Equal(t, 42, m.Get("count"))
	})
}
