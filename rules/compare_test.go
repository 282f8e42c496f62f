package rules_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/validkit"
	"github.com/dmitrymomot/validkit/rules"
)

func TestCompareAgainstValue(t *testing.T) {
	tests := []struct {
		name    string
		checker rules.Compare
		value   any
		want    []string
	}{
		{
			name:    "default operator is equality",
			checker: rules.Compare{Value: "yes"},
			value:   "yes",
		},
		{
			name:    "loose equality across types",
			checker: rules.Compare{Value: 18},
			value:   "18",
		},
		{
			name:    "strict equality rejects cross-type",
			checker: rules.Compare{Value: 18, Strict: true},
			value:   "18",
			want:    []string{"Field must be equal to \"18\"."},
		},
		{
			name:    "not equal",
			checker: rules.Compare{Value: "admin", Operator: "!="},
			value:   "admin",
			want:    []string{"Field must not be equal to \"admin\"."},
		},
		{
			name:    "greater than",
			checker: rules.Compare{Value: 18, Operator: ">"},
			value:   21,
		},
		{
			name:    "greater than fails on equal",
			checker: rules.Compare{Value: 18, Operator: ">"},
			value:   18,
			want:    []string{"Field must be greater than \"18\"."},
		},
		{
			name:    "less or equal",
			checker: rules.Compare{Value: 100, Operator: "<="},
			value:   100,
		},
		{
			name:    "ordering on non-numeric input fails without a fault",
			checker: rules.Compare{Value: 18, Operator: ">"},
			value:   "abc",
			want:    []string{"Field must be greater than \"18\"."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := check(t, tt.checker, tt.value)
			assert.Equal(t, tt.want, fieldMessages(errs))
		})
	}
}

func TestCompareAgainstAttribute(t *testing.T) {
	newModel := func(password, repeat any) *validkit.DynamicModel {
		m := validkit.NewDynamic("password", "passwordRepeat").
			WithRule(validkit.Rule{
				Attributes: []string{"passwordRepeat"},
				Checker:    rules.Compare{With: "password"},
			})
		m.Set("password", password)
		m.Set("passwordRepeat", repeat)
		return m
	}

	t.Run("matching attributes pass", func(t *testing.T) {
		errs, err := validkit.New().Validate(context.Background(), newModel("s3cret", "s3cret"), validkit.ScenarioDefault)
		require.NoError(t, err)
		assert.True(t, errs.IsEmpty())
	})

	t.Run("mismatch names the other attribute by label", func(t *testing.T) {
		errs, err := validkit.New().Validate(context.Background(), newModel("s3cret", "other"), validkit.ScenarioDefault)
		require.NoError(t, err)
		assert.Equal(t,
			[]string{"Password Repeat must be equal to \"Password\"."},
			errs.Messages(validkit.Attr("passwordRepeat")))
	})
}

func TestCompareConfigurationFaults(t *testing.T) {
	t.Run("neither with nor value", func(t *testing.T) {
		checkFault(t, rules.Compare{}, "x")
	})

	t.Run("unknown operator", func(t *testing.T) {
		checkFault(t, rules.Compare{Value: 1, Operator: "~"}, 2)
	})
}
