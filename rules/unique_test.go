package rules_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/validkit"
	"github.com/dmitrymomot/validkit/rules"
)

func TestUnique(t *testing.T) {
	taken := map[string]bool{"admin": true}
	lookup := func(ctx context.Context, attribute string, value any) (bool, error) {
		s, _ := value.(string)
		return taken[s], nil
	}

	t.Run("free value passes", func(t *testing.T) {
		errs := check(t, rules.Unique{Exists: lookup}, "bob")
		assert.True(t, errs.IsEmpty())
	})

	t.Run("taken value fails", func(t *testing.T) {
		errs := check(t, rules.Unique{Exists: lookup}, "admin")
		assert.Equal(t, []string{"Field \"admin\" has already been taken."}, fieldMessages(errs))
	})

	t.Run("store error is a fault", func(t *testing.T) {
		failing := func(ctx context.Context, attribute string, value any) (bool, error) {
			return false, errors.New("connection refused")
		}
		err := checkFault(t, rules.Unique{Exists: failing}, "bob")
		require.ErrorIs(t, err, validkit.ErrCheckFault)
	})

	t.Run("nil lookup is a fault", func(t *testing.T) {
		checkFault(t, rules.Unique{}, "bob")
	})
}
