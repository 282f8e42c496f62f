package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/validkit/rules"
)

func TestIn(t *testing.T) {
	statuses := []any{"draft", "published", "archived"}

	tests := []struct {
		name    string
		checker rules.In
		value   any
		want    []string
	}{
		{
			name:    "listed value passes",
			checker: rules.In{Values: statuses},
			value:   "draft",
		},
		{
			name:    "unlisted value fails",
			checker: rules.In{Values: statuses},
			value:   "deleted",
			want:    []string{"Field is not in the list."},
		},
		{
			name:    "loose equality across types",
			checker: rules.In{Values: []any{1, 2, 3}},
			value:   "2",
		},
		{
			name:    "strict equality rejects cross-type",
			checker: rules.In{Values: []any{1, 2, 3}, Strict: true},
			value:   "2",
			want:    []string{"Field is not in the list."},
		},
		{
			name:    "not inverts",
			checker: rules.In{Values: statuses, Not: true},
			value:   "draft",
			want:    []string{"Field is in the list."},
		},
		{
			name:    "not passes on unlisted",
			checker: rules.In{Values: statuses, Not: true},
			value:   "deleted",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := check(t, tt.checker, tt.value)
			assert.Equal(t, tt.want, fieldMessages(errs))
		})
	}
}

func TestInEmptyListIsFault(t *testing.T) {
	checkFault(t, rules.In{}, "anything")
}
