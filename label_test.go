package validkit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/validkit"
)

func TestAttributeLabel(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"email", "Email"},
		{"emailAddress", "Email Address"},
		{"email_address", "Email Address"},
		{"email-address", "Email Address"},
		{"firstName", "First Name"},
		{"APIKey", "API Key"},
		{"userID", "User ID"},
		{"a", "A"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, validkit.AttributeLabel(tt.name))
		})
	}
}
