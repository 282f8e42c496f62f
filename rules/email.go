package rules

import (
	"regexp"

	"github.com/dmitrymomot/validkit"
)

// emailPattern accepts the common mailbox@domain shape with a dotted,
// letter-terminated domain. Deliberately stricter than RFC 5322: display
// names, quoting and IP-literal domains are rejected.
var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9!#$%&'*+/=?^_` + "`" + `{|}~.-]+@(?:[a-zA-Z0-9](?:[a-zA-Z0-9-]*[a-zA-Z0-9])?\.)+[a-zA-Z]{2,}$`)

// Email validates that a string looks like an email address.
type Email struct {
	// Message overrides the default failure message.
	Message string
}

func (v Email) CheckValue(ctx *validkit.Context) ([]string, error) {
	s, ok := stringValue(ctx.Value())
	if !ok || !emailPattern.MatchString(s) {
		return []string{v.message()}, nil
	}
	return nil, nil
}

func (v Email) message() string {
	if v.Message != "" {
		return v.Message
	}
	return "{attribute} is not a valid email address."
}

// ClientFragment implements validkit.ClientCoder.
func (v Email) ClientFragment(ctx *validkit.Context) *validkit.Fragment {
	return &validkit.Fragment{
		Op:      "email",
		Params:  map[string]any{"pattern": emailPattern.String()},
		Message: ctx.Expand(v.message()),
	}
}
