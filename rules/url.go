package rules

import (
	"net/url"
	"strings"

	"github.com/dmitrymomot/validkit"
)

// URL validates that a string is an absolute URL with an allowed scheme and
// a host.
type URL struct {
	// Message overrides the default failure message.
	Message string

	// Schemes lists the accepted schemes. Defaults to http and https.
	Schemes []string

	// DefaultScheme, when set, is prepended to scheme-less input before
	// validation, and the attribute is rewritten with the completed URL on
	// success.
	DefaultScheme string
}

func (v URL) CheckValue(ctx *validkit.Context) ([]string, error) {
	s, ok := stringValue(ctx.Value())
	if !ok {
		return []string{v.message()}, nil
	}

	prefixed := false
	if v.DefaultScheme != "" && !strings.Contains(s, "://") {
		s = v.DefaultScheme + "://" + s
		prefixed = true
	}

	u, err := url.Parse(s)
	if err != nil || u.Host == "" || !v.schemeAllowed(u.Scheme) {
		return []string{v.message()}, nil
	}
	if prefixed {
		ctx.SetValue(s)
	}
	return nil, nil
}

func (v URL) schemeAllowed(scheme string) bool {
	schemes := v.Schemes
	if len(schemes) == 0 {
		schemes = []string{"http", "https"}
	}
	for _, s := range schemes {
		if strings.EqualFold(s, scheme) {
			return true
		}
	}
	return false
}

func (v URL) message() string {
	if v.Message != "" {
		return v.Message
	}
	return "{attribute} is not a valid URL."
}

// ClientFragment implements validkit.ClientCoder.
func (v URL) ClientFragment(ctx *validkit.Context) *validkit.Fragment {
	schemes := v.Schemes
	if len(schemes) == 0 {
		schemes = []string{"http", "https"}
	}
	params := map[string]any{"schemes": schemes}
	if v.DefaultScheme != "" {
		params["defaultScheme"] = v.DefaultScheme
	}
	return &validkit.Fragment{
		Op:      "url",
		Params:  params,
		Message: ctx.Expand(v.message()),
	}
}
