package validkit

import (
	"fmt"
	"strings"
)

// FormatMessage expands {name} placeholders in a message template. Unknown
// placeholders are left intact so templates can be expanded in stages:
// checkers fill their own parameters ({min}, {value}, …) and the engine fills
// {attribute} when recording the error.
func FormatMessage(template string, params map[string]any) string {
	if len(params) == 0 || !strings.Contains(template, "{") {
		return template
	}
	pairs := make([]string, 0, len(params)*2)
	for name, value := range params {
		pairs = append(pairs, "{"+name+"}", fmt.Sprint(value))
	}
	return strings.NewReplacer(pairs...).Replace(template)
}
