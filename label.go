package validkit

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// AttributeLabel generates a human-readable label from an attribute name:
// "emailAddress", "email_address" and "email-address" all become
// "Email Address". Models override individual labels via the Labeler
// interface.
func AttributeLabel(name string) string {
	words := splitWords(name)
	if len(words) == 0 {
		return name
	}
	caser := cases.Title(language.English)
	for i, w := range words {
		words[i] = caser.String(w)
	}
	return strings.Join(words, " ")
}

// splitWords breaks an identifier on underscores, hyphens and lower-to-upper
// case boundaries. Consecutive capitals stay together ("APIKey" → "API Key").
func splitWords(name string) []string {
	var words []string
	var cur []rune
	runes := []rune(name)

	flush := func() {
		if len(cur) > 0 {
			words = append(words, strings.ToLower(string(cur)))
			cur = nil
		}
	}

	for i, r := range runes {
		switch {
		case r == '_' || r == '-' || r == ' ' || r == '.':
			flush()
		case unicode.IsUpper(r):
			prevLower := i > 0 && unicode.IsLower(runes[i-1])
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if prevLower || (len(cur) > 0 && nextLower) {
				flush()
			}
			cur = append(cur, r)
		default:
			cur = append(cur, r)
		}
	}
	flush()
	return words
}
