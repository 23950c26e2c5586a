package inquiry

import (
	"html"
	"strings"
)

// SanitizeText trims whitespace, strips angle brackets, and
// entity-escapes the five HTML-significant characters (& < > " ').
//
// The angle brackets are removed *before* escaping, so the output
// never contains a literal "<" or ">" nor their escaped forms from
// the original input. The function is total: any input yields a
// (possibly empty) string, never an error.
func SanitizeText(input string) string {
	s := strings.TrimSpace(input)
	s = strings.ReplaceAll(s, "<", "")
	s = strings.ReplaceAll(s, ">", "")

	// html.EscapeString escapes exactly &, <, >, " and '.
	return html.EscapeString(s)
}

// SanitizePhone keeps only characters that can appear in a phone
// number: digits, "+", "-", "(", ")" and spaces. Everything else is
// dropped.
func SanitizePhone(input string) string {
	var b strings.Builder
	b.Grow(len(input))

	for _, r := range input {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '+' || r == '-' || r == '(' || r == ')' || r == ' ':
			b.WriteRune(r)
		}
	}

	return b.String()
}

// SanitizeEmail trims surrounding whitespace and lower-cases the
// address. Idempotent: applying it twice yields the same result.
func SanitizeEmail(input string) string {
	return strings.ToLower(strings.TrimSpace(input))
}
