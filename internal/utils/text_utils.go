package utils

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// TitleCase upper-cases the first letter of every word: "new york city" becomes "New York City".
func TitleCase(s string) string {
	// a Caser keeps state, so each call gets its own
	return cases.Title(language.English).String(s)
}

// NormalizeInput trims and lower-cases user input before it is matched
// against a fixed vocabulary.
func NormalizeInput(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Rule returns a horizontal separator of the given width.
func Rule(width int) string {
	if width <= 0 {
		return ""
	}
	return strings.Repeat("-", width)
}
