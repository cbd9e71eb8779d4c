package textutil

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
)

// NormalizeWord case-folds s and strips non-alphanumeric runes.
func NormalizeWord(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	folded := Fold(s)
	var b strings.Builder
	b.Grow(len(folded))
	for _, r := range folded {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Fold returns the Unicode case folding of s.
func Fold(s string) string {
	return cases.Fold().String(s)
}

// RuneLen counts the runes of s.
func RuneLen(s string) int {
	return utf8.RuneCountInString(s)
}

// Fields splits s around runs of Unicode whitespace.
func Fields(s string) []string {
	return strings.FieldsFunc(s, unicode.IsSpace)
}
