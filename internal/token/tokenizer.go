// Package token provides the word tokenizer shared by the deduplication,
// repetition-collapse, and statistics stages.
package token

import (
	"strings"
	"unicode"
)

// Words splits text into word tokens, preserving case.
// A word is a maximal run of letters, digits, and interior hyphens; everything
// else is a separator. Locale-agnostic: rune classes only, no language rules.
func Words(text string) []string {
	var tokens []string
	var current strings.Builder

	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsNumber(r) || r == '-' {
			current.WriteRune(r)
		} else if current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}
	}
	if current.Len() > 0 {
		tokens = append(tokens, current.String())
	}

	return tokens
}

// Fold returns the case-folded token sequence of text.
func Fold(text string) []string {
	return Words(strings.ToLower(text))
}

// Set returns the distinct case-folded tokens of text.
func Set(text string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, t := range Fold(text) {
		set[t] = struct{}{}
	}
	return set
}

// Count returns the number of word tokens in text.
func Count(text string) int {
	return len(Words(text))
}
