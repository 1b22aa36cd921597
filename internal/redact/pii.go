// Package redact replaces structural PII patterns with a redaction token.
// Matching is heuristic, best-effort: false positives and negatives are
// accepted, this is not a guarantee of complete PII removal.
package redact

import "regexp"

// Token replaces every matched span.
const Token = "[REDACTED]"

// Ordered pattern list: emails, phone numbers, card-shaped digit runs.
// Each pattern runs over the already-redacted text, so an inserted token is
// never re-matched by a later pattern.
var patterns = []*regexp.Regexp{
	// emails
	regexp.MustCompile(`\b[\w.-]+@[\w.-]+\.\w+\b`),
	// phone numbers
	regexp.MustCompile(`\b\d{3}[-.\s]?\d{3}[-.\s]?\d{4}\b`),
	// card-shaped digit runs
	regexp.MustCompile(`\b(?:\d[ -]*?){13,16}\b`),
}

// Redact replaces every match of the PII patterns with Token, applying the
// patterns in order, left-to-right.
func Redact(text string) string {
	for _, pat := range patterns {
		text = pat.ReplaceAllString(text, Token)
	}
	return text
}
