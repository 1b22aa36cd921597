// Package repeat removes repeated n-gram runs within a single document.
package repeat

import (
	"strings"

	"github.com/jiancao/corpusclean/internal/token"
)

// DefaultWindow is the standard n-gram size.
const DefaultWindow = 4

// Collapse tokenizes text, slides a window of n tokens, and drops the first
// token of any n-gram already seen earlier in the same document. The final
// n−1 tokens are always appended verbatim. Surviving tokens are re-joined
// with single spaces, so original spacing and punctuation adjacency are lost
// by design. Empty input yields empty output.
func Collapse(text string, n int) string {
	if n <= 0 {
		n = DefaultWindow
	}

	tokens := token.Words(text)
	if len(tokens) == 0 {
		return ""
	}
	if len(tokens) < n {
		return strings.Join(tokens, " ")
	}

	seen := make(map[string]struct{})
	var result []string

	for i := 0; i+n <= len(tokens); i++ {
		gram := strings.Join(tokens[i:i+n], "\x1f")
		if _, ok := seen[gram]; ok {
			continue
		}
		seen[gram] = struct{}{}
		result = append(result, tokens[i])
	}

	// Boundary policy: the tail never slides a full window
	result = append(result, tokens[len(tokens)-(n-1):]...)

	return strings.Join(result, " ")
}
