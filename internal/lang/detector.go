// Package lang classifies document language and applies the allow-set filter.
package lang

import (
	"strings"
	"time"

	"github.com/abadojack/whatlanggo"

	"github.com/jiancao/corpusclean/internal/cache"
	"github.com/jiancao/corpusclean/internal/model"
)

// cacheTTL bounds how long a classification is memoized within a run.
const cacheTTL = 30 * time.Minute

// Detector classifies the dominant language of a document.
// Classification is trigram-based and fully deterministic for a given input,
// so repeated runs over the same corpus are reproducible.
type Detector struct {
	allow map[string]struct{}
	cache cache.Cache // optional memoization, nil disables
}

// NewDetector creates a detector keeping only the given ISO 639-1 codes.
// A nil cache disables classification memoization.
func NewDetector(languages []string, c cache.Cache) *Detector {
	allow := make(map[string]struct{}, len(languages))
	for _, l := range languages {
		allow[strings.ToLower(strings.TrimSpace(l))] = struct{}{}
	}
	return &Detector{allow: allow, cache: c}
}

// Classify returns the ISO 639-1 code of the document's dominant language,
// or model.LanguageUnknown when the text is empty, too short, or ambiguous.
func (d *Detector) Classify(text string) string {
	if strings.TrimSpace(text) == "" {
		return model.LanguageUnknown
	}

	if d.cache != nil {
		if code, found := d.cache.Get(cache.Key(text)); found {
			return code
		}
	}

	code := classify(text)

	if d.cache != nil {
		_ = d.cache.Set(cache.Key(text), code, cacheTTL)
	}

	return code
}

// Allowed reports whether a language code passes the allow-set.
// model.LanguageUnknown is never allowed by the default set.
func (d *Detector) Allowed(code string) bool {
	_, ok := d.allow[code]
	return ok
}

func classify(text string) string {
	info := whatlanggo.Detect(text)
	if !info.IsReliable() {
		return model.LanguageUnknown
	}

	code := info.Lang.Iso6391()
	if code == "" {
		return model.LanguageUnknown
	}
	return code
}
