package model

// RunStats aggregates counts captured at each stage boundary.
// Values are recorded as the pipeline runs, never recomputed from already
// transformed data.
type RunStats struct {
	// Document counts at each filtering boundary
	RawDocuments     int `json:"raw_documents"`
	LanguageFiltered int `json:"language_filtered"`
	Deduplicated     int `json:"deduplicated"`

	// Loader diagnostics
	SkippedRecords int `json:"skipped_records"`
	MissingPaths   int `json:"missing_paths"`

	// Token counts before (post-strip, pre-dedup) and after cleaning
	OriginalTokens int `json:"original_tokens"`
	FinalTokens    int `json:"final_tokens"`
}

// ReductionPct returns the token reduction as a percentage in [0, 100].
// A zero original count yields 0, never NaN.
func (s *RunStats) ReductionPct() float64 {
	if s.OriginalTokens <= 0 {
		return 0
	}
	pct := 100 * (1 - float64(s.FinalTokens)/float64(s.OriginalTokens))
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}
