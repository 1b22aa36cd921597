package model

// Document is a single unit of text flowing through the pipeline.
// Stages never mutate a Document in place; each stage produces new values
// and drops the ones it filters out.
type Document struct {
	Text   string `json:"text"`
	Source string `json:"source,omitempty"` // originating file, diagnostics only
}

// LanguageUnknown is returned when classification fails or the text is too
// short/ambiguous to classify. It is never part of an allow-set by default.
const LanguageUnknown = "und"
