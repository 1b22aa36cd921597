package pipeline

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/jiancao/corpusclean/internal/model"
)

// Renderer serializes the corpus and statistics
type Renderer struct{}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	return &Renderer{}
}

// RenderCorpus writes each surviving document followed by exactly one blank
// line, in original order. Failure to open the destination is fatal to the
// run.
func (r *Renderer) RenderCorpus(path string, corpus []model.Document) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, doc := range corpus {
		if _, err := w.WriteString(strings.TrimSpace(doc.Text) + "\n\n"); err != nil {
			return err
		}
	}
	return w.Flush()
}

// RenderStatsMarkdown writes the run statistics as a small markdown summary.
func (r *Renderer) RenderStatsMarkdown(path string, stats *model.RunStats) error {
	return os.WriteFile(path, []byte(r.statsMarkdown(stats)), 0o644)
}

// RenderStatsJSON writes the run statistics as JSON.
func (r *Renderer) RenderStatsJSON(path string, stats *model.RunStats) error {
	data, err := json.MarshalIndent(statsReport(stats), "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}

// RenderSummary prints the statistics to stdout.
func (r *Renderer) RenderSummary(stats *model.RunStats) {
	fmt.Print(r.statsMarkdown(stats))
}

func (r *Renderer) statsMarkdown(stats *model.RunStats) string {
	var b strings.Builder

	b.WriteString("# Clean Corpus Statistics\n\n")
	fmt.Fprintf(&b, "- Original documents: %d\n", stats.RawDocuments)
	fmt.Fprintf(&b, "- After language filter: %d\n", stats.LanguageFiltered)
	fmt.Fprintf(&b, "- After deduplication: %d\n", stats.Deduplicated)
	fmt.Fprintf(&b, "- Original token count: %d\n", stats.OriginalTokens)
	fmt.Fprintf(&b, "- Final token count: %d\n", stats.FinalTokens)
	fmt.Fprintf(&b, "- Reduction: %.2f%%\n", stats.ReductionPct())
	if stats.SkippedRecords > 0 {
		fmt.Fprintf(&b, "- Skipped malformed records: %d\n", stats.SkippedRecords)
	}
	if stats.MissingPaths > 0 {
		fmt.Fprintf(&b, "- Missing input paths: %d\n", stats.MissingPaths)
	}

	return b.String()
}

// statsReport augments RunStats with the derived reduction percentage for
// the JSON output.
func statsReport(stats *model.RunStats) map[string]any {
	return map[string]any{
		"raw_documents":     stats.RawDocuments,
		"language_filtered": stats.LanguageFiltered,
		"deduplicated":      stats.Deduplicated,
		"skipped_records":   stats.SkippedRecords,
		"missing_paths":     stats.MissingPaths,
		"original_tokens":   stats.OriginalTokens,
		"final_tokens":      stats.FinalTokens,
		"reduction_pct":     stats.ReductionPct(),
	}
}
