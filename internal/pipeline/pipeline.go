// Package pipeline composes the cleaning stages and writes the results.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/jiancao/corpusclean/internal/cache"
	"github.com/jiancao/corpusclean/internal/dedup"
	"github.com/jiancao/corpusclean/internal/lang"
	"github.com/jiancao/corpusclean/internal/loader"
	"github.com/jiancao/corpusclean/internal/markup"
	"github.com/jiancao/corpusclean/internal/model"
	"github.com/jiancao/corpusclean/internal/redact"
	"github.com/jiancao/corpusclean/internal/repeat"
	"github.com/jiancao/corpusclean/internal/token"
	"github.com/jiancao/corpusclean/internal/worker"
)

// Pipeline orchestrates the complete cleaning run:
// load → language filter → markup strip → near-dup detection → PII redaction
// → repetition collapse. Data flows strictly forward; only the language
// classification fans out across workers, and its results are merged back in
// input order before the detector runs.
type Pipeline struct {
	config   *model.Config
	loader   *loader.Loader
	detector *lang.Detector
	classify *worker.ClassifyBatch
	renderer *Renderer
}

// NewPipeline creates a new pipeline with the given configuration
func NewPipeline(cfg *model.Config) *Pipeline {
	var c cache.Cache
	if cfg.Cache.Enabled {
		c = cache.NewMemoryCache(30*time.Minute, time.Hour)
	}

	detector := lang.NewDetector(cfg.Languages, c)

	return &Pipeline{
		config:   cfg,
		loader:   loader.New(cfg.Loader.MinFieldLength, cfg.Output.Verbose),
		detector: detector,
		classify: worker.NewClassifyBatch(detector, cfg.Concurrency.ClassifyWorkers),
		renderer: NewRenderer(),
	}
}

// Result contains the cleaned corpus and the run statistics
type Result struct {
	Corpus []model.Document
	Stats  model.RunStats
}

// Run executes every stage over the given input paths. Per-document problems
// shrink the corpus; the only errors returned are a failed read of an
// existing input file or an invalid dedup configuration.
func (p *Pipeline) Run(ctx context.Context, paths []string) (*Result, error) {
	var stats model.RunStats

	// 1. Load inputs into a flat document sequence
	loaded, err := p.loader.Load(paths)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	stats.RawDocuments = len(loaded.Documents)
	stats.SkippedRecords = loaded.SkippedRecords
	stats.MissingPaths = loaded.MissingPaths
	p.logf("Loaded %d raw documents\n", stats.RawDocuments)

	// 2. Language filter: classify concurrently, merge in input order
	codes := p.classify.Run(ctx, loaded.Documents)
	var kept []model.Document
	for i, doc := range loaded.Documents {
		if p.detector.Allowed(codes[i]) {
			kept = append(kept, doc)
		}
	}
	stats.LanguageFiltered = len(kept)
	p.logf("Kept %d documents after language filter\n", stats.LanguageFiltered)

	// 3. Strip markup; this is the pre-clean token baseline
	stripped := make([]model.Document, len(kept))
	for i, doc := range kept {
		text := markup.Strip(doc.Text)
		stripped[i] = model.Document{Text: text, Source: doc.Source}
		stats.OriginalTokens += token.Count(text)
	}

	// 4. Near-duplicate detection, strictly sequential over stage-3 order
	detector, err := dedup.NewDetector(p.config.Dedup)
	if err != nil {
		return nil, fmt.Errorf("dedup: %w", err)
	}
	var unique []model.Document
	for _, doc := range stripped {
		if detector.Admit(doc.Text) {
			unique = append(unique, doc)
		}
	}
	stats.Deduplicated = len(unique)
	p.logf("Deduplicated to %d unique documents\n", stats.Deduplicated)

	// 5–6. PII redaction, then repetition collapse
	final := make([]model.Document, len(unique))
	for i, doc := range unique {
		text := repeat.Collapse(redact.Redact(doc.Text), p.config.Repetition.Window)
		final[i] = model.Document{Text: text, Source: doc.Source}
		stats.FinalTokens += token.Count(text)
	}

	return &Result{Corpus: final, Stats: stats}, nil
}

// Render writes the corpus and statistics to their configured destinations
// and prints a summary to stdout.
func (p *Pipeline) Render(result *Result) error {
	out := p.config.Output

	if err := p.renderer.RenderCorpus(out.CorpusPath, result.Corpus); err != nil {
		return fmt.Errorf("write corpus: %w", err)
	}
	p.logf("✓ Wrote corpus: %s\n", out.CorpusPath)

	if out.StatsPath != "" {
		if err := p.renderer.RenderStatsMarkdown(out.StatsPath, &result.Stats); err != nil {
			return fmt.Errorf("write stats: %w", err)
		}
		p.logf("✓ Wrote stats: %s\n", out.StatsPath)
	}

	if out.StatsJSONPath != "" {
		if err := p.renderer.RenderStatsJSON(out.StatsJSONPath, &result.Stats); err != nil {
			return fmt.Errorf("write stats JSON: %w", err)
		}
		p.logf("✓ Wrote stats JSON: %s\n", out.StatsJSONPath)
	}

	p.renderer.RenderSummary(&result.Stats)
	return nil
}

func (p *Pipeline) logf(format string, args ...any) {
	if p.config.Output.Verbose {
		fmt.Fprintf(os.Stderr, format, args...)
	}
}
