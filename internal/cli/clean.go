package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jiancao/corpusclean/internal/model"
	"github.com/jiancao/corpusclean/internal/pipeline"
)

var (
	outCorpus    string
	outStats     string
	outStatsJSON string
	languages    []string
	threshold    float64
	permutations int
	bands        int
	rows         int
	minFieldLen  int
	window       int
	workers      int
	noCache      bool
)

// cleanCmd represents the clean command
var cleanCmd = &cobra.Command{
	Use:   "clean <path>...",
	Short: "Clean input files into a deduplicated corpus",
	Long: `Clean runs the full pipeline over the given input files:
- Load plain text, JSON, and JSON-lines records into documents
- Keep only documents in the allowed languages
- Strip HTML/XML markup and decode entities
- Drop near-duplicates (MinHash + LSH banding, first occurrence wins)
- Redact emails, phone numbers, and card-shaped digit runs
- Collapse repeated n-gram runs within each document
- Write the corpus and a statistics report

Example:
  corpusclean clean book.txt papers.json talks.jsonl
  corpusclean clean data/*.jsonl --out corpus.txt --stats stats.md
  corpusclean clean data.jsonl --threshold 0.8 --permutations 256`,
	Args: cobra.MinimumNArgs(1),
	RunE: runClean,
}

func init() {
	rootCmd.AddCommand(cleanCmd)

	// Output flags
	cleanCmd.Flags().StringVar(&outCorpus, "out", "clean_corpus.txt", "output corpus path")
	cleanCmd.Flags().StringVar(&outStats, "stats", "stats.md", "output statistics path (markdown)")
	cleanCmd.Flags().StringVar(&outStatsJSON, "stats-json", "", "output statistics path (JSON, optional)")

	// Filter flags
	cleanCmd.Flags().StringSliceVar(&languages, "lang", []string{"en"}, "language allow-set (ISO 639-1 codes)")
	cleanCmd.Flags().IntVar(&minFieldLen, "min-field-len", 50, "minimum string field length for structured records")

	// Dedup flags
	cleanCmd.Flags().Float64Var(&threshold, "threshold", 0.7, "near-duplicate similarity threshold")
	cleanCmd.Flags().IntVar(&permutations, "permutations", 128, "MinHash permutation count")
	cleanCmd.Flags().IntVar(&bands, "bands", 0, "LSH band count (0 = derive from threshold)")
	cleanCmd.Flags().IntVar(&rows, "rows", 0, "LSH rows per band (0 = derive from threshold)")

	// Misc flags
	cleanCmd.Flags().IntVar(&window, "window", 4, "repetition collapse n-gram size")
	cleanCmd.Flags().IntVar(&workers, "workers", 4, "language classification workers")
	cleanCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable classification memoization")
}

func runClean(cmd *cobra.Command, args []string) error {
	cfg := buildConfig(cmd)

	p := pipeline.NewPipeline(cfg)

	result, err := p.Run(context.Background(), args)
	if err != nil {
		return fmt.Errorf("clean failed: %w", err)
	}

	if err := p.Render(result); err != nil {
		return fmt.Errorf("render failed: %w", err)
	}

	return nil
}

// buildConfig layers defaults, the config file / env vars, and CLI flags,
// in increasing priority.
func buildConfig(cmd *cobra.Command) *model.Config {
	cfg := model.DefaultConfig()
	applyViper(cfg)

	// Flags override only when set explicitly
	if cmd.Flags().Changed("lang") {
		cfg.Languages = languages
	}
	if cmd.Flags().Changed("min-field-len") {
		cfg.Loader.MinFieldLength = minFieldLen
	}
	if cmd.Flags().Changed("threshold") {
		cfg.Dedup.Threshold = threshold
	}
	if cmd.Flags().Changed("permutations") {
		cfg.Dedup.Permutations = permutations
	}
	if cmd.Flags().Changed("bands") {
		cfg.Dedup.Bands = bands
	}
	if cmd.Flags().Changed("rows") {
		cfg.Dedup.Rows = rows
	}
	if cmd.Flags().Changed("window") {
		cfg.Repetition.Window = window
	}
	if cmd.Flags().Changed("workers") {
		cfg.Concurrency.ClassifyWorkers = workers
	}
	if noCache {
		cfg.Cache.Enabled = false
	}
	if cmd.Flags().Changed("out") {
		cfg.Output.CorpusPath = outCorpus
	}
	if cmd.Flags().Changed("stats") {
		cfg.Output.StatsPath = outStats
	}
	if outStatsJSON != "" {
		cfg.Output.StatsJSONPath = outStatsJSON
	}
	cfg.Output.Verbose = verbose

	return cfg
}

// applyViper overlays config file and environment values onto cfg.
func applyViper(cfg *model.Config) {
	if viper.IsSet("languages") {
		cfg.Languages = viper.GetStringSlice("languages")
	}
	if viper.IsSet("loader.min_field_length") {
		cfg.Loader.MinFieldLength = viper.GetInt("loader.min_field_length")
	}
	if viper.IsSet("dedup.threshold") {
		cfg.Dedup.Threshold = viper.GetFloat64("dedup.threshold")
	}
	if viper.IsSet("dedup.permutations") {
		cfg.Dedup.Permutations = viper.GetInt("dedup.permutations")
	}
	if viper.IsSet("dedup.bands") {
		cfg.Dedup.Bands = viper.GetInt("dedup.bands")
	}
	if viper.IsSet("dedup.rows") {
		cfg.Dedup.Rows = viper.GetInt("dedup.rows")
	}
	if viper.IsSet("repetition.window") {
		cfg.Repetition.Window = viper.GetInt("repetition.window")
	}
	if viper.IsSet("concurrency.classify_workers") {
		cfg.Concurrency.ClassifyWorkers = viper.GetInt("concurrency.classify_workers")
	}
	if viper.IsSet("cache.enabled") {
		cfg.Cache.Enabled = viper.GetBool("cache.enabled")
	}
	if viper.IsSet("output.corpus") {
		cfg.Output.CorpusPath = viper.GetString("output.corpus")
	}
	if viper.IsSet("output.stats") {
		cfg.Output.StatsPath = viper.GetString("output.stats")
	}
	if viper.IsSet("output.stats_json") {
		cfg.Output.StatsJSONPath = viper.GetString("output.stats_json")
	}
}
