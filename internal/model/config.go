package model

// Config holds the full pipeline configuration.
// Populated from defaults, then config file, then env vars, then CLI flags.
type Config struct {
	Languages   []string          `yaml:"languages" json:"languages"`
	Loader      LoaderConfig      `yaml:"loader" json:"loader"`
	Dedup       DedupConfig       `yaml:"dedup" json:"dedup"`
	Repetition  RepetitionConfig  `yaml:"repetition" json:"repetition"`
	Concurrency ConcurrencyConfig `yaml:"concurrency" json:"concurrency"`
	Cache       CacheConfig       `yaml:"cache" json:"cache"`
	Output      OutputConfig      `yaml:"output" json:"output"`
}

// LoaderConfig controls input normalization
type LoaderConfig struct {
	// MinFieldLength is the minimum length of a string field in a structured
	// record for it to be emitted as a Document
	MinFieldLength int `yaml:"min_field_length" json:"min_field_length"`
}

// DedupConfig controls the near-duplicate detector
type DedupConfig struct {
	Threshold    float64 `yaml:"threshold" json:"threshold"`       // Jaccard similarity threshold T
	Permutations int     `yaml:"permutations" json:"permutations"` // MinHash permutation count P
	Bands        int     `yaml:"bands" json:"bands"`               // 0 = derive from threshold
	Rows         int     `yaml:"rows" json:"rows"`                 // 0 = derive from threshold
}

// RepetitionConfig controls the repetitive n-gram collapser
type RepetitionConfig struct {
	Window int `yaml:"window" json:"window"` // n-gram size
}

// ConcurrencyConfig controls worker counts
type ConcurrencyConfig struct {
	ClassifyWorkers int `yaml:"classify_workers" json:"classify_workers"`
}

// CacheConfig controls classification memoization
type CacheConfig struct {
	Enabled bool `yaml:"enabled" json:"enabled"`
}

// OutputConfig controls where results are written
type OutputConfig struct {
	CorpusPath    string `yaml:"corpus" json:"corpus"`
	StatsPath     string `yaml:"stats" json:"stats"`
	StatsJSONPath string `yaml:"stats_json,omitempty" json:"stats_json,omitempty"`
	Verbose       bool   `yaml:"-" json:"-"`
}

// DefaultConfig returns the standard configuration
func DefaultConfig() *Config {
	return &Config{
		Languages: []string{"en"},
		Loader: LoaderConfig{
			MinFieldLength: 50,
		},
		Dedup: DedupConfig{
			Threshold:    0.7,
			Permutations: 128,
		},
		Repetition: RepetitionConfig{
			Window: 4,
		},
		Concurrency: ConcurrencyConfig{
			ClassifyWorkers: 4,
		},
		Cache: CacheConfig{
			Enabled: true,
		},
		Output: OutputConfig{
			CorpusPath: "clean_corpus.txt",
			StatsPath:  "stats.md",
		},
	}
}
