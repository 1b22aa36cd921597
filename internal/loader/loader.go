// Package loader normalizes input files into a flat sequence of documents.
package loader

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/jiancao/corpusclean/internal/model"
)

// Loader reads plain-text and line-delimited JSON files into Documents.
type Loader struct {
	minFieldLength int
	verbose        bool
}

// Result carries the loaded documents plus loader diagnostics.
type Result struct {
	Documents      []model.Document
	SkippedRecords int // malformed JSON lines
	MissingPaths   int // input paths not found
}

// New creates a loader. Structured string fields shorter than or equal to
// minFieldLength are discarded.
func New(minFieldLength int, verbose bool) *Loader {
	if minFieldLength < 0 {
		minFieldLength = 0
	}
	return &Loader{minFieldLength: minFieldLength, verbose: verbose}
}

// Load reads every path into Documents, in path order. A missing path is a
// warning, never an error; malformed records are counted and skipped. The only
// possible error is a read failure on a file that exists.
func (l *Loader) Load(paths []string) (*Result, error) {
	res := &Result{}

	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: file not found: %s\n", path)
			res.MissingPaths++
			continue
		}

		switch strings.ToLower(filepath.Ext(path)) {
		case ".json", ".jsonl":
			if err := l.loadRecords(path, res); err != nil {
				return nil, fmt.Errorf("load %s: %w", path, err)
			}
		default:
			if err := l.loadText(path, res); err != nil {
				return nil, fmt.Errorf("load %s: %w", path, err)
			}
		}
	}

	return res, nil
}

// loadText reads the whole file as a single document.
func (l *Loader) loadText(path string, res *Result) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	res.Documents = append(res.Documents, model.Document{
		Text:   string(data),
		Source: path,
	})
	return nil
}

// loadRecords reads one JSON record per line and extracts every string value
// long enough to stand as a document. Lines are read without a length cap:
// an oversized line is at worst a malformed record, never a reason to abort.
func (l *Loader) loadRecords(path string, res *Result) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	r := bufio.NewReader(f)
	for {
		line, readErr := r.ReadString('\n')

		if trimmed := strings.TrimSpace(line); trimmed != "" {
			var record any
			if err := json.Unmarshal([]byte(trimmed), &record); err != nil {
				res.SkippedRecords++
				if l.verbose {
					fmt.Fprintf(os.Stderr, "Skipping malformed record in %s: %v\n", path, err)
				}
			} else {
				l.extract(record, path, res)
			}
		}

		if readErr != nil {
			if readErr == io.EOF {
				return nil
			}
			return readErr
		}
	}
}

// extract pulls long string values out of a decoded record. Nesting is
// shallow: objects, strings, and lists of objects or strings. Object keys are
// visited in sorted order so the emitted document order is deterministic.
func (l *Loader) extract(record any, source string, res *Result) {
	switch v := record.(type) {
	case map[string]any:
		for _, key := range sortedKeys(v) {
			if s, ok := v[key].(string); ok {
				l.emit(s, source, res)
			}
		}
	case string:
		l.emit(v, source, res)
	case []any:
		for _, item := range v {
			switch it := item.(type) {
			case string:
				l.emit(it, source, res)
			case map[string]any:
				for _, key := range sortedKeys(it) {
					if s, ok := it[key].(string); ok {
						l.emit(s, source, res)
					}
				}
			}
		}
	}
}

func (l *Loader) emit(s, source string, res *Result) {
	if len(s) > l.minFieldLength {
		res.Documents = append(res.Documents, model.Document{Text: s, Source: source})
	}
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
