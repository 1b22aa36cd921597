package dedup

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/cespare/xxhash/v2"
	"github.com/oklog/ulid/v2"

	"github.com/jiancao/corpusclean/internal/model"
)

// DeriveBands picks the banding (b, r) for a permutation count and similarity
// threshold. Among integer factorizations b·r = permutations, it chooses the
// one whose collision-curve threshold (1/b)^(1/r) lands closest to the target.
// For the defaults (128, 0.7) this derives b=16, r=8.
func DeriveBands(permutations int, threshold float64) (bands, rows int) {
	bands, rows = permutations, 1
	best := math.Inf(1)

	for r := 1; r <= permutations; r++ {
		if permutations%r != 0 {
			continue
		}
		b := permutations / r
		est := math.Pow(1/float64(b), 1/float64(r))
		if diff := math.Abs(est - threshold); diff < best {
			best = diff
			bands, rows = b, r
		}
	}

	return bands, rows
}

// Index is the banded LSH bucket index. It owns no document text: signatures
// live in an append-only arena and buckets map a band hash to the key of the
// first document that claimed it. Built incrementally, never rebuilt;
// constructed fresh per run.
type Index struct {
	bands   int
	rows    int
	buckets []map[uint64]string
	keys    []string
	sigs    []Signature
}

// NewIndex creates an empty index with the given banding.
func NewIndex(bands, rows int) *Index {
	buckets := make([]map[uint64]string, bands)
	for i := range buckets {
		buckets[i] = make(map[uint64]string)
	}
	return &Index{bands: bands, rows: rows, buckets: buckets}
}

// Seen reports whether any of the signature's band buckets already has a
// claimant, i.e. whether some accepted document shares an exact band.
func (x *Index) Seen(sig Signature) bool {
	for band := 0; band < x.bands; band++ {
		if _, ok := x.buckets[band][x.bandHash(sig, band)]; ok {
			return true
		}
	}
	return false
}

// Add inserts the signature under a fresh unique key, claiming every one of
// its band buckets, and returns the key.
func (x *Index) Add(sig Signature) string {
	key := ulid.Make().String()
	x.keys = append(x.keys, key)
	x.sigs = append(x.sigs, sig)

	for band := 0; band < x.bands; band++ {
		h := x.bandHash(sig, band)
		if _, ok := x.buckets[band][h]; !ok {
			x.buckets[band][h] = key // first claimant wins
		}
	}

	return key
}

// Len returns the number of accepted signatures.
func (x *Index) Len() int {
	return len(x.sigs)
}

func (x *Index) bandHash(sig Signature, band int) uint64 {
	d := xxhash.New()
	var buf [8]byte

	start := band * x.rows
	for _, v := range sig[start : start+x.rows] {
		binary.LittleEndian.PutUint64(buf[:], v)
		_, _ = d.Write(buf[:])
	}

	return d.Sum64()
}

// Detector is the near-duplicate detection stage: MinHash signatures over a
// banded LSH index, strictly sequential, first claimant of a band bucket
// survives.
type Detector struct {
	hasher *MinHasher
	index  *Index
}

// NewDetector builds a detector from configuration. Bands and rows are taken
// from the config when both are set, otherwise derived from the threshold and
// permutation count.
func NewDetector(cfg model.DedupConfig) (*Detector, error) {
	permutations := cfg.Permutations
	if permutations <= 0 {
		permutations = 128
	}
	threshold := cfg.Threshold
	if threshold <= 0 || threshold > 1 {
		threshold = 0.7
	}

	bands, rows := cfg.Bands, cfg.Rows
	if bands <= 0 || rows <= 0 {
		bands, rows = DeriveBands(permutations, threshold)
	}
	if bands*rows != permutations {
		return nil, fmt.Errorf("bands (%d) × rows (%d) must equal permutations (%d)", bands, rows, permutations)
	}

	return &Detector{
		hasher: NewMinHasher(permutations),
		index:  NewIndex(bands, rows),
	}, nil
}

// Admit reports whether the document is the first of its similarity cluster.
// A new document claims all its band buckets and survives; any later document
// hitting an occupied bucket is a near-duplicate and is dropped.
func (d *Detector) Admit(text string) bool {
	sig := d.hasher.Signature(text)
	if d.index.Seen(sig) {
		return false
	}
	d.index.Add(sig)
	return true
}

// Accepted returns the number of admitted documents.
func (d *Detector) Accepted() int {
	return d.index.Len()
}
