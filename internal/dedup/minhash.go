// Package dedup implements streaming near-duplicate detection over MinHash
// signatures indexed with locality-sensitive hashing.
package dedup

import (
	"math/rand"

	"github.com/cespare/xxhash/v2"

	"github.com/jiancao/corpusclean/internal/token"
)

// permutationSeed fixes the permutation constants so signatures are
// reproducible across runs.
const permutationSeed = 0x1d0c5eed

// Signature is a fixed-size MinHash signature. The fraction of matching
// positions between two signatures is an unbiased estimate of the Jaccard
// similarity of the underlying token sets.
type Signature []uint64

// MinHasher computes MinHash signatures using a family of universal
// permutation functions a·x + b over uint64 values.
type MinHasher struct {
	a []uint64
	b []uint64
}

// NewMinHasher creates a hasher with the given number of permutations.
func NewMinHasher(permutations int) *MinHasher {
	if permutations <= 0 {
		permutations = 128
	}

	rnd := rand.New(rand.NewSource(permutationSeed))
	a := make([]uint64, permutations)
	b := make([]uint64, permutations)
	for i := range a {
		a[i] = rnd.Uint64() | 1 // odd multiplier
		b[i] = rnd.Uint64()
	}

	return &MinHasher{a: a, b: b}
}

// Permutations returns the signature length P.
func (m *MinHasher) Permutations() int {
	return len(m.a)
}

// Signature hashes the distinct case-folded tokens of text into a MinHash
// signature. An empty token set yields the identity signature (all slots at
// the maximum value), so every tokenless document signs identically.
func (m *MinHasher) Signature(text string) Signature {
	sig := make(Signature, len(m.a))
	for i := range sig {
		sig[i] = ^uint64(0)
	}

	for tok := range token.Set(text) {
		h := xxhash.Sum64String(tok)
		for i := range sig {
			if v := m.a[i]*h + m.b[i]; v < sig[i] {
				sig[i] = v
			}
		}
	}

	return sig
}

// EstimateSimilarity returns the fraction of matching signature positions,
// the MinHash estimate of Jaccard similarity. Signatures of different
// lengths estimate 0.
func EstimateSimilarity(x, y Signature) float64 {
	if len(x) == 0 || len(x) != len(y) {
		return 0
	}

	match := 0
	for i := range x {
		if x[i] == y[i] {
			match++
		}
	}
	return float64(match) / float64(len(x))
}
