package dedup

import (
	"testing"
)

func TestMinHasher_SignatureLength(t *testing.T) {
	m := NewMinHasher(128)

	sig := m.Signature("some text to hash")
	if len(sig) != 128 {
		t.Errorf("Expected signature length 128, got %d", len(sig))
	}
	if m.Permutations() != 128 {
		t.Errorf("Expected 128 permutations, got %d", m.Permutations())
	}
}

func TestMinHasher_IdenticalTextIdenticalSignature(t *testing.T) {
	m := NewMinHasher(64)

	a := m.Signature("the quick brown fox jumps over the lazy dog")
	b := m.Signature("the quick brown fox jumps over the lazy dog")

	if got := EstimateSimilarity(a, b); got != 1.0 {
		t.Errorf("Expected similarity 1.0 for identical text, got %f", got)
	}
}

func TestMinHasher_CaseAndMultiplicityInsensitive(t *testing.T) {
	m := NewMinHasher(64)

	// The token *set* is hashed: case folds, duplicates collapse
	a := m.Signature("alpha beta gamma")
	b := m.Signature("Alpha ALPHA beta beta Gamma")

	if got := EstimateSimilarity(a, b); got != 1.0 {
		t.Errorf("Expected similarity 1.0 for equal token sets, got %f", got)
	}
}

func TestMinHasher_DisjointSetsLowSimilarity(t *testing.T) {
	m := NewMinHasher(128)

	a := m.Signature("apple banana cherry date elderberry fig grape")
	b := m.Signature("wrench hammer pliers chisel drill saw level")

	if got := EstimateSimilarity(a, b); got > 0.2 {
		t.Errorf("Expected near-zero similarity for disjoint token sets, got %f", got)
	}
}

func TestMinHasher_EmptySetSignature(t *testing.T) {
	m := NewMinHasher(32)

	empty := m.Signature("")
	for i, v := range empty {
		if v != ^uint64(0) {
			t.Fatalf("Expected identity minimum at slot %d, got %d", i, v)
		}
	}

	// Tokenless text signs identically to empty text
	punct := m.Signature("... !!! ???")
	if got := EstimateSimilarity(empty, punct); got != 1.0 {
		t.Errorf("Expected tokenless documents to share the empty signature, got similarity %f", got)
	}
}

func TestMinHasher_Deterministic(t *testing.T) {
	// Two independently constructed hashers must agree, signatures are
	// reproducible across runs
	m1 := NewMinHasher(64)
	m2 := NewMinHasher(64)

	a := m1.Signature("reproducibility matters for pipeline reruns")
	b := m2.Signature("reproducibility matters for pipeline reruns")

	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("Signatures differ at slot %d: %d vs %d", i, a[i], b[i])
		}
	}
}

func TestEstimateSimilarity_TracksOverlap(t *testing.T) {
	m := NewMinHasher(256)

	// ~9/11 token overlap, estimate should land well above disjoint and
	// below identical
	a := m.Signature("one two three four five six seven eight nine ten eleven")
	b := m.Signature("one two three four five six seven eight nine aardvark zebra")

	got := EstimateSimilarity(a, b)
	if got < 0.4 || got > 0.95 {
		t.Errorf("Expected estimate to track a high-but-partial overlap, got %f", got)
	}
}

func TestEstimateSimilarity_MismatchedLengths(t *testing.T) {
	if got := EstimateSimilarity(make(Signature, 4), make(Signature, 8)); got != 0 {
		t.Errorf("Expected 0 for mismatched signature lengths, got %f", got)
	}
	if got := EstimateSimilarity(nil, nil); got != 0 {
		t.Errorf("Expected 0 for empty signatures, got %f", got)
	}
}
