package dedup

import (
	"testing"

	"github.com/jiancao/corpusclean/internal/model"
)

func TestDeriveBands_Defaults(t *testing.T) {
	bands, rows := DeriveBands(128, 0.7)

	if bands != 16 || rows != 8 {
		t.Errorf("Expected (16, 8) for P=128 T=0.7, got (%d, %d)", bands, rows)
	}
	if bands*rows != 128 {
		t.Errorf("Expected bands × rows = 128, got %d", bands*rows)
	}
}

func TestDeriveBands_AlwaysFactorizes(t *testing.T) {
	for _, p := range []int{16, 64, 128, 256} {
		for _, threshold := range []float64{0.3, 0.5, 0.7, 0.9} {
			bands, rows := DeriveBands(p, threshold)
			if bands*rows != p {
				t.Errorf("DeriveBands(%d, %f): %d × %d != %d", p, threshold, bands, rows, p)
			}
		}
	}
}

func TestIndex_ConstructedBandCollision(t *testing.T) {
	// Two bands of two rows. B shares band 0 with A exactly, C shares no band.
	idx := NewIndex(2, 2)

	sigA := Signature{1, 2, 3, 4}
	sigB := Signature{1, 2, 9, 9}
	sigC := Signature{5, 6, 7, 8}

	if idx.Seen(sigA) {
		t.Error("Expected empty index to report nothing seen")
	}
	idx.Add(sigA)

	if !idx.Seen(sigA) {
		t.Error("Expected identical signature to collide in every band")
	}
	if !idx.Seen(sigB) {
		t.Error("Expected signature sharing one full band to collide")
	}
	if idx.Seen(sigC) {
		t.Error("Expected signature sharing no band to pass")
	}
}

func TestIndex_FirstClaimantKeepsBucket(t *testing.T) {
	idx := NewIndex(1, 2)

	keyA := idx.Add(Signature{1, 2})
	keyB := idx.Add(Signature{3, 4})

	if keyA == keyB {
		t.Error("Expected distinct keys per accepted document")
	}
	if idx.Len() != 2 {
		t.Errorf("Expected 2 accepted signatures, got %d", idx.Len())
	}
}

func TestDetector_SelfDuplicate(t *testing.T) {
	det, err := NewDetector(model.DedupConfig{Threshold: 0.7, Permutations: 128})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	text := "exactly the same document text fed through the detector twice"

	if !det.Admit(text) {
		t.Fatal("Expected first copy to be accepted")
	}
	if det.Admit(text) {
		t.Fatal("Expected second copy to be dropped")
	}
	if det.Accepted() != 1 {
		t.Errorf("Expected exactly one surviving copy, got %d", det.Accepted())
	}
}

func TestDetector_NearIdenticalParagraphs(t *testing.T) {
	det, err := NewDetector(model.DedupConfig{Threshold: 0.7, Permutations: 128})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	base := "Locality sensitive hashing partitions a signature into bands so that " +
		"similar documents collide in at least one bucket with tunable probability, " +
		"which makes near duplicate detection feasible at corpus scale without " +
		"comparing every pair of documents directly."
	variant := base + " Similar documents collide in at least one more bucket."

	if !det.Admit(base) {
		t.Fatal("Expected first paragraph to be accepted")
	}
	if det.Admit(variant) {
		t.Error("Expected near-identical variant to be dropped")
	}
}

func TestDetector_DistinctDocumentsSurvive(t *testing.T) {
	det, err := NewDetector(model.DedupConfig{Threshold: 0.7, Permutations: 128})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	docs := []string{
		"a treatise on sorting networks and their depth lower bounds",
		"recipes for fermented vegetables from several northern regions",
		"notes on the migratory behavior of arctic terns across oceans",
	}

	for i, d := range docs {
		if !det.Admit(d) {
			t.Errorf("Expected unrelated document %d to be accepted", i)
		}
	}
	if det.Accepted() != len(docs) {
		t.Errorf("Expected %d accepted documents, got %d", len(docs), det.Accepted())
	}
}

func TestDetector_EmptyDocuments(t *testing.T) {
	det, err := NewDetector(model.DedupConfig{Threshold: 0.7, Permutations: 128})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if !det.Admit("") {
		t.Fatal("Expected the first empty document to be accepted")
	}
	if det.Admit("") {
		t.Error("Expected a later empty document to be dropped")
	}
	if det.Admit("?!.") {
		t.Error("Expected a tokenless document to be treated as a duplicate of the first empty one")
	}
}

func TestNewDetector_ExplicitBands(t *testing.T) {
	det, err := NewDetector(model.DedupConfig{Threshold: 0.7, Permutations: 128, Bands: 32, Rows: 4})
	if err != nil {
		t.Fatalf("Expected explicit banding to be accepted, got %v", err)
	}
	if det == nil {
		t.Fatal("Expected detector")
	}
}

func TestNewDetector_InconsistentBands(t *testing.T) {
	_, err := NewDetector(model.DedupConfig{Threshold: 0.7, Permutations: 128, Bands: 7, Rows: 5})
	if err == nil {
		t.Fatal("Expected error when bands × rows != permutations")
	}
}

func TestNewDetector_ZeroConfigUsesDefaults(t *testing.T) {
	det, err := NewDetector(model.DedupConfig{})
	if err != nil {
		t.Fatalf("Expected defaults to apply, got %v", err)
	}
	if det.hasher.Permutations() != 128 {
		t.Errorf("Expected default 128 permutations, got %d", det.hasher.Permutations())
	}
}
