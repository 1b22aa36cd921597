package token

import (
	"reflect"
	"testing"
)

func TestWords_BasicSplitting(t *testing.T) {
	got := Words("Hello, world! This is a test.")
	want := []string{"Hello", "world", "This", "is", "a", "test"}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestWords_HyphensAndDigits(t *testing.T) {
	got := Words("state-of-the-art in 2024")
	want := []string{"state-of-the-art", "in", "2024"}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestWords_Empty(t *testing.T) {
	if got := Words(""); len(got) != 0 {
		t.Errorf("Expected no tokens for empty input, got %v", got)
	}
	if got := Words("...!?"); len(got) != 0 {
		t.Errorf("Expected no tokens for punctuation-only input, got %v", got)
	}
}

func TestFold_Lowercases(t *testing.T) {
	got := Fold("MinHash LSH")
	want := []string{"minhash", "lsh"}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestSet_CollapsesDuplicates(t *testing.T) {
	set := Set("the quick THE Quick fox")

	if len(set) != 3 {
		t.Errorf("Expected 3 distinct tokens, got %d: %v", len(set), set)
	}
	for _, w := range []string{"the", "quick", "fox"} {
		if _, ok := set[w]; !ok {
			t.Errorf("Expected set to contain %q", w)
		}
	}
}

func TestCount(t *testing.T) {
	if got := Count("one two three"); got != 3 {
		t.Errorf("Expected 3 tokens, got %d", got)
	}
	if got := Count(""); got != 0 {
		t.Errorf("Expected 0 tokens for empty input, got %d", got)
	}
}
