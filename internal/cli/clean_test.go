package cli

import (
	"testing"
)

func TestBuildConfig_Defaults(t *testing.T) {
	cfg := buildConfig(cleanCmd)

	if len(cfg.Languages) != 1 || cfg.Languages[0] != "en" {
		t.Errorf("Expected default allow-set [en], got %v", cfg.Languages)
	}
	if cfg.Dedup.Threshold != 0.7 {
		t.Errorf("Expected default threshold 0.7, got %f", cfg.Dedup.Threshold)
	}
	if cfg.Dedup.Permutations != 128 {
		t.Errorf("Expected default 128 permutations, got %d", cfg.Dedup.Permutations)
	}
	if cfg.Loader.MinFieldLength != 50 {
		t.Errorf("Expected default min field length 50, got %d", cfg.Loader.MinFieldLength)
	}
	if cfg.Repetition.Window != 4 {
		t.Errorf("Expected default window 4, got %d", cfg.Repetition.Window)
	}
	if !cfg.Cache.Enabled {
		t.Error("Expected cache enabled by default")
	}
}

func TestBuildConfig_FlagOverrides(t *testing.T) {
	if err := cleanCmd.Flags().Set("threshold", "0.85"); err != nil {
		t.Fatalf("set flag: %v", err)
	}
	if err := cleanCmd.Flags().Set("lang", "en,fr"); err != nil {
		t.Fatalf("set flag: %v", err)
	}
	defer func() {
		_ = cleanCmd.Flags().Set("threshold", "0.7")
		_ = cleanCmd.Flags().Set("lang", "en")
	}()

	cfg := buildConfig(cleanCmd)

	if cfg.Dedup.Threshold != 0.85 {
		t.Errorf("Expected overridden threshold 0.85, got %f", cfg.Dedup.Threshold)
	}
	if len(cfg.Languages) != 2 {
		t.Errorf("Expected two allowed languages, got %v", cfg.Languages)
	}
}
