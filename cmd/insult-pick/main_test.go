package main

import (
	"flag"
	"testing"
)

func TestParseFlags_Defaults(t *testing.T) {
	t.Parallel()

	fs := flag.NewFlagSet("insult-pick", flag.ContinueOnError)
	cfg, err := parseFlags(fs, nil)
	if err != nil {
		t.Fatalf("parseFlags: %v", err)
	}
	if cfg.FilePath != "" || cfg.Tag != "" || cfg.Seed != 0 {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestParseFlags_Overrides(t *testing.T) {
	t.Parallel()

	fs := flag.NewFlagSet("insult-pick", flag.ContinueOnError)
	cfg, err := parseFlags(fs, []string{"-file", "insults.json", "-tag", "despectiu", "-seed", "7"})
	if err != nil {
		t.Fatalf("parseFlags: %v", err)
	}
	if cfg.FilePath != "insults.json" {
		t.Fatalf("FilePath=%q, want insults.json", cfg.FilePath)
	}
	if cfg.Tag != "despectiu" {
		t.Fatalf("Tag=%q, want despectiu", cfg.Tag)
	}
	if cfg.Seed != 7 {
		t.Fatalf("Seed=%d, want 7", cfg.Seed)
	}
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	if err := (Config{}).Validate(); err == nil {
		t.Fatalf("expected error for missing -file")
	}
	if err := (Config{FilePath: "insults.json"}).Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
