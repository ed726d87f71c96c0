package main

import (
	"flag"
	"testing"
)

func TestParseFlags_Defaults(t *testing.T) {
	t.Parallel()

	fs := flag.NewFlagSet("insult-sort", flag.ContinueOnError)
	cfg, err := parseFlags(fs, nil)
	if err != nil {
		t.Fatalf("parseFlags: %v", err)
	}
	if cfg.FilePath != "" || cfg.OutPath != "" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestParseFlags_Overrides(t *testing.T) {
	t.Parallel()

	fs := flag.NewFlagSet("insult-sort", flag.ContinueOnError)
	cfg, err := parseFlags(fs, []string{"-file", "insults.json", "-out", "sorted.json"})
	if err != nil {
		t.Fatalf("parseFlags: %v", err)
	}
	if cfg.FilePath != "insults.json" {
		t.Fatalf("FilePath=%q, want insults.json", cfg.FilePath)
	}
	if cfg.OutPath != "sorted.json" {
		t.Fatalf("OutPath=%q, want sorted.json", cfg.OutPath)
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
