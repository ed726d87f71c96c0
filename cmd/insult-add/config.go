package main

import (
	"flag"
	"os"
	"path/filepath"
)

type Config struct {
	// FilePath is the catalogue file to work on. When empty, the tool
	// prompts the operator for it, like the original workflow.
	FilePath string
}

func parseFlags(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	fs.SetOutput(os.Stderr)
	fs.StringVar(&cfg.FilePath, "file", "", "Path to the catalogue JSON file (prompted for when omitted)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if cfg.FilePath != "" {
		cfg.FilePath = filepath.Clean(cfg.FilePath)
	}
	return cfg, nil
}
