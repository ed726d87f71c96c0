package main

import (
	"errors"
	"flag"
	"os"
	"path/filepath"
)

type Config struct {
	FilePath string
	OutPath  string
}

func (c Config) Validate() error {
	if c.FilePath == "" {
		return errors.New("missing -file")
	}
	return nil
}

func parseFlags(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	fs.SetOutput(os.Stderr)
	fs.StringVar(&cfg.FilePath, "file", "", "Path to the catalogue JSON file")
	fs.StringVar(&cfg.OutPath, "out", "", "Optional output path (default: rewrite -file in place)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if cfg.FilePath != "" {
		cfg.FilePath = filepath.Clean(cfg.FilePath)
	}
	if cfg.OutPath != "" {
		cfg.OutPath = filepath.Clean(cfg.OutPath)
	}
	return cfg, nil
}
