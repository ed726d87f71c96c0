package main

import (
	"errors"
	"flag"
	"os"
	"path/filepath"
)

type Config struct {
	FilePath string
	Tag      string
	Seed     int64
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
	fs.StringVar(&cfg.Tag, "tag", "", "Only pick among entries carrying this exact tag")
	fs.Int64Var(&cfg.Seed, "seed", 0, "Random seed (0 seeds from the clock)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if cfg.FilePath != "" {
		cfg.FilePath = filepath.Clean(cfg.FilePath)
	}
	return cfg, nil
}
