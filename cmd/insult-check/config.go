package main

import (
	"errors"
	"flag"
	"os"
	"path/filepath"
)

type Config struct {
	FilePath    string
	PrintSchema bool
}

func (c Config) Validate() error {
	if !c.PrintSchema && c.FilePath == "" {
		return errors.New("missing -file")
	}
	return nil
}

func parseFlags(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	fs.SetOutput(os.Stderr)
	fs.StringVar(&cfg.FilePath, "file", "", "Path to the catalogue JSON file")
	fs.BoolVar(&cfg.PrintSchema, "schema", false, "Print the catalogue document JSON Schema and exit")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if cfg.FilePath != "" {
		cfg.FilePath = filepath.Clean(cfg.FilePath)
	}
	return cfg, nil
}
