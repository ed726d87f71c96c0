package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/insultari/catalogue-tools/catalogue"
)

func main() {
	cfg, err := parseFlags(flag.CommandLine, os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(2)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(2)
	}

	if cfg.PrintSchema {
		schema, err := catalogue.DocumentSchema()
		if err != nil {
			fmt.Fprintln(os.Stderr, err.Error())
			os.Exit(1)
		}
		b, err := json.MarshalIndent(schema, "", "    ")
		if err != nil {
			fmt.Fprintln(os.Stderr, err.Error())
			os.Exit(1)
		}
		fmt.Fprintln(os.Stdout, string(b))
		return
	}

	cat, err := catalogue.Load(cfg.FilePath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}

	dups := catalogue.DuplicateWords(cat.Entries)
	for _, w := range dups {
		fmt.Fprintf(os.Stderr, "duplicate word: %s\n", w)
	}
	if len(dups) > 0 {
		fmt.Fprintf(os.Stderr, "catalogue has %d duplicated word(s)\n", len(dups))
		os.Exit(1)
	}

	fmt.Fprintf(os.Stdout, "entries=%d duplicates=0 file=%s\n", len(cat.Entries), cfg.FilePath)
}
