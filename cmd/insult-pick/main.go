package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

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

	cat, err := catalogue.Load(cfg.FilePath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}

	candidates := cat.Entries
	if cfg.Tag != "" {
		candidates = catalogue.FilterByTag(candidates, cfg.Tag)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	entry, ok := catalogue.PickRandom(candidates, rand.New(rand.NewSource(seed)))
	if !ok {
		fmt.Fprintln(os.Stderr, "no matching entries")
		os.Exit(1)
	}

	fmt.Fprintf(os.Stdout, "%s: %s\n", entry.Word, entry.Definition)
	if len(entry.Tags) > 0 {
		fmt.Fprintf(os.Stdout, "tags: %s\n", strings.Join(entry.Tags, ", "))
	}
	fmt.Fprintf(os.Stdout, "font: %s (%s)\n", entry.Source.Name, entry.Source.URL)
}
