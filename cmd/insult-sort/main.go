package main

import (
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

	cat, err := catalogue.Load(cfg.FilePath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}

	catalogue.SortEntries(cat.Entries)

	outPath := cfg.OutPath
	if outPath == "" {
		outPath = cfg.FilePath
	}
	if err := catalogue.Save(outPath, cat); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}

	fmt.Fprintf(os.Stdout, "entries=%d file=%s\n", len(cat.Entries), outPath)
}
