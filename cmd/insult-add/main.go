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

	in := catalogue.NewLineReader(os.Stdin)

	path := cfg.FilePath
	if path == "" {
		fmt.Fprint(os.Stdout, "Introdueix el camí complet al fitxer: ")
		p, err := in.ReadLine()
		if err != nil {
			fmt.Fprintln(os.Stderr, "no catalogue file path given")
			os.Exit(1)
		}
		path = p
	}

	cat, err := catalogue.Load(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}

	res := catalogue.RunIngest(cat, in, os.Stdout)

	if err := catalogue.Save(path, cat); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}

	fmt.Fprintf(os.Stdout, "added=%d rejected=%d entries=%d file=%s\n", res.Added, res.Rejected, len(cat.Entries), path)
	fmt.Fprintln(os.Stdout, "Fes un commit per a realitzar els canvis")
}
