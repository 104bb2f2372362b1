// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Program mtree compiles markup documents to the JSON encoding of their
// syntax trees.
//
// Usage:
//
//	mtree [flags] [file ...]
//
// Each named file is compiled and its JSON is written to stdout, one
// document per line (or per block, with -pretty). With no files, mtree reads
// a single document from stdin.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/creachadair/mtree/compile"
)

var (
	strictFlag = flag.Bool("strict", false, "Reject closing tags that do not match the open element")
	prettyFlag = flag.Bool("pretty", false, "Pretty-print the output")
	indentFlag = flag.String("indent", "", "Indentation for pretty output (default two spaces)")
	selectPath = flag.String("select", "", "Output only the node at this slash-separated path (e.g., 0/body/-1)")
	findTag    = flag.String("find", "", "Output all tags with this name, in document order")
	configFile = flag.String("config", "", "Read default settings from this HuJSON file")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: %[1]s [flags] [file ...]

Compile markup documents to JSON. With no files, read stdin.

Options:
`, filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}
	flag.Parse()
	log.SetFlags(0)
	log.SetPrefix("mtree: ")

	opts, err := loadConfig(*configFile)
	if err != nil {
		log.Fatalf("Loading config: %v", err)
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "strict":
			opts.Strict = *strictFlag
		case "pretty":
			opts.Pretty = *prettyFlag
		case "indent":
			opts.Indent = *indentFlag
		}
	})
	path, err := parsePath(*selectPath)
	if err != nil {
		log.Fatalf("Invalid -select: %v", err)
	}
	sel := selector{path: path, find: *findTag}

	if flag.NArg() == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			log.Fatalf("Reading stdin: %v", err)
		}
		if err := compileOne(os.Stdout, opts, sel, data); err != nil {
			log.Fatalf("<stdin>: %v", err)
		}
		return
	}
	for _, name := range flag.Args() {
		data, err := os.ReadFile(name)
		if err != nil {
			log.Fatalf("Reading input: %v", err)
		}
		if err := compileOne(os.Stdout, opts, sel, data); err != nil {
			log.Fatalf("%s: %v", name, err)
		}
	}
}

// compileOne compiles a single document and writes its JSON to w.
func compileOne(w io.Writer, opts *compile.Options, sel selector, data []byte) error {
	nodes, err := opts.Parse(string(data))
	if err != nil {
		return err
	}
	nodes, err = sel.apply(nodes)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, opts.Render(nodes))
	return err
}
