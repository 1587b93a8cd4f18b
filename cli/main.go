package main

/**
 * gosinglish - A Singlish to Sinhala transliteration library
 * Copyright Singlish Project, 2022
 * Licensed under AGPL-3.0-only
 */

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/singlishproject/gosinglish/singlish"
)

func loadScheme(path string) (*singlish.Scheme, error) {
	if strings.HasSuffix(path, ".vst") {
		return singlish.LoadSymbolStore(path)
	}
	return singlish.LoadSchemeFile(path)
}

func main() {
	debugFlag := flag.Bool("debug", false, "Enable debugging outputs")
	schemeFlag := flag.String("scheme", "", "Scheme file to use instead of the built-in Sinhala one (.yaml or .vst)")
	checkFlag := flag.Bool("check", false, "Report unconverted Latin letters and exit non-zero if any remain")

	dumpSchemeFlag := flag.String("dump-scheme", "", "Write the active scheme to a YAML file")
	exportStoreFlag := flag.String("export-store", "", "Export the active scheme to a symbol store file")

	flag.Parse()

	var (
		scheme *singlish.Scheme
		err    error
	)

	if *schemeFlag != "" {
		scheme, err = loadScheme(*schemeFlag)
		if err != nil {
			log.Fatal(err)
		}
	} else {
		scheme = singlish.SinhalaScheme()
	}

	engine, err := singlish.NewFromScheme(scheme)
	if err != nil {
		log.Fatal(err)
	}

	if *debugFlag {
		engine.Debug = true
		engine.SetLogger(zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger())
	}

	if *dumpSchemeFlag != "" {
		if err = singlish.WriteSchemeFile(*dumpSchemeFlag, scheme); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("Wrote scheme %s to %s\n", scheme.Details.Identifier, *dumpSchemeFlag)
		return
	}

	if *exportStoreFlag != "" {
		if err = singlish.ExportSymbolStore(*exportStoreFlag, scheme); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("Exported scheme %s to %s\n", scheme.Details.Identifier, *exportStoreFlag)
		return
	}

	clean := true

	convertLine := func(line string) {
		converted := engine.Convert(line)
		fmt.Println(converted)

		if *checkFlag {
			for _, run := range singlish.LatinResidue(converted) {
				clean = false
				fmt.Fprintf(os.Stderr, "unconverted: %s\n", run)
			}
		}
	}

	if args := flag.Args(); len(args) > 0 {
		for _, arg := range args {
			convertLine(arg)
		}
	} else {
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			convertLine(scanner.Text())
		}
		if err = scanner.Err(); err != nil {
			log.Fatal(err)
		}
	}

	if !clean {
		os.Exit(1)
	}
}
