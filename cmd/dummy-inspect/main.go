// Copyright (c) 2025 Northbound System
// Author: Nicholas Skitch
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/dummy-forge/internal/inspect"
	"github.com/dummy-forge/internal/logger"
	"github.com/dummy-forge/internal/report"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("dummy-inspect", flag.ContinueOnError)
	fs.SetOutput(stderr)
	output := fs.String("o", "table", "Output format: table, json or yaml")
	verbose := fs.Bool("v", false, "Verbose (debug) logging")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: dummy-inspect [-o table|json|yaml] FILE|DIR...\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return 2
	}

	log := logger.New(stderr)
	log.SetDebug(*verbose)
	logger.SetDefault(log)

	paths, err := inspect.Expand(fs.Args())
	if err != nil {
		log.Errorf("%v", err)
		return 1
	}

	reports := make([]inspect.Report, 0, len(paths))
	exit := 0
	for _, path := range paths {
		r, err := inspect.File(path)
		if err != nil {
			log.Errorf("%v", err)
		}
		if !r.Valid {
			exit = 1
		}
		reports = append(reports, r)
	}

	if err := report.NewOutputterTo(*output, stdout).PrintReports(reports); err != nil {
		log.Errorf("Failed to print reports: %v", err)
		return 1
	}
	return exit
}
