// Copyright (c) 2025 Northbound System
// Author: Nicholas Skitch
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/dummy-forge/internal/config"
	"github.com/dummy-forge/internal/generator"
	"github.com/dummy-forge/internal/logger"
	"github.com/dummy-forge/internal/notify"
	"github.com/dummy-forge/internal/report"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("dummygen", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var o config.Overrides
	configPath := fs.String("config", "", "Path to config file (default: ./dummygen.yaml or ~/.dummygen/dummygen.yaml)")
	envFile := fs.String("env", ".env", "Path to a .env file with DUMMYGEN_* variables")
	fs.StringVar(&o.BaseName, "name", "", "Base file name (default 50MB)")
	fs.StringVar(&o.TargetSize, "size", "", "Target size in bytes or with a unit, e.g. 512KB, 50MB (default 50MB)")
	fs.StringVar(&o.OutputDir, "out", "", "Output directory (default: working directory)")
	fs.StringVar(&o.Formats, "formats", "", "Comma-separated formats: docx,pptx,xlsx,pdf,jpg (default: all)")
	fs.StringVar(&o.OnOversize, "on-oversize", "", "What to do when content exceeds the target: keep or truncate")
	fs.IntVar(&o.JPEGQuality, "quality", 0, "JPEG quality 1-100 (default 50)")
	fs.StringVar(&o.LogFile, "log-file", "", "Append log lines to this file")
	fs.BoolVar(&o.Notify, "notify", false, "Show a desktop notification when done")
	fs.StringVar(&o.Output, "o", "", "Summary format: table, json or yaml")
	fs.BoolVar(&o.Verbose, "v", false, "Verbose (debug) logging")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if err := config.LoadEnvFile(*envFile); err != nil {
		fmt.Fprintf(stderr, "❌ %v\n", err)
		return 1
	}
	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(stderr, "❌ Failed to load config: %v\n", err)
		return 1
	}
	config.ApplyCLIFlags(cfg, o)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "❌ Invalid configuration: %v\n", err)
		return 1
	}

	// Keep stdout clean for machine-readable summaries
	out := report.NewOutputterTo(cfg.Output, stdout)
	console := stdout
	if out.GetFormat() != report.OutputTable {
		console = stderr
	}
	log, err := logger.NewLoggerTo(console, cfg.LogFile)
	if err != nil {
		fmt.Fprintf(stderr, "❌ %v\n", err)
		return 1
	}
	defer log.Close()
	log.SetDebug(cfg.Verbose)
	logger.SetDefault(log)

	size, err := cfg.Size()
	if err != nil {
		log.Errorf("Invalid target size: %v", err)
		return 1
	}
	formats, err := cfg.FormatList()
	if err != nil {
		log.Errorf("Invalid formats: %v", err)
		return 1
	}
	opts, err := cfg.GeneratorOptions(log)
	if err != nil {
		log.Errorf("Invalid generator options: %v", err)
		return 1
	}

	gen, err := generator.NewGenerator(cfg.BaseName, size, opts)
	if err != nil {
		log.Errorf("Failed to create generator: %v", err)
		return 1
	}

	dir := cfg.OutputDir
	if dir == "" {
		dir = "."
	}
	fmt.Fprintf(console, "🌱 Generating %d file(s) of %s (%d bytes) in %s\n", len(formats), config.FormatSize(size), size, dir)

	results, runErr := gen.CreateAndWriteAll(formats, func(result generator.Result) {
		if result.Oversized {
			fmt.Fprintf(console, "⚠️  Created: %s (%d bytes, over target)\n", result.Path, result.FinalSize)
		} else {
			fmt.Fprintf(console, "✅ Created: %s\n", result.Path)
		}
	})

	notify.NewNotifier(cfg.Notify).RunFinished(results, runErr)

	if runErr != nil {
		log.Errorf("Generation failed: %v", runErr)
		return 1
	}

	if out.GetFormat() == report.OutputTable {
		fmt.Fprintf(stdout, "\n📊 Summary:\n")
	}
	if err := out.PrintResults(results); err != nil {
		log.Errorf("Failed to print summary: %v", err)
		return 1
	}
	return 0
}
