// Copyright (c) 2025 Northbound System
// Author: Nicholas Skitch
package generator

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dummy-forge/internal/logger"
)

// Logger is the subset of the logger the generator reports through
type Logger interface {
	Printf(format string, v ...interface{})
	Warnf(format string, v ...interface{})
	Debugf(format string, v ...interface{})
}

// Options tunes a Generator. The zero value writes to the working directory,
// keeps oversized content, encodes JPEGs at quality 50 and logs to the default logger.
type Options struct {
	OutputDir   string
	Policy      OversizePolicy
	JPEGQuality int
	Logger      Logger
}

// Generator produces dummy files of an exact byte size.
// It is not safe for concurrent use; distinct generators share no state.
type Generator struct {
	baseName   string
	targetSize int64
	outputDir  string
	policy     OversizePolicy
	quality    int
	log        Logger
}

// Result describes one generated artifact
type Result struct {
	Format      Format   `json:"format" yaml:"format"`
	Path        string   `json:"path,omitempty" yaml:"path,omitempty"`
	TargetSize  int64    `json:"target_size" yaml:"target_size"`
	EncodedSize int64    `json:"encoded_size" yaml:"encoded_size"`
	FinalSize   int64    `json:"final_size" yaml:"final_size"`
	Padding     int64    `json:"padding" yaml:"padding"`
	Truncated   int64    `json:"truncated,omitempty" yaml:"truncated,omitempty"`
	Oversized   bool     `json:"oversized,omitempty" yaml:"oversized,omitempty"`
	Warnings    []string `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

// NewGenerator creates a generator for files named baseName of targetSize bytes
func NewGenerator(baseName string, targetSize int64, opts Options) (*Generator, error) {
	if baseName == "" {
		return nil, ErrEmptyBaseName
	}
	if targetSize < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidTargetSize, targetSize)
	}

	policy := opts.Policy
	if policy == "" {
		policy = PolicyKeep
	}
	if policy != PolicyKeep && policy != PolicyTruncate {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPolicy, policy)
	}

	quality := opts.JPEGQuality
	if quality == 0 {
		quality = defaultJPEGQuality
	}
	if quality < 1 || quality > 100 {
		return nil, fmt.Errorf("jpeg quality must be between 1 and 100, got %d", quality)
	}

	log := opts.Logger
	if log == nil {
		log = logger.GetDefault()
	}

	return &Generator{
		baseName:   baseName,
		targetSize: targetSize,
		outputDir:  opts.OutputDir,
		policy:     policy,
		quality:    quality,
		log:        log,
	}, nil
}

// BaseName returns the file name every output path is built from
func (g *Generator) BaseName() string {
	return g.baseName
}

// TargetSize returns the byte size subsequent generations aim for
func (g *Generator) TargetSize() int64 {
	return g.targetSize
}

// SetTargetSize redefines the size of subsequent generations
func (g *Generator) SetTargetSize(size int64) error {
	if size < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidTargetSize, size)
	}
	g.targetSize = size
	return nil
}

// Policy returns how oversized content is handled
func (g *Generator) Policy() OversizePolicy {
	return g.policy
}

// Path returns <outputDir>/<baseName><ext> for the format
func (g *Generator) Path(f Format) string {
	return filepath.Join(g.outputDir, g.baseName+f.Extension())
}

// Encode synthesizes filler content for the format and returns the encoder
// output before any size normalization
func (g *Generator) Encode(f Format) ([]byte, error) {
	target := g.targetSize
	switch f {
	case FormatDOCX:
		return g.encodeDocx(target)
	case FormatXLSX:
		return g.encodeXlsx(target)
	case FormatPPTX:
		return g.encodePptx(target)
	case FormatPDF:
		return g.encodePdf(target)
	case FormatJPG:
		return g.encodeJpg(target)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}

// Generate encodes the format and normalizes it to the target size
func (g *Generator) Generate(f Format) ([]byte, Result, error) {
	encoded, err := g.Encode(f)
	if err != nil {
		return nil, Result{}, fmt.Errorf("%s: %w", f, err)
	}

	data, adj := Normalize(encoded, g.targetSize, g.policy)
	result := Result{
		Format:      f,
		TargetSize:  g.targetSize,
		EncodedSize: adj.EncodedSize,
		FinalSize:   int64(len(data)),
		Padding:     adj.Padding,
		Truncated:   adj.Truncated,
		Oversized:   adj.Oversized,
	}
	if adj.Warning != "" {
		g.log.Warnf("%s: %s", f, adj.Warning)
		result.Warnings = append(result.Warnings, adj.Warning)
	}
	return data, result, nil
}

// Create returns the format's bytes normalized to the target size
func (g *Generator) Create(f Format) ([]byte, error) {
	data, _, err := g.Generate(f)
	return data, err
}

// CreateAndWrite generates the format and writes it to Path(f).
// Under PolicyKeep an oversized result is still written and reported as a warning.
func (g *Generator) CreateAndWrite(f Format) (Result, error) {
	data, result, err := g.Generate(f)
	if err != nil {
		return result, err
	}

	if g.outputDir != "" {
		if err := os.MkdirAll(g.outputDir, 0755); err != nil {
			return result, fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	path := g.Path(f)
	written, err := g.WriteFile(path, data)
	if err != nil {
		return result, err
	}
	result.Path = path
	result.FinalSize = written
	return result, nil
}

// CreateAndWriteAll writes each format in order and stops at the first error,
// returning the results written so far. No formats means every format.
// onWritten, when set, sees each result as soon as its file is on disk.
func (g *Generator) CreateAndWriteAll(formats []Format, onWritten func(Result)) ([]Result, error) {
	if len(formats) == 0 {
		formats = AllFormats()
	}
	results := make([]Result, 0, len(formats))
	for _, f := range formats {
		result, err := g.CreateAndWrite(f)
		if err != nil {
			return results, err
		}
		results = append(results, result)
		if onWritten != nil {
			onWritten(result)
		}
	}
	return results, nil
}

func (g *Generator) CreateAndWriteDocx() (Result, error) { return g.CreateAndWrite(FormatDOCX) }
func (g *Generator) CreateAndWriteXlsx() (Result, error) { return g.CreateAndWrite(FormatXLSX) }
func (g *Generator) CreateAndWritePptx() (Result, error) { return g.CreateAndWrite(FormatPPTX) }
func (g *Generator) CreateAndWritePdf() (Result, error)  { return g.CreateAndWrite(FormatPDF) }
func (g *Generator) CreateAndWriteJpg() (Result, error)  { return g.CreateAndWrite(FormatJPG) }
