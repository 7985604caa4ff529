// Copyright (c) 2025 Northbound System
// Author: Nicholas Skitch
package inspect

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dummy-forge/internal/generator"
	"github.com/dummy-forge/internal/logger"
)

// Report is the result of inspecting one generated file
type Report struct {
	Path        string           `json:"path" yaml:"path"`
	Format      generator.Format `json:"format,omitempty" yaml:"format,omitempty"`
	Size        int64            `json:"size" yaml:"size"`
	ContentSize int64            `json:"content_size" yaml:"content_size"`
	Padding     int64            `json:"padding" yaml:"padding"`
	SignatureOK bool             `json:"signature_ok" yaml:"signature_ok"`
	Valid       bool             `json:"valid" yaml:"valid"`
	Detail      string           `json:"detail,omitempty" yaml:"detail,omitempty"`
	Error       string           `json:"error,omitempty" yaml:"error,omitempty"`
}

// validator opens the unpadded content with the format's reader and describes what it found
type validator func(content []byte) (string, error)

var validators = map[generator.Format]validator{
	generator.FormatDOCX: validateDocx,
	generator.FormatXLSX: validateXlsx,
	generator.FormatPPTX: validatePptx,
	generator.FormatPDF:  validatePDF,
	generator.FormatJPG:  validateJpg,
}

// File reads and inspects the file at path.
// The error is non-nil only when the file cannot be read; format problems land in the report.
func File(path string) (Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Report{Path: path, Error: err.Error()}, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return Bytes(path, data), nil
}

// Bytes inspects data as if it had been read from a file called name
func Bytes(name string, data []byte) Report {
	r := Report{
		Path:        name,
		Size:        int64(len(data)),
		ContentSize: int64(len(data)),
	}

	format, err := generator.FormatFromPath(name)
	if err != nil {
		r.Error = err.Error()
		return r
	}
	r.Format = format
	r.SignatureOK = bytes.HasPrefix(data, format.Signature())
	if !r.SignatureOK {
		r.Error = fmt.Sprintf("missing %s signature", format)
		return r
	}

	end := contentEnd(format, data)
	r.ContentSize = end
	r.Padding = r.Size - end
	if dirty := nonZero(data[end:]); dirty > 0 {
		r.Detail = fmt.Sprintf("%d non-NUL bytes after end of content; ", dirty)
	}

	detail, err := validators[format](data[:end])
	if err != nil {
		r.Error = err.Error()
	} else {
		r.Valid = true
		r.Detail += detail
	}

	logger.Debugf("inspect %s: %d content bytes, %d padding, valid=%v", name, r.ContentSize, r.Padding, r.Valid)
	return r
}

// Expand turns a mix of files and directories into the list of files to inspect.
// Directories contribute their supported, non-temporary entries (not recursive).
func Expand(args []string) ([]string, error) {
	var paths []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			paths = append(paths, arg)
			continue
		}

		entries, err := os.ReadDir(arg)
		if err != nil {
			return nil, fmt.Errorf("failed to list %s: %w", arg, err)
		}
		for _, entry := range entries {
			path := filepath.Join(arg, entry.Name())
			if entry.IsDir() || !IsSupportedFile(path) || IsTemporaryFile(path) {
				continue
			}
			paths = append(paths, path)
		}
	}
	return paths, nil
}

// IsSupportedFile checks if a file extension is one the generator produces
func IsSupportedFile(path string) bool {
	_, err := generator.FormatFromPath(path)
	return err == nil
}

// IsTemporaryFile checks if a file is an editor or OS temporary file (e.g., ~$doc.docx)
func IsTemporaryFile(path string) bool {
	base := filepath.Base(path)
	return strings.HasPrefix(base, "~$") ||
		strings.HasPrefix(base, "._") ||
		strings.HasSuffix(base, ".tmp")
}
