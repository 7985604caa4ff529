// Copyright (c) 2025 Northbound System
// Author: Nicholas Skitch
package generator

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format identifies one of the container formats the generator can produce
type Format string

const (
	FormatDOCX Format = "docx"
	FormatXLSX Format = "xlsx"
	FormatPPTX Format = "pptx"
	FormatPDF  Format = "pdf"
	FormatJPG  Format = "jpg"
)

type formatInfo struct {
	extension string
	mimeType  string
	signature []byte
}

var formats = map[Format]formatInfo{
	FormatDOCX: {".docx", "application/vnd.openxmlformats-officedocument.wordprocessingml.document", []byte{0x50, 0x4B}},
	FormatXLSX: {".xlsx", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", []byte{0x50, 0x4B}},
	FormatPPTX: {".pptx", "application/vnd.openxmlformats-officedocument.presentationml.presentation", []byte{0x50, 0x4B}},
	FormatPDF:  {".pdf", "application/pdf", []byte("%PDF")},
	FormatJPG:  {".jpg", "image/jpeg", []byte{0xFF, 0xD8}},
}

// AllFormats returns every supported format in the order the CLI writes them
func AllFormats() []Format {
	return []Format{FormatDOCX, FormatPPTX, FormatXLSX, FormatPDF, FormatJPG}
}

// ParseFormat accepts a format name or extension ("docx", ".DOCX", "jpeg")
func ParseFormat(s string) (Format, error) {
	name := strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), ".")
	if name == "jpeg" {
		name = string(FormatJPG)
	}
	f := Format(name)
	if _, ok := formats[f]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
	}
	return f, nil
}

// ParseFormats parses a list of format names, dropping blanks and duplicates.
// An empty list means every format.
func ParseFormats(names []string) ([]Format, error) {
	var out []Format
	seen := make(map[Format]bool)
	for _, name := range names {
		for _, part := range strings.Split(name, ",") {
			if strings.TrimSpace(part) == "" {
				continue
			}
			f, err := ParseFormat(part)
			if err != nil {
				return nil, err
			}
			if !seen[f] {
				seen[f] = true
				out = append(out, f)
			}
		}
	}
	if len(out) == 0 {
		return AllFormats(), nil
	}
	return out, nil
}

// FormatFromPath routes a file path to its format based on the extension
func FormatFromPath(path string) (Format, error) {
	return ParseFormat(filepath.Ext(path))
}

// Extension returns the file extension including the leading dot
func (f Format) Extension() string {
	return formats[f].extension
}

// MIMEType returns the media type of the format
func (f Format) MIMEType() string {
	return formats[f].mimeType
}

// Signature returns the leading magic bytes every encoded file of this format starts with
func (f Format) Signature() []byte {
	sig := formats[f].signature
	out := make([]byte, len(sig))
	copy(out, sig)
	return out
}

// Valid reports whether f is a supported format
func (f Format) Valid() bool {
	_, ok := formats[f]
	return ok
}

func (f Format) String() string {
	return string(f)
}
