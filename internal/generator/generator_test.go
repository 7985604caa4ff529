// Copyright (c) 2025 Northbound System
// Author: Nicholas Skitch
package generator

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

const (
	testSize1MB  = 1024 * 1024
	testSize10MB = 10 * 1024 * 1024
)

// captureLogger records warnings so tests can assert on size-policy outcomes
type captureLogger struct {
	infos    []string
	warnings []string
}

func (c *captureLogger) Printf(format string, v ...interface{}) {
	c.infos = append(c.infos, fmt.Sprintf(format, v...))
}

func (c *captureLogger) Warnf(format string, v ...interface{}) {
	c.warnings = append(c.warnings, fmt.Sprintf(format, v...))
}

func (c *captureLogger) Debugf(format string, v ...interface{}) {}

func newTestGenerator(t *testing.T, size int64, opts Options) (*Generator, *captureLogger) {
	t.Helper()
	log := &captureLogger{}
	if opts.Logger == nil {
		opts.Logger = log
	}
	g, err := NewGenerator("test_file", size, opts)
	if err != nil {
		t.Fatalf("NewGenerator failed: %v", err)
	}
	return g, log
}

func hasSignature(data []byte, f Format) bool {
	return bytes.HasPrefix(data, f.Signature())
}

func TestCreateDocx_ExactSize(t *testing.T) {
	g, _ := newTestGenerator(t, testSize1MB, Options{})

	data, err := g.CreateDocx()
	if err != nil {
		t.Fatalf("CreateDocx failed: %v", err)
	}
	if len(data) != testSize1MB {
		t.Errorf("Expected %d bytes, got %d", testSize1MB, len(data))
	}
	if data[0] != 0x50 || data[1] != 0x4B {
		t.Errorf("DOCX should start with PK, got % X", data[:2])
	}
}

func TestCreateJpg_SmallTarget(t *testing.T) {
	g, _ := newTestGenerator(t, 1024, Options{})

	data, err := g.CreateJpg()
	if err != nil {
		t.Fatalf("CreateJpg failed: %v", err)
	}
	if len(data) != 1024 {
		t.Errorf("Expected 1024 bytes, got %d", len(data))
	}
	if data[0] != 0xFF || data[1] != 0xD8 {
		t.Errorf("JPG should start with FF D8, got % X", data[:2])
	}
}

func TestCreatePdf_KeepPolicyLargeTarget(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping 10MB PDF in short mode")
	}
	g, log := newTestGenerator(t, testSize10MB, Options{Policy: PolicyKeep})

	data, err := g.CreatePdf()
	if err != nil {
		t.Fatalf("CreatePdf failed: %v", err)
	}
	if len(data) > testSize10MB {
		t.Errorf("PDF should not exceed %d bytes, got %d", testSize10MB, len(data))
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Errorf("PDF should start with %%PDF")
	}
	if len(log.warnings) != 0 {
		t.Errorf("Expected no warnings, got %v", log.warnings)
	}
}

func TestCreateDocx_ContentUniqueness(t *testing.T) {
	g, _ := newTestGenerator(t, testSize1MB, Options{})

	first, err := g.CreateDocx()
	if err != nil {
		t.Fatalf("CreateDocx failed: %v", err)
	}
	second, err := g.CreateDocx()
	if err != nil {
		t.Fatalf("CreateDocx failed: %v", err)
	}

	if len(first) != len(second) {
		t.Errorf("Expected equal lengths, got %d and %d", len(first), len(second))
	}
	if bytes.Equal(first, second) {
		t.Error("Two generations with the same parameters produced identical content")
	}
}

func TestCreate_AllFormatsUnique(t *testing.T) {
	g, _ := newTestGenerator(t, 256*1024, Options{})

	for _, f := range AllFormats() {
		first, err := g.Create(f)
		if err != nil {
			t.Fatalf("%s: Create failed: %v", f, err)
		}
		second, err := g.Create(f)
		if err != nil {
			t.Fatalf("%s: Create failed: %v", f, err)
		}
		if bytes.Equal(first, second) {
			t.Errorf("%s: expected different content between invocations", f)
		}
	}
}

func TestCreate_AllFormatsExactSize(t *testing.T) {
	g, log := newTestGenerator(t, testSize1MB, Options{})

	for _, f := range AllFormats() {
		data, result, err := g.Generate(f)
		if err != nil {
			t.Fatalf("%s: Generate failed: %v", f, err)
		}
		if len(data) != testSize1MB {
			t.Errorf("%s: expected %d bytes, got %d", f, testSize1MB, len(data))
		}
		if !hasSignature(data, f) {
			t.Errorf("%s: missing signature % X", f, f.Signature())
		}
		if result.EncodedSize+result.Padding != testSize1MB {
			t.Errorf("%s: encoded %d + padding %d != %d", f, result.EncodedSize, result.Padding, testSize1MB)
		}
		if result.EncodedSize > testSize1MB {
			t.Errorf("%s: encoded content %d exceeds target", f, result.EncodedSize)
		}
		for i, b := range data[result.EncodedSize:] {
			if b != 0 {
				t.Fatalf("%s: padding byte %d is %#x, want 0", f, int(result.EncodedSize)+i, b)
			}
		}
	}
	if len(log.warnings) != 0 {
		t.Errorf("Expected no warnings at 1MB, got %v", log.warnings)
	}
}

func TestCreate_DifferentTargetSizes(t *testing.T) {
	sizes := []int64{10 * 1024, 100 * 1024, testSize1MB}

	for _, size := range sizes {
		g, _ := newTestGenerator(t, size, Options{})

		jpg, err := g.CreateJpg()
		if err != nil {
			t.Fatalf("CreateJpg(%d) failed: %v", size, err)
		}
		if int64(len(jpg)) != size || !hasSignature(jpg, FormatJPG) {
			t.Errorf("JPG at %d: got %d bytes, signature ok=%v", size, len(jpg), hasSignature(jpg, FormatJPG))
		}

		if size < 100*1024 {
			continue
		}
		docx, err := g.CreateDocx()
		if err != nil {
			t.Fatalf("CreateDocx(%d) failed: %v", size, err)
		}
		if int64(len(docx)) != size || !hasSignature(docx, FormatDOCX) {
			t.Errorf("DOCX at %d: got %d bytes, signature ok=%v", size, len(docx), hasSignature(docx, FormatDOCX))
		}
	}
}

func TestCreateDocx_TruncateBelowMinimum(t *testing.T) {
	g, log := newTestGenerator(t, 200, Options{Policy: PolicyTruncate})

	data, result, err := g.Generate(FormatDOCX)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if len(data) != 200 {
		t.Errorf("Expected exactly 200 bytes, got %d", len(data))
	}
	if result.Truncated <= 0 {
		t.Errorf("Expected truncated bytes to be reported, got %d", result.Truncated)
	}
	if len(result.Warnings) != 1 || len(log.warnings) != 1 {
		t.Errorf("Expected one warning in result and log, got %v / %v", result.Warnings, log.warnings)
	}
	if !hasSignature(data, FormatDOCX) {
		t.Error("Truncated DOCX should still start with PK")
	}
}

func TestCreateDocx_KeepBelowMinimum(t *testing.T) {
	g, log := newTestGenerator(t, 200, Options{Policy: PolicyKeep})

	data, result, err := g.Generate(FormatDOCX)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if len(data) <= 200 {
		t.Errorf("Expected oversized output to be kept, got %d bytes", len(data))
	}
	if !result.Oversized {
		t.Error("Expected result to be marked oversized")
	}
	if len(log.warnings) != 1 {
		t.Errorf("Expected one warning, got %v", log.warnings)
	}
}

func TestCreateAndWriteDocx_KeepsOversizedFile(t *testing.T) {
	dir := t.TempDir()
	g, log := newTestGenerator(t, 200, Options{OutputDir: dir, Policy: PolicyKeep})

	result, err := g.CreateAndWriteDocx()
	if err != nil {
		t.Fatalf("CreateAndWriteDocx failed: %v", err)
	}

	info, err := os.Stat(filepath.Join(dir, "test_file.docx"))
	if err != nil {
		t.Fatalf("Expected the oversized file on disk: %v", err)
	}
	if info.Size() <= 200 || result.FinalSize != info.Size() {
		t.Errorf("Expected an oversized file, got %d bytes on disk (result %d)", info.Size(), result.FinalSize)
	}
	if !result.Oversized {
		t.Error("Expected result to be marked oversized")
	}
	if len(result.Warnings) != 1 || len(log.warnings) != 1 {
		t.Errorf("Expected one warning in result and log, got %v / %v", result.Warnings, log.warnings)
	}
}

func TestNewGenerator_Validation(t *testing.T) {
	tests := []struct {
		name     string
		baseName string
		size     int64
		opts     Options
		wantErr  error
	}{
		{"empty base name", "", 10, Options{}, ErrEmptyBaseName},
		{"negative size", "x", -1, Options{}, ErrInvalidTargetSize},
		{"bad policy", "x", 10, Options{Policy: "shrink"}, ErrInvalidPolicy},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewGenerator(tt.baseName, tt.size, tt.opts)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Expected %v, got %v", tt.wantErr, err)
			}
		})
	}

	if _, err := NewGenerator("x", 10, Options{JPEGQuality: 101}); err == nil {
		t.Error("Expected error for JPEG quality 101")
	}

	g, err := NewGenerator("x", 0, Options{Logger: &captureLogger{}})
	if err != nil {
		t.Fatalf("NewGenerator failed: %v", err)
	}
	if g.Policy() != PolicyKeep {
		t.Errorf("Expected default policy keep, got %s", g.Policy())
	}
	if g.quality != defaultJPEGQuality {
		t.Errorf("Expected default quality %d, got %d", defaultJPEGQuality, g.quality)
	}
}

func TestSetTargetSize(t *testing.T) {
	g, _ := newTestGenerator(t, 4096, Options{})

	if err := g.SetTargetSize(-5); !errors.Is(err, ErrInvalidTargetSize) {
		t.Errorf("Expected ErrInvalidTargetSize, got %v", err)
	}
	if g.TargetSize() != 4096 {
		t.Errorf("Failed update must not change the target, got %d", g.TargetSize())
	}

	if err := g.SetTargetSize(8192); err != nil {
		t.Fatalf("SetTargetSize failed: %v", err)
	}
	data, err := g.CreateJpg()
	if err != nil {
		t.Fatalf("CreateJpg failed: %v", err)
	}
	if len(data) != 8192 {
		t.Errorf("Expected new target 8192, got %d", len(data))
	}
}

func TestEncode_UnsupportedFormat(t *testing.T) {
	g, _ := newTestGenerator(t, 1024, Options{})

	if _, err := g.Create(Format("bmp")); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestCreateAndWriteAll(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	const size = 64 * 1024
	g, log := newTestGenerator(t, size, Options{OutputDir: dir})

	var seen []Format
	results, err := g.CreateAndWriteAll(nil, func(r Result) { seen = append(seen, r.Format) })
	if err != nil {
		t.Fatalf("CreateAndWriteAll failed: %v", err)
	}
	if !reflect.DeepEqual(seen, AllFormats()) {
		t.Errorf("Expected a callback per format in order, got %v", seen)
	}
	if len(results) != len(AllFormats()) {
		t.Fatalf("Expected %d results, got %d", len(AllFormats()), len(results))
	}

	for i, result := range results {
		want := filepath.Join(dir, "test_file"+AllFormats()[i].Extension())
		if result.Path != want {
			t.Errorf("Expected path %s, got %s", want, result.Path)
		}
		info, err := os.Stat(result.Path)
		if err != nil {
			t.Fatalf("Stat failed: %v", err)
		}
		if info.Size() != size || result.FinalSize != size {
			t.Errorf("%s: expected %d bytes on disk, got %d (result %d)", result.Format, size, info.Size(), result.FinalSize)
		}
	}

	if len(log.infos) != len(results) {
		t.Errorf("Expected one confirmation line per file, got %v", log.infos)
	}
}

func TestCreateAndWriteAll_StopsAtFirstError(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	g, _ := newTestGenerator(t, 4096, Options{OutputDir: blocker})

	calls := 0
	results, err := g.CreateAndWriteAll([]Format{FormatJPG, FormatPDF}, func(Result) { calls++ })
	if err == nil {
		t.Fatal("Expected an error when the output directory is a file")
	}
	if len(results) != 0 || calls != 0 {
		t.Errorf("Expected no results before the failure, got %d results and %d callbacks", len(results), calls)
	}
}

func TestCreateAndWriteDocx_OutputDirIsFile(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	g, _ := newTestGenerator(t, 4096, Options{OutputDir: blocker})

	if _, err := g.CreateAndWriteDocx(); err == nil {
		t.Error("Expected an error when the output directory is a file")
	}
}
