package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/dummy-forge/internal/generator"
	"github.com/dummy-forge/internal/inspect"
)

func sampleResults() []generator.Result {
	return []generator.Result{
		{Format: generator.FormatDOCX, Path: "out/50MB.docx", TargetSize: 1024, EncodedSize: 900, FinalSize: 1024, Padding: 124},
		{Format: generator.FormatPDF, Path: "out/50MB.pdf", TargetSize: 200, EncodedSize: 700, FinalSize: 700, Oversized: true,
			Warnings: []string{"pdf content is 700 bytes, larger than target 200"}},
	}
}

func TestNewOutputter(t *testing.T) {
	tests := []struct {
		name           string
		format         string
		expectedFormat OutputFormat
	}{
		{"json format", "json", OutputJSON},
		{"yaml format", "yaml", OutputYAML},
		{"table format", "table", OutputTable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := NewOutputterTo(tt.format, &bytes.Buffer{})
			if out.GetFormat() != tt.expectedFormat {
				t.Errorf("GetFormat() = %v, want %v", out.GetFormat(), tt.expectedFormat)
			}
			if out.writer == nil {
				t.Error("writer should not be nil")
			}
		})
	}
}

func TestOutputter_PrintResultsTable(t *testing.T) {
	var buf bytes.Buffer
	if err := NewOutputterTo("table", &buf).PrintResults(sampleResults()); err != nil {
		t.Fatalf("PrintResults failed: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"out/50MB.docx", "124", "oversized", "ok"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected %q in table:\n%s", want, out)
		}
	}
	if !strings.Contains(strings.ToUpper(out), "PADDING") {
		t.Errorf("Expected a Padding header:\n%s", out)
	}
}

func TestOutputter_PrintResultsJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := NewOutputterTo("json", &buf).PrintResults(sampleResults()); err != nil {
		t.Fatalf("PrintResults failed: %v", err)
	}

	var decoded []generator.Result
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("Output is not valid JSON: %v\n%s", err, buf.String())
	}
	if len(decoded) != 2 || !decoded[1].Oversized || decoded[0].Padding != 124 {
		t.Errorf("Unexpected decoded results %+v", decoded)
	}
	if !strings.Contains(buf.String(), "\n  {") {
		t.Errorf("Expected indented JSON, got:\n%s", buf.String())
	}
}

func TestOutputter_PrintReportsYAML(t *testing.T) {
	reports := []inspect.Report{
		{Path: "a.jpg", Format: generator.FormatJPG, Size: 1024, ContentSize: 600, Padding: 424, SignatureOK: true, Valid: true, Detail: "1x1"},
	}

	var buf bytes.Buffer
	if err := NewOutputterTo("yaml", &buf).PrintReports(reports); err != nil {
		t.Fatalf("PrintReports failed: %v", err)
	}

	var decoded []map[string]interface{}
	if err := yaml.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("Output is not valid YAML: %v", err)
	}
	if len(decoded) != 1 || decoded[0]["content_size"] != 600 || decoded[0]["valid"] != true {
		t.Errorf("Unexpected YAML %v", decoded)
	}
}

func TestOutputter_PrintReportsTableShowsError(t *testing.T) {
	reports := []inspect.Report{{Path: "bad.docx", Format: generator.FormatDOCX, Error: "failed to open DOCX"}}

	var buf bytes.Buffer
	if err := NewOutputterTo("table", &buf).PrintReports(reports); err != nil {
		t.Fatalf("PrintReports failed: %v", err)
	}
	if !strings.Contains(buf.String(), "failed to open DOCX") {
		t.Errorf("Expected the error in the detail column:\n%s", buf.String())
	}
}

func TestOutputter_UnknownFormat(t *testing.T) {
	if err := NewOutputterTo("xml", &bytes.Buffer{}).Print(sampleResults()); err == nil {
		t.Error("Expected an error for an unknown format")
	}
	if err := NewOutputterTo("table", &bytes.Buffer{}).Print(sampleResults()); err == nil {
		t.Error("Expected Print to reject table format")
	}
}
