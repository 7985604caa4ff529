package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"gopkg.in/yaml.v3"

	"github.com/dummy-forge/internal/generator"
	"github.com/dummy-forge/internal/inspect"
)

// OutputFormat represents the output format
type OutputFormat string

const (
	OutputTable OutputFormat = "table"
	OutputJSON  OutputFormat = "json"
	OutputYAML  OutputFormat = "yaml"
)

// Outputter handles formatted output of generation results and inspection reports
type Outputter struct {
	format OutputFormat
	writer io.Writer
}

// NewOutputterTo creates an outputter writing to w
func NewOutputterTo(format string, w io.Writer) *Outputter {
	return &Outputter{
		format: OutputFormat(format),
		writer: w,
	}
}

// GetFormat returns the output format
func (o *Outputter) GetFormat() OutputFormat {
	return o.format
}

// Print outputs data as json or yaml
func (o *Outputter) Print(data interface{}) error {
	switch o.format {
	case OutputJSON:
		return o.printJSON(data)
	case OutputYAML:
		return o.printYAML(data)
	case OutputTable:
		return fmt.Errorf("table format requires custom formatting")
	default:
		return fmt.Errorf("unknown output format: %s", o.format)
	}
}

// PrintResults prints one row per generated file
func (o *Outputter) PrintResults(results []generator.Result) error {
	if o.format != OutputTable {
		return o.Print(results)
	}

	rows := make([][]string, 0, len(results))
	for _, r := range results {
		rows = append(rows, []string{
			string(r.Format),
			r.Path,
			strconv.FormatInt(r.TargetSize, 10),
			strconv.FormatInt(r.EncodedSize, 10),
			strconv.FormatInt(r.Padding, 10),
			strconv.FormatInt(r.FinalSize, 10),
			resultStatus(r),
		})
	}
	return o.PrintTable([]string{"Format", "Path", "Target", "Content", "Padding", "Final", "Status"}, rows)
}

// PrintReports prints one row per inspected file
func (o *Outputter) PrintReports(reports []inspect.Report) error {
	if o.format != OutputTable {
		return o.Print(reports)
	}

	rows := make([][]string, 0, len(reports))
	for _, r := range reports {
		detail := r.Detail
		if r.Error != "" {
			detail = r.Error
		}
		rows = append(rows, []string{
			r.Path,
			string(r.Format),
			strconv.FormatInt(r.Size, 10),
			strconv.FormatInt(r.ContentSize, 10),
			strconv.FormatInt(r.Padding, 10),
			strconv.FormatBool(r.Valid),
			detail,
		})
	}
	return o.PrintTable([]string{"Path", "Format", "Size", "Content", "Padding", "Valid", "Detail"}, rows)
}

// PrintTable prints data as a table
func (o *Outputter) PrintTable(headers []string, rows [][]string) error {
	table := tablewriter.NewWriter(o.writer)

	// Convert []string to []any for Header
	headerAny := make([]any, len(headers))
	for i, h := range headers {
		headerAny[i] = h
	}
	table.Header(headerAny...)

	for _, row := range rows {
		if err := table.Append(row); err != nil {
			return fmt.Errorf("failed to append row: %w", err)
		}
	}
	return table.Render()
}

func resultStatus(r generator.Result) string {
	switch {
	case r.Oversized:
		return "oversized"
	case r.Truncated > 0:
		return "truncated"
	default:
		return "ok"
	}
}

// printJSON outputs data as JSON
func (o *Outputter) printJSON(data interface{}) error {
	encoder := json.NewEncoder(o.writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

// printYAML outputs data as YAML
func (o *Outputter) printYAML(data interface{}) error {
	encoder := yaml.NewEncoder(o.writer)
	encoder.SetIndent(2)
	defer encoder.Close()
	return encoder.Encode(data)
}
