// Copyright (c) 2025 Northbound System
// Author: Nicholas Skitch
package generator

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"
)

const (
	pdfItemBytes   = 30 // "PDF_Chunk_<n>_<token>_FillerText_"
	pdfItemDivisor = 20000
	pdfMinItems    = 20
	pdfMaxItems    = 1000
	pdfLineWidth   = 100 // characters per line
	pdfFontSize    = 9
	pdfLineHeight  = 11
	pdfMargin      = 36
	pdfMaxShrink   = 2 // raw estimate undercounts, the writer never shrinks
	pdfAttempts    = 12
	pdfSafety      = 0.90
)

// CreatePdf returns a PDF document normalized to the target size
func (g *Generator) CreatePdf() ([]byte, error) {
	return g.Create(FormatPDF)
}

// encodePdf writes paragraphs of unique filler text, wrapped and paginated.
// Content streams are left uncompressed so the encoded size tracks the text.
func (g *Generator) encodePdf(target int64) ([]byte, error) {
	items := int(clamp(target/pdfItemDivisor, pdfMinItems, pdfMaxItems))
	plan := newFillPlan(target, int64(items*pdfItemBytes), pdfMaxShrink, pdfAttempts, pdfSafety)
	created := time.Now()

	next := func(i int) string {
		var sb strings.Builder
		sb.Grow(items * pdfItemBytes)
		for j := 0; j < items; j++ {
			fmt.Fprintf(&sb, "PDF_Chunk_%d_%s_FillerText_", i*items+j, token(6))
		}
		return sb.String()
	}
	encode := func(paragraphs []string) ([]byte, error) {
		return renderPDF(g.baseName, created, paragraphs)
	}

	data, kept, err := fitUnits(target, plan, next, encode)
	if err != nil {
		return nil, err
	}
	g.log.Debugf("pdf: %d paragraphs of %d chunks, %d bytes encoded", kept, items, len(data))
	return data, nil
}

// renderPDF lays the paragraphs out as Helvetica text lines on A4 pages
func renderPDF(title string, created time.Time, paragraphs []string) ([]byte, error) {
	pdf := fpdf.New("P", "pt", "A4", "")
	pdf.SetCompression(false)
	pdf.SetTitle(title, false)
	pdf.SetProducer("dummy-forge", false)
	pdf.SetCreationDate(created)
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.SetAutoPageBreak(true, pdfMargin)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "", pdfFontSize)

	for i, p := range paragraphs {
		if i > 0 {
			pdf.Ln(pdfLineHeight)
		}
		for _, line := range splitLines(p, pdfLineWidth) {
			pdf.Cell(0, pdfLineHeight, line)
			pdf.Ln(pdfLineHeight)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to write PDF: %w", err)
	}
	return buf.Bytes(), nil
}

// splitLines cuts text into fixed-width lines; filler text has no spaces to wrap on
func splitLines(text string, width int) []string {
	if len(text) == 0 {
		return nil
	}

	var lines []string
	start := 0
	for start < len(text) {
		end := start + width
		if end > len(text) {
			end = len(text)
		}
		lines = append(lines, text[start:end])
		start = end
	}
	return lines
}
