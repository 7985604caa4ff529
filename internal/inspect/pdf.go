// Copyright (c) 2025 Northbound System
// Author: Nicholas Skitch
package inspect

import (
	"fmt"
	"strings"

	"github.com/gen2brain/go-fitz"
)

// validatePDF opens the document with go-fitz (MuPDF) and extracts page text
// API reference: https://pkg.go.dev/github.com/gen2brain/go-fitz
func validatePDF(content []byte) (string, error) {
	doc, err := fitz.NewFromMemory(content)
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}
	defer doc.Close()

	numPages := doc.NumPage()
	if numPages == 0 {
		return "", fmt.Errorf("PDF has no pages")
	}

	chars := 0
	for i := 0; i < numPages; i++ {
		pageText, err := doc.Text(i)
		if err != nil {
			return "", fmt.Errorf("failed to extract text from page %d: %w", i+1, err)
		}
		chars += len(strings.TrimSpace(pageText))
	}
	return fmt.Sprintf("%d pages, %d characters", numPages, chars), nil
}
