package inspect

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/nguyenthenguyen/docx"
)

// validateDocx opens the document part and counts its paragraphs
func validateDocx(content []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", fmt.Errorf("failed to open DOCX: %w", err)
	}
	defer doc.Close()

	text := strings.TrimSpace(doc.Editable().GetContent())
	if text == "" {
		return "", fmt.Errorf("no document body in DOCX")
	}

	paragraphs := strings.Count(text, "<w:p>") + strings.Count(text, "<w:p ")
	return fmt.Sprintf("%d paragraphs", paragraphs), nil
}
