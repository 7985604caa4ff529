package inspect

import (
	"archive/zip"
	"bytes"
	"fmt"
	"path"
	"strings"
)

// validatePptx checks the package for a presentation part and counts slides
func validatePptx(content []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", fmt.Errorf("failed to open PPTX: %w", err)
	}

	hasPresentation := false
	slides := 0
	for _, f := range zr.File {
		switch {
		case f.Name == "ppt/presentation.xml":
			hasPresentation = true
		case path.Dir(f.Name) == "ppt/slides" && strings.HasSuffix(f.Name, ".xml"):
			slides++
		}
	}

	if !hasPresentation {
		return "", fmt.Errorf("no ppt/presentation.xml in package")
	}
	if slides == 0 {
		return "", fmt.Errorf("presentation has no slides")
	}
	return fmt.Sprintf("%d slides", slides), nil
}
