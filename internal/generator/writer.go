package generator

import (
	"fmt"
	"os"
)

// WriteFile writes data to path and returns the size of the file on disk
func (g *Generator) WriteFile(path string, data []byte) (int64, error) {
	if err := os.WriteFile(path, data, 0644); err != nil {
		return 0, fmt.Errorf("failed to write %s: %w", path, err)
	}

	info, err := os.Stat(path)
	if err != nil {
		return 0, fmt.Errorf("failed to stat %s: %w", path, err)
	}

	g.log.Printf("%s: %d bytes", path, info.Size())
	return info.Size(), nil
}
