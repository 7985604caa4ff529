package inspect

import (
	"bytes"
	"fmt"
	"image/jpeg"
)

func validateJpg(content []byte) (string, error) {
	cfg, err := jpeg.DecodeConfig(bytes.NewReader(content))
	if err != nil {
		return "", fmt.Errorf("failed to decode JPEG: %w", err)
	}
	return fmt.Sprintf("%dx%d", cfg.Width, cfg.Height), nil
}
