package config

import (
	"errors"
	"fmt"
	"strings"

	units "github.com/docker/go-units"
)

var ErrInvalidSize = errors.New("invalid size")

// ParseSize parses a byte count such as "1048576", "512KB", "1.5MiB" or "50mb".
// Units are binary: "50MB" is 50*1024*1024 bytes.
func ParseSize(s string) (int64, error) {
	n, err := units.RAMInBytes(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidSize, s)
	}
	if n < 0 {
		return 0, fmt.Errorf("%w: %q overflows", ErrInvalidSize, s)
	}
	return n, nil
}

// FormatSize renders n with binary units, e.g. "50MiB" or "1.5MiB"
func FormatSize(n int64) string {
	return units.BytesSize(float64(n))
}
