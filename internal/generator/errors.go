package generator

import "errors"

var (
	ErrInvalidTargetSize = errors.New("target size must be zero or positive")
	ErrEmptyBaseName     = errors.New("base name must not be empty")
	ErrUnsupportedFormat = errors.New("unsupported format")
	ErrInvalidPolicy     = errors.New("invalid oversize policy")
)
