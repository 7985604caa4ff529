// Copyright (c) 2025 Northbound System
// Author: Nicholas Skitch
package generator

import (
	"fmt"
	"strings"
)

// OversizePolicy decides what happens when encoded content is larger than the target size.
//
// PolicyKeep returns the oversized bytes untouched: the file stays a valid container but
// breaks the exact-size contract. PolicyTruncate cuts the bytes to the target length: the
// size is exact but trailing structures (ZIP central directory, PDF xref, JPEG EOI) are lost
// and the file will usually no longer open.
type OversizePolicy string

const (
	PolicyKeep     OversizePolicy = "keep"
	PolicyTruncate OversizePolicy = "truncate"
)

// ParsePolicy parses "keep" or "truncate". An empty string selects PolicyKeep.
func ParsePolicy(s string) (OversizePolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "keep", "keep-oversized":
		return PolicyKeep, nil
	case "truncate":
		return PolicyTruncate, nil
	default:
		return "", fmt.Errorf("%w: %q (want keep or truncate)", ErrInvalidPolicy, s)
	}
}

// Adjustment describes what Normalize did to reach the target size
type Adjustment struct {
	EncodedSize int64
	Padding     int64
	Truncated   int64
	Oversized   bool
	Warning     string
}

// Normalize makes data exactly target bytes long.
// Short input is copied into a zero-filled buffer of target length, so bytes
// [0, len(data)) are preserved and the tail is NUL padding. Long input is handled
// according to policy and the returned Adjustment carries a warning.
func Normalize(data []byte, target int64, policy OversizePolicy) ([]byte, Adjustment) {
	adj := Adjustment{EncodedSize: int64(len(data))}
	size := int64(len(data))

	switch {
	case size == target:
		return data, adj
	case size < target:
		result := make([]byte, target)
		copy(result, data)
		adj.Padding = target - size
		return result, adj
	}

	if policy == PolicyTruncate {
		adj.Truncated = size - target
		adj.Warning = fmt.Sprintf("content truncated from %d to %d bytes", size, target)
		result := make([]byte, target)
		copy(result, data)
		return result, adj
	}

	adj.Oversized = true
	adj.Warning = fmt.Sprintf("content is %d bytes, %d over the %d byte target; kept oversized to stay valid", size, size-target, target)
	return data, adj
}
