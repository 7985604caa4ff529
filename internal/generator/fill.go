// Copyright (c) 2025 Northbound System
// Author: Nicholas Skitch
package generator

import (
	"math"
	"strings"

	"github.com/google/uuid"
)

// deflateShrink bounds how far zip deflate can shrink the filler text;
// the random tokens keep real ratios well under it
const deflateShrink = 16

// fillPlan bounds how much content a synthesizer adds and how often it re-measures
type fillPlan struct {
	maxUnits   int
	firstCount int
	attempts   int
	safety     float64
}

// newFillPlan sizes a plan for units of about unitBytes raw bytes. maxUnits leaves
// room for encoders that deflate the raw text by up to maxShrink times; the first
// attempt assumes no shrinking at all and lands well under target.
func newFillPlan(target, unitBytes, maxShrink int64, attempts int, safety float64) fillPlan {
	unitBytes = max(unitBytes, 1)
	maxShrink = max(maxShrink, 1)
	maxUnits := int(min(target*maxShrink/unitBytes+1, math.MaxInt32))
	first := int(clamp(target/(2*unitBytes), 1, int64(maxUnits)))
	return fillPlan{
		maxUnits:   maxUnits,
		firstCount: first,
		attempts:   max(attempts, 1),
		safety:     safety,
	}
}

// fitUnits searches for the number of units whose encoding lands between the safety
// fraction of target and target. Each attempt encodes a prefix of the units; the next
// count is extrapolated from the last attempt that fit, and an attempt above target
// becomes an upper bound. The search stops at the threshold, at maxUnits or when
// the attempts run out, keeping the largest encoding that fit. At least one unit is
// always kept, so targets below the format's minimal output come back oversized.
//
// It returns the encoding of the kept units and how many were kept.
func fitUnits[T any](target int64, plan fillPlan, next func(i int) T, encode func([]T) ([]byte, error)) ([]byte, int, error) {
	threshold := int64(float64(target) * plan.safety)
	aim := threshold + (target-threshold)/2

	var units []T
	grow := func(n int) {
		for len(units) < n {
			units = append(units, next(len(units)))
		}
	}

	fits, over := 0, plan.maxUnits+1
	var last []byte
	n := plan.firstCount
	for try := 0; try < plan.attempts; try++ {
		grow(n)
		data, err := encode(units[:n])
		if err != nil {
			return nil, 0, err
		}
		if int64(len(data)) > target {
			over = n
		} else {
			fits, last = n, data
			if int64(len(data)) >= threshold || n == plan.maxUnits {
				break
			}
		}

		n = nextCount(fits, int64(len(last)), over, plan.maxUnits, aim)
		if n <= fits || n >= over {
			break
		}
	}

	if fits > 0 {
		return last, fits, nil
	}
	grow(1)
	data, err := encode(units[:1])
	if err != nil {
		return nil, 0, err
	}
	return data, 1, nil
}

// nextCount extrapolates the unit count expected to encode to aim bytes.
// With nothing fitting yet it halves the overshooting count.
func nextCount(fits int, fitSize int64, over, maxUnits int, aim int64) int {
	if fits == 0 || fitSize == 0 {
		return over / 2
	}
	est := max(int64(fits)*aim/fitSize, int64(fits)+1)
	if est < int64(over) {
		return int(est)
	}
	if over > maxUnits {
		return maxUnits
	}
	return (fits + over) / 2
}

// token returns n characters of a fresh random UUID
func token(n int) string {
	s := strings.ReplaceAll(uuid.New().String(), "-", "")
	if n > len(s) {
		n = len(s)
	}
	return s[:n]
}

func clamp(value, minVal, maxVal int64) int64 {
	if value < minVal {
		return minVal
	}
	if value > maxVal {
		return maxVal
	}
	return value
}
