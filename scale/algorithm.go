package scale

import (
	"math"
)

// Algorithm is the resampling algorithm used when rescaling bitmaps.
type Algorithm int

const (
	// Nearest duplicates source pixels. At whole-number zoom each source
	// pixel maps onto an NxN block of device pixels with no fractional
	// remainder, so nearest-neighbor reproduces it exactly with sharp edges.
	Nearest Algorithm = iota

	// Linear interpolates between neighboring samples. Fewer neighbors
	// minimizes ringing when shrinking.
	Linear

	// Cubic interpolates over a wider neighborhood. Best quality for
	// non-integer magnification, trading mild blur for no distortion.
	Cubic
)

func (a Algorithm) String() string {
	switch a {
	case Nearest:
		return `nearest`
	case Linear:
		return `linear`
	case Cubic:
		return `cubic`
	default:
		return `unknown`
	}
}

// AlgorithmFor selects the resampling algorithm for a horizontal scaling
// factor: Nearest for whole-number zoom, Linear when shrinking, Cubic for
// fractional magnification.
func AlgorithmFor(factorX float64) Algorithm {
	percent := int(math.Round(factorX * 100))
	switch {
	case percent%100 == 0:
		return Nearest
	case percent < 100:
		return Linear
	default:
		return Cubic
	}
}
