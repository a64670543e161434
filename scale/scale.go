// Package scale models proportional scale factors along one or two axes.
//
// Scales are immutable values. The classification helpers (unscaled, integer)
// are written once against the Dimensioned interface and shared by Scale1D and
// Scale2D.
package scale

import (
	"math"

	"golang.org/x/exp/constraints"
	"gonum.org/v1/gonum/floats/scalar"
)

// DefaultTolerance is the band used by callers that have no tolerance of their own.
const DefaultTolerance = 0.01

// Dimensioned is any scale that can list its per-axis multipliers.
type Dimensioned[D constraints.Float] interface {
	Dimensions() []D
}

// IsUnscaled reports whether every dimension of s is within tolerance of 1.
//
// Arguments:
//   - s: The scale to classify.
//   - tolerance: Maximum allowed distance from 1, inclusive.
//
// Returns:
//   - bool: True if no dimension is further than tolerance from 1.
func IsUnscaled[D constraints.Float](s Dimensioned[D], tolerance D) bool {
	for _, d := range s.Dimensions() {
		if !withinTolerance(d, 1, tolerance) {
			return false
		}
	}
	return true
}

// IsInteger reports whether every dimension of s is within tolerance of its
// nearest integer.
//
// Arguments:
//   - s: The scale to classify.
//   - tolerance: Maximum allowed distance from the rounded value, inclusive.
//
// Returns:
//   - bool: True if every dimension is a whole multiple within tolerance.
func IsInteger[D constraints.Float](s Dimensioned[D], tolerance D) bool {
	for _, d := range s.Dimensions() {
		if !withinTolerance(d, D(math.Round(float64(d))), tolerance) {
			return false
		}
	}
	return true
}

// withinTolerance reports whether |a-b| <= tolerance.
func withinTolerance[D constraints.Float](a, b, tolerance D) bool {
	return scalar.EqualWithinAbs(float64(a), float64(b), float64(tolerance))
}
