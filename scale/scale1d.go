package scale

import "golang.org/x/exp/constraints"

// Scale1D is a scale along a single axis.
//
// To scale a two-dimensional value by the same amount on both axes use
// Proportional2D or From1D instead.
type Scale1D[D constraints.Float] struct {
	X D `json:"x" yaml:"x"`
}

// Proportional1D returns a one-dimensional scale of v.
func Proportional1D[D constraints.Float](v D) Scale1D[D] {
	return Scale1D[D]{X: v}
}

// Unscaled1D returns the identity scale.
func Unscaled1D[D constraints.Float]() Scale1D[D] {
	return Proportional1D[D](1)
}

// Inverted returns the reciprocal scale.
//
// The multiplier must be non-zero; a zero multiplier inverts to ±Inf.
func (s Scale1D[D]) Inverted() Scale1D[D] {
	return Scale1D[D]{X: 1 / s.X}
}

// Dimensions returns the single multiplier.
func (s Scale1D[D]) Dimensions() []D {
	return []D{s.X}
}

// IsUnscaled reports whether the multiplier is within tolerance of 1.
func (s Scale1D[D]) IsUnscaled(tolerance D) bool {
	return IsUnscaled[D](s, tolerance)
}

// IsInteger reports whether the multiplier is within tolerance of a whole number.
func (s Scale1D[D]) IsInteger(tolerance D) bool {
	return IsInteger[D](s, tolerance)
}
