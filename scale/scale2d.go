package scale

import "golang.org/x/exp/constraints"

// Scale2D is an independent scale along the horizontal and vertical axes.
type Scale2D[D constraints.Float] struct {
	X D `json:"x" yaml:"x"`
	Y D `json:"y" yaml:"y"`
}

// New2D returns a scale with independent axis multipliers.
func New2D[D constraints.Float](x, y D) Scale2D[D] {
	return Scale2D[D]{X: x, Y: y}
}

// Proportional2D returns a scale of v on both axes.
func Proportional2D[D constraints.Float](v D) Scale2D[D] {
	return Scale2D[D]{X: v, Y: v}
}

// From1D broadcasts a one-dimensional scale to both axes.
func From1D[D constraints.Float](s Scale1D[D]) Scale2D[D] {
	return Proportional2D(s.X)
}

// Unscaled2D returns the identity scale.
func Unscaled2D[D constraints.Float]() Scale2D[D] {
	return Proportional2D[D](1)
}

// Inverted returns the component-wise reciprocal.
//
// Both multipliers must be non-zero; a zero component inverts to ±Inf.
func (s Scale2D[D]) Inverted() Scale2D[D] {
	return Scale2D[D]{X: 1 / s.X, Y: 1 / s.Y}
}

// Dimensions returns the horizontal then vertical multiplier.
func (s Scale2D[D]) Dimensions() []D {
	return []D{s.X, s.Y}
}

// IsUnscaled reports whether both multipliers are within tolerance of 1.
func (s Scale2D[D]) IsUnscaled(tolerance D) bool {
	return IsUnscaled[D](s, tolerance)
}

// IsInteger reports whether both multipliers are within tolerance of a whole number.
func (s Scale2D[D]) IsInteger(tolerance D) bool {
	return IsInteger[D](s, tolerance)
}

// IsProportional reports whether both axes share the same multiplier within tolerance.
func (s Scale2D[D]) IsProportional(tolerance D) bool {
	return withinTolerance(s.X, s.Y, tolerance)
}

// First returns the horizontal multiplier as a float64.
func (s Scale2D[D]) First() float64 { return float64(s.X) }

// Second returns the vertical multiplier as a float64.
func (s Scale2D[D]) Second() float64 { return float64(s.Y) }
