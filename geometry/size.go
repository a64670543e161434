// Package geometry provides size, point, rectangle and inset value types and
// the aspect-preserving fit and fill calculations built on them.
//
// Every function here is pure: no operation reads or writes shared state, so
// all of them can be called concurrently.
package geometry

import (
	"math"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"

	"github.com/nvr-ai/go-pixelkit/scale"
)

// DefaultOrientationTolerance is the band around a 1:1 ratio treated as square.
const DefaultOrientationTolerance = 0.01

// Size is a width and height pair.
type Size struct {
	// Width is the horizontal extent.
	Width float64 `json:"width" yaml:"width"`
	// Height is the vertical extent.
	Height float64 `json:"height" yaml:"height"`
}

// NewSizeWithWidth creates a size from a known width and aspect ratio
// (width divided by height). For FHD use NewSizeWithWidth(1920, 16.0/9).
func NewSizeWithWidth(width, aspectRatio float64) Size {
	return Size{Width: width, Height: width / aspectRatio}
}

// NewSizeWithHeight creates a size from a known height and aspect ratio
// (width divided by height). For FHD use NewSizeWithHeight(1080, 16.0/9).
func NewSizeWithHeight(height, aspectRatio float64) Size {
	return Size{Width: height * aspectRatio, Height: height}
}

// First returns the width.
func (s Size) First() float64 { return s.Width }

// Second returns the height.
func (s Size) Second() float64 { return s.Height }

// AspectRatio returns width divided by height.
func (s Size) AspectRatio() float64 {
	return s.Width / s.Height
}

// Area returns width multiplied by height.
func (s Size) Area() float64 {
	return s.Width * s.Height
}

// Orientation classifies the size by its aspect ratio. A ratio within
// tolerance of 1 (exclusive) is square; otherwise a ratio below 1 is portrait
// and anything else landscape.
func (s Size) Orientation(tolerance float64) Orientation {
	ratio := s.AspectRatio()
	if math.Abs(ratio-1) < math.Abs(tolerance) {
		return OrientationSquare
	} else if ratio < 1 {
		return OrientationPortrait
	}
	return OrientationLandscape
}

// IsDegenerate reports whether either dimension is zero, negative, NaN or infinite.
func (s Size) IsDegenerate() bool {
	return !positiveFinite(s.Width) || !positiveFinite(s.Height)
}

// Validate returns an error wrapping ErrInvalidGeometry if s is degenerate.
func (s Size) Validate() error {
	if s.IsDegenerate() {
		return errors.Wrapf(ErrInvalidGeometry, "degenerate size %s", s)
	}
	return nil
}

// Mul scales both dimensions by k.
func (s Size) Mul(k float64) Size {
	return Size{Width: s.Width * k, Height: s.Height * k}
}

// MulSize multiplies the dimensions pairwise.
func (s Size) MulSize(o Size) Size {
	return Size{Width: s.Width * o.Width, Height: s.Height * o.Height}
}

// Div divides both dimensions by k.
func (s Size) Div(k float64) Size {
	return Size{Width: s.Width / k, Height: s.Height / k}
}

// DivSize divides the dimensions pairwise.
func (s Size) DivSize(o Size) Size {
	return Size{Width: s.Width / o.Width, Height: s.Height / o.Height}
}

// Add grows the size by the horizontal and vertical totals of the insets.
func (s Size) Add(in Insets) Size {
	return Size{Width: s.Width + in.Horizontal(), Height: s.Height + in.Vertical()}
}

// Sub shrinks the size by the horizontal and vertical totals of the insets.
func (s Size) Sub(in Insets) Size {
	return s.Add(in.Negated())
}

// Scaled applies an independent scale to each axis.
func (s Size) Scaled(sc scale.Scale2D[float64]) Size {
	return Size{Width: s.Width * sc.X, Height: s.Height * sc.Y}
}

// ScaleTo returns the per-axis scale that maps s onto other.
func (s Size) ScaleTo(other Size) scale.Scale2D[float64] {
	return scale.New2D(other.Width/s.Width, other.Height/s.Height)
}

// String formats the size as WIDTHxHEIGHT, e.g. "1920x1080" or "12.5x4".
func (s Size) String() string {
	return humanize.Ftoa(s.Width) + "x" + humanize.Ftoa(s.Height)
}

func positiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 0)
}
