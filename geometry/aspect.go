package geometry

import (
	"math"

	"github.com/pkg/errors"
)

// Orientation is the broad shape of a size.
type Orientation int

const (
	OrientationSquare Orientation = iota
	OrientationPortrait
	OrientationLandscape
)

func (o Orientation) String() string {
	switch o {
	case OrientationSquare:
		return "square"
	case OrientationPortrait:
		return "portrait"
	case OrientationLandscape:
		return "landscape"
	default:
		return "unknown"
	}
}

// AspectMode selects how a source size is resized into a bound.
type AspectMode int

const (
	// ModeFit gives the largest size wholly contained in the bound. Nothing is
	// cropped; the remainder of the bound may be letterboxed.
	ModeFit AspectMode = iota
	// ModeFill gives the smallest size that wholly covers the bound. Nothing is
	// letterboxed; the overflow is expected to be cropped by the caller.
	ModeFill
)

func (m AspectMode) String() string {
	switch m {
	case ModeFit:
		return "fit"
	case ModeFill:
		return "fill"
	default:
		return "unknown"
	}
}

// ParseAspectMode parses "fit" or "fill".
func ParseAspectMode(s string) (AspectMode, error) {
	switch s {
	case "fit":
		return ModeFit, nil
	case "fill":
		return ModeFill, nil
	default:
		return 0, errors.Wrapf(ErrUnknownAspectMode, "%q", s)
	}
}

// Fit resizes source, preserving its aspect ratio, to the largest whole-unit
// size contained in bound.
//
// Example:
//
//	size, err := geometry.Fit(geometry.Size{Width: 400, Height: 200}, geometry.Size{Width: 100, Height: 100})
//	// size == 100x50
func Fit(source, bound Size) (Size, error) {
	return Resize(source, bound, ModeFit)
}

// Fill resizes source, preserving its aspect ratio, to the smallest whole-unit
// size covering bound.
//
// Example:
//
//	size, err := geometry.Fill(geometry.Size{Width: 400, Height: 200}, geometry.Size{Width: 100, Height: 100})
//	// size == 200x100
func Fill(source, bound Size) (Size, error) {
	return Resize(source, bound, ModeFill)
}

// FitWithMargin fits source within bound after the margin is removed from it.
func FitWithMargin(source, bound Size, margin Margin) (Size, error) {
	return Resize(source, bound.Sub(margin), ModeFit)
}

// ResizeWithMargin resizes source in mode within bound after the margin is removed from it.
func ResizeWithMargin(source, bound Size, margin Margin, mode AspectMode) (Size, error) {
	return Resize(source, bound.Sub(margin), mode)
}

// Resize calculates the size of source resized into bound for the given mode.
//
// Both axes are multiplied by one ratio taken from
//
//	widthRatio  = bound.Width  / source.Width
//	heightRatio = bound.Height / source.Height
//
// ModeFit takes the width ratio only when it is strictly the smaller one;
// ModeFill takes it only when it is strictly the larger one; otherwise the
// height ratio is used. On a tie both choices give the same result. Each scaled
// dimension is floored to a whole unit (never rounded up), so a fitted size
// never exceeds the bound, even when the bound is fractional.
//
// Arguments:
//   - source: The size being resized.
//   - bound: The target bounding size.
//   - mode: ModeFit or ModeFill.
//
// Returns:
//   - Size: The resized size in whole units.
//   - error: ErrInvalidGeometry if either size is degenerate,
//     ErrUnknownAspectMode for an unsupported mode.
func Resize(source, bound Size, mode AspectMode) (Size, error) {
	if source.IsDegenerate() {
		return Size{}, errors.Wrapf(ErrInvalidGeometry, "source size %s", source)
	}
	if bound.IsDegenerate() {
		return Size{}, errors.Wrapf(ErrInvalidGeometry, "bound size %s", bound)
	}

	widthRatio := bound.Width / source.Width
	heightRatio := bound.Height / source.Height

	var useWidthRatio bool
	switch mode {
	case ModeFit:
		useWidthRatio = widthRatio < heightRatio
	case ModeFill:
		useWidthRatio = widthRatio > heightRatio
	default:
		return Size{}, errors.Wrapf(ErrUnknownAspectMode, "mode %d", int(mode))
	}

	ratio := heightRatio
	if useWidthRatio {
		ratio = widthRatio
	}
	size := Size{
		Width:  floorUnit(source.Width * ratio),
		Height: floorUnit(source.Height * ratio),
	}

	// The ratio's own axis lands on the bound and, for ModeFit, every axis stays
	// within it. The snap in floorUnit must not lift a dimension past a
	// fractional bound.
	if useWidthRatio || mode == ModeFit {
		size.Width = min(size.Width, math.Floor(bound.Width))
	}
	if !useWidthRatio || mode == ModeFit {
		size.Height = min(size.Height, math.Floor(bound.Height))
	}
	return size, nil
}

// unitSnap absorbs the representation error of x*(y/x), which can land a hair
// below y.
const unitSnap = 1e-9

// floorUnit floors v to a whole unit, treating values within unitSnap of a
// whole unit as that unit.
func floorUnit(v float64) float64 {
	if r := math.Round(v); math.Abs(v-r) < unitSnap {
		return r
	}
	return math.Floor(v)
}
