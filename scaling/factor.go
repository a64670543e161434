// Package scaling classifies device pixel ratios into the named tiers used by
// displays (1x, 2x, 3x) and converts logical lengths to device pixels.
package scaling

import (
	"math"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
)

// DefaultTolerance is the classification band used when callers have no
// tolerance of their own.
const DefaultTolerance = 0.01

// ErrInvalidFactor is returned when a scaling factor cannot be parsed.
var ErrInvalidFactor = errors.New("scaling: invalid scaling factor")

// Kind identifies the variant of a Factor.
type Kind uint8

const (
	// KindDevice defers to the scale of the display the content ends up on.
	KindDevice Kind = iota
	// KindPerPixel is the 1:1 scale of traditional displays.
	KindPerPixel
	// KindRetina2x is the 200% high-DPI scale.
	KindRetina2x
	// KindRetina3x is the 300% high-DPI scale.
	KindRetina3x
	// KindCustom is any other multiplier.
	KindCustom
)

func (k Kind) String() string {
	switch k {
	case KindDevice:
		return "device"
	case KindPerPixel:
		return "perPixel"
	case KindRetina2x:
		return "retina2x"
	case KindRetina3x:
		return "retina3x"
	case KindCustom:
		return "custom"
	default:
		return "unknown"
	}
}

// Factor is a scaling factor: one of the named tiers or a custom multiplier.
// Factors are comparable with ==.
type Factor struct {
	kind       Kind
	multiplier float64
}

// The named tiers.
var (
	Device   = Factor{kind: KindDevice}
	PerPixel = Factor{kind: KindPerPixel}
	Retina2x = Factor{kind: KindRetina2x}
	Retina3x = Factor{kind: KindRetina3x}
)

// Custom returns a custom factor of m. It never maps m onto a named tier;
// use Classify for that.
func Custom(m float64) Factor {
	return Factor{kind: KindCustom, multiplier: m}
}

// Classify maps a raw multiplier onto a factor.
//
// raw is tested against 0 (Device), 1, 2 and 3 in that order; the first tier
// with |raw - tier| < |tolerance| wins. With a wide tolerance raw may be near
// more than one tier, and the order above breaks the tie. When no tier is
// near enough the result is Custom(raw).
//
// Note that 0 selects Device rather than a literal zero scale.
//
// Example:
//
//	scaling.Classify(2.005, scaling.DefaultTolerance) // Retina2x
//	scaling.Classify(2.5, scaling.DefaultTolerance)   // Custom(2.5)
func Classify(raw, tolerance float64) Factor {
	tolerance = math.Abs(tolerance)

	if math.Abs(raw-0) < tolerance {
		return Device
	} else if math.Abs(raw-1) < tolerance {
		return PerPixel
	} else if math.Abs(raw-2) < tolerance {
		return Retina2x
	} else if math.Abs(raw-3) < tolerance {
		return Retina3x
	}
	return Custom(raw)
}

// Kind returns the variant of f.
func (f Factor) Kind() Kind {
	return f.kind
}

// Multiplier returns the raw multiplier of f as handed to a graphics context:
// 0 for Device, the tier value for named tiers, and the custom multiplier
// otherwise. Classify(f.Multiplier(), tol) returns f for any tol that does not
// reach a neighbouring tier.
func (f Factor) Multiplier() float64 {
	switch f.kind {
	case KindPerPixel:
		return 1
	case KindRetina2x:
		return 2
	case KindRetina3x:
		return 3
	case KindCustom:
		return f.multiplier
	default:
		return 0
	}
}

// Resolve returns the effective multiplier of f. Device resolves to
// deviceMultiplier, the scale reported by the host display; every other
// variant resolves to its literal value.
func (f Factor) Resolve(deviceMultiplier float64) float64 {
	if f.kind == KindDevice {
		return deviceMultiplier
	}
	return f.Multiplier()
}

// String returns "device", "1x", "2x", "3x" or the custom multiplier such as "2.5x".
func (f Factor) String() string {
	if f.kind == KindDevice {
		return "device"
	}
	return humanize.Ftoa(f.Multiplier()) + "x"
}

// ParseFactor parses the output of Factor.String, or a bare number which is
// classified with tolerance.
//
// Arguments:
//   - s: "device", a multiplier with an optional "x" suffix ("2x", "1.5").
//   - tolerance: Band used to classify numeric input.
//
// Returns:
//   - Factor: The parsed factor.
//   - error: ErrInvalidFactor if s is not a number.
func ParseFactor(s string, tolerance float64) (Factor, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "device" {
		return Device, nil
	}
	m, err := strconv.ParseFloat(strings.TrimSuffix(s, "x"), 64)
	if err != nil {
		return Factor{}, errors.Wrapf(ErrInvalidFactor, "%q", s)
	}
	return Classify(m, tolerance), nil
}
