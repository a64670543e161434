package colorspace

import (
	"fmt"
	"image/color"
	"math"
)

// TargetSpace is one of the standard spaces colours are converted into.
type TargetSpace uint8

const (
	// Standard is non-linear sRGB.
	Standard TargetSpace = iota
	// StandardLinear is linear sRGB.
	StandardLinear
	// WideGamut is Display P3.
	WideGamut
)

func (t TargetSpace) String() string {
	switch t {
	case Standard:
		return "standard"
	case StandardLinear:
		return "standardLinear"
	case WideGamut:
		return "wideGamut"
	default:
		return fmt.Sprintf("TargetSpace(%d)", uint8(t))
	}
}

// RGBTarget returns the target space for an RGB kind. Adobe RGB and
// non-linear unnamed RGB spaces collapse to Standard, linear ones to
// StandardLinear, and every P3 variant to WideGamut. The boolean is false
// outside FamilyRGB.
func RGBTarget(k Kind) (TargetSpace, bool) {
	if k.family != FamilyRGB {
		return 0, false
	}
	switch k.variant {
	case RGBP3:
		return WideGamut, true
	case RGBAdobe:
		return Standard, true
	default:
		if k.linear {
			return StandardLinear, true
		}
		return Standard, true
	}
}

// DirectTarget returns the target space an identifier translates to without
// loss of meaning. Only Display P3 and the sRGB family qualify.
func DirectTarget(id Identifier) (TargetSpace, bool) {
	switch id {
	case DisplayP3:
		return WideGamut, true
	case SRGBSpace, ExtendedSRGB:
		return Standard, true
	case LinearSRGB, ExtendedLinearSRGB:
		return StandardLinear, true
	default:
		return 0, false
	}
}

// StandardColor is a colour in one of the target spaces. Components are
// nominally in [0, 1] but extended-range values are preserved.
type StandardColor struct {
	Space TargetSpace `json:"space" yaml:"space"`
	R     float64     `json:"r" yaml:"r"`
	G     float64     `json:"g" yaml:"g"`
	B     float64     `json:"b" yaml:"b"`
	A     float64     `json:"a" yaml:"a"`
}

// White returns a neutral grey of the given level in the Standard space.
func White(grey, alpha float64) StandardColor {
	return StandardColor{Space: Standard, R: grey, G: grey, B: grey, A: alpha}
}

// Color returns c as an 8-bit non-premultiplied colour. Components are clamped
// to [0, 1]; no gamut or transfer-function conversion is applied.
func (c StandardColor) Color() color.Color {
	return color.NRGBA{R: unit8(c.R), G: unit8(c.G), B: unit8(c.B), A: unit8(c.A)}
}

func unit8(v float64) uint8 {
	if math.IsNaN(v) || v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(math.Round(v * 255))
}
