package scaling

import (
	"math"

	"github.com/chewxy/math32"

	"github.com/nvr-ai/go-pixelkit/geometry"
	"github.com/nvr-ai/go-pixelkit/scale"
)

// Length is a display-independent length in points.
type Length float32

// Metric converts points to device pixels for a scaling factor. The zero value
// is a 1:1 metric.
type Metric struct {
	// Factor is the scaling factor of the content.
	Factor Factor
	// DeviceScale is the pixel ratio reported by the display, used when
	// Factor is Device.
	DeviceScale float64
}

// PxPerPt returns the number of device pixels per point. A resolved
// multiplier of zero (Device on a display that reports none) is treated as 1.
func (m Metric) PxPerPt() float64 {
	s := m.Factor.Resolve(m.DeviceScale)
	if s == 0 {
		return 1
	}
	return s
}

// Px converts l to device pixels, rounded to the nearest whole pixel.
func (m Metric) Px(l Length) int {
	return int(math32.Round(float32(l) * float32(m.PxPerPt())))
}

// Pt converts a pixel count back to points.
func (m Metric) Pt(px int) Length {
	inverse := scale.Proportional1D(float32(m.PxPerPt())).Inverted()
	return Length(float32(px) * inverse.X)
}

// Scale returns the metric as a proportional two-dimensional scale.
func (m Metric) Scale() scale.Scale2D[float64] {
	return scale.Proportional2D(m.PxPerPt())
}

// SizeInPixels converts a size in points to device pixels.
func (m Metric) SizeInPixels(s geometry.Size) geometry.Size {
	return s.Scaled(m.Scale())
}

// SizeInPoints converts a size in device pixels to points.
func (m Metric) SizeInPoints(s geometry.Size) geometry.Size {
	return s.Scaled(m.Scale().Inverted())
}

// RoundToPixel rounds v to the nearest whole pixel, halves away from zero.
func RoundToPixel(v float64) int {
	return int(math.Round(v))
}
