package scaling

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nvr-ai/go-pixelkit/geometry"
)

func TestMetric_Px(t *testing.T) {
	tests := []struct {
		name   string
		metric Metric
		in     Length
		want   int
	}{
		{name: "zero value is 1:1", metric: Metric{}, in: 10, want: 10},
		{name: "retina", metric: Metric{Factor: Retina2x}, in: 10.25, want: 21},
		{name: "device scale", metric: Metric{Factor: Device, DeviceScale: 1.5}, in: 3, want: 5},
		{name: "custom", metric: Metric{Factor: Custom(1.25)}, in: 8, want: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.metric.Px(tt.in))
		})
	}
}

func TestMetric_Pt(t *testing.T) {
	m := Metric{Factor: Retina3x}
	assert.InDelta(t, 7, float64(m.Pt(21)), 1e-5)
	assert.InDelta(t, 10, float64(Metric{}.Pt(10)), 1e-5)
}

func TestMetric_Sizes(t *testing.T) {
	m := Metric{Factor: Retina2x}
	px := m.SizeInPixels(geometry.Size{Width: 320, Height: 240})
	assert.Equal(t, geometry.Size{Width: 640, Height: 480}, px)
	assert.Equal(t, geometry.Size{Width: 320, Height: 240}, m.SizeInPoints(px))
}

func TestRoundToPixel(t *testing.T) {
	assert.Equal(t, 3, RoundToPixel(2.5))
	assert.Equal(t, -3, RoundToPixel(-2.5))
	assert.Equal(t, 2, RoundToPixel(2.49))
}
