package scaling

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name      string
		raw       float64
		tolerance float64
		want      Factor
	}{
		{name: "zero is device", raw: 0, tolerance: DefaultTolerance, want: Device},
		{name: "exact 1x", raw: 1.0, tolerance: DefaultTolerance, want: PerPixel},
		{name: "near 2x", raw: 2.005, tolerance: DefaultTolerance, want: Retina2x},
		{name: "near 3x below", raw: 2.995, tolerance: DefaultTolerance, want: Retina3x},
		{name: "between tiers", raw: 2.5, tolerance: DefaultTolerance, want: Custom(2.5)},
		{name: "on the boundary is custom", raw: 1.5, tolerance: 0.5, want: Custom(1.5)},
		{name: "wide tolerance picks first tier", raw: 1.4, tolerance: 1.5, want: Device},
		{name: "negative tolerance uses magnitude", raw: 2.005, tolerance: -DefaultTolerance, want: Retina2x},
		{name: "zero tolerance never matches", raw: 1, tolerance: 0, want: Custom(1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.raw, tt.tolerance))
		})
	}
}

func TestClassify_RoundTrip(t *testing.T) {
	for _, f := range []Factor{Device, PerPixel, Retina2x, Retina3x, Custom(1.5), Custom(4)} {
		assert.Equal(t, f, Classify(f.Multiplier(), DefaultTolerance), f.String())
	}
}

func TestFactor_Resolve(t *testing.T) {
	assert.Equal(t, 1.75, Device.Resolve(1.75))
	assert.Equal(t, 1.0, PerPixel.Resolve(1.75))
	assert.Equal(t, 2.0, Retina2x.Resolve(1.75))
	assert.Equal(t, 3.0, Retina3x.Resolve(1.75))
	assert.Equal(t, 2.5, Custom(2.5).Resolve(1.75))
}

func TestFactor_String(t *testing.T) {
	assert.Equal(t, "device", Device.String())
	assert.Equal(t, "1x", PerPixel.String())
	assert.Equal(t, "2x", Retina2x.String())
	assert.Equal(t, "3x", Retina3x.String())
	assert.Equal(t, "2.5x", Custom(2.5).String())
	assert.Equal(t, "custom", Custom(2.5).Kind().String())
}

func TestParseFactor(t *testing.T) {
	f, err := ParseFactor("device", DefaultTolerance)
	require.NoError(t, err)
	assert.Equal(t, Device, f)

	f, err = ParseFactor(" 2X ", DefaultTolerance)
	require.NoError(t, err)
	assert.Equal(t, Retina2x, f)

	f, err = ParseFactor("1.25", DefaultTolerance)
	require.NoError(t, err)
	assert.Equal(t, Custom(1.25), f)

	_, err = ParseFactor("huge", DefaultTolerance)
	assert.True(t, errors.Is(err, ErrInvalidFactor))
}
