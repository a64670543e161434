package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nvr-ai/go-pixelkit/scale"
)

var (
	_ TwoDimensional = Size{}
	_ TwoDimensional = Point{}
	_ TwoDimensional = scale.Scale2D[float64]{}
	_ TwoDimensional = scale.Scale2D[float32]{}
)

func TestCompare(t *testing.T) {
	small := Size{Width: 10, Height: 40}
	large := Size{Width: 20, Height: 30}

	testCases := []struct {
		approach ComparisonApproach
		less     bool
		greater  bool
	}{
		{approach: CompareAtAll, less: true, greater: true},
		{approach: CompareFirst, less: true, greater: false},
		{approach: CompareSecond, less: false, greater: true},
		{approach: CompareAdditive, less: false, greater: false},        // 50 vs 50
		{approach: CompareMultiplicative, less: true, greater: false},   // 400 vs 600
		{approach: CompareDivisive, less: true, greater: false},         // 0.25 vs 0.667
		{approach: ComparisonApproach(99), less: false, greater: false}, // unknown never compares
	}

	for _, tc := range testCases {
		t.Run(tc.approach.String(), func(t *testing.T) {
			assert.Equal(t, tc.less, IsLessThan(small, large, tc.approach))
			assert.Equal(t, tc.greater, IsGreaterThan(small, large, tc.approach))
		})
	}
}

func TestCompare_MixedTypes(t *testing.T) {
	assert.True(t, IsLessThan(Point{X: 1, Y: 1}, scale.New2D(2.0, 2.0), CompareAtAll))
	assert.True(t, IsGreaterThan(scale.Proportional2D[float32](3), Size{Width: 2, Height: 2}, CompareMultiplicative))
}

func TestSmallestLargestDimension(t *testing.T) {
	assert.Equal(t, 1080.0, SmallestDimension(Size{Width: 1920, Height: 1080}))
	assert.Equal(t, 1920.0, LargestDimension(Size{Width: 1920, Height: 1080}))
	assert.Equal(t, -3.0, SmallestDimension(Point{X: -3, Y: 4}))
}
