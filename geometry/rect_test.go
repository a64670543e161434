package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCenter(t *testing.T) {
	testCases := []struct {
		name      string
		size      Size
		container Rect
		expected  Rect
	}{
		{
			name:      "smaller in origin container",
			size:      Size{100, 50},
			container: RectOf(Size{200, 200}),
			expected:  Rect{Origin: Point{50, 75}, Size: Size{100, 50}},
		},
		{
			name:      "offset container",
			size:      Size{10, 10},
			container: Rect{Origin: Point{100, 20}, Size: Size{30, 40}},
			expected:  Rect{Origin: Point{110, 35}, Size: Size{10, 10}},
		},
		{
			name:      "odd difference keeps half units",
			size:      Size{3, 3},
			container: RectOf(Size{10, 10}),
			expected:  Rect{Origin: Point{3.5, 3.5}, Size: Size{3, 3}},
		},
		{
			name:      "larger than container",
			size:      Size{200, 100},
			container: RectOf(Size{100, 100}),
			expected:  Rect{Origin: Point{-50, 0}, Size: Size{200, 100}},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := Center(tc.size, tc.container)
			assert.Equal(t, tc.expected, got)
			assert.Equal(t, tc.container.Mid(), got.Mid())
		})
	}
}

func TestCenterInSize(t *testing.T) {
	assert.Equal(t, Rect{Origin: Point{0, 25}, Size: Size{100, 50}}, CenterInSize(Size{100, 50}, Size{100, 100}))

	r := Rect{Origin: Point{7, 7}, Size: Size{4, 2}}
	assert.Equal(t, Rect{Origin: Point{3, 4}, Size: Size{4, 2}}, r.Centered(RectOf(Size{10, 10})))
}

// TestFitThenCenter checks a fitted size centred within its bound stays inside it.
func TestFitThenCenter(t *testing.T) {
	forEachSizePair(func(source, bound Size) {
		fit, err := Fit(source, bound)
		require.NoError(t, err)
		placed := CenterInSize(fit, bound)
		assert.True(t, RectOf(bound).Contains(placed), "%v in %v", placed, bound)
	})
}

func TestRect_Intersect(t *testing.T) {
	testCases := []struct {
		name     string
		r1, r2   Rect
		expected Rect
		overlaps bool
	}{
		{
			name:     "identical",
			r1:       RectOf(Size{100, 100}),
			r2:       RectOf(Size{100, 100}),
			expected: RectOf(Size{100, 100}),
			overlaps: true,
		},
		{
			name: "partial",
			r1:   RectOf(Size{100, 100}),
			r2:   Rect{Origin: Point{50, 50}, Size: Size{100, 100}},
			expected: Rect{
				Origin: Point{50, 50},
				Size:   Size{50, 50},
			},
			overlaps: true,
		},
		{
			name:     "touching edges",
			r1:       RectOf(Size{100, 100}),
			r2:       Rect{Origin: Point{100, 0}, Size: Size{100, 100}},
			overlaps: false,
		},
		{
			name:     "disjoint",
			r1:       RectOf(Size{100, 100}),
			r2:       Rect{Origin: Point{200, 200}, Size: Size{100, 100}},
			overlaps: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := tc.r1.Intersect(tc.r2)
			assert.Equal(t, tc.overlaps, ok)
			assert.Equal(t, tc.expected, got)

			// Intersection is symmetric.
			reverse, ok := tc.r2.Intersect(tc.r1)
			assert.Equal(t, tc.overlaps, ok)
			assert.Equal(t, got, reverse)
		})
	}
}

func TestRect_Edges(t *testing.T) {
	r := Rect{Origin: Point{10, 20}, Size: Size{30, 40}}
	assert.Equal(t, 10.0, r.MinX())
	assert.Equal(t, 20.0, r.MinY())
	assert.Equal(t, 40.0, r.MaxX())
	assert.Equal(t, 60.0, r.MaxY())
	assert.Equal(t, Point{25, 40}, r.Mid())
	assert.Equal(t, "(10, 20) 30x40", r.String())
}

func TestRect_Union(t *testing.T) {
	a := RectOf(Size{10, 10})
	b := Rect{Origin: Point{5, 5}, Size: Size{10, 10}}
	assert.Equal(t, Rect{Size: Size{15, 15}}, a.Union(b))
	assert.Equal(t, a.Union(b), b.Union(a))
	assert.Equal(t, a, a.Union(a))
}

func TestRect_IoU(t *testing.T) {
	a := RectOf(Size{10, 10})
	b := Rect{Origin: Point{5, 5}, Size: Size{10, 10}}

	assert.InDelta(t, 25.0/175.0, a.IoU(b), 1e-12)
	assert.InDelta(t, a.IoU(b), b.IoU(a), 1e-12)
	assert.Equal(t, 1.0, a.IoU(a))
	assert.Equal(t, 0.0, a.IoU(Rect{Origin: Point{20, 20}, Size: Size{5, 5}}))

	// A fitted size centred in its bound covers exactly its share of the bound.
	bound := Size{1280, 1280}
	fitted, err := Fit(Size{1920, 1080}, bound)
	require.NoError(t, err)
	assert.InDelta(t, fitted.Area()/bound.Area(), CenterInSize(fitted, bound).IoU(RectOf(bound)), 1e-12)
}
