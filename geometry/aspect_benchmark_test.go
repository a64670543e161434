package geometry

import "testing"

// BenchmarkFit measures the common downscale-into-thumbnail path.
func BenchmarkFit(b *testing.B) {
	source := Size{Width: 3840, Height: 2160}
	bound := Size{Width: 320, Height: 320}

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		_, _ = Fit(source, bound)
	}
}

// BenchmarkFill measures covering a square bound with a portrait source.
func BenchmarkFill(b *testing.B) {
	source := Size{Width: 1080, Height: 1920}
	bound := Size{Width: 640, Height: 640}

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		_, _ = Fill(source, bound)
	}
}

// BenchmarkFitWithMargin includes the inset subtraction.
func BenchmarkFitWithMargin(b *testing.B) {
	source := Size{Width: 16, Height: 16}
	bound := Size{Width: 1024, Height: 768}
	margin := Each(12)

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		_, _ = FitWithMargin(source, bound, margin)
	}
}

// BenchmarkCenter measures midpoint placement.
func BenchmarkCenter(b *testing.B) {
	container := Rect{Origin: Point{X: 10, Y: 10}, Size: Size{Width: 1024, Height: 768}}
	size := Size{Width: 640, Height: 480}

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		_ = Center(size, container)
	}
}
