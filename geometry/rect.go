package geometry

import "fmt"

// Point is a location in a two-dimensional coordinate space.
type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// First returns the x coordinate.
func (p Point) First() float64 { return p.X }

// Second returns the y coordinate.
func (p Point) Second() float64 { return p.Y }

// Rect is an origin and a size. The origin is the minimum corner.
type Rect struct {
	Origin Point `json:"origin" yaml:"origin"`
	Size   Size  `json:"size" yaml:"size"`
}

// RectOf returns a rect of the given size at the zero origin.
func RectOf(s Size) Rect {
	return Rect{Size: s}
}

// MinX returns the left edge.
func (r Rect) MinX() float64 { return r.Origin.X }

// MinY returns the top edge.
func (r Rect) MinY() float64 { return r.Origin.Y }

// MaxX returns the right edge.
func (r Rect) MaxX() float64 { return r.Origin.X + r.Size.Width }

// MaxY returns the bottom edge.
func (r Rect) MaxY() float64 { return r.Origin.Y + r.Size.Height }

// Mid returns the centre point.
func (r Rect) Mid() Point {
	return Point{X: r.Origin.X + r.Size.Width/2, Y: r.Origin.Y + r.Size.Height/2}
}

// Contains reports whether o lies entirely within r. Shared edges count as inside.
func (r Rect) Contains(o Rect) bool {
	return o.MinX() >= r.MinX() && o.MinY() >= r.MinY() &&
		o.MaxX() <= r.MaxX() && o.MaxY() <= r.MaxY()
}

// Intersect returns the overlapping region of r and o. The intersection
// starts at the larger of the two minimum corners and ends at the smaller of
// the two maximum corners; when that leaves no positive width or height the
// rects do not overlap and ok is false.
func (r Rect) Intersect(o Rect) (Rect, bool) {
	x1 := max(r.MinX(), o.MinX())
	y1 := max(r.MinY(), o.MinY())
	x2 := min(r.MaxX(), o.MaxX())
	y2 := min(r.MaxY(), o.MaxY())

	if x2-x1 <= 0 || y2-y1 <= 0 {
		return Rect{}, false
	}
	return Rect{
		Origin: Point{X: x1, Y: y1},
		Size:   Size{Width: x2 - x1, Height: y2 - y1},
	}, true
}

// Union returns the smallest rect containing both r and o.
func (r Rect) Union(o Rect) Rect {
	x1 := min(r.MinX(), o.MinX())
	y1 := min(r.MinY(), o.MinY())
	x2 := max(r.MaxX(), o.MaxX())
	y2 := max(r.MaxY(), o.MaxY())
	return Rect{
		Origin: Point{X: x1, Y: y1},
		Size:   Size{Width: x2 - x1, Height: y2 - y1},
	}
}

// IoU returns the intersection over union of r and o: the overlapping area
// divided by the area covered by either rect, in [0, 1]. Rects that do not
// overlap, or whose combined area is zero, return 0.
//
// Example:
//
//	a := geometry.Rect{Size: geometry.Size{Width: 10, Height: 10}}
//	b := geometry.Rect{Origin: geometry.Point{X: 5, Y: 5}, Size: geometry.Size{Width: 10, Height: 10}}
//	a.IoU(b) // 25 / 175
func (r Rect) IoU(o Rect) float64 {
	in, ok := r.Intersect(o)
	if !ok {
		return 0
	}
	union := r.Size.Area() + o.Size.Area() - in.Size.Area()
	if union <= 0 {
		return 0
	}
	return in.Size.Area() / union
}

// Centered returns r moved so it is centred within container.
func (r Rect) Centered(container Rect) Rect {
	return Center(r.Size, container)
}

func (r Rect) String() string {
	return fmt.Sprintf("(%g, %g) %s", r.Origin.X, r.Origin.Y, r.Size)
}

// Center places size at the midpoint of container:
//
//	x = container.X + (container.Width  - size.Width)  / 2
//	y = container.Y + (container.Height - size.Height) / 2
//
// No rounding to a pixel grid is performed. A size larger than the container
// yields an origin before the container's own.
func Center(size Size, container Rect) Rect {
	return Rect{
		Origin: Point{
			X: container.Origin.X + (container.Size.Width-size.Width)/2,
			Y: container.Origin.Y + (container.Size.Height-size.Height)/2,
		},
		Size: size,
	}
}

// CenterInSize centres size within a container of the given size at the zero origin.
func CenterInSize(size, container Size) Rect {
	return Center(size, RectOf(container))
}
