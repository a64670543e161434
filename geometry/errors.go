package geometry

import "github.com/pkg/errors"

var (
	// ErrInvalidGeometry is returned when a size has a zero, negative or
	// non-finite dimension where a positive one is required.
	ErrInvalidGeometry = errors.New("geometry: invalid geometry")

	// ErrUnknownAspectMode is returned for an AspectMode outside ModeFit and ModeFill.
	ErrUnknownAspectMode = errors.New("geometry: unknown aspect mode")

	// ErrUnknownEdge is returned when an edge name cannot be parsed.
	ErrUnknownEdge = errors.New("geometry: unknown edge")
)
