package colorspace

import "github.com/pkg/errors"

var (
	// ErrUnclassifiable is returned when a colour-space identifier has no known kind.
	ErrUnclassifiable = errors.New("colorspace: unclassifiable colour space")

	// ErrUnsupportedConversion is returned when a colour cannot be expressed in
	// any target space, e.g. CMYK or Lab, or when components are missing.
	ErrUnsupportedConversion = errors.New("colorspace: unsupported conversion")
)
