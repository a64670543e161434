package colorspace

import (
	"github.com/pkg/errors"

	"github.com/nvr-ai/go-pixelkit/logger"
)

// Components is a colour as raw component values in a classified space. The
// trailing alpha component is optional and defaults to 1.
type Components struct {
	Kind   Kind      `json:"kind" yaml:"kind"`
	Values []float64 `json:"values" yaml:"values"`
}

// Convert expresses c in its target space.
//
// RGB kinds read red, green and blue from Values[0:3] and alpha from Values[3].
// Greyscale reads the level from Values[0] and alpha from Values[1]; the
// result is always in the Standard space, so a linear greyscale level is
// taken as-is.
//
// Arguments:
//   - c: The components to convert.
//
// Returns:
//   - StandardColor: The converted colour.
//   - error: ErrUnsupportedConversion for CMYK and Lab, or when too few
//     components are supplied.
func Convert(c Components) (StandardColor, error) {
	switch c.Kind.Family() {
	case FamilyRGB:
		if len(c.Values) < 3 {
			return StandardColor{}, errors.Wrapf(ErrUnsupportedConversion, "%s needs 3 components, got %d", c.Kind, len(c.Values))
		}
		space, _ := RGBTarget(c.Kind)
		return StandardColor{
			Space: space,
			R:     c.Values[0],
			G:     c.Values[1],
			B:     c.Values[2],
			A:     alphaAt(c.Values, 3),
		}, nil

	case FamilyGreyscale:
		if len(c.Values) < 1 {
			return StandardColor{}, errors.Wrapf(ErrUnsupportedConversion, "%s needs 1 component, got 0", c.Kind)
		}
		return White(c.Values[0], alphaAt(c.Values, 1)), nil

	default:
		return StandardColor{}, errors.Wrapf(ErrUnsupportedConversion, "%s", c.Kind)
	}
}

// ConvertIdentified classifies id and converts values in that space.
func ConvertIdentified(id Identifier, values []float64) (StandardColor, error) {
	k, ok := Classify(id)
	if !ok {
		return StandardColor{}, errors.Wrapf(ErrUnclassifiable, "%q", id)
	}
	return Convert(Components{Kind: k, Values: values})
}

func alphaAt(values []float64, i int) float64 {
	if len(values) > i {
		return values[i]
	}
	return 1
}

// NativeColor is a colour as held by some external system.
type NativeColor interface {
	// Space returns the identifier of the colour's space. It may be empty or
	// unknown.
	Space() Identifier
	// Components returns the raw component values including alpha.
	Components() []float64
}

// Interchanger is implemented by native colours that can describe themselves
// in a classified interchange space when their own space is not understood.
type Interchanger interface {
	Interchange() (Components, bool)
}

// Value is a NativeColor backed by plain fields.
type Value struct {
	ID     Identifier `json:"space" yaml:"space"`
	Values []float64  `json:"values" yaml:"values"`
}

// Space implements NativeColor.
func (v Value) Space() Identifier { return v.ID }

// Components implements NativeColor.
func (v Value) Components() []float64 { return v.Values }

// ConvertWithFallback converts a native colour, trying in order:
//
//  1. its RGB components, when the space is Display P3, part of the sRGB
//     family or classifies as any other RGB kind;
//  2. a grey level when the space classifies as greyscale;
//  3. the interchange components when native implements Interchanger.
//
// Returns ErrUnsupportedConversion when every tier fails.
func ConvertWithFallback(native NativeColor) (StandardColor, error) {
	if native == nil {
		return StandardColor{}, errors.Wrap(ErrUnsupportedConversion, "nil colour")
	}
	id := native.Space()
	values := native.Components()
	log := logger.Get()

	if len(values) >= 3 {
		if space, ok := DirectTarget(id); ok {
			log.Debug("colour converted directly", "space", id, "target", space)
			return StandardColor{
				Space: space,
				R:     values[0],
				G:     values[1],
				B:     values[2],
				A:     alphaAt(values, 3),
			}, nil
		}
	}

	k, classified := Classify(id)
	if classified && k.Family() == FamilyRGB {
		if sc, err := Convert(Components{Kind: k, Values: values}); err == nil {
			log.Debug("colour converted as rgb", "space", id, "kind", k)
			return sc, nil
		}
	}

	if classified && k.Family() == FamilyGreyscale && len(values) >= 1 {
		log.Debug("colour converted as grey level", "space", id)
		return White(values[0], alphaAt(values, 1)), nil
	}

	if ic, ok := native.(Interchanger); ok {
		if c, ok := ic.Interchange(); ok {
			sc, err := Convert(c)
			if err == nil {
				log.Debug("colour converted via interchange", "space", id, "interchange", c.Kind)
				return sc, nil
			}
			log.Debug("interchange conversion failed", "space", id, "error", err)
		}
	}

	return StandardColor{}, errors.Wrapf(ErrUnsupportedConversion, "%q", id)
}
