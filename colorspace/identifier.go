// Package colorspace classifies colour-space identifiers into broad kinds and
// converts colour components into a small set of standard target spaces.
package colorspace

import (
	"strings"

	"github.com/pkg/errors"
)

// Identifier names a colour space as reported by an external source.
type Identifier string

// Known identifiers.
const (
	DisplayP3               Identifier = "displayP3"
	DisplayP3HLG            Identifier = "displayP3HLG"
	DisplayP3PQ             Identifier = "displayP3PQ"
	DCIP3                   Identifier = "dciP3"
	ExtendedLinearDisplayP3 Identifier = "extendedLinearDisplayP3"
	SRGBSpace               Identifier = "sRGB"
	ExtendedSRGB            Identifier = "extendedSRGB"
	LinearSRGB              Identifier = "linearSRGB"
	ExtendedLinearSRGB      Identifier = "extendedLinearSRGB"
	ExtendedGray            Identifier = "extendedGray"
	GenericGrayGamma22      Identifier = "genericGrayGamma2_2"
	LinearGray              Identifier = "linearGray"
	ExtendedLinearGray      Identifier = "extendedLinearGray"
	AdobeRGB1998            Identifier = "adobeRGB1998"
	GenericCMYK             Identifier = "genericCMYK"
	GenericRGBLinear        Identifier = "genericRGBLinear"
	ROMMRGB                 Identifier = "rommRGB"
	GenericLab              Identifier = "genericLab"
)

// Identifiers returns every known identifier in a stable order.
func Identifiers() []Identifier {
	return []Identifier{
		DisplayP3, DisplayP3HLG, DisplayP3PQ, DCIP3, ExtendedLinearDisplayP3,
		SRGBSpace, ExtendedSRGB, LinearSRGB, ExtendedLinearSRGB,
		ExtendedGray, GenericGrayGamma22, LinearGray, ExtendedLinearGray,
		AdobeRGB1998, GenericCMYK, GenericRGBLinear, ROMMRGB, GenericLab,
	}
}

// ParseIdentifier resolves s to a known identifier, ignoring case.
func ParseIdentifier(s string) (Identifier, error) {
	s = strings.TrimSpace(s)
	for _, id := range Identifiers() {
		if strings.EqualFold(string(id), s) {
			return id, nil
		}
	}
	return "", errors.Wrapf(ErrUnclassifiable, "%q", s)
}
