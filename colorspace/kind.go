package colorspace

import "fmt"

// Family is the broad family of a colour space.
type Family uint8

const (
	FamilyGreyscale Family = iota
	FamilyRGB
	FamilyCMYK
	FamilyLab
)

func (f Family) String() string {
	switch f {
	case FamilyGreyscale:
		return "greyscale"
	case FamilyRGB:
		return "rgb"
	case FamilyCMYK:
		return "cmyk"
	case FamilyLab:
		return "lab"
	default:
		return fmt.Sprintf("Family(%d)", uint8(f))
	}
}

// RGBVariant distinguishes the RGB colour spaces within FamilyRGB.
type RGBVariant uint8

const (
	RGBNone RGBVariant = iota
	RGBStandard
	RGBAdobe
	RGBP3
	RGBOther
)

func (v RGBVariant) String() string {
	switch v {
	case RGBStandard:
		return "srgb"
	case RGBAdobe:
		return "adobe"
	case RGBP3:
		return "p3"
	case RGBOther:
		return "other"
	default:
		return "none"
	}
}

// Kind is a distilled colour-space classification. Build one with the
// constructors below; the zero value is non-linear greyscale. Kinds are
// comparable with ==.
type Kind struct {
	family  Family
	variant RGBVariant
	linear  bool
}

// Greyscale returns a greyscale kind.
func Greyscale(linear bool) Kind { return Kind{family: FamilyGreyscale, linear: linear} }

// SRGB returns an sRGB kind.
func SRGB(linear bool) Kind { return Kind{family: FamilyRGB, variant: RGBStandard, linear: linear} }

// AdobeRGB returns the Adobe RGB (1998) kind.
func AdobeRGB() Kind { return Kind{family: FamilyRGB, variant: RGBAdobe} }

// P3 returns a Display P3 kind.
func P3(linear bool) Kind { return Kind{family: FamilyRGB, variant: RGBP3, linear: linear} }

// OtherRGB returns a kind for RGB spaces outside the named variants.
func OtherRGB(linear bool) Kind { return Kind{family: FamilyRGB, variant: RGBOther, linear: linear} }

// CMYK returns the CMYK kind.
func CMYK() Kind { return Kind{family: FamilyCMYK} }

// Lab returns the CIE Lab kind.
func Lab() Kind { return Kind{family: FamilyLab} }

// Family returns the family of k.
func (k Kind) Family() Family { return k.family }

// RGB returns the RGB variant of k, RGBNone outside FamilyRGB.
func (k Kind) RGB() RGBVariant { return k.variant }

// Linear reports whether k uses a linear transfer function.
func (k Kind) Linear() bool { return k.linear }

// String returns e.g. "rgb/p3", "rgb/srgb(linear)" or "cmyk".
func (k Kind) String() string {
	s := k.family.String()
	if k.family == FamilyRGB {
		s += "/" + k.variant.String()
	}
	if k.linear {
		s += "(linear)"
	}
	return s
}

var kinds = map[Identifier]Kind{
	DisplayP3:               P3(false),
	DisplayP3HLG:            P3(false),
	DisplayP3PQ:             P3(false),
	DCIP3:                   P3(false),
	ExtendedLinearDisplayP3: P3(true),
	SRGBSpace:               SRGB(false),
	ExtendedSRGB:            SRGB(false),
	LinearSRGB:              SRGB(true),
	ExtendedLinearSRGB:      SRGB(true),
	ExtendedGray:            Greyscale(false),
	GenericGrayGamma22:      Greyscale(false),
	LinearGray:              Greyscale(true),
	ExtendedLinearGray:      Greyscale(true),
	AdobeRGB1998:            AdobeRGB(),
	GenericCMYK:             CMYK(),
	GenericRGBLinear:        OtherRGB(true),
	ROMMRGB:                 OtherRGB(false),
	GenericLab:              Lab(),
}

// Classify returns the kind of id. The boolean is false for identifiers that
// have no known kind.
func Classify(id Identifier) (Kind, bool) {
	k, ok := kinds[id]
	return k, ok
}
