package geometry

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/nvr-ai/go-pixelkit/granular"
)

// Insets are distances inward from each edge of a rectangle.
type Insets struct {
	Top      float64 `json:"top" yaml:"top"`
	Leading  float64 `json:"leading" yaml:"leading"`
	Bottom   float64 `json:"bottom" yaml:"bottom"`
	Trailing float64 `json:"trailing" yaml:"trailing"`
}

// Margin is the space kept clear around content before fitting it.
type Margin = Insets

// Each returns insets of v on every edge.
func Each(v float64) Insets {
	return Insets{Top: v, Leading: v, Bottom: v, Trailing: v}
}

// Symmetric returns insets with one value for top and bottom and another for
// leading and trailing.
func Symmetric(vertical, horizontal float64) Insets {
	return Insets{Top: vertical, Leading: horizontal, Bottom: vertical, Trailing: horizontal}
}

// NewInsets returns insets with distinct top and bottom and a shared horizontal value.
func NewInsets(top, eachHorizontal, bottom float64) Insets {
	return Insets{Top: top, Leading: eachHorizontal, Bottom: bottom, Trailing: eachHorizontal}
}

// Horizontal returns leading plus trailing.
func (in Insets) Horizontal() float64 {
	return in.Leading + in.Trailing
}

// Vertical returns top plus bottom.
func (in Insets) Vertical() float64 {
	return in.Top + in.Bottom
}

// Negated flips the sign of every edge.
func (in Insets) Negated() Insets {
	return Insets{Top: -in.Top, Leading: -in.Leading, Bottom: -in.Bottom, Trailing: -in.Trailing}
}

// Edge is one side of a rectangle. Edges are granules of EdgeEnumeration and
// combine into a granular.Set.
type Edge uint8

const (
	EdgeTop Edge = iota
	EdgeLeading
	EdgeBottom
	EdgeTrailing
)

var edgeNames = map[Edge]string{
	EdgeTop:      "top",
	EdgeLeading:  "leading",
	EdgeBottom:   "bottom",
	EdgeTrailing: "trailing",
}

func (e Edge) String() string {
	if name, ok := edgeNames[e]; ok {
		return name
	}
	return fmt.Sprintf("Edge(%d)", uint8(e))
}

// EdgeEnumeration encodes edges as single bits.
var EdgeEnumeration = granular.MustEnumeration([]Edge{EdgeTop, EdgeLeading, EdgeBottom, EdgeTrailing})

// Predefined edge sets.
var (
	EdgesAll        = EdgeEnumeration.Construct(EdgeTop, EdgeLeading, EdgeBottom, EdgeTrailing)
	EdgesHorizontal = EdgeEnumeration.Construct(EdgeLeading, EdgeTrailing)
	EdgesVertical   = EdgeEnumeration.Construct(EdgeTop, EdgeBottom)
)

// InsetsOn returns insets of amount on the edges in set and zero elsewhere.
func InsetsOn(edges granular.Set, amount float64) Insets {
	var in Insets
	for _, e := range EdgeEnumeration.Decode(edges) {
		switch e {
		case EdgeTop:
			in.Top = amount
		case EdgeLeading:
			in.Leading = amount
		case EdgeBottom:
			in.Bottom = amount
		case EdgeTrailing:
			in.Trailing = amount
		}
	}
	return in
}

// ParseEdges parses a comma separated list of edge names ("top", "leading",
// "bottom", "trailing") or one of the shorthands "all", "horizontal",
// "vertical". Names are case-insensitive; "left" and "right" are accepted for
// leading and trailing.
//
// Arguments:
//   - s: The edge list, e.g. "top,bottom".
//
// Returns:
//   - granular.Set: The combined edges.
//   - error: ErrUnknownEdge if any name is not recognised.
func ParseEdges(s string) (granular.Set, error) {
	var set granular.Set
	for _, part := range strings.Split(s, ",") {
		switch strings.ToLower(strings.TrimSpace(part)) {
		case "all":
			set = set.Union(EdgesAll)
		case "horizontal":
			set = set.Union(EdgesHorizontal)
		case "vertical":
			set = set.Union(EdgesVertical)
		case "top":
			set = set.Union(EdgeEnumeration.Encode(EdgeTop))
		case "leading", "left":
			set = set.Union(EdgeEnumeration.Encode(EdgeLeading))
		case "bottom":
			set = set.Union(EdgeEnumeration.Encode(EdgeBottom))
		case "trailing", "right":
			set = set.Union(EdgeEnumeration.Encode(EdgeTrailing))
		case "":
		default:
			return 0, errors.Wrapf(ErrUnknownEdge, "%q", part)
		}
	}
	return set, nil
}

// FormatEdges lists the edges in set in declaration order, e.g. "top,bottom".
func FormatEdges(set granular.Set) string {
	edges := EdgeEnumeration.Decode(set)
	names := make([]string, len(edges))
	for i, e := range edges {
		names[i] = e.String()
	}
	return strings.Join(names, ",")
}
