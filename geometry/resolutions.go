package geometry

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// AspectRatio names a display aspect ratio, e.g. "16:9".
type AspectRatio string

// Common display aspect ratios.
const (
	AspectRatio169 AspectRatio = "16:9"
	AspectRatio43  AspectRatio = "4:3"
	AspectRatio54  AspectRatio = "5:4"
	AspectRatio32  AspectRatio = "3:2"
	AspectRatio11  AspectRatio = "1:1"
)

// Resolution is a named standard display or sensor resolution.
type Resolution struct {
	// Name is the lookup key, e.g. "1080p".
	Name string `json:"name" yaml:"name"`
	// Title is the human readable name, e.g. "Full HD 1080p".
	Title string `json:"title" yaml:"title"`
	// AspectRatio is the nominal ratio of the resolution.
	AspectRatio AspectRatio `json:"aspectRatio" yaml:"aspectRatio"`
	// Size is the resolution in pixels.
	Size Size `json:"size" yaml:"size"`
	// Experimental flags resolutions not in common commercial use.
	Experimental bool `json:"experimental" yaml:"experimental"`
}

// MegaPixels returns the pixel count in millions rounded to two decimal places
// (2.07 for 1080p). Degenerate sizes report 0.
func (r Resolution) MegaPixels() float64 {
	if r.Size.IsDegenerate() {
		return 0
	}
	mp := r.Size.Area() / 1_000_000
	return math.Round(mp*100) / 100
}

// String returns e.g. "Full HD 1080p (1920x1080, 2.07MP)".
func (r Resolution) String() string {
	return fmt.Sprintf("%s (%s, %.2fMP)", r.Title, r.Size, r.MegaPixels())
}

// resolutions is keyed by lower-case Name.
var resolutions = map[string]Resolution{
	"nhd":   {Name: "nHD", Title: "nHD", AspectRatio: AspectRatio169, Size: Size{Width: 640, Height: 360}},
	"vga":   {Name: "VGA", Title: "VGA", AspectRatio: AspectRatio43, Size: Size{Width: 640, Height: 480}},
	"qhd":   {Name: "qHD", Title: "qHD 540p", AspectRatio: AspectRatio169, Size: Size{Width: 960, Height: 540}},
	"720p":  {Name: "720p", Title: "HD 720p", AspectRatio: AspectRatio169, Size: Size{Width: 1280, Height: 720}},
	"1mp":   {Name: "1MP", Title: "1MP (5:4)", AspectRatio: AspectRatio54, Size: Size{Width: 1280, Height: 1024}},
	"1080p": {Name: "1080p", Title: "Full HD 1080p", AspectRatio: AspectRatio169, Size: Size{Width: 1920, Height: 1080}},
	"2mp":   {Name: "2MP", Title: "2MP (4:3)", AspectRatio: AspectRatio43, Size: Size{Width: 1600, Height: 1200}},
	"1440p": {Name: "1440p", Title: "QHD 1440p", AspectRatio: AspectRatio169, Size: Size{Width: 2560, Height: 1440}},
	"6mp":   {Name: "6MP", Title: "6MP (3:2)", AspectRatio: AspectRatio32, Size: Size{Width: 3072, Height: 2048}},
	"4k":    {Name: "4K", Title: "4K UHD", AspectRatio: AspectRatio169, Size: Size{Width: 3840, Height: 2160}},
	"5k":    {Name: "5K", Title: "5K", AspectRatio: AspectRatio169, Size: Size{Width: 5120, Height: 2880}},
	"8k":    {Name: "8K", Title: "8K UHD", AspectRatio: AspectRatio169, Size: Size{Width: 7680, Height: 4320}},
	"16k": {
		Name: "16K", Title: "16K UHD", AspectRatio: AspectRatio169,
		Size: Size{Width: 15360, Height: 8640}, Experimental: true,
	},
}

// Resolutions returns every known resolution ordered by ascending area, ties
// broken by name.
func Resolutions() []Resolution {
	all := make([]Resolution, 0, len(resolutions))
	for _, r := range resolutions {
		all = append(all, r)
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].Size.Area() != all[j].Size.Area() {
			return all[i].Size.Area() < all[j].Size.Area()
		}
		return all[i].Name < all[j].Name
	})
	return all
}

// ResolutionByName looks up a resolution by name, ignoring case.
func ResolutionByName(name string) (Resolution, bool) {
	r, ok := resolutions[strings.ToLower(name)]
	return r, ok
}

// HighestResolutionWithin returns the non-experimental resolution with the
// largest area that fits inside bound on both axes.
func HighestResolutionWithin(bound Size) (Resolution, bool) {
	var highest Resolution
	var found bool

	for _, r := range Resolutions() {
		if r.Experimental {
			continue
		}
		if r.Size.Width <= bound.Width && r.Size.Height <= bound.Height {
			highest = r
			found = true
		}
	}
	return highest, found
}

// ParseSize parses "WIDTHxHEIGHT" (e.g. "1920x1080" or "12.5x8") or the name
// of a known resolution (e.g. "1080p").
//
// Arguments:
//   - s: The size description.
//
// Returns:
//   - Size: The parsed size.
//   - error: ErrInvalidGeometry if s is neither form or describes a degenerate size.
func ParseSize(s string) (Size, error) {
	if r, ok := ResolutionByName(s); ok {
		return r.Size, nil
	}

	w, h, ok := strings.Cut(strings.ToLower(strings.TrimSpace(s)), "x")
	if !ok {
		return Size{}, errors.Wrapf(ErrInvalidGeometry, "size %q is not WIDTHxHEIGHT or a known resolution", s)
	}
	width, err := strconv.ParseFloat(w, 64)
	if err != nil {
		return Size{}, errors.Wrapf(ErrInvalidGeometry, "width in %q: %v", s, err)
	}
	height, err := strconv.ParseFloat(h, 64)
	if err != nil {
		return Size{}, errors.Wrapf(ErrInvalidGeometry, "height in %q: %v", s, err)
	}

	size := Size{Width: width, Height: height}
	if err := size.Validate(); err != nil {
		return Size{}, err
	}
	return size, nil
}
