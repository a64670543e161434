package granular

import (
	"slices"

	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"

	"github.com/nvr-ai/go-pixelkit/logger"
)

// MaxBitMaskIdentity is the largest granule identity that fits in a Set when
// identities are shifted into bit positions.
const MaxBitMaskIdentity = 63

var (
	// ErrBitWidthOverflow is returned when a granule cannot be shifted into a Set.
	ErrBitWidthOverflow = errors.New("granular: granule identity exceeds set bit width")

	// ErrInvalidGranule is returned for negative or repeated granule identities.
	ErrInvalidGranule = errors.New("granular: invalid granule")
)

// Option configures an Enumeration.
type Option func(*options)

type options struct {
	bitMask bool
}

// WithBitMask chooses the encoding strategy. When enabled (the default) a
// granule with identity k occupies bit 1<<k. When disabled the identity is
// used as-is, so the identities must be non-zero and share no bits.
func WithBitMask(enabled bool) Option {
	return func(o *options) {
		o.bitMask = enabled
	}
}

// Enumeration is the ordered, exhaustive list of granules of one kind and the
// strategy for encoding them into a Set.
type Enumeration[G constraints.Integer] struct {
	members []G
	bitMask bool
}

// NewEnumeration validates members and returns an Enumeration over them.
// Members keep their declaration order; Decode reports granules in that order.
//
// Arguments:
//   - members: Every granule of the enumeration.
//   - opts: Encoding options; see WithBitMask.
//
// Returns:
//   - *Enumeration[G]: The enumeration.
//   - error: ErrBitWidthOverflow if a bit-mask identity is above MaxBitMaskIdentity,
//     ErrInvalidGranule for negative or duplicate identities, or for exact
//     identities that are zero or overlap.
func NewEnumeration[G constraints.Integer](members []G, opts ...Option) (*Enumeration[G], error) {
	o := options{bitMask: true}
	for _, opt := range opts {
		opt(&o)
	}

	seen := make(map[G]struct{}, len(members))
	var used Set
	for _, g := range members {
		var err error
		switch {
		case g < 0:
			err = errors.Wrapf(ErrInvalidGranule, "identity %d is negative", int64(g))
		case o.bitMask && uint64(g) > MaxBitMaskIdentity:
			err = errors.Wrapf(ErrBitWidthOverflow, "identity %d, max %d", uint64(g), MaxBitMaskIdentity)
		case !o.bitMask && g == 0:
			err = errors.Wrap(ErrInvalidGranule, "exact identity 0 is contained in every set")
		case !o.bitMask && !used.Intersection(Set(uint64(g))).IsEmpty():
			err = errors.Wrapf(ErrInvalidGranule, "exact identity %#b overlaps earlier identities %s", uint64(g), used)
		}
		if _, dup := seen[g]; dup && err == nil {
			err = errors.Wrapf(ErrInvalidGranule, "identity %d is repeated", uint64(g))
		}
		if err != nil {
			logger.Get().Debug("rejected granule enumeration", "error", err)
			return nil, err
		}
		seen[g] = struct{}{}
		used = used.Union(Set(uint64(g)))
	}

	return &Enumeration[G]{
		members: slices.Clone(members),
		bitMask: o.bitMask,
	}, nil
}

// MustEnumeration is like NewEnumeration but panics on an invalid definition.
// It is intended for package-level enumeration variables.
func MustEnumeration[G constraints.Integer](members []G, opts ...Option) *Enumeration[G] {
	e, err := NewEnumeration(members, opts...)
	if err != nil {
		panic(err)
	}
	return e
}

// IndicatesBitMask reports whether granules are shifted into bit positions.
func (e *Enumeration[G]) IndicatesBitMask() bool {
	return e.bitMask
}

// Members returns a copy of the granules in declaration order.
func (e *Enumeration[G]) Members() []G {
	return slices.Clone(e.members)
}

// Shifting encodes g as the single bit 1<<g regardless of the enumeration's strategy.
func (e *Enumeration[G]) Shifting(g G) Set {
	return Set(1) << uint64(g)
}

// Exactly encodes g as its literal identity regardless of the enumeration's strategy.
func (e *Enumeration[G]) Exactly(g G) Set {
	return Set(uint64(g))
}

// Encode returns the Set holding only g, using the enumeration's strategy.
func (e *Enumeration[G]) Encode(g G) Set {
	if e.bitMask {
		return e.Shifting(g)
	}
	return e.Exactly(g)
}

// Construct combines the encodings of granules with bitwise OR.
func (e *Enumeration[G]) Construct(granules ...G) Set {
	var s Set
	for _, g := range granules {
		s |= e.Encode(g)
	}
	return s
}

// Contains reports whether the encoding of g is wholly present in s.
func (e *Enumeration[G]) Contains(s Set, g G) bool {
	return s.Contains(e.Encode(g))
}

// Decode lists, in declaration order, every member whose encoding is contained in s.
func (e *Enumeration[G]) Decode(s Set) []G {
	granules := make([]G, 0, len(e.members))
	for _, g := range e.members {
		if e.Contains(s, g) {
			granules = append(granules, g)
		}
	}
	return granules
}
