// Package granular converts between individual flag "granules" and the
// combined bit-set that holds any number of them.
//
// A set of options is sometimes inclusive (a combined value passed around as
// one) and sometimes exclusive (iterating over the individual choices). An
// Enumeration ties the two views together.
package granular

import "fmt"

// Set is a combined bit-set of encoded granules.
type Set uint64

// Raw returns the underlying bits.
func (s Set) Raw() uint64 {
	return uint64(s)
}

// Contains reports whether every bit of other is also set in s.
func (s Set) Contains(other Set) bool {
	return s&other == other
}

// Union returns the bits set in either s or other.
func (s Set) Union(other Set) Set {
	return s | other
}

// Intersection returns the bits set in both s and other.
func (s Set) Intersection(other Set) Set {
	return s & other
}

// Subtracting returns the bits of s that are not set in other.
func (s Set) Subtracting(other Set) Set {
	return s &^ other
}

// IsEmpty reports whether no bit is set.
func (s Set) IsEmpty() bool {
	return s == 0
}

func (s Set) String() string {
	return fmt.Sprintf("%#b", uint64(s))
}
