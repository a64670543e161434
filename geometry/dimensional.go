package geometry

// TwoDimensional is anything with two named numeric dimensions, such as
// (x, y) or (width, height).
type TwoDimensional interface {
	First() float64
	Second() float64
}

// ComparisonApproach decides how two TwoDimensional values are compared.
type ComparisonApproach int

const (
	// CompareAtAll registers inequality if either dimension differs in the tested direction.
	CompareAtAll ComparisonApproach = iota
	// CompareFirst compares only the first dimension.
	CompareFirst
	// CompareSecond compares only the second dimension.
	CompareSecond
	// CompareAdditive compares the sums of both dimensions.
	CompareAdditive
	// CompareMultiplicative compares the products of both dimensions.
	CompareMultiplicative
	// CompareDivisive compares the quotients of both dimensions.
	CompareDivisive
)

func (a ComparisonApproach) String() string {
	switch a {
	case CompareAtAll:
		return "atAll"
	case CompareFirst:
		return "first"
	case CompareSecond:
		return "second"
	case CompareAdditive:
		return "additive"
	case CompareMultiplicative:
		return "multiplicative"
	case CompareDivisive:
		return "divisive"
	default:
		return "unknown"
	}
}

// IsLessThan reports whether a is less than b under the given approach.
func IsLessThan(a, b TwoDimensional, approach ComparisonApproach) bool {
	return compare(a, b, approach, func(x, y float64) bool { return x < y })
}

// IsGreaterThan reports whether a is greater than b under the given approach.
func IsGreaterThan(a, b TwoDimensional, approach ComparisonApproach) bool {
	return compare(a, b, approach, func(x, y float64) bool { return x > y })
}

// SmallestDimension returns the lesser of the two dimensions.
func SmallestDimension(v TwoDimensional) float64 {
	return min(v.First(), v.Second())
}

// LargestDimension returns the greater of the two dimensions.
func LargestDimension(v TwoDimensional) float64 {
	return max(v.First(), v.Second())
}

func compare(a, b TwoDimensional, approach ComparisonApproach, cmp func(x, y float64) bool) bool {
	combined := func(combine func(x, y float64) float64) bool {
		return cmp(combine(a.First(), a.Second()), combine(b.First(), b.Second()))
	}

	switch approach {
	case CompareAtAll:
		return cmp(a.First(), b.First()) || cmp(a.Second(), b.Second())
	case CompareFirst:
		return cmp(a.First(), b.First())
	case CompareSecond:
		return cmp(a.Second(), b.Second())
	case CompareAdditive:
		return combined(func(x, y float64) float64 { return x + y })
	case CompareMultiplicative:
		return combined(func(x, y float64) float64 { return x * y })
	case CompareDivisive:
		return combined(func(x, y float64) float64 { return x / y })
	default:
		return false
	}
}
