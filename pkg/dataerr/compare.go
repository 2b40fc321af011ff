package dataerr

// Interval comparisons treat a quantity as the range [Bottom, Top]. Two
// quantities with different units never compare true.

// Overlaps reports whether both error ranges intersect.
func (d DataErr) Overlaps(other DataErr) bool {
	return d.unit.Equal(other.unit) && d.Top() >= other.Bottom() && other.Top() >= d.Bottom()
}

// GreaterThan reports whether d's range lies entirely above other's.
func (d DataErr) GreaterThan(other DataErr) bool {
	return d.unit.Equal(other.unit) && d.Bottom() > other.Top()
}

// LessThan reports whether d's range lies entirely below other's.
func (d DataErr) LessThan(other DataErr) bool {
	return d.unit.Equal(other.unit) && d.Top() < other.Bottom()
}

// AtLeast is GreaterThan allowing the ranges to touch.
func (d DataErr) AtLeast(other DataErr) bool {
	return d.unit.Equal(other.unit) && d.Bottom() >= other.Top()
}

// AtMost is LessThan allowing the ranges to touch.
func (d DataErr) AtMost(other DataErr) bool {
	return d.unit.Equal(other.unit) && d.Top() <= other.Bottom()
}

// Contains reports whether k lies within the error range.
func (d DataErr) Contains(k float64) bool {
	return d.Bottom() <= k && k <= d.Top()
}

// Exceeds reports whether the whole range lies above k.
func (d DataErr) Exceeds(k float64) bool {
	return d.Bottom() > k
}

// Below reports whether the whole range lies below k.
func (d DataErr) Below(k float64) bool {
	return d.Top() < k
}
