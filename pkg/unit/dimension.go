package unit

import "fmt"

// Dimension identifies one SI base dimension. Its value is the index of the
// dimension in every exponent vector.
type Dimension int

const (
	Mass Dimension = iota
	Length
	Time
	Temperature
	Current
	Amount
	LuminousIntensity
)

// NumDimensions is the length of every exponent vector.
const NumDimensions = 7

// DimensionTags holds the single-letter tag of each dimension in exponent order.
var DimensionTags = [NumDimensions]string{"M", "L", "T", "K", "I", "N", "J"}

// SIBaseUnits holds the SI base-unit name of each dimension in exponent order.
var SIBaseUnits = [NumDimensions]string{"kg", "m", "s", "K", "A", "mol", "cd"}

var dimensionNames = [NumDimensions]string{
	"mass", "length", "time", "temperature", "current", "amount", "luminous intensity",
}

// Valid reports whether d is one of the seven base dimensions.
func (d Dimension) Valid() bool {
	return d >= Mass && d <= LuminousIntensity
}

// Tag returns the dimension letter, e.g. "L" for Length.
func (d Dimension) Tag() string {
	if !d.Valid() {
		return "?"
	}
	return DimensionTags[d]
}

// SIUnit returns the SI base-unit name, e.g. "m" for Length.
func (d Dimension) SIUnit() string {
	if !d.Valid() {
		return "?"
	}
	return SIBaseUnits[d]
}

// String returns the string representation of the dimension
func (d Dimension) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Dimension(%d)", int(d))
	}
	return dimensionNames[d]
}

// ParseDimension looks a dimension up by its tag letter.
func ParseDimension(tag string) (Dimension, error) {
	for i, t := range DimensionTags {
		if t == tag {
			return Dimension(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q (want one of M, L, T, K, I, N, J)", ErrInvalidDimensionTag, tag)
}
