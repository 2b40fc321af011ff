package dataerr

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/GriffinCanCode/measure/internal/shared/numeric"
)

// errorSigFigs is the fixed display precision of the uncertainty term.
const errorSigFigs = 1

// FormatScientific renders num in scientific notation with sigfig digits,
// e.g. FormatScientific(1234.5, 3) == "1.23E3".
//
// The mantissa is truncated, not rounded, and padded with zeros. Zero renders
// as "0." followed by sigfig-1 zeros with no exponent. The sign does not count
// as a digit. NaN and infinities render as "NaN", "+Inf" and "-Inf", and a
// sigfig below 1 is treated as 1.
func FormatScientific(num float64, sigfig int) string {
	if num == 0 {
		return "0." + strings.Repeat("0", max(sigfig-1, 0))
	}
	if !numeric.Finite(num) {
		return strconv.FormatFloat(num, 'g', -1, 64)
	}
	sigfig = max(sigfig, 1)

	sign := ""
	if num < 0 {
		sign = "-"
		num = -num
	}

	// shortest round-trip digits; the exponent equals floor(log10(num))
	mantissa, exp, _ := strings.Cut(strconv.FormatFloat(num, 'e', -1, 64), "e")
	if !strings.Contains(mantissa, ".") {
		mantissa += "."
	}
	mantissa += strings.Repeat("0", sigfig)

	e, _ := strconv.Atoi(exp)
	return sign + mantissa[:sigfig+1] + "E" + strconv.Itoa(e)
}

// Show renders "name / unit : value +/- error". The value uses the
// quantity's significant figures, the error always one.
func (d DataErr) Show() string {
	return fmt.Sprintf("%s / %s : %s +/- %s",
		d.name,
		d.unit.UnitsString(),
		FormatScientific(d.value, d.sigFigs),
		FormatScientific(d.uncertainty, errorSigFigs),
	)
}

// String implements fmt.Stringer.
func (d DataErr) String() string {
	return d.Show()
}
