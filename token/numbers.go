package token

import (
	"math"
	"strconv"
	"strings"
)

// Infinity is a decimal literal which overflows to infinity when read back.
const Infinity = "1e309"

// NaN is an expression which evaluates to a NaN, written the way a
// parenthesized subtraction is.
const NaN = "(" + Infinity + " - " + Infinity + ")"

// FormatFloat returns the canonical representation of f: the shortest
// digits which read back to f, in positional notation when the decimal
// exponent lies in [-4, 16) and with a ".0" suffix for integral values.
func FormatFloat(f float64) string {
	return formatFloat(f, true)
}

// FormatImag returns the canonical representation of a pure imaginary
// number with imaginary part f, e.g. "1j" or "2.5j".
func FormatImag(f float64) string {
	return formatFloat(f, false) + "j"
}

func formatFloat(f float64, dotZero bool) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	e := strconv.FormatFloat(f, 'e', -1, 64)
	i := strings.IndexByte(e, 'e')
	exp, _ := strconv.Atoi(e[i+1:])
	if exp < -4 || exp >= 16 {
		return e
	}
	res := strconv.FormatFloat(f, 'f', -1, 64)
	if dotZero && !strings.ContainsAny(res, ".") {
		res += ".0"
	}
	return res
}

// FloatLiteral returns source text for f. Infinities are written as
// overflowing literals and NaN as an expression producing one.
func FloatLiteral(f float64) string {
	if math.IsNaN(f) {
		return NaN
	}
	return strings.Replace(FormatFloat(f), "inf", Infinity, 1)
}

// ImagLiteral returns source text for an imaginary literal.
func ImagLiteral(f float64) string {
	if math.IsNaN(f) {
		return "(" + NaN + " * 1j)"
	}
	return strings.Replace(FormatImag(f), "inf", Infinity, 1)
}
