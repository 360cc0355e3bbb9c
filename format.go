package scicalc

import (
	"math"
	"strconv"
	"strings"
)

// Format renders a result for display. Values within 1e-10 of zero are "0",
// integral values have no decimal point, and anything else has at most 12
// decimal places with trailing zeros removed.
func Format(v float64) string {
	switch {
	case math.IsNaN(v), math.IsInf(v, 0):
		return strconv.FormatFloat(v, 'g', -1, 64)
	case math.Abs(v) < 1e-10:
		return "0"
	case v == math.Floor(v):
		return strconv.FormatFloat(v, 'f', 0, 64)
	}
	// Prefer the shortest text that identifies v, so that 123456.789 does not
	// show the binary error in its twelfth decimal place.
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if k := strings.IndexByte(s, '.'); k < 0 || len(s)-k-1 > 12 {
		s = strconv.FormatFloat(v, 'f', 12, 64)
	}
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	return s
}
