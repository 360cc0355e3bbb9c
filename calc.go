package scicalc

import "math"

// Calculate evaluates text the way a calculator's equals key does: a whole
// input of the form nPr or nCr is a permutation or combination count, and
// anything else is an expression for EvalString.
func Calculate(src string, mode AngleMode) (float64, error) {
	c, ok := ParseCombinatoric(src)
	if !ok {
		return EvalString(src, mode)
	}
	x := c.Value()
	if math.IsInf(x, 0) {
		return 0, &Error{Kind: NonFinite, X: x}
	}
	return x, nil
}
