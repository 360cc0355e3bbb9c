package scicalc

import (
	"math"
	"strconv"
	"strings"
)

var (
	piText = strconv.FormatFloat(math.Pi, 'g', -1, 64)
	eText  = strconv.FormatFloat(math.E, 'g', -1, 64)
)

// glyphs replaces display notation with plain function names and numbers.
var glyphs = strings.NewReplacer(
	"sin⁻¹", "asin",
	"cos⁻¹", "acos",
	"tan⁻¹", "atan",
	"√", "sqrt",
	"∛", "cbrt",
	"π", piText,
)

// Normalize rewrites calculator notation in src into the plain text that the
// evaluator reads. Inverse trig glyphs become asin, acos, and atan; √ and ∛
// become sqrt and cbrt; π becomes the decimal value of pi. Then each e that is
// not part of a longer word becomes the decimal value of Euler's number.
// Normalize does not validate anything.
func Normalize(src string) string {
	s := glyphs.Replace(src)
	if !strings.ContainsRune(s, 'e') {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == 'e' && (i == 0 || !isLetter(s[i-1])) && (i == len(s)-1 || !isLetter(s[i+1])) {
			b.WriteString(eText)
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}

// isLetter reports whether c is an ASCII letter. Only ASCII letters protect
// an e from substitution.
func isLetter(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}
