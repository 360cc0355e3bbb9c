package scicalc_test

import (
	"math"
	"strconv"
	"testing"

	"github.com/zephyrtronium/scicalc"
)

func TestNormalize(t *testing.T) {
	pi := strconv.FormatFloat(math.Pi, 'g', -1, 64)
	e := strconv.FormatFloat(math.E, 'g', -1, 64)
	cases := []struct {
		name string
		src  string
		want string
	}{
		{"plain", "1+2", "1+2"},
		{"empty", "", ""},
		{"asin", "sin⁻¹(1)", "asin(1)"},
		{"acos", "cos⁻¹(1)", "acos(1)"},
		{"atan", "tan⁻¹(1)", "atan(1)"},
		{"inverse-and-plain", "sin⁻¹(sin(1))", "asin(sin(1))"},
		{"sqrt", "√(4)", "sqrt(4)"},
		{"cbrt", "∛(8)", "cbrt(8)"},
		{"pi", "π", pi},
		{"two-pi", "2*π", "2*" + pi},
		{"e", "e", e},
		{"e-ops", "e^2-e", e + "^2-" + e},
		{"e-parens", "log(e)", "log(" + e + ")"},
		{"exp", "exp(1)", "exp(1)"},
		{"e-inside", "sec", "sec"},
		{"e-trailing", "ee", "ee"},
		{"e-upper", "Ea", "Ea"},
		{"e-after-upper", "Xe", "Xe"},
		{"e-after-digit", "2e", "2" + e},
		{"e-next-to-glyph", "eπ", e + pi},
		{"glyph-then-e", "√e", "sqrte"},
		{"no-validation", "√√)(", "sqrtsqrt)("},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := scicalc.Normalize(c.src); got != c.want {
				t.Errorf("Normalize(%q): want %q, got %q", c.src, c.want, got)
			}
		})
	}
}

func TestNormalizeConstants(t *testing.T) {
	r, err := scicalc.EvalString("π", scicalc.Radians)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(r-math.Pi) > 1e-9 {
		t.Errorf("π is %v", r)
	}
	r, err = scicalc.EvalString("e", scicalc.Radians)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(r-math.E) > 1e-9 {
		t.Errorf("e is %v", r)
	}
}
