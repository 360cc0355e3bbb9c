package scicalc

import (
	"math"
	"strconv"
)

// Func is a function that may be called by name in an expression. Every
// function takes exactly one argument.
type Func uint8

const (
	funcNone Func = iota

	Abs
	Exp
	Sqrt
	Cbrt
	Sin
	Cos
	Tan
	Asin
	Acos
	Atan
	Log   // natural logarithm
	Log10 // common logarithm
	Fact  // factorial
)

var funcnames = [...]string{
	Abs:   "abs",
	Exp:   "exp",
	Sqrt:  "sqrt",
	Cbrt:  "cbrt",
	Sin:   "sin",
	Cos:   "cos",
	Tan:   "tan",
	Asin:  "asin",
	Acos:  "acos",
	Atan:  "atan",
	Log:   "log",
	Log10: "log10",
	Fact:  "fact",
}

// functable maps names in expressions to functions. ln is an alias for log.
var functable = map[string]Func{
	"abs":   Abs,
	"exp":   Exp,
	"sqrt":  Sqrt,
	"cbrt":  Cbrt,
	"sin":   Sin,
	"cos":   Cos,
	"tan":   Tan,
	"asin":  Asin,
	"acos":  Acos,
	"atan":  Atan,
	"log":   Log,
	"ln":    Log,
	"log10": Log10,
	"fact":  Fact,
}

// LookupFunc finds the function with the given name.
func LookupFunc(name string) (Func, bool) {
	f, ok := functable[name]
	return f, ok
}

func (f Func) String() string {
	if int(f) < len(funcnames) && funcnames[f] != "" {
		return funcnames[f]
	}
	return "Func(" + strconv.Itoa(int(f)) + ")"
}

// Apply calls the function. In Degrees mode, sin, cos, and tan take their
// arguments in degrees, and asin, acos, and atan give their results in
// degrees. Arguments outside a function's domain give an *Error of kind
// DomainError.
func (f Func) Apply(x float64, mode AngleMode) (float64, error) {
	switch f {
	case Abs:
		return math.Abs(x), nil
	case Exp:
		return math.Exp(x), nil
	case Sqrt:
		if x < 0 {
			return 0, &Error{Kind: DomainError, Func: f.String(), X: x}
		}
		return math.Sqrt(x), nil
	case Cbrt:
		return math.Cbrt(x), nil
	case Sin:
		return math.Sin(mode.toRadians(x)), nil
	case Cos:
		return math.Cos(mode.toRadians(x)), nil
	case Tan:
		return math.Tan(mode.toRadians(x)), nil
	case Asin:
		return mode.fromRadians(math.Asin(x)), nil
	case Acos:
		return mode.fromRadians(math.Acos(x)), nil
	case Atan:
		return mode.fromRadians(math.Atan(x)), nil
	case Log:
		if x <= 0 {
			return 0, &Error{Kind: DomainError, Func: f.String(), X: x}
		}
		return math.Log(x), nil
	case Log10:
		if x <= 0 {
			return 0, &Error{Kind: DomainError, Func: f.String(), X: x}
		}
		return math.Log10(x), nil
	case Fact:
		return Factorial(x)
	default:
		panic("scicalc: invalid function " + f.String())
	}
}

// Factorial computes x! for non-negative integral x. Any other argument gives
// an *Error of kind DomainError. Results too large for a float64 are +Inf.
func Factorial(x float64) (float64, error) {
	if x < 0 || x != math.Floor(x) || math.IsInf(x, 0) {
		return 0, &Error{Kind: DomainError, Func: Fact.String(), X: x}
	}
	r := 1.0
	for i := 2.0; i <= x; i++ {
		r *= i
		if math.IsInf(r, 1) {
			break
		}
	}
	return r, nil
}

// AngleMode selects the unit of angles for trigonometric functions.
type AngleMode uint8

const (
	// Radians uses angles as they are.
	Radians AngleMode = iota
	// Degrees converts angles from and to degrees.
	Degrees
)

func (m AngleMode) String() string {
	switch m {
	case Radians:
		return "radians"
	case Degrees:
		return "degrees"
	default:
		return "AngleMode(" + strconv.Itoa(int(m)) + ")"
	}
}

func (m AngleMode) toRadians(x float64) float64 {
	if m == Degrees {
		return x * (math.Pi / 180)
	}
	return x
}

func (m AngleMode) fromRadians(x float64) float64 {
	if m == Degrees {
		return x * (180 / math.Pi)
	}
	return x
}
