package scicalc

import (
	"math"
	"math/big"
	"regexp"
	"strconv"
)

// Combinatoric is a permutation or combination count written as nPr or nCr.
type Combinatoric struct {
	// Op is 'P' for permutations or 'C' for combinations.
	Op byte
	N  int
	R  int
}

var combinRE = regexp.MustCompile(`^\s*([+-]?[0-9]+)\s*([PC])\s*([+-]?[0-9]+)\s*$`)

// ParseCombinatoric recognizes text that is exactly an integer, P or C, and
// another integer. These forms are not part of the expression grammar and do
// not combine with other arithmetic: "2+5P3" is not a Combinatoric.
func ParseCombinatoric(src string) (Combinatoric, bool) {
	m := combinRE.FindStringSubmatch(src)
	if m == nil {
		return Combinatoric{}, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return Combinatoric{}, false
	}
	r, err := strconv.Atoi(m[3])
	if err != nil {
		return Combinatoric{}, false
	}
	return Combinatoric{Op: m[2][0], N: n, R: r}, true
}

// Value computes the count.
func (c Combinatoric) Value() float64 {
	if c.Op == 'P' {
		return Permutations(c.N, c.R)
	}
	return Combinations(c.N, c.R)
}

func (c Combinatoric) String() string {
	return strconv.Itoa(c.N) + string(c.Op) + strconv.Itoa(c.R)
}

// maxLog is slightly above the natural log of the largest float64. Counts
// whose logs exceed it are infinite without computing them exactly.
const maxLog = 709.8

// lfact is the natural log of n!.
func lfact(n int) float64 {
	r, _ := math.Lgamma(float64(n) + 1)
	return r
}

// Permutations is n!/(n-r)!, or 0 if n or r is negative or r > n. Counts too
// large for a float64 are +Inf.
func Permutations(n, r int) float64 {
	if n < 0 || r < 0 || r > n {
		return 0
	}
	if lfact(n)-lfact(n-r) > maxLog {
		return math.Inf(1)
	}
	p := new(big.Int).MulRange(int64(n-r+1), int64(n))
	f, _ := new(big.Float).SetInt(p).Float64()
	return f
}

// Combinations is n!/(r!(n-r)!), or 0 if n or r is negative or r > n. Counts
// too large for a float64 are +Inf.
func Combinations(n, r int) float64 {
	if n < 0 || r < 0 || r > n {
		return 0
	}
	if lfact(n)-lfact(r)-lfact(n-r) > maxLog {
		return math.Inf(1)
	}
	c := new(big.Int).Binomial(int64(n), int64(r))
	f, _ := new(big.Float).SetInt(c).Float64()
	return f
}
