// Package reduce folds lists of numbers with one of the four basic operators.
package reduce

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Op is a reduction operator.
type Op int

const (
	Add Op = iota
	Subtract
	Multiply
	Divide
)

var opnames = map[string]Op{
	"add": Add, "+": Add, "sum": Add,
	"subtract": Subtract, "sub": Subtract, "-": Subtract,
	"multiply": Multiply, "mul": Multiply, "*": Multiply,
	"divide": Divide, "div": Divide, "/": Divide,
}

// ParseOp finds the operator with the given name or symbol.
func ParseOp(name string) (Op, error) {
	op, ok := opnames[strings.ToLower(name)]
	if !ok {
		return 0, fmt.Errorf("unknown operation %q", name)
	}
	return op, nil
}

func (o Op) String() string {
	switch o {
	case Add:
		return "add"
	case Subtract:
		return "subtract"
	case Multiply:
		return "multiply"
	case Divide:
		return "divide"
	}
	panic("reduce: unsupported operator")
}

var (
	// ErrTooFewOperands means a reduction was given fewer than two numbers.
	ErrTooFewOperands = errors.New("at least two numbers are required")
	// ErrDivisionByZero means a divisor was exactly zero.
	ErrDivisionByZero = errors.New("division by zero")
)

// Reduce folds nums from the left with op.
func Reduce(op Op, nums []float64) (float64, error) {
	if len(nums) < 2 {
		return 0, ErrTooFewOperands
	}
	r := nums[0]
	for i, x := range nums[1:] {
		switch op {
		case Add:
			r += x
		case Subtract:
			r -= x
		case Multiply:
			r *= x
		case Divide:
			if x == 0 {
				return 0, fmt.Errorf("operand %d: %w", i+2, ErrDivisionByZero)
			}
			r /= x
		default:
			panic("reduce: unsupported operator")
		}
	}
	return r, nil
}

// Command is a reduction written as an operation followed by its operands,
// e.g. "add 1 2 3" or "/ 100 4".
type Command struct {
	Op       string    `parser:"@(Ident | Op)"`
	Operands []float64 `parser:"@Number*"`
}

var commandLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Number", Pattern: `[-+]?(\d+\.?\d*|\.\d+)([eE][-+]?\d+)?`},
	{Name: "Ident", Pattern: `[a-zA-Z]+`},
	{Name: "Op", Pattern: `[-+*/]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var commandParser = participle.MustBuild[Command](
	participle.Lexer(commandLexer),
	participle.Elide("Whitespace"),
)

// ParseCommand parses a command line.
func ParseCommand(line string) (*Command, error) {
	return commandParser.ParseString("", line)
}

// Run performs the command's reduction.
func (c *Command) Run() (float64, error) {
	op, err := ParseOp(c.Op)
	if err != nil {
		return 0, err
	}
	return Reduce(op, c.Operands)
}

// Grammar describes the command syntax in EBNF.
func Grammar() string {
	return commandParser.String()
}
