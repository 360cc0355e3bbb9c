package scicalc

import (
	"strconv"
)

// ErrorKind identifies the reason an evaluation failed.
type ErrorKind uint8

const (
	kindNone ErrorKind = iota
	// UnexpectedCharacter is a rune where no grammar rule matches, including
	// input left over after a complete expression.
	UnexpectedCharacter
	// UnterminatedParenthesis is an open parenthesis with no matching close.
	UnterminatedParenthesis
	// MissingArgumentParenthesis is a function name not followed by an open
	// parenthesis.
	MissingArgumentParenthesis
	// UnknownFunction is an identifier that names no function.
	UnknownFunction
	// DivisionByZero is a division by exactly zero.
	DivisionByZero
	// ModuloByZero is a remainder by exactly zero.
	ModuloByZero
	// DomainError is a function called outside its domain.
	DomainError
	// NonFinite is an overall result that is NaN or infinite.
	NonFinite
)

func (k ErrorKind) String() string {
	switch k {
	case UnexpectedCharacter:
		return "UnexpectedCharacter"
	case UnterminatedParenthesis:
		return "UnterminatedParenthesis"
	case MissingArgumentParenthesis:
		return "MissingArgumentParenthesis"
	case UnknownFunction:
		return "UnknownFunction"
	case DivisionByZero:
		return "DivisionByZero"
	case ModuloByZero:
		return "ModuloByZero"
	case DomainError:
		return "DomainError"
	case NonFinite:
		return "NonFinite"
	default:
		return "ErrorKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Error is the error returned for every failed evaluation. It implements
// InputError.
type Error struct {
	// Kind is the reason for the failure.
	Kind ErrorKind
	// Col is the 1-based rune position in the normalized input where the
	// failure was detected, or 0 for failures that belong to the whole
	// expression.
	Col int
	// Char is the offending rune for UnexpectedCharacter and the parenthesis
	// errors. It is eof (-1) at the end of the input.
	Char rune
	// Func is the function name involved, if any.
	Func string
	// X is the offending operand for DomainError and NonFinite.
	X float64
}

func (err *Error) Error() string {
	var msg string
	switch err.Kind {
	case UnexpectedCharacter:
		msg = "unexpected " + quoteChar(err.Char)
	case UnterminatedParenthesis:
		msg = "expected ) but found " + quoteChar(err.Char)
	case MissingArgumentParenthesis:
		msg = "expected ( after " + err.Func + " but found " + quoteChar(err.Char)
	case UnknownFunction:
		msg = "unknown function " + strconv.Quote(err.Func)
	case DivisionByZero:
		msg = "division by zero"
	case ModuloByZero:
		msg = "modulo by zero"
	case DomainError:
		msg = strconv.FormatFloat(err.X, 'g', -1, 64) + " outside domain of " + err.Func
	case NonFinite:
		msg = "result " + strconv.FormatFloat(err.X, 'g', -1, 64) + " is not finite"
	default:
		msg = "invalid error " + err.Kind.String()
	}
	if err.Col <= 0 {
		return msg
	}
	return errpos(err.Col, msg)
}

func (err *Error) Pos() int {
	return err.Col
}

// Is reports whether target is an *Error of the same kind, so that the
// sentinel errors match with errors.Is.
func (err *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t != nil && t.Kind == err.Kind
}

// Sentinels for use with errors.Is. Only their kinds are meaningful.
var (
	ErrUnexpectedCharacter        = &Error{Kind: UnexpectedCharacter}
	ErrUnterminatedParenthesis    = &Error{Kind: UnterminatedParenthesis}
	ErrMissingArgumentParenthesis = &Error{Kind: MissingArgumentParenthesis}
	ErrUnknownFunction            = &Error{Kind: UnknownFunction}
	ErrDivisionByZero             = &Error{Kind: DivisionByZero}
	ErrModuloByZero               = &Error{Kind: ModuloByZero}
	ErrDomain                     = &Error{Kind: DomainError}
	ErrNonFinite                  = &Error{Kind: NonFinite}
)

func quoteChar(r rune) string {
	if r == eof {
		return "end of input"
	}
	return strconv.QuoteRune(r)
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the rune that caused the error, or 0 if the error has no
	// position.
	Pos() int
}

var _ InputError = (*Error)(nil)
