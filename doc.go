// Package scicalc implements the expression engine of a scientific calculator.
//
// Expressions are single lines of ordinary calculator math: "2+3*4",
// "sin(30)^2 + cos(30)^2", "fact(5) % 7", "√(2)". The operators are + - * / %
// and ^, where "^" is right-associative and binds tighter than unary minus, so
// "-2^2" is -4. Functions always take one parenthesized argument. Results are
// float64; every failure is an *Error whose Kind says what went wrong.
//
// Trigonometric functions work in radians or degrees as selected by the
// AngleMode passed to each evaluation. Nothing is shared between evaluations.
package scicalc
