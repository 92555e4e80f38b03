package rpcalc

import "strconv"

// OperatorError is an error indicating a token that is not a number, a
// constant, or a known operator. It implements InputError.
type OperatorError struct {
	// Pos is the position of the token.
	Pos int
	// Operator is the token that was not understood. It may be empty.
	Operator string
}

func (err *OperatorError) Error() string {
	return errpos(err.Pos, "unknown operator "+strconv.Quote(err.Operator))
}

func (err *OperatorError) Position() int {
	return err.Pos
}

// UnderflowError is an error indicating an operator with fewer values on the
// stack than it takes. It implements InputError.
type UnderflowError struct {
	// Pos is the position of the operator.
	Pos int
	// Operator is the starved operator.
	Operator string
	// Want is the operator's arity.
	Want int
	// Have is the number of values that were on the stack.
	Have int
}

func (err *UnderflowError) Error() string {
	return errpos(err.Pos, "too few arguments for "+err.Operator)
}

func (err *UnderflowError) Position() int {
	return err.Pos
}

// FactorialError is an error indicating a factorial of a negative number. It
// implements InputError.
type FactorialError struct {
	// Pos is the position of the ! operator, or 0 if the factorial was not
	// computed during evaluation of an expression.
	Pos int
	// X is the rounded operand.
	X float64
}

func (err *FactorialError) Error() string {
	msg := "cannot take factorial of negative number " + strconv.FormatFloat(err.X, 'g', -1, 64)
	if err.Pos <= 0 {
		return msg
	}
	return errpos(err.Pos, msg)
}

func (err *FactorialError) Position() int {
	return err.Pos
}

// EmptyExpressionError is an error indicating an expression that produced no
// values.
type EmptyExpressionError struct{}

func (err *EmptyExpressionError) Error() string {
	return "no values given"
}

// UnusedValuesError is an error indicating an expression that left more than
// one value on the stack.
type UnusedValuesError struct {
	// N is the number of values left.
	N int
}

func (err *UnusedValuesError) Error() string {
	return "invalid syntax: " + strconv.Itoa(err.N) + " values left unused"
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting
// from a particular token implements InputError.
type InputError interface {
	error
	// Position returns the 1-based index of the token that caused the error.
	Position() int
}

var (
	_ InputError = (*OperatorError)(nil)
	_ InputError = (*UnderflowError)(nil)
	_ InputError = (*FactorialError)(nil)
)
