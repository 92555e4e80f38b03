package rpcalc

import (
	"errors"
	"strings"
)

// Solve evaluates an expression given as a sequence of tokens and returns the
// result. Each token is a numeric literal, a named constant, or an operator.
// Empty tokens are unknown operators. Evaluation stops at the first error.
func Solve(tokens []string) (float64, error) {
	var stack Stack[float64]
	var args [2]float64
	for i, tok := range tokens {
		pos := i + 1
		kind, v, f := classify(tok)
		switch kind {
		case tokenNum, tokenConst:
			stack.Push(v)
		case tokenOp:
			r, err := call(&stack, f, args[:f.Arity()], tok, pos)
			if err != nil {
				return 0, err
			}
			stack.Push(r)
		default:
			return 0, &OperatorError{Pos: pos, Operator: tok}
		}
	}
	switch stack.Len() {
	case 0:
		return 0, &EmptyExpressionError{}
	case 1:
		r, _ := stack.Pop()
		return r, nil
	default:
		return 0, &UnusedValuesError{N: stack.Len()}
	}
}

// call pops operands for f into args and calls it. The first value popped is
// the last argument.
func call(stack *Stack[float64], f Func, args []float64, name string, pos int) (float64, error) {
	if stack.Len() < len(args) {
		return 0, &UnderflowError{Pos: pos, Operator: name, Want: len(args), Have: stack.Len()}
	}
	for k := len(args) - 1; k >= 0; k-- {
		args[k], _ = stack.Pop()
	}
	r, err := f.Call(args)
	if err != nil {
		var ferr *FactorialError
		if errors.As(err, &ferr) {
			ferr.Pos = pos
		}
		return 0, err
	}
	return r, nil
}

// SolveString is a shortcut to split an expression on whitespace and solve
// it.
func SolveString(src string) (float64, error) {
	return Solve(strings.Fields(src))
}
