package rpcalc

import (
	"math"
	"sort"
)

// Func is an operator from reals to a real.
type Func interface {
	// Arity returns the number of operands the operator pops.
	Arity() int

	// Call evaluates the operator. args has length Arity and is in reading
	// order: for "a b op", args is [a, b]. Call may modify the elements of
	// args.
	Call(args []float64) (float64, error)
}

var globalfuncs = map[string]Func{
	"+": Dyadic(func(a, b float64) float64 { return a + b }),
	"-": Dyadic(func(a, b float64) float64 { return a - b }),
	"*": Dyadic(func(a, b float64) float64 { return a * b }),
	"x": Dyadic(func(a, b float64) float64 { return a * b }),
	"/": Dyadic(func(a, b float64) float64 { return a / b }),
	"%": Dyadic(math.Mod),
	"^": Dyadic(math.Pow),

	"log": Dyadic(func(a, b float64) float64 { return math.Log(a) / math.Log(b) }),
	"rnd": Dyadic(Round),

	"ln":    Monadic(math.Log),
	"log2":  Monadic(math.Log2),
	"log10": Monadic(math.Log10),

	"sin": Monadic(math.Sin),
	"cos": Monadic(math.Cos),
	"tan": Monadic(math.Tan),
	"csc": Monadic(func(x float64) float64 { return 1 / math.Sin(x) }),
	"sec": Monadic(func(x float64) float64 { return 1 / math.Cos(x) }),
	"cot": Monadic(func(x float64) float64 { return 1 / math.Tan(x) }),

	"arcsin": Monadic(math.Asin),
	"arccos": Monadic(math.Acos),
	"arctan": Monadic(math.Atan),
	// These are reciprocals of the inverse functions, not the inverses of
	// the reciprocal functions. E.g. arccsc 2 is 1/asin(2), which is NaN,
	// where the inverse cosecant is asin(1/2).
	"arccsc": Monadic(func(x float64) float64 { return 1 / math.Asin(x) }),
	"arcsec": Monadic(func(x float64) float64 { return 1 / math.Acos(x) }),
	"arccot": Monadic(func(x float64) float64 { return 1 / math.Atan(x) }),

	"!": factorial{},
}

// Lookup returns the operator with the given symbol, or nil if there is none.
func Lookup(name string) Func {
	return globalfuncs[name]
}

// Operators returns the symbols of all operators in sorted order.
func Operators() []string {
	return sortedKeys(globalfuncs)
}

func sortedKeys[V any](m map[string]V) []string {
	r := make([]string, 0, len(m))
	for k := range m {
		r = append(r, k)
	}
	sort.Strings(r)
	return r
}

type monadic struct {
	f func(float64) float64
}

func (m monadic) Arity() int {
	return 1
}

func (m monadic) Call(args []float64) (float64, error) {
	return m.f(args[0]), nil
}

// Monadic wraps a function of one variable into a Func.
func Monadic(f func(float64) float64) Func {
	return monadic{f}
}

type dyadic struct {
	f func(a, b float64) float64
}

func (d dyadic) Arity() int {
	return 2
}

func (d dyadic) Call(args []float64) (float64, error) {
	return d.f(args[0], args[1]), nil
}

// Dyadic wraps a function of two variables into a Func. a is the operand
// pushed first.
func Dyadic(f func(a, b float64) float64) Func {
	return dyadic{f}
}

type factorial struct{}

func (factorial) Arity() int {
	return 1
}

func (factorial) Call(args []float64) (float64, error) {
	return Factorial(args[0])
}

// Round rounds x to prec decimal places, with halves rounded away from zero.
// prec is itself rounded to an integer first and may be negative, e.g.
// Round(1234, -2) is 1200.
func Round(x, prec float64) float64 {
	p := math.Pow(10, math.Round(prec))
	return math.Round(x*p) / p
}

// Factorial computes the factorial of x rounded to the nearest integer. If the
// rounded value is negative, the result is a *FactorialError. Operands too
// large for a float64 factorial give +Inf. A NaN operand gives 1.
func Factorial(x float64) (float64, error) {
	n := math.Round(x)
	if n < 0 {
		return 0, &FactorialError{X: n}
	}
	r := 1.0
	for i := 2.0; i <= n && !math.IsInf(r, 1); i++ {
		r *= i
	}
	return r, nil
}
