// Package rpcalc implements a floating-point calculator for expressions in
// reverse Polish notation.
//
// An expression is a sequence of tokens. Numbers and the named constants e,
// pi, g, G, and c push values onto a stack; operators pop their operands and
// push one result. "10 2 -" is 8, "2 3 ^ 1 +" is 9, and "3.14159 2 rnd" is
// 3.14. An expression is well-formed when exactly one value remains at the
// end.
//
// Only structural problems are errors. Division by zero or the logarithm of a
// negative number give infinities and NaNs as usual.
//
package rpcalc
