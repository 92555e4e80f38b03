package rpcalc

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

type tokenKind int

const (
	tokenNone tokenKind = iota
	// tokenNum is a numeric literal.
	tokenNum
	// tokenConst is a named constant.
	tokenConst
	// tokenOp is an operator symbol.
	tokenOp
)

func (k tokenKind) String() string {
	switch k {
	case tokenNone:
		return "None"
	case tokenNum:
		return "Num"
	case tokenConst:
		return "Const"
	case tokenOp:
		return "Op"
	default:
		return "tokenKind(" + strconv.Itoa(int(k)) + ")"
	}
}

var constants = map[string]float64{
	"e":  math.E,
	"pi": math.Pi,
	"g":  9.81,
	"G":  6.6743e-11,
	"c":  299792458,
}

// classify determines the kind of a token. For numbers and constants, v is
// the value to push. For operators, f is the operator.
func classify(tok string) (kind tokenKind, v float64, f Func) {
	if v, ok := literal(tok); ok {
		return tokenNum, v, nil
	}
	if v, ok := constants[tok]; ok {
		return tokenConst, v, nil
	}
	if f := globalfuncs[tok]; f != nil {
		return tokenOp, 0, f
	}
	return tokenNone, 0, nil
}

// literal parses a numeric literal. Spelled-out infinities and NaNs are not
// literals, but decimal literals too large or small for a float64 are, as
// ±Inf and ±0 respectively.
func literal(tok string) (float64, bool) {
	t := strings.TrimLeft(tok, "+-")
	if len(t) > 1 && t[0] == '0' && (t[1] == 'x' || t[1] == 'X') {
		// Hexadecimal floats are not decimal literals, even when they
		// overflow.
		return 0, false
	}
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	if math.IsInf(v, 0) || math.IsNaN(v) {
		// ParseFloat returns ±Inf for overflow, but we still need to give
		// up on "inf" and friends.
		if errors.Is(err, strconv.ErrRange) {
			return v, true
		}
		return 0, false
	}
	return v, true
}

// Constant returns the value of a named constant.
func Constant(name string) (float64, bool) {
	v, ok := constants[name]
	return v, ok
}

// Constants returns the names of all constants in sorted order.
func Constants() []string {
	return sortedKeys(constants)
}
