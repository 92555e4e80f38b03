package rpcalc_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/zephyrtronium/rpcalc"
)

func FuzzSolve(f *testing.F) {
	f.Add("1 2 +")
	f.Add("5 !")
	f.Add("3.14159 2 rnd")
	f.Add("pi sin cos tan")
	f.Add("-1 !")
	f.Fuzz(func(t *testing.T, s string) {
		r, err := rpcalc.Solve(strings.Split(s, " "))
		if err == nil {
			return
		}
		if r != 0 {
			t.Errorf("%q gave result %g with error %v", s, r, err)
		}
		var ie rpcalc.InputError
		switch {
		case errors.As(err, &ie):
			if ie.Position() < 1 {
				t.Errorf("%q gave error with position %d: %v", s, ie.Position(), err)
			}
		case errors.As(err, new(*rpcalc.EmptyExpressionError)):
		case errors.As(err, new(*rpcalc.UnusedValuesError)):
		default:
			t.Errorf("%q gave unexpected error %#v", s, err)
		}
	})
}
