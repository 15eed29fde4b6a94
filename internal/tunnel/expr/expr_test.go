// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expr

import (
	"math"
	"testing"
)

func approxEqual(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestParseAndEvalPolynomial(t *testing.T) {
	e, err := Parse("2*t^2 + 3*t - 1")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	for _, tt := range []float64{0, 1, 2, -3} {
		got := e.Eval(tt)
		want := 2*tt*tt + 3*tt - 1
		if !approxEqual(got, want) {
			t.Errorf("Eval(%v) = %v, want %v", tt, got, want)
		}
	}
}

func TestDerivPolynomial(t *testing.T) {
	e, err := Parse("2*t^2 + 3*t")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	d := e.Deriv()
	for _, tt := range []float64{0, 1, 5} {
		got := d.Eval(tt)
		want := 4*tt + 3
		if !approxEqual(got, want) {
			t.Errorf("Deriv.Eval(%v) = %v, want %v", tt, got, want)
		}
	}
}

func TestParseFunctionsAndDeriv(t *testing.T) {
	e, err := Parse("sin(t)")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !approxEqual(e.Eval(0), 0) {
		t.Errorf("sin(0) = %v, want 0", e.Eval(0))
	}
	d := e.Deriv()
	if !approxEqual(d.Eval(0), 1) {
		t.Errorf("cos(0) via Deriv = %v, want 1", d.Eval(0))
	}
}

func TestParseDivisionAndQuotientRule(t *testing.T) {
	e, err := Parse("t / (t + 1)")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !approxEqual(e.Eval(1), 0.5) {
		t.Errorf("Eval(1) = %v, want 0.5", e.Eval(1))
	}
	d := e.Deriv()
	// d/dt [t/(t+1)] = 1/(t+1)^2
	want := 1.0 / ((1 + 1) * (1 + 1))
	if !approxEqual(d.Eval(1), want) {
		t.Errorf("Deriv.Eval(1) = %v, want %v", d.Eval(1), want)
	}
}

func TestParseRejectsMalformedInput(t *testing.T) {
	if _, err := Parse("t +"); err == nil {
		t.Fatal("expected error for trailing operator")
	}
	if _, err := Parse("foo(t)"); err == nil {
		t.Fatal("expected error for unknown function")
	}
	if _, err := Parse("(t + 1"); err == nil {
		t.Fatal("expected error for unmatched paren")
	}
}
