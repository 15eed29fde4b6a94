// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package expr implements a small symbolic-expression engine over a
// single variable t: parsing, evaluation and differentiation. It replaces
// the sympy-based parser of
// original_source/geocruncher/TunnelFunctions.py/TunnelShapeGeneration.py
// with a self-contained AST, since this engine has no Python/sympy
// dependency to call into (spec.md §4.7 step 1).
package expr

import "math"

// Expr is a symbolic expression over t.
type Expr interface {
	// Eval evaluates the expression at t.
	Eval(t float64) float64
	// Deriv returns the symbolic derivative d/dt.
	Deriv() Expr
}

type constExpr float64

func (c constExpr) Eval(float64) float64 { return float64(c) }
func (c constExpr) Deriv() Expr          { return constExpr(0) }

type varExpr struct{}

func (varExpr) Eval(t float64) float64 { return t }
func (varExpr) Deriv() Expr            { return constExpr(1) }

type addExpr struct{ a, b Expr }

func (e addExpr) Eval(t float64) float64 { return e.a.Eval(t) + e.b.Eval(t) }
func (e addExpr) Deriv() Expr            { return addExpr{e.a.Deriv(), e.b.Deriv()} }

type subExpr struct{ a, b Expr }

func (e subExpr) Eval(t float64) float64 { return e.a.Eval(t) - e.b.Eval(t) }
func (e subExpr) Deriv() Expr            { return subExpr{e.a.Deriv(), e.b.Deriv()} }

type mulExpr struct{ a, b Expr }

func (e mulExpr) Eval(t float64) float64 { return e.a.Eval(t) * e.b.Eval(t) }
func (e mulExpr) Deriv() Expr {
	// product rule: (a*b)' = a'*b + a*b'
	return addExpr{mulExpr{e.a.Deriv(), e.b}, mulExpr{e.a, e.b.Deriv()}}
}

type divExpr struct{ a, b Expr }

func (e divExpr) Eval(t float64) float64 { return e.a.Eval(t) / e.b.Eval(t) }
func (e divExpr) Deriv() Expr {
	// quotient rule: (a/b)' = (a'*b - a*b') / b^2
	num := subExpr{mulExpr{e.a.Deriv(), e.b}, mulExpr{e.a, e.b.Deriv()}}
	den := powExpr{e.b, constExpr(2)}
	return divExpr{num, den}
}

type negExpr struct{ a Expr }

func (e negExpr) Eval(t float64) float64 { return -e.a.Eval(t) }
func (e negExpr) Deriv() Expr            { return negExpr{e.a.Deriv()} }

// powExpr is base^exp. Differentiation uses the power rule:
// (a^n)' = n * a^(n-1) * a', which is exact when the exponent does not
// depend on t (polynomials, x^2, x^-1, x^(1/2), ...).
type powExpr struct {
	base Expr
	exp  Expr
}

func (e powExpr) Eval(t float64) float64 { return math.Pow(e.base.Eval(t), e.exp.Eval(t)) }
func (e powExpr) Deriv() Expr {
	if n, ok := e.exp.(constExpr); ok {
		inner := powExpr{e.base, constExpr(float64(n) - 1)}
		return mulExpr{mulExpr{constExpr(float64(n)), inner}, e.base.Deriv()}
	}
	// A non-literal exponent (e.g. -1 or 1/2 parse as expression nodes)
	// gets the power rule w.r.t. the base only: any dependence of the
	// exponent itself on t is not differentiated.
	inner := powExpr{e.base, subExpr{e.exp, constExpr(1)}}
	return mulExpr{mulExpr{e.exp, inner}, e.base.Deriv()}
}

type unaryFunc struct {
	name string
	a    Expr
	fn   func(float64) float64
	// deriv builds the derivative of fn(a) given a and a.Deriv()
	deriv func(a, da Expr) Expr
}

func (e unaryFunc) Eval(t float64) float64 { return e.fn(e.a.Eval(t)) }
func (e unaryFunc) Deriv() Expr            { return e.deriv(e.a, e.a.Deriv()) }

func sinFunc(a Expr) Expr {
	return unaryFunc{"sin", a, math.Sin, func(a, da Expr) Expr {
		return mulExpr{unaryFunc{"cos", a, math.Cos, nil}, da}
	}}
}

func cosFunc(a Expr) Expr {
	return unaryFunc{"cos", a, math.Cos, func(a, da Expr) Expr {
		return negExpr{mulExpr{unaryFunc{"sin", a, math.Sin, nil}, da}}
	}}
}

func sqrtFunc(a Expr) Expr {
	return unaryFunc{"sqrt", a, math.Sqrt, func(a, da Expr) Expr {
		return divExpr{da, mulExpr{constExpr(2), unaryFunc{"sqrt", a, math.Sqrt, nil}}}
	}}
}

func expFunc(a Expr) Expr {
	return unaryFunc{"exp", a, math.Exp, func(a, da Expr) Expr {
		return mulExpr{unaryFunc{"exp", a, math.Exp, nil}, da}
	}}
}
