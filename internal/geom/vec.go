// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package geom implements the small shared vocabulary of points, boxes and
// resolutions used across every computational module.
package geom

import "github.com/cpmech/gosl/la"

// Vec3 is a double-precision Cartesian vector.
type Vec3 struct {
	X, Y, Z float64
}

// Sub returns o - p.
func (o Vec3) Sub(p Vec3) Vec3 { return Vec3{o.X - p.X, o.Y - p.Y, o.Z - p.Z} }

// Add returns o + p.
func (o Vec3) Add(p Vec3) Vec3 { return Vec3{o.X + p.X, o.Y + p.Y, o.Z + p.Z} }

// Scale returns o scaled by s.
func (o Vec3) Scale(s float64) Vec3 { return Vec3{o.X * s, o.Y * s, o.Z * s} }

// Dot returns the dot product of o and p.
func (o Vec3) Dot(p Vec3) float64 { return o.X*p.X + o.Y*p.Y + o.Z*p.Z }

// Cross returns the cross product o x p.
func (o Vec3) Cross(p Vec3) Vec3 {
	return Vec3{
		o.Y*p.Z - o.Z*p.Y,
		o.Z*p.X - o.X*p.Z,
		o.X*p.Y - o.Y*p.X,
	}
}

// Norm returns the Euclidean length of o.
func (o Vec3) Norm() float64 { return la.VecNorm([]float64{o.X, o.Y, o.Z}) }

// Normalize returns o scaled to unit length. Returns the zero vector if o is
// (numerically) zero-length.
func (o Vec3) Normalize() Vec3 {
	n := o.Norm()
	if n < 1e-15 {
		return Vec3{}
	}
	return o.Scale(1 / n)
}

// Vec2 is a double-precision planar vector.
type Vec2 struct {
	X, Y float64
}
