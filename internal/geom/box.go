// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import "github.com/cpmech/gosl/chk"

// Box is an axis-aligned 3D bounding box. It is immutable once constructed
// via NewBox; callers must not reach around that constructor to build one
// with non-monotonic bounds.
type Box struct {
	Xmin, Ymin, Zmin float64
	Xmax, Ymax, Zmax float64
}

// NewBox builds a Box, panicking if the bounds are not strictly increasing.
// This is an internal-invariant check (construction sites are all within
// this repo), not an input-validation boundary; callers that parse bounds
// from external data must validate before calling NewBox.
func NewBox(xmin, ymin, zmin, xmax, ymax, zmax float64) Box {
	if xmin >= xmax || ymin >= ymax || zmin >= zmax {
		chk.Panic("box bounds must be strictly increasing: got (%v,%v,%v)-(%v,%v,%v)",
			xmin, ymin, zmin, xmax, ymax, zmax)
	}
	return Box{xmin, ymin, zmin, xmax, ymax, zmax}
}

// Width returns xmax - xmin.
func (b Box) Width() float64 { return b.Xmax - b.Xmin }

// Height returns ymax - ymin.
func (b Box) Height() float64 { return b.Ymax - b.Ymin }

// Depth returns zmax - zmin.
func (b Box) Depth() float64 { return b.Zmax - b.Zmin }

// Min returns the lower corner.
func (b Box) Min() Vec3 { return Vec3{b.Xmin, b.Ymin, b.Zmin} }

// Max returns the upper corner.
func (b Box) Max() Vec3 { return Vec3{b.Xmax, b.Ymax, b.Zmax} }

// Resolution3 is a sampling shape for volumetric outputs, all entries >= 2.
type Resolution3 struct {
	Nx, Ny, Nz int
}

// Product returns Nx*Ny*Nz.
func (r Resolution3) Product() int { return r.Nx * r.Ny * r.Nz }

// Resolution2 is a sampling shape for planar outputs, both entries >= 2.
type Resolution2 struct {
	W, H int
}

// Product returns W*H.
func (r Resolution2) Product() int { return r.W * r.H }

// CalculateResolution performs aspect-preserving resolution scaling: the
// larger physical dimension receives r, the other is scaled and rounded.
// Ties (width == height) go to width, matching spec.md S1's third case.
// Both returned values are clamped to a minimum of 2, which is only
// relevant for pathological aspect ratios combined with a small r.
func CalculateResolution(width, height float64, r int) Resolution2 {
	var w, h int
	if width >= height {
		w = r
		h = roundClamped(height * float64(r) / width)
	} else {
		h = r
		w = roundClamped(width * float64(r) / height)
	}
	if w < 2 {
		w = 2
	}
	if h < 2 {
		h = 2
	}
	return Resolution2{W: w, H: h}
}

func roundClamped(v float64) int {
	return int(v + 0.5)
}
