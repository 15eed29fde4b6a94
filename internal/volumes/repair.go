// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package volumes

import (
	"github.com/ISSKA/geocruncher/internal/geom"
	"github.com/ISSKA/geocruncher/internal/mesh"
)

// stitchBorder attempts to close a mesh left open by marching cubes (e.g.
// a unit whose iso-surface grazes the sample box's outer padding shell).
// Boundary edges — those with no matching reverse edge — are walked into
// loops and each loop is fan-triangulated about its centroid. Reports
// false, unchanged, if the boundary edges don't resolve into closed loops
// (spec.md §4.3: "attempt a border-stitch repair; if repair fails, emit
// the mesh anyway ... and record a warning").
func stitchBorder(m mesh.Mesh) (mesh.Mesh, bool) {
	type edge struct{ a, b int }
	count := make(map[edge]int, len(m.Faces)*3)
	for _, f := range m.Faces {
		for i := 0; i < 3; i++ {
			count[edge{f[i], f[(i+1)%3]}]++
		}
	}

	next := make(map[int]int)
	for e, c := range count {
		if c != 1 || count[edge{e.b, e.a}] != 0 {
			continue
		}
		if _, dup := next[e.a]; dup {
			return m, false
		}
		next[e.a] = e.b
	}
	if len(next) == 0 {
		return m, false
	}

	verts := append([]geom.Vec3(nil), m.Vertices...)
	faces := append([][3]int(nil), m.Faces...)
	visited := make(map[int]bool, len(next))

	for start := range next {
		if visited[start] {
			continue
		}
		loop := []int{start}
		visited[start] = true
		cur := start
		for {
			nx, ok := next[cur]
			if !ok {
				return m, false
			}
			if nx == start {
				break
			}
			if visited[nx] {
				return m, false
			}
			visited[nx] = true
			loop = append(loop, nx)
			cur = nx
		}
		if len(loop) < 3 {
			return m, false
		}

		var centroid geom.Vec3
		for _, vi := range loop {
			centroid = centroid.Add(verts[vi])
		}
		centroid = centroid.Scale(1.0 / float64(len(loop)))
		centroidIdx := len(verts)
		verts = append(verts, centroid)
		for i := 0; i < len(loop); i++ {
			a := loop[i]
			b := loop[(i+1)%len(loop)]
			// b→a is the reverse of the boundary edge a→b, so each
			// fan face pairs with the open edge it closes.
			faces = append(faces, [3]int{b, a, centroidIdx})
		}
	}

	repaired := mesh.Mesh{Vertices: verts, Faces: faces}
	if !repaired.IsClosed() {
		return m, false
	}
	return repaired, true
}
