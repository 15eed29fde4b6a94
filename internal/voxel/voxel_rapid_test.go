// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package voxel

import (
	"strings"
	"testing"

	"github.com/ISSKA/geocruncher/internal/geom"
	"pgregory.net/rapid"
)

// TestVoxeliseDataLineCountInvariant checks spec.md §8 invariant: the
// number of data lines emitted always equals Nx*Ny*Nz, for any shape.
func TestVoxeliseDataLineCountInvariant(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		nx := rapid.IntRange(1, 6).Draw(t, "nx")
		ny := rapid.IntRange(1, 6).Draw(t, "ny")
		nz := rapid.IntRange(1, 6).Draw(t, "nz")

		box := geom.NewBox(0, 0, 0, 10, 10, 10)
		shape := geom.Resolution3{Nx: nx, Ny: ny, Nz: nz}
		m := flatModel{box: box, topo: flatTopo{z: 100}}

		data, err := Voxelise(m, shape, box, nil, nil)
		if err != nil {
			t.Fatalf("Voxelise: %v", err)
		}
		lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
		want := 2 + nx*ny*nz
		if len(lines) != want {
			t.Fatalf("nx=%d ny=%d nz=%d: got %d lines, want %d", nx, ny, nz, len(lines), want)
		}
	})
}
