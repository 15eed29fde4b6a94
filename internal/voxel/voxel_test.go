// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package voxel

import (
	"strings"
	"testing"

	"github.com/ISSKA/geocruncher/internal/geom"
	"github.com/ISSKA/geocruncher/internal/model"
)

type flatModel struct {
	box  geom.Box
	topo flatTopo
}

func (m flatModel) BBox() geom.Box { return m.box }
func (m flatModel) RankBatch(points []geom.Vec3, withTopography bool) ([]int, error) {
	out := make([]int, len(points))
	for i := range out {
		out[i] = 1
	}
	return out, nil
}
func (m flatModel) Faults() []model.FaultHandle     { return nil }
func (m flatModel) Topography() model.Topography    { return m.topo }
func (m flatModel) PileReference() model.PileReference { return model.ReferenceTop }

type flatTopo struct{ z float64 }

func (t flatTopo) EvaluateZ(points []geom.Vec3) []float64 {
	out := make([]float64, len(points))
	for i := range out {
		out[i] = t.z
	}
	return out
}
func (t flatTopo) SignedBatch(points []geom.Vec3) []float64 {
	out := make([]float64, len(points))
	for i, p := range points {
		out[i] = p.Z - t.z
	}
	return out
}

// TestVoxeliseHeaderAndPointCount checks that the header line starts with
// the box's XMIN, that the column header follows, and that exactly
// Nx*Ny*Nz data lines follow, each carrying the model's rank and gwb_id 0.
func TestVoxeliseHeaderAndPointCount(t *testing.T) {
	box := geom.NewBox(0, 0, 0, 10, 10, 10)
	shape := geom.Resolution3{Nx: 2, Ny: 2, Nz: 2}
	m := flatModel{box: box, topo: flatTopo{z: 100}}

	data, err := Voxelise(m, shape, box, nil, nil)
	if err != nil {
		t.Fatalf("Voxelise: %v", err)
	}
	text := string(data)
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	if len(lines) != 2+8 {
		t.Fatalf("got %d lines, want 10 (header+columns+8 data)", len(lines))
	}
	if !strings.HasPrefix(lines[0], "XMIN=0") {
		t.Fatalf("header line = %q, want prefix XMIN=0", lines[0])
	}
	if lines[1] != "rank gwb_id" {
		t.Fatalf("column header = %q, want %q", lines[1], "rank gwb_id")
	}
	for _, line := range lines[2:] {
		if line != "1 0" {
			t.Fatalf("data line = %q, want %q", line, "1 0")
		}
	}
}
