// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package voxel implements Module F, the Voxeliser (spec.md §4.6),
// grounded on original_source/geocruncher/voxel_computation.py.
package voxel

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/ISSKA/geocruncher/internal/evaluator"
	"github.com/ISSKA/geocruncher/internal/geom"
	"github.com/ISSKA/geocruncher/internal/grid"
	"github.com/ISSKA/geocruncher/internal/hydro"
	"github.com/ISSKA/geocruncher/internal/model"
)

// Voxelise implements spec.md §4.6: sample cell centres, evaluate ranks
// with topography, tag each centre with its groundwater body (the same
// first-positive-in-order rule as the Hydro Projector), and serialise in
// z-major, y-next, x-innermost order.
func Voxelise(m model.GeologicalModel, shape geom.Resolution3, box geom.Box, groups []hydro.GWBGroup, tester hydro.InsideTester) ([]byte, error) {
	points := grid.Centred(box, shape)
	ranks, err := evaluator.EvaluateRanks(m, points, true)
	if err != nil {
		return nil, fmt.Errorf("voxel: evaluating ranks: %w", err)
	}
	var tags []int
	if tester != nil {
		tags = hydro.CombineGWBTags(groups, points, tester)
	} else {
		tags = make([]int, len(points))
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "XMIN=%s XMAX=%s YMIN=%s YMAX=%s ZMIN=%s ZMAX=%s NUMBERX=%d NUMBERY=%d NUMBERZ=%d NOVALUE=0\n",
		formatNumber(box.Xmin), formatNumber(box.Xmax),
		formatNumber(box.Ymin), formatNumber(box.Ymax),
		formatNumber(box.Zmin), formatNumber(box.Zmax),
		shape.Nx, shape.Ny, shape.Nz)
	buf.WriteString("rank gwb_id\n")

	// grid.Centred already lays points out z-major, y-next, x-innermost,
	// so no further sort by (z,y,x) is needed: the sample order already
	// is the emission order.
	for i := range points {
		fmt.Fprintf(&buf, "%d %d\n", ranks[i], tags[i])
	}
	return buf.Bytes(), nil
}

// formatNumber matches the host language's default double-to-string
// formatting (spec.md §4.6), i.e. the shortest decimal that round-trips.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
