// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package compute

import (
	"github.com/ISSKA/geocruncher/internal/geom"
	"github.com/ISSKA/geocruncher/internal/hydro"
	"github.com/ISSKA/geocruncher/internal/model"
	"github.com/ISSKA/geocruncher/internal/voxel"
)

// Voxelise implements the voxelise job (spec.md §4.6).
func Voxelise(m model.GeologicalModel, shape geom.Resolution3, box geom.Box, groups []hydro.GWBGroup, tester hydro.InsideTester) ([]byte, error) {
	return voxel.Voxelise(m, shape, box, groups, tester)
}
