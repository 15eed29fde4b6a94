// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package volumes

import (
	"context"
	"fmt"
	"sort"

	"github.com/rs/zerolog/log"

	"github.com/ISSKA/geocruncher/internal/evaluator"
	"github.com/ISSKA/geocruncher/internal/geom"
	"github.com/ISSKA/geocruncher/internal/grid"
	"github.com/ISSKA/geocruncher/internal/mesh"
	"github.com/ISSKA/geocruncher/internal/model"
)

// RankSky is the reserved rank meaning "above topography"; it is never
// emitted as a mesh (spec.md §3).
const RankSky = 0

// Result is the output of GenerateVolumes: unit meshes keyed by their
// (remapped) rank id, plus fault meshes keyed by fault name.
type Result struct {
	Units  map[int]mesh.Mesh
	Faults map[string]mesh.Mesh
}

// FaultMesher produces volumetric fault tesselations; it is the module D
// collaborator (internal/faultfield) invoked from here when the model has
// faults, per spec.md §4.3 step 8.
type FaultMesher interface {
	GenerateFaultMeshes(ctx context.Context, m model.GeologicalModel, shape geom.Resolution3, box geom.Box) (map[string]mesh.Mesh, error)
}

// GenerateVolumes implements spec.md §4.3: evaluate ranks on an
// edge-inclusive grid (grid.Linspace3D), extract a closed iso-surface per non-sky rank via marching cubes,
// remap rank ids per the pile reference, and (if the model has faults)
// delegate fault tesselation to faultMesher.
func GenerateVolumes(ctx context.Context, m model.GeologicalModel, shape geom.Resolution3, box geom.Box, faultMesher FaultMesher) (Result, error) {
	points := grid.Linspace3D(box, shape)
	ranks, err := evaluator.EvaluateRanks(m, points, true)
	if err != nil {
		return Result{}, fmt.Errorf("volumes: evaluating ranks: %w", err)
	}

	uniqueRanks := uniqueSorted(ranks)
	n := 0
	for _, r := range uniqueRanks {
		if r != RankSky {
			n++
		}
	}

	units := make(map[int]mesh.Mesh)
	ref := m.PileReference()
	for _, rank := range uniqueRanks {
		if rank == RankSky {
			continue
		}
		select {
		case <-ctx.Done():
			return Result{}, ctx.Err()
		default:
		}

		msh := extractIsoSurface(ranks, shape, rank, box)
		if !msh.IsClosed() {
			repaired, ok := stitchBorder(msh)
			if ok {
				msh = repaired
			} else {
				log.Warn().Int("rank", rank).Msg("unit mesh remained open after border-stitch repair")
			}
		}
		units[model.RemapRank(ref, rank, n)] = msh
	}

	result := Result{Units: units}
	if faultMesher != nil {
		faults, err := faultMesher.GenerateFaultMeshes(ctx, m, shape, box)
		if err != nil {
			return Result{}, fmt.Errorf("volumes: generating fault meshes: %w", err)
		}
		result.Faults = faults
	}
	return result, nil
}

func uniqueSorted(ranks []int) []int {
	seen := make(map[int]bool)
	for _, r := range ranks {
		seen[r] = true
	}
	out := make([]int, 0, len(seen))
	for r := range seen {
		out = append(out, r)
	}
	sort.Ints(out)
	return out
}
