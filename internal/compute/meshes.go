// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package compute implements the job-level entry points a worker process
// invokes: generate_volumes, compute_fault_intersections,
// generate_fault_meshes, voxelise and sweep_tunnel, each taking a
// context.Context for cooperative cancellation (spec.md §5) and encoding
// its mesh outputs through internal/mesh. This is new orchestration code
// (the teacher has no equivalent "submit a job" layer); its shape follows
// spec.md §2's control-flow description and jhkimqd-chaos-utils's
// cmd/chaos-runner subcommand-per-operation style.
package compute

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/ISSKA/geocruncher/internal/faultfield"
	"github.com/ISSKA/geocruncher/internal/geom"
	"github.com/ISSKA/geocruncher/internal/mesh"
	"github.com/ISSKA/geocruncher/internal/model"
	"github.com/ISSKA/geocruncher/internal/volumes"
)

// MeshesResult is the §3 "Meshes result": unit meshes keyed by remapped
// rank id, fault meshes keyed by name, both already encoded.
type MeshesResult struct {
	Units  map[int][]byte
	Faults map[string][]byte
}

// GenerateVolumes implements the generate_volumes job (spec.md §4.3):
// extract unit and fault meshes, then encode each with codec in format.
func GenerateVolumes(ctx context.Context, m model.GeologicalModel, shape geom.Resolution3, box geom.Box, tess faultfield.Tesselator, format mesh.Format, codec mesh.Codec) (MeshesResult, error) {
	var mesher volumes.FaultMesher
	if tess != nil {
		mesher = faultfield.Mesher{Tess: tess}
	}

	result, err := volumes.GenerateVolumes(ctx, m, shape, box, mesher)
	if err != nil {
		return MeshesResult{}, err
	}

	out := MeshesResult{
		Units:  make(map[int][]byte, len(result.Units)),
		Faults: make(map[string][]byte, len(result.Faults)),
	}
	for rank, msh := range result.Units {
		encoded, err := mesh.Encode(msh, format, codec)
		if err != nil {
			return MeshesResult{}, fmt.Errorf("compute: encoding unit %d: %w", rank, err)
		}
		out.Units[rank] = encoded
	}
	for name, msh := range result.Faults {
		encoded, err := mesh.Encode(msh, format, codec)
		if err != nil {
			return MeshesResult{}, fmt.Errorf("compute: encoding fault %s: %w", name, err)
		}
		out.Faults[name] = encoded
	}
	log.Info().Int("units", len(out.Units)).Int("faults", len(out.Faults)).Msg("generate_volumes complete")
	return out, nil
}

// GenerateFaultMeshes implements the fault-only job (spec.md §4.4.1):
// volumetric fault tesselation without the unit-mesh extraction pass.
func GenerateFaultMeshes(ctx context.Context, m model.GeologicalModel, shape geom.Resolution3, box geom.Box, tess faultfield.Tesselator, format mesh.Format, codec mesh.Codec) (map[string][]byte, error) {
	mesher := faultfield.Mesher{Tess: tess}
	faults, err := mesher.GenerateFaultMeshes(ctx, m, shape, box)
	if err != nil {
		return nil, err
	}
	out := make(map[string][]byte, len(faults))
	for name, msh := range faults {
		encoded, err := mesh.Encode(msh, format, codec)
		if err != nil {
			return nil, fmt.Errorf("compute: encoding fault %s: %w", name, err)
		}
		out[name] = encoded
	}
	return out, nil
}
