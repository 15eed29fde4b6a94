// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package model defines the consumer-side contract this engine expects from
// the implicit geological model: a scalar rank evaluator, per-fault
// potential evaluators, a stops_on adjacency, a bounding box and a
// topographic surface. The model itself — kriging, drift basis, fault
// drifts, the GeoModeller XML parser — is an external collaborator; this
// package only names the shapes this engine consumes, following spec.md's
// Design Note to model the small closed set of evaluator variants as
// tagged capabilities rather than a virtual class hierarchy.
package model

import "github.com/ISSKA/geocruncher/internal/geom"

// PileReference selects whether rank ids are 1-based from the top unit or
// from the base unit.
type PileReference int

const (
	// ReferenceTop is the default: ranks are used as returned by the model.
	ReferenceTop PileReference = iota
	// ReferenceBase shifts ranks down by 1 wherever the reference is
	// applied (ApplyReference, RemapRank); RemapRank also wraps rank 0 to
	// N-1 in emitted outputs (spec.md §3).
	ReferenceBase
)

// Topography exposes the terrain surface. A model's topography is either a
// horizontal plane (single Z) or a DTM-backed surface offering EvaluateZ.
// Both forms offer SignedBatch, the signed P.z - z(P.xy) evaluator used to
// clip faults and ranks against the ground.
type Topography interface {
	// EvaluateZ returns the terrain elevation at each (x,y) pair; z
	// components of the input points are ignored.
	EvaluateZ(points []geom.Vec3) []float64
	// SignedBatch returns, for each point, P.z - z(P.xy): positive above
	// ground, negative below.
	SignedBatch(points []geom.Vec3) []float64
}

// FaultHandle describes one named fault plane.
type FaultHandle struct {
	Name             string
	StopsOn          map[string]bool
	Infinite         bool
	InterfacePoints  []geom.Vec3
	Evaluate         func(points []geom.Vec3) []float64
	EllipsoidEval    func(points []geom.Vec3) []float64 // nil when not finite / no ellipsoid
}

// GeologicalModel is the external collaborator's contract.
type GeologicalModel interface {
	// BBox returns the model's bounding box.
	BBox() geom.Box
	// RankBatch evaluates the stratigraphic rank at each point. When
	// withTopography is true, points above the terrain surface evaluate to
	// rank 0 (sky); the raw evaluator decides that internally.
	RankBatch(points []geom.Vec3, withTopography bool) ([]int, error)
	// Faults returns the model's named faults, in no particular order —
	// callers needing a deterministic order must sort explicitly (see
	// internal/faultfield's topological sort).
	Faults() []FaultHandle
	// Topography returns the model's terrain surface.
	Topography() Topography
	// PileReference returns the top/base convention in effect.
	PileReference() PileReference
}

// ApplyReference applies the pile-reference offset to a raw rank value:
// base subtracts 1. Rank 0 (sky, "above topography") is never part of the
// pile numbering and passes through unchanged under either reference.
// evaluator.EvaluateRanks does not call it and returns raw ranks.
func ApplyReference(ref PileReference, raw int) int {
	if ref == ReferenceBase && raw != 0 {
		return raw - 1
	}
	return raw
}

// RemapRank applies the output-side rank remap policy (spec.md §3): under
// base, rank 0 wraps to n-1 and other ranks shift down by 1; under top,
// ranks pass through unchanged. n is the number of unique positive ranks.
func RemapRank(ref PileReference, rank, n int) int {
	if ref != ReferenceBase {
		return rank
	}
	if rank == 0 {
		return n - 1
	}
	return rank - 1
}
