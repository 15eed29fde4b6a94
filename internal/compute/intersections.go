// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package compute

import (
	"context"
	"fmt"
	"math"

	"github.com/ISSKA/geocruncher/internal/evaluator"
	"github.com/ISSKA/geocruncher/internal/faultfield"
	"github.com/ISSKA/geocruncher/internal/geom"
	"github.com/ISSKA/geocruncher/internal/grid"
	"github.com/ISSKA/geocruncher/internal/hydro"
	"github.com/ISSKA/geocruncher/internal/model"
)

// Section describes one named cross-section request. A vertical slice is
// given by LowerLeft/UpperRight (its z range is taken from their z
// components); a map section samples the terrain instead and sets IsMap.
type Section struct {
	Name                  string
	LowerLeft, UpperRight geom.Vec3
	IsMap                 bool
}

// IntRankGrid is a (w,h) int field, row-major in whatever order it was
// produced (ComputeIntersections transposes map-section rank grids).
type IntRankGrid struct {
	W, H   int
	Values []int
}

func (g IntRankGrid) transpose() IntRankGrid {
	out := IntRankGrid{W: g.H, H: g.W, Values: make([]int, len(g.Values))}
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			out.Values[x*out.W+y] = g.Values[y*g.W+x]
		}
	}
	return out
}

// SectionResult is one section's output: the rank raster, per-fault
// scalar grids (transposed relative to the rank grid, spec.md §3/§9 Open
// Question (i)), and hydro overlays.
type SectionResult struct {
	Ranks      IntRankGrid
	Faults     map[string]faultfield.Grid
	Springs    map[string]geom.Vec2
	Drillholes map[string]hydro.ProjectedDrillhole
	GWBTags    []int
}

// HydroInputs bundles the optional hydro-feature overlays for a section
// (spec.md §4.5); nil maps/slices mean "none requested."
type HydroInputs struct {
	Springs    map[string]geom.Vec3
	Drillholes map[string]hydro.Drillhole
	GWBGroups  []hydro.GWBGroup
	GWBTester  hydro.InsideTester
}

// ComputeIntersections implements spec.md §4.4.2/§4.5's combined job:
// for each section, sample points, evaluate ranks and faults, reshape and
// (for map sections) transpose the rank raster, and overlay hydro
// features using ρ = 0.2 · max(box_width, box_height) (spec.md §3).
func ComputeIntersections(ctx context.Context, sections []Section, res geom.Resolution2, m model.GeologicalModel, hydroBox geom.Box, hydroIn HydroInputs) (map[string]SectionResult, error) {
	rho := 0.2 * math.Max(hydroBox.Width(), hydroBox.Height())

	out := make(map[string]SectionResult, len(sections))
	for _, s := range sections {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		var points []geom.Vec3
		if s.IsMap {
			box := geom.NewBox(s.LowerLeft.X, s.LowerLeft.Y, s.LowerLeft.Z, s.UpperRight.X, s.UpperRight.Y, s.UpperRight.Z+1)
			points = grid.MapPoints(box, res, m.Topography())
		} else {
			points = grid.VerticalSlicePoints(s.LowerLeft.X, s.UpperRight.X, s.LowerLeft.Y, s.UpperRight.Y, s.LowerLeft.Z, s.UpperRight.Z, res)
		}

		// Matches the source's asymmetric convention: cross-sections
		// evaluate with topography, map sections without (ComputeIntersections.py).
		ranks, err := evaluator.EvaluateRanks(m, points, !s.IsMap)
		if err != nil {
			return nil, fmt.Errorf("compute: section %s: evaluating ranks: %w", s.Name, err)
		}
		rankGrid := IntRankGrid{W: res.W, H: res.H, Values: ranks}
		if s.IsMap {
			rankGrid = rankGrid.transpose()
		}

		faultGrids := faultfield.ComputeFaultIntersections(points, res.W, res.H, m)

		result := SectionResult{Ranks: rankGrid, Faults: faultGrids}
		if hydroIn.Springs != nil || hydroIn.Drillholes != nil || hydroIn.GWBGroups != nil {
			plane := hydro.NewPlane(s.LowerLeft, s.UpperRight)
			result.Springs = hydro.ProjectSprings(plane, hydroIn.Springs, rho)
			result.Drillholes = hydro.ProjectDrillholes(plane, hydroIn.Drillholes, rho)
			if hydroIn.GWBTester != nil {
				result.GWBTags = hydro.CombineGWBTags(hydroIn.GWBGroups, points, hydroIn.GWBTester)
			} else {
				result.GWBTags = make([]int, len(points))
			}
		}
		out[s.Name] = result
	}
	return out, nil
}
