// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package faultfield

import (
	"math"

	"github.com/ISSKA/geocruncher/internal/geom"
	"github.com/ISSKA/geocruncher/internal/model"
)

// Sentinel marks an invalid/clipped sample in a fault intersection grid
// (spec.md §4.4.2's "invalid sentinel"), distinct from any value a
// potential field can legitimately take.
const Sentinel = math.MaxFloat64

// Grid is a (w,h) scalar field with per-cell validity, row-major before
// the caller applies the renderer transpose (spec.md §4.4.2 step 5 /
// §9 Open Question (i)).
type Grid struct {
	W, H   int
	Values []float64 // Sentinel marks an invalid cell
}

// at/set address row-major (y outer, x inner), matching how points were
// reshaped from the (W,H) sample in step 1.
func (g *Grid) at(x, y int) float64   { return g.Values[y*g.W+x] }
func (g *Grid) set(x, y int, v float64) { g.Values[y*g.W+x] = v }

// Transpose returns a new Grid with x/y swapped, implementing spec.md
// §4.4.2 step 5's renderer-convention transpose.
func (g Grid) Transpose() Grid {
	out := Grid{W: g.H, H: g.W, Values: make([]float64, len(g.Values))}
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			out.set(y, x, g.at(x, y))
		}
	}
	return out
}

// ComputeFaultIntersections implements spec.md §4.4.2: evaluate every
// fault's scalar field on points (reshaped to (W,H)), dependency-sort
// faults by stops_on, and for each fault in order clip by topography,
// by each limiting fault's valid-side sign, and (if finite) by its
// ellipsoid. Faults whose potential is uniformly zero are omitted.
func ComputeFaultIntersections(points []geom.Vec3, w, h int, m model.GeologicalModel) map[string]Grid {
	faults := m.Faults()
	byName := make(map[string]model.FaultHandle, len(faults))
	stopsOn := make(map[string]map[string]bool, len(faults))
	names := make([]string, 0, len(faults))
	for _, f := range faults {
		byName[f.Name] = f
		stopsOn[f.Name] = f.StopsOn
		names = append(names, f.Name)
	}
	order := orderByStopsOn(names, stopsOn)

	topo := m.Topography().SignedBatch(points)

	out := make(map[string]Grid, len(faults))
	for _, name := range order {
		f := byName[name]
		values := f.Evaluate(points)
		if allZero(values) {
			continue
		}

		grid := Grid{W: w, H: h, Values: append([]float64(nil), values...)}
		for i, t := range topo {
			if t > 0 {
				grid.Values[i] = Sentinel
			}
		}

		for limiter := range f.StopsOn {
			lf, ok := byName[limiter]
			if !ok {
				continue
			}
			s := validSideSign(lf, f.InterfacePoints)
			limiting := lf.Evaluate(points)
			for i, lv := range limiting {
				if grid.Values[i] == Sentinel {
					continue
				}
				if s*lv <= 0 {
					grid.Values[i] = Sentinel
				}
			}
		}

		if !f.Infinite && f.EllipsoidEval != nil {
			ell := f.EllipsoidEval(points)
			for i, ev := range ell {
				if ev > 0 {
					grid.Values[i] = Sentinel
				}
			}
		}

		out[name] = grid.Transpose()
	}
	return out
}

// validSideSign evaluates the limiting fault on the clipped fault's own
// interface points and returns the mean as the valid-side sign (spec.md
// §4.4.2 step 4c). A fault with no interface points defaults to +1
// (spec.md §7).
func validSideSign(limiting model.FaultHandle, interfacePoints []geom.Vec3) float64 {
	if len(interfacePoints) == 0 {
		return 1
	}
	values := limiting.Evaluate(interfacePoints)
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func allZero(values []float64) bool {
	for _, v := range values {
		if v != 0 {
			return false
		}
	}
	return true
}
