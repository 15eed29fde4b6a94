// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hydro

import (
	"testing"

	"github.com/ISSKA/geocruncher/internal/geom"
	"github.com/ISSKA/geocruncher/internal/mesh"
)

func TestNewPlaneDegenerateCornersInflate(t *testing.T) {
	corner := geom.Vec3{X: 5, Y: 5, Z: 0}
	pl := NewPlane(corner, geom.Vec3{X: 5, Y: 5, Z: 10})
	if pl.Normal.Norm() == 0 {
		t.Fatal("expected a well-defined normal after degenerate-corner inflation")
	}
}

func TestProjectAndSectionCoord(t *testing.T) {
	pl := NewPlane(geom.Vec3{X: 0, Y: 0, Z: 0}, geom.Vec3{X: 10, Y: 0, Z: 10})
	proj, dist := pl.Project(geom.Vec3{X: 5, Y: 3, Z: 2})
	if dist != 3 {
		t.Fatalf("out-of-plane distance = %v, want 3", dist)
	}
	coord := pl.SectionCoord(proj)
	if coord.X != 5 || coord.Y != 2 {
		t.Fatalf("section coord = %v, want (5,2)", coord)
	}
}

func TestProjectSpringsFiltersByValidity(t *testing.T) {
	pl := NewPlane(geom.Vec3{X: 0, Y: 0, Z: 0}, geom.Vec3{X: 10, Y: 0, Z: 10})
	springs := map[string]geom.Vec3{
		"near": {X: 2, Y: 0.5, Z: 1},
		"far":  {X: 2, Y: 100, Z: 1},
	}
	out := ProjectSprings(pl, springs, 1.0)
	if _, ok := out["near"]; !ok {
		t.Error("expected near spring to be included")
	}
	if _, ok := out["far"]; ok {
		t.Error("expected far spring to be excluded")
	}
}

func TestProjectDrillholesIncludesIfEitherEndpointValid(t *testing.T) {
	pl := NewPlane(geom.Vec3{X: 0, Y: 0, Z: 0}, geom.Vec3{X: 10, Y: 0, Z: 10})
	dhs := map[string]Drillhole{
		"mixed": {
			Top:    geom.Vec3{X: 2, Y: 0.1, Z: 9},
			Bottom: geom.Vec3{X: 2, Y: 100, Z: 1},
		},
		"bothFar": {
			Top:    geom.Vec3{X: 2, Y: 100, Z: 9},
			Bottom: geom.Vec3{X: 2, Y: 100, Z: 1},
		},
	}
	out := ProjectDrillholes(pl, dhs, 1.0)
	if _, ok := out["mixed"]; !ok {
		t.Error("expected mixed-validity drillhole to be included")
	}
	if _, ok := out["bothFar"]; ok {
		t.Error("expected both-invalid drillhole to be excluded")
	}
}

type allInsideTester struct{ ids map[string]bool }

func (a allInsideTester) InsideBatch(m mesh.Mesh, points []geom.Vec3) []bool {
	out := make([]bool, len(points))
	for i := range out {
		out[i] = true
	}
	return out
}

// TestCombineGWBTagsFirstPositiveWins checks spec.md §9 Open Question
// (iii)'s resolution: the first group in iteration order whose mesh
// contains a point wins that point's tag.
func TestCombineGWBTagsFirstPositiveWins(t *testing.T) {
	groups := []GWBGroup{
		{ID: 1, Meshes: []mesh.Mesh{{}}},
		{ID: 2, Meshes: []mesh.Mesh{{}}},
	}
	points := []geom.Vec3{{X: 0, Y: 0, Z: 0}}
	tags := CombineGWBTags(groups, points, allInsideTester{})
	if len(tags) != 1 || tags[0] != 1 {
		t.Fatalf("tags = %v, want [1] (first group wins)", tags)
	}
}
