// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

import (
	"testing"

	"github.com/ISSKA/geocruncher/internal/geom"
)

// TestCentredSampling checks that Centred yields cell centres in z-major,
// y-next, x-innermost order.
func TestCentredSampling(t *testing.T) {
	box := geom.NewBox(0, 0, 0, 10, 10, 10)
	shape := geom.Resolution3{Nx: 2, Ny: 2, Nz: 2}
	points := Centred(box, shape)
	if len(points) != 8 {
		t.Fatalf("got %d points, want 8", len(points))
	}
	want := []geom.Vec3{
		{X: 2.5, Y: 2.5, Z: 2.5}, {X: 7.5, Y: 2.5, Z: 2.5},
		{X: 2.5, Y: 7.5, Z: 2.5}, {X: 7.5, Y: 7.5, Z: 2.5},
		{X: 2.5, Y: 2.5, Z: 7.5}, {X: 7.5, Y: 2.5, Z: 7.5},
		{X: 2.5, Y: 7.5, Z: 7.5}, {X: 7.5, Y: 7.5, Z: 7.5},
	}
	for i, w := range want {
		if points[i] != w {
			t.Fatalf("point %d = %v, want %v", i, points[i], w)
		}
	}
}

func TestLinspace3DIsEdgeInclusive(t *testing.T) {
	box := geom.NewBox(0, 0, 0, 10, 10, 10)
	shape := geom.Resolution3{Nx: 3, Ny: 3, Nz: 3}
	points := Linspace3D(box, shape)
	if len(points) != 27 {
		t.Fatalf("got %d points, want 27", len(points))
	}
	if points[0] != (geom.Vec3{X: 0, Y: 0, Z: 0}) {
		t.Fatalf("first point = %v, want origin", points[0])
	}
	last := points[len(points)-1]
	if last != (geom.Vec3{X: 10, Y: 10, Z: 10}) {
		t.Fatalf("last point = %v, want (10,10,10)", last)
	}
}

// TestVerticalSlicePointsOrdering covers spec.md scenario S2.
func TestVerticalSlicePointsOrdering(t *testing.T) {
	res := geom.Resolution2{W: 20, H: 20}
	points := VerticalSlicePoints(0, 0, 10, 29, 0, 19, res)
	if len(points) != 400 {
		t.Fatalf("got %d points, want 400", len(points))
	}
	for i := 0; i < 20; i++ {
		for j := 0; j < 20; j++ {
			p := points[i*20+j]
			if p.X != 0 {
				t.Fatalf("point %d,%d: x = %v, want 0", i, j, p.X)
			}
			if p.Y != float64(10+i) {
				t.Fatalf("point %d,%d: y = %v, want %v", i, j, p.Y, 10+i)
			}
			if p.Z != float64(j) {
				t.Fatalf("point %d,%d: z = %v, want %v", i, j, p.Z, j)
			}
		}
	}
}
