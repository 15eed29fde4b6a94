// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tunnel

import (
	"math"
	"testing"
)

// TestSweepTriangleCount covers spec.md scenario S7: a tube stitched from
// S ring samples of an n-vertex cross-section yields 2*n*(S-1) triangles.
func TestSweepTriangleCount(t *testing.T) {
	seg, err := ParseSegment("t", "0", "0")
	if err != nil {
		t.Fatalf("ParseSegment: %v", err)
	}
	ring := Circle(1.0, 8)
	m := Sweep([]SegmentFuncs{seg}, 0.5, ring, -1, 0, -1, 0)

	n := len(ring)
	series := len(m.Vertices) / n
	want := 2 * n * (series - 1)
	if len(m.Faces) != want {
		t.Fatalf("got %d faces, want %d (n=%d, series=%d)", len(m.Faces), want, n, series)
	}
}

func TestSweepSubTubeScalesRing(t *testing.T) {
	seg, err := ParseSegment("t", "0", "0")
	if err != nil {
		t.Fatalf("ParseSegment: %v", err)
	}
	ring := Circle(1.0, 8)
	m := Sweep([]SegmentFuncs{seg}, 0.5, ring, 0, 0, 0, 1)
	if len(m.Faces) == 0 {
		t.Fatal("expected a non-empty sub-tube mesh")
	}
	// The first ring sits at t=0, centred on the origin; the radius-1
	// circle shrunk by 10% puts each of its vertices at distance 0.9.
	for i := range ring {
		if d := m.Vertices[i].Norm(); math.Abs(d-0.9) > 1e-9 {
			t.Fatalf("ring vertex %d at distance %v, want 0.9", i, d)
		}
	}
}
