// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tunnel

import (
	"math"
	"testing"
)

func TestCircleRadiusAndCount(t *testing.T) {
	ring := Circle(2.0, 16)
	if len(ring) != 16 {
		t.Fatalf("got %d points, want 16", len(ring))
	}
	for i, p := range ring {
		r := math.Hypot(p.X, p.Y)
		if math.Abs(r-2.0) > 1e-9 {
			t.Fatalf("point %d radius = %v, want 2.0", i, r)
		}
	}
}

func TestRectanglePointsOnPerimeter(t *testing.T) {
	ring := Rectangle(4, 2, 20)
	for i, p := range ring {
		onVerticalEdge := math.Abs(math.Abs(p.X)-2) < 1e-9 && p.Y >= -1-1e-9 && p.Y <= 1+1e-9
		onHorizontalEdge := math.Abs(math.Abs(p.Y)-1) < 1e-9 && p.X >= -2-1e-9 && p.X <= 2+1e-9
		if !onVerticalEdge && !onHorizontalEdge {
			t.Fatalf("point %d = %v is not on the rectangle perimeter", i, p)
		}
	}
}

func TestEllipsePointsOnBoundary(t *testing.T) {
	w, h := 6.0, 4.0
	a, b := w/2, h/2
	ring := Ellipse(w, h, 32)
	if len(ring) != 32 {
		t.Fatalf("got %d points, want 32", len(ring))
	}
	for i, p := range ring {
		v := (p.X*p.X)/(a*a) + (p.Y*p.Y)/(b*b)
		if math.Abs(v-1) > 1e-6 {
			t.Fatalf("point %d = %v not on ellipse boundary (v=%v)", i, p, v)
		}
	}
}

func TestScaleRadial(t *testing.T) {
	ring := Circle(1.0, 4)
	scaled := ScaleRadial(ring, 0.9)
	for i, p := range scaled {
		r := math.Hypot(p.X, p.Y)
		if math.Abs(r-0.9) > 1e-9 {
			t.Fatalf("scaled point %d radius = %v, want 0.9", i, r)
		}
	}
}

func TestIsSubTube(t *testing.T) {
	if IsSubTube(-1, -1) {
		t.Error("(-1,-1) should be the full range, not a sub-tube")
	}
	if !IsSubTube(2, 5) {
		t.Error("(2,5) should be a sub-tube")
	}
}
