// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tunnel

import (
	"fmt"
	"math"

	"github.com/cpmech/gosl/utl"

	"github.com/ISSKA/geocruncher/internal/geom"
	"github.com/ISSKA/geocruncher/internal/mesh"
	"github.com/ISSKA/geocruncher/internal/tunnel/expr"
)

// transportFrameEps is the small-angle tolerance below which no rotation
// is applied (spec.md §4.7: "ε ≈ 0.01 rad").
const transportFrameEps = 0.01

// SegmentFuncs is one trajectory segment's (fx, fy, fz) expressions over
// t, as parsed from its source strings (spec.md §4.7 step 1).
type SegmentFuncs struct {
	Fx, Fy, Fz    expr.Expr
	Dfx, Dfy, Dfz expr.Expr
}

// ParseSegment parses a segment's three coordinate expressions and their
// derivatives. Input expressions use '^' for power, translated to
// exponentiation by the parser.
func ParseSegment(fx, fy, fz string) (SegmentFuncs, error) {
	ex, err := expr.Parse(fx)
	if err != nil {
		return SegmentFuncs{}, fmt.Errorf("tunnel: parsing fx: %w", err)
	}
	ey, err := expr.Parse(fy)
	if err != nil {
		return SegmentFuncs{}, fmt.Errorf("tunnel: parsing fy: %w", err)
	}
	ez, err := expr.Parse(fz)
	if err != nil {
		return SegmentFuncs{}, fmt.Errorf("tunnel: parsing fz: %w", err)
	}
	return SegmentFuncs{
		Fx: ex, Fy: ey, Fz: ez,
		Dfx: ex.Deriv(), Dfy: ey.Deriv(), Dfz: ez.Deriv(),
	}, nil
}

// centerAndTangent evaluates the segment's position and (unit) tangent at t.
func (s SegmentFuncs) centerAndTangent(t float64) (center, tangent geom.Vec3) {
	center = geom.Vec3{X: s.Fx.Eval(t), Y: s.Fy.Eval(t), Z: s.Fz.Eval(t)}
	tangent = geom.Vec3{X: s.Dfx.Eval(t), Y: s.Dfy.Eval(t), Z: s.Dfz.Eval(t)}.Normalize()
	return
}

// rotate applies Rodrigues' rotation formula: rotate v by angle around the
// unit axis.
func rotate(v, axis geom.Vec3, angle float64) geom.Vec3 {
	cosA, sinA := math.Cos(angle), math.Sin(angle)
	term1 := v.Scale(cosA)
	term2 := axis.Cross(v).Scale(sinA)
	term3 := axis.Scale(axis.Dot(v) * (1 - cosA))
	return term1.Add(term2).Add(term3)
}

// transportFrame builds the rotation that carries the ring's rest pose
// (lying in the local xy plane, normal +z) so its normal aligns with
// tangent (spec.md §4.7 step 2).
func transportFrame(tangent geom.Vec3) func(geom.Vec3) geom.Vec3 {
	z := geom.Vec3{Z: 1}
	cosAngleToZ := clamp(tangent.Dot(z), -1, 1)
	angleToZ := math.Acos(cosAngleToZ)
	if angleToZ < transportFrameEps {
		return func(v geom.Vec3) geom.Vec3 { return v }
	}

	axis := tangent.Cross(z).Normalize()
	primary := math.Acos(clamp(-cosAngleToZ, -1, 1))

	rotated := func(v geom.Vec3) geom.Vec3 { return rotate(v, axis, primary) }

	// In-plane correction: compare where the rest-pose +x axis lands
	// against the world +x axis projected onto the plane perpendicular
	// to tangent, and rotate about tangent to close the remaining gap
	// (spec.md §4.7 step 2, third bullet).
	xAxis := geom.Vec3{X: 1}
	heading := xAxis.Sub(tangent.Scale(tangent.Dot(xAxis)))
	if heading.Norm() < 1e-9 {
		return rotated
	}
	heading = heading.Normalize()
	xPrime := rotated(xAxis)
	cosGap := clamp(xPrime.Dot(heading), -1, 1)
	gap := math.Acos(cosGap)
	if gap < transportFrameEps {
		return rotated
	}
	sign := 1.0
	if tangent.Y < 0 {
		sign = -1.0
	}
	return func(v geom.Vec3) geom.Vec3 {
		return rotate(rotated(v), tangent, sign*gap)
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ringAt transforms the rest-pose ring to its position/orientation at
// parameter t along segment s.
func ringAt(s SegmentFuncs, ring []geom.Vec3, t float64) []geom.Vec3 {
	center, tangent := s.centerAndTangent(t)
	transform := transportFrame(tangent)
	out := make([]geom.Vec3, len(ring))
	for i, v := range ring {
		out[i] = transform(v).Add(center)
	}
	return out
}

// Sweep implements spec.md §4.7: sweep `ring` along segments idxStart
// through idxEnd, both inclusive (-1 selects the first or the last segment
// respectively), sampling t with step dt, and stitch
// consecutive rings into a closed triangle-strip tube. When idxStart and
// idxEnd are both >= 0 (a sub-tube), the ring is radially scaled down by
// 10% first.
func Sweep(segments []SegmentFuncs, dt float64, ring []geom.Vec3, idxStart int, tStart float64, idxEnd int, tEnd float64) mesh.Mesh {
	if IsSubTube(idxStart, idxEnd) {
		ring = ScaleRadial(ring, subTubeScale)
	}

	start, end := 0, len(segments)-1
	if idxStart >= 0 {
		start = idxStart
	}
	if idxEnd >= 0 {
		end = idxEnd
	}

	var verts []geom.Vec3
	n := len(ring)
	for j := start; j <= end; j++ {
		segStart := 0.0
		if j == idxStart {
			segStart = tStart
		}
		segEnd := 1.0
		if j == idxEnd {
			segEnd = tEnd
		}
		for t := segStart; t < segEnd; t += dt {
			verts = append(verts, ringAt(segments[j], ring, t)...)
		}
	}

	nbSeries := len(verts) / n
	utl.IntAssert(nbSeries*n, len(verts))
	var faces [][3]int
	for s := 0; s < nbSeries-1; s++ {
		for i := 0; i < n; i++ {
			next := (i + 1) % n
			a := s*n + i
			b := (s+1)*n + i
			c := (s+1)*n + next
			d := s*n + next
			faces = append(faces, [3]int{a, b, c})
			faces = append(faces, [3]int{a, c, d})
		}
	}

	return mesh.Mesh{Vertices: verts, Faces: faces}
}
