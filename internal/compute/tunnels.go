// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package compute

import (
	"context"
	"fmt"

	"github.com/ISSKA/geocruncher/internal/geom"
	"github.com/ISSKA/geocruncher/internal/mesh"
	"github.com/ISSKA/geocruncher/internal/tunnel"
)

// SegmentSpec is one trajectory segment's source expressions, as received
// from the job payload (spec.md §3's "tunnel trajectory").
type SegmentSpec struct {
	Fx, Fy, Fz string
}

// SweepTunnel implements the sweep_tunnel job (spec.md §4.7): parse and
// differentiate every segment's expressions, sweep the cross-section
// ring along the requested (sub-)range, stitch the rings, and encode.
// Cooperative cancellation is checked after each segment (spec.md §5).
func SweepTunnel(ctx context.Context, segments []SegmentSpec, dt float64, ring []geom.Vec3, idxStart int, tStart float64, idxEnd int, tEnd float64, format mesh.Format, codec mesh.Codec) ([]byte, error) {
	parsed := make([]tunnel.SegmentFuncs, len(segments))
	for i, s := range segments {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		sf, err := tunnel.ParseSegment(s.Fx, s.Fy, s.Fz)
		if err != nil {
			return nil, fmt.Errorf("compute: segment %d: %w", i, err)
		}
		parsed[i] = sf
	}

	msh := tunnel.Sweep(parsed, dt, ring, idxStart, tStart, idxEnd, tEnd)
	encoded, err := mesh.Encode(msh, format, codec)
	if err != nil {
		return nil, fmt.Errorf("compute: encoding tunnel mesh: %w", err)
	}
	return encoded, nil
}
