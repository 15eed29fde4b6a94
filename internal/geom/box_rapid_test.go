// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"testing"

	"pgregory.net/rapid"
)

// TestCalculateResolutionInvariants checks spec.md §8 invariant 1:
// CalculateResolution always returns dimensions >= 2, and the larger
// physical dimension maps to the requested resolution r.
func TestCalculateResolutionInvariants(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		width := rapid.Float64Range(0.01, 1e6).Draw(t, "width")
		height := rapid.Float64Range(0.01, 1e6).Draw(t, "height")
		r := rapid.IntRange(2, 4096).Draw(t, "r")

		res := CalculateResolution(width, height, r)
		if res.W < 2 || res.H < 2 {
			t.Fatalf("CalculateResolution(%v,%v,%v) = %+v, dimensions below 2", width, height, r, res)
		}
		if width >= height && res.W != r {
			t.Fatalf("width %v >= height %v: expected W=%d, got %+v", width, height, r, res)
		}
		if height > width && res.H != r {
			t.Fatalf("height %v > width %v: expected H=%d, got %+v", height, width, r, res)
		}
	})
}
