// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package faultfield

import (
	"testing"

	"pgregory.net/rapid"
)

// TestOrderByStopsOnRespectsDependencies checks spec.md §8 invariant: for
// any acyclic stops_on relation over a small named set, every fault
// appears after every fault it stops on.
func TestOrderByStopsOnRespectsDependencies(t *testing.T) {
	names := []string{"A", "B", "C", "D", "E"}
	rapid.Check(t, func(t *rapid.T) {
		stopsOn := make(map[string]map[string]bool, len(names))
		for i, n := range names {
			deps := make(map[string]bool)
			// only allow dependencies on earlier names, guaranteeing acyclicity
			for j := 0; j < i; j++ {
				if rapid.Bool().Draw(t, n+"<-"+names[j]) {
					deps[names[j]] = true
				}
			}
			stopsOn[n] = deps
		}

		order := orderByStopsOn(names, stopsOn)
		if len(order) != len(names) {
			t.Fatalf("order has %d entries, want %d", len(order), len(names))
		}
		position := make(map[string]int, len(order))
		for i, n := range order {
			position[n] = i
		}
		for n, deps := range stopsOn {
			for d := range deps {
				if position[d] >= position[n] {
					t.Fatalf("fault %q (pos %d) did not precede dependent %q (pos %d)", d, position[d], n, position[n])
				}
			}
		}
	})
}
