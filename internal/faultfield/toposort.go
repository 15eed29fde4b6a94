// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package faultfield implements Module D: the volumetric fault tesselation
// delegate and the planar fault intersector, grounded on
// original_source/geocruncher/fault_intersections.py.
package faultfield

import (
	"sort"

	"github.com/cpmech/gosl/chk"
)

// orderByStopsOn implements spec.md §4.4.2 step 3 and §5.1's "Graph
// ordering with partial relations": Kahn's algorithm on the reverse of
// stops_on. A fault limited by nothing is emitted first; faults are
// peeled off in rounds as the faults that limit them are emitted, with
// ties between simultaneously-ready faults broken by name.
func orderByStopsOn(names []string, stopsOn map[string]map[string]bool) []string {
	remaining := make(map[string]map[string]bool, len(names))
	for _, n := range names {
		deps := make(map[string]bool, len(stopsOn[n]))
		for d := range stopsOn[n] {
			if _, ok := stopsOn[d]; ok || contains(names, d) {
				deps[d] = true
			}
		}
		remaining[n] = deps
	}

	var order []string
	for len(remaining) > 0 {
		var ready []string
		for n, deps := range remaining {
			if len(deps) == 0 {
				ready = append(ready, n)
			}
		}
		if len(ready) == 0 {
			chk.Panic("faultfield: stops_on relation is cyclic, cannot order %v", remaining)
		}
		sort.Strings(ready)
		for _, n := range ready {
			order = append(order, n)
			delete(remaining, n)
		}
		for _, deps := range remaining {
			for _, n := range ready {
				delete(deps, n)
			}
		}
	}
	return order
}

func contains(xs []string, x string) bool {
	for _, v := range xs {
		if v == x {
			return true
		}
	}
	return false
}
