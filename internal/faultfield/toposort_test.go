// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package faultfield

import (
	"reflect"
	"testing"
)

// TestOrderByStopsOnSimpleChain covers spec.md scenario S5: fault C stops on
// B, B stops on A, A stops on nothing -- emission order is A, B, C.
func TestOrderByStopsOnSimpleChain(t *testing.T) {
	names := []string{"C", "B", "A"}
	stopsOn := map[string]map[string]bool{
		"A": {},
		"B": {"A": true},
		"C": {"B": true},
	}
	got := orderByStopsOn(names, stopsOn)
	want := []string{"A", "B", "C"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("orderByStopsOn = %v, want %v", got, want)
	}
}

func TestOrderByStopsOnTiesBreakAlphabetically(t *testing.T) {
	names := []string{"delta", "bravo", "alpha", "charlie"}
	stopsOn := map[string]map[string]bool{
		"alpha":   {},
		"bravo":   {},
		"charlie": {"alpha": true, "bravo": true},
		"delta":   {"alpha": true, "bravo": true},
	}
	got := orderByStopsOn(names, stopsOn)
	want := []string{"alpha", "bravo", "charlie", "delta"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("orderByStopsOn = %v, want %v", got, want)
	}
}

func TestOrderByStopsOnIgnoresUnknownLimiters(t *testing.T) {
	names := []string{"A", "B"}
	stopsOn := map[string]map[string]bool{
		"A": {"ghost": true},
		"B": {"A": true},
	}
	got := orderByStopsOn(names, stopsOn)
	want := []string{"A", "B"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("orderByStopsOn = %v, want %v", got, want)
	}
}

func TestOrderByStopsOnPanicsOnCycle(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for cyclic stops_on relation")
		}
	}()
	names := []string{"A", "B"}
	stopsOn := map[string]map[string]bool{
		"A": {"B": true},
		"B": {"A": true},
	}
	orderByStopsOn(names, stopsOn)
}
