// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package evaluator

import (
	"errors"
	"testing"

	"github.com/ISSKA/geocruncher/internal/geom"
	"github.com/ISSKA/geocruncher/internal/model"
)

type stubModel struct {
	ranks []int
	err   error
	calls []bool
}

func (m *stubModel) BBox() geom.Box { return geom.Box{} }
func (m *stubModel) RankBatch(points []geom.Vec3, withTopography bool) ([]int, error) {
	m.calls = append(m.calls, withTopography)
	if m.err != nil {
		return nil, m.err
	}
	return m.ranks, nil
}
func (m *stubModel) Faults() []model.FaultHandle        { return nil }
func (m *stubModel) Topography() model.Topography       { return nil }
func (m *stubModel) PileReference() model.PileReference { return model.ReferenceBase }

// TestEvaluateRanksReturnsRawRanks checks that EvaluateRanks does not apply
// any pile-reference remapping -- that happens once, at the output
// boundary, via model.RemapRank.
func TestEvaluateRanksReturnsRawRanks(t *testing.T) {
	m := &stubModel{ranks: []int{0, 1, 2, 3}}
	got, err := EvaluateRanks(m, make([]geom.Vec3, 4), true)
	if err != nil {
		t.Fatalf("EvaluateRanks: %v", err)
	}
	want := []int{0, 1, 2, 3}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
	if len(m.calls) != 1 || m.calls[0] != true {
		t.Fatalf("expected a single RankBatch call with withTopography=true, got %v", m.calls)
	}
}

func TestEvaluateRanksPropagatesError(t *testing.T) {
	m := &stubModel{err: errors.New("boom")}
	if _, err := EvaluateRanks(m, nil, false); err == nil {
		t.Fatal("expected error to propagate")
	}
}

func TestEvaluateFaultDelegates(t *testing.T) {
	f := model.FaultHandle{
		Evaluate: func(points []geom.Vec3) []float64 {
			out := make([]float64, len(points))
			for i := range out {
				out[i] = 1.5
			}
			return out
		},
	}
	got := EvaluateFault(f, make([]geom.Vec3, 3))
	for _, v := range got {
		if v != 1.5 {
			t.Fatalf("got %v, want 1.5", v)
		}
	}
}
