// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jobrunner

import (
	"errors"
	"testing"
)

func TestRunPassesThroughResult(t *testing.T) {
	err := Run("job-1", func() error { return nil })
	if err != nil {
		t.Fatalf("Run: unexpected error %v", err)
	}
}

func TestRunPropagatesOrdinaryError(t *testing.T) {
	want := errors.New("boom")
	err := Run("job-2", func() error { return want })
	if !errors.Is(err, want) {
		t.Fatalf("Run: got %v, want %v", err, want)
	}
}

func TestRunRecoversPanic(t *testing.T) {
	err := Run("job-3", func() error {
		panic("invariant violated")
	})
	if err == nil {
		t.Fatal("Run: expected a recovered-panic error, got nil")
	}
}
