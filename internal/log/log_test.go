// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package log

import (
	"testing"

	"github.com/rs/zerolog"
)

func TestParseLevelKnownLevel(t *testing.T) {
	if got := parseLevel("warn"); got != zerolog.WarnLevel {
		t.Fatalf("parseLevel(warn) = %v, want %v", got, zerolog.WarnLevel)
	}
}

func TestParseLevelUnknownFallsBackToInfo(t *testing.T) {
	if got := parseLevel("not-a-level"); got != zerolog.InfoLevel {
		t.Fatalf("parseLevel(garbage) = %v, want %v", got, zerolog.InfoLevel)
	}
}

func TestSetupDoesNotPanic(t *testing.T) {
	Setup("debug", "json")
	Setup("info", "text")
}
