// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package jobrunner recovers internal programmer-invariant panics
// (chk.Panic, utl.Panic and their kin) at a single boundary per job,
// turning them into ordinary errors so one malformed model cannot take
// down a worker process. It generalizes main.go's per-process recover
// block to a per-job one, since this engine runs many jobs per process
// rather than one analysis per process invocation.
package jobrunner

import (
	"fmt"

	"github.com/rs/zerolog/log"
)

// Run executes fn, converting any panic raised inside it (e.g. a
// chk.Panic from an internal invariant violation) into a returned error.
// External, expected failures must still be returned as ordinary errors
// from fn — Run is a backstop against programmer mistakes, not a
// substitute for error handling at job boundaries.
func Run(jobID string, fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Str("job", jobID).Interface("panic", r).Msg("job panicked, recovered at job boundary")
			err = fmt.Errorf("job %s: panicked: %v", jobID, r)
		}
	}()
	return fn()
}
