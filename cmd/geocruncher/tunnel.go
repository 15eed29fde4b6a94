// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ISSKA/geocruncher/internal/compute"
	"github.com/ISSKA/geocruncher/internal/geom"
	"github.com/ISSKA/geocruncher/internal/jobrunner"
	"github.com/ISSKA/geocruncher/internal/mesh"
	"github.com/ISSKA/geocruncher/internal/tunnel"
)

var (
	tunnelJobFile string
	tunnelOutFile string
)

var tunnelCmd = &cobra.Command{
	Use:   "sweep-tunnel",
	Short: "Run the sweep_tunnel job against a JSON job description",
	RunE:  runTunnel,
}

func init() {
	tunnelCmd.Flags().StringVar(&tunnelJobFile, "job", "", "path to the tunnel job JSON (required)")
	tunnelCmd.Flags().StringVar(&tunnelOutFile, "out", "tunnel.off", "output mesh file")
	tunnelCmd.MarkFlagRequired("job")
}

// tunnelJob is the JSON shape of a sweep_tunnel request.
type tunnelJob struct {
	Segments []compute.SegmentSpec `json:"segments"`
	Dt       float64               `json:"dt"`
	Shape    string                `json:"shape"` // circle | rectangle | ellipse
	Radius   float64               `json:"radius"`
	Width    float64               `json:"width"`
	Height   float64               `json:"height"`
	N        int                   `json:"n"`
	IdxStart int                   `json:"idxStart"`
	TStart   float64               `json:"tStart"`
	IdxEnd   int                   `json:"idxEnd"`
	TEnd     float64               `json:"tEnd"`
}

func runTunnel(cmd *cobra.Command, args []string) error {
	return jobrunner.Run("sweep-tunnel", func() error {
		data, err := os.ReadFile(tunnelJobFile)
		if err != nil {
			return fmt.Errorf("reading job file: %w", err)
		}
		var job tunnelJob
		if err := json.Unmarshal(data, &job); err != nil {
			return fmt.Errorf("parsing job file: %w", err)
		}
		if job.IdxStart == 0 && job.IdxEnd == 0 {
			job.IdxStart, job.IdxEnd = -1, -1
		}

		var ring []geom.Vec3
		switch job.Shape {
		case "rectangle":
			ring = tunnel.Rectangle(job.Width, job.Height, job.N)
		case "ellipse":
			ring = tunnel.Ellipse(job.Width, job.Height, job.N)
		default:
			ring = tunnel.Circle(job.Radius, job.N)
		}

		encoded, err := compute.SweepTunnel(context.Background(), job.Segments, job.Dt, ring, job.IdxStart, job.TStart, job.IdxEnd, job.TEnd, mesh.FormatOFF, nil)
		if err != nil {
			return err
		}
		return os.WriteFile(tunnelOutFile, encoded, 0o644)
	})
}
