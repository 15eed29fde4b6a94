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
)

var (
	intersectionsJobFile string
	intersectionsOutFile string
)

var intersectionsCmd = &cobra.Command{
	Use:   "intersections",
	Short: "Run the compute_intersections job against a JSON job description and a sphere fixture model",
	Long: `intersections demonstrates the compute_intersections job wiring
using the same sphere fixture model as the meshes subcommand. Wiring a
real GeologicalModel requires the external GeoModeller-backed evaluator,
out of this engine's scope.`,
	RunE: runIntersections,
}

func init() {
	intersectionsCmd.Flags().StringVar(&intersectionsJobFile, "job", "", "path to the intersections job JSON (required)")
	intersectionsCmd.Flags().StringVar(&intersectionsOutFile, "out", "intersections.json", "output JSON file")
	intersectionsCmd.MarkFlagRequired("job")
}

// intersectionsSection is the JSON shape of one requested section.
type intersectionsSection struct {
	Name       string    `json:"name"`
	LowerLeft  geom.Vec3 `json:"lowerLeft"`
	UpperRight geom.Vec3 `json:"upperRight"`
	IsMap      bool      `json:"isMap"`
}

// intersectionsJob is the JSON shape of a compute_intersections request.
// The model evaluated is always the fixture sphere from the meshes job
// (see sphereFixtureModel in meshes.go), sized to the job's own box.
type intersectionsJob struct {
	Box struct {
		Xmin, Ymin, Zmin, Xmax, Ymax, Zmax float64
	} `json:"box"`
	Radius   float64                `json:"radius"`
	Sections []intersectionsSection `json:"sections"`
	ResW     int                    `json:"resW"`
	ResH     int                    `json:"resH"`
}

func runIntersections(cmd *cobra.Command, args []string) error {
	return jobrunner.Run("intersections", func() error {
		data, err := os.ReadFile(intersectionsJobFile)
		if err != nil {
			return fmt.Errorf("reading job file: %w", err)
		}
		var job intersectionsJob
		if err := json.Unmarshal(data, &job); err != nil {
			return fmt.Errorf("parsing job file: %w", err)
		}

		box := geom.NewBox(job.Box.Xmin, job.Box.Ymin, job.Box.Zmin, job.Box.Xmax, job.Box.Ymax, job.Box.Zmax)
		center := geom.Vec3{
			X: (job.Box.Xmin + job.Box.Xmax) / 2,
			Y: (job.Box.Ymin + job.Box.Ymax) / 2,
			Z: (job.Box.Zmin + job.Box.Zmax) / 2,
		}
		m := sphereFixtureModel{box: box, center: center, radius: job.Radius}

		sections := make([]compute.Section, len(job.Sections))
		for i, s := range job.Sections {
			sections[i] = compute.Section{
				Name:       s.Name,
				LowerLeft:  s.LowerLeft,
				UpperRight: s.UpperRight,
				IsMap:      s.IsMap,
			}
		}
		res := geom.Resolution2{W: job.ResW, H: job.ResH}

		result, err := compute.ComputeIntersections(context.Background(), sections, res, m, box, compute.HydroInputs{})
		if err != nil {
			return err
		}

		out, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("marshalling result: %w", err)
		}
		return os.WriteFile(intersectionsOutFile, out, 0o644)
	})
}
