// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ISSKA/geocruncher/internal/compute"
	"github.com/ISSKA/geocruncher/internal/geom"
	"github.com/ISSKA/geocruncher/internal/jobrunner"
	"github.com/ISSKA/geocruncher/internal/model"
)

var (
	voxelOutFile              string
	voxelNx, voxelNy, voxelNz int
	voxelXmin, voxelXmax      float64
	voxelYmin, voxelYmax      float64
	voxelZmin, voxelZmax      float64
)

var voxelCmd = &cobra.Command{
	Use:   "voxelise",
	Short: "Run the voxelise job against an all-sky fixture model (spec scenario S6)",
	Long: `voxelise demonstrates the voxel job wiring using a trivial all-sky
model (every point evaluates to rank 0). Wiring a real GeologicalModel
requires the external GeoModeller XML parser and implicit-field
collaborator, out of this engine's scope.`,
	RunE: runVoxelise,
}

func init() {
	voxelCmd.Flags().StringVar(&voxelOutFile, "out", "voxels.txt", "output VOX text file")
	voxelCmd.Flags().IntVar(&voxelNx, "nx", 2, "grid cells along x")
	voxelCmd.Flags().IntVar(&voxelNy, "ny", 2, "grid cells along y")
	voxelCmd.Flags().IntVar(&voxelNz, "nz", 2, "grid cells along z")
	voxelCmd.Flags().Float64Var(&voxelXmin, "xmin", 0, "box xmin")
	voxelCmd.Flags().Float64Var(&voxelXmax, "xmax", 10, "box xmax")
	voxelCmd.Flags().Float64Var(&voxelYmin, "ymin", 0, "box ymin")
	voxelCmd.Flags().Float64Var(&voxelYmax, "ymax", 10, "box ymax")
	voxelCmd.Flags().Float64Var(&voxelZmin, "zmin", 0, "box zmin")
	voxelCmd.Flags().Float64Var(&voxelZmax, "zmax", 10, "box zmax")
}

// allSkyModel is a fixture GeologicalModel whose rank is always 0
// (sky/above topography) and which has no faults, matching spec.md's S6
// scenario.
type allSkyModel struct {
	box geom.Box
}

func (m allSkyModel) BBox() geom.Box { return m.box }
func (m allSkyModel) RankBatch(points []geom.Vec3, withTopography bool) ([]int, error) {
	return make([]int, len(points)), nil
}
func (m allSkyModel) Faults() []model.FaultHandle    { return nil }
func (m allSkyModel) Topography() model.Topography   { return horizontalPlane{z: m.box.Zmax} }
func (m allSkyModel) PileReference() model.PileReference { return model.ReferenceTop }

type horizontalPlane struct{ z float64 }

func (p horizontalPlane) EvaluateZ(points []geom.Vec3) []float64 {
	out := make([]float64, len(points))
	for i := range out {
		out[i] = p.z
	}
	return out
}

func (p horizontalPlane) SignedBatch(points []geom.Vec3) []float64 {
	out := make([]float64, len(points))
	for i, pt := range points {
		out[i] = pt.Z - p.z
	}
	return out
}

func runVoxelise(cmd *cobra.Command, args []string) error {
	return jobrunner.Run("voxelise", func() error {
		box := geom.NewBox(voxelXmin, voxelYmin, voxelZmin, voxelXmax, voxelYmax, voxelZmax)
		shape := geom.Resolution3{Nx: voxelNx, Ny: voxelNy, Nz: voxelNz}
		m := allSkyModel{box: box}

		data, err := compute.Voxelise(m, shape, box, nil, nil)
		if err != nil {
			return err
		}
		if err := os.WriteFile(voxelOutFile, data, 0o644); err != nil {
			return fmt.Errorf("writing voxel output: %w", err)
		}
		return nil
	})
}
