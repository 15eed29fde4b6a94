// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ISSKA/geocruncher/internal/compute"
	"github.com/ISSKA/geocruncher/internal/geom"
	"github.com/ISSKA/geocruncher/internal/jobio"
	"github.com/ISSKA/geocruncher/internal/jobrunner"
	"github.com/ISSKA/geocruncher/internal/mesh"
	"github.com/ISSKA/geocruncher/internal/model"
)

var (
	faultsOutDir                 string
	faultsNx, faultsNy, faultsNz int
	faultsXmin, faultsXmax       float64
	faultsYmin, faultsYmax       float64
	faultsZmin, faultsZmax       float64
	faultsElevation              float64
)

var faultsCmd = &cobra.Command{
	Use:   "faults",
	Short: "Run the generate_fault_meshes job against a flat-plane fixture tesselator",
	Long: `faults demonstrates the generate_fault_meshes job wiring using a
fixture tesselator that represents every named fault as a single flat
rectangle at a fixed elevation. Wiring a real fault tesselator requires
the external CAD/tesselation collaborator named in spec.md, out of this
engine's scope. Each resulting fault mesh is written under --outdir
keyed by a fresh UUIDv4, matching the blob-store key contract spec.md §6
describes.`,
	RunE: runFaults,
}

func init() {
	faultsCmd.Flags().StringVar(&faultsOutDir, "outdir", "faults_out", "output directory for mesh blobs")
	faultsCmd.Flags().IntVar(&faultsNx, "nx", 16, "grid samples along x")
	faultsCmd.Flags().IntVar(&faultsNy, "ny", 16, "grid samples along y")
	faultsCmd.Flags().IntVar(&faultsNz, "nz", 16, "grid samples along z")
	faultsCmd.Flags().Float64Var(&faultsXmin, "xmin", 0, "box xmin")
	faultsCmd.Flags().Float64Var(&faultsXmax, "xmax", 20, "box xmax")
	faultsCmd.Flags().Float64Var(&faultsYmin, "ymin", 0, "box ymin")
	faultsCmd.Flags().Float64Var(&faultsYmax, "ymax", 20, "box ymax")
	faultsCmd.Flags().Float64Var(&faultsZmin, "zmin", 0, "box zmin")
	faultsCmd.Flags().Float64Var(&faultsZmax, "zmax", 20, "box zmax")
	faultsCmd.Flags().Float64Var(&faultsElevation, "elevation", 10, "fixture fault plane elevation")
}

// flatPlaneTesselator is a fixture faultfield.Tesselator standing in for
// the external fault tesselator: every fault tesselates to a single flat
// rectangle spanning the box's x/y extent at a fixed z.
type flatPlaneTesselator struct {
	z float64
}

func (t flatPlaneTesselator) Tesselate(ctx context.Context, f model.FaultHandle, shape geom.Resolution3, box geom.Box) ([]mesh.Mesh, error) {
	verts := []geom.Vec3{
		{X: box.Xmin, Y: box.Ymin, Z: t.z},
		{X: box.Xmax, Y: box.Ymin, Z: t.z},
		{X: box.Xmax, Y: box.Ymax, Z: t.z},
		{X: box.Xmin, Y: box.Ymax, Z: t.z},
	}
	faces := [][3]int{{0, 1, 2}, {0, 2, 3}}
	return []mesh.Mesh{{Vertices: verts, Faces: faces}}, nil
}

// twoFaultModel is a fixture GeologicalModel exposing two named faults,
// "north" and "south", with no stops_on relation between them.
type twoFaultModel struct {
	box geom.Box
}

func (m twoFaultModel) BBox() geom.Box { return m.box }
func (m twoFaultModel) RankBatch(points []geom.Vec3, withTopography bool) ([]int, error) {
	return make([]int, len(points)), nil
}
func (m twoFaultModel) Faults() []model.FaultHandle {
	return []model.FaultHandle{
		{Name: "north", Evaluate: func(points []geom.Vec3) []float64 { return make([]float64, len(points)) }},
		{Name: "south", Evaluate: func(points []geom.Vec3) []float64 { return make([]float64, len(points)) }},
	}
}
func (m twoFaultModel) Topography() model.Topography       { return horizontalPlane{z: m.box.Zmax} }
func (m twoFaultModel) PileReference() model.PileReference { return model.ReferenceTop }

func runFaults(cmd *cobra.Command, args []string) error {
	return jobrunner.Run("faults", func() error {
		box := geom.NewBox(faultsXmin, faultsYmin, faultsZmin, faultsXmax, faultsYmax, faultsZmax)
		shape := geom.Resolution3{Nx: faultsNx, Ny: faultsNy, Nz: faultsNz}
		m := twoFaultModel{box: box}
		tess := flatPlaneTesselator{z: faultsElevation}

		faults, err := compute.GenerateFaultMeshes(context.Background(), m, shape, box, tess, mesh.FormatOFF, nil)
		if err != nil {
			return err
		}

		if err := os.MkdirAll(faultsOutDir, 0o755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
		store := jobio.NewBlobStore()
		for name, blob := range faults {
			key := store.Put(blob)
			if err := os.WriteFile(filepath.Join(faultsOutDir, key+".off"), blob, 0o644); err != nil {
				return fmt.Errorf("writing blob %s: %w", key, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s -> %s\n", name, key)
		}
		return nil
	})
}
