// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"encoding/json"
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
	meshesOutDir                 string
	meshesNx, meshesNy, meshesNz int
	meshesXmin, meshesXmax       float64
	meshesYmin, meshesYmax       float64
	meshesZmin, meshesZmax       float64
	meshesRadius                 float64
)

var meshesCmd = &cobra.Command{
	Use:   "meshes",
	Short: "Run the generate_volumes job against a single-sphere fixture model",
	Long: `meshes demonstrates the generate_volumes job wiring using a
fixture model whose single unit is a sphere centred on the sampling box.
Wiring a real GeologicalModel requires the external GeoModeller XML
parser and implicit-field collaborator, out of this engine's scope.
Each resulting mesh is written under --outdir keyed by a fresh UUIDv4,
and an index.json maps unit rank / fault name to that blob key --
matching the blob-store key contract spec.md §6 describes.`,
	RunE: runMeshes,
}

func init() {
	meshesCmd.Flags().StringVar(&meshesOutDir, "outdir", "meshes_out", "output directory for mesh blobs")
	meshesCmd.Flags().IntVar(&meshesNx, "nx", 24, "grid samples along x")
	meshesCmd.Flags().IntVar(&meshesNy, "ny", 24, "grid samples along y")
	meshesCmd.Flags().IntVar(&meshesNz, "nz", 24, "grid samples along z")
	meshesCmd.Flags().Float64Var(&meshesXmin, "xmin", 0, "box xmin")
	meshesCmd.Flags().Float64Var(&meshesXmax, "xmax", 20, "box xmax")
	meshesCmd.Flags().Float64Var(&meshesYmin, "ymin", 0, "box ymin")
	meshesCmd.Flags().Float64Var(&meshesYmax, "ymax", 20, "box ymax")
	meshesCmd.Flags().Float64Var(&meshesZmin, "zmin", 0, "box zmin")
	meshesCmd.Flags().Float64Var(&meshesZmax, "zmax", 20, "box zmax")
	meshesCmd.Flags().Float64Var(&meshesRadius, "radius", 8, "fixture sphere radius")
}

// sphereFixtureModel ranks every point 1 inside a sphere centred on the
// box, 0 (sky) outside -- a stand-in for a real implicit model, used only
// to exercise this binary's job wiring end to end.
type sphereFixtureModel struct {
	box    geom.Box
	center geom.Vec3
	radius float64
}

func (m sphereFixtureModel) BBox() geom.Box { return m.box }
func (m sphereFixtureModel) RankBatch(points []geom.Vec3, withTopography bool) ([]int, error) {
	out := make([]int, len(points))
	for i, p := range points {
		if p.Sub(m.center).Norm() <= m.radius {
			out[i] = 1
		}
	}
	return out, nil
}
func (m sphereFixtureModel) Faults() []model.FaultHandle        { return nil }
func (m sphereFixtureModel) Topography() model.Topography       { return horizontalPlane{z: m.box.Zmax} }
func (m sphereFixtureModel) PileReference() model.PileReference { return model.ReferenceTop }

func runMeshes(cmd *cobra.Command, args []string) error {
	return jobrunner.Run("meshes", func() error {
		box := geom.NewBox(meshesXmin, meshesYmin, meshesZmin, meshesXmax, meshesYmax, meshesZmax)
		shape := geom.Resolution3{Nx: meshesNx, Ny: meshesNy, Nz: meshesNz}
		center := geom.Vec3{X: (meshesXmin + meshesXmax) / 2, Y: (meshesYmin + meshesYmax) / 2, Z: (meshesZmin + meshesZmax) / 2}
		m := sphereFixtureModel{box: box, center: center, radius: meshesRadius}

		result, err := compute.GenerateVolumes(context.Background(), m, shape, box, nil, mesh.FormatOFF, nil)
		if err != nil {
			return err
		}

		if err := os.MkdirAll(meshesOutDir, 0o755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
		store := jobio.NewBlobStore()
		index := struct {
			Units  map[string]string `json:"units"`
			Faults map[string]string `json:"faults"`
		}{
			Units:  make(map[string]string, len(result.Units)),
			Faults: make(map[string]string, len(result.Faults)),
		}
		for rank, blob := range result.Units {
			key := store.Put(blob)
			index.Units[fmt.Sprintf("%d", rank)] = key
		}
		for name, blob := range result.Faults {
			key := store.Put(blob)
			index.Faults[name] = key
		}
		for _, key := range store.Keys() {
			data, _ := store.Get(key)
			if err := os.WriteFile(filepath.Join(meshesOutDir, key+".off"), data, 0o644); err != nil {
				return fmt.Errorf("writing blob %s: %w", key, err)
			}
		}
		indexData, err := json.MarshalIndent(index, "", "  ")
		if err != nil {
			return fmt.Errorf("marshalling index: %w", err)
		}
		return os.WriteFile(filepath.Join(meshesOutDir, "index.json"), indexData, 0o644)
	})
}
