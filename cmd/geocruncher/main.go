// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/ISSKA/geocruncher/internal/config"
	gclog "github.com/ISSKA/geocruncher/internal/log"
)

var (
	cfgFile string
	cfg     *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "geocruncher",
	Short: "Geological-model compute engine",
	Long: `geocruncher runs the computation jobs of a geological-model compute
service: unit/fault mesh extraction, cross-section intersections,
voxelisation and tunnel sweep generation. The HTTP front-end, task
broker and blob store that dispatch these jobs in production are
external collaborators; this binary runs one job per invocation
against locally-supplied inputs.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		path := cfgFile
		if path == "" {
			path = "geocruncher.yaml"
		}
		loaded, err := config.Load(path)
		if err != nil {
			return err
		}
		cfg = loaded
		gclog.Setup(cfg.Log.Level, cfg.Log.Format)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./geocruncher.yaml)")
	rootCmd.AddCommand(tunnelCmd)
	rootCmd.AddCommand(meshCmd)
	rootCmd.AddCommand(meshesCmd)
	rootCmd.AddCommand(voxelCmd)
	rootCmd.AddCommand(faultsCmd)
	rootCmd.AddCommand(intersectionsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
