// Copyright 2026 The Solid State Model Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"os"

	"github.com/CrystalPlasticityLab/solid-state-model/inp"
	"github.com/CrystalPlasticityLab/solid-state-model/msolid"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/spf13/cobra"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			chk.Verbose = true
			for i := 8; i > 3; i-- {
				chk.CallerInfo(i)
			}
			io.PfRed("ERROR: %v\n", err)
			os.Exit(1)
		}
	}()

	rootCmd := &cobra.Command{
		Use:   "solid-state-model",
		Short: "Material point simulations with frame-aware tensors",
		Long: `solid-state-model drives one material point (elasticity or plasticity)
through a loading program given by a velocity gradient, advancing every
measure with a rate or finite numerical schema.`,
		SilenceUsage: true,
	}
	rootCmd.AddCommand(newRunCmd(), newSampleCmd())

	if err := rootCmd.Execute(); err != nil {
		io.PfRed("ERROR: %v\n", err)
		os.Exit(1)
	}
}

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <params.json|params.yaml>",
		Short: "Run a material point simulation",
		Long: `Run a material point simulation described by a parameter document.

Examples:
  solid-state-model run shear.json
  solid-state-model run shear.yaml --verbose --table /tmp/shear.txt`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			verbose, _ := cmd.Flags().GetBool("verbose")
			table, _ := cmd.Flags().GetString("table")
			comps, _ := cmd.Flags().GetBool("comps")

			mat, err := inp.ReadMaterial(args[0])
			if err != nil {
				return err
			}
			if verbose {
				io.PfWhite("\n%s\n\n", mat.Desc)
				io.Pf("%24s = %v\n", "parameter file", args[0])
				io.Pf("%24s = %v\n", "model", mat.Model)
				io.Pf("%24s = %v\n", "numerical schema", mat.Schema)
				io.Pf("%24s = %v\n", "frame", mat.Frame)
				io.Pf("%24s = %v\n", "time increment", mat.Dt)
				io.Pf("%24s = %v\n\n", "number of increments", mat.Nsteps)
			}

			drv, err := msolid.NewDriver(mat)
			if err != nil {
				return err
			}
			drv.Verbose = verbose
			if err = drv.Run(); err != nil {
				return err
			}

			buf := drv.Table(comps)
			if table == "" {
				io.Pf("%s", buf.String())
				return nil
			}
			io.WriteFile(table, buf)
			io.Pfgreen("file <%s> written\n", table)
			return nil
		},
	}
	cmd.Flags().BoolP("verbose", "v", false, "Print the state before and after running")
	cmd.Flags().String("table", "", "Write the history table to this file instead of stdout")
	cmd.Flags().Bool("comps", false, "Include the components of every measure in the table")
	return cmd
}

func newSampleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sample <elasticity|plasticity>",
		Short: "Print a sample parameter document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("format")
			mat, err := inp.Sample(args[0])
			if err != nil {
				return err
			}
			b, err := mat.Encode(format)
			if err != nil {
				return err
			}
			io.Pf("%s\n", string(b))
			return nil
		},
	}
	cmd.Flags().StringP("format", "f", "json", "Output format: json or yaml")
	return cmd
}
