// Copyright 2016 The Goeos Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// goeos evaluates equation-of-state models for materials held in a JSON
// material database
package main

import (
	"os"

	"github.com/cpmech/gosl/io"
	"github.com/spf13/cobra"

	"github.com/cpmech/goeos/eos"
	"github.com/cpmech/goeos/matdb"
)

var (
	matFile string    // material database path
	matName string    // material to evaluate
	rho     float64   // density input
	temp    float64   // temperature input
	sie     float64   // specific internal energy input
	aux     []float64 // auxiliary parameters
	outputs []string  // requested quantities
)

func main() {
	root := &cobra.Command{
		Use:           "goeos",
		Short:         "goeos evaluates equation-of-state models",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&matFile, "materials", "m", "materials.json", "material database (JSON)")
	root.PersistentFlags().StringVarP(&matName, "name", "n", "", "material name")
	root.PersistentFlags().Float64SliceVar(&aux, "aux", nil, "auxiliary parameters, e.g. abar,zbar")
	root.AddCommand(refCmd(), evalCmd(), scenarioCmd())
	if err := root.Execute(); err != nil {
		io.PfRed("ERROR: %v\n", err)
		os.Exit(1)
	}
}

// model loads the database and returns the selected material's model
func model() (eos.Model, error) {
	db, err := matdb.Read(matFile)
	if err != nil {
		return nil, err
	}
	return db.Model(matName)
}

func refCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ref",
		Short: "print the reference state of a material",
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := model()
			if err != nil {
				return err
			}
			r, err := m.ValuesAtReferenceState(aux)
			if err != nil {
				return err
			}
			io.Pf("%v\n", m)
			io.Pf("  rho   = %23.15e\n", r.Rho)
			io.Pf("  temp  = %23.15e\n", r.Temp)
			io.Pf("  sie   = %23.15e\n", r.Sie)
			io.Pf("  press = %23.15e\n", r.Press)
			io.Pf("  cv    = %23.15e\n", r.Cv)
			io.Pf("  bmod  = %23.15e\n", r.Bmod)
			io.Pf("  dpde  = %23.15e\n", r.DPDE)
			io.Pf("  dvdt  = %23.15e\n", r.DVDT)
			return nil
		},
	}
}

func evalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eval",
		Short: "evaluate one thermodynamic state",
		Long: "evaluate one thermodynamic state given density and either " +
			"temperature or specific internal energy",
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := model()
			if err != nil {
				return err
			}
			s := eos.State{Rho: rho, Sie: sie}
			if cmd.Flags().Changed("temp") {
				s.Temp = temp
				if s.Sie, err = m.InternalEnergyFromDensityTemperature(rho, temp, aux); err != nil {
					return err
				}
			}
			mask, err := outputMask()
			if err != nil {
				return err
			}
			if err := m.Fill(&s, mask, aux); err != nil {
				return err
			}
			printState(&s, mask)
			return nil
		},
	}
	cmd.Flags().Float64Var(&rho, "rho", 0, "density")
	cmd.Flags().Float64Var(&temp, "temp", 0, "temperature")
	cmd.Flags().Float64Var(&sie, "sie", 0, "specific internal energy")
	cmd.Flags().StringSliceVar(&outputs, "output", nil, "quantities to compute (default: all)")
	return cmd
}

// outputMask combines the requested quantity names
func outputMask() (eos.Quantity, error) {
	if len(outputs) == 0 {
		return eos.AllValues, nil
	}
	mask := eos.None
	for _, name := range outputs {
		q, err := eos.ParseQuantity(name)
		if err != nil {
			return eos.None, err
		}
		mask |= q
	}
	return mask, nil
}

func printState(s *eos.State, mask eos.Quantity) {
	io.Pf("  rho   = %23.15e\n", s.Rho)
	io.Pf("  sie   = %23.15e\n", s.Sie)
	if mask.Has(eos.Pressure) {
		io.Pf("  press = %23.15e\n", s.Press)
	}
	if mask.Has(eos.Temperature) {
		io.Pf("  temp  = %23.15e\n", s.Temp)
	}
	if mask.Has(eos.BulkModulus) {
		io.Pf("  bmod  = %23.15e\n", s.Bmod)
	}
	if mask.Has(eos.SpecificHeat) {
		io.Pf("  cv    = %23.15e\n", s.Cv)
	}
}
