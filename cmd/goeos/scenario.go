// Copyright 2016 The Goeos Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"os"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/cpmech/goeos/eos"
	"github.com/cpmech/goeos/matdb"
)

// Scenario describes a batch of evaluations against one material
type Scenario struct {
	Material string      `yaml:"material"` // material name in the database
	Aux      []float64   `yaml:"aux"`      // auxiliary parameters
	Output   []string    `yaml:"output"`   // quantities to compute (empty: all)
	States   []StateSpec `yaml:"states"`   // states to evaluate
}

// StateSpec gives one input state: density plus either temperature or
// specific internal energy
type StateSpec struct {
	Rho  float64  `yaml:"rho"`
	Temp *float64 `yaml:"temp"`
	Sie  *float64 `yaml:"sie"`
}

func scenarioCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scenario <file.yaml>",
		Short: "run a YAML-described batch of evaluations",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScenario(args[0])
		},
	}
}

func runScenario(path string) error {

	// read scenario
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var sc Scenario
	if err := yaml.Unmarshal(b, &sc); err != nil {
		return chk.Err("scenario: %s: cannot decode file: %v", path, err)
	}

	// load material
	db, err := matdb.Read(matFile)
	if err != nil {
		return err
	}
	m, err := db.Model(sc.Material)
	if err != nil {
		return err
	}

	// output mask
	outputs = sc.Output
	mask, err := outputMask()
	if err != nil {
		return err
	}

	// normalise inputs to the (ρ, e) pair
	states := make([]eos.State, len(sc.States))
	for i, in := range sc.States {
		states[i].Rho = in.Rho
		switch {
		case in.Sie != nil:
			states[i].Sie = *in.Sie
		case in.Temp != nil:
			states[i].Temp = *in.Temp
			sie, err := m.InternalEnergyFromDensityTemperature(in.Rho, *in.Temp, sc.Aux)
			if err != nil {
				return chk.Err("scenario: state %d: %v", i, err)
			}
			states[i].Sie = sie
		default:
			return chk.Err("scenario: state %d needs 'temp' or 'sie'", i)
		}
	}

	// evaluate and print
	if err := eos.FillMany(m, states, mask, sc.Aux); err != nil {
		return err
	}
	io.Pf("material: %s\n", sc.Material)
	for i := range states {
		io.Pf("state %d:\n", i)
		printState(&states[i], mask)
	}
	return nil
}
