// Copyright 2016 The Goeos Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eos

// State holds one thermodynamic state. Which fields are meaningful depends
// on the query: Fill reads the input pair and writes only the requested
// output fields, leaving the others untouched.
type State struct {
	Rho   float64 // ρ: density
	Temp  float64 // T: temperature
	Sie   float64 // e: specific internal energy
	Press float64 // P: pressure
	Cv    float64 // cv: specific heat at constant volume
	Bmod  float64 // B: bulk modulus
}

// GetCopy returns a copy of this state
func (o State) GetCopy() *State {
	c := o
	return &c
}

// RefState holds quantities evaluated at a model's reference state. It is
// recomputed on demand from the model parameters and never stored.
type RefState struct {
	Rho   float64 // ρ0: reference density
	Temp  float64 // T0: reference (room) temperature
	Sie   float64 // e0: specific internal energy at (ρ0, T0)
	Press float64 // P0: reference (atmospheric) pressure
	Cv    float64 // cv0: specific heat at the reference state
	Bmod  float64 // B0: bulk modulus at the reference state
	DPDE  float64 // ∂P/∂e at constant ρ, at the reference state
	DVDT  float64 // ∂(1/ρ)/∂T at constant P, at the reference state
}
