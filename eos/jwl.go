// Copyright 2016 The Goeos Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eos

import (
	"fmt"
	"math"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/goeos/roots"
)

// JWL implements the Jones-Wilkins-Lee equation of state for detonation
// products. The model composes a cold curve with a constant-cv thermal term:
//   Pref(ρ) = A・exp(-R1・ρ0/ρ) + B・exp(-R2・ρ0/ρ)
//   eref(ρ) = A/(ρ0・R1)・exp(-R1・ρ0/ρ) + B/(ρ0・R2)・exp(-R2・ρ0/ρ)
//   e(ρ,T)  = eref(ρ) + cv・T
//   P(ρ,e)  = Pref(ρ) + w・ρ・(e - eref(ρ))
// The native input pair is (density, specific internal energy). Entropy has
// no closed form and is not enabled.
type JWL struct {
	a, b   float64 // A, B: cold-curve amplitudes
	r1, r2 float64 // R1, R2: cold-curve exponents
	ω      float64 // w: Gruneisen parameter
	ρ0     float64 // rho0: reference density
	cv     float64 // cv: specific heat at constant volume
}

// density bracket and tolerances for the (P,T) inversion
const (
	jwlRhoMin = 1e-5
	jwlRhoMax = 1e3
	jwlTol    = 1e-8
)

// add model to factory
func init() {
	allocators["jwl"] = func() ParamModel { return new(JWL) }
}

// Init initialises this model
func (o *JWL) Init(prms dbf.Params) (err error) {
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "a":
			o.a = p.V
		case "b":
			o.b = p.V
		case "r1":
			o.r1 = p.V
		case "r2":
			o.r2 = p.V
		case "w":
			o.ω = p.V
		case "rho0":
			o.ρ0 = p.V
		case "cv":
			o.cv = p.V
		default:
			return chk.Err("jwl: parameter named %q is incorrect", p.N)
		}
	}
	if o.ρ0 <= 0 {
		return chk.Err("jwl: reference density must be positive (rho0=%g)", o.ρ0)
	}
	if o.cv <= 0 {
		return chk.Err("jwl: specific heat must be positive (cv=%g)", o.cv)
	}
	if o.r1 <= 0 || o.r2 <= 0 {
		return chk.Err("jwl: exponents must be positive (r1=%g, r2=%g)", o.r1, o.r2)
	}
	return
}

// GetPrms gets (an example of) parameters
func (o JWL) GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{ // representative detonation products
			&dbf.P{N: "a", V: 854.5},
			&dbf.P{N: "b", V: 20.5},
			&dbf.P{N: "r1", V: 4.6},
			&dbf.P{N: "r2", V: 1.35},
			&dbf.P{N: "w", V: 0.25},
			&dbf.P{N: "rho0", V: 1.63},
			&dbf.P{N: "cv", V: 1.0},
		}
	}
	return dbf.Params{
		&dbf.P{N: "a", V: o.a},
		&dbf.P{N: "b", V: o.b},
		&dbf.P{N: "r1", V: o.r1},
		&dbf.P{N: "r2", V: o.r2},
		&dbf.P{N: "w", V: o.ω},
		&dbf.P{N: "rho0", V: o.ρ0},
		&dbf.P{N: "cv", V: o.cv},
	}
}

// PreferredInput returns the native input pair
func (o JWL) PreferredInput() Quantity {
	return Density | SpecificInternalEnergy
}

// Naux returns the number of auxiliary scalar slots (none)
func (o JWL) Naux() int {
	return 0
}

// ReferencePressure computes the cold-curve pressure at rho
func (o JWL) ReferencePressure(rho float64) float64 {
	x := o.ρ0 / rho
	return o.a*math.Exp(-o.r1*x) + o.b*math.Exp(-o.r2*x)
}

// ReferenceEnergy computes the cold-curve specific internal energy at rho
func (o JWL) ReferenceEnergy(rho float64) float64 {
	x := o.ρ0 / rho
	return o.a/(o.ρ0*o.r1)*math.Exp(-o.r1*x) + o.b/(o.ρ0*o.r2)*math.Exp(-o.r2*x)
}

// InternalEnergyFromDensityTemperature computes e(ρ,T) = eref(ρ) + cv・T
func (o JWL) InternalEnergyFromDensityTemperature(rho, temp float64, aux []float64) (float64, error) {
	if err := checkRhoTemp("jwl", rho, temp); err != nil {
		return 0, err
	}
	return o.ReferenceEnergy(rho) + o.cv*temp, nil
}

// TemperatureFromDensityInternalEnergy computes T(ρ,e) = (e - eref(ρ))/cv
func (o JWL) TemperatureFromDensityInternalEnergy(rho, sie float64, aux []float64) (float64, error) {
	if err := checkRho("jwl", rho); err != nil {
		return 0, err
	}
	return (sie - o.ReferenceEnergy(rho)) / o.cv, nil
}

// PressureFromDensityInternalEnergy computes P(ρ,e) = Pref(ρ) + w・ρ・(e - eref(ρ))
func (o JWL) PressureFromDensityInternalEnergy(rho, sie float64, aux []float64) (float64, error) {
	if err := checkRho("jwl", rho); err != nil {
		return 0, err
	}
	return o.ReferencePressure(rho) + o.ω*rho*(sie-o.ReferenceEnergy(rho)), nil
}

// PressureFromDensityTemperature converts T to e and delegates
func (o JWL) PressureFromDensityTemperature(rho, temp float64, aux []float64) (float64, error) {
	sie, err := o.InternalEnergyFromDensityTemperature(rho, temp, aux)
	if err != nil {
		return 0, err
	}
	return o.PressureFromDensityInternalEnergy(rho, sie, aux)
}

// EntropyFromDensityInternalEnergy is not enabled for this model
func (o JWL) EntropyFromDensityInternalEnergy(rho, sie float64, aux []float64) (float64, error) {
	return 1, notEnabled("jwl", "entropy")
}

// EntropyFromDensityTemperature is not enabled for this model
func (o JWL) EntropyFromDensityTemperature(rho, temp float64, aux []float64) (float64, error) {
	return 1, notEnabled("jwl", "entropy")
}

// SpecificHeatFromDensityInternalEnergy returns the constant cv
func (o JWL) SpecificHeatFromDensityInternalEnergy(rho, sie float64, aux []float64) (float64, error) {
	if err := checkRho("jwl", rho); err != nil {
		return 0, err
	}
	return o.cv, nil
}

// SpecificHeatFromDensityTemperature returns the constant cv
func (o JWL) SpecificHeatFromDensityTemperature(rho, temp float64, aux []float64) (float64, error) {
	if err := checkRhoTemp("jwl", rho, temp); err != nil {
		return 0, err
	}
	return o.cv, nil
}

// BulkModulusFromDensityInternalEnergy combines the thermal stiffness with
// the cold-curve stiffness
func (o JWL) BulkModulusFromDensityInternalEnergy(rho, sie float64, aux []float64) (float64, error) {
	if err := checkRho("jwl", rho); err != nil {
		return 0, err
	}
	x := o.ρ0 / rho
	return (o.ω+1)*o.ω*rho*(sie-o.ReferenceEnergy(rho)) +
		x*(o.a*o.r1*math.Exp(-o.r1*x)+o.b*o.r2*math.Exp(-o.r2*x)), nil
}

// BulkModulusFromDensityTemperature converts T to e and delegates
func (o JWL) BulkModulusFromDensityTemperature(rho, temp float64, aux []float64) (float64, error) {
	sie, err := o.InternalEnergyFromDensityTemperature(rho, temp, aux)
	if err != nil {
		return 0, err
	}
	return o.BulkModulusFromDensityInternalEnergy(rho, sie, aux)
}

// GruneisenParamFromDensityInternalEnergy returns the constant w
func (o JWL) GruneisenParamFromDensityInternalEnergy(rho, sie float64, aux []float64) (float64, error) {
	if err := checkRho("jwl", rho); err != nil {
		return 0, err
	}
	return o.ω, nil
}

// GruneisenParamFromDensityTemperature returns the constant w
func (o JWL) GruneisenParamFromDensityTemperature(rho, temp float64, aux []float64) (float64, error) {
	if err := checkRhoTemp("jwl", rho, temp); err != nil {
		return 0, err
	}
	return o.ω, nil
}

// DensityEnergyFromPressureTemperature solves ρ from
//   P(ρ) = cv・T・ρ・w + Pref(ρ)
// for the given pressure, then computes e at the solution. The reference
// density serves as the initial guess.
func (o JWL) DensityEnergyFromPressureTemperature(press, temp float64, aux []float64) (rho, sie float64, err error) {
	if !(temp > 0) {
		return 0, 0, fmt.Errorf("jwl: temperature must be positive (temp=%g): %w", temp, ErrDomain)
	}
	pOfRho := func(r float64) float64 {
		return o.cv*temp*r*o.ω + o.ReferencePressure(r)
	}
	rho, status, stats := roots.RegulaFalsi(pOfRho, press, o.ρ0, jwlRhoMin, jwlRhoMax, jwlTol, jwlTol)
	if status != roots.Success {
		return 0, 0, fmt.Errorf("jwl: cannot solve density for press=%g temp=%g (bracket [%g,%g], %d iterations): %v: %w",
			press, temp, jwlRhoMin, jwlRhoMax, stats.It, status, ErrRootFind)
	}
	sie, err = o.InternalEnergyFromDensityTemperature(rho, temp, aux)
	return
}

// Fill computes the requested quantities from (s.Rho, s.Sie), writing only
// the fields named in output
func (o JWL) Fill(s *State, output Quantity, aux []float64) (err error) {
	if output.Has(Pressure) {
		if s.Press, err = o.PressureFromDensityInternalEnergy(s.Rho, s.Sie, aux); err != nil {
			return
		}
	}
	if output.Has(Temperature) {
		if s.Temp, err = o.TemperatureFromDensityInternalEnergy(s.Rho, s.Sie, aux); err != nil {
			return
		}
	}
	if output.Has(BulkModulus) {
		if s.Bmod, err = o.BulkModulusFromDensityInternalEnergy(s.Rho, s.Sie, aux); err != nil {
			return
		}
	}
	if output.Has(SpecificHeat) {
		if s.Cv, err = o.SpecificHeatFromDensityInternalEnergy(s.Rho, s.Sie, aux); err != nil {
			return
		}
	}
	return
}

// ValuesAtReferenceState computes the reference tuple through the general
// relations, at (ρ0, room temperature, atmospheric pressure)
func (o JWL) ValuesAtReferenceState(aux []float64) (*RefState, error) {
	r := &RefState{
		Rho:   o.ρ0,
		Temp:  RoomTemperature,
		Press: AtmosphericPressure,
		Cv:    o.cv,
	}
	sie, err := o.InternalEnergyFromDensityTemperature(r.Rho, r.Temp, aux)
	if err != nil {
		return nil, err
	}
	r.Sie = sie
	bmod, err := o.BulkModulusFromDensityInternalEnergy(r.Rho, r.Sie, aux)
	if err != nil {
		return nil, err
	}
	r.Bmod = bmod
	r.DPDE = o.ω * o.ρ0
	// stopgap thermal-expansion derivative: Γ・ρ・cv / B
	r.DVDT = o.ω * r.Rho * r.Cv / r.Bmod
	return r, nil
}

// ScratchSize returns the scratch storage needed per batch operation (none)
func (o JWL) ScratchSize(method string, nelements int) int {
	return 0
}

// MaxScratchSize returns the largest scratch requirement over all batch
// operations (none)
func (o JWL) MaxScratchSize(nelements int) int {
	return 0
}

// String renders the model parameters
func (o JWL) String() string {
	return io.Sf("JWL Params: A:%e B:%e R1:%e R2:%e w:%e rho0:%e Cv:%e",
		o.a, o.b, o.r1, o.r2, o.ω, o.ρ0, o.cv)
}
