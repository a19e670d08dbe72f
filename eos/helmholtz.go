// Copyright 2016 The Goeos Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eos

import (
	"fmt"
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/goeos/roots"
)

// Point holds the quantities an interpolation service returns at one (ρ,T)
// query
type Point struct {
	Sie   float64 // specific internal energy
	Press float64 // pressure
	Cv    float64 // specific heat at constant volume
	Bmod  float64 // bulk modulus
	Gamma float64 // Gruneisen parameter
}

// Lookup defines the opaque interpolation service consumed by tabulated
// models. Out-of-domain queries must return an error; values are never
// silently clamped at the boundaries.
type Lookup interface {
	Inside(rho, temp float64) bool      // tells whether (ρ,T) is within the tabulated domain
	RhoRange() (lo, hi float64)         // tabulated density limits
	TempRange() (lo, hi float64)        // tabulated temperature limits
	At(rho, temp float64) (Point, error) // interpolates all quantities at (ρ,T)
}

// Helmholtz implements a tabulated equation of state for stellar matter.
// The electron-positron part comes from a precomputed table indexed by the
// electron density din = ρ・zbar/abar and temperature; the ion ideal gas and
// radiation contributions are added in closed form when enabled. The native
// input pair is (density, temperature); (ρ,e) queries solve T with the
// roots engine against the tabulated energy relation and then re-query the
// table at the solved T, so the two paths stay mutually consistent.
//
// The auxiliary parameter vector carries the composition: aux[0] = abar
// (mean atomic mass) and aux[1] = zbar (mean ionization).
type Helmholtz struct {
	tab Lookup // interpolation service (read-only)
	ion bool   // add the ideal-ion-gas contribution
	rad bool   // add the radiation contribution
}

// relative tolerances for the temperature and density inversions
const helmTolRel = 1e-12

// NewHelmholtz returns a tabulated model wrapping the interpolation service
// tab. Loading and validating the dataset behind tab is the caller's
// responsibility.
func NewHelmholtz(tab Lookup, withIonGas, withRadiation bool) (*Helmholtz, error) {
	if tab == nil {
		return nil, chk.Err("helmholtz: interpolation service must not be nil")
	}
	return &Helmholtz{tab: tab, ion: withIonGas, rad: withRadiation}, nil
}

// PreferredInput returns the native input pair
func (o *Helmholtz) PreferredInput() Quantity {
	return Density | Temperature
}

// Naux returns the number of auxiliary scalar slots: [abar, zbar]
func (o *Helmholtz) Naux() int {
	return 2
}

// abarZbar validates and unpacks the auxiliary parameter vector
func (o *Helmholtz) abarZbar(aux []float64) (abar, zbar float64, err error) {
	if len(aux) != 2 {
		return 0, 0, chk.Err("helmholtz: aux must contain [abar, zbar] (len=%d)", len(aux))
	}
	abar, zbar = aux[0], aux[1]
	if !(abar > 0) || !(zbar > 0) {
		return 0, 0, fmt.Errorf("helmholtz: composition must be positive (abar=%g, zbar=%g): %w", abar, zbar, ErrDomain)
	}
	return
}

// total computes all quantities at (ρ,T): tabulated electron-positron part
// plus the enabled closed-form contributions. The Gruneisen parameter of the
// sum follows from Γ = (∂P/∂T)|ρ / (ρ・cv) with ∂P/∂T additive over the
// contributions.
func (o *Helmholtz) total(rho, temp float64, aux []float64) (Point, error) {
	abar, zbar, err := o.abarZbar(aux)
	if err != nil {
		return Point{}, err
	}
	if err := checkRhoTemp("helmholtz", rho, temp); err != nil {
		return Point{}, err
	}
	din := rho * zbar / abar
	pt, err := o.tab.At(din, temp)
	if err != nil {
		return Point{}, fmt.Errorf("helmholtz: rho=%g temp=%g (din=%g): %w", rho, temp, din, err)
	}
	sie, press, cv, bmod := pt.Sie, pt.Press, pt.Cv, pt.Bmod
	dpdt := pt.Gamma * rho * pt.Cv
	if o.ion {
		nkt := KBoltzmann * temp / (abar * AtomicMassUnit) // kB・T per unit mass
		pion := rho * nkt
		sie += 1.5 * nkt
		press += pion
		cv += 1.5 * KBoltzmann / (abar * AtomicMassUnit)
		bmod += 5.0 / 3.0 * pion
		dpdt += pion / temp
	}
	if o.rad {
		prad := RadiationConstant * temp * temp * temp * temp / 3.0
		sie += 3.0 * prad / rho
		press += prad
		cv += 12.0 * prad / (rho * temp)
		bmod += 4.0 / 3.0 * prad
		dpdt += 4.0 * prad / temp
	}
	return Point{
		Sie:   sie,
		Press: press,
		Cv:    cv,
		Bmod:  bmod,
		Gamma: dpdt / (rho * cv),
	}, nil
}

// solveTemperature inverts the energy relation e(ρ,T) = sie over the
// tabulated temperature range
func (o *Helmholtz) solveTemperature(rho, sie float64, aux []float64) (temp float64, err error) {

	// validate inputs once so the objective below cannot fail
	tlo, thi := o.tab.TempRange()
	if _, err = o.total(rho, tlo, aux); err != nil {
		return
	}

	// e(ρ,T) at fixed ρ and composition
	obj := func(t float64) float64 {
		pt, e := o.total(rho, t, aux)
		if e != nil {
			return math.NaN() // unreachable: t stays within the tabulated range
		}
		return pt.Sie
	}

	guess := math.Sqrt(tlo * thi) // log-mid of the (log-spaced) table
	xtol := helmTolRel * tlo      // conservative: the residual criterion terminates first
	ytol := helmTolRel * math.Abs(sie)
	temp, status, stats := roots.RegulaFalsi(obj, sie, guess, tlo, thi, xtol, ytol)
	if status != roots.Success {
		return 0, fmt.Errorf("helmholtz: cannot solve temperature for rho=%g sie=%g (bracket [%g,%g], %d iterations): %v: %w",
			rho, sie, tlo, thi, stats.It, status, ErrRootFind)
	}
	return temp, nil
}

// atSie evaluates all quantities in the (ρ,e) parameterization: solve T,
// then re-query the table at the solved T
func (o *Helmholtz) atSie(rho, sie float64, aux []float64) (Point, float64, error) {
	temp, err := o.solveTemperature(rho, sie, aux)
	if err != nil {
		return Point{}, 0, err
	}
	pt, err := o.total(rho, temp, aux)
	return pt, temp, err
}

// InternalEnergyFromDensityTemperature interpolates e at (ρ,T)
func (o *Helmholtz) InternalEnergyFromDensityTemperature(rho, temp float64, aux []float64) (float64, error) {
	pt, err := o.total(rho, temp, aux)
	return pt.Sie, err
}

// PressureFromDensityTemperature interpolates P at (ρ,T)
func (o *Helmholtz) PressureFromDensityTemperature(rho, temp float64, aux []float64) (float64, error) {
	pt, err := o.total(rho, temp, aux)
	return pt.Press, err
}

// EntropyFromDensityTemperature is not enabled: the interpolation service
// does not carry entropy
func (o *Helmholtz) EntropyFromDensityTemperature(rho, temp float64, aux []float64) (float64, error) {
	return 1, notEnabled("helmholtz", "entropy")
}

// SpecificHeatFromDensityTemperature interpolates cv at (ρ,T)
func (o *Helmholtz) SpecificHeatFromDensityTemperature(rho, temp float64, aux []float64) (float64, error) {
	pt, err := o.total(rho, temp, aux)
	return pt.Cv, err
}

// BulkModulusFromDensityTemperature interpolates B at (ρ,T)
func (o *Helmholtz) BulkModulusFromDensityTemperature(rho, temp float64, aux []float64) (float64, error) {
	pt, err := o.total(rho, temp, aux)
	return pt.Bmod, err
}

// GruneisenParamFromDensityTemperature interpolates Γ at (ρ,T)
func (o *Helmholtz) GruneisenParamFromDensityTemperature(rho, temp float64, aux []float64) (float64, error) {
	pt, err := o.total(rho, temp, aux)
	return pt.Gamma, err
}

// TemperatureFromDensityInternalEnergy solves T from the tabulated energy
// relation
func (o *Helmholtz) TemperatureFromDensityInternalEnergy(rho, sie float64, aux []float64) (float64, error) {
	if err := checkRho("helmholtz", rho); err != nil {
		return 0, err
	}
	return o.solveTemperature(rho, sie, aux)
}

// PressureFromDensityInternalEnergy solves T, then interpolates P
func (o *Helmholtz) PressureFromDensityInternalEnergy(rho, sie float64, aux []float64) (float64, error) {
	pt, _, err := o.atSie(rho, sie, aux)
	return pt.Press, err
}

// EntropyFromDensityInternalEnergy is not enabled
func (o *Helmholtz) EntropyFromDensityInternalEnergy(rho, sie float64, aux []float64) (float64, error) {
	return 1, notEnabled("helmholtz", "entropy")
}

// SpecificHeatFromDensityInternalEnergy solves T, then interpolates cv
func (o *Helmholtz) SpecificHeatFromDensityInternalEnergy(rho, sie float64, aux []float64) (float64, error) {
	pt, _, err := o.atSie(rho, sie, aux)
	return pt.Cv, err
}

// BulkModulusFromDensityInternalEnergy solves T, then interpolates B
func (o *Helmholtz) BulkModulusFromDensityInternalEnergy(rho, sie float64, aux []float64) (float64, error) {
	pt, _, err := o.atSie(rho, sie, aux)
	return pt.Bmod, err
}

// GruneisenParamFromDensityInternalEnergy solves T, then interpolates Γ
func (o *Helmholtz) GruneisenParamFromDensityInternalEnergy(rho, sie float64, aux []float64) (float64, error) {
	pt, _, err := o.atSie(rho, sie, aux)
	return pt.Gamma, err
}

// DensityEnergyFromPressureTemperature solves ρ from the tabulated pressure
// relation at fixed T, then computes e at the solution
func (o *Helmholtz) DensityEnergyFromPressureTemperature(press, temp float64, aux []float64) (rho, sie float64, err error) {
	abar, zbar, err := o.abarZbar(aux)
	if err != nil {
		return
	}
	tlo, thi := o.tab.TempRange()
	if !(temp >= tlo && temp <= thi) {
		return 0, 0, fmt.Errorf("helmholtz: temp=%g is outside the tabulated range [%g,%g]: %w", temp, tlo, thi, ErrDomain)
	}

	// density limits implied by the electron-density mapping
	dlo, dhi := o.tab.RhoRange()
	rlo := dlo * abar / zbar
	rhi := dhi * abar / zbar

	pOfRho := func(r float64) float64 {
		pt, e := o.total(r, temp, aux)
		if e != nil {
			return math.NaN() // unreachable: r stays within the mapped range
		}
		return pt.Press
	}
	guess := math.Sqrt(rlo * rhi)
	rho, status, stats := roots.RegulaFalsi(pOfRho, press, guess, rlo, rhi, helmTolRel*rlo, helmTolRel*math.Abs(press))
	if status != roots.Success {
		return 0, 0, fmt.Errorf("helmholtz: cannot solve density for press=%g temp=%g (bracket [%g,%g], %d iterations): %v: %w",
			press, temp, rlo, rhi, stats.It, status, ErrRootFind)
	}
	pt, err := o.total(rho, temp, aux)
	if err != nil {
		return 0, 0, err
	}
	return rho, pt.Sie, nil
}

// Fill computes the requested quantities, writing only the fields named in
// output. When Temperature is requested the inputs are (s.Rho, s.Sie) and
// every output comes from the single solved T; otherwise the inputs are
// (s.Rho, s.Temp).
func (o *Helmholtz) Fill(s *State, output Quantity, aux []float64) error {
	var pt Point
	var err error
	if output.Has(Temperature) {
		var temp float64
		pt, temp, err = o.atSie(s.Rho, s.Sie, aux)
		if err != nil {
			return err
		}
		s.Temp = temp
	} else {
		pt, err = o.total(s.Rho, s.Temp, aux)
		if err != nil {
			return err
		}
	}
	if output.Has(Pressure) {
		s.Press = pt.Press
	}
	if output.Has(BulkModulus) {
		s.Bmod = pt.Bmod
	}
	if output.Has(SpecificHeat) {
		s.Cv = pt.Cv
	}
	return nil
}

// ValuesAtReferenceState computes the reference tuple at the logarithmic
// midpoint of the tabulated domain; room conditions generally lie outside
// stellar-matter tables
func (o *Helmholtz) ValuesAtReferenceState(aux []float64) (*RefState, error) {
	abar, zbar, err := o.abarZbar(aux)
	if err != nil {
		return nil, err
	}
	dlo, dhi := o.tab.RhoRange()
	tlo, thi := o.tab.TempRange()
	rho := math.Sqrt(dlo*dhi) * abar / zbar
	temp := math.Sqrt(tlo * thi)
	pt, err := o.total(rho, temp, aux)
	if err != nil {
		return nil, err
	}
	return &RefState{
		Rho:   rho,
		Temp:  temp,
		Sie:   pt.Sie,
		Press: pt.Press,
		Cv:    pt.Cv,
		Bmod:  pt.Bmod,
		DPDE:  pt.Gamma * rho,
		// stopgap thermal-expansion derivative: Γ・ρ・cv / B
		DVDT: pt.Gamma * rho * pt.Cv / pt.Bmod,
	}, nil
}

// ScratchSize returns the scratch storage needed per batch operation (none)
func (o *Helmholtz) ScratchSize(method string, nelements int) int {
	return 0
}

// MaxScratchSize returns the largest scratch requirement over all batch
// operations (none)
func (o *Helmholtz) MaxScratchSize(nelements int) int {
	return 0
}

// String renders the model configuration
func (o *Helmholtz) String() string {
	dlo, dhi := o.tab.RhoRange()
	tlo, thi := o.tab.TempRange()
	return io.Sf("Helmholtz Params: din:[%e,%e] temp:[%e,%e] iongas:%v radiation:%v",
		dlo, dhi, tlo, thi, o.ion, o.rad)
}
