// Copyright 2016 The Goeos Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eos

import (
	"errors"
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
)

// anaLookup implements Lookup with closed-form gamma-law relations instead
// of an interpolated grid, so the tabulated-model plumbing can be checked
// against exact values. The convention matches the electron-part contract:
// the density argument is din and Γ satisfies Γ・ρ・cv = ∂P/∂T with ρ the
// model density. The composition used throughout is abar=4, zbar=2, hence
// din = ρ/2 and Γ = 1/3.
type anaLookup struct {
	dlo, dhi float64 // density limits
	tlo, thi float64 // temperature limits
	cv0      float64 // constant specific heat
}

var errLookup = errors.New("analytic lookup: out of range")

func (o anaLookup) Inside(din, temp float64) bool {
	return din >= o.dlo && din <= o.dhi && temp >= o.tlo && temp <= o.thi
}

func (o anaLookup) RhoRange() (lo, hi float64) {
	return o.dlo, o.dhi
}

func (o anaLookup) TempRange() (lo, hi float64) {
	return o.tlo, o.thi
}

func (o anaLookup) At(din, temp float64) (Point, error) {
	if !o.Inside(din, temp) {
		return Point{}, errLookup
	}
	press := 2.0 / 3.0 * din * o.cv0 * temp
	return Point{
		Sie:   o.cv0 * temp,
		Press: press,
		Cv:    o.cv0,
		Bmod:  5.0 / 3.0 * press,
		Gamma: 1.0 / 3.0,
	}, nil
}

// helmAux is the composition used throughout: abar=4, zbar=2 (helium-like)
var helmAux = []float64{4.0, 2.0}

// newHelm allocates a tabulated model over the analytic lookup
func newHelm(tst *testing.T, ion, rad bool) *Helmholtz {
	tab := anaLookup{dlo: 1e-4, dhi: 1e4, tlo: 1e4, thi: 1e9, cv0: 3e7}
	mdl, err := NewHelmholtz(tab, ion, rad)
	if err != nil {
		tst.Fatalf("NewHelmholtz failed: %v\n", err)
	}
	return mdl
}

func Test_helm01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("helm01. direct (rho,T) queries and contributions")

	mdl := newHelm(tst, true, true)
	rho, temp := 2.0, 1e6

	// expected composition of the three contributions
	cv0 := 3e7
	din := rho * 2.0 / 4.0
	pe := 2.0 / 3.0 * din * cv0 * temp
	nkt := KBoltzmann * temp / (4.0 * AtomicMassUnit)
	pion := rho * nkt
	prad := RadiationConstant * temp * temp * temp * temp / 3.0

	sie := cv0*temp + 1.5*nkt + 3.0*prad/rho
	press := pe + pion + prad
	cv := cv0 + 1.5*KBoltzmann/(4.0*AtomicMassUnit) + 12.0*prad/(rho*temp)
	bmod := 5.0/3.0*pe + 5.0/3.0*pion + 4.0/3.0*prad
	dpdt := rho*cv0/3.0 + pion/temp + 4.0*prad/temp
	gamma := dpdt / (rho * cv)

	e, err := mdl.InternalEnergyFromDensityTemperature(rho, temp, helmAux)
	if err != nil {
		tst.Errorf("InternalEnergy failed: %v\n", err)
		return
	}
	chk.Float64(tst, "sie", 1e-10*sie, e, sie)
	p, err := mdl.PressureFromDensityTemperature(rho, temp, helmAux)
	if err != nil {
		tst.Errorf("Pressure failed: %v\n", err)
		return
	}
	chk.Float64(tst, "press", 1e-10*press, p, press)
	c, err := mdl.SpecificHeatFromDensityTemperature(rho, temp, helmAux)
	if err != nil {
		tst.Errorf("SpecificHeat failed: %v\n", err)
		return
	}
	chk.Float64(tst, "cv", 1e-10*cv, c, cv)
	b, err := mdl.BulkModulusFromDensityTemperature(rho, temp, helmAux)
	if err != nil {
		tst.Errorf("BulkModulus failed: %v\n", err)
		return
	}
	chk.Float64(tst, "bmod", 1e-10*bmod, b, bmod)
	g, err := mdl.GruneisenParamFromDensityTemperature(rho, temp, helmAux)
	if err != nil {
		tst.Errorf("GruneisenParam failed: %v\n", err)
		return
	}
	chk.Float64(tst, "gamma", 1e-10, g, gamma)
}

func Test_helm02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("helm02. temperature inversion round trips")

	mdl := newHelm(tst, true, true)

	for _, rho := range []float64{1e-3, 1.0, 1e3} {
		for _, temp := range []float64{1e5, 1e6, 1e7, 1e8} {
			sie, err := mdl.InternalEnergyFromDensityTemperature(rho, temp, helmAux)
			if err != nil {
				tst.Errorf("InternalEnergy failed: %v\n", err)
				return
			}
			tNew, err := mdl.TemperatureFromDensityInternalEnergy(rho, sie, helmAux)
			if err != nil {
				tst.Errorf("inversion failed: %v\n", err)
				return
			}
			chk.Float64(tst, "T round trip", 1e-10*temp, tNew, temp)
			eNew, err := mdl.InternalEnergyFromDensityTemperature(rho, tNew, helmAux)
			if err != nil {
				tst.Errorf("InternalEnergy failed: %v\n", err)
				return
			}
			chk.Float64(tst, "e round trip", 1e-10*sie, eNew, sie)

			// derived quantities along the inverted path match the direct path
			bDirect, err := mdl.BulkModulusFromDensityTemperature(rho, temp, helmAux)
			if err != nil {
				tst.Errorf("BulkModulus failed: %v\n", err)
				return
			}
			bInv, err := mdl.BulkModulusFromDensityInternalEnergy(rho, sie, helmAux)
			if err != nil {
				tst.Errorf("BulkModulus failed: %v\n", err)
				return
			}
			chk.Float64(tst, "B consistency", 1e-9*math.Abs(bDirect), bInv, bDirect)
		}
	}
}

func Test_helm03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("helm03. density inversion from (P,T)")

	mdl := newHelm(tst, true, false)

	rho, temp := 5.0, 1e6
	press, err := mdl.PressureFromDensityTemperature(rho, temp, helmAux)
	if err != nil {
		tst.Errorf("Pressure failed: %v\n", err)
		return
	}
	rhoNew, sieNew, err := mdl.DensityEnergyFromPressureTemperature(press, temp, helmAux)
	if err != nil {
		tst.Errorf("inversion failed: %v\n", err)
		return
	}
	chk.Float64(tst, "rho", 1e-8*rho, rhoNew, rho)
	sie, err := mdl.InternalEnergyFromDensityTemperature(rho, temp, helmAux)
	if err != nil {
		tst.Errorf("InternalEnergy failed: %v\n", err)
		return
	}
	chk.Float64(tst, "sie", 1e-8*math.Abs(sie), sieNew, sie)
}

func Test_helm04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("helm04. failure kinds")

	mdl := newHelm(tst, true, true)

	// out-of-domain density maps outside the table
	if _, err := mdl.PressureFromDensityTemperature(1e9, 1e6, helmAux); !errors.Is(err, errLookup) {
		tst.Errorf("error must wrap the service's out-of-range kind: %v\n", err)
		return
	}

	// non-positive inputs are domain violations
	if _, err := mdl.PressureFromDensityTemperature(-1.0, 1e6, helmAux); !errors.Is(err, ErrDomain) {
		tst.Errorf("error must wrap ErrDomain: %v\n", err)
		return
	}

	// the auxiliary vector is mandatory: two slots, positive values
	chk.IntAssert(mdl.Naux(), 2)
	if _, err := mdl.PressureFromDensityTemperature(2.0, 1e6, nil); err == nil {
		tst.Errorf("nil aux must fail\n")
		return
	}
	if _, err := mdl.PressureFromDensityTemperature(2.0, 1e6, []float64{-4, 2}); !errors.Is(err, ErrDomain) {
		tst.Errorf("error must wrap ErrDomain: %v\n", err)
		return
	}

	// an energy above the tabulated range cannot be bracketed
	if _, err := mdl.TemperatureFromDensityInternalEnergy(2.0, 1e40, helmAux); !errors.Is(err, ErrRootFind) {
		tst.Errorf("error must wrap ErrRootFind: %v\n", err)
		return
	}

	// entropy is not enabled
	if _, err := mdl.EntropyFromDensityTemperature(2.0, 1e6, helmAux); !errors.Is(err, ErrNotEnabled) {
		tst.Errorf("error must wrap ErrNotEnabled: %v\n", err)
	}
}

func Test_helm05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("helm05. fill and reference state")

	mdl := newHelm(tst, true, true)

	// (rho, sie) inputs: one solved T feeds every requested output
	rho, temp := 2.0, 1e6
	sie, err := mdl.InternalEnergyFromDensityTemperature(rho, temp, helmAux)
	if err != nil {
		tst.Errorf("InternalEnergy failed: %v\n", err)
		return
	}
	s := State{Rho: rho, Sie: sie, Press: -123, Cv: -123, Bmod: -123}
	if err := mdl.Fill(&s, Temperature|Pressure, helmAux); err != nil {
		tst.Errorf("Fill failed: %v\n", err)
		return
	}
	chk.Float64(tst, "temp", 1e-10*temp, s.Temp, temp)
	press, _ := mdl.PressureFromDensityTemperature(rho, temp, helmAux)
	chk.Float64(tst, "press", 1e-9*press, s.Press, press)
	chk.Float64(tst, "cv untouched", 1e-17, s.Cv, -123)
	chk.Float64(tst, "bmod untouched", 1e-17, s.Bmod, -123)

	// reference state sits at the log-mid of the domain and agrees with the
	// general relations
	r, err := mdl.ValuesAtReferenceState(helmAux)
	if err != nil {
		tst.Errorf("ValuesAtReferenceState failed: %v\n", err)
		return
	}
	bmod, err := mdl.BulkModulusFromDensityTemperature(r.Rho, r.Temp, helmAux)
	if err != nil {
		tst.Errorf("BulkModulus failed: %v\n", err)
		return
	}
	chk.Float64(tst, "bmod", 1e-10*bmod, r.Bmod, bmod)
	chk.Float64(tst, "dvdt (approx)", 1e-15, r.DVDT, r.DPDE*r.Cv/r.Bmod)

	if mdl.PreferredInput() != Density|Temperature {
		tst.Errorf("wrong preferred input: %v\n", mdl.PreferredInput())
	}
}
