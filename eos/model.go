// Copyright 2016 The Goeos Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package eos implements equation-of-state models relating density,
// temperature, internal energy, pressure and derived quantities for a
// material. Closed-form models (JWL) compute their relations directly;
// tabulated models (Helmholtz) interpolate a precomputed grid and invert it
// with the roots engine when the caller's parameterization is not the native
// one. Models are logically immutable after initialisation: all queries are
// pure functions of (parameters, inputs), safe for concurrent use, and a
// model value may be copied freely, e.g. once per execution device.
package eos

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Model defines the capability contract every equation of state satisfies.
// Each query takes density plus one thermal variable and the auxiliary
// parameter vector aux (composition data such as abar/zbar; nil is valid
// only when Naux returns 0). Quantities without a formulation in a model
// return a sentinel value of 1 together with ErrNotEnabled.
//
// The interface exists for boundary-time selection (material databases,
// input parsing). Hot per-cell loops should hold the concrete model value
// so that calls stay monomorphic.
type Model interface {

	// static properties
	PreferredInput() Quantity // the model's native input pair
	Naux() int                // number of auxiliary scalar slots required

	// queries in the (ρ, T) parameterization
	InternalEnergyFromDensityTemperature(rho, temp float64, aux []float64) (float64, error)
	PressureFromDensityTemperature(rho, temp float64, aux []float64) (float64, error)
	EntropyFromDensityTemperature(rho, temp float64, aux []float64) (float64, error)
	SpecificHeatFromDensityTemperature(rho, temp float64, aux []float64) (float64, error)
	BulkModulusFromDensityTemperature(rho, temp float64, aux []float64) (float64, error)
	GruneisenParamFromDensityTemperature(rho, temp float64, aux []float64) (float64, error)

	// queries in the (ρ, e) parameterization
	TemperatureFromDensityInternalEnergy(rho, sie float64, aux []float64) (float64, error)
	PressureFromDensityInternalEnergy(rho, sie float64, aux []float64) (float64, error)
	EntropyFromDensityInternalEnergy(rho, sie float64, aux []float64) (float64, error)
	SpecificHeatFromDensityInternalEnergy(rho, sie float64, aux []float64) (float64, error)
	BulkModulusFromDensityInternalEnergy(rho, sie float64, aux []float64) (float64, error)
	GruneisenParamFromDensityInternalEnergy(rho, sie float64, aux []float64) (float64, error)

	// inversion to the (P, T) parameterization
	DensityEnergyFromPressureTemperature(press, temp float64, aux []float64) (rho, sie float64, err error)

	// Fill computes the quantities requested in output from the inputs
	// present in s, writing only the requested fields
	Fill(s *State, output Quantity, aux []float64) error

	// ValuesAtReferenceState computes the reference tuple through the
	// model's general relations
	ValuesAtReferenceState(aux []float64) (*RefState, error)

	// scratch sizing for external batch-execution collaborators (advisory)
	ScratchSize(method string, nelements int) int
	MaxScratchSize(nelements int) int

	// String renders the model parameters (informational only)
	String() string
}

// ParamModel is a Model fully described by a set of numeric parameters.
// Tabulated models are not ParamModels: they are constructed explicitly
// from a loaded dataset.
type ParamModel interface {
	Model
	Init(prms dbf.Params) error      // initialises model with parameters
	GetPrms(example bool) dbf.Params // gets (an example of) parameters
}

// New returns a new EOS model
func New(name string) (model ParamModel, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'eos' database", name)
	}
	return allocator(), nil
}

// allocators holds all available parameter-closed models
var allocators = map[string]func() ParamModel{}
