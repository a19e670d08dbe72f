// Copyright 2016 The Goeos Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eos

// Reference conditions and physical constants (CGS units)
const (
	RoomTemperature     = 293.0     // [K]
	AtmosphericPressure = 1.01325e6 // [dyne/cm²]

	KBoltzmann        = 1.380649e-16      // [erg/K]
	AtomicMassUnit    = 1.66053906660e-24 // [g]
	RadiationConstant = 7.565733e-15      // [erg/(cm³・K⁴)]
)
