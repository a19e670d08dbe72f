// Copyright 2016 The Goeos Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eos

import "github.com/cpmech/gosl/chk"

// Quantity is an unordered bit-set naming thermodynamic quantities. Models
// declare their native input pair with it and Fill callers compose it with
// bitwise OR to request output subsets.
type Quantity uint32

const (
	Density Quantity = 1 << iota
	SpecificInternalEnergy
	Pressure
	Temperature
	SpecificHeat
	BulkModulus
	DoAux
)

// None requests nothing
const None Quantity = 0

// AllValues requests every quantity Fill can compute
const AllValues = Pressure | Temperature | SpecificHeat | BulkModulus

// Has tells whether q is contained in the set
func (o Quantity) Has(q Quantity) bool {
	return o&q != 0
}

// names maps individual flags to identifiers used in input files
var names = []struct {
	flag Quantity
	name string
}{
	{Density, "density"},
	{SpecificInternalEnergy, "specific_internal_energy"},
	{Pressure, "pressure"},
	{Temperature, "temperature"},
	{SpecificHeat, "specific_heat"},
	{BulkModulus, "bulk_modulus"},
	{DoAux, "do_aux"},
}

// String returns the names of all flags in the set, joined with '|'
func (o Quantity) String() string {
	if o == None {
		return "none"
	}
	s := ""
	for _, e := range names {
		if o.Has(e.flag) {
			if s != "" {
				s += "|"
			}
			s += e.name
		}
	}
	return s
}

// ParseQuantity converts a quantity name to its flag
func ParseQuantity(name string) (Quantity, error) {
	for _, e := range names {
		if e.name == name {
			return e.flag, nil
		}
	}
	return None, chk.Err("quantity named %q is unknown", name)
}
