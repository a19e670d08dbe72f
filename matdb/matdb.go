// Copyright 2016 The Goeos Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package matdb implements a database of materials mapping names to
// equation-of-state models
package matdb

import (
	"encoding/json"

	"os"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"

	"github.com/cpmech/goeos/eos"
	"github.com/cpmech/goeos/table"
)

// Material holds material data
type Material struct {

	// input
	Name string     `json:"name"` // name of material
	Kind string     `json:"kind"` // model kind; e.g. "jwl", "helmholtz"
	Prms dbf.Params `json:"prms"` // model parameters (parameter-closed kinds)

	// input: tabulated kinds only
	Table     string `json:"table"`     // path to precomputed dataset
	IonGas    bool   `json:"iongas"`    // enable the ideal-ion-gas contribution
	Radiation bool   `json:"radiation"` // enable the radiation contribution

	// derived
	Model eos.Model `json:"-"` // allocated model
}

// Db implements a database of materials
type Db struct {

	// input
	Materials []*Material `json:"materials"` // all materials

	// derived
	byName map[string]*Material
}

// Read reads a material database from a JSON file and allocates the model
// of every material
func Read(path string) (db *Db, err error) {

	// read file
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	// decode
	db = new(Db)
	if err = json.Unmarshal(b, db); err != nil {
		return nil, chk.Err("matdb: %s: cannot decode database: %v", path, err)
	}

	// allocate models
	db.byName = make(map[string]*Material)
	for _, m := range db.Materials {
		if m.Name == "" {
			return nil, chk.Err("matdb: %s: material without a name", path)
		}
		if _, ok := db.byName[m.Name]; ok {
			return nil, chk.Err("matdb: %s: material %q is listed twice", path, m.Name)
		}
		if m.Model, err = allocate(m); err != nil {
			return nil, chk.Err("matdb: %s: material %q: %v", path, m.Name, err)
		}
		db.byName[m.Name] = m
	}
	return db, nil
}

// allocate builds the model of one material
func allocate(m *Material) (eos.Model, error) {
	switch m.Kind {
	case "helmholtz":
		if m.Table == "" {
			return nil, chk.Err("tabulated kind %q needs a 'table' path", m.Kind)
		}
		grid, err := table.Load(m.Table)
		if err != nil {
			return nil, err
		}
		return eos.NewHelmholtz(grid, m.IonGas, m.Radiation)
	default:
		model, err := eos.New(m.Kind)
		if err != nil {
			return nil, err
		}
		if err = model.Init(m.Prms); err != nil {
			return nil, err
		}
		return model, nil
	}
}

// Get returns the material named name
func (o *Db) Get(name string) (*Material, error) {
	m, ok := o.byName[name]
	if !ok {
		return nil, chk.Err("matdb: material %q is not in the database", name)
	}
	return m, nil
}

// Model returns the model of the material named name
func (o *Db) Model(name string) (eos.Model, error) {
	m, err := o.Get(name)
	if err != nil {
		return nil, err
	}
	return m.Model, nil
}
