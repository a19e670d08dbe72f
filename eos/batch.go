// Copyright 2016 The Goeos Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eos

import "fmt"

// FillMany applies Fill to every state in states, sharing one model and one
// auxiliary vector. It is a convenience for callers without their own batch
// driver; hot loops should call the scalar contract on a concrete model
// value instead. The first failing state aborts the sweep with its index.
func FillMany(m Model, states []State, output Quantity, aux []float64) error {
	for i := range states {
		if err := m.Fill(&states[i], output, aux); err != nil {
			return fmt.Errorf("state %d of %d: %w", i, len(states), err)
		}
	}
	return nil
}
