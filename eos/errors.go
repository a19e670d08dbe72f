// Copyright 2016 The Goeos Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eos

import (
	"errors"
	"fmt"
)

// The three failure kinds surfaced by model queries. Call sites discriminate
// with errors.Is; every error carries the model name and the offending inputs.
var (

	// ErrNotEnabled indicates a quantity that has no formulation in the
	// model, e.g. entropy for JWL. Queries return a sentinel value of 1
	// alongside this error for callers that tolerate degraded output.
	ErrNotEnabled = errors.New("quantity is not enabled for this model")

	// ErrDomain indicates an input outside a quantity's valid range:
	// non-positive density or temperature, or a query outside a table's
	// tabulated domain
	ErrDomain = errors.New("input is outside the valid domain")

	// ErrRootFind indicates that an inversion could not be bracketed or did
	// not converge within the iteration budget
	ErrRootFind = errors.New("root finding failed")
)

func notEnabled(model, quantity string) error {
	return fmt.Errorf("%s: %s: %w", model, quantity, ErrNotEnabled)
}

func checkRho(model string, rho float64) error {
	if !(rho > 0) {
		return fmt.Errorf("%s: density must be positive (rho=%g): %w", model, rho, ErrDomain)
	}
	return nil
}

func checkRhoTemp(model string, rho, temp float64) error {
	if err := checkRho(model, rho); err != nil {
		return err
	}
	if !(temp > 0) {
		return fmt.Errorf("%s: temperature must be positive (temp=%g): %w", model, temp, ErrDomain)
	}
	return nil
}
