// Copyright 2016 The Goeos Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// FromFunc builds a grid by sampling closed-form relations on log-spaced
// nodes. Useful for tests and for generating demonstration datasets.
//  Input:
//   rhomin, rhomax, nrho   -- density axis
//   tmin, tmax, ntemp      -- temperature axis
//   f                      -- relations evaluated at every node
func FromFunc(rhomin, rhomax float64, nrho int, tmin, tmax float64, ntemp int,
	f func(rho, temp float64) (sie, press, cv, bmod, gamma float64)) (*Grid, error) {

	rho := floats.LogSpan(make([]float64, nrho), rhomin, rhomax)
	temp := floats.LogSpan(make([]float64, ntemp), tmin, tmax)

	sie := mat.NewDense(nrho, ntemp, nil)
	press := mat.NewDense(nrho, ntemp, nil)
	cv := mat.NewDense(nrho, ntemp, nil)
	bmod := mat.NewDense(nrho, ntemp, nil)
	gamma := mat.NewDense(nrho, ntemp, nil)

	for i, r := range rho {
		for j, t := range temp {
			e, p, c, b, g := f(r, t)
			sie.Set(i, j, e)
			press.Set(i, j, p)
			cv.Set(i, j, c)
			bmod.Set(i, j, b)
			gamma.Set(i, j, g)
		}
	}
	return New(rho, temp, sie, press, cv, bmod, gamma)
}
