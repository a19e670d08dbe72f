// Copyright 2016 The Goeos Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package table implements interpolation services over precomputed (ρ,T)
// grids of thermodynamic quantities
package table

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/mat"

	"github.com/cpmech/goeos/eos"
)

// ErrOutOfRange indicates a query outside the tabulated domain. Boundary
// values are never clamped; callers decide whether to retry elsewhere.
var ErrOutOfRange = errors.New("query is outside the tabulated domain")

// Grid interpolates {e, P, cv, B, Γ} bilinearly over a rectilinear (ρ,T)
// grid. The axes are handled in log10 space, matching the logarithmic node
// spacing of stellar-matter datasets; the values themselves are interpolated
// linearly. Grid implements eos.Lookup. A Grid is immutable after
// construction and safe for concurrent use.
type Grid struct {
	lrho  []float64 // log10 of density nodes (strictly increasing)
	ltemp []float64 // log10 of temperature nodes (strictly increasing)

	// nodal values, one row per density node, one column per temperature node
	sie, press, cv, bmod, gamma *mat.Dense
}

// New creates a grid from nodes and nodal value matrices. Each matrix must
// be len(rho) by len(temp); both node slices must be strictly increasing
// and positive.
func New(rho, temp []float64, sie, press, cv, bmod, gamma *mat.Dense) (*Grid, error) {
	if len(rho) < 2 || len(temp) < 2 {
		return nil, chk.Err("table: at least two nodes are required per axis (nrho=%d, ntemp=%d)", len(rho), len(temp))
	}
	o := &Grid{
		lrho:  logNodes(rho),
		ltemp: logNodes(temp),
		sie:   sie,
		press: press,
		cv:    cv,
		bmod:  bmod,
		gamma: gamma,
	}
	if o.lrho == nil || o.ltemp == nil {
		return nil, chk.Err("table: nodes must be positive and strictly increasing")
	}
	for _, m := range []*mat.Dense{sie, press, cv, bmod, gamma} {
		if m == nil {
			return nil, chk.Err("table: all five value matrices are required")
		}
		r, c := m.Dims()
		if r != len(rho) || c != len(temp) {
			return nil, chk.Err("table: value matrix is %dx%d but the grid is %dx%d", r, c, len(rho), len(temp))
		}
	}
	return o, nil
}

// logNodes converts nodes to log10, or returns nil if they are not positive
// and strictly increasing
func logNodes(x []float64) []float64 {
	l := make([]float64, len(x))
	for i, v := range x {
		if !(v > 0) {
			return nil
		}
		l[i] = math.Log10(v)
		if i > 0 && l[i] <= l[i-1] {
			return nil
		}
	}
	return l
}

// Inside tells whether (ρ,T) is within the tabulated domain (boundaries
// included)
func (o *Grid) Inside(rho, temp float64) bool {
	if !(rho > 0) || !(temp > 0) {
		return false
	}
	lr, lt := math.Log10(rho), math.Log10(temp)
	return lr >= o.lrho[0] && lr <= o.lrho[len(o.lrho)-1] &&
		lt >= o.ltemp[0] && lt <= o.ltemp[len(o.ltemp)-1]
}

// RhoRange returns the tabulated density limits
func (o *Grid) RhoRange() (lo, hi float64) {
	return math.Pow(10, o.lrho[0]), math.Pow(10, o.lrho[len(o.lrho)-1])
}

// TempRange returns the tabulated temperature limits
func (o *Grid) TempRange() (lo, hi float64) {
	return math.Pow(10, o.ltemp[0]), math.Pow(10, o.ltemp[len(o.ltemp)-1])
}

// At interpolates all quantities at (ρ,T)
func (o *Grid) At(rho, temp float64) (eos.Point, error) {
	if !o.Inside(rho, temp) {
		return eos.Point{}, fmt.Errorf("rho=%g temp=%g: %w", rho, temp, ErrOutOfRange)
	}
	i, wr := cell(o.lrho, math.Log10(rho))
	j, wt := cell(o.ltemp, math.Log10(temp))
	return eos.Point{
		Sie:   bilinear(o.sie, i, j, wr, wt),
		Press: bilinear(o.press, i, j, wr, wt),
		Cv:    bilinear(o.cv, i, j, wr, wt),
		Bmod:  bilinear(o.bmod, i, j, wr, wt),
		Gamma: bilinear(o.gamma, i, j, wr, wt),
	}, nil
}

// cell finds the interval index i with nodes[i] ≤ x ≤ nodes[i+1] and the
// local coordinate w ∈ [0,1]
func cell(nodes []float64, x float64) (i int, w float64) {
	i = sort.SearchFloat64s(nodes, x) - 1
	if i < 0 {
		i = 0
	}
	if i > len(nodes)-2 {
		i = len(nodes) - 2
	}
	w = (x - nodes[i]) / (nodes[i+1] - nodes[i])
	return
}

// bilinear interpolates one value matrix within cell (i,j)
func bilinear(m *mat.Dense, i, j int, wr, wt float64) float64 {
	return (1-wr)*(1-wt)*m.At(i, j) +
		wr*(1-wt)*m.At(i+1, j) +
		(1-wr)*wt*m.At(i, j+1) +
		wr*wt*m.At(i+1, j+1)
}
