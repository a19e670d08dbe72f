// Copyright 2016 The Goeos Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package roots implements bracketed one-dimensional root finding
package roots

import "math"

// Status indicates the outcome of a root search
type Status int

const (

	// Success means a root was found within the configured tolerances
	Success Status = iota

	// FailBracket means no sign change could be found within the search range;
	// the target most likely lies outside the valid domain of the objective
	FailBracket

	// FailMaxIterations means the iteration budget was exhausted before convergence
	FailMaxIterations
)

// String returns a human readable status
func (o Status) String() string {
	switch o {
	case Success:
		return "success"
	case FailBracket:
		return "failure: no bracket"
	case FailMaxIterations:
		return "failure: maximum iterations reached"
	}
	return "unknown status"
}

// Stats holds diagnostics of one root search
type Stats struct {
	It   int // number of false-position iterations
	Nfev int // number of objective evaluations, bracket search included
}

// MaxIt is the iteration budget of one search
const MaxIt = 100

// bracket search settings
const (
	bracketGrow  = 1.6 // expansion factor per attempt
	bracketTries = 50  // maximum number of expansions
)

// RegulaFalsi solves f(x) = target for x within [lo, hi] using the
// false-position method with the Illinois anti-stagnation rule.
//  Input:
//   f      -- objective function, monotonic in practice over [lo, hi]
//   target -- value to match
//   guess  -- starting point for the bracket search
//   lo, hi -- limits of the search range
//   xtol   -- convergence tolerance on the bracket width
//   ytol   -- convergence tolerance on the residual |f(x) - target|
//  Output:
//   x      -- solution (last iterate unless status is FailBracket)
//   status -- Success, FailBracket or FailMaxIterations; never panics
//   stats  -- iteration and evaluation counts
// The bracket search is part of this engine: the interval is expanded
// outwards from guess until the residual changes sign, falling back to the
// full [lo, hi] range before giving up with FailBracket.
func RegulaFalsi(f func(float64) float64, target, guess, lo, hi, xtol, ytol float64) (x float64, status Status, stats Stats) {

	// residual
	g := func(x float64) float64 {
		stats.Nfev++
		return f(x) - target
	}

	// bracket the root
	a, b, ga, gb, found := bracket(g, guess, lo, hi)
	if !found {
		return guess, FailBracket, stats
	}
	if ga == 0 {
		return a, Success, stats
	}
	if gb == 0 {
		return b, Success, stats
	}

	// false-position iterations. side records which endpoint the previous
	// iteration retained so that a repeated one-sided replacement halves the
	// retained residual (Illinois rule)
	side := 0
	for stats.It = 1; stats.It <= MaxIt; stats.It++ {
		x = a - ga*(b-a)/(gb-ga)
		gx := g(x)
		if math.Abs(gx) <= ytol || b-a <= xtol {
			return x, Success, stats
		}
		if gx*ga < 0 { // root in [a, x]
			b, gb = x, gx
			if side == -1 {
				ga /= 2
			}
			side = -1
		} else { // root in [x, b]
			a, ga = x, gx
			if side == 1 {
				gb /= 2
			}
			side = 1
		}
	}
	return x, FailMaxIterations, stats
}

// bracket grows an interval around guess until the residual g changes sign.
// The returned interval satisfies lo ≤ a ≤ b ≤ hi and g(a)・g(b) ≤ 0 when
// found is true.
func bracket(g func(float64) float64, guess, lo, hi float64) (a, b, ga, gb float64, found bool) {
	if lo > hi {
		lo, hi = hi, lo
	}
	guess = math.Min(math.Max(guess, lo), hi)
	del := math.Max(math.Abs(guess)*0.01, (hi-lo)*1e-4)
	a, b = guess, guess
	ga = g(guess)
	gb = ga
	for i := 0; i < bracketTries; i++ {
		if ga*gb <= 0 {
			return a, b, ga, gb, true
		}
		if a > lo {
			a = math.Max(lo, a-del)
			ga = g(a)
		}
		if b < hi {
			b = math.Min(hi, b+del)
			gb = g(b)
		}
		if a == lo && b == hi {
			break
		}
		del *= bracketGrow
	}

	// last resort: the full range
	a, b = lo, hi
	ga, gb = g(a), g(b)
	if ga*gb <= 0 {
		return a, b, ga, gb, true
	}
	return a, b, ga, gb, false
}
