// Copyright 2016 The Goeos Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"bytes"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"gonum.org/v1/gonum/mat"
)

// Load reads a grid from a plain-text dataset. The format is a stream of
// numbers separated by whitespace, with '#' starting a comment that runs to
// the end of the line:
//   nrho ntemp
//   rho nodes   (nrho values)
//   temp nodes  (ntemp values)
//   sie press cv bmod gamma   (one node per line, temperature varying fastest)
// Ingestion of binary formats (e.g. HDF5) belongs to external tooling that
// converts to this format first.
func Load(path string) (*Grid, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	toks := tokens(string(b))
	pos := 0
	next := func() (float64, error) {
		if pos >= len(toks) {
			return 0, chk.Err("table: %s: dataset ends prematurely (token %d)", path, pos)
		}
		v, err := strconv.ParseFloat(toks[pos], 64)
		if err != nil {
			return 0, chk.Err("table: %s: cannot parse %q as a number (token %d)", path, toks[pos], pos)
		}
		pos++
		return v, nil
	}

	nrhoF, err := next()
	if err != nil {
		return nil, err
	}
	ntempF, err := next()
	if err != nil {
		return nil, err
	}
	nrho, ntemp := int(nrhoF), int(ntempF)
	if nrho < 2 || ntemp < 2 {
		return nil, chk.Err("table: %s: invalid grid size %dx%d", path, nrho, ntemp)
	}

	readSlice := func(n int) ([]float64, error) {
		s := make([]float64, n)
		for i := range s {
			if s[i], err = next(); err != nil {
				return nil, err
			}
		}
		return s, nil
	}
	rho, err := readSlice(nrho)
	if err != nil {
		return nil, err
	}
	temp, err := readSlice(ntemp)
	if err != nil {
		return nil, err
	}

	sie := mat.NewDense(nrho, ntemp, nil)
	press := mat.NewDense(nrho, ntemp, nil)
	cv := mat.NewDense(nrho, ntemp, nil)
	bmod := mat.NewDense(nrho, ntemp, nil)
	gamma := mat.NewDense(nrho, ntemp, nil)
	for i := 0; i < nrho; i++ {
		for j := 0; j < ntemp; j++ {
			for _, m := range []*mat.Dense{sie, press, cv, bmod, gamma} {
				v, err := next()
				if err != nil {
					return nil, err
				}
				m.Set(i, j, v)
			}
		}
	}
	if pos != len(toks) {
		return nil, chk.Err("table: %s: %d trailing tokens after the value block", path, len(toks)-pos)
	}
	return New(rho, temp, sie, press, cv, bmod, gamma)
}

// Save writes the grid in the format read by Load
func (o *Grid) Save(path string) error {
	nrho, ntemp := len(o.lrho), len(o.ltemp)
	var buf bytes.Buffer
	io.Ff(&buf, "# goeos table\n%d %d\n", nrho, ntemp)
	for i := 0; i < nrho; i++ {
		io.Ff(&buf, "%23.15e", math.Pow(10, o.lrho[i]))
	}
	io.Ff(&buf, "\n")
	for j := 0; j < ntemp; j++ {
		io.Ff(&buf, "%23.15e", math.Pow(10, o.ltemp[j]))
	}
	io.Ff(&buf, "\n")
	for i := 0; i < nrho; i++ {
		for j := 0; j < ntemp; j++ {
			io.Ff(&buf, "%23.15e %23.15e %23.15e %23.15e %23.15e\n",
				o.sie.At(i, j), o.press.At(i, j), o.cv.At(i, j), o.bmod.At(i, j), o.gamma.At(i, j))
		}
	}
	io.WriteFile(path, &buf)
	return nil
}

// tokens splits the dataset into number tokens, dropping comments
func tokens(s string) (toks []string) {
	for _, line := range strings.Split(s, "\n") {
		if k := strings.IndexByte(line, '#'); k >= 0 {
			line = line[:k]
		}
		toks = append(toks, strings.Fields(line)...)
	}
	return
}
