// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package sigmoid provides the population firing-rate function of the
mean-field models: a logistic mapping from mean membrane voltage to mean
firing rate,

	Q(V) = Qmax / (1 + exp(-C1 (V - Theta) / Sigma))

where Theta is the firing threshold, Sigma the standard deviation of the
firing thresholds across the population, and C1 = pi / sqrt(3) rescales
Sigma so that the logistic matches a normal distribution of thresholds
with the same variance.
*/
package sigmoid

import "math"

// Params are the sigmoid firing rate parameters of one population
type Params struct {
	Qmax  float64 `def:"30e-3,60e-3,400e-3" min:"0" desc:"maximum firing rate, in 1/msec"`
	Theta float64 `def:"-58.5,-45" desc:"firing threshold, in mV"`
	Sigma float64 `def:"4,6,9" min:"0" desc:"firing threshold spread (gain), in mV"`

	C1    float64 `view:"-" json:"-" xml:"-" desc:"scaling of Sigma to match a normal distribution: pi / sqrt(3)"`
	Slope float64 `view:"-" json:"-" xml:"-" desc:"C1 / Sigma"`
}

// Set sets the three population-specific parameters and updates
func (sp *Params) Set(qmax, theta, sigma float64) {
	sp.Qmax, sp.Theta, sp.Sigma = qmax, theta, sigma
	sp.Update()
}

func (sp *Params) Update() {
	sp.C1 = math.Pi / math.Sqrt(3)
	sp.Slope = sp.C1 / sp.Sigma
}

// Defaults are the cortical excitatory population values
func (sp *Params) Defaults() {
	sp.Set(30e-3, -58.5, 4)
}

// Q returns the firing rate in 1/msec for membrane voltage v in mV
func (sp *Params) Q(v float64) float64 {
	return sp.Qmax / (1 + math.Exp(-sp.Slope*(v-sp.Theta)))
}

// DQ returns the derivative of Q with respect to v
func (sp *Params) DQ(v float64) float64 {
	q := sp.Q(v)
	return sp.Slope * q * (1 - q/sp.Qmax)
}
