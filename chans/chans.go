// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package chans provides the conductance-based currents and synaptic
kernels of the mean-field population models, based on the standard
equivalent RC circuit (i.e., basic Ohms law equations).

Includes leak and potassium-leak channels, AMPA / GABA driving-force
currents scaled by the post-synaptic potentials, the second-order
synaptic response kernel, and the low-threshold T-type calcium channels
of thalamic relay and reticular cells.

All functions are closed-form and accept any floating point value:
non-finite inputs propagate to non-finite outputs without signaling.
*/
package chans

// Leak is a constant conductance channel with a fixed reversal potential
type Leak struct {
	G float64 `desc:"conductance, in mS/cm^2"`
	E float64 `desc:"reversal potential, in mV"`
}

// Set sets the conductance and reversal potential
func (lk *Leak) Set(g, e float64) {
	lk.G, lk.E = g, e
}

// I returns the current at membrane voltage v
func (lk *Leak) I(v float64) float64 {
	return Ohm(lk.G, v, lk.E)
}

// Ohm returns the driving-force current g * (v - erev)
func Ohm(g, v, erev float64) float64 {
	return g * (v - erev)
}
