// Copyright (c) 2020, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package glong provides the slow (long time-scale) currents of the
mean-field modules: the sodium-dependent potassium current with its
Na/K pump in cortex, and the calcium-regulated h current with the
calcium concentration dynamics in thalamic relay cells.
*/
package glong

import "math"

// KNaParams control the sodium-dependent potassium current of the cortical
// excitatory population, with intracellular Na driven by firing and cleared
// by the Na/K pump.  Based on Benda et al (2005) and Compte et al (2003).
type KNaParams struct {
	Gbar    float64 `def:"1.33" min:"0" desc:"maximal KNa conductance, in mS/cm^2"`
	EK      float64 `def:"-100" desc:"potassium reversal potential, in mV"`
	AlphaNa float64 `def:"2" desc:"sodium influx per spike, in mM msec"`
	TauNa   float64 `def:"1" min:"0" desc:"sodium time constant, in msec"`
	Rpump   float64 `def:"0.09" min:"0" desc:"Na/K pump constant, in mM/msec"`
	NaEq    float64 `def:"9.5" min:"0" desc:"equilibrium sodium concentration, in mM"`

	PumpEq float64 `view:"-" json:"-" xml:"-" desc:"pump saturation at NaEq: NaEq^3 / (NaEq^3 + 15^3)"`
}

// pumpK3 is the cube of the half-activation concentration of the pump (15 mM)
const pumpK3 = 3375

func (kp *KNaParams) Defaults() {
	kp.Gbar = 1.33
	kp.EK = -100
	kp.AlphaNa = 2
	kp.TauNa = 1
	kp.Rpump = 0.09
	kp.NaEq = 9.5
	kp.Update()
}

func (kp *KNaParams) Update() {
	kp.PumpEq = pumpSat(kp.NaEq)
}

func pumpSat(na float64) float64 {
	na3 := na * na * na
	return na3 / (na3 + pumpK3)
}

// W returns the Na dependent activation of the KNa channel
func (kp *KNaParams) W(na float64) float64 {
	return 0.37 / (1 + math.Pow(38.7/na, 3.5))
}

// I returns the KNa current at voltage v and Na concentration na
func (kp *KNaParams) I(v, na float64) float64 {
	return kp.Gbar * kp.W(na) * (v - kp.EK)
}

// Pump returns the net Na extrusion by the Na/K pump, relative to equilibrium
func (kp *KNaParams) Pump(na float64) float64 {
	return kp.Rpump * (pumpSat(na) - kp.PumpEq)
}

// DNa returns the derivative of the Na concentration given firing rate q
func (kp *KNaParams) DNa(q, na float64) float64 {
	return (kp.AlphaNa*q - kp.Pump(na)) / kp.TauNa
}

// NaSS returns the steady state Na concentration at constant firing rate q,
// where influx balances the pump.  Returns +Inf if the pump saturates
// before it can clear the influx.
func (kp *KNaParams) NaSS(q float64) float64 {
	r := kp.PumpEq + kp.AlphaNa*q/kp.Rpump
	if r >= 1 {
		return math.Inf(1)
	}
	if r <= 0 {
		return 0
	}
	return math.Cbrt(pumpK3 * r / (1 - r))
}
