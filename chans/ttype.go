// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chans

import "math"

// TParams are the parameters shared by the low-threshold T-type Ca
// channels: maximal conductance, Ca reversal and the temperature factor
// applied to the gating time constants.
type TParams struct {
	Gbar  float64 `def:"2.2,2" min:"0" desc:"maximal conductance, in mS/cm^2"`
	ECa   float64 `def:"120" desc:"calcium reversal potential, in mV"`
	Q10   float64 `def:"3" desc:"Q10 temperature coefficient of the gating kinetics"`
	DTemp float64 `def:"12" desc:"temperature difference, in degrees C, between simulation and recording temperature"`

	Phi float64 `view:"-" json:"-" xml:"-" desc:"kinetic speed-up: Q10^(DTemp/10)"`
}

func (tp *TParams) Defaults() {
	tp.Gbar = 2.2
	tp.ECa = 120
	tp.Q10 = 3
	tp.DTemp = 12
	tp.Update()
}

func (tp *TParams) Update() {
	tp.Phi = math.Pow(tp.Q10, tp.DTemp/10)
}

// I returns the T current for activation m and inactivation h at voltage v
func (tp *TParams) I(v, m, h float64) float64 {
	return tp.Gbar * m * m * h * (v - tp.ECa)
}

// Relax returns the derivative of a gating variable g relaxing toward
// steady state inf with time constant tau
func Relax(g, inf, tau float64) float64 {
	return (inf - g) / tau
}

//////////////////////////////////////////////////////////////////////////////////////
//  TRelay

// TRelay is the T-type Ca channel of thalamocortical relay (TC) cells,
// with the kinetics of Huguenard & McCormick (1992) and Destexhe et al (1996).
type TRelay struct {
	TParams
}

func (tc *TRelay) Defaults() {
	tc.TParams.Defaults()
	tc.Gbar = 2.2
}

// MInf is the steady state activation
func (tc *TRelay) MInf(v float64) float64 {
	return 1 / (1 + math.Exp(-(v+59)/6.2))
}

// TauM is the activation time constant in msec
func (tc *TRelay) TauM(v float64) float64 {
	return (1/(math.Exp(-(v+131.6)/16.7)+math.Exp((v+16.8)/18.2)) + 0.612) / tc.Phi
}

// HInf is the steady state inactivation
func (tc *TRelay) HInf(v float64) float64 {
	return 1 / (1 + math.Exp((v+81)/4))
}

// TauH is the inactivation time constant in msec
func (tc *TRelay) TauH(v float64) float64 {
	return (30.8 + (211.4+math.Exp((v+115.2)/5))/(1+math.Exp((v+86)/3.2))) / tc.Phi
}

//////////////////////////////////////////////////////////////////////////////////////
//  TReticular

// TReticular is the T-type Ca channel of thalamic reticular (RE) cells,
// with the kinetics of Huguenard & Prince (1992).
type TReticular struct {
	TParams
}

func (re *TReticular) Defaults() {
	re.TParams.Defaults()
	re.Gbar = 2
}

// MInf is the steady state activation
func (re *TReticular) MInf(v float64) float64 {
	return 1 / (1 + math.Exp(-(v+52)/7.4))
}

// TauM is the activation time constant in msec
func (re *TReticular) TauM(v float64) float64 {
	return (1 + 0.33/(math.Exp((v+27)/10)+math.Exp(-(v+102)/15))) / re.Phi
}

// HInf is the steady state inactivation
func (re *TReticular) HInf(v float64) float64 {
	return 1 / (1 + math.Exp((v+80)/5))
}

// TauH is the inactivation time constant in msec
func (re *TReticular) TauH(v float64) float64 {
	return (28.3 + 0.33/(math.Exp((v+48)/4)+math.Exp(-(v+407)/50))) / re.Phi
}
