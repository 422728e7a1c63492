// Copyright (c) 2020, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glong

import "math"

// HParams control the hyperpolarization-activated h current of thalamic
// relay cells, including its upregulation by intracellular calcium
// through a Ca-binding protein, based on Destexhe et al (1996).
// Channels are closed, open (M), or open and locked by the bound protein (M2).
// P is the fraction of protein bound with calcium.
type HParams struct {
	Gbar float64 `def:"0.07" min:"0" desc:"maximal h conductance, in mS/cm^2"`
	Eh   float64 `def:"-40" desc:"h current reversal potential, in mV"`
	Ginc float64 `def:"2" desc:"conductance of the locked open state relative to the open state"`
	K1   float64 `def:"2.5e7" desc:"Ca binding rate of the regulating protein"`
	K2   float64 `def:"5e-4" desc:"Ca unbinding rate of the regulating protein, in 1/msec"`
	K3   float64 `def:"0.1" desc:"locking rate of open channels by bound protein, in 1/msec"`
	K4   float64 `def:"1e-3" desc:"unlocking rate, in 1/msec"`
	NP   float64 `def:"4" desc:"number of Ca ions binding to the protein"`
}

func (hp *HParams) Defaults() {
	hp.Gbar = 0.07
	hp.Eh = -40
	hp.Ginc = 2
	hp.K1 = 2.5e7
	hp.K2 = 5e-4
	hp.K3 = 0.1
	hp.K4 = 1e-3
	hp.NP = 4
}

func (hp *HParams) Update() {
}

// MInf is the steady state activation
func (hp *HParams) MInf(v float64) float64 {
	return 1 / (1 + math.Exp((v+75)/5.5))
}

// TauM is the activation time constant, in msec
func (hp *HParams) TauM(v float64) float64 {
	return 20 + 1000/(math.Exp((v+71.5)/14.2)+math.Exp(-(v+89)/11.6))
}

// I returns the h current at voltage v with open fraction m and locked fraction m2
func (hp *HParams) I(v, m, m2 float64) float64 {
	return hp.Gbar * (m + hp.Ginc*m2) * (v - hp.Eh)
}

// DM returns the derivative of the open fraction
func (hp *HParams) DM(v, m, m2, p float64) float64 {
	return (hp.MInf(v)*(1-m2)-m)/hp.TauM(v) - hp.K3*p*m + hp.K4*m2
}

// DM2 returns the derivative of the locked open fraction
func (hp *HParams) DM2(m, m2, p float64) float64 {
	return hp.K3*p*m - hp.K4*m2
}

// DP returns the derivative of the bound protein fraction at calcium ca
func (hp *HParams) DP(ca, p float64) float64 {
	return hp.K1*math.Pow(ca, hp.NP)*(1-p) - hp.K2*p
}

// SS returns the steady state open, locked and bound fractions at
// voltage v and calcium ca
func (hp *HParams) SS(v, ca float64) (m, m2, p float64) {
	kc := hp.K1 * math.Pow(ca, hp.NP)
	p = kc / (kc + hp.K2)
	mi := hp.MInf(v)
	m = mi / (1 + mi*hp.K3*p/hp.K4)
	m2 = hp.K3 * p * m / hp.K4
	return
}
