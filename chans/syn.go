// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chans

// SynParams are the synaptic constants shared by the cortical and
// thalamic modules: reversal potentials of the two synapse types,
// their post-synaptic response rise rates, and the rate of the axonal
// flux filter.
type SynParams struct {
	EAMPA  float64 `def:"0" desc:"reversal potential of excitatory (AMPA) synapses, in mV"`
	EGABA  float64 `def:"-70" desc:"reversal potential of inhibitory (GABA) synapses, in mV"`
	GammaE float64 `def:"70e-3" min:"0" desc:"rise rate of excitatory post-synaptic potentials, in 1/msec"`
	GammaI float64 `def:"58.6e-3" min:"0" desc:"rise rate of inhibitory post-synaptic potentials, in 1/msec"`
	Nu     float64 `def:"60e-3" min:"0" desc:"rate of the axonal flux low-pass filter, in 1/msec"`
}

func (sp *SynParams) Defaults() {
	sp.EAMPA = 0
	sp.EGABA = -70
	sp.GammaE = 70e-3
	sp.GammaI = 58.6e-3
	sp.Nu = 60e-3
}

func (sp *SynParams) Update() {
}

// Exc returns the excitatory synaptic current for post-synaptic potential phi
// at membrane voltage v
func (sp *SynParams) Exc(phi, v float64) float64 {
	return phi * (v - sp.EAMPA)
}

// Inh returns the inhibitory synaptic current for post-synaptic potential phi
// at membrane voltage v
func (sp *SynParams) Inh(phi, v float64) float64 {
	return phi * (v - sp.EGABA)
}

// Kernel returns the derivative of the rate-of-change variable x of a
// critically damped second-order filter with rate gamma:
//
//	Phi' = x
//	x'   = gamma^2 (drive - Phi) - 2 gamma x
//
// The same form is used for post-synaptic potentials (gamma = GammaE or
// GammaI, drive = weighted incoming flux) and the axonal flux itself
// (gamma = Nu, drive = firing rate).
func Kernel(gamma, drive, phi, x float64) float64 {
	return gamma*gamma*(drive-phi) - 2*gamma*x
}
