// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package thalcort

import (
	"math"

	"github.com/emer/thalcort/chans"
	"github.com/emer/thalcort/glong"
	"github.com/emer/thalcort/noise"
	"github.com/emer/thalcort/sigmoid"
)

///////////////////////////////////////////////////////////////////////
//  CortexParams

// CortexCons are the connectivity constants of the cortical module:
// the mean number of synapses of each projection onto a cell.
type CortexCons struct {
	Nee float64 `def:"120" min:"0" desc:"excitatory onto excitatory"`
	Nei float64 `def:"72" min:"0" desc:"excitatory onto inhibitory"`
	Nie float64 `def:"90" min:"0" desc:"inhibitory onto excitatory"`
	Nii float64 `def:"90" min:"0" desc:"inhibitory onto inhibitory"`
	Nte float64 `def:"10" min:"0" desc:"thalamic relay onto excitatory"`
	Nti float64 `def:"10" min:"0" desc:"thalamic relay onto inhibitory"`
}

func (cc *CortexCons) Defaults() {
	cc.Nee = 120
	cc.Nei = 72
	cc.Nie = 90
	cc.Nii = 90
	cc.Nte = 10
	cc.Nti = 10
}

// CortexParams are all the parameters of the cortical module
type CortexParams struct {
	TauE  float64         `def:"30" min:"0" desc:"membrane time constant of the excitatory population, in msec"`
	TauI  float64         `def:"30" min:"0" desc:"membrane time constant of the inhibitory population, in msec"`
	E     sigmoid.Params  `view:"inline" desc:"firing rate function of the excitatory population"`
	I     sigmoid.Params  `view:"inline" desc:"firing rate function of the inhibitory population"`
	LeakE chans.Leak      `view:"inline" desc:"leak channel of the excitatory population: G = 1, E = -66"`
	LeakI chans.Leak      `view:"inline" desc:"leak channel of the inhibitory population: G = 1, E = -64"`
	KNa   glong.KNaParams `view:"inline" desc:"sodium-dependent potassium current and Na/K pump"`
	Con   CortexCons      `view:"inline" desc:"connectivity constants"`
	Noise noise.Params    `view:"inline" desc:"noise driving the excitatory axonal flux -- Seed is set by the Network"`
}

func (cp *CortexParams) Defaults() {
	cp.TauE = 30
	cp.TauI = 30
	cp.E.Set(30e-3, -58.5, 4)
	cp.I.Set(60e-3, -58.5, 6)
	cp.LeakE.Set(1, -66)
	cp.LeakI.Set(1, -64)
	cp.KNa.Defaults()
	cp.Con.Defaults()
	cp.Noise.Defaults()
	cp.Noise.Sigma = 30e-3
	cp.Update()
}

func (cp *CortexParams) Update() {
	cp.E.Update()
	cp.I.Update()
	cp.KNa.Update()
}

// Validate returns an error wrapping ErrInvalidParams for a
// parameter that would make the module ill-defined
func (cp *CortexParams) Validate() error {
	vc := &paramCheck{mod: "cortex"}
	vc.positive("TauE", cp.TauE)
	vc.positive("TauI", cp.TauI)
	vc.positive("E.Qmax", cp.E.Qmax)
	vc.positive("E.Sigma", cp.E.Sigma)
	vc.positive("I.Qmax", cp.I.Qmax)
	vc.positive("I.Sigma", cp.I.Sigma)
	vc.positive("KNa.TauNa", cp.KNa.TauNa)
	vc.positive("KNa.Rpump", cp.KNa.Rpump)
	vc.positive("KNa.NaEq", cp.KNa.NaEq)
	vc.nonNegative("KNa.Gbar", cp.KNa.Gbar)
	vc.nonNegative("KNa.AlphaNa", cp.KNa.AlphaNa)
	vc.nonNegative("LeakE.G", cp.LeakE.G)
	vc.nonNegative("LeakI.G", cp.LeakI.G)
	vc.nonNegative("Con.Nee", cp.Con.Nee)
	vc.nonNegative("Con.Nei", cp.Con.Nei)
	vc.nonNegative("Con.Nie", cp.Con.Nie)
	vc.nonNegative("Con.Nii", cp.Con.Nii)
	vc.nonNegative("Con.Nte", cp.Con.Nte)
	vc.nonNegative("Con.Nti", cp.Con.Nti)
	vc.nonNegative("Noise.Sigma", cp.Noise.Sigma)
	vc.finite("E.Theta", cp.E.Theta)
	vc.finite("I.Theta", cp.I.Theta)
	vc.finite("LeakE.E", cp.LeakE.E)
	vc.finite("LeakI.E", cp.LeakI.E)
	vc.finite("KNa.EK", cp.KNa.EK)
	return vc.err
}

// CortexParamsFromArrays returns default cortical parameters with the
// positional overrides of the classic command-line interface applied:
//
//	par[0] TauE, par[1] E.Theta, par[2] E.Sigma, par[3] KNa.AlphaNa,
//	par[4] KNa.TauNa, par[5] KNa.Gbar, par[6] Noise.Sigma
//	con[2] Con.Nte, con[3] Con.Nti
//
// Short arrays are an error rather than undefined behavior.
func CortexParamsFromArrays(par, con []float64) (CortexParams, error) {
	cp := CortexParams{}
	cp.Defaults()
	if len(par) < 7 {
		return cp, invalidf("cortex Par needs 7 values, got %d", len(par))
	}
	if len(con) < 4 {
		return cp, invalidf("cortex Con needs 4 values, got %d", len(con))
	}
	cp.TauE = par[0]
	cp.E.Theta = par[1]
	cp.E.Sigma = par[2]
	cp.KNa.AlphaNa = par[3]
	cp.KNa.TauNa = par[4]
	cp.KNa.Gbar = par[5]
	cp.Noise.Sigma = par[6]
	cp.Con.Nte = con[2]
	cp.Con.Nti = con[3]
	cp.Update()
	return cp, cp.Validate()
}

///////////////////////////////////////////////////////////////////////
//  ThalamusParams

// ThalamusCons are the connectivity constants of the thalamic module
type ThalamusCons struct {
	Ntt float64 `def:"0" min:"0" desc:"relay onto relay -- no such synapses exist in the standard model"`
	Ntr float64 `def:"2" min:"0" desc:"relay onto reticular"`
	Nrt float64 `def:"5.5" min:"0" desc:"reticular onto relay"`
	Nrr float64 `def:"5" min:"0" desc:"reticular onto reticular"`
	Net float64 `def:"10" min:"0" desc:"cortical excitatory onto relay"`
	Ner float64 `def:"10" min:"0" desc:"cortical excitatory onto reticular"`
}

func (tc *ThalamusCons) Defaults() {
	tc.Ntt = 0
	tc.Ntr = 2
	tc.Nrt = 5.5
	tc.Nrr = 5
	tc.Net = 10
	tc.Ner = 10
}

// ThalamusParams are all the parameters of the thalamic module
type ThalamusParams struct {
	TauT   float64          `def:"30" min:"0" desc:"membrane time constant of the relay population, in msec"`
	TauR   float64          `def:"30" min:"0" desc:"membrane time constant of the reticular population, in msec"`
	TC     sigmoid.Params   `view:"inline" desc:"firing rate function of the relay population"`
	RE     sigmoid.Params   `view:"inline" desc:"firing rate function of the reticular population"`
	LeakT  chans.Leak       `view:"inline" desc:"leak channel of relay cells: G = 0.02, E = -70"`
	LeakR  chans.Leak       `view:"inline" desc:"leak channel of reticular cells: G = 0.05, E = -55"`
	KLeakT chans.Leak       `view:"inline" desc:"potassium leak channel of relay cells: G = 0.02, E = -100"`
	KLeakR chans.Leak       `view:"inline" desc:"potassium leak channel of reticular cells: G = 0.01, E = -100"`
	TT     chans.TRelay     `view:"inline" desc:"T-type calcium channel of relay cells"`
	TR     chans.TReticular `view:"inline" desc:"T-type calcium channel of reticular cells"`
	H      glong.HParams    `view:"inline" desc:"h current of relay cells"`
	Ca     glong.CaParams   `view:"inline" desc:"calcium concentration of relay cells"`
	Con    ThalamusCons     `view:"inline" desc:"connectivity constants"`
	Noise  noise.Params     `view:"inline" desc:"noise driving the relay axonal flux -- Seed is set by the Network"`
}

func (tp *ThalamusParams) Defaults() {
	tp.TauT = 30
	tp.TauR = 30
	tp.TC.Set(400e-3, -45, 9)
	tp.RE.Set(400e-3, -45, 9)
	tp.LeakT.Set(0.02, -70)
	tp.LeakR.Set(0.05, -55)
	tp.KLeakT.Set(0.02, -100)
	tp.KLeakR.Set(0.01, -100)
	tp.TT.Defaults()
	tp.TR.Defaults()
	tp.H.Defaults()
	tp.Ca.Defaults()
	tp.Con.Defaults()
	tp.Noise.Defaults()
	tp.Noise.Sigma = 2e-3
	tp.Update()
}

func (tp *ThalamusParams) Update() {
	tp.TC.Update()
	tp.RE.Update()
	tp.TT.Update()
	tp.TR.Update()
	tp.H.Update()
	tp.Ca.Update()
}

// Validate returns an error wrapping ErrInvalidParams for a
// parameter that would make the module ill-defined
func (tp *ThalamusParams) Validate() error {
	vc := &paramCheck{mod: "thalamus"}
	vc.positive("TauT", tp.TauT)
	vc.positive("TauR", tp.TauR)
	vc.positive("TC.Qmax", tp.TC.Qmax)
	vc.positive("TC.Sigma", tp.TC.Sigma)
	vc.positive("RE.Qmax", tp.RE.Qmax)
	vc.positive("RE.Sigma", tp.RE.Sigma)
	vc.positive("TT.Phi", tp.TT.Phi)
	vc.positive("TR.Phi", tp.TR.Phi)
	vc.positive("Ca.Tau", tp.Ca.Tau)
	vc.positive("H.K2", tp.H.K2)
	vc.positive("H.K4", tp.H.K4)
	vc.nonNegative("LeakT.G", tp.LeakT.G)
	vc.nonNegative("LeakR.G", tp.LeakR.G)
	vc.nonNegative("KLeakT.G", tp.KLeakT.G)
	vc.nonNegative("KLeakR.G", tp.KLeakR.G)
	vc.nonNegative("TT.Gbar", tp.TT.Gbar)
	vc.nonNegative("TR.Gbar", tp.TR.Gbar)
	vc.nonNegative("H.Gbar", tp.H.Gbar)
	vc.nonNegative("H.K1", tp.H.K1)
	vc.nonNegative("H.K3", tp.H.K3)
	vc.nonNegative("Ca.C0", tp.Ca.C0)
	vc.nonNegative("Con.Ntt", tp.Con.Ntt)
	vc.nonNegative("Con.Ntr", tp.Con.Ntr)
	vc.nonNegative("Con.Nrt", tp.Con.Nrt)
	vc.nonNegative("Con.Nrr", tp.Con.Nrr)
	vc.nonNegative("Con.Net", tp.Con.Net)
	vc.nonNegative("Con.Ner", tp.Con.Ner)
	vc.nonNegative("Noise.Sigma", tp.Noise.Sigma)
	vc.finite("TC.Theta", tp.TC.Theta)
	vc.finite("RE.Theta", tp.RE.Theta)
	vc.finite("LeakT.E", tp.LeakT.E)
	vc.finite("LeakR.E", tp.LeakR.E)
	vc.finite("KLeakT.E", tp.KLeakT.E)
	vc.finite("KLeakR.E", tp.KLeakR.E)
	vc.finite("TT.ECa", tp.TT.ECa)
	vc.finite("TR.ECa", tp.TR.ECa)
	vc.finite("H.Eh", tp.H.Eh)
	vc.finite("H.Ginc", tp.H.Ginc)
	vc.finite("H.NP", tp.H.NP)
	vc.finite("Ca.Alpha", tp.Ca.Alpha)
	return vc.err
}

// ThalamusParamsFromArrays returns default thalamic parameters with the
// positional overrides of the classic command-line interface applied:
//
//	par[0] Con.Net, par[1] Con.Ner
func ThalamusParamsFromArrays(par []float64) (ThalamusParams, error) {
	tp := ThalamusParams{}
	tp.Defaults()
	if len(par) < 2 {
		return tp, invalidf("thalamus Par needs 2 values, got %d", len(par))
	}
	tp.Con.Net = par[0]
	tp.Con.Ner = par[1]
	tp.Update()
	return tp, tp.Validate()
}

///////////////////////////////////////////////////////////////////////
//  NetworkParams

// NetworkParams are the parameters of a coupled cortex - thalamus network
type NetworkParams struct {
	Dt          float64         `def:"0.1" min:"0" desc:"integration step size, in msec"`
	Seed        uint64          `def:"1" desc:"noise seed of the cortex -- the thalamus uses Seed+1"`
	Parallel    bool            `desc:"evaluate the two modules concurrently within each stage"`
	CheckFinite bool            `def:"true" desc:"check that the committed state is finite after every step"`
	Syn         chans.SynParams `view:"inline" desc:"synaptic constants shared by both modules"`
	Cortex      CortexParams    `view:"no-inline"`
	Thalamus    ThalamusParams  `view:"no-inline"`
}

func (np *NetworkParams) Defaults() {
	np.Dt = 0.1
	np.Seed = 1
	np.Parallel = false
	np.CheckFinite = true
	np.Syn.Defaults()
	np.Cortex.Defaults()
	np.Thalamus.Defaults()
	np.Update()
}

func (np *NetworkParams) Update() {
	np.Syn.Update()
	np.Cortex.Update()
	np.Thalamus.Update()
}

func (np *NetworkParams) Validate() error {
	if !(np.Dt > 0) || math.IsInf(np.Dt, 0) {
		return invalidf("Dt must be positive and finite, got %v", np.Dt)
	}
	if err := validateSyn(&np.Syn); err != nil {
		return err
	}
	if err := np.Cortex.Validate(); err != nil {
		return err
	}
	return np.Thalamus.Validate()
}

func validateSyn(sp *chans.SynParams) error {
	vc := &paramCheck{mod: "syn"}
	vc.positive("GammaE", sp.GammaE)
	vc.positive("GammaI", sp.GammaI)
	vc.positive("Nu", sp.Nu)
	vc.finite("EAMPA", sp.EAMPA)
	vc.finite("EGABA", sp.EGABA)
	return vc.err
}

// paramCheck checks named parameters in order and keeps the first
// failure, so the same bad parameter is always the one reported.
type paramCheck struct {
	mod string
	err error
}

// positive requires v to be finite and > 0
func (vc *paramCheck) positive(nm string, v float64) {
	if vc.err == nil && (!(v > 0) || math.IsInf(v, 0)) {
		vc.err = invalidf("%s %s must be positive and finite, got %v", vc.mod, nm, v)
	}
}

// nonNegative requires v to be finite and >= 0
func (vc *paramCheck) nonNegative(nm string, v float64) {
	if vc.err == nil && (!(v >= 0) || math.IsInf(v, 0)) {
		vc.err = invalidf("%s %s must be non-negative and finite, got %v", vc.mod, nm, v)
	}
}

// finite requires v to be neither NaN nor Inf
func (vc *paramCheck) finite(nm string, v float64) {
	if vc.err == nil && (math.IsNaN(v) || math.IsInf(v, 0)) {
		vc.err = invalidf("%s %s must be finite, got %v", vc.mod, nm, v)
	}
}
