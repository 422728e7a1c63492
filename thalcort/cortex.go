// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package thalcort

import (
	"fmt"
	"math"
	"sync/atomic"

	"github.com/emer/thalcort/chans"
	"github.com/emer/thalcort/noise"
	"github.com/emer/thalcort/rk"
)

// stageNoiseScale rescales the per-stage noise so that the committed
// increment, weighted 1/6, 1/3, 1/3, 1/6 over four independent draws,
// has the variance of a single Wiener increment over dt.
var stageNoiseScale = 6 / math.Sqrt(10)

// Cortex is the cortical module: an excitatory (pyramidal) and an
// inhibitory population with sodium-dependent adaptation of the
// excitatory cells.  It receives the relay flux of its partner thalamus.
type Cortex struct {
	Nm     string                 `desc:"name used in error reports"`
	Params CortexParams           `desc:"module parameters -- fixed after construction"`
	Syn    chans.SynParams        `desc:"synaptic constants shared with the partner"`
	Dt     float64                `desc:"integration step size, in msec"`
	Bufs   [CortexVarsN]rk.Buffer `view:"-" desc:"stage buffers of every state variable"`
	Noise  *noise.Source          `view:"-" desc:"noise stream driving YE"`

	partner FluxSource
	stage   atomic.Int32
}

// NewCortex returns a validated cortical module in its initial state.
// Params and Syn are copied, and the noise mean is forced to 0.
func NewCortex(cp *CortexParams, syn *chans.SynParams, dt float64) (*Cortex, error) {
	if err := cp.Validate(); err != nil {
		return nil, err
	}
	if err := validateSyn(syn); err != nil {
		return nil, err
	}
	if !(dt > 0) || math.IsInf(dt, 0) {
		return nil, invalidf("Dt must be positive and finite, got %v", dt)
	}
	cx := &Cortex{Nm: "Cortex", Params: *cp, Syn: *syn, Dt: dt}
	cx.Params.Update()
	cx.Params.Noise.Mean = 0
	cx.Noise = noise.NewSource(cx.Params.Noise)
	cx.InitState()
	return cx, nil
}

func (cx *Cortex) Name() string { return cx.Nm }

// InitState sets the initial state: leak reversal voltages, equilibrium
// sodium and silent synapses.
func (cx *Cortex) InitState() {
	var st CortexState
	st[Ve] = cx.Params.LeakE.E
	st[Vi] = cx.Params.LeakI.E
	st[Na] = cx.Params.KNa.NaEq
	cx.SetState(&st)
}

// SetState sets the committed value of every variable, discarding any
// step in progress.
func (cx *Cortex) SetState(st *CortexState) {
	for v := range cx.Bufs {
		cx.Bufs[v].Init(st[v])
	}
	cx.stage.Store(int32(rk.Committed))
}

// State returns the values held in slot s
func (cx *Cortex) State(s rk.Stages) CortexState {
	var st CortexState
	for v := range cx.Bufs {
		st[v] = cx.Bufs[v].At(s)
	}
	return st
}

// Var returns the value of variable v held in slot s
func (cx *Cortex) Var(v CortexVars, s rk.Stages) float64 {
	return cx.Bufs[v].At(s)
}

// Stage returns the last stage slot written in the current step,
// Committed between steps.
func (cx *Cortex) Stage() rk.Stages {
	return rk.Stages(cx.stage.Load())
}

// Wire sets the partner whose flux drives the thalamic projections.
// Can only be called once.
func (cx *Cortex) Wire(partner FluxSource) error {
	if partner == nil {
		return fmt.Errorf("%s: %w: nil partner", cx.Nm, ErrNotWired)
	}
	if cx.partner != nil {
		return fmt.Errorf("%s: %w", cx.Nm, ErrAlreadyWired)
	}
	cx.partner = partner
	return nil
}

// Wired returns true once a partner has been set
func (cx *Cortex) Wired() bool {
	return cx.partner != nil
}

// Phi returns the axonal flux of the excitatory population in slot s
func (cx *Cortex) Phi(s rk.Stages) float64 {
	return cx.Bufs[PhiE].At(s)
}

// SetRK evaluates the derivatives at slot target-1, using the partner
// flux of the same slot, draws one noise sample, and writes the trial
// values of slot target.
func (cx *Cortex) SetRK(target rk.Stages) error {
	if cx.partner == nil {
		return fmt.Errorf("%s: %w", cx.Nm, ErrNotWired)
	}
	if err := checkSetRK(cx.Nm, cx.Stage(), target, cx.Bufs[:], cx.partner); err != nil {
		return err
	}
	from := target.Prev()
	st := cx.State(from)
	d := cx.Derivs(&st, cx.partner.Phi(from))
	d[YE] += cx.NoiseDrive(cx.Noise.Sample())
	for v := range cx.Bufs {
		cx.Bufs[v].Set(target, cx.Dt, d[v])
	}
	cx.stage.Store(int32(target))
	return nil
}

// AddRK commits the step once all four stages have been written
func (cx *Cortex) AddRK() error {
	if err := checkAddRK(cx.Nm, cx.Stage(), cx.partner); err != nil {
		return err
	}
	for v := range cx.Bufs {
		cx.Bufs[v].Commit(cx.Dt)
	}
	cx.stage.Store(int32(rk.Committed))
	return nil
}

// NoiseDrive returns the stochastic forcing of YE for one stage given
// the noise sample xi (already scaled by the noise sigma).
func (cx *Cortex) NoiseDrive(xi float64) float64 {
	return cx.Syn.Nu * cx.Syn.Nu * xi * stageNoiseScale / math.Sqrt(cx.Dt)
}

// CheckFinite returns a *NonFiniteError for the first committed
// variable that is NaN or Inf
func (cx *Cortex) CheckFinite(step int) error {
	for v := range cx.Bufs {
		val := cx.Bufs[v].At(rk.Committed)
		if math.IsNaN(val) || math.IsInf(val, 0) {
			return &NonFiniteError{Module: cx.Nm, Var: CortexVars(v).String(), Step: step, Val: val}
		}
	}
	return nil
}

// Derivs returns the deterministic time derivative of every variable of
// state st, given the relay flux phiT of the partner.  It only reads st.
func (cx *Cortex) Derivs(st *CortexState, phiT float64) CortexState {
	cp := &cx.Params
	sy := &cx.Syn
	ve, vi := st[Ve], st[Vi]
	qe, qi := cp.E.Q(ve), cp.I.Q(vi)

	var d CortexState
	d[Ve] = -(cp.LeakE.I(ve)+sy.Exc(st[PhiEE], ve)+sy.Inh(st[PhiIE], ve))/cp.TauE - cp.KNa.I(ve, st[Na])
	d[Vi] = -(cp.LeakI.I(vi) + sy.Exc(st[PhiEI], vi) + sy.Inh(st[PhiII], vi)) / cp.TauI
	d[Na] = cp.KNa.DNa(qe, st[Na])

	d[PhiEE] = st[XEE]
	d[PhiEI] = st[XEI]
	d[PhiIE] = st[XIE]
	d[PhiII] = st[XII]
	d[XEE] = chans.Kernel(sy.GammaE, cp.Con.Nee*st[PhiE]+cp.Con.Nte*phiT, st[PhiEE], st[XEE])
	d[XEI] = chans.Kernel(sy.GammaE, cp.Con.Nei*st[PhiE]+cp.Con.Nti*phiT, st[PhiEI], st[XEI])
	d[XIE] = chans.Kernel(sy.GammaI, cp.Con.Nie*qi, st[PhiIE], st[XIE])
	d[XII] = chans.Kernel(sy.GammaI, cp.Con.Nii*qi, st[PhiII], st[XII])

	d[PhiE] = st[YE]
	d[YE] = chans.Kernel(sy.Nu, qe, st[PhiE], st[YE])
	return d
}

// RestState returns the state in which every variable other than the
// two voltages is at its steady state for voltages ve, vi and constant
// relay flux phiT.  It is a fixed point iff both voltage derivatives
// vanish.
func (cx *Cortex) RestState(ve, vi, phiT float64) CortexState {
	cp := &cx.Params
	qe, qi := cp.E.Q(ve), cp.I.Q(vi)
	var st CortexState
	st[Ve] = ve
	st[Vi] = vi
	st[Na] = cp.KNa.NaSS(qe)
	st[PhiE] = qe
	st[PhiEE] = cp.Con.Nee*qe + cp.Con.Nte*phiT
	st[PhiEI] = cp.Con.Nei*qe + cp.Con.Nti*phiT
	st[PhiIE] = cp.Con.Nie * qi
	st[PhiII] = cp.Con.Nii * qi
	return st
}

///////////////////////////////////////////////////////////////////////
//  Firing rates and currents at a stage slot

// Qe returns the firing rate of the excitatory population in slot s
func (cx *Cortex) Qe(s rk.Stages) float64 {
	return cx.Params.E.Q(cx.Var(Ve, s))
}

// Qi returns the firing rate of the inhibitory population in slot s
func (cx *Cortex) Qi(s rk.Stages) float64 {
	return cx.Params.I.Q(cx.Var(Vi, s))
}

// Iee is the excitatory synaptic current of excitatory cells
func (cx *Cortex) Iee(s rk.Stages) float64 {
	return cx.Syn.Exc(cx.Var(PhiEE, s), cx.Var(Ve, s))
}

// Iei is the excitatory synaptic current of inhibitory cells
func (cx *Cortex) Iei(s rk.Stages) float64 {
	return cx.Syn.Exc(cx.Var(PhiEI, s), cx.Var(Vi, s))
}

// Iie is the inhibitory synaptic current of excitatory cells
func (cx *Cortex) Iie(s rk.Stages) float64 {
	return cx.Syn.Inh(cx.Var(PhiIE, s), cx.Var(Ve, s))
}

// Iii is the inhibitory synaptic current of inhibitory cells
func (cx *Cortex) Iii(s rk.Stages) float64 {
	return cx.Syn.Inh(cx.Var(PhiII, s), cx.Var(Vi, s))
}

// ILe is the leak current of excitatory cells
func (cx *Cortex) ILe(s rk.Stages) float64 {
	return cx.Params.LeakE.I(cx.Var(Ve, s))
}

// ILi is the leak current of inhibitory cells
func (cx *Cortex) ILi(s rk.Stages) float64 {
	return cx.Params.LeakI.I(cx.Var(Vi, s))
}

// IKNa is the sodium-dependent potassium current of excitatory cells
func (cx *Cortex) IKNa(s rk.Stages) float64 {
	return cx.Params.KNa.I(cx.Var(Ve, s), cx.Var(Na, s))
}

// NaPump is the net Na extrusion of the Na/K pump
func (cx *Cortex) NaPump(s rk.Stages) float64 {
	return cx.Params.KNa.Pump(cx.Var(Na, s))
}

///////////////////////////////////////////////////////////////////////
//  Stage protocol checks shared by both modules

// checkSetRK enforces that target follows the own stage, whose slot
// holds values of the current step.  A staged partner must have reached
// target-1 but not gone past target.
func checkSetRK(nm string, own, target rk.Stages, bufs []rk.Buffer, partner FluxSource) error {
	if !target.IsTrial() || target != own+1 {
		return fmt.Errorf("%s: %w: SetRK(%v) called at %v", nm, ErrStageOrder, target, own)
	}
	from := target.Prev()
	for i := range bufs {
		if !bufs[i].Written(from) {
			return fmt.Errorf("%s: %w: SetRK(%v) reads unwritten slot %v", nm, ErrStageOrder, target, from)
		}
	}
	if ps, ok := partner.(Staged); ok {
		pst := ps.Stage()
		if pst != target-1 && pst != target {
			return fmt.Errorf("%s: %w: SetRK(%v) with partner at %v", nm, ErrStageOrder, target, pst)
		}
	}
	return nil
}

// checkAddRK enforces that all four stages are written, and that the
// partner has also finished them or already committed.
func checkAddRK(nm string, own rk.Stages, partner FluxSource) error {
	if partner == nil {
		return fmt.Errorf("%s: %w", nm, ErrNotWired)
	}
	if own != rk.Stage4 {
		return fmt.Errorf("%s: %w: AddRK called at %v", nm, ErrStageOrder, own)
	}
	if ps, ok := partner.(Staged); ok {
		pst := ps.Stage()
		if pst != rk.Stage4 && pst != rk.Committed {
			return fmt.Errorf("%s: %w: AddRK with partner at %v", nm, ErrStageOrder, pst)
		}
	}
	return nil
}
