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

// Thalamus is the thalamic module: a thalamocortical relay (TC) and a
// reticular (RE) population with T-type calcium currents in both, and a
// calcium-regulated h current in the relay cells.  It receives the
// excitatory flux of its partner cortex, and an external input into the
// relay voltage.
type Thalamus struct {
	Nm     string                   `desc:"name used in error reports"`
	Params ThalamusParams           `desc:"module parameters -- fixed after construction"`
	Syn    chans.SynParams          `desc:"synaptic constants shared with the partner"`
	Dt     float64                  `desc:"integration step size, in msec"`
	Input  float64                  `desc:"constant drive added to the relay voltage derivative -- set between steps"`
	Bufs   [ThalamusVarsN]rk.Buffer `view:"-" desc:"stage buffers of every state variable"`
	Noise  *noise.Source            `view:"-" desc:"noise stream driving YT"`

	partner FluxSource
	stage   atomic.Int32
}

// NewThalamus returns a validated thalamic module in its initial state.
// Params and Syn are copied, and the noise mean is forced to 0.
func NewThalamus(tp *ThalamusParams, syn *chans.SynParams, dt float64) (*Thalamus, error) {
	if err := tp.Validate(); err != nil {
		return nil, err
	}
	if err := validateSyn(syn); err != nil {
		return nil, err
	}
	if !(dt > 0) || math.IsInf(dt, 0) {
		return nil, invalidf("Dt must be positive and finite, got %v", dt)
	}
	th := &Thalamus{Nm: "Thalamus", Params: *tp, Syn: *syn, Dt: dt}
	th.Params.Update()
	th.Params.Noise.Mean = 0
	th.Noise = noise.NewSource(th.Params.Noise)
	th.InitState()
	return th, nil
}

func (th *Thalamus) Name() string { return th.Nm }

// InitState sets the initial state: leak reversal voltages, resting
// calcium, and everything else zero.
func (th *Thalamus) InitState() {
	var st ThalamusState
	st[Vt] = th.Params.LeakT.E
	st[Vr] = th.Params.LeakR.E
	st[Ca] = th.Params.Ca.C0
	th.SetState(&st)
}

// SetState sets the committed value of every variable, discarding any
// step in progress.
func (th *Thalamus) SetState(st *ThalamusState) {
	for v := range th.Bufs {
		th.Bufs[v].Init(st[v])
	}
	th.stage.Store(int32(rk.Committed))
}

// State returns the values held in slot s
func (th *Thalamus) State(s rk.Stages) ThalamusState {
	var st ThalamusState
	for v := range th.Bufs {
		st[v] = th.Bufs[v].At(s)
	}
	return st
}

// Var returns the value of variable v held in slot s
func (th *Thalamus) Var(v ThalamusVars, s rk.Stages) float64 {
	return th.Bufs[v].At(s)
}

// Stage returns the last stage slot written in the current step,
// Committed between steps.
func (th *Thalamus) Stage() rk.Stages {
	return rk.Stages(th.stage.Load())
}

// SetInput sets the constant drive into the relay population.
// It takes effect from the next stage evaluated.
func (th *Thalamus) SetInput(in float64) {
	th.Input = in
}

// Wire sets the partner whose flux drives the cortical projections.
// Can only be called once.
func (th *Thalamus) Wire(partner FluxSource) error {
	if partner == nil {
		return fmt.Errorf("%s: %w: nil partner", th.Nm, ErrNotWired)
	}
	if th.partner != nil {
		return fmt.Errorf("%s: %w", th.Nm, ErrAlreadyWired)
	}
	th.partner = partner
	return nil
}

// Wired returns true once a partner has been set
func (th *Thalamus) Wired() bool {
	return th.partner != nil
}

// Phi returns the axonal flux of the relay population in slot s
func (th *Thalamus) Phi(s rk.Stages) float64 {
	return th.Bufs[PhiT].At(s)
}

// SetRK evaluates the derivatives at slot target-1, using the partner
// flux of the same slot, draws one noise sample, and writes the trial
// values of slot target.
func (th *Thalamus) SetRK(target rk.Stages) error {
	if th.partner == nil {
		return fmt.Errorf("%s: %w", th.Nm, ErrNotWired)
	}
	if err := checkSetRK(th.Nm, th.Stage(), target, th.Bufs[:], th.partner); err != nil {
		return err
	}
	from := target.Prev()
	st := th.State(from)
	d := th.Derivs(&st, th.partner.Phi(from), th.Input)
	d[YT] += th.NoiseDrive(th.Noise.Sample())
	for v := range th.Bufs {
		th.Bufs[v].Set(target, th.Dt, d[v])
	}
	th.stage.Store(int32(target))
	return nil
}

// AddRK commits the step once all four stages have been written
func (th *Thalamus) AddRK() error {
	if err := checkAddRK(th.Nm, th.Stage(), th.partner); err != nil {
		return err
	}
	for v := range th.Bufs {
		th.Bufs[v].Commit(th.Dt)
	}
	th.stage.Store(int32(rk.Committed))
	return nil
}

// NoiseDrive returns the stochastic forcing of YT for one stage given
// the noise sample xi (already scaled by the noise sigma).
func (th *Thalamus) NoiseDrive(xi float64) float64 {
	return th.Syn.Nu * th.Syn.Nu * xi * stageNoiseScale / math.Sqrt(th.Dt)
}

// CheckFinite returns a *NonFiniteError for the first committed
// variable that is NaN or Inf
func (th *Thalamus) CheckFinite(step int) error {
	for v := range th.Bufs {
		val := th.Bufs[v].At(rk.Committed)
		if math.IsNaN(val) || math.IsInf(val, 0) {
			return &NonFiniteError{Module: th.Nm, Var: ThalamusVars(v).String(), Step: step, Val: val}
		}
	}
	return nil
}

// Derivs returns the deterministic time derivative of every variable of
// state st, given the excitatory flux phiE of the partner and the
// external input.  It only reads st.
func (th *Thalamus) Derivs(st *ThalamusState, phiE, input float64) ThalamusState {
	tp := &th.Params
	sy := &th.Syn
	vt, vr := st[Vt], st[Vr]
	qt, qr := tp.TC.Q(vt), tp.RE.Q(vr)
	itt := tp.TT.I(vt, st[MTT], st[HTT])
	itr := tp.TR.I(vr, st[MTR], st[HTR])
	ih := tp.H.I(vt, st[MH], st[MH2])

	var d ThalamusState
	d[Vt] = -(tp.LeakT.I(vt)+sy.Exc(st[PhiTT], vt)+sy.Inh(st[PhiRT], vt))/tp.TauT - (tp.KLeakT.I(vt) + itt + ih) + input
	d[Vr] = -(tp.LeakR.I(vr)+sy.Exc(st[PhiTR], vr)+sy.Inh(st[PhiRR], vr))/tp.TauR - (tp.KLeakR.I(vr) + itr)
	d[Ca] = tp.Ca.DCa(st[Ca], itt)

	d[PhiTT] = st[XTT]
	d[PhiTR] = st[XTR]
	d[PhiRT] = st[XRT]
	d[PhiRR] = st[XRR]
	d[XTT] = chans.Kernel(sy.GammaE, tp.Con.Ntt*st[PhiT]+tp.Con.Net*phiE, st[PhiTT], st[XTT])
	d[XTR] = chans.Kernel(sy.GammaE, tp.Con.Ntr*st[PhiT]+tp.Con.Ner*phiE, st[PhiTR], st[XTR])
	d[XRT] = chans.Kernel(sy.GammaI, tp.Con.Nrt*qr, st[PhiRT], st[XRT])
	d[XRR] = chans.Kernel(sy.GammaI, tp.Con.Nrr*qr, st[PhiRR], st[XRR])

	d[PhiT] = st[YT]
	d[YT] = chans.Kernel(sy.Nu, qt, st[PhiT], st[YT])

	d[HTT] = chans.Relax(st[HTT], tp.TT.HInf(vt), tp.TT.TauH(vt))
	d[MTT] = chans.Relax(st[MTT], tp.TT.MInf(vt), tp.TT.TauM(vt))
	d[HTR] = chans.Relax(st[HTR], tp.TR.HInf(vr), tp.TR.TauH(vr))
	d[MTR] = chans.Relax(st[MTR], tp.TR.MInf(vr), tp.TR.TauM(vr))

	d[MH] = tp.H.DM(vt, st[MH], st[MH2], st[PH])
	d[MH2] = tp.H.DM2(st[MH], st[MH2], st[PH])
	d[PH] = tp.H.DP(st[Ca], st[PH])
	return d
}

// RestState returns the state in which every variable other than the
// two voltages is at its steady state for voltages vt, vr and constant
// excitatory flux phiE.  It is a fixed point iff both voltage
// derivatives vanish.
func (th *Thalamus) RestState(vt, vr, phiE float64) ThalamusState {
	tp := &th.Params
	qt, qr := tp.TC.Q(vt), tp.RE.Q(vr)
	var st ThalamusState
	st[Vt] = vt
	st[Vr] = vr
	st[PhiT] = qt
	st[PhiTT] = tp.Con.Ntt*qt + tp.Con.Net*phiE
	st[PhiTR] = tp.Con.Ntr*qt + tp.Con.Ner*phiE
	st[PhiRT] = tp.Con.Nrt * qr
	st[PhiRR] = tp.Con.Nrr * qr
	st[HTT] = tp.TT.HInf(vt)
	st[MTT] = tp.TT.MInf(vt)
	st[HTR] = tp.TR.HInf(vr)
	st[MTR] = tp.TR.MInf(vr)
	st[Ca] = tp.Ca.SS(tp.TT.I(vt, st[MTT], st[HTT]))
	st[MH], st[MH2], st[PH] = tp.H.SS(vt, st[Ca])
	return st
}

///////////////////////////////////////////////////////////////////////
//  Firing rates, currents and gating at a stage slot

// Qt returns the firing rate of the relay population in slot s
func (th *Thalamus) Qt(s rk.Stages) float64 {
	return th.Params.TC.Q(th.Var(Vt, s))
}

// Qr returns the firing rate of the reticular population in slot s
func (th *Thalamus) Qr(s rk.Stages) float64 {
	return th.Params.RE.Q(th.Var(Vr, s))
}

// Iet is the excitatory synaptic current of relay cells
func (th *Thalamus) Iet(s rk.Stages) float64 {
	return th.Syn.Exc(th.Var(PhiTT, s), th.Var(Vt, s))
}

// Iit is the inhibitory synaptic current of relay cells
func (th *Thalamus) Iit(s rk.Stages) float64 {
	return th.Syn.Inh(th.Var(PhiRT, s), th.Var(Vt, s))
}

// Ier is the excitatory synaptic current of reticular cells
func (th *Thalamus) Ier(s rk.Stages) float64 {
	return th.Syn.Exc(th.Var(PhiTR, s), th.Var(Vr, s))
}

// Iir is the inhibitory synaptic current of reticular cells
func (th *Thalamus) Iir(s rk.Stages) float64 {
	return th.Syn.Inh(th.Var(PhiRR, s), th.Var(Vr, s))
}

// ILt is the leak current of relay cells
func (th *Thalamus) ILt(s rk.Stages) float64 {
	return th.Params.LeakT.I(th.Var(Vt, s))
}

// ILr is the leak current of reticular cells
func (th *Thalamus) ILr(s rk.Stages) float64 {
	return th.Params.LeakR.I(th.Var(Vr, s))
}

// ILKt is the potassium leak current of relay cells
func (th *Thalamus) ILKt(s rk.Stages) float64 {
	return th.Params.KLeakT.I(th.Var(Vt, s))
}

// ILKr is the potassium leak current of reticular cells
func (th *Thalamus) ILKr(s rk.Stages) float64 {
	return th.Params.KLeakR.I(th.Var(Vr, s))
}

// ITt is the T-type calcium current of relay cells
func (th *Thalamus) ITt(s rk.Stages) float64 {
	return th.Params.TT.I(th.Var(Vt, s), th.Var(MTT, s), th.Var(HTT, s))
}

// ITr is the T-type calcium current of reticular cells
func (th *Thalamus) ITr(s rk.Stages) float64 {
	return th.Params.TR.I(th.Var(Vr, s), th.Var(MTR, s), th.Var(HTR, s))
}

// Ih is the h current of relay cells
func (th *Thalamus) Ih(s rk.Stages) float64 {
	return th.Params.H.I(th.Var(Vt, s), th.Var(MH, s), th.Var(MH2, s))
}

// MInfTt is the steady state T activation of relay cells in slot s
func (th *Thalamus) MInfTt(s rk.Stages) float64 { return th.Params.TT.MInf(th.Var(Vt, s)) }

// MInfTr is the steady state T activation of reticular cells in slot s
func (th *Thalamus) MInfTr(s rk.Stages) float64 { return th.Params.TR.MInf(th.Var(Vr, s)) }

// HInfTt is the steady state T inactivation of relay cells in slot s
func (th *Thalamus) HInfTt(s rk.Stages) float64 { return th.Params.TT.HInf(th.Var(Vt, s)) }

// HInfTr is the steady state T inactivation of reticular cells in slot s
func (th *Thalamus) HInfTr(s rk.Stages) float64 { return th.Params.TR.HInf(th.Var(Vr, s)) }

func (th *Thalamus) TauMTt(s rk.Stages) float64 { return th.Params.TT.TauM(th.Var(Vt, s)) }
func (th *Thalamus) TauMTr(s rk.Stages) float64 { return th.Params.TR.TauM(th.Var(Vr, s)) }
func (th *Thalamus) TauHTt(s rk.Stages) float64 { return th.Params.TT.TauH(th.Var(Vt, s)) }
func (th *Thalamus) TauHTr(s rk.Stages) float64 { return th.Params.TR.TauH(th.Var(Vr, s)) }

// MInfH is the steady state h activation in slot s
func (th *Thalamus) MInfH(s rk.Stages) float64 { return th.Params.H.MInf(th.Var(Vt, s)) }

// TauMH is the h activation time constant in slot s
func (th *Thalamus) TauMH(s rk.Stages) float64 { return th.Params.H.TauM(th.Var(Vt, s)) }
