// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package thalcort

import (
	"errors"
	"fmt"
	"math"

	"github.com/emer/thalcort/rk"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// RestParams control the search for the noise-free resting state
type RestParams struct {
	SettleMs float64 `def:"1000" desc:"duration of the noise-free settling run that provides the starting point, in msec"`
	MaxIter  int     `def:"50" desc:"maximum number of Newton iterations"`
	Tol      float64 `def:"1e-10" desc:"maximum absolute voltage derivative at the resting state, in mV/msec"`
	JacStep  float64 `def:"1e-5" desc:"relative voltage step of the finite difference Jacobian"`
}

func (rp *RestParams) Defaults() {
	rp.SettleMs = 1000
	rp.MaxIter = 50
	rp.Tol = 1e-10
	rp.JacStep = 1e-5
}

// Rest finds the coupled noise-free fixed point of both modules at the
// current input, and sets it as the committed state of both.
// Every variable other than the four voltages is at its closed-form
// steady state given the voltages, so the search is over the voltages
// only: a damped Newton iteration on their derivatives, started from
// the end of a noise-free settling run from the current state.
// The noise streams and the time are not affected.
func (nt *Network) Rest() error {
	rp := RestParams{}
	rp.Defaults()
	return nt.RestWith(&rp)
}

// RestWith is Rest with given search parameters
func (nt *Network) RestWith(rp *RestParams) error {
	v := nt.settle(int(rp.SettleMs / nt.Params.Dt))
	if !allFinite(v[:]) {
		v = [4]float64{nt.Cortex.Params.LeakE.E, nt.Cortex.Params.LeakI.E, nt.Thalamus.Params.LeakT.E, nt.Thalamus.Params.LeakR.E}
	}
	r := nt.restResid(v)
	rn := restNorm(r)
	for it := 0; it < rp.MaxIter && rn > rp.Tol; it++ {
		jac := mat.NewDense(4, 4, nil)
		for j := 0; j < 4; j++ {
			h := rp.JacStep * math.Max(1, math.Abs(v[j]))
			vp, vm := v, v
			vp[j] += h
			vm[j] -= h
			rpl, rmi := nt.restResid(vp), nt.restResid(vm)
			for i := 0; i < 4; i++ {
				jac.Set(i, j, (rpl[i]-rmi[i])/(2*h))
			}
		}
		neg := make([]float64, 4)
		floats.ScaleTo(neg, -1, r[:])
		var dx mat.VecDense
		if err := dx.SolveVec(jac, mat.NewVecDense(4, neg)); err != nil {
			var cond mat.Condition
			if !errors.As(err, &cond) {
				return fmt.Errorf("%w: singular Jacobian: %v", ErrNoEquilibrium, err)
			}
		}
		accepted := false
		for lam := 1.0; lam > 1.0e-6; lam *= 0.5 {
			var vn [4]float64
			for i := range vn {
				vn[i] = v[i] + lam*dx.AtVec(i)
			}
			rnew := nt.restResid(vn)
			if nn := restNorm(rnew); nn < rn {
				v, r, rn = vn, rnew, nn
				accepted = true
				break
			}
		}
		if !accepted {
			break
		}
	}
	if !(rn <= rp.Tol) {
		return fmt.Errorf("%w: voltage derivative %g > %g", ErrNoEquilibrium, rn, rp.Tol)
	}
	cs, ts := nt.restStates(v)
	nt.Cortex.SetState(&cs)
	nt.Thalamus.SetState(&ts)
	return nil
}

// restStates returns the full states of both modules for voltages
// v = Ve, Vi, Vt, Vr, with the fluxes exchanged at their steady state
func (nt *Network) restStates(v [4]float64) (CortexState, ThalamusState) {
	phiE := nt.Cortex.Params.E.Q(v[0])
	phiT := nt.Thalamus.Params.TC.Q(v[2])
	return nt.Cortex.RestState(v[0], v[1], phiT), nt.Thalamus.RestState(v[2], v[3], phiE)
}

// restResid returns the voltage derivatives at the rest states for v
func (nt *Network) restResid(v [4]float64) [4]float64 {
	cs, ts := nt.restStates(v)
	dc := nt.Cortex.Derivs(&cs, ts[PhiT])
	dt := nt.Thalamus.Derivs(&ts, cs[PhiE], nt.Thalamus.Input)
	return [4]float64{dc[Ve], dc[Vi], dt[Vt], dt[Vr]}
}

func restNorm(r [4]float64) float64 {
	if !allFinite(r[:]) {
		return math.Inf(1)
	}
	return floats.Norm(r[:], math.Inf(1))
}

func allFinite(vals []float64) bool {
	for _, x := range vals {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}
	return true
}

// settle integrates both modules without noise for nsteps from the
// committed state, on plain state values, and returns the final voltages.
// The modules themselves are not changed.
func (nt *Network) settle(nsteps int) [4]float64 {
	cs := nt.Cortex.State(rk.Committed)
	ts := nt.Thalamus.State(rk.Committed)
	dt := nt.Params.Dt
	for i := 0; i < nsteps; i++ {
		cs, ts = nt.plainStep(&cs, &ts, dt)
		if !allFinite(cs[:]) || !allFinite(ts[:]) {
			break
		}
	}
	return [4]float64{cs[Ve], cs[Vi], ts[Vt], ts[Vr]}
}

// plainStep is one noise-free classic RK4 step of both modules
func (nt *Network) plainStep(cs *CortexState, ts *ThalamusState, dt float64) (CortexState, ThalamusState) {
	in := nt.Thalamus.Input
	derivs := func(c *CortexState, t *ThalamusState) (CortexState, ThalamusState) {
		return nt.Cortex.Derivs(c, t[PhiT]), nt.Thalamus.Derivs(t, c[PhiE], in)
	}
	var kc [rk.StagesN]CortexState
	var kt [rk.StagesN]ThalamusState
	var ci CortexState
	var ti ThalamusState
	kc[rk.Stage1], kt[rk.Stage1] = derivs(cs, ts)
	for s := rk.Stage2; s <= rk.Stage4; s++ {
		floats.AddScaledTo(ci[:], cs[:], rk.A[s-1]*dt, kc[s-1][:])
		floats.AddScaledTo(ti[:], ts[:], rk.A[s-1]*dt, kt[s-1][:])
		kc[s], kt[s] = derivs(&ci, &ti)
	}
	nc, ntl := *cs, *ts
	for s := rk.Stage1; s <= rk.Stage4; s++ {
		floats.AddScaled(nc[:], rk.B[s]*dt, kc[s][:])
		floats.AddScaled(ntl[:], rk.B[s]*dt, kt[s][:])
	}
	return nc, ntl
}
