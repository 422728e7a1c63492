// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chans

import (
	"math"
	"testing"
)

// difTol is the numerical difference tolerance for comparing vs. target values
const difTol = 1.0e-12

func TestTRelay(t *testing.T) {
	tc := TRelay{}
	tc.Defaults()

	tstv := []float64{-80, -65, -50}
	cormi := []float64{0.03270116507689669, 0.27533081108179125, 0.810246537252357}
	cortm := []float64{3.659322617382908, 3.1600449958614685, 1.748009449201293}
	corhi := []float64{0.43782349911420193, 0.01798620996209156, 0.0004305570813246149}
	corth := []float64{56.37182411409074, 16.97294237829346, 9.844855765060254}

	for i, v := range tstv {
		if dif := math.Abs(tc.MInf(v) - cormi[i]); dif > difTol {
			t.Errorf("TC MInf err: v: %v, val: %v, cor: %v, dif: %v\n", v, tc.MInf(v), cormi[i], dif)
		}
		if dif := math.Abs(tc.TauM(v) - cortm[i]); dif > difTol {
			t.Errorf("TC TauM err: v: %v, val: %v, cor: %v, dif: %v\n", v, tc.TauM(v), cortm[i], dif)
		}
		if dif := math.Abs(tc.HInf(v) - corhi[i]); dif > difTol {
			t.Errorf("TC HInf err: v: %v, val: %v, cor: %v, dif: %v\n", v, tc.HInf(v), corhi[i], dif)
		}
		if dif := math.Abs(tc.TauH(v) - corth[i]); dif > 1.0e-10 {
			t.Errorf("TC TauH err: v: %v, val: %v, cor: %v, dif: %v\n", v, tc.TauH(v), corth[i], dif)
		}
	}
}

func TestTReticular(t *testing.T) {
	re := TReticular{}
	re.Defaults()

	tstv := []float64{-80, -65, -50}
	cormi := []float64{0.022231042404446736, 0.1471969985965699, 0.5671592547192412}
	cortm := []float64{0.6422401538121755, 1.0909969396034334, 0.9391786774736117}
	corhi := []float64{0.5, 0.04742587317756678, 0.0024726231566347743}
	corth := []float64{57.18151543903734, 13.33094985093248, 7.717923377495269}

	for i, v := range tstv {
		if dif := math.Abs(re.MInf(v) - cormi[i]); dif > difTol {
			t.Errorf("RE MInf err: v: %v, val: %v, cor: %v, dif: %v\n", v, re.MInf(v), cormi[i], dif)
		}
		if dif := math.Abs(re.TauM(v) - cortm[i]); dif > difTol {
			t.Errorf("RE TauM err: v: %v, val: %v, cor: %v, dif: %v\n", v, re.TauM(v), cortm[i], dif)
		}
		if dif := math.Abs(re.HInf(v) - corhi[i]); dif > difTol {
			t.Errorf("RE HInf err: v: %v, val: %v, cor: %v, dif: %v\n", v, re.HInf(v), corhi[i], dif)
		}
		if dif := math.Abs(re.TauH(v) - corth[i]); dif > 1.0e-10 {
			t.Errorf("RE TauH err: v: %v, val: %v, cor: %v, dif: %v\n", v, re.TauH(v), corth[i], dif)
		}
	}
	if re.Gbar != 2 {
		t.Errorf("RE Gbar default: %v", re.Gbar)
	}
}

func TestCurrents(t *testing.T) {
	sp := SynParams{}
	sp.Defaults()
	if i := sp.Exc(0.5, -60); i != -30 {
		t.Errorf("Exc: %v", i)
	}
	if i := sp.Inh(0.5, -60); i != 5 {
		t.Errorf("Inh: %v", i)
	}
	lk := Leak{}
	lk.Set(0.02, -70)
	if dif := math.Abs(lk.I(-60) - 0.2); dif > difTol {
		t.Errorf("Leak: %v", lk.I(-60))
	}
	if Ohm(2, 10, 10) != 0 {
		t.Errorf("Ohm at reversal should be zero")
	}
	tc := TRelay{}
	tc.Defaults()
	if dif := math.Abs(tc.I(-60, 0.5, 0.5) - 2.2*0.125*(-180)); dif > difTol {
		t.Errorf("IT: %v", tc.I(-60, 0.5, 0.5))
	}
}

func TestKernel(t *testing.T) {
	// at steady state the kernel is silent
	if k := Kernel(0.07, 1.2, 1.2, 0); k != 0 {
		t.Errorf("Kernel steady state: %v", k)
	}
	// critically damped step response: Phi(t) = 1 - (1 + g t) exp(-g t)
	g := 0.07
	dt := 0.01
	phi, x := 0.0, 0.0
	for i := 0; i < 10000; i++ { // semi-implicit euler, 100 msec
		x += dt * Kernel(g, 1, phi, x)
		phi += dt * x
	}
	tm := 100.0
	cor := 1 - (1+g*tm)*math.Exp(-g*tm)
	if dif := math.Abs(phi - cor); dif > 1.0e-3 {
		t.Errorf("Kernel step response: %v, cor: %v, dif: %v", phi, cor, dif)
	}
	if math.Abs(Relax(0.2, 1, 2)-0.4) > difTol {
		t.Errorf("Relax: %v", Relax(0.2, 1, 2))
	}
}
