// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sigmoid

import (
	"math"
	"testing"
)

// difTol is the numerical difference tolerance for comparing vs. target values
const difTol = 1.0e-14

func TestQ(t *testing.T) {
	tstv := []float64{-80, -70, -66, -64, -60, -58.5, -55, -50, -40, -20}

	qe := Params{}
	qe.Defaults()
	corqe := []float64{1.7501871701912565e-06, 0.00016220451891507372, 0.0009680450160563274, 0.002288450920539005, 0.010086668962084704, 0.015, 0.02490612298756992, 0.029377550546531, 0.02999317970154974, 0.029999999214245572}

	qt := Params{}
	qt.Set(400e-3, -45, 9)
	corqt := []float64{0.00034539606348214915, 0.002577111906260547, 0.005725042714668062, 0.008506552819274656, 0.018559042458944495, 0.024705178126119928, 0.04704098813196097, 0.10697472210253142, 0.29302527789746863, 0.39742288809373943}

	for i := range tstv {
		q := qe.Q(tstv[i])
		dif := math.Abs(q - corqe[i])
		if dif > difTol {
			t.Errorf("Qe err: idx: %v, v: %v, q: %v, cor q: %v, dif: %v\n", i, tstv[i], q, corqe[i], dif)
		}
		q = qt.Q(tstv[i])
		dif = math.Abs(q - corqt[i])
		if dif > difTol {
			t.Errorf("Qt err: idx: %v, v: %v, q: %v, cor q: %v, dif: %v\n", i, tstv[i], q, corqt[i], dif)
		}
	}
}

func TestDQ(t *testing.T) {
	sp := Params{}
	sp.Set(60e-3, -58.5, 6)
	for v := -90.0; v < -20; v += 5 {
		// central difference check of the derivative
		h := 1.0e-5
		nd := (sp.Q(v+h) - sp.Q(v-h)) / (2 * h)
		if math.Abs(nd-sp.DQ(v)) > 1.0e-10 {
			t.Errorf("DQ err: v: %v, dq: %v, numeric: %v\n", v, sp.DQ(v), nd)
		}
	}
}

func TestExtreme(t *testing.T) {
	sp := Params{}
	sp.Defaults()
	if q := sp.Q(math.Inf(1)); q != sp.Qmax {
		t.Errorf("Q(+Inf) = %v, want Qmax", q)
	}
	if q := sp.Q(math.Inf(-1)); q != 0 {
		t.Errorf("Q(-Inf) = %v, want 0", q)
	}
	if q := sp.Q(math.NaN()); !math.IsNaN(q) {
		t.Errorf("Q(NaN) = %v, want NaN", q)
	}
}
