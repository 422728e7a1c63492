// Copyright (c) 2020, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glong

// CaParams control the intracellular calcium concentration of thalamic
// relay cells, driven by the T current and decaying to a resting level.
type CaParams struct {
	Alpha float64 `def:"-50e-6" desc:"calcium influx per unit T current (negative: inward current raises Ca)"`
	Tau   float64 `def:"5" min:"0" desc:"calcium decay time constant, in msec"`
	C0    float64 `def:"2e-4" desc:"resting calcium concentration"`
}

func (cp *CaParams) Defaults() {
	cp.Alpha = -50e-6
	cp.Tau = 5
	cp.C0 = 2e-4
}

func (cp *CaParams) Update() {
}

// DCa returns the derivative of calcium concentration ca given T current it
func (cp *CaParams) DCa(ca, it float64) float64 {
	return cp.Alpha*it - (ca-cp.C0)/cp.Tau
}

// SS returns the steady state calcium concentration at constant T current it
func (cp *CaParams) SS(it float64) float64 {
	return cp.C0 + cp.Tau*cp.Alpha*it
}
