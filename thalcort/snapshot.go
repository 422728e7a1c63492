// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package thalcort

import "fmt"

// Snapshot is a copy of the committed state of both modules after a
// step, with the firing rates computed from it.  It is what output
// collaborators read: nothing in it refers back to the modules.
type Snapshot struct {
	Time     float64       `desc:"simulated time, in msec"`
	Step     int           `desc:"number of completed steps"`
	Input    float64       `desc:"external input into the relay population"`
	Cortex   CortexState   `desc:"committed cortical variables"`
	Thalamus ThalamusState `desc:"committed thalamic variables"`
	Qe       float64       `desc:"firing rate of the excitatory population"`
	Qi       float64       `desc:"firing rate of the inhibitory population"`
	Qt       float64       `desc:"firing rate of the relay population"`
	Qr       float64       `desc:"firing rate of the reticular population"`
}

// SnapshotVars are the variables recorded by default: voltages,
// fluxes, firing rates and the slow concentrations of both modules.
var SnapshotVars = []string{"Ve", "Vi", "Na", "PhiE", "Qe", "Qi", "Vt", "Vr", "Ca", "PhiT", "Qt", "Qr"}

// VarByName returns the value of a named variable: Time, Input, a firing
// rate (Qe, Qi, Qt, Qr) or any cortical or thalamic state variable.
func (sn *Snapshot) VarByName(nm string) (float64, error) {
	switch nm {
	case "Time":
		return sn.Time, nil
	case "Input":
		return sn.Input, nil
	case "Qe":
		return sn.Qe, nil
	case "Qi":
		return sn.Qi, nil
	case "Qt":
		return sn.Qt, nil
	case "Qr":
		return sn.Qr, nil
	}
	if v, ok := CortexVarsMap[nm]; ok {
		return sn.Cortex[v], nil
	}
	if v, ok := ThalamusVarsMap[nm]; ok {
		return sn.Thalamus[v], nil
	}
	return 0, fmt.Errorf("thalcort: snapshot variable named: %s not found", nm)
}
