// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package thalcort

import (
	"fmt"

	"github.com/goki/ki/kit"
)

// CortexVars are the state variables of the cortical module
type CortexVars int32

//go:generate stringer -type=CortexVars

var KiT_CortexVars = kit.Enums.AddEnum(CortexVarsN, kit.NotBitFlag, nil)

func (ev CortexVars) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *CortexVars) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }

// The cortical state variables
const (
	// Ve is the mean membrane voltage of the excitatory (pyramidal) population
	Ve CortexVars = iota

	// Vi is the mean membrane voltage of the inhibitory population
	Vi

	// Na is the intracellular sodium concentration of the excitatory population
	Na

	// PhiEE is the post-synaptic potential of excitatory input onto excitatory cells
	PhiEE

	// PhiEI is the post-synaptic potential of excitatory input onto inhibitory cells
	PhiEI

	// PhiIE is the post-synaptic potential of inhibitory input onto excitatory cells
	PhiIE

	// PhiII is the post-synaptic potential of inhibitory input onto inhibitory cells
	PhiII

	// PhiE is the axonal flux of the excitatory population, exchanged with the thalamus
	PhiE

	// XEE is the rate of change of PhiEE
	XEE

	// XEI is the rate of change of PhiEI
	XEI

	// XIE is the rate of change of PhiIE
	XIE

	// XII is the rate of change of PhiII
	XII

	// YE is the rate of change of PhiE, which receives the noise
	YE

	CortexVarsN
)

// ThalamusVars are the state variables of the thalamic module
type ThalamusVars int32

//go:generate stringer -type=ThalamusVars

var KiT_ThalamusVars = kit.Enums.AddEnum(ThalamusVarsN, kit.NotBitFlag, nil)

func (ev ThalamusVars) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *ThalamusVars) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }

// The thalamic state variables
const (
	// Vt is the mean membrane voltage of the thalamocortical relay (TC) population
	Vt ThalamusVars = iota

	// Vr is the mean membrane voltage of the reticular (RE) population
	Vr

	// Ca is the intracellular calcium concentration of TC cells
	Ca

	// PhiTT is the post-synaptic potential of excitatory input onto TC cells
	PhiTT

	// PhiTR is the post-synaptic potential of excitatory input onto RE cells
	PhiTR

	// PhiRT is the post-synaptic potential of inhibitory input onto TC cells
	PhiRT

	// PhiRR is the post-synaptic potential of inhibitory input onto RE cells
	PhiRR

	// PhiT is the axonal flux of the TC population, exchanged with the cortex
	PhiT

	// XTT is the rate of change of PhiTT
	XTT

	// XTR is the rate of change of PhiTR
	XTR

	// XRT is the rate of change of PhiRT
	XRT

	// XRR is the rate of change of PhiRR
	XRR

	// YT is the rate of change of PhiT, which receives the noise
	YT

	// HTT is the inactivation of the T current in TC cells
	HTT

	// HTR is the inactivation of the T current in RE cells
	HTR

	// MTT is the activation of the T current in TC cells
	MTT

	// MTR is the activation of the T current in RE cells
	MTR

	// MH is the open fraction of h channels
	MH

	// MH2 is the fraction of h channels locked open by the Ca-bound protein
	MH2

	// PH is the fraction of the regulating protein bound with Ca
	PH

	ThalamusVarsN
)

// CortexVarsMap maps variable names to CortexVars
var CortexVarsMap map[string]CortexVars

// ThalamusVarsMap maps variable names to ThalamusVars
var ThalamusVarsMap map[string]ThalamusVars

func init() {
	CortexVarsMap = make(map[string]CortexVars, int(CortexVarsN))
	for v := Ve; v < CortexVarsN; v++ {
		CortexVarsMap[v.String()] = v
	}
	ThalamusVarsMap = make(map[string]ThalamusVars, int(ThalamusVarsN))
	for v := Vt; v < ThalamusVarsN; v++ {
		ThalamusVarsMap[v.String()] = v
	}
}

// CortexVarByName returns the cortical variable of given name
func CortexVarByName(nm string) (CortexVars, error) {
	v, ok := CortexVarsMap[nm]
	if !ok {
		return CortexVarsN, fmt.Errorf("thalcort: cortex variable named: %s not found", nm)
	}
	return v, nil
}

// ThalamusVarByName returns the thalamic variable of given name
func ThalamusVarByName(nm string) (ThalamusVars, error) {
	v, ok := ThalamusVarsMap[nm]
	if !ok {
		return ThalamusVarsN, fmt.Errorf("thalcort: thalamus variable named: %s not found", nm)
	}
	return v, nil
}

// CortexState holds one value of every cortical variable, e.g., the
// contents of one stage slot, or the derivatives computed from it.
type CortexState [CortexVarsN]float64

// ThalamusState holds one value of every thalamic variable
type ThalamusState [ThalamusVarsN]float64
