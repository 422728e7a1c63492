// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package rk provides the fixed-step classic 4th-order Runge-Kutta machinery
shared by the mean-field modules: the stage index (Stages), the per-variable
stage buffer (Buffer) and the simulation time bookkeeping (Time).

Every state variable keeps one slot per stage.  Slot 0 (Committed) holds the
value at the start of the step, and slots 1..4 hold the trial values written
by successive stages, each computed from the slot before it.  The derivative
that produced each trial slot is kept alongside so the step can be committed
with the classic 1/6, 1/3, 1/3, 1/6 weights.
*/
package rk

import "github.com/goki/ki/kit"

// Stages index the slots of a Buffer: the committed value plus
// the four RK4 trial values.
type Stages int32

//go:generate stringer -type=Stages

var KiT_Stages = kit.Enums.AddEnum(StagesN, kit.NotBitFlag, nil)

func (ev Stages) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *Stages) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }

// The stages
const (
	// Committed is the value at the start of the step, i.e., the result of
	// the last completed step.
	Committed Stages = iota

	// Stage1 is written from derivatives evaluated at Committed
	Stage1

	// Stage2 is written from derivatives evaluated at Stage1
	Stage2

	// Stage3 is written from derivatives evaluated at Stage2
	Stage3

	// Stage4 is written from derivatives evaluated at Stage3
	Stage4

	StagesN
)

// A are the fractions of dt used to write each trial slot from the
// derivative evaluated at the previous slot.
var A = [StagesN]float64{0, 0.5, 0.5, 1, 1}

// B are the weights of the stage derivatives in the committed update.
var B = [StagesN]float64{0, 1.0 / 6.0, 2.0 / 6.0, 2.0 / 6.0, 1.0 / 6.0}

// C are the time offsets of each slot, as a fraction of dt, relative to
// the start of the step.  Derivatives for target stage s are evaluated
// at time t + C[s-1]*dt.
var C = [StagesN]float64{0, 0.5, 0.5, 1, 1}

// IsTrial returns true for the four trial slots Stage1..Stage4
func (ev Stages) IsTrial() bool {
	return ev >= Stage1 && ev <= Stage4
}

// Prev returns the slot that derivatives for this stage are evaluated at.
func (ev Stages) Prev() Stages {
	if ev <= Committed {
		return Committed
	}
	return ev - 1
}
