// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rk

// Time contains the timing state and parameters for integrating a model
type Time struct {

	// accumulated amount of simulated time, in msec, at the committed state
	Time float64

	// number of completed integration steps since the last Reset
	Step int

	// integration step size in msec.  Fixed for the duration of a run.
	Dt float64 `def:"0.1"`
}

// NewTime returns a new Time struct with default parameters
func NewTime() *Time {
	tm := &Time{}
	tm.Defaults()
	return tm
}

// Defaults sets default values
func (tm *Time) Defaults() {
	tm.Dt = 0.1
}

// Reset resets the counters all back to zero
func (tm *Time) Reset() {
	tm.Time = 0
	tm.Step = 0
	if tm.Dt == 0 {
		tm.Defaults()
	}
}

// StepInc increments at the step level, after a step has been committed
func (tm *Time) StepInc() {
	tm.Step++
	tm.Time = float64(tm.Step) * tm.Dt
}

// SlotTime returns the simulated time of the values held in slot s
// during the current step.
func (tm *Time) SlotTime(s Stages) float64 {
	return tm.Time + C[s]*tm.Dt
}
