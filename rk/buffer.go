// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rk

// Buffer holds one state variable across the stages of an RK4 step.
// Val[Committed] is the value at the start of the step; Val[Stage1..Stage4]
// are trial values.  K[s] is the derivative that produced Val[s].
// The stage index is always passed explicitly -- Buffer does not track
// which stage is active, the owning module does that.
type Buffer struct {
	Val [StagesN]float64
	K   [StagesN]float64

	// bit s set when slot s holds a value written since the last commit
	written uint8
}

// Init sets the committed value and clears all trial slots
func (b *Buffer) Init(v float64) {
	*b = Buffer{}
	b.Val[Committed] = v
	b.written = 1
}

// At returns the value at given stage slot
func (b *Buffer) At(s Stages) float64 {
	return b.Val[s]
}

// Written returns true if slot s holds a value for the current step.
// The committed slot is always written once the buffer is initialized.
func (b *Buffer) Written(s Stages) bool {
	return b.written&(1<<uint(s)) != 0
}

// Set stores derivative k for target stage s and writes the trial value
// Val[s] = Val[Committed] + A[s]*dt*k.  s must be one of Stage1..Stage4.
func (b *Buffer) Set(s Stages, dt, k float64) {
	b.K[s] = k
	b.Val[s] = b.Val[Committed] + A[s]*dt*k
	b.written |= 1 << uint(s)
}

// Commit folds the four stage derivatives into a new committed value
// with the classic RK4 weights, and invalidates the trial slots.
// Returns the new committed value.
func (b *Buffer) Commit(dt float64) float64 {
	b.Val[Committed] += b.Increment(dt)
	b.written = 1
	return b.Val[Committed]
}

// Increment returns the amount the committed value would change on Commit
// given the current stage derivatives.
func (b *Buffer) Increment(dt float64) float64 {
	return dt * (B[Stage1]*b.K[Stage1] + B[Stage2]*b.K[Stage2] + B[Stage3]*b.K[Stage3] + B[Stage4]*b.K[Stage4])
}
