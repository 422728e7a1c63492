// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package thalcort

import "github.com/emer/thalcort/rk"

// FluxSource is the view a module has of its partner: the axonal flux
// held in a given stage slot.  Implementations must be read-only.
type FluxSource interface {
	Phi(s rk.Stages) float64
}

// Staged is implemented by partners that advance through the RK stages.
// When the partner is Staged, SetRK refuses to run ahead of it.
type Staged interface {
	Stage() rk.Stages
}

// Module is one of the two mean-field modules, as driven by the Network
type Module interface {
	FluxSource
	Staged

	// Name is the module name used in error reports
	Name() string

	// Wire sets the partner module, once
	Wire(partner FluxSource) error

	// SetRK evaluates derivatives at slot target-1 and writes slot target
	SetRK(target rk.Stages) error

	// AddRK commits the step after Stage4
	AddRK() error

	// CheckFinite returns a *NonFiniteError if any committed value is not finite
	CheckFinite(step int) error
}

// Drive is a FluxSource given by a function of time, used to run one
// module isolated from its partner with a known forcing.
// The flux of slot s is F evaluated at the time of that slot within
// the current step of Time.
type Drive struct {
	F    func(t float64) float64
	Time *rk.Time
}

// NewDrive returns a Drive for function f, timed by tm
func NewDrive(f func(t float64) float64, tm *rk.Time) *Drive {
	return &Drive{F: f, Time: tm}
}

func (dr *Drive) Phi(s rk.Stages) float64 {
	return dr.F(dr.Time.SlotTime(s))
}

// ConstDrive is a FluxSource with the same flux in every slot
type ConstDrive float64

func (cd ConstDrive) Phi(s rk.Stages) float64 {
	return float64(cd)
}
