// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package thalcort

import (
	"errors"
	"fmt"
)

var (
	// ErrNotWired is returned when stepping a module before it has a partner
	ErrNotWired = errors.New("thalcort: module not wired to a partner")

	// ErrAlreadyWired is returned when wiring a module a second time
	ErrAlreadyWired = errors.New("thalcort: module already wired")

	// ErrStageOrder is returned when a stage is advanced out of order,
	// or ahead of the partner module
	ErrStageOrder = errors.New("thalcort: RK stage out of order")

	// ErrNonFinite is returned when the committed state is no longer finite
	ErrNonFinite = errors.New("thalcort: non-finite state")

	// ErrNoEquilibrium is returned when the resting state could not be found
	ErrNoEquilibrium = errors.New("thalcort: no resting equilibrium found")

	// ErrInvalidParams is returned for parameters that fail validation
	ErrInvalidParams = errors.New("thalcort: invalid parameters")
)

// NonFiniteError reports the first committed variable found to be NaN or Inf
type NonFiniteError struct {
	Module string
	Var    string
	Step   int
	Val    float64
}

func (er *NonFiniteError) Error() string {
	return fmt.Sprintf("%v: %s.%s = %v after step %d", ErrNonFinite, er.Module, er.Var, er.Val, er.Step)
}

func (er *NonFiniteError) Unwrap() error {
	return ErrNonFinite
}

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalidParams}, args...)...)
}
