// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package thalcort

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParamsDefaults(t *testing.T) {
	np := NetworkParams{}
	np.Defaults()
	require.NoError(t, np.Validate())

	assert.Equal(t, 0.1, np.Dt)
	assert.Equal(t, 30e-3, np.Cortex.Noise.Sigma)
	assert.Equal(t, 2e-3, np.Thalamus.Noise.Sigma)
	assert.Equal(t, -66.0, np.Cortex.LeakE.E)
	assert.Equal(t, -64.0, np.Cortex.LeakI.E)
	assert.Equal(t, 120.0, np.Cortex.Con.Nee)
	assert.Equal(t, 5.5, np.Thalamus.Con.Nrt)
	assert.Equal(t, 2.2, np.Thalamus.TT.Gbar)
	assert.Equal(t, 2.0, np.Thalamus.TR.Gbar)
	assert.InDelta(t, math.Pi/math.Sqrt(3)/9, np.Thalamus.TC.Slope, 1e-15)
}

func TestParamsFromArrays(t *testing.T) {
	par := []float64{25, -57, 5, 1.5, 2, 1.2, 0.01}
	con := []float64{0, 0, 8, 7}
	cp, err := CortexParamsFromArrays(par, con)
	require.NoError(t, err)
	assert.Equal(t, 25.0, cp.TauE)
	assert.Equal(t, 30.0, cp.TauI)
	assert.Equal(t, -57.0, cp.E.Theta)
	assert.Equal(t, 5.0, cp.E.Sigma)
	assert.InDelta(t, math.Pi/math.Sqrt(3)/5, cp.E.Slope, 1e-15)
	assert.Equal(t, 1.5, cp.KNa.AlphaNa)
	assert.Equal(t, 2.0, cp.KNa.TauNa)
	assert.Equal(t, 1.2, cp.KNa.Gbar)
	assert.Equal(t, 0.01, cp.Noise.Sigma)
	assert.Equal(t, 8.0, cp.Con.Nte)
	assert.Equal(t, 7.0, cp.Con.Nti)
	assert.Equal(t, 120.0, cp.Con.Nee)

	_, err = CortexParamsFromArrays(par[:6], con)
	assert.ErrorIs(t, err, ErrInvalidParams)
	_, err = CortexParamsFromArrays(par, con[:3])
	assert.ErrorIs(t, err, ErrInvalidParams)
	_, err = CortexParamsFromArrays([]float64{-1, -57, 5, 1.5, 2, 1.2, 0.01}, con)
	assert.ErrorIs(t, err, ErrInvalidParams, "negative TauE")

	tp, err := ThalamusParamsFromArrays([]float64{12, 9})
	require.NoError(t, err)
	assert.Equal(t, 12.0, tp.Con.Net)
	assert.Equal(t, 9.0, tp.Con.Ner)
	_, err = ThalamusParamsFromArrays([]float64{12})
	assert.ErrorIs(t, err, ErrInvalidParams)
}

func TestParamsValidate(t *testing.T) {
	bad := []struct {
		name string
		set  func(np *NetworkParams)
	}{
		{"Dt must", func(np *NetworkParams) { np.Dt = 0 }},
		{"Dt must", func(np *NetworkParams) { np.Dt = math.Inf(1) }},
		{"syn GammaE", func(np *NetworkParams) { np.Syn.GammaE = -1 }},
		{"syn Nu", func(np *NetworkParams) { np.Syn.Nu = math.NaN() }},
		{"cortex TauI", func(np *NetworkParams) { np.Cortex.TauI = 0 }},
		{"cortex Con.Nee", func(np *NetworkParams) { np.Cortex.Con.Nee = -1 }},
		{"cortex Noise.Sigma", func(np *NetworkParams) { np.Cortex.Noise.Sigma = -0.1 }},
		{"thalamus TauR", func(np *NetworkParams) { np.Thalamus.TauR = -30 }},
		{"thalamus Con.Ner", func(np *NetworkParams) { np.Thalamus.Con.Ner = math.NaN() }},
		{"thalamus H.Eh", func(np *NetworkParams) { np.Thalamus.H.Eh = math.Inf(-1) }},
	}
	for _, b := range bad {
		np := NetworkParams{}
		np.Defaults()
		b.set(&np)
		err := np.Validate()
		if !errors.Is(err, ErrInvalidParams) {
			t.Errorf("Validate %s: expected ErrInvalidParams, got: %v\n", b.name, err)
		} else {
			assert.Contains(t, err.Error(), b.name)
		}
		_, err = NewNetwork(&np)
		if !errors.Is(err, ErrInvalidParams) {
			t.Errorf("NewNetwork %s: expected ErrInvalidParams, got: %v\n", b.name, err)
		}
	}
}

func TestParamsValidateOrder(t *testing.T) {
	// the first bad parameter in declaration order is always reported
	for i := 0; i < 20; i++ {
		cp := CortexParams{}
		cp.Defaults()
		cp.Con.Nii = -1
		cp.TauE = 0
		cp.KNa.EK = math.NaN()
		err := cp.Validate()
		require.ErrorIs(t, err, ErrInvalidParams)
		assert.Contains(t, err.Error(), "cortex TauE")

		tp := ThalamusParams{}
		tp.Defaults()
		tp.H.NP = math.Inf(1)
		tp.Ca.C0 = -1
		err = tp.Validate()
		require.ErrorIs(t, err, ErrInvalidParams)
		assert.Contains(t, err.Error(), "thalamus Ca.C0")
	}
	tp := ThalamusParams{}
	tp.Defaults()
	tp.H.NP = math.Inf(1)
	assert.Contains(t, tp.Validate().Error(), "thalamus H.NP must be finite")
}

func TestVarsByName(t *testing.T) {
	for v := Ve; v < CortexVarsN; v++ {
		got, err := CortexVarByName(v.String())
		assert.NoError(t, err)
		assert.Equal(t, v, got)
	}
	for v := Vt; v < ThalamusVarsN; v++ {
		got, err := ThalamusVarByName(v.String())
		assert.NoError(t, err)
		assert.Equal(t, v, got)
	}
	_, err := CortexVarByName("Vt")
	assert.Error(t, err)
	_, err = ThalamusVarByName("Bogus")
	assert.Error(t, err)
}
