// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package thalcort

import (
	"errors"
	"math"
	"path/filepath"
	"testing"

	"github.com/emer/thalcort/rk"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// quietParams returns default network parameters without noise
func quietParams() NetworkParams {
	np := NetworkParams{}
	np.Defaults()
	np.Cortex.Noise.Sigma = 0
	np.Thalamus.Noise.Sigma = 0
	return np
}

func newNet(t *testing.T, np NetworkParams) *Network {
	nt, err := NewNetwork(&np)
	require.NoError(t, err)
	return nt
}

func TestNetworkInit(t *testing.T) {
	np := NetworkParams{}
	np.Defaults()
	nt := newNet(t, np)
	cs := nt.Cortex.State(rk.Committed)
	ts := nt.Thalamus.State(rk.Committed)
	assert.Equal(t, -66.0, cs[Ve])
	assert.Equal(t, -64.0, cs[Vi])
	assert.Equal(t, 9.5, cs[Na])
	assert.Equal(t, -70.0, ts[Vt])
	assert.Equal(t, -55.0, ts[Vr])
	assert.Equal(t, 2e-4, ts[Ca])
	assert.Equal(t, 0.0, cs[PhiE])
	assert.Equal(t, 0.0, ts[PhiT])
	assert.True(t, nt.Cortex.Wired())
	assert.True(t, nt.Thalamus.Wired())
	assert.ErrorIs(t, nt.Cortex.Wire(nt.Thalamus), ErrAlreadyWired)
	assert.Len(t, nt.Modules(), 2)
	assert.Equal(t, 0, nt.Time.Step)
}

func TestRestStability(t *testing.T) {
	nt := newNet(t, quietParams())
	require.NoError(t, nt.Rest())
	assert.Equal(t, 0, nt.Time.Step, "rest does not advance time")

	cs0 := nt.Cortex.State(rk.Committed)
	ts0 := nt.Thalamus.State(rk.Committed)
	dc := nt.Cortex.Derivs(&cs0, ts0[PhiT])
	dt := nt.Thalamus.Derivs(&ts0, cs0[PhiE], 0)
	for v := Ve; v < CortexVarsN; v++ {
		if math.Abs(dc[v]) > 1.0e-8 {
			t.Errorf("cortex rest derivative %v: %v\n", v, dc[v])
		}
	}
	for v := Vt; v < ThalamusVarsN; v++ {
		if math.Abs(dt[v]) > 1.0e-8 {
			t.Errorf("thalamus rest derivative %v: %v\n", v, dt[v])
		}
	}

	require.NoError(t, nt.Run(500, nil))
	cs := nt.Cortex.State(rk.Committed)
	ts := nt.Thalamus.State(rk.Committed)
	for v := Ve; v < CortexVarsN; v++ {
		if dif := math.Abs(cs[v] - cs0[v]); dif > 1.0e-6*(1+math.Abs(cs0[v])) {
			t.Errorf("cortex drift %v: rest: %v, after: %v\n", v, cs0[v], cs[v])
		}
	}
	for v := Vt; v < ThalamusVarsN; v++ {
		if dif := math.Abs(ts[v] - ts0[v]); dif > 1.0e-6*(1+math.Abs(ts0[v])) {
			t.Errorf("thalamus drift %v: rest: %v, after: %v\n", v, ts0[v], ts[v])
		}
	}
}

func TestRestFails(t *testing.T) {
	nt := newNet(t, quietParams())
	st0 := nt.Cortex.State(rk.Committed)
	rp := RestParams{}
	rp.Defaults()
	rp.SettleMs = 0
	rp.MaxIter = 0
	err := nt.RestWith(&rp)
	assert.ErrorIs(t, err, ErrNoEquilibrium)
	assert.Equal(t, st0, nt.Cortex.State(rk.Committed), "failed rest leaves the state alone")
}

// TestCoupling drives the relay population and checks that the cortex,
// with its own recurrent excitation and inhibition removed, follows
// through the thalamocortical flux only.
func TestCoupling(t *testing.T) {
	np := quietParams()
	np.Cortex.Con.Nee = 0
	np.Cortex.Con.Nie = 0
	np.Cortex.KNa.Gbar = 0
	np.Thalamus.TT.Gbar = 0
	np.Thalamus.H.Gbar = 0
	np.Thalamus.Con.Nrt = 0
	nt := newNet(t, np)
	require.NoError(t, nt.Rest())
	base := nt.Data()

	nt.SetInput(1)
	prev := base.Qe
	err := nt.Run(3000, func(sn *Snapshot) error {
		if sn.Qe < prev-1.0e-12 {
			t.Errorf("Qe decreased at step %v: %v -> %v\n", sn.Step, prev, sn.Qe)
		}
		prev = sn.Qe
		return nil
	})
	require.NoError(t, err)
	fin := nt.Data()
	assert.Greater(t, fin.Qt, base.Qt)
	assert.Greater(t, fin.Qe, 2*base.Qe)
	assert.Equal(t, 1.0, fin.Input)
}

// TestCouplingFull drives the relay population of the complete network.
// Qe overshoots and then relaxes, so only the new resting level is checked.
func TestCouplingFull(t *testing.T) {
	nt := newNet(t, quietParams())
	require.NoError(t, nt.Rest())
	base := nt.Data()

	nt.SetInput(1)
	require.NoError(t, nt.Run(30000, nil))
	fin := nt.Data()
	assert.Greater(t, fin.Qe, 1.05*base.Qe)
	assert.Greater(t, fin.Qt, base.Qt)

	// the run has reached the resting state under the new input
	require.NoError(t, nt.Rest())
	rst := nt.Data()
	assert.InDelta(t, rst.Qe, fin.Qe, 1.0e-5)
	assert.Greater(t, rst.Qe, 1.05*base.Qe)
}

func TestParallel(t *testing.T) {
	np := NetworkParams{}
	np.Defaults()
	np.Seed = 3
	ser := newNet(t, np)
	np.Parallel = true
	par := newNet(t, np)
	ser.SetInput(0.3)
	par.SetInput(0.3)
	for i := 0; i < 200; i++ {
		require.NoError(t, ser.Step())
		require.NoError(t, par.Step())
	}
	assert.Equal(t, ser.Data(), par.Data(), "parallel and serial must be bit-identical")
}

func TestNoisePerStep(t *testing.T) {
	np := NetworkParams{}
	np.Defaults()
	nt := newNet(t, np)
	require.NoError(t, nt.Run(5, nil))
	assert.Equal(t, 20, nt.Cortex.Noise.N())
	assert.Equal(t, 20, nt.Thalamus.Noise.N())

	np.Seed = 2
	other := newNet(t, np)
	require.NoError(t, other.Run(5, nil))
	assert.NotEqual(t, nt.Data().Cortex, other.Data().Cortex, "different seeds, different trajectories")
}

func TestReset(t *testing.T) {
	np := NetworkParams{}
	np.Defaults()
	nt := newNet(t, np)
	nt.SetInput(0.2)
	require.NoError(t, nt.Run(30, nil))
	first := nt.Data()

	nt.Reset()
	assert.Equal(t, 0, nt.Time.Step)
	assert.Equal(t, 0.0, nt.Time.Time)
	assert.Equal(t, 0, nt.Cortex.Noise.N())
	require.NoError(t, nt.Run(30, nil))
	assert.Equal(t, first, nt.Data())
}

func TestRunSnapshot(t *testing.T) {
	nt := newNet(t, quietParams())
	calls := 0
	err := nt.Run(10, func(sn *Snapshot) error {
		calls++
		assert.Equal(t, calls, sn.Step)
		assert.InDelta(t, float64(calls)*0.1, sn.Time, 1.0e-9)
		for _, nm := range SnapshotVars {
			_, err := sn.VarByName(nm)
			assert.NoError(t, err, nm)
		}
		ve, _ := sn.VarByName("Ve")
		assert.Equal(t, sn.Cortex[Ve], ve)
		ca, _ := sn.VarByName("Ca")
		assert.Equal(t, sn.Thalamus[Ca], ca)
		qe, _ := sn.VarByName("Qe")
		assert.Equal(t, nt.Cortex.Params.E.Q(sn.Cortex[Ve]), qe)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 10, calls)

	sn := nt.Data()
	_, err = sn.VarByName("Bogus")
	assert.Error(t, err)

	stop := errors.New("stop")
	calls = 0
	err = nt.Run(10, func(sn *Snapshot) error {
		calls++
		if calls == 3 {
			return stop
		}
		return nil
	})
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, 13, nt.Time.Step)
}

func TestCheckpoint(t *testing.T) {
	dir := t.TempDir()
	for _, fn := range []string{"state.json", "state.json.gz"} {
		np := quietParams()
		nt := newNet(t, np)
		nt.SetInput(0.4)
		require.NoError(t, nt.Run(20, nil))
		fnm := filepath.Join(dir, fn)
		require.NoError(t, nt.SaveStateJSON(fnm))
		require.NoError(t, nt.Run(30, nil))

		rs := newNet(t, np)
		require.NoError(t, rs.OpenStateJSON(fnm))
		assert.Equal(t, 20, rs.Time.Step)
		assert.Equal(t, 0.4, rs.Thalamus.Input)
		assert.Equal(t, rk.Committed, rs.Cortex.Stage())
		require.NoError(t, rs.Run(30, nil))
		assert.Equal(t, nt.Data(), rs.Data(), fn)
	}
	nt := newNet(t, quietParams())
	assert.Error(t, nt.OpenStateJSON(filepath.Join(dir, "missing.json")))
}

var errDiskFull = errors.New("disk full")

// shortFile accepts n bytes, then fails every write, and fails Close
// with closeErr
type shortFile struct {
	n        int
	closeErr error
	closed   bool
}

func (sf *shortFile) Write(p []byte) (int, error) {
	if len(p) > sf.n {
		return 0, errDiskFull
	}
	sf.n -= len(p)
	return len(p), nil
}

func (sf *shortFile) Close() error {
	sf.closed = true
	return sf.closeErr
}

func TestCheckpointWriteErrors(t *testing.T) {
	nt := newNet(t, quietParams())

	// the gzip header fits, the compressed body is only written on Close
	sf := &shortFile{n: 10}
	assert.ErrorIs(t, nt.writeStateFile(sf, true), errDiskFull)
	assert.True(t, sf.closed)

	sf = &shortFile{n: 1 << 20, closeErr: errDiskFull}
	assert.ErrorIs(t, nt.writeStateFile(sf, false), errDiskFull)
	assert.True(t, sf.closed)
	sf = &shortFile{n: 1 << 20, closeErr: errDiskFull}
	assert.ErrorIs(t, nt.writeStateFile(sf, true), errDiskFull)

	sf = &shortFile{n: 1 << 20}
	assert.NoError(t, nt.writeStateFile(sf, true))

	assert.Error(t, nt.SaveStateJSON(filepath.Join(t.TempDir(), "nodir", "state.json.gz")))
}

func TestTimers(t *testing.T) {
	nt := newNet(t, quietParams())
	require.NoError(t, nt.Run(10, nil))
	ft, ok := nt.FunTimes["Step"]
	require.True(t, ok)
	assert.GreaterOrEqual(t, ft.TotalSecs(), 0.0)
	nt.TimerReport()
}
