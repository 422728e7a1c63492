// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package thalcort

import (
	"compress/gzip"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/emer/emergent/timer"
	"github.com/emer/thalcort/rk"
)

// Network owns one cortex and one thalamus, wired to each other, and
// advances them in lock-step: both modules write stage k before either
// writes stage k+1, and both commit together.
type Network struct {
	Params   NetworkParams          `desc:"parameters the network was built with"`
	Cortex   *Cortex                `desc:"the cortical module"`
	Thalamus *Thalamus              `desc:"the thalamic module"`
	Time     rk.Time                `desc:"simulated time and step counter"`
	FunTimes map[string]*timer.Time `view:"-" desc:"timers for each major function (step phase)"`
	WaitGp   sync.WaitGroup         `view:"-" desc:"wait group for the per-stage barrier in Parallel mode"`
}

// NewNetwork validates the parameters, builds both modules and wires them.
// The cortex noise is seeded with np.Seed and the thalamus with np.Seed+1.
func NewNetwork(np *NetworkParams) (*Network, error) {
	nt := &Network{Params: *np}
	nt.Params.Update()
	if err := nt.Params.Validate(); err != nil {
		return nil, err
	}
	cp := nt.Params.Cortex
	cp.Noise.Seed = nt.Params.Seed
	tp := nt.Params.Thalamus
	tp.Noise.Seed = nt.Params.Seed + 1

	var err error
	nt.Cortex, err = NewCortex(&cp, &nt.Params.Syn, nt.Params.Dt)
	if err != nil {
		return nil, err
	}
	nt.Thalamus, err = NewThalamus(&tp, &nt.Params.Syn, nt.Params.Dt)
	if err != nil {
		return nil, err
	}
	if err := nt.Cortex.Wire(nt.Thalamus); err != nil {
		return nil, err
	}
	if err := nt.Thalamus.Wire(nt.Cortex); err != nil {
		return nil, err
	}
	nt.Time.Dt = nt.Params.Dt
	nt.Time.Reset()
	nt.FunTimes = make(map[string]*timer.Time)
	return nt, nil
}

// Modules returns the two modules in the order they are advanced
func (nt *Network) Modules() []Module {
	return []Module{nt.Cortex, nt.Thalamus}
}

// SetInput sets the constant drive into the thalamic relay population
func (nt *Network) SetInput(in float64) {
	nt.Thalamus.SetInput(in)
}

// Reset returns both modules to their initial state, reseeds the
// noise and resets the time.  The input is kept.
func (nt *Network) Reset() {
	nt.Cortex.InitState()
	nt.Thalamus.InitState()
	nt.Cortex.Noise.Seed(nt.Params.Seed)
	nt.Thalamus.Noise.Seed(nt.Params.Seed + 1)
	nt.Time.Reset()
}

// Step advances both modules by one RK4 step of Dt.  If CheckFinite
// is set, a *NonFiniteError is returned as soon as the committed state
// of either module is not finite.
func (nt *Network) Step() error {
	nt.FunTimerStart("Step")
	defer nt.FunTimerStop("Step")
	for s := rk.Stage1; s <= rk.Stage4; s++ {
		if err := nt.SetRK(s); err != nil {
			return err
		}
	}
	for _, md := range nt.Modules() {
		if err := md.AddRK(); err != nil {
			return err
		}
	}
	nt.Time.StepInc()
	if nt.Params.CheckFinite {
		for _, md := range nt.Modules() {
			if err := md.CheckFinite(nt.Time.Step); err != nil {
				return err
			}
		}
	}
	return nil
}

// SetRK writes stage s of both modules.  In Parallel mode the two
// modules are evaluated concurrently and both finish before returning.
func (nt *Network) SetRK(s rk.Stages) error {
	mods := nt.Modules()
	if !nt.Params.Parallel {
		for _, md := range mods {
			if err := md.SetRK(s); err != nil {
				return err
			}
		}
		return nil
	}
	errs := make([]error, len(mods))
	for i, md := range mods {
		nt.WaitGp.Add(1)
		go func(i int, md Module) {
			defer nt.WaitGp.Done()
			errs[i] = md.SetRK(s)
		}(i, md)
	}
	nt.WaitGp.Wait()
	return errors.Join(errs...)
}

// Run advances the network nsteps, calling fn (if non-nil) with the
// committed data after each step.  It stops at the first error from
// Step or fn.
func (nt *Network) Run(nsteps int, fn func(sn *Snapshot) error) error {
	for i := 0; i < nsteps; i++ {
		if err := nt.Step(); err != nil {
			return err
		}
		if fn == nil {
			continue
		}
		sn := nt.Data()
		if err := fn(&sn); err != nil {
			return err
		}
	}
	return nil
}

// Data returns a copy of the committed state of both modules
func (nt *Network) Data() Snapshot {
	return Snapshot{
		Time:     nt.Time.Time,
		Step:     nt.Time.Step,
		Input:    nt.Thalamus.Input,
		Cortex:   nt.Cortex.State(rk.Committed),
		Thalamus: nt.Thalamus.State(rk.Committed),
		Qe:       nt.Cortex.Qe(rk.Committed),
		Qi:       nt.Cortex.Qi(rk.Committed),
		Qt:       nt.Thalamus.Qt(rk.Committed),
		Qr:       nt.Thalamus.Qr(rk.Committed),
	}
}

///////////////////////////////////////////////////////////////////////
//  Checkpoints

// Checkpoint is the committed state of a network, as saved to a file.
// The noise streams are not part of it: a restored network draws from
// its streams as they currently are.
type Checkpoint struct {
	Time     float64
	Step     int
	Input    float64
	Cortex   CortexState
	Thalamus ThalamusState
}

// SaveStateJSON saves the committed state to a JSON-formatted file.
// If filename has .gz extension, then file is gzip compressed.
func (nt *Network) SaveStateJSON(filename string) error {
	fp, err := os.Create(filename)
	if err != nil {
		log.Println(err)
		return err
	}
	err = nt.writeStateFile(fp, filepath.Ext(filename) == ".gz")
	if err != nil {
		log.Println(err)
	}
	return err
}

// writeStateFile writes the committed state to w, gzip compressed if gz,
// and closes w.  The first write, flush or close error is returned.
func (nt *Network) writeStateFile(w io.WriteCloser, gz bool) error {
	var err error
	if gz {
		gzr := gzip.NewWriter(w)
		err = nt.WriteStateJSON(gzr)
		if cerr := gzr.Close(); err == nil {
			err = cerr
		}
	} else {
		err = nt.WriteStateJSON(w)
	}
	if cerr := w.Close(); err == nil {
		err = cerr
	}
	return err
}

// OpenStateJSON restores the committed state from a JSON-formatted file.
// If filename has .gz extension, then file is gzip uncompressed.
func (nt *Network) OpenStateJSON(filename string) error {
	fp, err := os.Open(filename)
	if err != nil {
		log.Println(err)
		return err
	}
	defer fp.Close()
	if filepath.Ext(filename) == ".gz" {
		gzr, err := gzip.NewReader(fp)
		if err != nil {
			log.Println(err)
			return err
		}
		defer gzr.Close()
		return nt.ReadStateJSON(gzr)
	}
	return nt.ReadStateJSON(fp)
}

// WriteStateJSON writes the committed state as JSON
func (nt *Network) WriteStateJSON(w io.Writer) error {
	sn := nt.Data()
	ck := Checkpoint{Time: sn.Time, Step: sn.Step, Input: sn.Input, Cortex: sn.Cortex, Thalamus: sn.Thalamus}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(&ck)
}

// ReadStateJSON reads a committed state written by WriteStateJSON
func (nt *Network) ReadStateJSON(r io.Reader) error {
	var ck Checkpoint
	if err := json.NewDecoder(r).Decode(&ck); err != nil {
		return fmt.Errorf("thalcort: reading state: %w", err)
	}
	nt.Cortex.SetState(&ck.Cortex)
	nt.Thalamus.SetState(&ck.Thalamus)
	nt.Thalamus.SetInput(ck.Input)
	nt.Time.Step = ck.Step
	nt.Time.Time = ck.Time
	return nil
}

///////////////////////////////////////////////////////////////////////
//  Timers

// FunTimerStart starts function timer for given function name -- ensures creation of timer
func (nt *Network) FunTimerStart(fun string) {
	ft, ok := nt.FunTimes[fun]
	if !ok {
		ft = &timer.Time{}
		nt.FunTimes[fun] = ft
	}
	ft.Start()
}

// FunTimerStop stops function timer -- timer must already exist
func (nt *Network) FunTimerStop(fun string) {
	ft := nt.FunTimes[fun]
	ft.Stop()
}

// TimerReport reports the amount of time spent in each function
func (nt *Network) TimerReport() {
	fmt.Printf("TimerReport: Parallel: %v, Steps: %v\n", nt.Params.Parallel, nt.Time.Step)
	fmt.Printf("\tFunction Name\tTotal Secs\tPct\n")
	fnms := make([]string, 0, len(nt.FunTimes))
	for k := range nt.FunTimes {
		fnms = append(fnms, k)
	}
	sort.Strings(fnms)
	pcts := make([]float64, len(fnms))
	tot := 0.0
	for i, fn := range fnms {
		pcts[i] = nt.FunTimes[fn].TotalSecs()
		tot += pcts[i]
	}
	for i, fn := range fnms {
		fmt.Printf("\t%v \t%6.4g\t%6.4g\n", fn, pcts[i], 100*(pcts[i]/tot))
	}
	fmt.Printf("\tTotal   \t%6.4g\n", tot)
}
