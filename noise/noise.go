// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package noise provides the seedable Gaussian sample streams that drive the
stochastic variables of the mean-field modules.

Each stochastically-forced variable owns one Source, so no generator state
is shared across variables, modules or goroutines.  A Source is a Mersenne
Twister engine composed with a normal distribution: the same seed always
yields a bit-identical sequence.
*/
package noise

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mathext/prng"
	"gonum.org/v1/gonum/stat/distuv"
)

// Params are the parameters of one Gaussian noise stream
type Params struct {
	Mean  float64 `def:"0" desc:"mean of the samples -- the thalcort modules reset it to 0 at construction"`
	Sigma float64 `min:"0" desc:"standard deviation of the samples"`
	Seed  uint64  `desc:"seed of the underlying engine"`
}

func (np *Params) Defaults() {
	np.Mean = 0
	np.Sigma = 1
	np.Seed = 1
}

// Source is an independent stream of normally distributed samples.
// It is not safe for concurrent use: each goroutine must own its Sources.
type Source struct {
	eng  *prng.MT19937
	dist distuv.Normal
	n    int
}

// NewSource returns a new Source with given parameters, seeded with np.Seed
func NewSource(np Params) *Source {
	eng := prng.NewMT19937()
	ns := &Source{eng: eng}
	ns.dist = distuv.Normal{Mu: np.Mean, Sigma: np.Sigma, Src: rand.Source(eng)}
	ns.Seed(np.Seed)
	return ns
}

// Seed restarts the stream from the given seed
func (ns *Source) Seed(seed uint64) {
	ns.eng.Seed(seed)
	ns.n = 0
}

// Sample returns the next draw.  Every call advances the engine.
func (ns *Source) Sample() float64 {
	ns.n++
	return ns.dist.Rand()
}

// N returns the number of samples drawn since the last Seed
func (ns *Source) N() int {
	return ns.n
}
