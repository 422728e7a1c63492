// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package thalcort is the overall repository for a mean-field model of a
cortical column coupled to a thalamic column, integrated with a stochastic
fourth-order Runge-Kutta scheme in the Go language (golang).

This top-level of the repository has no functional code -- everything is organized
into the following sub-repositories:

* thalcort: the Cortex and Thalamus modules, their parameters, and the Network
that advances them in lock-step, exchanging axonal flux at every Runge-Kutta
stage.  Also computes the coupled resting state and saves / restores states.

* rk: the stage buffer that holds the committed value and the four stage
values of one state variable, and the integration time.

* sigmoid, chans, glong: closed-form firing rate, synaptic and channel
functions used by the modules (T-type calcium, h current, KNa current, Na/K pump).

* noise: seedable Gaussian noise sources, one per stochastic variable.

* record: logs snapshots of the network into an etable.Table, saved as CSV.

* examples: these actually compile into runnable programs.  examples/tcsim
runs the network from a config file and records the results, and
examples/eqplot tabulates the gating functions.
*/
package thalcort
