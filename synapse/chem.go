// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package synapse

import (
	"time"

	"github.com/emer/emergent/erand"
	"github.com/goki/mat32"
)

///////////////////////////////////////////////////////////////////////
//  chem.go contains the neurotransmitter and neuromodulator pools

// synapse.Cleft is the glutamatergic synaptic cleft: vesicular release,
// reuptake / diffusion clearance, and presynaptic spike tracking.
type Cleft struct {
	Glu          float32         `desc:"current glutamate concentration in the cleft (mM)"`
	ReleaseAmt   float32         `def:"1.2" desc:"amount of glutamate added per vesicular release event (mM)"`
	ClearRate    float32         `def:"0.5" desc:"amount of glutamate removed per clearance, simulating reuptake and diffusion (mM per tick)"`
	Noise        erand.RndParams `view:"inline" desc:"gaussian perturbation of the release amount, simulating stochastic vesicle release -- the perturbed increment is floored at zero so release never removes glutamate -- set Var = 0 for deterministic release"`
	LastSpike    string          `desc:"RFC3339 timestamp of the most recent presynaptic spike, empty if none"`
	SpikeCount   int             `desc:"total number of presynaptic spikes recorded"`
	SpikeHistory []string        `desc:"ordered RFC3339 timestamps of all recorded presynaptic spikes -- append-only"`
}

func (cl *Cleft) Defaults() {
	cl.ReleaseAmt = 1.2
	cl.ClearRate = 0.5
	cl.Noise.Dist = erand.Gaussian
	cl.Noise.Mean = 0
	cl.Noise.Var = 0.1
}

func (cl *Cleft) Init() {
	cl.Glu = 0
	cl.LastSpike = ""
	cl.SpikeCount = 0
	cl.SpikeHistory = nil
}

// Release adds the release amount to the cleft, perturbed by release
// noise generated from rnd.  The increment is floored at zero before
// addition.
func (cl *Cleft) Release(rnd erand.Rand) {
	amt := cl.ReleaseAmt + float32(cl.Noise.Gen(-1, rnd))
	cl.Glu += mat32.Max(amt, 0)
}

// Clear removes glutamate at the clearance rate, floored at zero.
func (cl *Cleft) Clear() {
	cl.Glu = mat32.Max(cl.Glu-cl.ClearRate, 0)
}

// RecordSpike records a presynaptic spike at the given time: updates the
// last spike time, increments the count, and appends to the history.
func (cl *Cleft) RecordSpike(now time.Time) {
	ts := now.Format(time.RFC3339Nano)
	cl.LastSpike = ts
	cl.SpikeCount++
	cl.SpikeHistory = append(cl.SpikeHistory, ts)
}

// RecentSpikeCount returns the number of history spikes whose age relative
// to now is within window, inclusive.  Unparseable entries are skipped.
func (cl *Cleft) RecentSpikeCount(now time.Time, window time.Duration) int {
	n := 0
	for _, ts := range cl.SpikeHistory {
		st, err := time.Parse(time.RFC3339Nano, ts)
		if err != nil {
			continue
		}
		if now.Sub(st) <= window {
			n++
		}
	}
	return n
}

// synapse.DaCleft is the dopaminergic cleft: phasic dopamine bursts and
// transporter-mediated clearance.
type DaCleft struct {
	Da         float32 `desc:"current dopamine concentration in the cleft (mM)"`
	ReleaseAmt float32 `def:"0.8" desc:"amount of dopamine added per phasic release event (mM)"`
	ClearRate  float32 `def:"0.1" desc:"amount of dopamine removed per clearance, simulating transporter action (mM per tick)"`
}

func (dc *DaCleft) Defaults() {
	dc.ReleaseAmt = 0.8
	dc.ClearRate = 0.1
}

func (dc *DaCleft) Init() {
	dc.Da = 0
}

// Release adds the fixed release amount of dopamine to the cleft.
func (dc *DaCleft) Release() {
	dc.Da += dc.ReleaseAmt
}

// Clear removes dopamine at the clearance rate, floored at zero.
func (dc *DaCleft) Clear() {
	dc.Da = mat32.Max(dc.Da-dc.ClearRate, 0)
}
