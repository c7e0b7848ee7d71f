// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package synapse

import "github.com/goki/mat32"

///////////////////////////////////////////////////////////////////////
//  spine.go contains the electrical substrate and the local Ca2+ store

// synapse.Membrane is the spine-head membrane potential, depolarized each
// tick by a back-propagating action potential and reset to rest at tick end.
type Membrane struct {
	RestPot    float32 `def:"-70" desc:"resting membrane potential (mV)"`
	Pot        float32 `desc:"current membrane potential (mV) -- either rest or rest + DepolDelta at tick boundaries"`
	DepolDelta float32 `def:"20" desc:"depolarization above rest produced by the back-propagating action potential (mV)"`
}

func (mb *Membrane) Defaults() {
	mb.RestPot = -70
	mb.DepolDelta = 20
}

func (mb *Membrane) Init() {
	mb.Pot = mb.RestPot
}

// Depolarize sets the potential to the depolarized value, simulating a
// back-propagating action potential.  Unconditional: independent of NMDA state.
func (mb *Membrane) Depolarize() {
	mb.Pot = mb.RestPot + mb.DepolDelta
}

// Reset restores the membrane potential to rest.
func (mb *Membrane) Reset() {
	mb.Pot = mb.RestPot
}

// synapse.Spine is the postsynaptic spine head: local Ca2+ concentration and
// PKA-modulated calcium sensitivity, with structural growth / shrinkage
// expressed as sensitivity changes.
type Spine struct {
	Ca       float32 `desc:"local calcium concentration (uM)"`
	CaSens   float32 `def:"1" min:"0.1" desc:"calcium sensitivity multiplier on NMDA influx -- recomputed from PKA activity each tick, plus structural growth / shrinkage -- floored at 0.1"`
	BufCap   float32 `def:"2" desc:"buffer ceiling -- free calcium is clamped here before pump extrusion"`
	PumpRate float32 `def:"0.2" desc:"fixed pump extrusion per tick, with the result floored at zero"`
}

func (sp *Spine) Defaults() {
	sp.CaSens = 1
	sp.BufCap = 2
	sp.PumpRate = 0.2
}

func (sp *Spine) Init() {
	sp.Ca = 0
	sp.CaSens = 1
}

// Influx increases local calcium by the given amount.
func (sp *Spine) Influx(amt float32) {
	sp.Ca += amt
}

// BufferPump limits free calcium to the buffer ceiling, then extrudes at
// the pump rate, floored at zero.  Clamp before pump: order matters.
func (sp *Spine) BufferPump() {
	if sp.Ca > sp.BufCap {
		sp.Ca = sp.BufCap
	}
	sp.Ca = mat32.Max(sp.Ca-sp.PumpRate, 0)
}

// ClearCa resets calcium to zero, simulating rapid clearance after a spike.
func (sp *Spine) ClearCa() {
	sp.Ca = 0
}

// ModSens recomputes calcium sensitivity from PKA activity.
func (sp *Spine) ModSens(pkaAct float32) {
	sp.CaSens = 1 + 0.5*pkaAct
}

// Grow increases sensitivity, simulating structural enlargement.
func (sp *Spine) Grow(delta float32) {
	sp.CaSens += delta
}

// Shrink decreases sensitivity, simulating shrinkage, floored at 0.1.
func (sp *Spine) Shrink(delta float32) {
	sp.CaSens = mat32.Max(sp.CaSens-delta, 0.1)
}
