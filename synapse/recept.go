// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package synapse

import "github.com/goki/mat32"

///////////////////////////////////////////////////////////////////////
//  recept.go contains the receptor gates and second-messenger cascade

// synapse.NMDAR is the NMDA channel: Mg2+-blocked vs. open as a joint
// function of cleft glutamate and membrane potential.
type NMDAR struct {
	MgBlocked bool    `desc:"whether the Mg2+ block is in place -- the channel conducts calcium only while false"`
	GluThr    float32 `def:"1" desc:"glutamate concentration threshold for channel opening (mM)"`
	VmThr     float32 `def:"-50" desc:"membrane potential threshold for relieving the Mg2+ block (mV)"`
	CaGbar    float32 `def:"0.2" desc:"fixed calcium conductance while the channel is open"`
}

func (nr *NMDAR) Defaults() {
	nr.GluThr = 1
	nr.VmThr = -50
	nr.CaGbar = 0.2
}

func (nr *NMDAR) Init() {
	nr.MgBlocked = true
}

// TryOpen removes the Mg2+ block iff cleft glutamate and membrane potential
// are both at or above threshold, returning true if the channel opened.
// The membrane potential must be the pre-depolarization value for this tick.
func (nr *NMDAR) TryOpen(cl *Cleft, mb *Membrane) bool {
	if cl.Glu >= nr.GluThr && mb.Pot >= nr.VmThr {
		nr.MgBlocked = false
		return true
	}
	return false
}

// Reset unconditionally restores the Mg2+ block, closing the channel.
func (nr *NMDAR) Reset() {
	nr.MgBlocked = true
}

// synapse.DAR is the D1/D2 dopamine receptor: binds cleft dopamine to gate
// the cAMP / PKA cascade.
type DAR struct {
	Bound bool    `desc:"whether dopamine is currently bound"`
	Kd    float32 `def:"0.5" desc:"dissociation constant -- binds when cleft dopamine is at or above this (mM)"`
}

func (dr *DAR) Defaults() {
	dr.Kd = 0.5
}

func (dr *DAR) Init() {
	dr.Bound = false
}

// TryBind binds dopamine iff the cleft concentration is at or above Kd,
// returning true if binding occurred.
func (dr *DAR) TryBind(dc *DaCleft) bool {
	if dc.Da >= dr.Kd {
		dr.Bound = true
		return true
	}
	return false
}

// Unbind unconditionally releases bound dopamine -- idempotent.
func (dr *DAR) Unbind() {
	dr.Bound = false
}

// synapse.Cascade is the cAMP / PKA second-messenger cascade state,
// modulating spine calcium sensitivity.  There is no decay: cAMP only
// accumulates, and PKA activity is a logistic function of it.
type Cascade struct {
	CAMP   float32 `desc:"cAMP concentration -- strictly increases with each activation"`
	PKAAct float32 `desc:"PKA activity in 0..1 -- maintained as logistic(CAMP - 1)"`
}

func (cs *Cascade) Init() {
	cs.CAMP = 0
	cs.PKAAct = 0
}

// Activate increases cAMP by one unit and recomputes PKA activity.
func (cs *Cascade) Activate() {
	cs.CAMP += 1
	cs.PKAAct = Logistic(cs.CAMP - 1)
}

// Logistic is the standard logistic sigmoid 1 / (1 + e^-x).
func Logistic(x float32) float32 {
	return 1 / (1 + mat32.Exp(-x))
}
