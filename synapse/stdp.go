// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package synapse

///////////////////////////////////////////////////////////////////////
//  stdp.go contains the calcium-threshold plasticity rule

// synapse.STDPParams are the calcium thresholds and rates for LTP vs. LTD,
// with sliding-threshold metaplasticity.  Nothing enforces LTPThr > LTDThr:
// metaplasticity drift can cross them over many ticks, in which case the
// LTP-first check order in DWtFromCa decides (see MetaUpdate).
type STDPParams struct {
	LTPThr  float32 `def:"5" desc:"calcium threshold at or above which LTP applies"`
	LTDThr  float32 `def:"1" desc:"calcium threshold at or below which LTD applies"`
	LTPRate float32 `def:"0.01" min:"0" desc:"weight increment applied for LTP"`
	LTDRate float32 `def:"0.005" min:"0" desc:"weight decrement applied for LTD"`
	Target  float32 `def:"20" desc:"target activity level that metaplasticity drifts the thresholds toward"`
	Eta     float32 `def:"0.01" desc:"rate of metaplasticity threshold drift per tick"`
}

func (sp *STDPParams) Defaults() {
	sp.LTPThr = 5
	sp.LTDThr = 1
	sp.LTPRate = 0.01
	sp.LTDRate = 0.005
	sp.Target = 20
	sp.Eta = 0.01
}

// DWtFromCa returns the weight change for the given spine calcium level:
// +LTPRate at or above LTPThr, -LTDRate at or below LTDThr, else 0.
// The LTP branch is checked first, so if the thresholds have crossed and
// both bounds are satisfied, LTP wins.
func (sp *STDPParams) DWtFromCa(ca float32) float32 {
	switch {
	case ca >= sp.LTPThr:
		return sp.LTPRate
	case ca <= sp.LTDThr:
		return -sp.LTDRate
	}
	return 0
}

// MetaUpdate drifts both thresholds by recent activity relative to Target
// (sliding threshold metaplasticity), the LTD threshold at half the rate.
func (sp *STDPParams) MetaUpdate(activity float32) {
	del := sp.Eta * (activity - sp.Target)
	sp.LTPThr += del
	sp.LTDThr += 0.5 * del
}
