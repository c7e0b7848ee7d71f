// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package synapse

import "github.com/goki/mat32"

///////////////////////////////////////////////////////////////////////
//  astro.go contains astrocyte-mediated homeostasis

// synapse.Astrocyte senses synaptic activity and releases gliotransmitters
// that feed back into weight and calcium sensitivity -- a second weight
// update pathway running in parallel with STDP.
type Astrocyte struct {
	Activity    float32 `desc:"most recently sensed activity level (PSD receptor count)"`
	TNFAlpha    float32 `desc:"TNF-alpha level -- accumulates while activity is below 1"`
	DSerine     float32 `desc:"D-serine level -- accumulates while activity exceeds 0.5"`
	ATP         float32 `desc:"ATP level -- accumulates while activity exceeds 1"`
	ReleaseRate float32 `def:"0.1" desc:"rate of gliotransmitter accumulation and clearance"`
	TNFEff      float32 `def:"0.01" desc:"weight increment per unit of TNF-alpha in Modulate"`
	DSerEff     float32 `def:"0.01" desc:"sensitivity increment per unit of D-serine in Modulate"`
}

func (as *Astrocyte) Defaults() {
	as.ReleaseRate = 0.1
	as.TNFEff = 0.01
	as.DSerEff = 0.01
}

func (as *Astrocyte) Init() {
	as.Activity = 0
	as.TNFAlpha = 0
	as.DSerine = 0
	as.ATP = 0
}

// SenseActivity updates the monitored activity and accumulates the three
// gliotransmitters, each monotone in its own driving condition.  Levels are
// not floored here: ClearTransmitters is what bounds them below at zero.
func (as *Astrocyte) SenseActivity(act float32) {
	as.Activity = act
	as.TNFAlpha += as.ReleaseRate * (1 - act)
	as.DSerine += as.ReleaseRate * mat32.Max(act-0.5, 0)
	as.ATP += as.ReleaseRate * mat32.Max(act-1, 0)
}

// ClearTransmitters decays all three gliotransmitters toward zero by the
// release rate.  Standalone action: not invoked by the standard tick.
func (as *Astrocyte) ClearTransmitters() {
	as.TNFAlpha = mat32.Max(as.TNFAlpha-as.ReleaseRate, 0)
	as.DSerine = mat32.Max(as.DSerine-as.ReleaseRate, 0)
	as.ATP = mat32.Max(as.ATP-as.ReleaseRate, 0)
}

// Modulate applies gliotransmitter feedback to the synapse: TNF-alpha
// drives weight, D-serine drives spine calcium sensitivity.
func (as *Astrocyte) Modulate(sy *Synapse) {
	sy.Wt += as.TNFAlpha * as.TNFEff
	sy.Spine.CaSens += as.DSerine * as.DSerEff
}
