// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package synapse

import (
	"fmt"

	"github.com/emer/emergent/erand"
	"github.com/goki/mat32"
)

///////////////////////////////////////////////////////////////////////
//  tick.go contains the per-tick orchestration of all synapse dynamics
//
//  One Tick = one presynaptic spike paired with one back-propagating
//  action potential, run through the fixed phase sequence below.  Phase
//  ordering is semantic: glutamate gates NMDA before clearance, calcium
//  drives plasticity before it is cleared, trafficking and tagging see
//  the pre-noise weight change, and homeostasis sees the post-traffic
//  PSD count.

// ReleasePhase records the presynaptic spike, releases glutamate and
// dopamine into their clefts, then applies one step of clearance to both.
func (sy *Synapse) ReleasePhase(ctx *Context, rnd erand.Rand) {
	sy.Cleft.RecordSpike(ctx.Time)
	sy.Cleft.Release(rnd)
	sy.DaCleft.Release()
	sy.Cleft.Clear()
	sy.DaCleft.Clear()
}

// GatePhase attempts to open the NMDA channel against the resting
// potential, admits calcium scaled by spine sensitivity if it opened,
// then depolarizes the membrane for this tick's action potential.
func (sy *Synapse) GatePhase() {
	if sy.NMDA.TryOpen(&sy.Cleft, &sy.Mem) {
		sy.Spine.Influx(sy.NMDA.CaGbar * sy.Spine.CaSens)
	}
	sy.Mem.Depolarize()
}

// CaPhase buffers and pumps spine calcium.
func (sy *Synapse) CaPhase() {
	sy.Spine.BufferPump()
}

// SensPhase recomputes spine calcium sensitivity from PKA activity.
func (sy *Synapse) SensPhase() {
	sy.Spine.ModSens(sy.Cascade.PKAAct)
}

// BindPhase binds dopamine and activates the cAMP / PKA cascade, or
// unbinds if the cleft level is below the dissociation constant.
func (sy *Synapse) BindPhase() {
	if sy.DAR.TryBind(&sy.DaCleft) {
		sy.Cascade.Activate()
	} else {
		sy.DAR.Unbind()
	}
}

// PlasticityPhase computes the STDP weight change from spine calcium,
// applies it with noise, and logs the update with the recent presynaptic
// spike count.  Returns the pre-noise weight change, which drives the
// trafficking and tagging phases.
func (sy *Synapse) PlasticityPhase(ctx *Context, rnd erand.Rand) float32 {
	ca := sy.Spine.Ca
	dwt := sy.STDP.DWtFromCa(ca)
	sy.WtUpdate(dwt, rnd)
	pre := sy.Cleft.RecentSpikeCount(ctx.Time, ctx.SpikeWin)
	sy.LogEvent(ctx.Time, Plasticity, fmt.Sprintf("Weight update: %g, PreSpikes: %d, Ca: %.3f", dwt, pre, ca))
	return dwt
}

// TrafficPhase moves AMPA receptors between the endosome and the PSD
// according to the sign of the weight change, conserving total receptor
// count.  Weight changes past half the LTP / LTD rate also grow or
// shrink the spine.  A zero weight change moves nothing.
func (sy *Synapse) TrafficPhase(dwt float32) {
	switch {
	case dwt > 0:
		n := sy.Traffic.Insertion(dwt)
		act := sy.Endo.Remove(n)
		sy.PSD.Add(act)
		if dwt > 0.5*sy.STDP.LTPRate {
			sy.Spine.Grow(sy.Traffic.SpineDelta)
		}
	case dwt < 0:
		n := sy.Traffic.Removal(dwt)
		act := sy.PSD.Remove(n)
		sy.Endo.Add(act)
		if dwt < -0.5*sy.STDP.LTDRate {
			sy.Spine.Shrink(sy.Traffic.SpineDelta)
		}
	}
}

// TagPhase tags the synapse and consumes one consolidation protein when
// the weight change is at least the LTP rate in magnitude.  Pool
// exhaustion is silent: the tag is set either way.
func (sy *Synapse) TagPhase(ctx *Context, dwt float32) {
	if mat32.Abs(dwt) >= sy.STDP.LTPRate {
		sy.Tag.Set(ctx.Time)
		sy.Pool.Consume()
	}
}

// HomeoPhase runs the slow feedback loops against the post-traffic PSD
// receptor count: astrocytic sensing and modulation, metaplasticity
// threshold drift, and homeostatic synaptic scaling.  It then clears
// spine calcium and restores the NMDA block and resting potential,
// leaving the synapse ready for the next tick.
func (sy *Synapse) HomeoPhase() {
	act := float32(sy.PSD.N)
	sy.Astro.SenseActivity(act)
	sy.Astro.Modulate(sy)
	sy.STDP.MetaUpdate(act)
	sy.Scaling()
	sy.Spine.ClearCa()
	sy.NMDA.Reset()
	sy.Mem.Reset()
}

// LifecyclePhase prunes the synapse if the weight has collapsed below the
// elimination threshold, logging the pruning only on the tick where the
// collapse happens (wasElim is the pre-tick pruned state).  Otherwise,
// a synapse above the formation threshold with any plasticity history is
// logged as formed / reactivated.
func (sy *Synapse) LifecyclePhase(ctx *Context, wasElim bool) {
	if sy.Wt < sy.ElimThr {
		sy.Eliminate()
		if !wasElim {
			sy.LogEvent(ctx.Time, Eliminated, "Synapse eliminated (pruned)")
		}
		return
	}
	if sy.Wt > sy.FormThr && sy.LastPlasticity != "" {
		sy.LogEvent(ctx.Time, Formed, "Synapse formed/reactivated")
	}
}

// Tick advances the synapse one full simulation step, running all phases
// in order and advancing the context clock.  All noise is generated from
// rnd, so callers control seeding and synapses with separate sources
// stay fully independent.  Events generated this tick are returned and,
// if lg is non-nil, appended to it.
func (sy *Synapse) Tick(ctx *Context, rnd erand.Rand, lg *EventLog) []LogEntry {
	start := len(sy.HistoryLog)
	wasElim := sy.Wt == 0
	sy.ReleasePhase(ctx, rnd)
	sy.GatePhase()
	sy.CaPhase()
	sy.SensPhase()
	sy.BindPhase()
	dwt := sy.PlasticityPhase(ctx, rnd)
	sy.TrafficPhase(dwt)
	sy.TagPhase(ctx, dwt)
	sy.HomeoPhase()
	sy.LifecyclePhase(ctx, wasElim)
	ctx.TickInc()
	ents := sy.HistoryLog[start:]
	if lg != nil {
		lg.Add(ents...)
	}
	return ents
}
