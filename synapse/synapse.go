// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package synapse

import (
	"time"

	"github.com/emer/emergent/erand"
)

///////////////////////////////////////////////////////////////////////
//  synapse.go contains the Synapse aggregate and its weight dynamics

// synapse.Synapse is a single glutamatergic synapse with dopaminergic
// neuromodulation: the full biochemical state from presynaptic release
// through receptor gating, spine calcium, STDP, receptor trafficking,
// tagging, and astrocytic homeostasis.  All state advances only through
// Tick or through the explicit standalone actions.
type Synapse struct {
	Nm      string        `desc:"name of the synapse, used as its key in stores and logs"`
	Cleft   Cleft         `view:"inline" desc:"glutamate in the synaptic cleft, with presynaptic spike history"`
	DaCleft DaCleft       `view:"inline" desc:"dopamine in the synaptic cleft"`
	Mem     Membrane      `view:"inline" desc:"postsynaptic membrane potential"`
	NMDA    NMDAR         `view:"inline" desc:"NMDA receptor with voltage-dependent Mg2+ block"`
	DAR     DAR           `view:"inline" desc:"dopamine receptor"`
	Cascade Cascade       `view:"inline" desc:"cAMP -> PKA second-messenger cascade"`
	Spine   Spine         `view:"inline" desc:"dendritic spine: calcium, buffering, volume"`
	STDP    STDPParams    `view:"inline" desc:"calcium-threshold STDP and metaplasticity parameters"`
	Tag     Tag           `view:"inline" desc:"synaptic tag for consolidation"`
	Pool    ProteinPool   `view:"inline" desc:"finite pool of consolidation proteins"`
	Endo    Endosome      `view:"inline" desc:"reserve pool of AMPA receptors"`
	PSD     PSD           `view:"inline" desc:"AMPA receptors at the postsynaptic density"`
	Traffic TrafficParams `view:"inline" desc:"AMPA trafficking rates"`
	Astro   Astrocyte     `view:"inline" desc:"astrocyte monitoring this synapse"`

	Wt          float32         `desc:"synaptic weight -- the principal efficacy variable"`
	WtNoise     erand.RndParams `view:"inline" desc:"additive noise on each weight update -- set Var = 0 to disable"`
	ScaleTarget float32         `def:"20" desc:"PSD receptor count targeted by homeostatic scaling"`
	ScaleEta    float32         `def:"0.001" desc:"gain of the multiplicative scaling correction"`
	ElimThr     float32         `def:"0.01" desc:"weight below which the synapse is eliminated"`
	FormThr     float32         `def:"0.1" desc:"weight above which a plastic synapse counts as formed"`

	LastPlasticity string     `desc:"RFC3339 timestamp of the most recent logged event, empty if none"`
	HistoryLog     []LogEntry `desc:"unbounded append-only event history for this synapse"`
}

// NewSynapse returns a new named synapse with default parameters and
// initialized state.
func NewSynapse(name string) *Synapse {
	sy := &Synapse{Nm: name}
	sy.Defaults()
	sy.Init()
	return sy
}

// Name returns the synapse name.
func (sy *Synapse) Name() string { return sy.Nm }

func (sy *Synapse) Defaults() {
	sy.Cleft.Defaults()
	sy.DaCleft.Defaults()
	sy.Mem.Defaults()
	sy.NMDA.Defaults()
	sy.DAR.Defaults()
	sy.Spine.Defaults()
	sy.STDP.Defaults()
	sy.Pool.Defaults()
	sy.Endo.Defaults()
	sy.PSD.Defaults()
	sy.Traffic.Defaults()
	sy.Astro.Defaults()
	sy.WtNoise.Dist = erand.Gaussian
	sy.WtNoise.Mean = 0
	sy.WtNoise.Var = 0.001
	sy.ScaleTarget = 20
	sy.ScaleEta = 0.001
	sy.ElimThr = 0.01
	sy.FormThr = 0.1
}

// Init resets all dynamic state to initial values, with Wt = 1.
// Parameters are untouched.
func (sy *Synapse) Init() {
	sy.Cleft.Init()
	sy.DaCleft.Init()
	sy.Mem.Init()
	sy.NMDA.Init()
	sy.DAR.Init()
	sy.Cascade.Init()
	sy.Spine.Init()
	sy.Tag.Init()
	sy.Astro.Init()
	sy.Wt = 1
	sy.LastPlasticity = ""
	sy.HistoryLog = nil
}

// WtUpdate applies a weight change plus additive noise from rnd.  The
// weight is not clamped: negative excursions are possible and lifecycle
// handles collapse.
func (sy *Synapse) WtUpdate(dwt float32, rnd erand.Rand) {
	sy.Wt += dwt + float32(sy.WtNoise.Gen(-1, rnd))
}

// Scaling applies multiplicative homeostatic scaling, nudging the weight
// up when the PSD is below ScaleTarget receptors and down when above.
func (sy *Synapse) Scaling() {
	sy.Wt *= 1 + sy.ScaleEta*(sy.ScaleTarget-float32(sy.PSD.N))
}

// Eliminate prunes the synapse, zeroing its weight.
func (sy *Synapse) Eliminate() {
	sy.Wt = 0
}

// Form (re)activates the synapse at the given weight.
func (sy *Synapse) Form(wt float32) {
	sy.Wt = wt
}

// LogEvent appends an event to the history log and stamps LastPlasticity.
// Every logged event counts as plasticity for lifecycle purposes.
func (sy *Synapse) LogEvent(now time.Time, kind EventKinds, event string) LogEntry {
	ent := LogEntry{Time: now.Format(time.RFC3339Nano), Kind: kind, Event: event}
	sy.LastPlasticity = ent.Time
	sy.HistoryLog = append(sy.HistoryLog, ent)
	return ent
}
