// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package synapse

import "time"

///////////////////////////////////////////////////////////////////////
//  tag.go contains synaptic tagging and the consolidation protein pool

// synapse.Tag marks a synapse active during wake for later consolidation.
type Tag struct {
	Tagged   bool   `desc:"whether the synapse is currently tagged"`
	TaggedAt string `desc:"RFC3339 timestamp when the tag was set, empty if untagged"`
}

func (tg *Tag) Init() {
	tg.Clear()
}

// Set marks the synapse as tagged at the given time.
func (tg *Tag) Set(now time.Time) {
	tg.Tagged = true
	tg.TaggedAt = now.Format(time.RFC3339Nano)
}

// Clear removes the tag and its timestamp.
func (tg *Tag) Clear() {
	tg.Tagged = false
	tg.TaggedAt = ""
}

// synapse.ProteinPool is the finite pool of consolidation proteins
// (BDNF, Arc) consumed by tagging events.
type ProteinPool struct {
	Available int `def:"100" desc:"number of consolidation proteins remaining"`
}

func (pp *ProteinPool) Defaults() {
	pp.Available = 100
}

// Consume uses one protein if available, reporting success.  An empty pool
// is not an error and is never escalated: tagging proceeds regardless.
func (pp *ProteinPool) Consume() bool {
	if pp.Available > 0 {
		pp.Available--
		return true
	}
	return false
}
