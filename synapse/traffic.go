// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package synapse

import (
	"github.com/goki/ki/ints"
	"github.com/goki/mat32"
)

///////////////////////////////////////////////////////////////////////
//  traffic.go contains the AMPA receptor pools and trafficking rates

// synapse.Endosome is the recycling endosome: the reserve pool of AMPA
// receptors available for insertion into the PSD.
type Endosome struct {
	N int `def:"100" desc:"number of AMPA receptors in the reserve pool"`
}

func (en *Endosome) Defaults() {
	en.N = 100
}

// Remove takes up to n receptors from the pool, returning the number
// actually removed (possibly 0 -- an empty pool is not an error).
func (en *Endosome) Remove(n int) int {
	act := ints.MinInt(en.N, n)
	en.N -= act
	return act
}

// Add returns receptors to the pool.
func (en *Endosome) Add(n int) {
	en.N += n
}

// synapse.PSD is the postsynaptic density: AMPA receptors currently
// inserted at the synapse.  Its count is the activity proxy sensed by the
// astrocyte and by homeostatic scaling.
type PSD struct {
	N int `def:"20" desc:"number of AMPA receptors at the postsynaptic density"`
}

func (ps *PSD) Defaults() {
	ps.N = 20
}

// Add inserts receptors into the density.
func (ps *PSD) Add(n int) {
	ps.N += n
}

// Remove takes up to n receptors from the density, returning the number
// actually removed.
func (ps *PSD) Remove(n int) int {
	act := ints.MinInt(ps.N, n)
	ps.N -= act
	return act
}

// synapse.TrafficParams are the rates converting weight changes into
// receptor insertion (LTP) vs. removal (LTD) counts.
type TrafficParams struct {
	InsertRate float32 `def:"5" desc:"receptors inserted per unit of positive weight change"`
	RemoveRate float32 `def:"5" desc:"receptors removed per unit of negative weight change"`
	SpineDelta float32 `def:"0.05" desc:"spine sensitivity growth (insertion) or shrinkage (removal) accompanying trafficking"`
}

func (tp *TrafficParams) Defaults() {
	tp.InsertRate = 5
	tp.RemoveRate = 5
	tp.SpineDelta = 0.05
}

// Insertion returns the number of receptors to insert for a positive
// weight change (truncated toward zero).
func (tp *TrafficParams) Insertion(dwt float32) int {
	return int(dwt * tp.InsertRate)
}

// Removal returns the number of receptors to remove for a negative
// weight change (truncated toward zero).
func (tp *TrafficParams) Removal(dwt float32) int {
	return int(mat32.Abs(dwt) * tp.RemoveRate)
}
