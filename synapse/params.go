// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package synapse

import "github.com/emer/emergent/params"

///////////////////////////////////////////////////////////////////////
//  params.go contains params-sheet application to synapse parameters

// Class satisfies the params.Styler interface for selector matching.
func (sy *Synapse) Class() string { return "" }

// TypeName satisfies the params.Styler interface: "Synapse" selectors
// match all synapses.
func (sy *Synapse) TypeName() string { return "Synapse" }

// ApplyParams applies the given parameter style Sheet to this synapse,
// e.g. {Sel: "Synapse", Params: params.Params{"Synapse.STDP.LTPThr": "2"}}.
// Returns true if any were applied, and error for any failures.
func (sy *Synapse) ApplyParams(pars *params.Sheet, setMsg bool) (bool, error) {
	return pars.Apply(sy, setMsg)
}
