// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package synapse

import "fmt"

///////////////////////////////////////////////////////////////////////
//  view.go contains the uniform variable view over synapse state

// SynapseVars are the variable names exposed through VarByName, in
// display order.  Integer counts are returned as float32.
var SynapseVars = []string{"Wt", "Glu", "Da", "Ca", "CaSens", "Vm", "CAMP", "PKAAct", "TNFAlpha", "DSerine", "ATP", "LTPThr", "LTDThr", "Reserve", "PSD", "Proteins", "SpikeCount"}

// VarsMap maps variable name to index in SynapseVars.
var VarsMap map[string]int

func init() {
	VarsMap = make(map[string]int, len(SynapseVars))
	for i, v := range SynapseVars {
		VarsMap[v] = i
	}
}

// VarNames returns the names of the variables exposed by this synapse.
func (sy *Synapse) VarNames() []string {
	return SynapseVars
}

// VarByName returns the value of the named variable, or an error if the
// name is not found in SynapseVars.
func (sy *Synapse) VarByName(varNm string) (float32, error) {
	switch varNm {
	case "Wt":
		return sy.Wt, nil
	case "Glu":
		return sy.Cleft.Glu, nil
	case "Da":
		return sy.DaCleft.Da, nil
	case "Ca":
		return sy.Spine.Ca, nil
	case "CaSens":
		return sy.Spine.CaSens, nil
	case "Vm":
		return sy.Mem.Pot, nil
	case "CAMP":
		return sy.Cascade.CAMP, nil
	case "PKAAct":
		return sy.Cascade.PKAAct, nil
	case "TNFAlpha":
		return sy.Astro.TNFAlpha, nil
	case "DSerine":
		return sy.Astro.DSerine, nil
	case "ATP":
		return sy.Astro.ATP, nil
	case "LTPThr":
		return sy.STDP.LTPThr, nil
	case "LTDThr":
		return sy.STDP.LTDThr, nil
	case "Reserve":
		return float32(sy.Endo.N), nil
	case "PSD":
		return float32(sy.PSD.N), nil
	case "Proteins":
		return float32(sy.Pool.Available), nil
	case "SpikeCount":
		return float32(sy.Cleft.SpikeCount), nil
	}
	return 0, fmt.Errorf("synapse.VarByName: variable named: %v not found", varNm)
}

// VarByIndex returns the value of the variable at the given index in
// SynapseVars.  Panics on an out-of-range index: use VarByName for a
// checked lookup.
func (sy *Synapse) VarByIndex(idx int) float32 {
	v, err := sy.VarByName(SynapseVars[idx])
	if err != nil {
		panic(err)
	}
	return v
}
