// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package synapse

import (
	"strconv"

	"github.com/emer/etable/etable"
	"github.com/emer/etable/etensor"
)

///////////////////////////////////////////////////////////////////////
//  logging.go contains etable-based per-tick state logging

// LogPrec is precision for saving float values in logs.
var LogPrec = 4

// ConfigTickLog configures the given table to hold one row per tick with
// a column per SynapseVars variable.
func (sy *Synapse) ConfigTickLog(dt *etable.Table) {
	dt.SetMetaData("name", "TickLog")
	dt.SetMetaData("desc", "per-tick record of synapse state variables")
	dt.SetMetaData("read-only", "true")
	dt.SetMetaData("precision", strconv.Itoa(LogPrec))

	sch := etable.Schema{
		{Name: "Tick", Type: etensor.INT64, CellShape: nil, DimNames: nil},
	}
	for _, vnm := range SynapseVars {
		sch = append(sch, etable.Column{Name: vnm, Type: etensor.FLOAT64, CellShape: nil, DimNames: nil})
	}
	dt.SetFromSchema(sch, 0)
}

// LogTick records current synapse state to the given row of the table,
// growing the table as needed.  Call after Tick, with ctx.Tick - 1 as the
// row to get one row per completed tick.
func (sy *Synapse) LogTick(ctx *Context, dt *etable.Table, row int) {
	if dt.Rows <= row {
		dt.SetNumRows(row + 1)
	}
	dt.SetCellFloat("Tick", row, float64(ctx.Tick))
	for _, vnm := range SynapseVars {
		v, err := sy.VarByName(vnm)
		if err != nil {
			continue
		}
		dt.SetCellFloat(vnm, row, float64(v))
	}
}
