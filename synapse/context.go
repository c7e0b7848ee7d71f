// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package synapse

import "time"

///////////////////////////////////////////////////////////////////////
//  context.go contains the simulation timing context

// synapse.Context carries the tick counter and the simulated wall-clock
// time stamped onto spikes and log events.  Time advances by TickDur per
// tick, so runs are reproducible independent of real time: tests set Time
// explicitly, programs start it at time.Now().
type Context struct {
	Tick     int           `desc:"number of ticks run since last Reset"`
	Time     time.Time     `desc:"simulated wall-clock time for the current tick"`
	TickDur  time.Duration `def:"1ms" desc:"simulated duration of one tick"`
	SpikeWin time.Duration `def:"1s" desc:"window over which recent presynaptic spikes are counted"`
}

// NewContext returns a new Context with defaults and Time set to now.
func NewContext() *Context {
	ctx := &Context{}
	ctx.Defaults()
	ctx.Time = time.Now()
	return ctx
}

func (ctx *Context) Defaults() {
	ctx.TickDur = time.Millisecond
	ctx.SpikeWin = time.Second
}

// Reset resets the tick counter, preserving Time and durations.
func (ctx *Context) Reset() {
	ctx.Tick = 0
	if ctx.TickDur == 0 {
		ctx.Defaults()
	}
}

// TickInc advances one tick of simulated time.
func (ctx *Context) TickInc() {
	ctx.Tick++
	ctx.Time = ctx.Time.Add(ctx.TickDur)
}
