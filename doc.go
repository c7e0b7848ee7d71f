// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package synapse is the overall repository for the single-synapse biochemical
simulation implemented in the Go language (golang).

This top-level of the repository has no functional code -- everything is organized
into the following sub-repositories:

* synapse: the core model and tick orchestrator: transmitter pools, receptor
gates, second-messenger cascade, spine calcium dynamics, calcium-threshold
STDP plasticity, AMPA receptor trafficking, tagging / consolidation, and
astrocytic homeostasis, all advanced one tick at a time.

* store: persistence of synapse aggregates behind a simple Store interface,
with in-memory and SQLite backends.

* examples: these actually compile into runnable programs.  examples/synrun is
the place to start: it runs one synapse for N ticks with a seeded random
source and writes the per-tick trajectory to a CSV log.  examples/bench times
batches of independent synapses.
*/
package synapse
