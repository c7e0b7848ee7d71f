// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package synapse

import "github.com/goki/ki/kit"

///////////////////////////////////////////////////////////////////////
//  log.go contains the event log types

// EventKinds are the kinds of events recorded in a synapse history log.
type EventKinds int

//go:generate stringer -type=EventKinds

var KiT_EventKinds = kit.Enums.AddEnum(EventKindsN, kit.NotBitFlag, nil)

func (ev EventKinds) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *EventKinds) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }

// The event kinds
const (
	// Plasticity is the per-tick STDP weight update event
	Plasticity EventKinds = iota

	// Eliminated means the weight collapsed and the synapse was pruned
	Eliminated

	// Formed means the synapse was formed or reactivated at a restored weight
	Formed

	EventKindsN
)

// LogEntry is one record in a synapse history log.
type LogEntry struct {
	Time  string     `json:"time" desc:"RFC3339 timestamp of the event"`
	Kind  EventKinds `json:"kind" desc:"kind of event"`
	Event string     `json:"event" desc:"free-text description of the event"`
}

// EventLog is an explicit log sink owned by the caller, optionally capped.
// It replaces any notion of an ambient process-wide log: create one at
// process start and pass it to Tick (or nil to not collect).
type EventLog struct {
	Max     int        `desc:"maximum number of entries to retain -- 0 means unbounded -- the oldest entries are dropped when over"`
	Entries []LogEntry `desc:"retained entries, oldest first"`
}

// NewEventLog returns a log sink retaining at most max entries (0 = unbounded).
func NewEventLog(max int) *EventLog {
	return &EventLog{Max: max}
}

// Add appends entries, dropping the oldest if over Max.
func (el *EventLog) Add(ents ...LogEntry) {
	el.Entries = append(el.Entries, ents...)
	if el.Max > 0 && len(el.Entries) > el.Max {
		over := len(el.Entries) - el.Max
		n := copy(el.Entries, el.Entries[over:])
		el.Entries = el.Entries[:n]
	}
}

// Reset discards all retained entries.
func (el *EventLog) Reset() {
	el.Entries = el.Entries[:0]
}
