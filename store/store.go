// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package store provides durable persistence for synapse state, with an
in-memory implementation for tests and a SQLite implementation for runs.
Get methods report absence as (zero, false, nil): a missing synapse is
not an error.
*/
package store

import (
	"context"

	"github.com/emer/synapse/synapse"
)

// Store persists full synapse state keyed by synapse name.
type Store interface {
	// Init prepares the store for use.  It must be called before any
	// other method, and is idempotent.
	Init(ctx context.Context) error

	// SaveSynapse inserts or replaces the named synapse.
	SaveSynapse(ctx context.Context, sy *synapse.Synapse) error

	// GetSynapse retrieves a synapse by name.  The bool reports whether
	// it was found.
	GetSynapse(ctx context.Context, name string) (*synapse.Synapse, bool, error)

	// DeleteSynapse removes the named synapse.  Deleting a missing
	// synapse is not an error.
	DeleteSynapse(ctx context.Context, name string) error

	// ListSynapses returns the names of all stored synapses, sorted.
	ListSynapses(ctx context.Context) ([]string, error)

	// Close releases any underlying resources.
	Close() error
}
