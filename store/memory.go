// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package store

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/emer/synapse/synapse"
)

var errInitialized = errors.New("store is not initialized")

// MemoryStore keeps encoded synapse records in a map.  Records round-trip
// through the codec so stored state is isolated from later mutation of
// the saved synapse.  All methods require a prior Init, reporting
// errInitialized otherwise, same as the sqlite backend.
type MemoryStore struct {
	mu   sync.RWMutex
	recs map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Init(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.recs = make(map[string][]byte)
	return nil
}

func (s *MemoryStore) SaveSynapse(_ context.Context, sy *synapse.Synapse) error {
	payload, err := EncodeSynapse(sy)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.recs == nil {
		return errInitialized
	}
	s.recs[sy.Name()] = payload
	return nil
}

func (s *MemoryStore) GetSynapse(_ context.Context, name string) (*synapse.Synapse, bool, error) {
	s.mu.RLock()
	if s.recs == nil {
		s.mu.RUnlock()
		return nil, false, errInitialized
	}
	payload, ok := s.recs[name]
	s.mu.RUnlock()

	if !ok {
		return nil, false, nil
	}
	sy, err := DecodeSynapse(payload)
	if err != nil {
		return nil, false, err
	}
	return sy, true, nil
}

func (s *MemoryStore) DeleteSynapse(_ context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.recs == nil {
		return errInitialized
	}
	delete(s.recs, name)
	return nil
}

func (s *MemoryStore) ListSynapses(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.recs == nil {
		return nil, errInitialized
	}
	names := make([]string, 0, len(s.recs))
	for nm := range s.recs {
		names = append(names, nm)
	}
	sort.Strings(names)
	return names, nil
}

func (s *MemoryStore) Close() error {
	return nil
}
