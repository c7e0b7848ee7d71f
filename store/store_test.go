// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/emer/emergent/erand"
	"github.com/emer/synapse/synapse"
)

func testSyn(name string) *synapse.Synapse {
	sy := synapse.NewSynapse(name)
	sy.Cleft.Noise.Var = 0
	sy.WtNoise.Var = 0
	ctx := synapse.NewContext()
	rnd := erand.NewSysRand(1)
	for i := 0; i < 3; i++ {
		sy.Tick(ctx, rnd, nil)
	}
	return sy
}

func runStoreTest(t *testing.T, st Store) {
	ctx := context.Background()
	if err := st.Init(ctx); err != nil {
		t.Fatalf("init: %v", err)
	}
	t.Cleanup(func() {
		_ = st.Close()
	})

	if _, ok, err := st.GetSynapse(ctx, "missing"); err != nil || ok {
		t.Fatalf("missing synapse: ok: %v, err: %v", ok, err)
	}

	sy := testSyn("s1")
	if err := st.SaveSynapse(ctx, sy); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := st.SaveSynapse(ctx, testSyn("s2")); err != nil {
		t.Fatalf("save: %v", err)
	}

	ld, ok, err := st.GetSynapse(ctx, "s1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !ok {
		t.Fatalf("expected synapse s1")
	}
	if ld.Name() != "s1" || ld.Wt != sy.Wt || ld.Cleft.SpikeCount != sy.Cleft.SpikeCount {
		t.Fatalf("unexpected synapse loaded: wt: %v != %v", ld.Wt, sy.Wt)
	}
	if len(ld.HistoryLog) != len(sy.HistoryLog) {
		t.Fatalf("history log len: %v != %v", len(ld.HistoryLog), len(sy.HistoryLog))
	}

	// saving again overwrites
	sy.Wt = 0.33
	if err := st.SaveSynapse(ctx, sy); err != nil {
		t.Fatalf("resave: %v", err)
	}
	ld, _, err = st.GetSynapse(ctx, "s1")
	if err != nil || ld.Wt != 0.33 {
		t.Fatalf("overwrite: wt: %v, err: %v", ld.Wt, err)
	}

	names, err := st.ListSynapses(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(names) != 2 || names[0] != "s1" || names[1] != "s2" {
		t.Fatalf("unexpected names: %v", names)
	}

	if err := st.DeleteSynapse(ctx, "s1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok, _ := st.GetSynapse(ctx, "s1"); ok {
		t.Fatalf("s1 still present after delete")
	}
	if err := st.DeleteSynapse(ctx, "s1"); err != nil {
		t.Fatalf("repeat delete: %v", err)
	}
}

func TestMemoryStore(t *testing.T) {
	runStoreTest(t, NewMemoryStore())
}

func TestSQLiteStore(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "synapse.db")
	runStoreTest(t, NewSQLiteStore(dbPath))
}

func TestMemoryStoreRequiresInit(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()
	if err := st.SaveSynapse(ctx, testSyn("s1")); err == nil {
		t.Fatalf("expected error saving before Init")
	}
	if _, _, err := st.GetSynapse(ctx, "s1"); err == nil {
		t.Fatalf("expected error getting before Init")
	}
	if err := st.DeleteSynapse(ctx, "s1"); err == nil {
		t.Fatalf("expected error deleting before Init")
	}
	if _, err := st.ListSynapses(ctx); err == nil {
		t.Fatalf("expected error listing before Init")
	}
}

func TestSQLiteStoreRequiresPath(t *testing.T) {
	st := NewSQLiteStore("")
	if err := st.Init(context.Background()); err == nil {
		t.Fatalf("expected error for empty path")
	}
}

func TestMemoryStoreIsolation(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()
	if err := st.Init(ctx); err != nil {
		t.Fatalf("init: %v", err)
	}

	sy := testSyn("iso")
	if err := st.SaveSynapse(ctx, sy); err != nil {
		t.Fatalf("save: %v", err)
	}
	saved := sy.Wt
	sy.Wt = -99 // mutate after save: stored record must be unaffected

	ld, _, err := st.GetSynapse(ctx, "iso")
	if err != nil || ld.Wt != saved {
		t.Fatalf("stored record mutated: wt: %v != %v, err: %v", ld.Wt, saved, err)
	}
}

func TestDecodeRejectsBadVersion(t *testing.T) {
	if _, err := DecodeSynapse([]byte(`{"schema_version": 99, "synapse": {}}`)); err == nil {
		t.Fatalf("expected version mismatch error")
	}
	if _, err := DecodeSynapse([]byte(`{"schema_version": 1}`)); err == nil {
		t.Fatalf("expected missing payload error")
	}
}
