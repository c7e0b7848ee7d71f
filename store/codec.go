// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package store

import (
	"encoding/json"
	"fmt"

	"github.com/emer/synapse/synapse"
)

// CurrentSchemaVersion is the version written into every saved record.
const CurrentSchemaVersion = 1

// synRecord is the versioned on-disk envelope around synapse state.
type synRecord struct {
	SchemaVersion int              `json:"schema_version"`
	Synapse       *synapse.Synapse `json:"synapse"`
}

// EncodeSynapse serializes a synapse into a versioned JSON record.
func EncodeSynapse(sy *synapse.Synapse) ([]byte, error) {
	return json.Marshal(synRecord{SchemaVersion: CurrentSchemaVersion, Synapse: sy})
}

// DecodeSynapse deserializes a versioned JSON record, rejecting records
// with an unknown schema version.
func DecodeSynapse(data []byte) (*synapse.Synapse, error) {
	var rec synRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, err
	}
	if rec.SchemaVersion != CurrentSchemaVersion {
		return nil, fmt.Errorf("record schema version %d, want %d", rec.SchemaVersion, CurrentSchemaVersion)
	}
	if rec.Synapse == nil {
		return nil, fmt.Errorf("record has no synapse payload")
	}
	return rec.Synapse, nil
}
