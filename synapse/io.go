// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package synapse

import (
	"bufio"
	"compress/gzip"
	"encoding/json"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/goki/gi/gi"
)

///////////////////////////////////////////////////////////////////////
//  io.go contains JSON persistence for full synapse state

// WriteJSON writes the full synapse state (parameters and dynamics,
// including spike history and event log) as indented JSON.
func (sy *Synapse) WriteJSON(w io.Writer) error {
	b, err := json.MarshalIndent(sy, "", "\t")
	if err != nil {
		log.Println(err)
		return err
	}
	_, err = w.Write(b)
	if err != nil {
		log.Println(err)
	}
	return err
}

// ReadJSON reads full synapse state from JSON, replacing current state.
func (sy *Synapse) ReadJSON(r io.Reader) error {
	err := json.NewDecoder(r).Decode(sy)
	if err != nil {
		log.Println(err)
	}
	return err
}

// SaveJSON saves synapse state to a JSON-formatted file.  If the filename
// ends in .gz, it is gzip compressed.
func (sy *Synapse) SaveJSON(filename gi.FileName) error {
	fp, err := os.Create(string(filename))
	defer fp.Close()
	if err != nil {
		log.Println(err)
		return err
	}
	ext := filepath.Ext(string(filename))
	if ext == ".gz" {
		gzr := gzip.NewWriter(fp)
		err = sy.WriteJSON(gzr)
		gzr.Close()
	} else {
		bw := bufio.NewWriter(fp)
		err = sy.WriteJSON(bw)
		bw.Flush()
	}
	return err
}

// OpenJSON opens synapse state from a JSON-formatted file.  If the
// filename ends in .gz, it is gzip uncompressed first.
func (sy *Synapse) OpenJSON(filename gi.FileName) error {
	fp, err := os.Open(string(filename))
	defer fp.Close()
	if err != nil {
		log.Println(err)
		return err
	}
	ext := filepath.Ext(string(filename))
	if ext == ".gz" {
		gzr, err := gzip.NewReader(fp)
		if err != nil {
			log.Println(err)
			return err
		}
		defer gzr.Close()
		return sy.ReadJSON(gzr)
	}
	return sy.ReadJSON(bufio.NewReader(fp))
}
