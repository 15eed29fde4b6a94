// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package jobio provides the blob-key policy a job's outputs are handed
// off under: a UUIDv4 hex string per blob, matching the key format the
// external blob store of spec.md §6 expects, so a job's result map stays
// compatible with that collaborator even though the store itself is out
// of this repo's scope.
package jobio

import (
	"strings"

	"github.com/google/uuid"
)

// BlobStore is an in-memory stand-in for the external blob store: it only
// assigns keys and holds the bytes until the caller (cmd/geocruncher)
// flushes them to disk.
type BlobStore struct {
	blobs map[string][]byte
}

// NewBlobStore returns an empty store.
func NewBlobStore() *BlobStore {
	return &BlobStore{blobs: make(map[string][]byte)}
}

// Put assigns a fresh UUIDv4 hex key to data and stores it, returning the
// key.
func (s *BlobStore) Put(data []byte) string {
	key := strings.ReplaceAll(uuid.New().String(), "-", "")
	s.blobs[key] = data
	return key
}

// Get returns the blob stored under key, if any.
func (s *BlobStore) Get(key string) ([]byte, bool) {
	data, ok := s.blobs[key]
	return data, ok
}

// Keys returns every key currently held, in no particular order.
func (s *BlobStore) Keys() []string {
	keys := make([]string, 0, len(s.blobs))
	for k := range s.blobs {
		keys = append(keys, k)
	}
	return keys
}

// Len returns the number of blobs held.
func (s *BlobStore) Len() int { return len(s.blobs) }
