// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jobio

import "testing"

func TestBlobStorePutGet(t *testing.T) {
	s := NewBlobStore()
	key := s.Put([]byte("hello"))
	if key == "" {
		t.Fatal("expected a non-empty key")
	}
	data, ok := s.Get(key)
	if !ok || string(data) != "hello" {
		t.Fatalf("Get(%q) = (%q, %v), want (\"hello\", true)", key, data, ok)
	}
	if s.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", s.Len())
	}
}

func TestBlobStoreKeysAreUnique(t *testing.T) {
	s := NewBlobStore()
	k1 := s.Put([]byte("a"))
	k2 := s.Put([]byte("b"))
	if k1 == k2 {
		t.Fatal("expected distinct keys for distinct Put calls")
	}
	if s.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", s.Len())
	}
}

func TestBlobStoreGetMissingKey(t *testing.T) {
	s := NewBlobStore()
	if _, ok := s.Get("does-not-exist"); ok {
		t.Fatal("expected Get on a missing key to report not-found")
	}
}
