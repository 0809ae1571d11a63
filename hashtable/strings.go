// Copyright (c) 2023 Arista Networks, Inc.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

package hashtable

import "hash/maphash"

// NewStrings returns a Table keyed by string, hashed with a fresh
// per-instance hash/maphash seed. This is the convenience constructor
// most callers want; New remains available for callers with their own
// key type and hash function.
func NewStrings[V any](size int) *Table[string, V] {
	seed := maphash.MakeSeed()
	return New[string, V](size, func(k string) uint64 {
		return maphash.String(seed, k)
	})
}
