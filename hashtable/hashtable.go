// Copyright (c) 2023 Arista Networks, Inc.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

// Package hashtable implements a fixed-capacity, open-addressed hash
// table with linear probing and tombstones, paired with an auxiliary
// order list (see internal/list) that tracks insertion/update order so
// that the oldest and newest entries can be found in O(1). It is used
// as a bounded cache: callers evict the least-recently-written entry
// with First followed by Delete.
//
// Unlike hashmap.Hashmap in this module's lineage, a Table never grows:
// size is fixed at construction. Instead of resizing under load, it
// rehashes in place to reclaim tombstones once they dominate the table.
package hashtable

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"

	"github.com/aristanetworks/tickstream/internal/list"
)

type slotState uint8

const (
	empty slotState = iota
	occupied
	tombstone
)

type slot[K comparable, V any] struct {
	state  slotState
	hash   uint64
	key    K
	value  V
	handle list.Handle
}

// Table is a fixed-capacity hash table of K to V with recency tracking.
type Table[K comparable, V any] struct {
	seed    uint64
	slots   []slot[K, V]
	scratch []slot[K, V]
	size    int
	count   int
	deleted int
	hash    func(K) uint64
	order   *list.List[K]
}

// New constructs a Table of the given fixed size using hash to derive
// slot positions from keys. A fresh per-instance random seed is XORed
// into every hash, so two tables with the same hash function never
// probe identically, defending against adversarial key distributions
// chosen to collide against one specific seed.
func New[K comparable, V any](size int, hash func(K) uint64) *Table[K, V] {
	if size <= 0 {
		panic("hashtable: size must be positive")
	}
	return &Table[K, V]{
		seed:    randomSeed(),
		slots:   make([]slot[K, V], size),
		scratch: make([]slot[K, V], size),
		size:    size,
		hash:    hash,
		order:   list.New[K](size),
	}
}

func randomSeed() uint64 {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		panic(fmt.Sprintf("hashtable: failed to seed: %v", err))
	}
	return binary.LittleEndian.Uint64(buf[:])
}

// Len returns the number of live entries.
func (t *Table[K, V]) Len() int {
	return t.count
}

// IsEmpty reports whether the table holds no live entries.
func (t *Table[K, V]) IsEmpty() bool {
	return t.count == 0
}

func (t *Table[K, V]) position(hash uint64) int {
	return int((hash ^ t.seed) % uint64(t.size))
}

// Insert associates key with value. It returns false without mutating
// the table when the table is full, even if key is already present.
func (t *Table[K, V]) Insert(key K, value V) bool {
	if t.count >= t.size {
		return false
	}

	// A live key may sit past a tombstone on its probe path; update it
	// there rather than filling the tombstone with a duplicate.
	if s := t.lookup(key); s != nil {
		t.order.Remove(s.handle)
		s.value = value
		s.handle = t.order.PushBack(key)
		return true
	}

	hash := t.hash(key)
	position := t.position(hash)
	for steps := 0; steps < t.size; steps++ {
		s := &t.slots[position]
		switch s.state {
		case occupied:
			if s.hash == hash && s.key == key {
				t.order.Remove(s.handle)
				h := t.order.PushBack(key)
				s.value = value
				s.handle = h
				return true
			}
		case tombstone:
			h := t.order.PushBack(key)
			*s = slot[K, V]{state: occupied, hash: hash, key: key, value: value, handle: h}
			t.count++
			t.deleted--
			return true
		case empty:
			h := t.order.PushBack(key)
			*s = slot[K, V]{state: occupied, hash: hash, key: key, value: value, handle: h}
			t.count++
			return true
		}
		position = (position + 1) % t.size
	}
	panic("hashtable: probe exhausted size steps while count < size")
}

// Get returns the value associated with key, if present.
func (t *Table[K, V]) Get(key K) (V, bool) {
	if s := t.lookup(key); s != nil {
		return s.value, true
	}
	var zero V
	return zero, false
}

// GetPointer returns a pointer to the stored value for in-place
// mutation, Go's idiom for a mutable reference. The pointer is valid
// until the next call that mutates the table (Insert, Delete, rehash).
func (t *Table[K, V]) GetPointer(key K) (*V, bool) {
	if s := t.lookup(key); s != nil {
		return &s.value, true
	}
	return nil, false
}

func (t *Table[K, V]) lookup(key K) *slot[K, V] {
	hash := t.hash(key)
	position := t.position(hash)
	for steps := 0; steps < t.size; steps++ {
		s := &t.slots[position]
		switch s.state {
		case empty:
			return nil
		case occupied:
			if s.hash == hash && s.key == key {
				return s
			}
		}
		position = (position + 1) % t.size
	}
	return nil
}

// Delete removes key from the table, returning whether it was present.
// Deleting may trigger an amortized rehash to reclaim tombstones.
func (t *Table[K, V]) Delete(key K) bool {
	hash := t.hash(key)
	position := t.position(hash)
	for steps := 0; steps < t.size; steps++ {
		s := &t.slots[position]
		switch s.state {
		case empty:
			return false
		case occupied:
			if s.hash == hash && s.key == key {
				t.order.Remove(s.handle)
				*s = slot[K, V]{state: tombstone, hash: hash}
				t.count--
				t.deleted++
				t.maybeRehash()
				return true
			}
		}
		position = (position + 1) % t.size
	}
	return false
}

func (t *Table[K, V]) maybeRehash() {
	if 10*(t.count+t.deleted) < 7*t.size {
		return
	}
	if t.deleted <= t.size/3 {
		return
	}
	t.rehash()
}

func (t *Table[K, V]) rehash() {
	for i := range t.scratch {
		t.scratch[i] = slot[K, V]{}
	}
	oldSlots := t.slots
	t.slots = t.scratch
	for _, s := range oldSlots {
		if s.state != occupied {
			continue
		}
		position := t.position(s.hash)
		for {
			dst := &t.slots[position]
			if dst.state == empty {
				*dst = s
				break
			}
			position = (position + 1) % t.size
		}
	}
	t.scratch = oldSlots
	t.deleted = 0
}

// First returns the oldest live entry (by insertion/update order).
func (t *Table[K, V]) First() (K, V, bool) {
	key, ok := t.order.Front()
	if !ok {
		var zeroK K
		var zeroV V
		return zeroK, zeroV, false
	}
	value, _ := t.Get(key)
	return key, value, true
}

// Last returns the newest live entry (by insertion/update order).
func (t *Table[K, V]) Last() (K, V, bool) {
	key, ok := t.order.Back()
	if !ok {
		var zeroK K
		var zeroV V
		return zeroK, zeroV, false
	}
	value, _ := t.Get(key)
	return key, value, true
}
