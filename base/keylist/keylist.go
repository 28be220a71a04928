// Copyright (c) 2026, Geomcore Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package keylist implements an ordered list (slice) of items,
// with a map from a key (e.g., names) to indexes, to support fast
// lookup by name while preserving a deterministic insertion order.
package keylist

import (
	"fmt"
	"slices"
)

// List implements an ordered list (slice) of Values,
// with a map from a key (e.g., names) to indexes,
// to support fast lookup by name.
// The zero value is usable without initialization.
type List[K comparable, V any] struct {
	// Values is the ordered slice of items.
	Values []V

	// Keys is the ordered list of keys, in same order as [List.Values].
	Keys []K

	// indexes is the key-to-index mapping.
	indexes map[K]int
}

// New returns a new [List].
func New[K comparable, V any]() *List[K, V] {
	return &List[K, V]{}
}

func (kl *List[K, V]) initIndexes() {
	if kl.indexes == nil {
		kl.indexes = make(map[K]int)
	}
}

func (kl *List[K, V]) rebuildIndexes() {
	kl.indexes = make(map[K]int, len(kl.Keys))
	for i, k := range kl.Keys {
		kl.indexes[k] = i
	}
}

// Reset resets the list, removing any existing elements.
func (kl *List[K, V]) Reset() {
	kl.Values = nil
	kl.Keys = nil
	kl.indexes = make(map[K]int)
}

// Set sets given key to given value, adding to the end of the list
// if not already present, and otherwise replacing with this new value.
// This is the same semantics as a Go map.
// See [List.Add] for a version that only adds and does not replace.
func (kl *List[K, V]) Set(key K, val V) {
	kl.initIndexes()
	if idx, ok := kl.indexes[key]; ok {
		kl.Values[idx] = val
		return
	}
	kl.indexes[key] = len(kl.Values)
	kl.Values = append(kl.Values, val)
	kl.Keys = append(kl.Keys, key)
}

// Add adds an item to the list with given key.
// An error is returned if the key is already on the list.
// See [List.Set] for a method that automatically replaces.
func (kl *List[K, V]) Add(key K, val V) error {
	kl.initIndexes()
	if _, ok := kl.indexes[key]; ok {
		return fmt.Errorf("keylist.Add: key %v is already on the list", key)
	}
	kl.indexes[key] = len(kl.Values)
	kl.Values = append(kl.Values, val)
	kl.Keys = append(kl.Keys, key)
	return nil
}

// At returns the value corresponding to the given key,
// with a zero value returned for a missing key.
// See [List.AtTry] for one that returns a bool for missing keys.
func (kl *List[K, V]) At(key K) V {
	if idx, ok := kl.indexes[key]; ok {
		return kl.Values[idx]
	}
	var zv V
	return zv
}

// AtTry returns the value corresponding to the given key,
// with false returned for a missing key, in case the zero value
// is not diagnostic.
func (kl *List[K, V]) AtTry(key K) (V, bool) {
	if idx, ok := kl.indexes[key]; ok {
		return kl.Values[idx], true
	}
	var zv V
	return zv, false
}

// IndexByKey returns the index of the given key, with a -1 for missing key.
func (kl *List[K, V]) IndexByKey(key K) int {
	idx, ok := kl.indexes[key]
	if !ok {
		return -1
	}
	return idx
}

// Len returns the number of items in the list.
func (kl *List[K, V]) Len() int {
	if kl == nil {
		return 0
	}
	return len(kl.Values)
}

// DeleteByIndex deletes item(s) within the index range [i:j].
// This is relatively slow because it needs to regenerate the index map.
func (kl *List[K, V]) DeleteByIndex(i, j int) {
	if j-i <= 0 {
		panic("keylist.DeleteByIndex: index range is <= 0")
	}
	kl.Keys = slices.Delete(kl.Keys, i, j)
	kl.Values = slices.Delete(kl.Values, i, j)
	kl.rebuildIndexes()
}

// DeleteByKey deletes the item with the given key,
// returning false if it does not find it.
func (kl *List[K, V]) DeleteByKey(key K) bool {
	idx, ok := kl.indexes[key]
	if !ok {
		return false
	}
	kl.DeleteByIndex(idx, idx+1)
	return true
}

// String returns a string representation of the list.
func (kl *List[K, V]) String() string {
	sv := "{"
	for i, v := range kl.Values {
		sv += fmt.Sprintf("%v: %v, ", kl.Keys[i], v)
	}
	sv += "}"
	return sv
}
