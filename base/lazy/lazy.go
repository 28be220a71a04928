// Copyright (c) 2026, Geomcore Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package lazy provides a generic memoized cell for derived data
// that is expensive to compute: computed on first read after being
// tagged dirty, and reused until tagged dirty again.
// Mutators are responsible for tagging; the cell cannot observe
// writes to the data it is derived from.
package lazy

import "sync"

// Cache is a dirty-taggable memoized cell.
// The zero value is dirty: the first [Cache.Ensure] computes.
// Ensure and TagDirty are safe for concurrent use, so an entity
// holding a Cache can be shared read-only across goroutines without
// racing on recomputation.
type Cache[T any] struct {
	mu    sync.Mutex
	valid bool
	value T
}

// Ensure returns the cached value, first invoking compute to
// produce it if the cell is dirty. Compute is invoked at most once
// per dirty tag, synchronously on the calling goroutine, and the
// lock is held for its duration.
func (c *Cache[T]) Ensure(compute func() T) T {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.valid {
		c.value = compute()
		c.valid = true
	}
	return c.value
}

// TagDirty marks the cell as needing recomputation on next Ensure.
// It is idempotent and never touches the stored value.
func (c *Cache[T]) TagDirty() {
	c.mu.Lock()
	c.valid = false
	c.mu.Unlock()
}

// IsDirty reports whether the cell needs recomputation.
func (c *Cache[T]) IsDirty() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return !c.valid
}

// Peek returns the stored value and whether it is valid,
// without triggering computation.
func (c *Cache[T]) Peek() (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.value, c.valid
}

// SetValue stores the given value and marks the cell valid.
func (c *Cache[T]) SetValue(value T) {
	c.mu.Lock()
	c.value = value
	c.valid = true
	c.mu.Unlock()
}

// CopyFrom copies the cached state (value and validity) from other.
// Used when cloning an entity so the copy starts with the same
// derived data already available.
func (c *Cache[T]) CopyFrom(other *Cache[T]) {
	val, ok := other.Peek()
	c.mu.Lock()
	c.value = val
	c.valid = ok
	c.mu.Unlock()
}
