// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package memo provides the caches used by the encoders to memoize
conversions of input strings.

A Cache maps an input string to a value computed from it.  Encoders
only store values that are a pure function of the key, so a hit and a
miss are indistinguishable except for speed.
*/
package memo // import "github.com/unixdj/barcode/memo"

import "sync"

// A Cache memoizes values keyed by input string.
// Implementations must be safe for concurrent use.
type Cache[V any] interface {
	Get(key string) (V, bool)
	Put(key string, v V)
}

// Map is an unbounded Cache.  Entries are never evicted and live for
// the lifetime of the Map.  The zero value is ready to use.
type Map[V any] struct {
	mu sync.Mutex
	m  map[string]V
}

func (c *Map[V]) Get(key string) (V, bool) {
	c.mu.Lock()
	v, ok := c.m[key]
	c.mu.Unlock()
	return v, ok
}

func (c *Map[V]) Put(key string, v V) {
	c.mu.Lock()
	if c.m == nil {
		c.m = make(map[string]V)
	}
	c.m[key] = v
	c.mu.Unlock()
}

// Len returns the number of cached entries.
func (c *Map[V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.m)
}

// Reset drops all entries.
func (c *Map[V]) Reset() {
	c.mu.Lock()
	c.m = nil
	c.mu.Unlock()
}

// None is a Cache that stores nothing.
type None[V any] struct{}

func (None[V]) Get(string) (v V, ok bool) { return }
func (None[V]) Put(string, V)             {}
