// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package memo

import (
	"sync"
	"testing"

	"github.com/intel/rsp-sw-toolkit-im-suite-expect"
)

func TestMap(t *testing.T) {
	w := expect.WrapT(t)

	var c Map[[]byte]
	_, ok := c.Get("a")
	w.ShouldBeFalse(ok)

	c.Put("a", []byte{1, 2})
	v, ok := c.Get("a")
	w.ShouldBeTrue(ok)
	w.ShouldBeEqual(v, []byte{1, 2})
	w.ShouldBeEqual(c.Len(), 1)

	c.Reset()
	_, ok = c.Get("a")
	w.ShouldBeFalse(ok)
	w.ShouldBeEqual(c.Len(), 0)
}

func TestMapConcurrent(t *testing.T) {
	var c Map[int]
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				c.Put(string(rune('a'+j%26)), j%26)
				c.Get(string(rune('a' + i)))
			}
		}(i)
	}
	wg.Wait()
	if n := c.Len(); n != 26 {
		t.Errorf("got %d entries, want 26", n)
	}
}

func TestNone(t *testing.T) {
	w := expect.WrapT(t)
	var c Cache[string] = None[string]{}
	c.Put("a", "b")
	_, ok := c.Get("a")
	w.ShouldBeFalse(ok)
}
