// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package bars implements the run-length model of a linear barcode.

A barcode is an ordered sequence of runs, each a bar or a space of a
given width.  Bars additionally have a height, 1 for full-height bars,
and a vertical offset from the top of the symbol.  Widths are measured
in modules, heights in units of the full bar height.

Adjacent bars of equal height are never stored separately: Append
merges them into one run.  Spaces are not merged.
*/
package bars // import "github.com/unixdj/barcode/bars"

import (
	"math"
	"strings"
)

// A Run is a stretch of bar or space.
type Run struct {
	Bar     bool    // bar or space
	Width   float64 // width in modules
	Height  float64 // height, 1 is full height
	YOffset float64 // distance from the top
}

// A Sequence is an ordered sequence of runs.  The zero value is an
// empty, open Sequence.
//
// A Sequence is either open or closed.  Runs are only appended to an
// open Sequence; Append on a closed Sequence does nothing.
type Sequence struct {
	runs   []Run
	width  float64
	height float64
	closed bool
	half   bool // merge by offset, drop trailing space on Close
}

// New returns an empty Sequence.
func New() *Sequence { return &Sequence{} }

// NewHalf returns an empty Sequence for symbologies with bars of
// different heights.  Bars are only merged if their offsets are equal
// as well, and Close removes a trailing space.
func NewHalf() *Sequence { return &Sequence{half: true} }

// Add appends a full-height run.
func (s *Sequence) Add(bar bool, width float64) {
	s.Append(bar, width, 1, 0)
}

// Append appends a run of the given dimensions.  A run with
// non-positive width or height is ignored.  A bar following a bar of
// the same height (and, for NewHalf sequences, offset) widens it.
func (s *Sequence) Append(bar bool, width, height, yOffset float64) {
	if s.closed || !(width > 0) || !(height > 0) {
		return
	}
	if n := len(s.runs) - 1; bar && n >= 0 {
		last := &s.runs[n]
		if last.Bar && last.Height == height &&
			(!s.half || last.YOffset == yOffset) {
			last.Width += width
			s.width += width
			return
		}
	}
	s.runs = append(s.runs, Run{bar, width, height, yOffset})
	s.width += width
	if bar && height > s.height {
		s.height = height
	}
}

// AddPattern appends full-height runs described by a binary string,
// '1' for each bar module and '0' for each space module, scaled by
// unit.  Other characters are ignored.
func (s *Sequence) AddPattern(pattern string, unit float64) {
	var cur byte
	n := 0
	for i := 0; i < len(pattern); i++ {
		c := pattern[i]
		if c != '0' && c != '1' {
			continue
		}
		if c != cur && n > 0 {
			s.Add(cur == '1', float64(n)*unit)
			n = 0
		}
		cur = c
		n++
	}
	if n > 0 {
		s.Add(cur == '1', float64(n)*unit)
	}
}

// Close closes the sequence.
func (s *Sequence) Close() {
	if s.closed {
		return
	}
	if n := len(s.runs) - 1; s.half && n >= 0 && !s.runs[n].Bar {
		s.width -= s.runs[n].Width
		s.runs = s.runs[:n]
	}
	s.closed = true
}

// Closed reports whether s is closed.
func (s *Sequence) Closed() bool { return s.closed }

// Len returns the number of runs.
func (s *Sequence) Len() int { return len(s.runs) }

// Run returns the i'th run.
func (s *Sequence) Run(i int) Run { return s.runs[i] }

// Runs returns a copy of the runs.
func (s *Sequence) Runs() []Run {
	return append([]Run(nil), s.runs...)
}

// WidthFactor returns the sum of the widths of all runs.
func (s *Sequence) WidthFactor() float64 { return s.width }

// HeightFactor returns the height of the tallest bar.
func (s *Sequence) HeightFactor() float64 { return s.height }

// Binary returns the runs as a string of '1' for each bar module and
// '0' for each space module.  Widths are rounded to whole modules.
func (s *Sequence) Binary() string {
	var b strings.Builder
	for _, r := range s.runs {
		c := "0"
		if r.Bar {
			c = "1"
		}
		b.WriteString(strings.Repeat(c, int(math.Round(r.Width))))
	}
	return b.String()
}

func (s *Sequence) String() string { return s.Binary() }
