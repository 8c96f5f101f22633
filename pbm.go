// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package barcode

import (
	"bufio"
	"bytes"
	"io"
	"strconv"
)

// EncodePBM writes a Portable Bit Map image displaying the code to w,
// for use with netpbm.  EncodePBM disregards c.Palette, as other PNM
// formats are not supported.
func (c *Code) EncodePBM(w io.Writer) error {
	if !c.isValid() || w == nil {
		return ErrArgs
	}
	b := bufio.NewWriter(w)
	width, height := c.size(c.Scale)
	if _, err := b.WriteString("P4\n" + strconv.Itoa(width) + " " +
		strconv.Itoa(height) + "\n"); err != nil {
		return err
	}
	cols := c.columns(c.Scale)
	row := make([]byte, (width+7)/8)
	for y := 0; y < height; y++ {
		// Rows only change at bar edges.
		if y == 0 || edge(cols, y) {
			packRow(row, cols, y, !c.Reverse)
		}
		if _, err := b.Write(row); err != nil {
			return err
		}
	}
	return b.Flush()
}

// PBM returns a Portable Bit Map image displaying the code, or nil if c
// is invalid.
func (c *Code) PBM() []byte {
	var buf bytes.Buffer
	if err := c.EncodePBM(&buf); err != nil {
		return nil
	}
	return buf.Bytes()
}

// edge reports whether row y differs from row y-1.
func edge(cols []column, y int) bool {
	for _, col := range cols {
		if col.covers(y) != col.covers(y-1) {
			return true
		}
	}
	return false
}
