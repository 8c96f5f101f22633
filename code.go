// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package barcode

import (
	"image"
	"image/color"
	"math"
	"strings"

	"github.com/unixdj/barcode/bars"
)

// A Code is a rasterised barcode.
// It implements image.Image and direct PNG and PBM encoding.
//
// Bars are laid out left to right, each module Scale pixels wide.
// A pixel column belongs to the run covering its centre.  Full height
// bars are Height modules tall.  The code is surrounded by a quiet
// zone of Border modules on each side.
type Code struct {
	Bars    *bars.Sequence  // runs to render
	Scale   int             // number of image pixels per module
	Height  int             // full bar height in modules
	Border  int             // quiet zone width in modules
	Reverse bool            // swap colours
	Palette *[2]color.Color // background and bar colours, nil for white and black
}

// Default geometry of NewCode.
const (
	DefaultScale  = 2
	DefaultHeight = 50
	DefaultBorder = 10
)

// NewCode returns a Code rendering s with the default geometry.
func NewCode(s *bars.Sequence) *Code {
	return &Code{
		Bars:   s,
		Scale:  DefaultScale,
		Height: DefaultHeight,
		Border: DefaultBorder,
	}
}

func (c *Code) isValid() bool {
	return c != nil && c.Bars != nil && c.Scale > 0 && c.Height > 0 &&
		c.Border >= 0
}

// size returns the image dimensions at scale.
func (c *Code) size(scale int) (w, h int) {
	w = (int(math.Ceil(c.Bars.WidthFactor())) + c.Border*2) * scale
	h = (c.Height + c.Border*2) * scale
	return
}

// Size returns the image width and height in pixels.
func (c *Code) Size() (w, h int) {
	if !c.isValid() {
		return 0, 0
	}
	return c.size(c.Scale)
}

// extent returns the pixels at scale covered by run r starting x
// modules from the left edge of the bars.
func (c *Code) extent(r bars.Run, x float64, scale int) image.Rectangle {
	s, b := float64(scale), c.Border*scale
	h := float64(c.Height * scale)
	return image.Rect(
		b+int(math.Ceil(x*s-0.5)),
		b+int(math.Round(r.YOffset*h)),
		b+int(math.Ceil((x+r.Width)*s-0.5)),
		b+int(math.Round((r.YOffset+r.Height)*h)))
}

// A column is the vertical extent of the bar in a pixel column.
// The zero column has no bar.
type column struct {
	top, bottom int
}

func (col column) covers(y int) bool { return col.top <= y && y < col.bottom }

// columns returns the pixel columns of the image at scale.
func (c *Code) columns(scale int) []column {
	w, _ := c.size(scale)
	cols := make([]column, w)
	x := 0.0
	for i, n := 0, c.Bars.Len(); i < n; i++ {
		r := c.Bars.Run(i)
		if r.Bar {
			e := c.extent(r, x, scale)
			for j := max(e.Min.X, 0); j < min(e.Max.X, w); j++ {
				cols[j] = column{e.Min.Y, e.Max.Y}
			}
		}
		x += r.Width
	}
	return cols
}

// Black returns true if the pixel at (x,y) is a bar.
func (c *Code) Black(x, y int) bool {
	if !c.isValid() {
		return false
	}
	p := image.Pt(x, y)
	pos := 0.0
	for i, n := 0, c.Bars.Len(); i < n; i++ {
		r := c.Bars.Run(i)
		e := c.extent(r, pos, c.Scale)
		if e.Min.X > x {
			break
		}
		if r.Bar && p.In(e) {
			return true
		}
		pos += r.Width
	}
	return false
}

var (
	whiteColor color.Color = color.Gray{0xFF}
	blackColor color.Color = color.Gray{0x00}
)

// colors returns the background and bar colours.
func (c *Code) colors() (bg, fg color.Color) {
	bg, fg = whiteColor, blackColor
	if c.Palette != nil {
		bg, fg = c.Palette[0], c.Palette[1]
	}
	if c.Reverse {
		bg, fg = fg, bg
	}
	return
}

// Image returns an Image displaying the code.  The columns are
// computed once; later changes to c are not reflected.
func (c *Code) Image() image.Image {
	if !c.isValid() {
		return nil
	}
	im := &codeImage{cols: c.columns(c.Scale)}
	_, im.h = c.size(c.Scale)
	im.bg, im.fg = c.colors()
	if c.Palette != nil {
		im.model = color.Palette{im.bg, im.fg}
	} else {
		im.model = color.GrayModel
	}
	return im
}

// codeImage implements image.Image
type codeImage struct {
	cols   []column
	h      int
	bg, fg color.Color
	model  color.Model
}

func (c *codeImage) Bounds() image.Rectangle {
	return image.Rect(0, 0, len(c.cols), c.h)
}

func (c *codeImage) At(x, y int) color.Color {
	if 0 <= x && x < len(c.cols) && c.cols[x].covers(y) {
		return c.fg
	}
	return c.bg
}

func (c *codeImage) ColorModel() color.Model {
	return c.model
}

var blocks = [4]string{" ", "▀", "▄", "█"}

// String renders the code at scale 1 with Unicode block elements,
// two pixel rows per line.  Bars are drawn in the foreground colour,
// or in the background colour if c.Reverse is set.
func (c *Code) String() string {
	if !c.isValid() {
		return ""
	}
	cols := c.columns(1)
	_, h := c.size(1)
	var b strings.Builder
	b.Grow((len(cols)*3 + 1) * (h + 1) / 2)
	for y := 0; y < h; y += 2 {
		for _, col := range cols {
			top := col.covers(y) != c.Reverse
			bot := (y+1 < h && col.covers(y+1)) != c.Reverse
			var i int
			if top {
				i |= 1
			}
			if bot {
				i |= 2
			}
			b.WriteString(blocks[i])
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// packRow sets row to the 1-bit pixels of row y, MSB first.  Bar pixels
// are 1 bits if one is set, 0 bits otherwise.
func packRow(row []byte, cols []column, y int, one bool) {
	var fill byte
	if !one {
		fill = 0xff
	}
	for i := range row {
		row[i] = fill
	}
	for x, col := range cols {
		if col.covers(y) {
			row[x>>3] ^= 0x80 >> (x & 7)
		}
	}
}
