// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package barcode

import (
	"bytes"
	"compress/zlib"
	"encoding/binary"
	"hash/crc32"
	"image/color"
	"io"

	"github.com/pkg/errors"
	"github.com/unixdj/barcode/internal/logger"
)

var (
	ErrArgs       = errors.New("barcode: invalid arguments")
	ErrLargeImage = errors.New("barcode: image too large")
)

// PNG returns a PNG image displaying the code.
//
// The image is 1-bit grayscale, or 1-bit paletted if c.Palette holds
// colours other than black and white.  Rows are written unfiltered.
//
// PNG returns nil if c is invalid or the image is too large.
func (c *Code) PNG() []byte {
	if w, err := encodePNG(nil, c); err == nil {
		return w.buf.Bytes()
	}
	return nil
}

// EncodePNG writes a PNG image displaying the code to w.
func (c *Code) EncodePNG(w io.Writer) error {
	if w == nil {
		return ErrArgs
	}
	_, err := encodePNG(w, c)
	return err
}

// A pngWriter assembles a PNG stream.
type pngWriter struct {
	buf bytes.Buffer
	tmp [16]byte
}

const (
	pngHeader = "\x89PNG\r\n\x1a\n"
	chunkSize = 0x8000  // IDAT chunks split after 32 KB
	maxSide   = 0x40000 // pixels
)

func encodePNG(ww io.Writer, c *Code) (*pngWriter, error) {
	if !c.isValid() {
		return nil, ErrArgs
	}
	width, height := c.size(c.Scale)
	if width > maxSide || height > maxSide {
		return nil, ErrLargeImage
	}
	var w pngWriter
	pal, usePal, one := c.palette()

	// Header
	w.buf.WriteString(pngHeader)

	// Header block
	binary.BigEndian.PutUint32(w.tmp[0:4], uint32(width))
	binary.BigEndian.PutUint32(w.tmp[4:8], uint32(height))
	w.tmp[8] = 1 // 1-bit
	if usePal {
		w.tmp[9] = 3 // palette
	} else {
		w.tmp[9] = 0 // gray
	}
	w.tmp[10] = 0 // deflate
	w.tmp[11] = 0 // adaptive filtering
	w.tmp[12] = 0 // no interlace
	w.writeChunk("IHDR", w.tmp[:13])

	// Palette and transparency
	if usePal {
		w.tmp[0] = pal[0].R
		w.tmp[1] = pal[0].G
		w.tmp[2] = pal[0].B
		w.tmp[3] = pal[1].R
		w.tmp[4] = pal[1].G
		w.tmp[5] = pal[1].B
		w.writeChunk("PLTE", w.tmp[:6])
		w.tmp[0] = pal[0].A
		w.tmp[1] = pal[1].A
		for a := 2; a > 0; a-- {
			if w.tmp[a-1] != 0xff {
				w.writeChunk("tRNS", w.tmp[:a])
				break
			}
		}
	}

	// Data
	data, err := c.pngData(width, height, one)
	if err != nil {
		return nil, err
	}
	for len(data) > chunkSize {
		w.writeChunk("IDAT", data[:chunkSize])
		data = data[chunkSize:]
	}
	w.writeChunk("IDAT", data)

	// End
	w.writeChunk("IEND", nil)
	logger.L().Debug("barcode: png", "width", width, "height", height,
		"bytes", w.buf.Len())

	if ww != nil {
		if _, err := w.buf.WriteTo(ww); err != nil {
			return nil, err
		}
	}
	return &w, nil
}

// pngData returns the zlib stream of the image rows.
func (c *Code) pngData(width, height int, one bool) ([]byte, error) {
	var z bytes.Buffer
	zw, err := zlib.NewWriterLevel(&z, zlib.BestCompression)
	if err != nil {
		return nil, err
	}
	cols := c.columns(c.Scale)
	row := make([]byte, 1+(width+7)/8) // filter type 0
	for y := 0; y < height; y++ {
		if y == 0 || edge(cols, y) {
			packRow(row[1:], cols, y, one)
		}
		if _, err := zw.Write(row); err != nil {
			return nil, err
		}
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return z.Bytes(), nil
}

func (w *pngWriter) writeChunk(name string, data []byte) {
	start := w.buf.Len()
	w.buf.WriteString(name) // length placeholder
	w.buf.WriteString(name)
	w.buf.Write(data)
	b := w.buf.Bytes()[start:]
	binary.BigEndian.PutUint32(b, uint32(len(b)-8))
	binary.BigEndian.PutUint32(w.tmp[0:4], crc32.ChecksumIEEE(b[4:]))
	w.buf.Write(w.tmp[0:4])
}

// palette returns the PNG palette, background first, whether the image
// needs one, and whether bar pixels are 1 bits.  Black and white
// palettes are written as grayscale.
func (c *Code) palette() (pal [2]color.RGBA, usePal, one bool) {
	const b, w, o = 0x00, 0xff, 0xff // black, white, opaque
	bg, fg := c.colors()
	for i, col := range [2]color.Color{bg, fg} {
		r, g, b, a := col.RGBA()
		pal[i] = color.RGBA{byte(r >> 8), byte(g >> 8),
			byte(b >> 8), byte(a >> 8)}
	}
	switch pal {
	case [2]color.RGBA{{w, w, w, o}, {b, b, b, o}}:
		return [2]color.RGBA{}, false, false
	case [2]color.RGBA{{b, b, b, o}, {w, w, w, o}}:
		return [2]color.RGBA{}, false, true
	}
	return pal, true, true
}
