// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package barcode

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/intel/rsp-sw-toolkit-im-suite-expect"
	"github.com/unixdj/barcode/bars"
)

// ean13Code returns the EAN-13 test code at scale 1 without border.
func ean13Code(t *testing.T, height int) *Code {
	v, err := New(EAN13, "7501031311309", true)
	if err != nil {
		t.Fatal(err)
	}
	return &Code{Bars: v.Encoded(), Scale: 1, Height: height}
}

// packBinary packs a binary string into bytes, MSB first.
func packBinary(s string) []byte {
	b := make([]byte, (len(s)+7)/8)
	for i := 0; i < len(s); i++ {
		if s[i] == '1' {
			b[i>>3] |= 0x80 >> (i & 7)
		}
	}
	return b
}

func TestBlack(t *testing.T) {
	c := ean13Code(t, 10)
	w, h := c.Size()
	if w != 95 || h != 10 {
		t.Fatalf("Size() = %d, %d; want 95, 10", w, h)
	}
	for y := -1; y <= h; y++ {
		for x := -1; x <= w; x++ {
			want := x >= 0 && x < w && y >= 0 && y < h && ean13Bars[x] == '1'
			if got := c.Black(x, y); got != want {
				t.Errorf("Black(%d, %d) = %v; want %v", x, y, got, want)
			}
		}
	}
}

func TestImage(t *testing.T) {
	v, err := New(EAN8, "9638507", false)
	if err != nil {
		t.Fatal(err)
	}
	c := v.Code()
	w := expect.WrapT(t)
	wd, ht := c.Size()
	w.ShouldBeEqual(wd, (67+2*DefaultBorder)*DefaultScale)
	w.ShouldBeEqual(ht, (DefaultHeight+2*DefaultBorder)*DefaultScale)
	im := c.Image()
	w.ShouldBeEqual(im.Bounds().Dx(), wd)
	w.ShouldBeEqual(im.Bounds().Dy(), ht)
	w.ShouldBeEqual(im.ColorModel(), color.GrayModel)
	for y := 0; y < ht; y++ {
		for x := 0; x < wd; x++ {
			want := whiteColor
			if c.Black(x, y) {
				want = blackColor
			}
			if got := im.At(x, y); got != want {
				t.Fatalf("At(%d, %d) = %v; want %v", x, y, got, want)
			}
		}
	}
	c.Reverse = true
	w.ShouldBeEqual(c.Image().At(0, 0), blackColor)
}

func TestPixelCentres(t *testing.T) {
	s := bars.New()
	s.Add(true, 0.5)
	s.Add(false, 0.5)
	s.Add(true, 1)
	s.Close()
	im := (&Code{Bars: s, Scale: 2, Height: 1}).Image()
	var got []bool
	for x := 0; x < im.Bounds().Dx(); x++ {
		got = append(got, im.At(x, 0) == blackColor)
	}
	if diff := cmp.Diff([]bool{true, false, true, true}, got); diff != "" {
		t.Errorf("columns mismatch (-want +got):\n%s", diff)
	}
}

func TestHalfBars(t *testing.T) {
	v, err := New(Postnet, "12345", false)
	if err != nil {
		t.Fatal(err)
	}
	c := &Code{Bars: v.Encoded(), Scale: 1, Height: 10}
	w := expect.WrapT(t)
	wd, ht := c.Size()
	w.ShouldBeEqual(wd, 63)
	w.ShouldBeEqual(ht, 10)
	// frame bar, space, half bar of digit 1
	for _, tc := range []struct {
		x, y int
		want bool
	}{
		{0, 0, true}, {0, 9, true},
		{1, 0, false}, {1, 9, false},
		{2, 0, false}, {2, 4, false}, {2, 5, true}, {2, 9, true},
		{62, 0, true},
	} {
		w.As(fmt.Sprint(tc.x, tc.y)).ShouldBeEqual(c.Black(tc.x, tc.y), tc.want)
	}
}

func TestPBM(t *testing.T) {
	c := ean13Code(t, 3)
	w := expect.WrapT(t)
	row := packBinary(ean13Bars)
	want := append([]byte("P4\n95 3\n"), bytes.Repeat(row, 3)...)
	w.ShouldBeEqual(string(c.PBM()), string(want))

	c.Reverse = true
	for i := range row {
		row[i] = ^row[i]
	}
	got := c.PBM()
	w.ShouldHaveLength(got, len(want))
	w.ShouldBeEqual(got[len("P4\n95 3\n")], row[0])
	w.ShouldBeEqual(got[len("P4\n95 3\n")+1], row[1])

	var buf bytes.Buffer
	c.Border = 2
	c.Scale = 2
	w.ShouldSucceed(c.EncodePBM(&buf))
	w.ShouldBeTrue(strings.HasPrefix(buf.String(), "P4\n198 14\n"))
	w.ShouldHaveLength(buf.Bytes(), len("P4\n198 14\n")+14*25)
}

func TestPNG(t *testing.T) {
	c := ean13Code(t, 4)
	c.Border = 1
	for _, rev := range []bool{false, true} {
		c.Reverse = rev
		w := expect.WrapT(t).As(fmt.Sprint("reverse ", rev))
		im := w.ShouldHaveResult(png.Decode(bytes.NewReader(c.PNG()))).(image.Image)
		for y := 0; y < 6; y++ {
			for x := 0; x < 97; x++ {
				want := c.Black(x, y) != rev
				g := color.GrayModel.Convert(im.At(x, y)).(color.Gray)
				if got := g.Y == 0; got != want {
					t.Fatalf("reverse %v: pixel (%d, %d) black = %v; want %v",
						rev, x, y, got, want)
				}
			}
		}
	}
}

func TestPNGPalette(t *testing.T) {
	w := expect.WrapT(t)
	c := ean13Code(t, 2)
	c.Border = 1
	red := color.RGBA{0xff, 0, 0, 0xff}
	blue := color.RGBA{0, 0, 0xff, 0xff}
	c.Palette = &[2]color.Color{red, blue}
	var buf bytes.Buffer
	w.ShouldSucceed(c.EncodePNG(&buf))
	im := w.ShouldHaveResult(png.Decode(&buf)).(image.Image)
	w.ShouldBeEqual(color.RGBAModel.Convert(im.At(0, 0)), red)
	w.ShouldBeEqual(color.RGBAModel.Convert(im.At(1, 1)), blue)
	w.ShouldBeEqual(color.RGBAModel.Convert(c.Image().At(1, 1)), blue)

	c.Reverse = true
	im = w.ShouldHaveResult(png.Decode(bytes.NewReader(c.PNG()))).(image.Image)
	w.ShouldBeEqual(color.RGBAModel.Convert(im.At(0, 0)), blue)

	c.Reverse = false
	c.Palette = &[2]color.Color{color.RGBA{}, blue}
	im = w.ShouldHaveResult(png.Decode(bytes.NewReader(c.PNG()))).(image.Image)
	_, _, _, a := im.At(0, 0).RGBA()
	w.ShouldBeEqual(a, uint32(0))
	_, _, _, a = im.At(1, 1).RGBA()
	w.ShouldBeEqual(a, uint32(0xffff))
}

func TestString(t *testing.T) {
	w := expect.WrapT(t)
	c := ean13Code(t, 2)
	s := c.String()
	w.ShouldBeEqual(strings.Count(s, "\n"), 1)
	w.ShouldBeTrue(strings.HasPrefix(s, "█ █ ██"))
	w.ShouldBeEqual(len([]rune(s)), 96)

	c.Height = 1
	w.ShouldBeTrue(strings.HasPrefix(c.String(), "▀ ▀ ▀▀"))
	c.Reverse = true
	w.ShouldBeTrue(strings.HasPrefix(c.String(), "▄█▄█▄▄"))

	c.Height, c.Border, c.Reverse = 2, 1, false
	lines := strings.Split(strings.TrimSuffix(c.String(), "\n"), "\n")
	w.ShouldHaveLength(lines, 2)
	w.ShouldBeTrue(strings.HasPrefix(lines[0], " ▄ ▄"))
	w.ShouldBeTrue(strings.HasPrefix(lines[1], " ▀ ▀"))
}

func TestRenderErrors(t *testing.T) {
	w := expect.WrapT(t)
	var buf bytes.Buffer
	for _, c := range []*Code{
		nil,
		{},
		{Bars: bars.New(), Scale: 0, Height: 1},
		{Bars: bars.New(), Scale: 1, Height: 0},
		{Bars: bars.New(), Scale: 1, Height: 1, Border: -1},
	} {
		w.ShouldBeTrue(c.PNG() == nil)
		w.ShouldBeTrue(c.PBM() == nil)
		w.ShouldBeEqual(c.EncodePNG(&buf), ErrArgs)
		w.ShouldBeEqual(c.EncodePBM(&buf), ErrArgs)
		w.ShouldBeTrue(c.Image() == nil)
		w.ShouldBeEqual(c.String(), "")
		w.ShouldBeFalse(c.Black(0, 0))
	}
	c := ean13Code(t, 1)
	w.ShouldBeEqual(c.EncodePNG(nil), ErrArgs)
	w.ShouldBeEqual(c.EncodePBM(nil), ErrArgs)
	c.Scale = maxSide
	w.ShouldBeEqual(c.EncodePNG(&buf), ErrLargeImage)
	w.ShouldBeEqual(buf.Len(), 0)
}
