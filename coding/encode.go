// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import (
	"strconv"
	"strings"

	"github.com/unixdj/barcode/bars"
	"github.com/unixdj/barcode/checksum"
	"github.com/unixdj/barcode/split"
)

// elements appends two-width elements alternating from a bar.
func elements(s *bars.Sequence, p string, o *Options) {
	for i := 0; i < len(p); i++ {
		w := o.Narrow
		if p[i] == 'w' {
			w = o.Wide
		}
		s.Add(i&1 == 0, w)
	}
}

// symbols appends two-width symbols separated by narrow spaces.
func symbols(s *bars.Sequence, o *Options, syms ...string) {
	for i, p := range syms {
		if i > 0 {
			s.Add(false, o.Narrow)
		}
		elements(s, p, o)
	}
}

// lookup returns the table entries of the bytes of text.
func lookup(tbl *[128]string, text string) []string {
	syms := make([]string, len(text))
	for i := 0; i < len(text); i++ {
		syms[i] = tbl[text[i]&0x7f]
	}
	return syms
}

func encode39(s *bars.Sequence, d *SymbolData, o *Options) {
	symbols(s, o, lookup(&code39tbl, "*"+d.Symbols+d.Check+"*")...)
}

func encode11(s *bars.Sequence, d *SymbolData, o *Options) {
	symbols(s, o, lookup(&code11tbl, "*"+d.Text+"*")...)
}

func encodeCodabar(s *bars.Sequence, d *SymbolData, o *Options) {
	symbols(s, o, lookup(&codabartbl, d.Text)...)
}

// barsOnly returns bar elements p separated by narrow spaces.
func barsOnly(p string) string {
	b := make([]byte, 0, len(p)*2-1)
	for i := 0; i < len(p); i++ {
		if i > 0 {
			b = append(b, 'n')
		}
		b = append(b, p[i])
	}
	return string(b)
}

func encodeStandard2of5(s *bars.Sequence, d *SymbolData, o *Options) {
	syms := make([]string, 0, len(d.Text)+2)
	syms = append(syms, barsOnly("wwn"))
	for i := 0; i < len(d.Text); i++ {
		syms = append(syms, barsOnly(twoOf5tbl[d.Text[i]-'0']))
	}
	symbols(s, o, append(syms, barsOnly("wnw"))...)
}

// interleaved appends Interleaved 2 of 5 digits of even length.
func interleaved(s *bars.Sequence, digits string, o *Options) {
	elements(s, "nnnn", o)
	var p [10]byte
	for i := 0; i+1 < len(digits); i += 2 {
		b, w := twoOf5tbl[digits[i]-'0'], twoOf5tbl[digits[i+1]-'0']
		for j := 0; j < 5; j++ {
			p[2*j], p[2*j+1] = b[j], w[j]
		}
		elements(s, string(p[:]), o)
	}
	elements(s, "wnn", o)
}

func encodeInterleaved(s *bars.Sequence, d *SymbolData, o *Options) {
	interleaved(s, d.Text, o)
}

const code93Frame = 0b101011110 // start and stop

func encode93(s *bars.Sequence, d *SymbolData, o *Options) {
	text := d.Symbols + d.Check
	var b strings.Builder
	b.Grow(len(text)*9 + 19)
	b.WriteString(strconv.FormatUint(code93Frame, 2))
	for i := 0; i < len(text); i++ {
		v := strings.IndexByte(checksum.Code93Alphabet, text[i])
		b.WriteString(strconv.FormatUint(uint64(code93tbl[v]), 2))
	}
	b.WriteString(strconv.FormatUint(code93Frame, 2))
	b.WriteByte('1')
	s.AddPattern(b.String(), o.Narrow)
}

func encodeMSI(s *bars.Sequence, d *SymbolData, o *Options) {
	var b strings.Builder
	b.Grow(len(d.Text)*12 + 7)
	b.WriteString("110")
	for i := 0; i < len(d.Text); i++ {
		v := d.Text[i] - '0'
		for k := 3; k >= 0; k-- {
			if v>>k&1 != 0 {
				b.WriteString("110")
			} else {
				b.WriteString("100")
			}
		}
	}
	b.WriteString("1001")
	s.AddPattern(b.String(), o.Narrow)
}

// eanCode returns the code of digit c with parity 'L' or 'G'.
func eanCode(c, parity byte) string {
	if parity == 'G' {
		return eanG[c-'0']
	}
	return eanL[c-'0']
}

// ean13Pattern returns the modules of 13 EAN digits.
func ean13Pattern(t string) string {
	var b strings.Builder
	b.Grow(95)
	b.WriteString("101")
	par := ean13Parity[t[0]-'0']
	for i := 1; i < 7; i++ {
		b.WriteString(eanCode(t[i], par[i-1]))
	}
	b.WriteString("01010")
	for i := 7; i < 13; i++ {
		b.WriteString(eanR[t[i]-'0'])
	}
	b.WriteString("101")
	return b.String()
}

func encodeEAN13(s *bars.Sequence, d *SymbolData, o *Options) {
	s.AddPattern(ean13Pattern(d.Text), o.Narrow)
}

func encodeUPCA(s *bars.Sequence, d *SymbolData, o *Options) {
	s.AddPattern(ean13Pattern("0"+d.Text), o.Narrow)
}

func encodeEAN8(s *bars.Sequence, d *SymbolData, o *Options) {
	t := d.Text
	var b strings.Builder
	b.Grow(67)
	b.WriteString("101")
	for i := 0; i < 4; i++ {
		b.WriteString(eanL[t[i]-'0'])
	}
	b.WriteString("01010")
	for i := 4; i < 8; i++ {
		b.WriteString(eanR[t[i]-'0'])
	}
	b.WriteString("101")
	s.AddPattern(b.String(), o.Narrow)
}

func encodeUPCE(s *bars.Sequence, d *SymbolData, o *Options) {
	t := d.Text
	par := []byte(upceParity[t[7]-'0'])
	if t[0] == '1' {
		for i, p := range par {
			par[i] = 'L' + 'G' - p
		}
	}
	var b strings.Builder
	b.Grow(51)
	b.WriteString("101")
	for i := 1; i < 7; i++ {
		b.WriteString(eanCode(t[i], par[i-1]))
	}
	b.WriteString("010101")
	s.AddPattern(b.String(), o.Narrow)
}

// addOn appends EAN-2 or EAN-5 digits t with the given parity.
func addOn(s *bars.Sequence, t, par string, o *Options) {
	var b strings.Builder
	b.WriteString("1011")
	for i := 0; i < len(t); i++ {
		if i > 0 {
			b.WriteString("01")
		}
		b.WriteString(eanCode(t[i], par[i]))
	}
	s.AddPattern(b.String(), o.Narrow)
}

func digitValues(t string) []int {
	v := make([]int, len(t))
	for i := 0; i < len(t); i++ {
		v[i] = int(t[i] - '0')
	}
	return v
}

// ean5Check returns the EAN-5 parity selector.
func ean5Check(t string) int {
	return checksum.AlternatingSum(digitValues(t), 3, 9) % 10
}

func encodeEAN5(s *bars.Sequence, d *SymbolData, o *Options) {
	addOn(s, d.Text, ean5Parity[ean5Check(d.Text)], o)
}

func encodeEAN2(s *bars.Sequence, d *SymbolData, o *Options) {
	n, _ := strconv.Atoi(d.Text)
	addOn(s, d.Text, ean2Parity[n%4], o)
}

// codewords returns the Code 128 codeword values of d, from the start
// codeword, without the check and stop codewords.
func codewords(d *SymbolData, o *Options, fnc1 bool) []int {
	cw := o.splitter().Codewords(d.Symbols)
	v := make([]int, 0, len(cw)+3)
	for i, c := range cw {
		v = append(v, int(c.Value))
		if i == 0 && fnc1 {
			v = append(v, split.FNC1)
		}
	}
	return v
}

func encode128(s *bars.Sequence, v []int, o *Options) {
	v = append(v, split.Checksum(v), split.Stop)
	for _, c := range v {
		p := code128tbl[c]
		for i := 0; i < len(p); i++ {
			s.Add(i&1 == 0, float64(p[i]-'0')*o.Narrow)
		}
	}
}
