// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package split splits text into Code 128 charset segments.

Code 128 has three charsets: A encodes ASCII control characters,
upper case letters, digits and punctuation; B encodes printable ASCII;
C encodes pairs of digits as one codeword.  Bytes from 0x80 are
encoded in charsets A and B as an FNC4 codeword followed by the byte
with its high bit cleared.

Split walks the text once.  At each position the head of the remaining
text is classified:

  - A run of four or more digits is encoded in charset C.
  - A run of two or three digits stays in the current charset, or
    uses charset C if nothing has been encoded yet.
  - A single digit stays in charset A or B, otherwise it uses B.
  - Other text uses the charset, A or B, accepting the longer run
    of bytes.  On a tie A is used.

A digit run of odd length for charset C is shortened by one digit.
If charset A or B is current, the first digit is encoded in it,
otherwise the last digit is left for the next segment.
*/
package split // import "github.com/unixdj/barcode/split"

import (
	"github.com/unixdj/barcode/checksum"
	"github.com/unixdj/barcode/internal/logger"
	"github.com/unixdj/barcode/memo"
)

// A Charset is a Code 128 charset.
type Charset byte

// Code 128 charsets.  None is the state before the start codeword.
const (
	None Charset = iota
	A
	B
	C
)

func (c Charset) String() string {
	return [...]string{"none", "A", "B", "C"}[c&3]
}

// Codeword values of function, switch, start and stop codewords.
const (
	FNC3   = 96
	FNC2   = 97
	Shift  = 98
	CodeC  = 99
	CodeB  = 100 // in charsets A and C
	FNC4B  = 100 // in charset B
	CodeA  = 101 // in charsets B and C
	FNC4A  = 101 // in charset A
	FNC1   = 102
	StartA = 103
	StartB = 104
	StartC = 105
	Stop   = 106
)

// A Segment is a span of text encoded in one charset.
type Segment struct {
	Charset    Charset
	Start, End int // byte offsets
}

// A Codeword is a Code 128 symbol value and the charset in effect
// after it.
type Codeword struct {
	Charset Charset
	Value   byte
}

// Byte classes.
const (
	inA = 1 << iota
	inB
	digit
)

var chartbl = func() (t [256]byte) {
	for i := range t {
		switch c := i & 0x7f; {
		case i >= '0' && i <= '9':
			t[i] = digit
		case c < 0x20:
			t[i] = inA
		case c < 0x60:
			t[i] = inA | inB
		default:
			t[i] = inB
		}
	}
	return
}()

// run returns the length of the prefix of s consisting of bytes of
// class m.
func run(s string, m byte) int {
	i := 0
	for i < len(s) && chartbl[s[i]]&m != 0 {
		i++
	}
	return i
}

// next returns the charset and length of the segment at the start of
// s, given the current charset.
func next(s string, cur Charset) (Charset, int) {
	ab := cur == A || cur == B
	switch d := run(s, digit); {
	case d >= 4:
		if d&1 != 0 {
			if ab {
				return cur, 1
			}
			d--
		}
		return C, d
	case d >= 2:
		if ab {
			return cur, d
		}
		return C, d &^ 1
	case d == 1:
		if ab {
			return cur, 1
		}
		return B, 1
	}
	a, b := run(s, inA), run(s, inB)
	switch {
	case a > b:
		return A, a
	case b > a:
		return B, b
	}
	return A, a
}

// Split splits text into segments.  Adjacent segments have different
// charsets, and segments of charset C have even length.
func Split(text string) []Segment {
	var segs []Segment
	cur := None
	for i := 0; i < len(text); {
		cs, n := next(text[i:], cur)
		if cs == cur {
			segs[len(segs)-1].End += n
		} else {
			segs = append(segs, Segment{cs, i, i + n})
			cur = cs
		}
		i += n
	}
	return segs
}

// switchCode returns the codeword switching from one charset to
// another.
func switchCode(from, to Charset) byte {
	switch {
	case from == None:
		return StartA + byte(to-A)
	case to == A:
		return CodeA
	case to == B:
		return CodeB
	}
	return CodeC
}

// AppendCodewords appends the codewords for text split into segs to
// cw, starting with the start codeword.
func AppendCodewords(cw []Codeword, text string, segs []Segment) []Codeword {
	cur := None
	for _, seg := range segs {
		cs := seg.Charset
		if cs != cur {
			cw = append(cw, Codeword{cs, switchCode(cur, cs)})
			cur = cs
		}
		s := text[seg.Start:seg.End]
		if cs == C {
			for i := 0; i+1 < len(s); i += 2 {
				cw = append(cw, Codeword{C, (s[i]-'0')*10 + s[i+1] - '0'})
			}
			continue
		}
		for i := 0; i < len(s); i++ {
			b := s[i]
			if b >= 0x80 {
				fnc4 := byte(FNC4A)
				if cs == B {
					fnc4 = FNC4B
				}
				cw = append(cw, Codeword{cs, fnc4})
				b &= 0x7f
			}
			if b < 0x20 {
				b += 0x60 // charset A only
			}
			cw = append(cw, Codeword{cs, b - 0x20})
		}
	}
	return cw
}

// A Splitter converts text to codewords, memoizing the results.
type Splitter struct {
	Cache memo.Cache[[]Codeword] // nil disables caching
}

// Default is the Splitter used by Codewords.  Its cache is unbounded.
var Default = &Splitter{Cache: new(memo.Map[[]Codeword])}

// Codewords returns the codewords for text, starting with the start
// codeword.  The returned slice must not be modified.
func (s *Splitter) Codewords(text string) []Codeword {
	if s.Cache != nil {
		if cw, ok := s.Cache.Get(text); ok {
			return cw
		}
	}
	segs := Split(text)
	cw := AppendCodewords(make([]Codeword, 0, len(text)+len(segs)), text, segs)
	logger.L().Debug("code128: split", "bytes", len(text),
		"segments", len(segs), "codewords", len(cw))
	if s.Cache != nil {
		s.Cache.Put(text, cw)
	}
	return cw
}

// Codewords returns Default.Codewords(text).
func Codewords(text string) []Codeword { return Default.Codewords(text) }

// Checksum returns the check codeword for values starting with the
// start codeword: the start value plus each following value weighted
// by its position, modulo 103.
func Checksum(values []int) int {
	if len(values) == 0 {
		return 0
	}
	return (checksum.DecrescentSum(values, len(values)-1, 0) + values[0]) % 103
}
