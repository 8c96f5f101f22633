// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import (
	"strings"

	"github.com/unixdj/barcode/bars"
)

// PostnetBits returns the POSTNET bars of digits, '1' for a full and
// '0' for a half height bar, including the frame bars.  digits are
// not validated.
func PostnetBits(digits string) string {
	var b strings.Builder
	b.Grow(len(digits)*5 + 2)
	b.WriteByte('1')
	for i := 0; i < len(digits); i++ {
		b.WriteString(postnetTbl[digits[i]-'0'])
	}
	b.WriteByte('1')
	return b.String()
}

// ParsePostnet returns the digits of POSTNET bars written by
// PostnetBits, and whether bits are well formed.
func ParsePostnet(bits string) (string, bool) {
	n := len(bits) - 2
	if n < 5 || n%5 != 0 || bits[0] != '1' || bits[n+1] != '1' {
		return "", false
	}
	d := make([]byte, 0, n/5)
	for i := 1; i <= n; i += 5 {
		c := -1
		for k, p := range postnetTbl {
			if bits[i:i+5] == p {
				c = k
				break
			}
		}
		if c < 0 {
			return "", false
		}
		d = append(d, byte('0'+c))
	}
	return string(d), true
}

func encodePostnet(s *bars.Sequence, d *SymbolData, o *Options) {
	u := o.Narrow
	for _, c := range []byte(PostnetBits(d.Text)) {
		if c == '1' {
			s.Append(true, u, 1, 0)
		} else {
			s.Append(true, u, 0.5, 0.5)
		}
		s.Add(false, u)
	}
}
