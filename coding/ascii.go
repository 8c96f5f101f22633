// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import (
	"strings"

	"github.com/unixdj/barcode/internal/logger"
	"github.com/unixdj/barcode/memo"
)

// fullASCII returns the Code 39 full ASCII encoding of c < 0x80.
func fullASCII(c byte) string {
	switch {
	case c == ' ', c == '-', c == '.',
		c >= '0' && c <= '9', c >= 'A' && c <= 'Z':
		return string(c)
	case c == 0:
		return "%U"
	case c <= 26:
		return "$" + string('A'+c-1)
	case c < ' ':
		return "%" + string('A'+c-27)
	case c == '/':
		return "/O"
	case c == ':':
		return "/Z"
	case c < '0':
		return "/" + string('A'+c-'!')
	case c == '@':
		return "%V"
	case c < 'A':
		return "%" + string('F'+c-';')
	case c <= '_':
		return "%" + string('K'+c-'[')
	case c == '`':
		return "%W"
	case c <= 'z':
		return "+" + string(c-'a'+'A')
	}
	return "%" + string('P'+c-'{')
}

// Escape tables.  Code 93 writes its shift symbols ($), (%), (/) and
// (+) as a, b, c and d, and encodes $, %, / and + natively.
var ascii39, ascii93 = func() (t39, t93 [128]string) {
	for i := range t39 {
		e := fullASCII(byte(i))
		t39[i], t93[i] = e, e
		if len(e) == 2 {
			if strings.IndexByte("$%/+", byte(i)) >= 0 {
				t93[i] = string(rune(i))
			} else {
				k := strings.IndexByte("$%/+", e[0])
				t93[i] = string("abcd"[k]) + e[1:]
			}
		}
	}
	return
}()

// An escaper converts ASCII text to full ASCII symbol streams.
type escaper struct {
	name string
	tbl  *[128]string
	def  memo.Map[string]
}

var (
	escape39 = &escaper{name: "code39", tbl: &ascii39}
	escape93 = &escaper{name: "code93", tbl: &ascii93}
)

// isASCII reports whether s is non-empty ASCII text.
func isASCII(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}

// escape returns s escaped, or false if s is not ASCII.
func (e *escaper) escape(s string, o *Options) (string, bool) {
	if !isASCII(s) {
		return "", false
	}
	var c memo.Cache[string] = &e.def
	if o.Escapes != nil {
		c = o.Escapes
	}
	key := e.name + ":" + s
	if t, ok := c.Get(key); ok {
		return t, true
	}
	var b strings.Builder
	b.Grow(len(s) * 2)
	for i := 0; i < len(s); i++ {
		b.WriteString(e.tbl[s[i]])
	}
	t := b.String()
	logger.L().Debug(e.name+": escaped", "bytes", len(s), "symbols", len(t))
	c.Put(key, t)
	return t, true
}
