// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

// ExpandUPCE returns the UPC-A digits of UPC-E digits e: the number
// system and six digits, optionally followed by the check digit, which
// is copied.  e is not validated.
func ExpandUPCE(e string) string {
	ns, d, tail := e[:1], e[1:7], e[7:]
	var m, p string // manufacturer and product
	switch last := d[5]; {
	case last <= '2':
		m, p = d[:2]+d[5:]+"00", "00"+d[2:5]
	case last == '3':
		m, p = d[:3]+"00", "000"+d[3:5]
	case last == '4':
		m, p = d[:4]+"0", "0000"+d[4:5]
	default:
		m, p = d[:5], "0000"+d[5:]
	}
	return ns + m + p + tail
}

// CompressUPCA returns the UPC-E digits of UPC-A digits a, 11 or 12
// with check digit, and whether a is representable in UPC-E.
func CompressUPCA(a string) (string, bool) {
	if len(a) < 11 || a[0] != '0' && a[0] != '1' {
		return "", false
	}
	ns, m, p, tail := a[:1], a[1:6], a[6:11], a[11:]
	for _, d := range [...]string{
		m[:2] + p[2:] + m[2:3], // manufacturer X X 0-2 0 0
		m[:3] + p[3:] + "3",    // manufacturer X X X 0 0
		m[:4] + p[4:] + "4",    // manufacturer X X X X 0
		m + p[4:],              // product 0 0 0 0 5-9
	} {
		if e := ns + d + tail; ExpandUPCE(e) == a {
			return e, true
		}
	}
	return "", false
}
