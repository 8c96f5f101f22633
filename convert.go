// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package barcode

import (
	"github.com/pkg/errors"
	"github.com/unixdj/barcode/coding"
)

// families of symbologies sharing raw data.
var families = [][]Symbology{
	{Code11, Code11C, Code11CK},
	{MSI, MSI10, MSI11, MSI1010, MSI1110},
	{Code39, Code39Checksum, Code39Extended, Code39ExtendedChecksum},
	{Standard2of5, Standard2of5Checksum},
	{Interleaved2of5, Interleaved2of5Checksum},
	{EAN13, ISBN, ISSN, JAN},
}

func family(sym Symbology) int {
	for i, f := range families {
		for _, s := range f {
			if s == sym {
				return i
			}
		}
	}
	return -1
}

// isEAN13 reports whether sym is EAN-13 or one of its prefixed forms.
func isEAN13(sym Symbology) bool { return family(sym) == family(EAN13) }

// Convert returns v in the symbology to, with check symbols
// recomputed.  Supported conversions are between members of a family
// (Code 11, MSI, Code 39, Standard 2 of 5, Interleaved 2 of 5, and
// EAN-13 with ISBN, ISSN and JAN), between EAN-13 with number system 0
// and UPC-A, between UPC-A and UPC-E where zero suppression applies,
// and between EAN-13 and ITF-14 with indicator 0.  GS1 item numbers
// convert through EAN-13, so UPC-E converts to ITF-14 as well.
//
// The error wraps ErrUnsupportedConversion if the conversion is not
// supported or the data of v is not valid in to.
func (v *Value) Convert(to Symbology) (*Value, error) {
	from := v.d.Symbology
	if from == to {
		return v, nil
	}
	raw, ok := v.convertRaw(to)
	if !ok {
		return nil, errors.Wrapf(ErrUnsupportedConversion, "%v to %v",
			from, to)
	}
	nv, err := NewWithOptions(to, raw, false, &v.opts)
	if err != nil {
		return nil, errors.Wrapf(ErrUnsupportedConversion, "%v to %v: %v",
			from, to, err)
	}
	return nv, nil
}

// gtin returns the EAN-13 raw digits of GS1 item numbers.
func gtin(sym Symbology, raw string) (string, bool) {
	switch {
	case isEAN13(sym):
		return raw, true
	case sym == UPCA:
		return "0" + raw, true
	case sym == UPCE:
		return "0" + coding.ExpandUPCE(raw), true
	case sym == ITF14 && raw[0] == '0':
		return raw[1:], true
	}
	return "", false
}

// convertRaw returns the raw data of v in to.
func (v *Value) convertRaw(to Symbology) (string, bool) {
	from, raw := v.d.Symbology, v.d.Raw
	if f := family(from); f >= 0 && f == family(to) {
		return raw, true
	}
	g, ok := gtin(from, raw)
	if !ok {
		return "", false
	}
	switch {
	case isEAN13(to):
		return g, true
	case to == ITF14:
		return "0" + g, true
	case g[0] != '0':
		return "", false
	case to == UPCA:
		return g[1:], true
	case to == UPCE:
		return coding.CompressUPCA(g[1:])
	}
	return "", false
}
