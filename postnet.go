// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package barcode

import (
	"github.com/pkg/errors"
	"github.com/unixdj/barcode/coding"
)

// FromBinary returns the Value of bars written by (*Value).BarBits.
// Only Postnet is supported; other symbologies return an error
// wrapping ErrUnsupportedConversion.  Malformed bars return an error
// wrapping ErrInvalidData, and a wrong check digit one wrapping
// ErrInvalidChecksum.
func FromBinary(sym Symbology, bits string) (*Value, error) {
	if sym != Postnet {
		return nil, errors.Wrapf(ErrUnsupportedConversion,
			"%v from binary", sym)
	}
	digits, ok := coding.ParsePostnet(bits)
	if !ok {
		return nil, errors.Wrapf(ErrInvalidData, "%v: bars %q", sym, bits)
	}
	return New(sym, digits, true)
}

// BarBits returns the bars of a Postnet value, '1' for a full and '0'
// for a half height bar, including the frame bars, and whether v is a
// Postnet value.
func (v *Value) BarBits() (string, bool) {
	if v.d.Symbology != Postnet {
		return "", false
	}
	return coding.PostnetBits(v.d.Text), true
}
