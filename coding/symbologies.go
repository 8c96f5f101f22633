// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import (
	"regexp"
	"unicode/utf8"

	"github.com/unixdj/barcode/bars"
	"github.com/unixdj/barcode/checksum"
	"github.com/unixdj/barcode/split"
	"golang.org/x/text/encoding/charmap"
)

// matching returns a validator for the regular expression.
func matching(expr string) func(string) bool {
	return regexp.MustCompile(expr).MatchString
}

// always returns a fixed list of check algorithms.
func always(specs ...*checksum.Spec) func(string) []*checksum.Spec {
	return func(string) []*checksum.Spec { return specs }
}

var (
	isCode39  = matching(`^[0-9A-Z\-. $/+%]+$`)
	isCode11  = matching(`^[0-9\-]+$`)
	isDigits  = matching(`^[0-9]+$`)
	isEven    = matching(`^(?:[0-9]{2})+$`)
	isOdd     = matching(`^[0-9](?:[0-9]{2})*$`)
	isEAN13   = matching(`^[0-9]{12}$`)
	isPostnet = matching(`^(?:[0-9]{5}|[0-9]{9}|[0-9]{11})$`)
)

func isLatin1(s string) bool {
	if s == "" || !utf8.ValidString(s) {
		return false
	}
	for _, r := range s {
		if r >= 0x100 {
			return false
		}
	}
	return true
}

func latin1(s string, _ *Options) (string, bool) {
	t, err := charmap.ISO8859_1.NewEncoder().String(s)
	return t, err == nil
}

// upcaRaw returns the UPC-A raw digits of UPC-E raw digits.
func upcaRaw(raw string, _ *Options) (string, bool) {
	return ExpandUPCE(raw), true
}

// collection selects the collection slip check by value identifier.
func collection(s string) []*checksum.Spec {
	if len(s) > 2 && (s[2] == '8' || s[2] == '9') {
		return []*checksum.Spec{checksum.FebrabanCollection11}
	}
	return []*checksum.Spec{checksum.FebrabanCollection10}
}

func code128Check(d *SymbolData, o *Options) int {
	return split.Checksum(codewords(d, o, false))
}

var _stdsymbologies = []SymbologyEncoder{
	Code39: {
		Name:   "code39",
		Raw:    isCode39,
		Encode: encode39,
	},
	Code39Checksum: {
		Name:   "code39-checksum",
		Raw:    isCode39,
		Checks: always(checksum.Code39),
		Encode: encode39,
	},
	Code39Extended: {
		Name:    "code39-extended",
		Raw:     isASCII,
		Prepare: escape39.escape,
		Encode:  encode39,
	},
	Code39ExtendedChecksum: {
		Name:    "code39-extended-checksum",
		Raw:     isASCII,
		Prepare: escape39.escape,
		Checks:  always(checksum.Code39),
		Encode:  encode39,
	},
	Code93: {
		Name:    "code93",
		Raw:     isASCII,
		Prepare: escape93.escape,
		Checks:  always(checksum.Code93),
		Encode:  encode93,
	},
	Code128: {
		Name:    "code128",
		Raw:     isLatin1,
		Prepare: latin1,
		Encode: func(s *bars.Sequence, d *SymbolData, o *Options) {
			encode128(s, codewords(d, o, false), o)
		},
		CheckValue: code128Check,
	},
	EAN128: {
		Name:    "ean128",
		Raw:     isLatin1,
		Prepare: latin1,
		Encode: func(s *bars.Sequence, d *SymbolData, o *Options) {
			encode128(s, codewords(d, o, true), o)
		},
		CheckValue: func(d *SymbolData, o *Options) int {
			return split.Checksum(codewords(d, o, true))
		},
	},
	Code11: {
		Name:   "code11",
		Raw:    isCode11,
		Checks: always(checksum.Code11CK, checksum.Code11C),
		Compute: func(raw string) *checksum.Spec {
			if len(raw) < 10 {
				return checksum.Code11C
			}
			return checksum.Code11CK
		},
		Encode: encode11,
	},
	Code11C: {
		Name:   "code11-c",
		Raw:    isCode11,
		Checks: always(checksum.Code11C),
		Encode: encode11,
	},
	Code11CK: {
		Name:   "code11-ck",
		Raw:    isCode11,
		Checks: always(checksum.Code11CK),
		Encode: encode11,
	},
	Standard2of5: {
		Name:   "standard2of5",
		Raw:    isDigits,
		Encode: encodeStandard2of5,
	},
	Standard2of5Checksum: {
		Name:   "standard2of5-checksum",
		Raw:    isDigits,
		Checks: always(checksum.GS1),
		Encode: encodeStandard2of5,
	},
	Interleaved2of5: {
		Name:   "interleaved2of5",
		Raw:    isEven,
		Encode: encodeInterleaved,
	},
	Interleaved2of5Checksum: {
		Name:   "interleaved2of5-checksum",
		Raw:    isOdd,
		Checks: always(checksum.GS1),
		Encode: encodeInterleaved,
	},
	ITF14: {
		Name:   "itf14",
		Raw:    matching(`^[0-9]{13}$`),
		Checks: always(checksum.GS1),
		Encode: encodeInterleaved,
	},
	Codabar: {
		Name:   "codabar",
		Raw:    matching(`^[A-D][0-9\-$:/.+]+[A-D]$`),
		Encode: encodeCodabar,
	},
	MSI: {
		Name: "msi",
		Raw:  isDigits,
		Checks: always(checksum.MSI1010, checksum.MSI1110,
			checksum.MSI10, checksum.MSI11),
		Compute: func(string) *checksum.Spec { return checksum.MSI10 },
		Encode:  encodeMSI,
	},
	MSI10: {
		Name:   "msi-mod10",
		Raw:    isDigits,
		Checks: always(checksum.MSI10),
		Encode: encodeMSI,
	},
	MSI11: {
		Name:   "msi-mod11",
		Raw:    isDigits,
		Checks: always(checksum.MSI11),
		Encode: encodeMSI,
	},
	MSI1010: {
		Name:   "msi-mod1010",
		Raw:    isDigits,
		Checks: always(checksum.MSI1010),
		Encode: encodeMSI,
	},
	MSI1110: {
		Name:   "msi-mod1110",
		Raw:    isDigits,
		Checks: always(checksum.MSI1110),
		Encode: encodeMSI,
	},
	EAN13: {
		Name:   "ean13",
		Raw:    isEAN13,
		Checks: always(checksum.GS1),
		Encode: encodeEAN13,
	},
	EAN8: {
		Name:   "ean8",
		Raw:    matching(`^[0-9]{7}$`),
		Checks: always(checksum.GS1),
		Encode: encodeEAN8,
	},
	UPCA: {
		Name:   "upca",
		Raw:    matching(`^[0-9]{11}$`),
		Checks: always(checksum.GS1),
		Encode: encodeUPCA,
	},
	UPCE: {
		Name:    "upce",
		Raw:     matching(`^[01][0-9]{6}$`),
		Prepare: upcaRaw,
		Checks:  always(checksum.GS1),
		Encode:  encodeUPCE,
	},
	EAN2: {
		Name:   "ean2",
		Raw:    matching(`^[0-9]{2}$`),
		Encode: encodeEAN2,
	},
	EAN5: {
		Name:   "ean5",
		Raw:    matching(`^[0-9]{5}$`),
		Encode: encodeEAN5,
		CheckValue: func(d *SymbolData, _ *Options) int {
			return ean5Check(d.Text)
		},
	},
	ISBN: {
		Name:   "isbn",
		Raw:    matching(`^97[89][0-9]{9}$`),
		Checks: always(checksum.GS1),
		Encode: encodeEAN13,
	},
	ISSN: {
		Name:   "issn",
		Raw:    matching(`^977[0-9]{9}$`),
		Checks: always(checksum.GS1),
		Encode: encodeEAN13,
	},
	JAN: {
		Name:   "jan",
		Raw:    matching(`^4[59][0-9]{10}$`),
		Checks: always(checksum.GS1),
		Encode: encodeEAN13,
	},
	Postnet: {
		Name:   "postnet",
		Raw:    isPostnet,
		Checks: always(checksum.Postnet),
		Encode: encodePostnet,
		Half:   true,
	},
	Febraban: {
		Name:   "febraban",
		Raw:    matching(`^[0-9]{43}$`),
		Checks: always(checksum.Febraban),
		Encode: encodeInterleaved,
	},
	FebrabanCollection: {
		Name:   "febraban-collection",
		Raw:    matching(`^8[1-9][6-9][0-9]{40}$`),
		Checks: collection,
		Encode: encodeInterleaved,
	},
}
