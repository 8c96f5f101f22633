// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package barcode encodes linear barcodes.

A Value holds data of one symbology, validated and with its check
symbols resolved at construction.  The bars are computed when first
requested and kept for the lifetime of the Value.  Values are
immutable: WithField and Convert return new Values.

	v, err := barcode.New(barcode.EAN13, "750103131130", false)
	if err != nil {
		return err
	}
	fmt.Println(v.Data())      // 7501031311309
	png := v.Code().PNG()
*/
package barcode // import "github.com/unixdj/barcode"

import (
	"log/slog"
	"sync"

	"github.com/pkg/errors"
	"github.com/unixdj/barcode/bars"
	"github.com/unixdj/barcode/checksum"
	"github.com/unixdj/barcode/coding"
	"github.com/unixdj/barcode/internal/logger"
)

var (
	ErrInvalidData           = coding.ErrInvalidData
	ErrInvalidChecksum       = checksum.ErrInvalidChecksum
	ErrInvalidOptions        = coding.ErrInvalidOptions
	ErrUnresolvableField     = errors.New("barcode: unresolvable field")
	ErrUnsupportedConversion = errors.New("barcode: unsupported conversion")
)

// A Symbology is a barcode standard.
type Symbology = coding.Symbology

// Options configures the encoders.  See coding.Options.
type Options = coding.Options

// Symbologies.  See coding.Code39 and following for details.
const (
	Code39                  = coding.Code39
	Code39Checksum          = coding.Code39Checksum
	Code39Extended          = coding.Code39Extended
	Code39ExtendedChecksum  = coding.Code39ExtendedChecksum
	Code93                  = coding.Code93
	Code128                 = coding.Code128
	EAN128                  = coding.EAN128
	Code11                  = coding.Code11
	Code11C                 = coding.Code11C
	Code11CK                = coding.Code11CK
	Standard2of5            = coding.Standard2of5
	Standard2of5Checksum    = coding.Standard2of5Checksum
	Interleaved2of5         = coding.Interleaved2of5
	Interleaved2of5Checksum = coding.Interleaved2of5Checksum
	ITF14                   = coding.ITF14
	Codabar                 = coding.Codabar
	MSI                     = coding.MSI
	MSI10                   = coding.MSI10
	MSI11                   = coding.MSI11
	MSI1010                 = coding.MSI1010
	MSI1110                 = coding.MSI1110
	EAN13                   = coding.EAN13
	EAN8                    = coding.EAN8
	UPCA                    = coding.UPCA
	UPCE                    = coding.UPCE
	EAN2                    = coding.EAN2
	EAN5                    = coding.EAN5
	ISBN                    = coding.ISBN
	ISSN                    = coding.ISSN
	JAN                     = coding.JAN
	Postnet                 = coding.Postnet
	Febraban                = coding.Febraban
	FebrabanCollection      = coding.FebrabanCollection
)

// A Value is a barcode value.
type Value struct {
	d    *coding.SymbolData
	opts Options

	once sync.Once
	seq  *bars.Sequence
}

// New returns the Value of data in the symbology sym using the default
// options.  If hasChecksum is set, data includes check symbols, which
// are verified; otherwise they are computed.  Symbologies without
// check symbols ignore hasChecksum.
func New(sym Symbology, data string, hasChecksum bool) (*Value, error) {
	return NewWithOptions(sym, data, hasChecksum, nil)
}

// NewWithOptions is like New, using options o.  A nil o selects
// coding.DefaultOptions.  o is copied.
func NewWithOptions(sym Symbology, data string, hasChecksum bool, o *Options) (*Value, error) {
	opts := coding.DefaultOptions
	if o != nil {
		opts = *o
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	d, err := coding.Resolve(sym, data, hasChecksum, &opts)
	if err != nil {
		return nil, err
	}
	logger.L().Debug("barcode: resolved", "symbology", sym.String(),
		"data", d.Text, "checksum", d.Check)
	return &Value{d: d, opts: opts}, nil
}

// Symbology returns the symbology of v.
func (v *Value) Symbology() Symbology { return v.d.Symbology }

// Data returns the data including check symbols.
func (v *Value) Data() string { return v.d.Text }

// Checksum returns the check symbols.
func (v *Value) Checksum() string { return v.d.Check }

// RawData returns the data without check symbols.
func (v *Value) RawData() string { return v.d.Raw }

// CheckValue returns the value of the first check symbol, or of the
// check codeword for Code 128 and EAN-128, and whether v has one.
func (v *Value) CheckValue() (int, bool) { return v.d.CheckValue(&v.opts) }

// Options returns the options of v.
func (v *Value) Options() Options { return v.opts }

// Encoded returns the bars of v.  The sequence is closed.
func (v *Value) Encoded() *bars.Sequence {
	v.once.Do(func() {
		v.seq = v.d.Encode(&v.opts)
		logger.L().Debug("barcode: encoded", "symbology",
			v.d.Symbology.String(), "runs", v.seq.Len(),
			"width", v.seq.WidthFactor())
	})
	return v.seq
}

// Binary returns the bars of v as a string of '1' for each bar module
// and '0' for each space module.
func (v *Value) Binary() string { return v.Encoded().Binary() }

func (v *Value) String() string {
	return v.d.Symbology.String() + ":" + v.d.Text
}

// Code returns a Code rendering v with the default geometry.
func (v *Value) Code() *Code { return NewCode(v.Encoded()) }

// SetLogger sets the logger of the barcode packages.  Cache misses and
// encoding steps are logged at debug level.  The default logger
// discards all records; nil restores it.
func SetLogger(l *slog.Logger) { logger.Set(l) }

// Lookup returns the symbology with the given name, ignoring case.
func Lookup(name string) (Symbology, bool) { return coding.Lookup(name) }

// Symbologies returns all registered symbologies.
func Symbologies() []Symbology { return coding.Symbologies() }
