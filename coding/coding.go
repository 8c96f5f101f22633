// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package coding implements low-level linear barcode coding details:
// validation, check symbols and bar patterns of each symbology.
package coding // import "github.com/unixdj/barcode/coding"

import (
	"fmt"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/pkg/errors"
	"github.com/unixdj/barcode/bars"
	"github.com/unixdj/barcode/checksum"
	"github.com/unixdj/barcode/memo"
	"github.com/unixdj/barcode/split"
)

var (
	ErrInvalidData    = errors.New("barcode: invalid data")
	ErrInvalidOptions = errors.New("barcode: invalid options")
)

// Options configures the encoders.
type Options struct {
	// Narrow and Wide are the element widths of two-width
	// symbologies in modules.  Fixed-width symbologies use Narrow
	// as the module width.  Wide must exceed Narrow, and Narrow
	// must be positive.
	Narrow, Wide float64

	// Splitter converts Code 128 text to codewords.  If nil,
	// split.Default is used.
	Splitter *split.Splitter

	// Escapes caches full ASCII escape sequences of Code 39 and
	// Code 93 text.  If nil, a package-wide unbounded cache is used.
	Escapes memo.Cache[string]
}

// DefaultOptions is used when Options are nil.
var DefaultOptions = Options{Narrow: 1, Wide: 2}

// Validate returns ErrInvalidOptions unless wide > narrow > 0.
func (o *Options) Validate() error {
	if !(o.Narrow > 0 && o.Wide > o.Narrow) {
		return errors.Wrapf(ErrInvalidOptions, "narrow %g, wide %g",
			o.Narrow, o.Wide)
	}
	return nil
}

func (o *Options) orDefault() *Options {
	if o == nil {
		return &DefaultOptions
	}
	return o
}

func (o *Options) splitter() *split.Splitter {
	if o.Splitter == nil {
		return split.Default
	}
	return o.Splitter
}

// A Symbology is a barcode standard.
type Symbology int16

// Predefined symbologies.
const (
	Code39                 Symbology = iota // Code 39, no check
	Code39Checksum                          // Code 39, mod 43 check
	Code39Extended                          // Code 39 full ASCII, no check
	Code39ExtendedChecksum                  // Code 39 full ASCII, mod 43 check
	Code93                                  // Code 93 full ASCII, C and K checks
	Code128                                 // Code 128, ISO 8859-1 text
	EAN128                                  // GS1-128, FNC1 after start
	Code11                                  // Code 11, C or C and K checks
	Code11C                                 // Code 11, C check
	Code11CK                                // Code 11, C and K checks
	Standard2of5                            // Industrial 2 of 5, no check
	Standard2of5Checksum                    // Industrial 2 of 5, mod 10 check
	Interleaved2of5                         // Interleaved 2 of 5, no check
	Interleaved2of5Checksum                 // Interleaved 2 of 5, mod 10 check
	ITF14                                   // ITF-14
	Codabar                                 // Codabar, start and stop in data
	MSI                                     // MSI Plessey, any check
	MSI10                                   // MSI Plessey, mod 10 check
	MSI11                                   // MSI Plessey, mod 11 check
	MSI1010                                 // MSI Plessey, two mod 10 checks
	MSI1110                                 // MSI Plessey, mod 11 and mod 10 checks
	EAN13                                   // EAN-13
	EAN8                                    // EAN-8
	UPCA                                    // UPC-A
	UPCE                                    // UPC-E
	EAN2                                    // EAN-2 add-on
	EAN5                                    // EAN-5 add-on
	ISBN                                    // EAN-13 with prefix 978 or 979
	ISSN                                    // EAN-13 with prefix 977
	JAN                                     // EAN-13 with prefix 45 or 49
	Postnet                                 // POSTNET
	Febraban                                // Brazilian bank slip
	FebrabanCollection                      // Brazilian collection slip
)

// SymbolData is validated data with check symbols resolved.
type SymbolData struct {
	Symbology Symbology
	Text      string         // data including check symbols
	Raw       string         // data without check symbols
	Check     string         // check symbols
	Symbols   string         // Raw as seen by the check algorithm
	Spec      *checksum.Spec // check algorithm, nil if none
}

// SymbologyEncoder implements a symbology.
//
// Raw validates data without check symbols.  Prepare, if set,
// converts valid raw data for the check algorithm and the encoder,
// reporting whether the conversion succeeded.
//
// Checks returns the candidate check algorithms for data with check
// symbols, in the order they are tried.  If Checks is nil, the
// symbology has no check symbols, and the check flag of Resolve is
// ignored.  Compute returns the algorithm adding check symbols to raw
// data; if nil, the first of Checks is used.
//
// Encode appends the bars of d to s.  Half selects a sequence with
// bars of different heights.  CheckValue, if set, returns the check
// value of symbologies without check symbols in text.
//
// Name, Raw and Encode must be set.
type SymbologyEncoder struct {
	Name       string
	Raw        func(raw string) bool
	Prepare    func(raw string, o *Options) (string, bool)
	Checks     func(data string) []*checksum.Spec
	Compute    func(raw string) *checksum.Spec
	Encode     func(s *bars.Sequence, d *SymbolData, o *Options)
	Half       bool
	CheckValue func(d *SymbolData, o *Options) int
}

// SymbologyError represents an invalid Symbology.
type SymbologyError Symbology

func (e SymbologyError) Error() string {
	return fmt.Sprintf("barcode: invalid symbology %d", int(e))
}

var (
	symp    atomic.Pointer[[]SymbologyEncoder] // symbologies
	symLock sync.Mutex                         // write lock
)

func init() { symp.Store(&_stdsymbologies) }

func getSymbology(sym Symbology) *SymbologyEncoder {
	if syms := *symp.Load(); sym >= 0 && int(sym) < len(syms) {
		return &syms[sym]
	}
	return nil
}

func (sym Symbology) String() string {
	if m := getSymbology(sym); m != nil {
		return m.Name
	}
	return fmt.Sprint(int(sym))
}

// GetSymbology returns a copy of SymbologyEncoder for sym.  It can be
// used to base the implementation of a new symbology on an existing
// one.
func GetSymbology(sym Symbology) *SymbologyEncoder {
	if m := getSymbology(sym); m != nil {
		mm := *m
		return &mm
	}
	return nil
}

// AddSymbology registers a symbology, returning its number on success
// or -1 on failure.
func AddSymbology(m *SymbologyEncoder) Symbology {
	var sym Symbology = -1
	if m.Name == "" || m.Raw == nil || m.Encode == nil {
		return sym
	}
	symLock.Lock()
	if syms := *symp.Load(); len(syms) < 0x8000 {
		sym = Symbology(len(syms))
		syms = append(syms[:len(syms):len(syms)], *m)
		symp.Store(&syms)
	}
	symLock.Unlock()
	return sym
}

// Symbologies returns all registered symbologies.
func Symbologies() []Symbology {
	n := len(*symp.Load())
	s := make([]Symbology, n)
	for i := range s {
		s[i] = Symbology(i)
	}
	return s
}

// Lookup returns the symbology with the given name, ignoring case.
func Lookup(name string) (Symbology, bool) {
	for i, m := range *symp.Load() {
		if strings.EqualFold(m.Name, name) {
			return Symbology(i), true
		}
	}
	return -1, false
}

func (m *SymbologyEncoder) prepare(raw string, o *Options) (string, bool) {
	if !m.Raw(raw) {
		return "", false
	}
	if m.Prepare == nil {
		return raw, true
	}
	return m.Prepare(raw, o)
}

func (m *SymbologyEncoder) checks(data string) []*checksum.Spec {
	if m.Checks == nil {
		return nil
	}
	return m.Checks(data)
}

// Resolve validates data and resolves its check symbols.  If check is
// set, data includes check symbols, which are verified by trying the
// candidate algorithms in their fixed order.  Otherwise, check symbols
// are computed and inserted.
//
// Resolve returns an error wrapping ErrInvalidData if no candidate
// reading of data is valid, or checksum.ErrInvalidChecksum if some
// are, but none of their check symbols match.
func Resolve(sym Symbology, data string, check bool, o *Options) (*SymbolData, error) {
	m := getSymbology(sym)
	if m == nil {
		return nil, SymbologyError(sym)
	}
	o = o.orDefault()
	if err := o.Validate(); err != nil {
		return nil, err
	}
	specs := m.checks(data)
	if len(specs) == 0 || !check {
		syms, ok := m.prepare(data, o)
		if !ok {
			return nil, errors.Wrapf(ErrInvalidData, "%s: %q", m.Name, data)
		}
		d := &SymbolData{Symbology: sym, Text: data, Raw: data, Symbols: syms}
		if len(specs) == 0 {
			return d, nil
		}
		spec := specs[0]
		if m.Compute != nil {
			spec = m.Compute(data)
		}
		c, err := spec.Compute(syms)
		if err != nil {
			return nil, errors.Wrapf(ErrInvalidData, "%s: %v", m.Name, err)
		}
		d.Text, d.Check, d.Spec = spec.Insert(data, c), c, spec
		return d, nil
	}
	shaped := false
	for _, spec := range specs {
		raw, c, ok := spec.Extract(data)
		if !ok {
			continue
		}
		syms, ok := m.prepare(raw, o)
		if !ok {
			continue
		}
		shaped = true
		if want, err := spec.Compute(syms); err == nil && want == c {
			return &SymbolData{sym, data, raw, c, syms, spec}, nil
		}
	}
	if shaped {
		return nil, errors.Wrapf(checksum.ErrInvalidChecksum, "%s: %q",
			m.Name, data)
	}
	return nil, errors.Wrapf(ErrInvalidData, "%s: %q", m.Name, data)
}

// IsValid reports whether data is valid for sym.
func IsValid(sym Symbology, data string, check bool) bool {
	_, err := Resolve(sym, data, check, nil)
	return err == nil
}

// Encode returns the bars of d.  The sequence is closed.
func (d *SymbolData) Encode(o *Options) *bars.Sequence {
	m := getSymbology(d.Symbology)
	if m == nil {
		panic(SymbologyError(d.Symbology))
	}
	s := bars.New()
	if m.Half {
		s = bars.NewHalf()
	}
	m.Encode(s, d, o.orDefault())
	s.Close()
	return s
}

// CheckValue returns the check value of d and whether it has one.
// For symbologies with check symbols it is the value of the first
// symbol.
func (d *SymbolData) CheckValue(o *Options) (int, bool) {
	m := getSymbology(d.Symbology)
	switch {
	case m == nil:
		return 0, false
	case m.CheckValue != nil:
		return m.CheckValue(d, o.orDefault()), true
	case d.Spec == nil:
		return 0, false
	}
	v, err := d.Spec.Value(d.Symbols)
	return v, err == nil
}
