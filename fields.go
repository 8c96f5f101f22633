// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package barcode

import (
	"strconv"
	"time"

	"github.com/pkg/errors"
)

// A Field is a fixed-position group of digits of a structured
// symbology.
type Field int

const (
	NumberSystem Field = iota // UPC number system
	Manufacturer              // UPC manufacturer code
	Product                   // product code
	Prefix                    // GS1 prefix
	Bank                      // Febraban bank code
	Currency                  // Febraban currency code
	DueFactor                 // Febraban due date factor
	Amount                    // Febraban amount in cents
	FreeField                 // Febraban free field, collection company data
	Segment                   // Febraban collection segment
	ValueID                   // Febraban collection value identifier
)

var fieldNames = [...]string{
	NumberSystem: "number system",
	Manufacturer: "manufacturer",
	Product:      "product",
	Prefix:       "prefix",
	Bank:         "bank",
	Currency:     "currency",
	DueFactor:    "due factor",
	Amount:       "amount",
	FreeField:    "free field",
	Segment:      "segment",
	ValueID:      "value id",
}

func (f Field) String() string {
	if f < 0 || int(f) >= len(fieldNames) {
		return "Field(" + strconv.Itoa(int(f)) + ")"
	}
	return fieldNames[f]
}

// A span is a field position in the data including check symbols.
type span struct {
	f          Field
	start, len int
}

var gs1Fields = []span{{Prefix, 0, 3}, {Product, 3, 9}}

var fieldSpans = map[Symbology][]span{
	UPCA:  {{NumberSystem, 0, 1}, {Manufacturer, 1, 5}, {Product, 6, 5}},
	UPCE:  {{NumberSystem, 0, 1}, {Product, 1, 6}},
	EAN13: gs1Fields,
	ISBN:  gs1Fields,
	ISSN:  gs1Fields,
	JAN:   gs1Fields,
	EAN8:  {{Prefix, 0, 3}, {Product, 3, 4}},
	Febraban: {
		{Bank, 0, 3}, {Currency, 3, 1}, {DueFactor, 5, 4},
		{Amount, 9, 10}, {FreeField, 19, 25},
	},
	FebrabanCollection: {
		{Segment, 1, 1}, {ValueID, 2, 1}, {Amount, 4, 11},
		{FreeField, 15, 29},
	},
}

func (v *Value) span(f Field) (span, bool) {
	for _, sp := range fieldSpans[v.d.Symbology] {
		if sp.f == f {
			return sp, true
		}
	}
	return span{}, false
}

// Field returns the digits of field f, and whether the symbology of v
// has it.
func (v *Value) Field(f Field) (string, bool) {
	sp, ok := v.span(f)
	if !ok {
		return "", false
	}
	return v.d.Text[sp.start : sp.start+sp.len], true
}

// Fields returns the fields of the symbology of v in order.
func (v *Value) Fields() []Field {
	spans := fieldSpans[v.d.Symbology]
	fs := make([]Field, len(spans))
	for i, sp := range spans {
		fs[i] = sp.f
	}
	return fs
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// WithField returns a copy of v with field f set to digits and check
// symbols recomputed.  digits must be exactly as long as the field.
// The error wraps ErrUnresolvableField if the symbology has no such
// field, digits don't fit it, or the result is not valid.
func (v *Value) WithField(f Field, digits string) (*Value, error) {
	sp, ok := v.span(f)
	if !ok {
		return nil, errors.Wrapf(ErrUnresolvableField, "%v has no %v",
			v.d.Symbology, f)
	}
	if len(digits) != sp.len || !isDigits(digits) {
		return nil, errors.Wrapf(ErrUnresolvableField,
			"%v: %q is not %d digits", f, digits, sp.len)
	}
	text := v.d.Text[:sp.start] + digits + v.d.Text[sp.start+sp.len:]
	nv, err := NewWithOptions(v.d.Symbology, v.withoutCheck(text),
		false, &v.opts)
	if err != nil {
		return nil, errors.Wrapf(ErrUnresolvableField, "%v: %v", f, err)
	}
	return nv, nil
}

// withoutCheck removes the check symbols from text laid out like the
// data of v.
func (v *Value) withoutCheck(text string) string {
	if v.d.Spec == nil {
		return text
	}
	raw, _, ok := v.d.Spec.Extract(text)
	if !ok {
		return text
	}
	return raw
}

// FebrabanEpoch is the day of due date factor 0.
var FebrabanEpoch = time.Date(1997, time.October, 7, 0, 0, 0, 0, time.UTC)

// DueDate returns the due date of a Febraban bank slip, and whether v
// has one.  Factor 0 means no due date.
func (v *Value) DueDate() (time.Time, bool) {
	s, ok := v.Field(DueFactor)
	if !ok {
		return time.Time{}, false
	}
	n, _ := strconv.Atoi(s)
	if n == 0 {
		return time.Time{}, false
	}
	return FebrabanEpoch.AddDate(0, 0, n), true
}
