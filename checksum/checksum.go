// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package checksum implements the weighted-sum check digit algorithms
used by linear barcodes.

All sums consume values right to left, starting at the symbol nearest
to the check digit.  A Spec describes a complete algorithm: how
weights cycle, the modulus, the symbols check values are written as,
and where the check symbol is placed in the data.
*/
package checksum // import "github.com/unixdj/barcode/checksum"

import (
	"strings"

	"github.com/pkg/errors"
)

var (
	ErrInvalidChecksum = errors.New("barcode: invalid checksum")
	ErrInvalidSymbol   = errors.New("barcode: symbol outside checksum alphabet")
)

// AlternatingSum returns the sum of values weighted alternately by w1
// and w2, w1 applying to the rightmost value.
func AlternatingSum(values []int, w1, w2 int) int {
	sum := 0
	for i, k := len(values)-1, 0; i >= 0; i, k = i-1, k+1 {
		if k&1 == 0 {
			sum += values[i] * w1
		} else {
			sum += values[i] * w2
		}
	}
	return sum
}

// CrescentSum returns the sum of values weighted by min, min+1 and so
// on from the right.  When the weight would exceed max, it restarts at
// min.  If max is less than min, the weight grows without bound.
func CrescentSum(values []int, min, max int) int {
	sum, w := 0, min
	for i := len(values) - 1; i >= 0; i-- {
		sum += values[i] * w
		if w++; max >= min && w > max {
			w = min
		}
	}
	return sum
}

// DecrescentSum returns the sum of values weighted by max, max-1 and
// so on from the right.  When the weight would fall below min, it
// restarts at max.
func DecrescentSum(values []int, max, min int) int {
	sum, w := 0, max
	for i := len(values) - 1; i >= 0; i-- {
		sum += values[i] * w
		if w--; w < min {
			w = max
		}
	}
	return sum
}

// LuhnSum returns the Luhn sum of decimal digits: every other digit,
// starting with the rightmost, is doubled and the digits of the
// products are added.
func LuhnSum(values []int) int {
	sum := 0
	for i, k := len(values)-1, 0; i >= 0; i, k = i-1, k+1 {
		v := values[i]
		if k&1 == 0 {
			if v *= 2; v > 9 {
				v -= 9
			}
		}
		sum += v
	}
	return sum
}

// A Cycle selects the weighted sum of a Spec.
type Cycle byte

const (
	Alternating Cycle = iota // AlternatingSum(values, Weights[0], Weights[1])
	Crescent                 // CrescentSum(values, Weights[0], Weights[1])
	Decrescent               // DecrescentSum(values, Weights[0], Weights[1])
	Luhn                     // LuhnSum(values), Weights unused
)

const digits = "0123456789"

// A Spec describes a check symbol algorithm.
//
// The check value is the weighted sum of the data symbol values modulo
// Modulus, complemented to Modulus if Complement is set, and passed
// through Map if it is not nil.  Symbol values are indices into
// Alphabet, which defaults to decimal digits; the check value is
// written as the Alphabet symbol of that index.
//
// Position is the index of the check symbol in the data.  Zero means
// the symbol is appended.  If Then is not nil, a second check symbol
// computed by Then over the data including the first is appended.
type Spec struct {
	Name       string
	Cycle      Cycle
	Weights    [2]int
	Modulus    int
	Complement bool
	Map        func(int) int
	Alphabet   string
	Position   int
	Then       *Spec
}

func (s *Spec) alphabet() string {
	if s.Alphabet == "" {
		return digits
	}
	return s.Alphabet
}

// Len returns the number of check symbols.
func (s *Spec) Len() int {
	if s.Then != nil {
		return 1 + s.Then.Len()
	}
	return 1
}

// Values converts data to symbol values.
func (s *Spec) Values(data string) ([]int, error) {
	a := s.alphabet()
	v := make([]int, len(data))
	for i := 0; i < len(data); i++ {
		if v[i] = strings.IndexByte(a, data[i]); v[i] < 0 {
			return nil, errors.Wrapf(ErrInvalidSymbol,
				"%s: %q at %d", s.Name, data[i], i)
		}
	}
	return v, nil
}

// Sum returns the weighted sum of values.
func (s *Spec) Sum(values []int) int {
	switch s.Cycle {
	case Crescent:
		return CrescentSum(values, s.Weights[0], s.Weights[1])
	case Decrescent:
		return DecrescentSum(values, s.Weights[0], s.Weights[1])
	case Luhn:
		return LuhnSum(values)
	}
	return AlternatingSum(values, s.Weights[0], s.Weights[1])
}

// Value returns the first check value for raw data without check
// symbols.
func (s *Spec) Value(raw string) (int, error) {
	v, err := s.Values(raw)
	if err != nil {
		return 0, err
	}
	c := s.Sum(v) % s.Modulus
	if s.Complement {
		c = (s.Modulus - c) % s.Modulus
	}
	if s.Map != nil {
		c = s.Map(c)
	}
	return c, nil
}

// Compute returns the check symbols for raw data.
func (s *Spec) Compute(raw string) (string, error) {
	c, err := s.Value(raw)
	if err != nil {
		return "", err
	}
	a := s.alphabet()
	if c < 0 || c >= len(a) {
		return "", errors.Wrapf(ErrInvalidSymbol,
			"%s: check value %d", s.Name, c)
	}
	check := a[c : c+1]
	if s.Then != nil {
		next, err := s.Then.Compute(s.insert(raw, check))
		if err != nil {
			return "", err
		}
		check += next
	}
	return check, nil
}

func (s *Spec) insert(raw, c string) string {
	if s.Position == 0 || s.Position >= len(raw) {
		return raw + c
	}
	return raw[:s.Position] + c + raw[s.Position:]
}

// Insert returns raw with the check symbols inserted.
// It is the inverse of Extract.
func (s *Spec) Insert(raw, check string) string {
	if check == "" {
		return raw
	}
	return s.insert(raw, check[:1]) + check[1:]
}

// Extract splits data into raw data and check symbols.  ok is false if
// data is too short to hold them.
func (s *Spec) Extract(data string) (raw, check string, ok bool) {
	tail := s.Len() - 1
	n := len(data) - tail
	if n < 1 || s.Position != 0 && n <= s.Position {
		return "", "", false
	}
	body, rest := data[:n], data[n:]
	if s.Position == 0 {
		return body[:n-1], body[n-1:] + rest, true
	}
	p := s.Position
	return body[:p] + body[p+1:], body[p:p+1] + rest, true
}

// Verify checks the check symbols in data, returning the raw data.
func (s *Spec) Verify(data string) (string, error) {
	raw, check, ok := s.Extract(data)
	if !ok {
		return "", errors.Wrapf(ErrInvalidChecksum,
			"%s: %q too short", s.Name, data)
	}
	want, err := s.Compute(raw)
	if err != nil {
		return "", err
	}
	if want != check {
		return "", errors.Wrapf(ErrInvalidChecksum,
			"%s: %q has %q, want %q", s.Name, data, check, want)
	}
	return raw, nil
}
