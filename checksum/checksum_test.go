// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package checksum

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/intel/rsp-sw-toolkit-im-suite-expect"
	"github.com/pkg/errors"
)

func TestSums(t *testing.T) {
	w := expect.WrapT(t)
	v := []int{1, 2, 3, 4, 5}

	w.As("alternating").ShouldBeEqual(AlternatingSum(v, 3, 1), 5*3+4+3*3+2+1*3)
	w.As("alternating empty").ShouldBeEqual(AlternatingSum(nil, 3, 1), 0)
	w.As("crescent").ShouldBeEqual(CrescentSum(v, 1, 3), 5*1+4*2+3*3+2*1+1*2)
	w.As("crescent unbounded").ShouldBeEqual(CrescentSum(v, 2, 0), 5*2+4*3+3*4+2*5+1*6)
	w.As("decrescent").ShouldBeEqual(DecrescentSum(v, 3, 2), 5*3+4*2+3*3+2*2+1*3)
	w.As("decrescent to 0").ShouldBeEqual(DecrescentSum(v, 4, 0), 5*4+4*3+3*2+2*1)
	w.As("luhn").ShouldBeEqual(LuhnSum([]int{7, 9, 9, 2, 7, 3, 9, 8, 7, 1}), 67)
}

func TestCompute(t *testing.T) {
	for _, tt := range []struct {
		spec       *Spec
		raw, check string
	}{
		{GS1, "750103131130", "9"},
		{GS1, "03600029145", "2"},
		{GS1, "9638507", "4"},
		{GS1, "1234567890123", "1"},
		{Postnet, "12345", "5"},
		{Postnet, "555551237", "2"},
		{Code39, "CODE39", "W"},
		{Code93, "TEST93", "+6"},
		{Code11C, "123-45", "5"},
		{Code11CK, "123-45", "52"},
		{MSI10, "1234567", "4"},
		{MSI11, "1234567", "4"},
		{MSI10, "80523", "4"},
		{MSI11, "80523", "8"},
		{MSI1010, "80523", "42"},
		{MSI1110, "80523", "83"},
		{Febraban, "0019100000000100000000000000000000000000000", "1"},
		{Febraban, "2379775000000123453381260007827136950000633", "3"},
		{FebrabanCollection10, "8260000000100000000000000000000000000000000", "6"},
		{FebrabanCollection11, "8380000000100000000000000000000000000000123", "2"},
	} {
		t.Run(tt.spec.Name+"/"+tt.raw, func(t *testing.T) {
			w := expect.WrapT(t)
			check := w.ShouldHaveResult(tt.spec.Compute(tt.raw)).(string)
			w.ShouldBeEqual(check, tt.check)
			data := tt.spec.Insert(tt.raw, check)
			raw := w.ShouldHaveResult(tt.spec.Verify(data)).(string)
			w.ShouldBeEqual(raw, tt.raw)
		})
	}
}

func TestFebrabanPosition(t *testing.T) {
	w := expect.WrapT(t)
	raw := "2379775000000123453381260007827136950000633"
	data := Febraban.Insert(raw, "3")
	w.ShouldBeEqual(data, "23793775000000123453381260007827136950000633")
	r, c, ok := Febraban.Extract(data)
	w.ShouldBeTrue(ok)
	w.ShouldBeEqual(r, raw)
	w.ShouldBeEqual(c, "3")
}

func TestFebrabanDegenerate(t *testing.T) {
	w := expect.WrapT(t)
	for r := 0; r < 11; r++ {
		d := febrabanDigit(r)
		w.As(fmt.Sprint(r)).ShouldBeTrue(d >= 1 && d <= 9)
	}
	w.ShouldBeEqual(febrabanDigit(0), 1)
	w.ShouldBeEqual(febrabanDigit(1), 1)
	w.ShouldBeEqual(febrabanDigit(2), 9)
}

func TestVerifyFails(t *testing.T) {
	w := expect.WrapT(t)

	_, err := GS1.Verify("7501031311308")
	w.ShouldFail(err)
	w.ShouldBeEqual(errors.Cause(err), ErrInvalidChecksum)

	_, err = Code11CK.Verify("5")
	w.ShouldBeEqual(errors.Cause(err), ErrInvalidChecksum)

	_, err = GS1.Verify("12A4")
	w.ShouldBeEqual(errors.Cause(err), ErrInvalidSymbol)
}

// TestExtractInsert checks that Insert undoes Extract for all specs.
func TestExtractInsert(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	specs := []*Spec{GS1, Code39, Code93, Code11CK, MSI1110, Febraban,
		FebrabanCollection10}
	for _, s := range specs {
		a := s.alphabet()
		for i := 0; i < 100; i++ {
			b := make([]byte, 6+r.Intn(40))
			for j := range b {
				b[j] = a[r.Intn(len(a))]
			}
			d := string(b)
			raw, check, ok := s.Extract(d)
			if !ok {
				t.Fatalf("%s: can't extract from %q", s.Name, d)
			}
			if len(check) != s.Len() {
				t.Fatalf("%s: %q: check %q", s.Name, d, check)
			}
			if got := s.Insert(raw, check); got != d {
				t.Errorf("%s: Insert(Extract(%q)) = %q", s.Name, d, got)
			}
		}
	}
}

// TestSingleErrors checks that GS1 detects every single digit error.
func TestSingleErrors(t *testing.T) {
	raw := "400638133393"
	data := GS1.Insert(raw, mustCompute(GS1, raw))
	for i := 0; i < len(data); i++ {
		for d := byte('0'); d <= '9'; d++ {
			if d == data[i] {
				continue
			}
			bad := data[:i] + string(d) + data[i+1:]
			if _, err := GS1.Verify(bad); err == nil {
				t.Errorf("%s accepted", bad)
			}
		}
	}
}

func mustCompute(s *Spec, raw string) string {
	c, err := s.Compute(raw)
	if err != nil {
		panic(fmt.Sprint(s.Name, ": ", err))
	}
	return c
}
