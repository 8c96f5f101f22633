// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package checksum

// Symbol alphabets in check value order.
const (
	// Code39Alphabet lists the Code 39 symbols by value.
	Code39Alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ-. $/+%"

	// Code93Alphabet lists the Code 93 symbols by value.  The
	// shift symbols ($), (%), (/) and (+) are written as a, b, c
	// and d.
	Code93Alphabet = Code39Alphabet + "abcd"

	// Code11Alphabet lists the Code 11 symbols by value.
	Code11Alphabet = "0123456789-"
)

// Predefined check algorithms.
var (
	// GS1 mod 10: EAN, UPC, ITF and 2 of 5 codes.
	GS1 = &Spec{
		Name:       "gs1",
		Cycle:      Alternating,
		Weights:    [2]int{3, 1},
		Modulus:    10,
		Complement: true,
	}

	// Postnet makes the digit sum a multiple of 10.
	Postnet = &Spec{
		Name:       "postnet",
		Cycle:      Alternating,
		Weights:    [2]int{1, 1},
		Modulus:    10,
		Complement: true,
	}

	Code39 = &Spec{
		Name:     "code39",
		Cycle:    Alternating,
		Weights:  [2]int{1, 1},
		Modulus:  43,
		Alphabet: Code39Alphabet,
	}

	// Code93 computes the C and K check symbols.
	Code93 = &Spec{
		Name:     "code93-c",
		Cycle:    Crescent,
		Weights:  [2]int{1, 20},
		Modulus:  47,
		Alphabet: Code93Alphabet,
		Then: &Spec{
			Name:     "code93-k",
			Cycle:    Crescent,
			Weights:  [2]int{1, 15},
			Modulus:  47,
			Alphabet: Code93Alphabet,
		},
	}

	Code11C = &Spec{
		Name:     "code11-c",
		Cycle:    Crescent,
		Weights:  [2]int{1, 10},
		Modulus:  11,
		Alphabet: Code11Alphabet,
	}

	code11K = &Spec{
		Name:     "code11-k",
		Cycle:    Crescent,
		Weights:  [2]int{1, 9},
		Modulus:  11,
		Alphabet: Code11Alphabet,
	}

	Code11CK = &Spec{
		Name:     "code11-ck",
		Cycle:    Crescent,
		Weights:  [2]int{1, 10},
		Modulus:  11,
		Alphabet: Code11Alphabet,
		Then:     code11K,
	}

	MSI10 = &Spec{
		Name:       "msi-mod10",
		Cycle:      Luhn,
		Modulus:    10,
		Complement: true,
	}

	// MSI11 uses the IBM weights 2 to 7.  A check value of 10 is
	// written as 0.
	MSI11 = &Spec{
		Name:       "msi-mod11",
		Cycle:      Crescent,
		Weights:    [2]int{2, 7},
		Modulus:    11,
		Complement: true,
		Map:        func(c int) int { return c % 10 },
	}

	MSI1010 = &Spec{
		Name:       "msi-mod1010",
		Cycle:      Luhn,
		Modulus:    10,
		Complement: true,
		Then:       MSI10,
	}

	MSI1110 = &Spec{
		Name:       "msi-mod1110",
		Cycle:      Crescent,
		Weights:    [2]int{2, 7},
		Modulus:    11,
		Complement: true,
		Map:        func(c int) int { return c % 10 },
		Then:       MSI10,
	}

	// Febraban is the bank slip digit at index 4.  Remainders
	// giving 0, 10 or 11 yield 1.
	Febraban = &Spec{
		Name:     "febraban",
		Cycle:    Crescent,
		Weights:  [2]int{2, 9},
		Modulus:  11,
		Map:      febrabanDigit,
		Position: 4,
	}

	// FebrabanCollection10 and FebrabanCollection11 are the
	// collection slip digits at index 3, for value identifiers 6, 7
	// and 8, 9 respectively.
	FebrabanCollection10 = &Spec{
		Name:       "febraban-collection-mod10",
		Cycle:      Luhn,
		Modulus:    10,
		Complement: true,
		Position:   3,
	}

	FebrabanCollection11 = &Spec{
		Name:     "febraban-collection-mod11",
		Cycle:    Crescent,
		Weights:  [2]int{2, 9},
		Modulus:  11,
		Map:      func(r int) int { return (11 - r) % 11 % 10 },
		Position: 3,
	}
)

func febrabanDigit(r int) int {
	switch d := 11 - r; d {
	case 0, 1, 10, 11:
		return 1
	default:
		return d
	}
}
