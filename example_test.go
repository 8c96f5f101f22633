// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package barcode_test

import (
	"fmt"

	"github.com/unixdj/barcode"
)

func ExampleNew() {
	v, err := barcode.New(barcode.EAN13, "750103131130", false)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(v.Data(), v.Checksum())
	fmt.Println(v.Binary()[:11])
	// Output:
	// 7501031311309 9
	// 10101100010
}

func ExampleValue_Convert() {
	v, err := barcode.New(barcode.UPCA, "04210000526", false)
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, to := range []barcode.Symbology{barcode.UPCE, barcode.EAN13, barcode.Code128} {
		if u, err := v.Convert(to); err != nil {
			fmt.Println(err)
		} else {
			fmt.Println(u)
		}
	}
	// Output:
	// upce:04252614
	// ean13:0042100005264
	// upca to code128: barcode: unsupported conversion
}

func ExampleCode_String() {
	v, err := barcode.New(barcode.Postnet, "12345", false)
	if err != nil {
		fmt.Println(err)
		return
	}
	c := v.Code()
	c.Height, c.Border = 2, 0
	fmt.Print(c)
	// Output:
	// █ ▄ ▄ ▄ █ █ ▄ ▄ █ ▄ █ ▄ ▄ █ █ ▄ ▄ █ ▄ ▄ █ ▄ █ ▄ █ ▄ ▄ █ ▄ █ ▄ █
}
