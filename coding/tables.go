// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

// Symbol tables.  Two-width symbols are strings of 'n' (narrow) and
// 'w' (wide) elements, alternating bar and space from a bar.
// Fixed-width symbols are strings or bits of modules, 1 for bar.

// Code 39 symbols: nine elements from bar to bar.
var code39tbl = [128]string{
	'0': "nnnwwnwnn",
	'1': "wnnwnnnnw",
	'2': "nnwwnnnnw",
	'3': "wnwwnnnnn",
	'4': "nnnwwnnnw",
	'5': "wnnwwnnnn",
	'6': "nnwwwnnnn",
	'7': "nnnwnnwnw",
	'8': "wnnwnnwnn",
	'9': "nnwwnnwnn",
	'A': "wnnnnwnnw",
	'B': "nnwnnwnnw",
	'C': "wnwnnwnnn",
	'D': "nnnnwwnnw",
	'E': "wnnnwwnnn",
	'F': "nnwnwwnnn",
	'G': "nnnnnwwnw",
	'H': "wnnnnwwnn",
	'I': "nnwnnwwnn",
	'J': "nnnnwwwnn",
	'K': "wnnnnnnww",
	'L': "nnwnnnnww",
	'M': "wnwnnnnwn",
	'N': "nnnnwnnww",
	'O': "wnnnwnnwn",
	'P': "nnwnwnnwn",
	'Q': "nnnnnnwww",
	'R': "wnnnnnwwn",
	'S': "nnwnnnwwn",
	'T': "nnnnwnwwn",
	'U': "wwnnnnnnw",
	'V': "nwwnnnnnw",
	'W': "wwwnnnnnn",
	'X': "nwnnwnnnw",
	'Y': "wwnnwnnnn",
	'Z': "nwwnwnnnn",
	'-': "nwnnnnwnw",
	'.': "wwnnnnwnn",
	' ': "nwwnnnwnn",
	'*': "nwnnwnwnn",
	'$': "nwnwnwnnn",
	'/': "nwnwnnnwn",
	'+': "nwnnnwnwn",
	'%': "nnnwnwnwn",
}

// Code 93 symbol patterns by value, 9 modules each.
var code93tbl = [47]uint16{
	0b100010100, 0b101001000, 0b101000100, 0b101000010,
	0b100101000, 0b100100100, 0b100100010, 0b101010000,
	0b100010010, 0b100001010, 0b110101000, 0b110100100,
	0b110100010, 0b110010100, 0b110010010, 0b110001010,
	0b101101000, 0b101100100, 0b101100010, 0b100110100,
	0b100011010, 0b101011000, 0b101001100, 0b101000110,
	0b100101100, 0b100010110, 0b110110100, 0b110110010,
	0b110101100, 0b110100110, 0b110010110, 0b110011010,
	0b101101100, 0b101100110, 0b100110110, 0b100111010,
	0b100101110, 0b111010100, 0b111010010, 0b111001010,
	0b101101110, 0b101110110, 0b110101110, 0b100100110,
	0b111011010, 0b111010110, 0b100110010,
}

// Code 128 symbol widths by value, from bar to bar.  The stop
// symbol includes the termination bar.
var code128tbl = [107]string{
	"212222", "222122", "222221", "121223", "121322", "131222", "122213", "122312",
	"132212", "221213", "221312", "231212", "112232", "122132", "122231", "113222",
	"123122", "123221", "223211", "221132", "221231", "213212", "223112", "312131",
	"311222", "321122", "321221", "312212", "322112", "322211", "212123", "212321",
	"232121", "111323", "131123", "131321", "112313", "132113", "132311", "211313",
	"231113", "231311", "112133", "112331", "132131", "113123", "113321", "133121",
	"313121", "211331", "231131", "213113", "213311", "213131", "311123", "311321",
	"331121", "312113", "312311", "332111", "314111", "221411", "431111", "111224",
	"111422", "121124", "121421", "141122", "141221", "112214", "112412", "122114",
	"122411", "142112", "142211", "241211", "221114", "413111", "241112", "134111",
	"111242", "121142", "121241", "114212", "124112", "124211", "411212", "421112",
	"421211", "212141", "214121", "412121", "111143", "111341", "131141", "114113",
	"114311", "411113", "411311", "113141", "114131", "311141", "411131", "211412",
	"211214", "211232", "2331112",
}

// Codabar symbols: seven elements from bar to bar.
var codabartbl = [128]string{
	'0': "nnnnnww",
	'1': "nnnnwwn",
	'2': "nnnwnnw",
	'3': "wwnnnnn",
	'4': "nnwnnwn",
	'5': "wnnnnwn",
	'6': "nwnnnnw",
	'7': "nwnnwnn",
	'8': "nwwnnnn",
	'9': "wnnwnnn",
	'-': "nnnwwnn",
	'$': "nnwwnnn",
	':': "wnnnwnw",
	'/': "wnwnnnw",
	'.': "wnwnwnn",
	'+': "nnwnwnw",
	'A': "nnwwnwn",
	'B': "nwnwnnw",
	'C': "nnnwnww",
	'D': "nnnwwwn",
}

// Code 11 symbols: five elements from bar to bar.
var code11tbl = [128]string{
	'0': "nnnnw", '1': "wnnnw", '2': "nwnnw", '3': "wwnnn",
	'4': "nnwnw", '5': "wnwnn", '6': "nwwnn", '7': "nnnww",
	'8': "wnnwn", '9': "wnnnn", '-': "nnwnn", '*': "nnwwn",
}

// 2 of 5 digit patterns: five bars, or five bars or spaces in
// Interleaved 2 of 5.
var twoOf5tbl = [10]string{
	"nnwwn", "wnnnw", "nwnnw", "wwnnn", "nnwnw",
	"wnwnn", "nwwnn", "nnnww", "wnnwn", "nwnwn",
}

// EAN digit codes.  L codes have odd parity, R codes are L codes
// inverted, G codes are R codes reversed.
var eanL = [10]string{
	"0001101", "0011001", "0010011", "0111101", "0100011",
	"0110001", "0101111", "0111011", "0110111", "0001011",
}

var eanR, eanG = func() (r, g [10]string) {
	for i, l := range eanL {
		b := []byte(l)
		for j := range b {
			b[j] ^= 1
		}
		r[i] = string(b)
		for j, k := 0, len(b)-1; j < k; j, k = j+1, k-1 {
			b[j], b[k] = b[k], b[j]
		}
		g[i] = string(b)
	}
	return
}()

// EAN-13 left half parity by leading digit, 'G' for G codes.
var ean13Parity = [10]string{
	"LLLLLL", "LLGLGG", "LLGGLG", "LLGGGL", "LGLLGG",
	"LGGLLG", "LGGGLL", "LGLGLG", "LGLGGL", "LGGLGL",
}

// UPC-E parity for number system 0 by check digit. Number system 1
// uses the inverse.
var upceParity = [10]string{
	"GGGLLL", "GGLGLL", "GGLLGL", "GGLLLG", "GLGGLL",
	"GLLGGL", "GLLLGG", "GLGLGL", "GLGLLG", "GLLGLG",
}

// EAN-5 parity by check value, EAN-2 by value modulo 4.
var (
	ean5Parity = [10]string{
		"GGLLL", "GLGLL", "GLLGL", "GLLLG", "LGGLL",
		"LLGGL", "LLLGG", "LGLGL", "LGLLG", "LLGLG",
	}
	ean2Parity = [4]string{"LL", "LG", "GL", "GG"}
)

// POSTNET digit bars, 1 for full height.
var postnetTbl = [10]string{
	"11000", "00011", "00101", "00110", "01001",
	"01010", "01100", "10001", "10010", "10100",
}
