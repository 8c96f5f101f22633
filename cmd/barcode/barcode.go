// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Barcode writes linear barcodes.
package main

import (
	"bufio"
	"bytes"
	"fmt"
	"image/color"
	"image/png"
	"io"
	"log"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"syscall"

	"github.com/unixdj/barcode"
	"github.com/unixdj/barcode/coding"

	"github.com/mattn/go-isatty"
	"github.com/pborman/getopt/v2"
	"golang.org/x/image/colornames"
	"golang.org/x/term"
)

var g = struct {
	sym     barcode.Symbology // symbology
	check   bool              // data includes check symbols
	narrow  width             // narrow element width
	wide    width             // wide element width
	scale   int               // scale
	height  int               // bar height
	border  int               // quiet zone
	palette *[2]color.Color   // palette
	rev     bool              // reverse colours
	fn      string            // filename
	format  int               // output file format
	bg, fg  rgba              // colour
	colSet  bool              // colour set
	upper   bool              // uppercase
	verbose bool              // debug log
}{
	narrow: width(coding.DefaultOptions.Narrow),
	wide:   width(coding.DefaultOptions.Wide),
	border: barcode.DefaultBorder,
	bg:     rgba{0xff, 0xff, 0xff, 0xff},
	fg:     rgba{0x00, 0x00, 0x00, 0xff},
}

func printUsage(w io.Writer) {
	cl := getopt.CommandLine
	prog := cl.Program()
	ul := make([]string, 1, 4)
	ul[0] = cl.UsageLine() + " [data ...]"
	ml := max(70-len("Usage: ")-1-len(prog), 0)
	for i := 0; len(ul[i]) > ml; i++ {
		s := ul[i]
		n := ml - 1
		for n > 0 && (s[n] != ' ' || s[n+1] != '[') {
			n--
		}
		ul = append(ul, s[n+1:])
		ul[i] = s[:max(n, 0)]
		ml = 60
	}
	fmt.Fprint(w, "Linear barcode generator\nUsage: ", prog, " ",
		strings.Join(ul, "\n          "), `
If no data is given, it is read from standard input and the final
newline is stripped.  Check symbols are computed unless -c is given.

`)
	var b bytes.Buffer
	cl.PrintOptions(&b)
	w.Write(b.Bytes())
}

type opt func()

func (opt) String() string                    { return "" }
func (o opt) Set(string, getopt.Option) error { o(); return nil }

func usage() {
	printUsage(os.Stderr)
	os.Exit(2)
}

func help() {
	printUsage(os.Stdout)
	os.Exit(0)
}

func version() {
	fmt.Println(`barcode version 0.1.0
Copyright (c) 2024 Vadim Vygonets`)
	os.Exit(0)
}

func list() {
	for _, sym := range barcode.Symbologies() {
		fmt.Println(sym)
	}
	os.Exit(0)
}

type rgba struct {
	R, G, B, A uint8
}

func (c *rgba) String() string {
	if *c == (rgba{0x00, 0x00, 0x00, 0xff}) {
		return "black"
	} else if *c == (rgba{0xff, 0xff, 0xff, 0xff}) {
		return "white"
	} else if c.A == 0xff {
		return fmt.Sprintf("%02x%02x%02x", c.R, c.G, c.B)
	} else {
		return fmt.Sprintf("%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
	}
}

func (c *rgba) Set(s string, _ getopt.Option) error {
	g.colSet = true
	if n, ok := colornames.Map[strings.ToLower(strings.ReplaceAll(s, " ", ""))]; ok {
		*c = rgba(n)
		return nil
	}
	n, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return fmt.Errorf("%q: bad colour spec", s)
	}
	switch len(s) {
	case 3:
		n = n<<4 | 0xf
		fallthrough
	case 4:
		var nn uint64
		for i := 0; i < 4; i++ {
			nn <<= 8
			nn |= n >> 12 & 0xf * 0x11
			n <<= 4
		}
		n = nn
	case 6:
		n = n<<8 | 0xff
	case 8:
	default:
		return fmt.Errorf("%q: bad colour spec", s)
	}
	c.R, c.G, c.B, c.A = uint8(n>>24), uint8(n>>16), uint8(n>>8), uint8(n)
	return nil
}

// A width is an element width in modules.
type width float64

func (w *width) String() string {
	return strconv.FormatFloat(float64(*w), 'g', -1, 64)
}

func (w *width) Set(s string, _ getopt.Option) error {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || !(f > 0) {
		return fmt.Errorf("%q: bad width", s)
	}
	*w = width(f)
	return nil
}

var formats = []string{
	"png", "pngi", "PNG", "PNGi", "pbm", "pbmi", "eps", "epsi",
	"utf8", "utf8i", "binary", "binaryi", "runs",
}

var encoders = [...]func(*barcode.Code, io.Writer) error{
	(*barcode.Code).EncodePNG,
	func(c *barcode.Code, w io.Writer) error { return png.Encode(w, c.Image()) },
	(*barcode.Code).EncodePBM,
	eps,
	text,
	binary,
	runs,
}

func parseFlags() {
	getopt.SetUsage(usage)
	getopt.Flag(opt(help), 'h', "show this help").SetFlag()
	getopt.Flag(opt(version), 'V', "print version and copyright").SetFlag()
	getopt.Flag(opt(list), 'l', "list symbologies").SetFlag()
	getopt.FlagLong(&g.bg, "background", 'B', `background colour; see -F`,
		"RGB[A]|name")
	getopt.FlagLong(&g.fg, "foreground", 'F', `foreground colour `+
		`as 3, 4, 6 or 8 hex digits or SVG colour name; `+
		`only for types png[i], PNG[i] and eps[i]`, "RGB[A]|name")
	getopt.Flag(&g.check, 'c', "data includes check symbols, verify them")
	getopt.Flag(&g.upper, 'i', `ignore case, convert input to uppercase`)
	getopt.Flag(&g.verbose, 'v', "log encoding steps to standard error")
	getopt.FlagLong(&g.narrow, "narrow", 'n', "narrow element width "+
		"in modules", "width")
	getopt.FlagLong(&g.wide, "wide", 'w', "wide element width "+
		"in modules, greater than narrow", "width")
	getopt.Flag(&g.border, 'm', `quiet zone modules`, "margin")
	fno := getopt.Flag(&g.fn, 'o', `output file, or "-" for `+
		`standard output`, "file")
	sym := getopt.String('t', "code128", `symbology, see -l`, "type")
	scale := getopt.Unsigned('s', barcode.DefaultScale,
		&(getopt.UnsignedLimit{Base: 0, Bits: 28, Min: 1, Max: 1 << 16}),
		`image pixels (type eps[i]: points) per module; `+
			`ignored for types utf8[i], binary[i] and runs`, "scale")
	height := getopt.Unsigned('H', barcode.DefaultHeight,
		&(getopt.UnsignedLimit{Base: 0, Bits: 28, Min: 1, Max: 1 << 16}),
		`bar height in modules`, "height")
	ff := getopt.Enum('T', formats, "", `output format, one of: `+
		strings.Join(formats, ", ")+
		`; types with "i" appended have colours inverted; `+
		`"png" writes 1-bit images, "PNG" uses the standard Go encoder; `+
		`if no -o is given and standard output is a TTY, `+
		`default is utf8, otherwise png`, "type")

	getopt.Parse()
	var ok bool
	if g.sym, ok = barcode.Lookup(*sym); !ok {
		fmt.Fprintf(os.Stderr, "%q: unknown symbology, see -l\n", *sym)
		usage()
	}
	if g.border < 0 {
		fmt.Fprintln(os.Stderr, "-m must not be negative")
		usage()
	}
	g.scale = int(*scale)
	g.height = int(*height)
	if *ff == "" {
		if !fno.Seen() && isatty.IsTerminal(uintptr(syscall.Stdout)) {
			*ff = "utf8"
		} else {
			*ff = "png"
		}
	}
	for i, v := range formats {
		if *ff == v {
			g.format = i >> 1
			g.rev = i&1 != 0
			break
		}
	}
	if g.fn == "-" {
		g.fn = ""
	}
	if g.colSet {
		g.palette = &[2]color.Color{color.RGBA(g.bg), color.RGBA(g.fg)}
	}
}

func main() {
	log.SetFlags(0)
	parseFlags()
	l := slog.New(slog.NewTextHandler(os.Stderr,
		&slog.HandlerOptions{Level: slog.LevelDebug}))
	if g.verbose {
		barcode.SetLogger(l)
	}

	var s string
	if args := getopt.Args(); len(args) != 0 {
		s = strings.Join(args, " ")
	} else {
		var b strings.Builder
		if _, err := io.Copy(&b, os.Stdin); err != nil {
			log.Fatalln(err)
		}
		s, _ = strings.CutSuffix(
			strings.ReplaceAll(b.String(), "\r\n", "\n"), "\n")
	}
	if g.upper {
		s = strings.ToUpper(s)
	}

	v, err := barcode.NewWithOptions(g.sym, s, g.check, &barcode.Options{
		Narrow: float64(g.narrow),
		Wide:   float64(g.wide),
	})
	if err != nil {
		log.Fatalln(err)
	}
	if g.verbose {
		l.Info("barcode", "symbology", v.Symbology().String(),
			"data", v.Data(), "checksum", v.Checksum())
	}
	write(v)
}

func write(v *barcode.Value) {
	open := g.fn != ""
	var w = os.Stdout
	if open {
		var err error
		if w, err = os.OpenFile(g.fn, os.O_WRONLY|os.O_CREATE|os.O_TRUNC,
			0666); err != nil {
			log.Fatalln(err)
		}
	}
	c := v.Code()
	c.Scale = g.scale
	c.Height = g.height
	c.Border = g.border
	c.Palette = g.palette
	c.Reverse = g.rev
	err := encoders[g.format](c, w)
	if open && err == nil {
		err = w.Close()
	}
	if err != nil {
		log.Fatalln(err)
	}
}

func eps(c *barcode.Code, w io.Writer) error {
	const midx, midy = 306, 396
	wd, ht := c.Size()
	scale := c.Scale
	xorig := midx - wd/2
	yorig := midy - ht/2
	fmt.Fprintf(w, `%%!PS-Adobe-2.0 EPSF-2.0
%%%%Creator: barcode https://github.com/unixdj/barcode
%%%%Title: Barcode
%%%%BoundingBox: %d %d %d %d
%%%%EndComments
%%%%EndProlog
<< >> begin
gsave
%d %d translate
%d dup neg scale
`,
		xorig, yorig, xorig+wd, yorig+ht,
		xorig, yorig+ht, scale)
	if rev := c.Reverse; rev || g.colSet {
		bg, fg := g.bg, g.fg
		if rev {
			bg, fg = fg, bg
		}
		fmt.Fprintf(w, `%.3g %.3g %.3g setrgbcolor
0 0 %d %d rectfill
%.3g %.3g %.3g setrgbcolor
`,
			float64(bg.R)/0xff, float64(bg.G)/0xff, float64(bg.B)/0xff,
			wd/scale, ht/scale,
			float64(fg.R)/0xff, float64(fg.G)/0xff, float64(fg.B)/0xff)
	}
	bord, h := float64(c.Border), float64(c.Height)
	x := bord
	for i, n := 0, c.Bars.Len(); i < n; i++ {
		r := c.Bars.Run(i)
		if r.Bar {
			fmt.Fprintf(w, "%g %g %g %g rectfill\n",
				x, bord+r.YOffset*h, r.Width, r.Height*h)
		}
		x += r.Width
	}
	_, err := io.WriteString(w, "grestore\nend\n%%Trailer\n")
	return err
}

// text writes the code with Unicode block elements.
func text(c *barcode.Code, w io.Writer) error {
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		wd, _ := c.Size()
		if cols, _, err := term.GetSize(int(f.Fd())); err == nil &&
			wd/c.Scale > cols {
			log.Printf("code is %d columns wide, terminal %d",
				wd/c.Scale, cols)
		}
	}
	_, err := fmt.Fprint(w, c)
	return err
}

// binary writes the modules of the code as '1' for bars and '0' for
// spaces, or the reverse if c.Reverse is set.
func binary(c *barcode.Code, w io.Writer) error {
	s := c.Bars.Binary()
	if c.Reverse {
		s = strings.Map(func(r rune) rune { return '0' + '1' - r }, s)
	}
	_, err := fmt.Fprintln(w, s)
	return err
}

// runs writes one line per run: kind, width, height and offset.
func runs(c *barcode.Code, w io.Writer) error {
	b := bufio.NewWriter(w)
	for i, n := 0, c.Bars.Len(); i < n; i++ {
		r := c.Bars.Run(i)
		kind := "space"
		if r.Bar {
			kind = "bar"
		}
		fmt.Fprintf(b, "%s\t%g\t%g\t%g\n", kind, r.Width, r.Height, r.YOffset)
	}
	return b.Flush()
}
