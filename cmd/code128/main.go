package main

import (
	"bytes"
	"fmt"
	"image/color"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/unixdj/code128"
	"github.com/unixdj/code128/vector"

	"github.com/mattn/go-isatty"
	"github.com/pborman/getopt/v2"
)

var g = struct {
	scale   int             // scale
	height  int             // bar height
	border  int             // quiet zone
	palette *[2]color.Color // palette
	rev     bool            // reverse colours
	fn      string          // filename
	format  int             // output file format
	bg, fg  rgba            // colour
	colSet  bool            // colour set
	strict  bool            // reject unsupported characters
	warn    bool            // report skipped characters
	latin1  bool            // Latin-1 input
	fold    bool            // fold accents
	upper   bool            // uppercase
}{
	bg: rgba{0xff, 0xff, 0xff, 0xff},
	fg: rgba{0x00, 0x00, 0x00, 0xff},
}

func printUsage(w io.Writer) {
	cl := getopt.CommandLine
	prog := cl.Program()
	ul := make([]string, 1, 4)
	ul[0] = cl.UsageLine() + " [string ...]"
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
	fmt.Fprint(w, "Code 128 barcode generator\nUsage: ", prog, " ",
		strings.Join(ul, "\n          "), `
If no string is given, data is read from standard input and the final
newline is stripped.  Input is UTF-8; characters outside printable ASCII
are left out of the barcode but counted in the checksum, unless -x is
given.

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
	fmt.Println(`code128 version 0.3.0
Copyright (c) 2024 Vadim Vygonets`)
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
	var ok bool
	if *c, ok = rgb[strings.ToLower(strings.ReplaceAll(s, " ", ""))]; ok {
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

var formats = []string{
	"png", "pngi", "pbm", "pbmi", "eps", "epsi", "svg", "svgi",
	"pdf", "pdfi", "utf8", "utf8i", "ascii", "asciii",
}

var encoders = [...]func(*code128.Code, io.Writer) error{
	(*code128.Code).EncodePNG,
	(*code128.Code).EncodePBM,
	(*code128.Code).EncodeEPS,
	vector.EncodeSVG,
	vector.EncodePDF,
	func(c *code128.Code, w io.Writer) error {
		_, err := fmt.Fprint(w, c)
		return err
	},
	ascii,
}

func parseFlags() {
	getopt.SetUsage(usage)
	getopt.Flag(opt(help), 'h', "show this help").SetFlag()
	getopt.Flag(opt(version), 'V', "print version and copyright").SetFlag()
	getopt.FlagLong(&g.bg, "background", 'B', `background colour; see -F`,
		"RGB[A]|name")
	getopt.FlagLong(&g.fg, "foreground", 'F', `foreground colour `+
		`as 3, 4, 6 or 8 hex digits or colour name; `+
		`only for types png[i], eps[i], svg[i] and pdf[i]`, "RGB[A]|name")
	getopt.Flag(&g.strict, 'x', "fail on characters outside printable ASCII")
	getopt.Flag(&g.warn, 'w', "report characters left out of the barcode")
	getopt.Flag(&g.latin1, '1', "ISO 8859-1 input")
	getopt.Flag(&g.fold, 'a', `fold accented letters to ASCII, "é" to "e"`)
	getopt.Flag(&g.upper, 'i', `ignore case, convert input to uppercase`)
	getopt.Flag(&g.border, 'm', `quiet zone modules [10]`, "margin")
	fno := getopt.Flag(&g.fn, 'o', `output file, or "-" for `+
		`standard output`, "file")
	height := getopt.Unsigned('H', code128.DefaultHeight,
		&getopt.UnsignedLimit{0, 16, 1, 1 << 12},
		`bar height in modules`, "height")
	scale := getopt.Unsigned('s', code128.DefaultScale,
		&(getopt.UnsignedLimit{0, 28, 1, 1 << 12}),
		`image pixels per module; only for types png[i] and pbm[i]`,
		"scale")
	ff := getopt.Enum('t', formats, "", `output format, one of: `+
		strings.Join(formats, ", ")+
		`; types with "i" appended have colours inverted; `+
		`eps, svg and pdf are one millimetre per bar unit; `+
		`if no -o is given and standard output is a TTY, `+
		`default is utf8, otherwise png`, "type")

	getopt.Parse()
	g.scale = int(*scale)
	g.height = int(*height)
	if !getopt.IsSet('m') {
		g.border = code128.DefaultBorder
	} else if g.border < 0 {
		fmt.Fprintln(os.Stderr, "-m must not be negative")
		usage()
	}
	if *ff == "" {
		if !fno.Seen() && isatty.IsTerminal(os.Stdout.Fd()) {
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
	s, err := prepare(s, g.latin1, g.fold, g.upper)
	if err != nil {
		log.Fatalln(err)
	}

	var c *code128.Code
	if g.strict {
		if c, err = code128.EncodeStrict(s); err != nil {
			log.Fatalln(err)
		}
	} else {
		c = code128.Encode(s)
		if g.warn {
			for _, e := range c.Skipped() {
				log.Printf("warning: %v skipped", e.Error())
			}
		}
	}
	if c.Empty() {
		return // nothing to draw
	}
	write(c)
}

func write(c *code128.Code) {
	var w = os.Stdout
	if g.fn != "" {
		var err error
		if w, err = os.OpenFile(g.fn, os.O_WRONLY|os.O_CREATE|os.O_TRUNC,
			0666); err != nil {
			log.Fatalln(err)
		}
	}
	c.Scale = g.scale
	c.Height = g.height
	c.Border = g.border
	c.Palette = g.palette
	c.Reverse = g.rev
	err := encoders[g.format](c, w)
	if g.fn != "" && err == nil {
		err = w.Close()
	}
	if err != nil {
		log.Fatalln(err)
	}
}

// ascii writes c as text, one character per module, TextRows lines high.
func ascii(c *code128.Code, w io.Writer) error {
	bord := c.Border
	pix := c.Size + 2*bord
	rows := c.TextRows()
	b := make([]byte, (pix+1)*rows)
	i := 0
	for x := -bord; x < c.Size+bord; x++ {
		var p byte = ' '
		if c.Black(x) != c.Reverse {
			p = '#'
		}
		b[i] = p
		i++
	}
	b[i] = '\n'
	for y := 1; y < rows; y++ {
		copy(b[y*(pix+1):], b[:pix+1])
	}
	_, err := w.Write(b)
	return err
}
