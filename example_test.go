// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package code128_test

import (
	"fmt"

	"github.com/unixdj/code128"
)

func ExampleEncode() {
	c := code128.Encode("A")
	for _, s := range c.Symbols {
		fmt.Printf("%-8s %s\n", s.Role, s.Pattern)
	}
	fmt.Println("checksum value", c.Checksum, "unit width", c.Width)
	// Output:
	// start    11010010000
	// data     10100011000
	// checksum 10001011000
	// stop     1100011101011
	// checksum value 34 unit width 0.85
}

func ExampleEncode_unsupported() {
	// The tab has no symbol, but is weighted into the checksum.
	c := code128.Encode("A\tB")
	for _, s := range c.Symbols {
		if s.Role == code128.Data {
			fmt.Printf("%d %s\n", s.Index, s.Pattern)
		}
	}
	for _, e := range c.Skipped() {
		fmt.Println(e.Error())
	}
	// Output:
	// 0 10100011000
	// 2 10001011000
	// code128: unsupported character U+0009 at position 1
}

func ExampleEncodeStrict() {
	_, err := code128.EncodeStrict("A\tB")
	fmt.Println(err)
	// Output: code128: unsupported character U+0009 at position 1
}

func ExampleCode_Draw() {
	// A Renderer draws each module as a rectangle.
	c := code128.Encode("1")
	n, bars := 0, 0
	c.Draw(10, func(x, w, h float64, bar bool) {
		n++
		if bar {
			bars++
		}
	})
	fmt.Println(n, "modules,", bars, "black")
	// Output: 46 modules, 24 black
}
