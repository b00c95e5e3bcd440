// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:generate sh -c "go run gen.go | gofmt > tables.go"

// Package symbol implements low-level Code 128 code set B symbol
// details: bar patterns, start and stop codes and checksum arithmetic.
package symbol // import "github.com/unixdj/code128/symbol"

// A Pattern is a string of module digits, '1' for a bar module and '0'
// for a space module, read left to right.  Character patterns and the
// start pattern are 11 modules wide, the stop pattern 13.
type Pattern string

// Len returns the width of p in modules.
func (p Pattern) Len() int { return len(p) }

// Valid reports whether p consists only of '0' and '1' digits and
// starts with a bar.
func (p Pattern) Valid() bool {
	if p == "" || p[0] != '1' {
		return false
	}
	for i := 0; i < len(p); i++ {
		if p[i] != '0' && p[i] != '1' {
			return false
		}
	}
	return true
}

// Modules appends the modules of p to b, true for bars.
func (p Pattern) Modules(b []bool) []bool {
	for i := 0; i < len(p); i++ {
		b = append(b, p[i] == '1')
	}
	return b
}

const (
	// Start is the Start B pattern.
	Start Pattern = "11010010000"

	// Stop is the stop pattern, including the termination bar.
	Stop Pattern = "1100011101011"

	StartValue = 104 // checksum contribution of Start B
	Modulus    = 103 // checksum modulus

	// NumValues is the number of symbol values a checksum can
	// resolve to.
	NumValues = Modulus

	// Width is the width of a character pattern in modules.
	Width = 11

	// StopWidth is the width of the stop pattern in modules.
	StopWidth = 13
)

// First and last characters of code set B with a character pattern.
const (
	MinRune = ' '
	MaxRune = '~'
)

// Supported reports whether r has a character pattern.
func Supported(r rune) bool {
	return MinRune <= r && r <= MaxRune
}

// Lookup returns the pattern of character r.  ok is false if r is
// outside the printable ASCII range.
func Lookup(r rune) (p Pattern, ok bool) {
	if !Supported(r) {
		return "", false
	}
	return patterns[r-MinRune], true
}

// CheckChar returns the character resolving checksum value v, which
// must be between 0 and 127.  Values 0 to 94 resolve to printable
// ASCII, 95 to DEL and the rest to C1 control characters.
func CheckChar(v int) (r rune, ok bool) {
	if v < 0 || v >= len(checkChars) {
		return 0, false
	}
	return checkChars[v], true
}

// ValuePattern returns the pattern of symbol value v.  Values 95 to
// 102 are code set B function symbols, which have no character
// pattern.
func ValuePattern(v int) (p Pattern, ok bool) {
	if v < 0 || v >= NumValues {
		return "", false
	}
	return patterns[v], true
}

// Value returns the checksum value of r.  Runes outside ASCII count as
// code 0, so the value can be negative.
func Value(r rune) int {
	if r >= 0x80 || r < 0 {
		r = 0
	}
	return int(r) - MinRune
}

// Checksum returns the Code 128 checksum value of text: the start
// value plus each rune's value weighted by its 1-based position, modulo
// 103.  All runes are weighted, including those with no pattern.  The
// result is always between 0 and 102.
func Checksum(text string) int {
	sum := StartValue
	i := 0
	for _, r := range text {
		i++
		sum += Value(r) * i
	}
	if sum %= Modulus; sum < 0 {
		sum += Modulus
	}
	return sum
}
