//go:build ignore

package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
)

// Element widths of Code 128 symbol values 0 to 102, bar first.
var widths = [103]string{
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
	"114311", "411113", "411311", "113141", "114131", "311141", "411131",
}

// Code set B names of values 95 to 102.
var names = [8]string{
	"DEL", "FNC3", "FNC2", "SHIFT", "CODE C", "FNC4", "CODE A", "FNC1",
}

// pattern expands bar and space widths to modules.
func pattern(w string) string {
	var b strings.Builder
	for i, c := range w {
		if c < '1' || c > '4' {
			log.Fatalf("%q: bad width", w)
		}
		d := "1"
		if i&1 != 0 {
			d = "0"
		}
		b.WriteString(strings.Repeat(d, int(c-'0')))
	}
	if b.Len() != 11 {
		log.Fatalf("%q: %d modules", w, b.Len())
	}
	return b.String()
}

func name(v int) string {
	if v < 95 {
		return strconv.QuoteRune(rune(v + 32))
	}
	return names[v-95]
}

func main() {
	w := bufio.NewWriter(os.Stdout)
	fmt.Fprint(w, `// generated by go run gen.go | gofmt; DO NOT EDIT

package symbol

// Bar patterns of symbol values 0 to 102.
var patterns = [NumValues]Pattern{
`)
	for v, s := range widths {
		fmt.Fprintf(w, "\t%q, // %d %s\n", pattern(s), v, name(v))
	}
	fmt.Fprint(w, "}\n\n// Characters resolving checksum values.\n")
	fmt.Fprint(w, "var checkChars = [128]rune{\n")
	for v := 0; v < 128; v++ {
		if v&7 == 0 {
			fmt.Fprint(w, "\t")
		}
		// 0 to 94 are printable ASCII, 95 is DEL, the rest C1 controls.
		fmt.Fprintf(w, "%#04x,", v+32)
		if v&7 == 7 {
			fmt.Fprintln(w)
		} else {
			fmt.Fprint(w, " ")
		}
	}
	fmt.Fprintln(w, "}")
	if err := w.Flush(); err != nil {
		log.Fatalln(err)
	}
}
