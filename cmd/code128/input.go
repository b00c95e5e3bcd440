package main

import (
	"strings"
	"unicode"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// foldAccents decomposes characters and drops combining marks.
func foldAccents() transform.Transformer {
	return transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)),
		norm.NFC)
}

// prepare converts raw input to the text to encode: -1 decodes
// ISO 8859-1, -a folds accents, -i converts to uppercase.
func prepare(s string, latin1, fold, upper bool) (string, error) {
	var err error
	if latin1 {
		if s, err = charmap.ISO8859_1.NewDecoder().String(s); err != nil {
			return "", err
		}
	}
	if fold {
		if s, _, err = transform.String(foldAccents(), s); err != nil {
			return "", err
		}
	}
	if upper {
		s = strings.ToUpper(s)
	}
	return s, nil
}
