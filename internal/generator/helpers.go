package generator

import (
	"go/token"
	"strings"
	"unicode"
	"unicode/utf8"
)

func upperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

func lowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToLower(r)) + s[size:]
}

// exportAs returns name with the visibility of like: generated entry points
// of an unexported record stay unexported.
func exportAs(like, name string) string {
	if token.IsExported(like) {
		return upperFirst(name)
	}
	return lowerFirst(name)
}

// identifiers returns the identifiers appearing in a spelled Go type.
func identifiers(typ string) []string {
	return strings.FieldsFunc(typ, func(r rune) bool {
		return r != '_' && !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

func repeat(s string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = s
	}
	return out
}
