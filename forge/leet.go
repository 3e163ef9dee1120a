package forge

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Applied in order, each to the output of the previous one.
var leetSubstitutions = [...][2]string{
	{"a", "4"},
	{"g", "6"},
	{"e", "3"},
	{"l", "1"},
	{"z", "2"},
	{"t", "7"},
	{"o", "0"},
	{"s", "5"},
	{"b", "8"},
}

// Leet lowercases word and respells it in leet speak: "Password" -> "p455w0rd".
func Leet(word string) string {
	out := cases.Lower(language.Und).String(word)
	for _, sub := range leetSubstitutions {
		out = strings.ReplaceAll(out, sub[0], sub[1])
	}
	return out
}

// WithLeet returns keywords followed by one leet variant per keyword, in the
// same order. Originals are kept and nothing is deduplicated.
func WithLeet(keywords []string) []string {
	out := make([]string, 0, 2*len(keywords))
	out = append(out, keywords...)
	for _, word := range keywords {
		out = append(out, Leet(word))
	}
	return out
}
