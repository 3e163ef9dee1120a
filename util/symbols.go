package util

import "strings"

// NoSymbols is the symbol argument value meaning "no symbols at all".
const NoSymbols = "None"

// ParseSymbols turns the raw symbol argument into an ordered symbol set, one
// entry per code point.
//
// Backslashes are stripped. When the argument held more than one backslash, a
// single backslash is kept as the last symbol so shells that force escaping can
// still pass it through.
func ParseSymbols(arg string) []string {
	if arg == NoSymbols || arg == "" {
		return nil
	}

	cleaned := strings.ReplaceAll(arg, `\`, "")
	if strings.Count(arg, `\`) > 1 {
		cleaned += `\`
	}

	return strings.Split(cleaned, "")
}
