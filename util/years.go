package util

import (
	"strconv"
	"strings"
)

// ParseYears expands a year spec such as "2020-2022,1999" into year tokens.
//
// All full-form tokens come first, in order of appearance with ranges expanded
// ascending, followed by the trailing two characters of every full token in the
// same relative order. Nothing is sorted or deduplicated.
func ParseYears(spec string) ([]string, error) {
	var years []string

	for _, yearRange := range strings.Split(spec, ",") {
		parts := strings.Split(yearRange, "-")

		switch len(parts) {
		case 1:
			year := strings.TrimSpace(parts[0])
			if _, err := parseUnsigned(year); err != nil {
				return nil, InputError("parse years", "invalid year %q: %v", yearRange, err)
			}
			years = append(years, year)
		case 2:
			start, end, err := ParseNumRange(yearRange)
			if err != nil {
				return nil, InputError("parse years", "invalid year range %q: %v", yearRange, err)
			}
			if start > end {
				continue
			}
			for year := start; ; year++ {
				years = append(years, strconv.FormatUint(year, 10))
				if year == end {
					break
				}
			}
		default:
			return nil, InputError("parse years", "invalid year or range %q", yearRange)
		}
	}

	full := len(years)
	for _, year := range years[:full] {
		years = append(years, yearSuffix(year))
	}

	return years, nil
}

// Years shorter than two digits are their own suffix.
func yearSuffix(year string) string {
	if len(year) < 2 {
		return year
	}
	return year[len(year)-2:]
}
