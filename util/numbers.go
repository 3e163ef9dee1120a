package util

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseNumRange parses "n" or "min-max" into unsigned base-10 bounds. A single
// number yields min == max. Bounds are not reordered.
func ParseNumRange(rangeStr string) (min uint64, max uint64, err error) {
	rangeArr := strings.Split(rangeStr, "-")
	rangeLen := len(rangeArr)
	if strings.TrimSpace(rangeStr) == "" {
		return 0, 0, fmt.Errorf("number range is empty")
	} else if rangeLen > 2 {
		return 0, 0, fmt.Errorf("number range too large: expected max of (2) numbers, got (%d)", rangeLen)
	}

	min, err = parseUnsigned(rangeArr[0])
	if err != nil {
		return 0, 0, err
	} else if rangeLen == 1 {
		return min, min, nil
	}

	max, err = parseUnsigned(rangeArr[1])
	if err != nil {
		return 0, 0, err
	}

	return min, max, nil
}

// ParseSize parses the crunch length bounds. Both must be unsigned integers and
// min must not exceed max.
func ParseSize(minStr, maxStr string) (min int, max int, err error) {
	lo, err := parseUnsigned(minStr)
	if err != nil {
		return 0, 0, InputError("parse minimum size", "%v", err)
	}
	hi, err := parseUnsigned(maxStr)
	if err != nil {
		return 0, 0, InputError("parse maximum size", "%v", err)
	}
	if lo > hi {
		return 0, 0, InputError("parse size bound", "minimum size (%d) is larger than maximum size (%d)", lo, hi)
	}
	if hi > uint64(maxInt) {
		return 0, 0, InputError("parse size bound", "maximum size (%d) is out of range", hi)
	}

	return int(lo), int(hi), nil
}

const maxInt = int(^uint(0) >> 1)

func parseUnsigned(s string) (uint64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("expected a number, got an empty string")
	}

	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not an unsigned base-10 integer", s)
	}
	return n, nil
}
