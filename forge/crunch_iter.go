package forge

// IterProvider for crunch mode

import (
	"errors"
	"iter"
	"math/bits"

	"github.com/vulfilip/rassforge/util"
)

// ErrCountOverflow is returned when a candidate count does not fit in a uint64.
var ErrCountOverflow = errors.New("candidate count overflows uint64")

// CrunchIter enumerates every string over Charset with a length in
// [Min, Max]. Charset order drives emission order and duplicates are kept.
type CrunchIter struct {
	Charset []rune
	Min     int
	Max     int
}

func NewCrunchIter(charset string, min, max int) (*CrunchIter, error) {
	if charset == "" {
		return nil, util.InputError("crunch", "character set is empty")
	}
	if min < 0 || max < 0 {
		return nil, util.InputError("crunch", "size bounds cannot be negative")
	}
	if min > max {
		return nil, util.InputError("crunch", "minimum size (%d) is larger than maximum size (%d)", min, max)
	}

	return &CrunchIter{Charset: []rune(charset), Min: min, Max: max}, nil
}

// GetPasswordCount returns sum(n^L) for L in [Min, Max].
func (it *CrunchIter) GetPasswordCount() (uint64, error) {
	numChars := uint64(len(it.Charset))
	if numChars == 1 {
		return uint64(it.Max-it.Min) + 1, nil
	}

	var total uint64
	var lenCount uint64 = 1
	for length := 0; length <= it.Max; length++ {
		if length > 0 {
			var ok bool
			if lenCount, ok = mulCount(lenCount, numChars); !ok {
				return 0, ErrCountOverflow
			}
		}
		if length < it.Min {
			continue
		}

		var ok bool
		if total, ok = addCount(total, lenCount); !ok {
			return 0, ErrCountOverflow
		}
	}

	return total, nil
}

func (it *CrunchIter) Batches() []Batch {
	return []Batch{{Name: "crunch", Seq: it.IterPasswords()}}
}

// IterPasswords walks the candidate tree depth first: every prefix whose length
// is in range is emitted before its children, so {a,b} over 1-2 yields
// a, aa, ab, b, ba, bb. Only the current prefix is held in memory.
func (it *CrunchIter) IterPasswords() iter.Seq[string] {
	charset := it.Charset
	lo, hi := it.Min, it.Max

	return func(yield func(string) bool) {
		// Grown by append; hi may be far larger than any depth actually reached
		prefix := make([]rune, 0, min(hi, 64))

		var walk func() bool
		walk = func() bool {
			depth := len(prefix)
			if depth >= lo && depth <= hi {
				if !yield(string(prefix)) {
					return false
				}
			}
			if depth >= hi {
				return true
			}

			for _, c := range charset {
				prefix = append(prefix, c)
				ok := walk()
				prefix = prefix[:depth]
				if !ok {
					return false
				}
			}
			return true
		}

		walk()
	}
}

func mulCount(a, b uint64) (uint64, bool) {
	hi, lo := bits.Mul64(a, b)
	return lo, hi == 0
}

func addCount(a, b uint64) (uint64, bool) {
	sum, carry := bits.Add64(a, b, 0)
	return sum, carry == 0
}
