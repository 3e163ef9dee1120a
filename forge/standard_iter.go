package forge

// IterProvider for standard mode

import "iter"

const (
	// SymbolMajorFallback is what the symbol-major pass appends to each keyword
	// when no symbols are configured, in place of the year.
	SymbolMajorFallback = "a"

	// EmitSymbolFreePasses keeps the keyword+year and year+keyword passes that
	// run after their symbol counterparts. With no symbols configured they
	// repeat those passes line for line.
	EmitSymbolFreePasses = true
)

// noSymbol fills the symbol slot when the symbol set is empty. Real symbols
// are never empty strings.
const noSymbol = ""

var (
	seasons = []string{"Summer", "Autumn", "Winter", "Fall", "Spring"}
	// No "May".
	months = []string{"January", "February", "March", "April", "June", "July", "August", "September", "October", "November", "December"}
)

// StandardIter composes keywords, years and symbols into candidates.
//
// Output is three batches: "combine" (word-major, year-major and symbol-major
// passes), "seasons" (season and month names around each year) and, when
// Reverse is set, "reverse" (the year-major and symbol-major passes again).
type StandardIter struct {
	Keywords []string
	Years    []string
	Symbols  []string
	Reverse  bool
}

func (it *StandardIter) Batches() []Batch {
	batches := []Batch{
		{Name: "combine", Seq: chain(it.wordMajor(), it.yearMajor(), it.symbolMajor())},
		{Name: "seasons", Seq: it.seasons()},
	}
	if it.Reverse {
		batches = append(batches, Batch{Name: "reverse", Seq: chain(it.yearMajor(), it.symbolMajor())})
	}
	return batches
}

func (it *StandardIter) GetPasswordCount() (uint64, error) {
	words := uint64(len(it.Keywords))
	years := uint64(len(it.Years))
	symbols := uint64(len(it.Symbols))
	slots := uint64(len(it.symbolSlots()))

	pairs, ok := mulCount(words, years)
	if !ok {
		return 0, ErrCountOverflow
	}

	// Per keyword/year pair: one line per symbol slot in each of the three
	// symbol passes, plus one for each symbol-free pass.
	perPairFwd, perPairRev := 3*slots, 2*slots
	if EmitSymbolFreePasses {
		perPairFwd += 2
		perPairRev++
	}

	var total uint64
	counts := [][2]uint64{
		{pairs, perPairFwd},
		{years, uint64(len(seasons)+len(months)) * (2 + 2*symbols)},
	}
	if it.Reverse {
		counts = append(counts, [2]uint64{pairs, perPairRev})
	}
	for _, c := range counts {
		n, ok := mulCount(c[0], c[1])
		if !ok {
			return 0, ErrCountOverflow
		}
		if total, ok = addCount(total, n); !ok {
			return 0, ErrCountOverflow
		}
	}

	return total, nil
}

// symbolSlots is the symbol set, or a single noSymbol slot when it is empty.
func (it *StandardIter) symbolSlots() []string {
	if len(it.Symbols) == 0 {
		return []string{noSymbol}
	}
	return it.Symbols
}

// keyword+year+symbol, then keyword+year.
func (it *StandardIter) wordMajor() iter.Seq[string] {
	slots := it.symbolSlots()

	return func(yield func(string) bool) {
		for _, word := range it.Keywords {
			for _, year := range it.Years {
				for _, symbol := range slots {
					if !yield(word + year + symbol) {
						return
					}
				}
			}
		}

		if !EmitSymbolFreePasses {
			return
		}
		for _, word := range it.Keywords {
			for _, year := range it.Years {
				if !yield(word + year) {
					return
				}
			}
		}
	}
}

// year+keyword+symbol, then year+keyword.
func (it *StandardIter) yearMajor() iter.Seq[string] {
	slots := it.symbolSlots()

	return func(yield func(string) bool) {
		for _, year := range it.Years {
			for _, word := range it.Keywords {
				for _, symbol := range slots {
					if !yield(year + word + symbol) {
						return
					}
				}
			}
		}

		if !EmitSymbolFreePasses {
			return
		}
		for _, year := range it.Years {
			for _, word := range it.Keywords {
				if !yield(year + word) {
					return
				}
			}
		}
	}
}

// symbol+keyword+year. With no symbols every keyword/year pair yields
// keyword+SymbolMajorFallback instead.
func (it *StandardIter) symbolMajor() iter.Seq[string] {
	slots := it.symbolSlots()

	return func(yield func(string) bool) {
		for _, symbol := range slots {
			for _, word := range it.Keywords {
				for _, year := range it.Years {
					candidate := symbol + word + year
					if symbol == noSymbol {
						candidate = word + SymbolMajorFallback
					}
					if !yield(candidate) {
						return
					}
				}
			}
		}
	}
}

// seasons ignores the keywords entirely. Symbols here are the raw set, so an
// empty set only produces the bare name/year pairs.
func (it *StandardIter) seasons() iter.Seq[string] {
	names := make([]string, 0, len(seasons)+len(months))
	names = append(names, seasons...)
	names = append(names, months...)

	return func(yield func(string) bool) {
		for _, year := range it.Years {
			for _, name := range names {
				if !yield(name+year) || !yield(year+name) {
					return
				}
				for _, symbol := range it.Symbols {
					if !yield(name+year+symbol) || !yield(year+name+symbol) {
						return
					}
				}
			}
		}
	}
}
