package forge

import "iter"

// Affix is a fixed head and tail wrapped around every candidate. The zero
// value leaves candidates untouched.
type Affix struct {
	Head string
	Tail string
}

func (a Affix) IsZero() bool {
	return a.Head == "" && a.Tail == ""
}

func (a Affix) Apply(candidate string) string {
	return a.Head + candidate + a.Tail
}

// Decorate wraps every candidate of seq with a, keeping order and duplicates.
func Decorate(seq iter.Seq[string], a Affix) iter.Seq[string] {
	if a.IsZero() {
		return seq
	}

	return func(yield func(string) bool) {
		for candidate := range seq {
			if !yield(a.Apply(candidate)) {
				return
			}
		}
	}
}
