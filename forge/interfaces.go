package forge

import "iter"

// IterProvider is implemented by every generation mode (standard, crunch).
type IterProvider interface {
	GetPasswordCount() (uint64, error) // Used to size the progress display

	Batches() []Batch // Named output batches, written in order
}

// Batch is one named, lazily generated group of candidates. Seq can be ranged
// over any number of times and always yields the same order.
type Batch struct {
	Name string
	Seq  iter.Seq[string]
}

// IterPasswords flattens every batch of p into a single sequence.
func IterPasswords(p IterProvider) iter.Seq[string] {
	batches := p.Batches()
	seqs := make([]iter.Seq[string], 0, len(batches))
	for _, b := range batches {
		seqs = append(seqs, b.Seq)
	}
	return chain(seqs...)
}

func chain(seqs ...iter.Seq[string]) iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, seq := range seqs {
			for s := range seq {
				if !yield(s) {
					return
				}
			}
		}
	}
}
