// Package sink writes candidate sequences to a flat, append-only text file.
package sink

import (
	"bufio"
	"iter"
	"os"

	"github.com/vulfilip/rassforge/util"
)

// Sink appends lines to Path. The file is opened in append mode on every
// Append call, so repeated runs accumulate rather than replace content.
type Sink struct {
	Path string

	// Progress, if set, is called with the number of lines written since the
	// previous call, every ProgressStep lines and once more at the end.
	Progress     func(n int)
	ProgressStep int
}

const defaultProgressStep = 4096

func New(path string) *Sink {
	return &Sink{Path: path}
}

// Append writes every element of lines followed by "\n" and returns how many
// lines were written. Lines written before a failure stay on disk.
func (s *Sink) Append(lines iter.Seq[string]) (int, error) {
	f, err := os.OpenFile(s.Path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return 0, util.IOError("open output", s.Path, err)
	}

	step := s.ProgressStep
	if step <= 0 {
		step = defaultProgressStep
	}

	w := bufio.NewWriter(f)
	written, pending := 0, 0
	for line := range lines {
		if _, err = w.WriteString(line); err == nil {
			err = w.WriteByte('\n')
		}
		if err != nil {
			break
		}

		written++
		pending++
		if s.Progress != nil && pending == step {
			s.Progress(pending)
			pending = 0
		}
	}

	if err == nil {
		err = w.Flush()
	} else {
		_ = w.Flush()
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if s.Progress != nil && pending > 0 {
		s.Progress(pending)
	}
	if err != nil {
		return written, util.IOError("write output", s.Path, err)
	}

	return written, nil
}

// Size reports the current size of the output file in bytes.
func (s *Sink) Size() (int64, error) {
	info, err := os.Stat(s.Path)
	if err != nil {
		return 0, util.IOError("stat output", s.Path, err)
	}
	return info.Size(), nil
}
