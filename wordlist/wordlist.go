package wordlist

import (
	"bufio"
	"errors"
	"io"
	"iter"
	"os"
	"strings"

	"github.com/vulfilip/rassforge/util"
)

// Keyword file loader and line reader

// Load reads a keyword file, one keyword per line. Each line is trimmed of
// surrounding whitespace; blank lines become empty keywords. A missing or
// unreadable keyword file is bad input, not an output failure.
func Load(filePath string) ([]string, error) {
	keywords := []string{}

	for line, err := range Lines(filePath) {
		if err != nil {
			return nil, &util.OpError{Op: "load keywords", Kind: util.KindInput, Path: filePath, Err: err}
		}
		keywords = append(keywords, strings.TrimSpace(line))
	}

	return keywords, nil
}

// Lines lazily yields every line of filePath without its terminator ("\n" or
// "\r\n"). The file is opened on each range and closed when iteration ends.
// Lines have no length limit. A failure is yielded once as a KindIO error and
// ends the sequence.
func Lines(filePath string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		f, err := os.Open(filePath)
		if err != nil {
			yield("", util.IOError("open file", filePath, err))
			return
		}
		defer f.Close()

		reader := bufio.NewReader(f)
		for {
			line, err := reader.ReadString('\n')
			if err != nil && !errors.Is(err, io.EOF) {
				yield("", util.IOError("read file", filePath, err))
				return
			}

			// A trailing newline does not start another line
			if line == "" && err != nil {
				return
			}

			line = strings.TrimSuffix(line, "\n")
			line = strings.TrimSuffix(line, "\r")
			if !yield(line, nil) || err != nil {
				return
			}
		}
	}
}
