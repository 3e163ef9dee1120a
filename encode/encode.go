// Package encode rewrites a finished wordlist line by line into hashes or
// encodings of each line.
package encode

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/base32"
	"encoding/base64"
	"encoding/hex"
	"iter"
	"os"
	"slices"
	"strings"

	"github.com/vulfilip/rassforge/sink"
	"github.com/vulfilip/rassforge/util"
	"github.com/vulfilip/rassforge/wordlist"
)

// Func transforms a single line, terminator already removed.
type Func func(line string) string

var encoders = map[string]Func{
	"md5":    hexDigest(func(b []byte) []byte { sum := md5.Sum(b); return sum[:] }),
	"sha1":   hexDigest(func(b []byte) []byte { sum := sha1.Sum(b); return sum[:] }),
	"sha256": hexDigest(func(b []byte) []byte { sum := sha256.Sum256(b); return sum[:] }),
	"sha512": hexDigest(func(b []byte) []byte { sum := sha512.Sum512(b); return sum[:] }),
	"base32": func(line string) string {
		return base32.StdEncoding.WithPadding(base32.NoPadding).EncodeToString([]byte(strings.TrimSpace(line)))
	},
	"base64": func(line string) string {
		return base64.RawStdEncoding.EncodeToString([]byte(strings.TrimSpace(line)))
	},
	"rot13": Rot13,
}

// Tags lists every supported encoding tag, sorted.
func Tags() []string {
	tags := make([]string, 0, len(encoders))
	for tag := range encoders {
		tags = append(tags, tag)
	}
	slices.Sort(tags)
	return tags
}

// Lookup returns the transform for tag. Unknown tags are a configuration
// error.
func Lookup(tag string) (Func, error) {
	fn, ok := encoders[tag]
	if !ok {
		return nil, util.InputError("encode", "unknown encoding %q, expected one of [%s]", tag, strings.Join(Tags(), ", "))
	}
	return fn, nil
}

// File reads inPath line by line, transforms each line with the encoding
// named by tag and appends the results to out.
func File(inPath string, tag string, out *sink.Sink) (int, error) {
	fn, err := Lookup(tag)
	if err != nil {
		return 0, err
	}

	// Leave the output untouched when there is nothing to read
	if _, err := os.Stat(inPath); err != nil {
		return 0, util.IOError("open file", inPath, err)
	}

	var readErr error
	n, err := out.Append(transform(wordlist.Lines(inPath), fn, &readErr))
	if readErr != nil {
		return n, readErr
	}
	return n, err
}

func transform(lines iter.Seq2[string, error], fn Func, readErr *error) iter.Seq[string] {
	return func(yield func(string) bool) {
		for line, err := range lines {
			if err != nil {
				*readErr = err
				return
			}
			if !yield(fn(line)) {
				return
			}
		}
	}
}

// Rot13 rotates ASCII letters by 13 places and leaves everything else alone.
func Rot13(text string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'A' && r <= 'M', r >= 'a' && r <= 'm':
			return r + 13
		case r >= 'N' && r <= 'Z', r >= 'n' && r <= 'z':
			return r - 13
		}
		return r
	}, text)
}

func hexDigest(sum func([]byte) []byte) Func {
	return func(line string) string {
		return hex.EncodeToString(sum([]byte(line)))
	}
}
