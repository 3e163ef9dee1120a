package encode

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vulfilip/rassforge/sink"
	"github.com/vulfilip/rassforge/util"
)

func TestEncoders(t *testing.T) {
	tests := []struct {
		tag  string
		in   string
		want string
	}{
		{"md5", "password", "5f4dcc3b5aa765d61d8327deb882cf99"},
		{"sha1", "password", "5baa61e4c9b93f3f0682250b6cf8331b7ee68fd8"},
		{"sha256", "password", "5e884898da28047151d0e56f8dc6292773603d0d6aabbdd62a11ef721d1542d8"},
		{"sha512", "abc", "ddaf35a193617abacc417349ae20413112e6fa4e89a97ea20a9eeee64b55d39a2192992a274fc1a836ba3c23a3feebbd454d4423643ce80e2a9ac94fa54ca49f"},
		{"base32", " password ", "OBQXG43XN5ZGI"},
		{"base64", "password", "cGFzc3dvcmQ"},
		{"rot13", "Hello, World!", "Uryyb, Jbeyq!"},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			fn, err := Lookup(tt.tag)
			require.NoError(t, err)
			assert.Equal(t, tt.want, fn(tt.in))
		})
	}
}

func TestRot13RoundTrip(t *testing.T) {
	assert.Equal(t, "Summer2024!é", Rot13(Rot13("Summer2024!é")))
}

func TestLookupUnknownTag(t *testing.T) {
	_, err := Lookup("crc32")
	require.Error(t, err)
	assert.True(t, util.IsKind(err, util.KindInput))
	assert.Contains(t, err.Error(), "base32, base64, md5, rot13, sha1, sha256, sha512")
}

func TestFileAppendsEncodedLines(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.txt")
	out := filepath.Join(dir, "out.txt")
	require.NoError(t, os.WriteFile(in, []byte("uryyb\r\nabc\n"), 0o644))

	for i := 0; i < 2; i++ {
		n, err := File(in, "rot13", sink.New(out))
		require.NoError(t, err)
		assert.Equal(t, 2, n)
	}

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "hello\nnop\nhello\nnop\n", string(data))
}

func TestFileMissingInput(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "out.txt")

	_, err := File(filepath.Join(dir, "missing.txt"), "md5", sink.New(out))
	require.Error(t, err)
	assert.True(t, util.IsKind(err, util.KindIO))
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.NoFileExists(t, out)
}

func TestFileUnknownTagWritesNothing(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "out.txt")

	_, err := File(filepath.Join(dir, "in.txt"), "nope", sink.New(out))
	require.Error(t, err)
	assert.NoFileExists(t, out)
}
