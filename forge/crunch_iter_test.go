package forge

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vulfilip/rassforge/util"
)

func TestCrunchDepthFirstOrder(t *testing.T) {
	it, err := NewCrunchIter("ab", 1, 2)
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "aa", "ab", "b", "ba", "bb"}, slices.Collect(it.IterPasswords()))
}

func TestCrunchEmptyPrefixWhenMinZero(t *testing.T) {
	it, err := NewCrunchIter("xy", 0, 1)
	require.NoError(t, err)

	assert.Equal(t, []string{"", "x", "y"}, slices.Collect(it.IterPasswords()))
}

func TestCrunchKeepsDuplicateCharacters(t *testing.T) {
	it, err := NewCrunchIter("aab", 2, 2)
	require.NoError(t, err)

	got := slices.Collect(it.IterPasswords())
	assert.Equal(t, []string{"aa", "aa", "ab", "aa", "aa", "ab", "ba", "ba", "bb"}, got)
}

func TestCrunchMultibyteCharset(t *testing.T) {
	it, err := NewCrunchIter("é1", 2, 2)
	require.NoError(t, err)

	assert.Equal(t, []string{"éé", "é1", "1é", "11"}, slices.Collect(it.IterPasswords()))
}

func TestCrunchCountLaw(t *testing.T) {
	for n := 1; n <= 4; n++ {
		charset := "abcd"[:n]
		for min := 0; min <= 3; min++ {
			for max := min; max <= 4; max++ {
				it, err := NewCrunchIter(charset, min, max)
				require.NoError(t, err)

				var want uint64
				for length := min; length <= max; length++ {
					pow := uint64(1)
					for i := 0; i < length; i++ {
						pow *= uint64(n)
					}
					want += pow
				}

				got, err := it.GetPasswordCount()
				require.NoError(t, err)
				assert.Equal(t, want, got, "n=%d min=%d max=%d", n, min, max)

				var emitted uint64
				for range it.IterPasswords() {
					emitted++
				}
				assert.Equal(t, want, emitted, "n=%d min=%d max=%d", n, min, max)
			}
		}
	}
}

func TestCrunchLengthsWithinBounds(t *testing.T) {
	it, err := NewCrunchIter("01", 2, 3)
	require.NoError(t, err)

	for candidate := range it.IterPasswords() {
		assert.GreaterOrEqual(t, len(candidate), 2)
		assert.LessOrEqual(t, len(candidate), 3)
	}
}

func TestCrunchRestartableAndStoppable(t *testing.T) {
	it, err := NewCrunchIter("abc", 1, 3)
	require.NoError(t, err)

	seq := it.IterPasswords()
	first := slices.Collect(seq)
	assert.Equal(t, first, slices.Collect(seq))

	var head []string
	for candidate := range seq {
		head = append(head, candidate)
		if len(head) == 4 {
			break
		}
	}
	assert.Equal(t, []string{"a", "aa", "aaa", "aab"}, head)
}

func TestCrunchCountOverflow(t *testing.T) {
	it, err := NewCrunchIter("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ1234567890", 1, 20)
	require.NoError(t, err)

	_, err = it.GetPasswordCount()
	assert.ErrorIs(t, err, ErrCountOverflow)
}

func TestNewCrunchIterInvalid(t *testing.T) {
	tests := map[string]struct {
		charset  string
		min, max int
	}{
		"empty charset": {"", 1, 2},
		"min above max": {"ab", 3, 2},
		"negative":      {"ab", -1, 2},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := NewCrunchIter(tt.charset, tt.min, tt.max)
			require.Error(t, err)
			assert.True(t, util.IsKind(err, util.KindInput))
		})
	}
}

func TestCrunchBatches(t *testing.T) {
	it, err := NewCrunchIter("ab", 1, 1)
	require.NoError(t, err)

	batches := it.Batches()
	require.Len(t, batches, 1)
	assert.Equal(t, "crunch", batches[0].Name)
	assert.Equal(t, []string{"a", "b"}, slices.Collect(IterPasswords(it)))
}

func TestCrunchHugeMaxStartsLazily(t *testing.T) {
	it, err := NewCrunchIter("ab", 1, 1<<40)
	require.NoError(t, err)

	var head []string
	for candidate := range it.IterPasswords() {
		head = append(head, candidate)
		if len(head) == 3 {
			break
		}
	}
	assert.Equal(t, []string{"a", "aa", "aaa"}, head)
}

func TestCrunchSingleCharacterCount(t *testing.T) {
	it, err := NewCrunchIter("x", 3, 1<<40)
	require.NoError(t, err)

	got, err := it.GetPasswordCount()
	require.NoError(t, err)
	assert.Equal(t, uint64(1<<40-3+1), got)

	small, err := NewCrunchIter("x", 0, 3)
	require.NoError(t, err)
	count, err := small.GetPasswordCount()
	require.NoError(t, err)
	assert.Equal(t, uint64(4), count)
	assert.Equal(t, []string{"", "x", "xx", "xxx"}, slices.Collect(small.IterPasswords()))
}
