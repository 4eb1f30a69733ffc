package idgen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSequence(t *testing.T) {
	next := Sequence("n")
	assert.Equal(t, "n-1", next())
	assert.Equal(t, "n-2", next())

	other := Sequence("n")
	assert.Equal(t, "n-1", other(), "sequences do not share counters")
}

func TestChild(t *testing.T) {
	next := Sequence("x")
	assert.Equal(t, "doc/x-1", Child("doc", next))
}

func TestULIDFormat(t *testing.T) {
	next := ULID()
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := next()
		require.Len(t, id, 26)
		for _, c := range id {
			require.True(t, strings.ContainsRune(crockford, c), "unexpected rune %q in %s", c, id)
		}
		require.False(t, seen[id], "duplicate ulid %s", id)
		seen[id] = true
	}
}

func TestEncodeULIDBoundaries(t *testing.T) {
	var zero [16]byte
	assert.Equal(t, strings.Repeat("0", 26), encodeULID(zero))

	var ones [16]byte
	for i := range ones {
		ones[i] = 0xff
	}
	assert.Equal(t, "7"+strings.Repeat("Z", 25), encodeULID(ones))

	var low [16]byte
	low[15] = 1
	assert.Equal(t, strings.Repeat("0", 25)+"1", encodeULID(low))
}

func TestUUID(t *testing.T) {
	id := UUID()()
	assert.Len(t, id, 36)
}

func TestByName(t *testing.T) {
	for _, name := range []string{"", "ulid", "UUID", "sequence"} {
		f, err := ByName(name)
		require.NoError(t, err, name)
		assert.NotEmpty(t, f())
	}

	_, err := ByName("snowflake")
	assert.Error(t, err)
}
