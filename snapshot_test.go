package wcmp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotRoundTrip(t *testing.T) {
	enc, err := NewEncoder([]byte("snapshot-test-key"))
	require.NoError(t, err)

	for _, sensitive := range []bool{false, true} {
		reg := NewRegistry()
		class := newCounterClass(t, reg)

		src, err := reg.CreateElement("x-counter", class)
		require.NoError(t, err)
		require.NoError(t, src.Set("label", "hits"))
		src.VM().Set("count", 7)

		encoded, err := src.Snapshot(enc, sensitive)
		require.NoError(t, err)

		dst, err := reg.CreateElement("x-counter", class)
		require.NoError(t, err)
		require.NoError(t, dst.Restore(enc, encoded, sensitive))

		label, err := dst.Get("label")
		require.NoError(t, err)
		assert.Equal(t, "hits", label)
		assert.Nil(t, dst.VM().Get("count"), "tracked state is not part of a snapshot")
	}
}

func TestSnapshotTampered(t *testing.T) {
	enc, err := NewEncoder([]byte("snapshot-test-key"))
	require.NoError(t, err)
	reg := NewRegistry()
	class := newCounterClass(t, reg)

	el, err := reg.CreateElement("x-counter", class)
	require.NoError(t, err)
	require.NoError(t, el.Set("label", "hits"))

	signed, err := el.Snapshot(enc, false)
	require.NoError(t, err)
	err = el.Restore(enc, flipChar(signed, 0), false)
	assert.ErrorIs(t, err, ErrSignatureInvalid)
	assert.True(t, IsDecryptionError(err))

	encrypted, err := el.Snapshot(enc, true)
	require.NoError(t, err)
	err = el.Restore(enc, flipChar(encrypted, len(encrypted)/2), true)
	assert.ErrorIs(t, err, ErrDecryptFailed)
	assert.True(t, IsDecryptionError(err))

	err = el.Restore(enc, "!!!", false)
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestSnapshotWithoutVM(t *testing.T) {
	enc, err := NewEncoder([]byte("snapshot-test-key"))
	require.NoError(t, err)

	_, err = NewHostElement("div").Snapshot(enc, false)
	assert.ErrorIs(t, err, ErrNoVM)
}

// flipChar replaces the base64 character at i with a different valid one.
func flipChar(s string, i int) string {
	c := byte('A')
	if s[i] == 'A' {
		c = 'B'
	}
	return s[:i] + string(c) + s[i+1:]
}
