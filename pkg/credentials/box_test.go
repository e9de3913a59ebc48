package credentials

import (
	"bytes"
	"crypto/rand"
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testKey(t *testing.T) []byte {
	t.Helper()
	key := make([]byte, KeySize)
	_, err := rand.Read(key)
	require.NoError(t, err)
	return key
}

func TestNewBox(t *testing.T) {
	t.Run("accepts 32-byte key", func(t *testing.T) {
		box, err := NewBox(testKey(t))
		require.NoError(t, err)
		assert.NotNil(t, box)
	})

	t.Run("rejects short key", func(t *testing.T) {
		_, err := NewBox([]byte("too-short"))
		assert.Error(t, err)
	})

	t.Run("from base64", func(t *testing.T) {
		key := testKey(t)
		box, err := NewBoxFromBase64(base64.StdEncoding.EncodeToString(key))
		require.NoError(t, err)
		assert.NotNil(t, box)
	})

	t.Run("rejects invalid base64", func(t *testing.T) {
		_, err := NewBoxFromBase64("not base64!!!")
		assert.Error(t, err)
	})
}

func TestSealOpenRoundTrip(t *testing.T) {
	box, err := NewBox(testKey(t))
	require.NoError(t, err)

	original := map[string]any{
		"client_id":     "abc123",
		"client_secret": "s3cr3t",
		"nested":        map[string]any{"region": "us-east-1"},
	}

	sealed, err := box.Seal(original)
	require.NoError(t, err)
	assert.NotContains(t, string(sealed), "s3cr3t")

	var opened map[string]any
	require.NoError(t, box.Open(sealed, &opened))
	assert.Equal(t, original["client_id"], opened["client_id"])
	assert.Equal(t, original["client_secret"], opened["client_secret"])
	assert.Equal(t, "us-east-1", opened["nested"].(map[string]any)["region"])
}

func TestSealIsNonDeterministic(t *testing.T) {
	box, err := NewBox(testKey(t))
	require.NoError(t, err)

	a, err := box.Seal(map[string]string{"k": "v"})
	require.NoError(t, err)
	b, err := box.Seal(map[string]string{"k": "v"})
	require.NoError(t, err)
	assert.False(t, bytes.Equal(a, b), "nonce must differ per seal")
}

func TestOpenFailures(t *testing.T) {
	box, err := NewBox(testKey(t))
	require.NoError(t, err)

	t.Run("truncated ciphertext", func(t *testing.T) {
		var out map[string]any
		err := box.Open([]byte("short"), &out)
		assert.ErrorIs(t, err, ErrDecryptionFailed)
	})

	t.Run("tampered ciphertext", func(t *testing.T) {
		sealed, err := box.Seal(map[string]string{"k": "v"})
		require.NoError(t, err)
		sealed[len(sealed)-1] ^= 0xFF

		var out map[string]any
		err = box.Open(sealed, &out)
		assert.ErrorIs(t, err, ErrDecryptionFailed)
	})

	t.Run("wrong key", func(t *testing.T) {
		sealed, err := box.Seal(map[string]string{"k": "v"})
		require.NoError(t, err)

		other, err := NewBox(testKey(t))
		require.NoError(t, err)

		var out map[string]any
		err = other.Open(sealed, &out)
		assert.ErrorIs(t, err, ErrDecryptionFailed)
	})
}
