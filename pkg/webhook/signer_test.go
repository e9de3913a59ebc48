package webhook

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalJSON_Deterministic(t *testing.T) {
	payload := map[string]interface{}{
		"zebra":  1,
		"apple":  "x",
		"middle": map[string]interface{}{"b": 2, "a": 1},
	}

	first, err := CanonicalJSON(payload)
	require.NoError(t, err)
	second, err := CanonicalJSON(payload)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	// encoding/json sorts map keys, so key order is stable.
	assert.JSONEq(t, `{"apple":"x","middle":{"a":1,"b":2},"zebra":1}`, string(first))
	assert.Less(t, indexOf(first, "apple"), indexOf(first, "zebra"))
}

func indexOf(body []byte, sub string) int {
	for i := 0; i+len(sub) <= len(body); i++ {
		if string(body[i:i+len(sub)]) == sub {
			return i
		}
	}
	return -1
}

func TestSignAndVerify(t *testing.T) {
	secret := "whsec_abc123"
	body := []byte(`{"new_state":"joining"}`)

	sig := Sign(secret, body)
	assert.Len(t, sig, 64) // hex SHA-256

	assert.True(t, VerifySignature(secret, body, sig))
	assert.False(t, VerifySignature("wrong_secret", body, sig))
	assert.False(t, VerifySignature(secret, []byte(`{"new_state":"leaving"}`), sig))
	assert.False(t, VerifySignature(secret, body, sig[:63]+"0"))
}

func TestSign_KnownVector(t *testing.T) {
	// Fixed vector so subscriber implementations can cross-check.
	sig := Sign("secret", []byte("{}"))
	assert.Equal(t, "77325902caca812dc259733aacd046b73817372c777b8d95b402647474516e13", sig)
}
