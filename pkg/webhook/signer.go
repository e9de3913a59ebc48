// Package webhook delivers enqueued payloads to subscriber endpoints with
// HMAC signatures and exponential backoff.
package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// Delivery request headers.
const (
	HeaderSignature      = "X-Stenobot-Signature"
	HeaderIdempotencyKey = "X-Stenobot-Idempotency-Key"
	HeaderTrigger        = "X-Stenobot-Trigger"
)

// CanonicalJSON renders the payload deterministically so the signature is
// reproducible on the receiving side: encoding/json sorts map keys.
func CanonicalJSON(payload map[string]interface{}) ([]byte, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payload: %w", err)
	}
	return body, nil
}

// Sign computes the hex HMAC-SHA-256 of body under the project's webhook
// secret.
func Sign(secret string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

// VerifySignature checks a received signature in constant time. Exposed for
// subscriber-side verification and tests.
func VerifySignature(secret string, body []byte, signature string) bool {
	return hmac.Equal([]byte(Sign(secret, body)), []byte(signature))
}
