// Package credentials seals third-party credential blobs with authenticated
// symmetric encryption. Blobs round-trip as JSON; the process-wide key is
// supplied by configuration, never read from ambient globals.
package credentials

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrDecryptionFailed is returned when a ciphertext cannot be authenticated
// or decrypted. Non-retryable.
var ErrDecryptionFailed = errors.New("credential blob decryption failed")

// KeySize is the required AES-256 key length in bytes.
const KeySize = 32

// Box seals and opens credential blobs with AES-256-GCM.
type Box struct {
	aead cipher.AEAD
}

// NewBox builds a Box from a raw 32-byte key.
func NewBox(key []byte) (*Box, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("encryption key must be %d bytes, got %d", KeySize, len(key))
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cipher: %w", err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize GCM: %w", err)
	}
	return &Box{aead: aead}, nil
}

// NewBoxFromBase64 builds a Box from a standard-base64 encoded key, the form
// carried in configuration.
func NewBoxFromBase64(encoded string) (*Box, error) {
	key, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("encryption key is not valid base64: %w", err)
	}
	return NewBox(key)
}

// Seal marshals v to JSON and encrypts it. The nonce is prepended to the
// returned ciphertext.
func (b *Box) Seal(v any) ([]byte, error) {
	plaintext, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal credentials: %w", err)
	}
	nonce := make([]byte, b.aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return nil, fmt.Errorf("failed to generate nonce: %w", err)
	}
	return b.aead.Seal(nonce, nonce, plaintext, nil), nil
}

// Open decrypts a sealed blob and unmarshals the JSON into v.
func (b *Box) Open(ciphertext []byte, v any) error {
	if len(ciphertext) < b.aead.NonceSize() {
		return fmt.Errorf("%w: ciphertext too short", ErrDecryptionFailed)
	}
	nonce, sealed := ciphertext[:b.aead.NonceSize()], ciphertext[b.aead.NonceSize():]
	plaintext, err := b.aead.Open(nil, nonce, sealed, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDecryptionFailed, err)
	}
	if err := json.Unmarshal(plaintext, v); err != nil {
		return fmt.Errorf("%w: decrypted payload is not valid JSON: %v", ErrDecryptionFailed, err)
	}
	return nil
}
