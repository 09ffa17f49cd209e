// Package crypto provides at-rest encryption for credential columns and
// masked rendering of secrets in API responses and logs.
package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"os"
)

// KeyEnvVar is the environment variable holding the base64-encoded 32-byte
// encryption key. The key never appears in configuration files.
const KeyEnvVar = "SOKOCHAT_ENCRYPTION_KEY"

var (
	// ErrMissingKey indicates the encryption key environment variable is unset.
	ErrMissingKey = errors.New("encryption key not configured")

	// ErrInvalidKey indicates the key is not a base64-encoded 32-byte value.
	ErrInvalidKey = errors.New("encryption key must be 32 bytes, base64-encoded")

	// ErrCiphertextInvalid indicates the stored blob is corrupt or was
	// encrypted with a different key.
	ErrCiphertextInvalid = errors.New("ciphertext invalid")
)

// Codec encrypts and decrypts credential fields. Columns store the opaque
// ciphertext; decryption happens at the process boundary and plaintext is
// never persisted or logged.
type Codec interface {
	Encrypt(plaintext []byte) ([]byte, error)
	Decrypt(ciphertext []byte) ([]byte, error)
}

// aesCodec is an AES-256-GCM Codec. The random nonce is prepended to the
// ciphertext so each blob is self-contained.
type aesCodec struct {
	aead cipher.AEAD
}

// NewCodec creates a Codec from a raw 32-byte key.
func NewCodec(key []byte) (Codec, error) {
	if len(key) != 32 {
		return nil, ErrInvalidKey
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}
	return &aesCodec{aead: aead}, nil
}

// NewCodecFromEnv creates a Codec from the base64-encoded key in KeyEnvVar.
func NewCodecFromEnv() (Codec, error) {
	encoded := os.Getenv(KeyEnvVar)
	if encoded == "" {
		return nil, fmt.Errorf("%w: set %s", ErrMissingKey, KeyEnvVar)
	}
	key, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidKey, err)
	}
	return NewCodec(key)
}

func (c *aesCodec) Encrypt(plaintext []byte) ([]byte, error) {
	nonce := make([]byte, c.aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("failed to generate nonce: %w", err)
	}
	return c.aead.Seal(nonce, nonce, plaintext, nil), nil
}

func (c *aesCodec) Decrypt(ciphertext []byte) ([]byte, error) {
	nonceSize := c.aead.NonceSize()
	if len(ciphertext) < nonceSize {
		return nil, ErrCiphertextInvalid
	}
	nonce, sealed := ciphertext[:nonceSize], ciphertext[nonceSize:]
	plaintext, err := c.aead.Open(nil, nonce, sealed, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCiphertextInvalid, err)
	}
	return plaintext, nil
}
