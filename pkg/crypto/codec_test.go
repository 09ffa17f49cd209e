package crypto

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
	key := make([]byte, 32)
	_, err := rand.Read(key)
	require.NoError(t, err)
	return key
}

func TestCodec_RoundTrip(t *testing.T) {
	codec, err := NewCodec(testKey(t))
	require.NoError(t, err)

	plaintext := []byte(`{"account_sid":"AC123","auth_token":"secret"}`)
	ciphertext, err := codec.Encrypt(plaintext)
	require.NoError(t, err)
	assert.NotContains(t, string(ciphertext), "secret")

	decrypted, err := codec.Decrypt(ciphertext)
	require.NoError(t, err)
	assert.Equal(t, plaintext, decrypted)
}

func TestCodec_NonceUniqueness(t *testing.T) {
	codec, err := NewCodec(testKey(t))
	require.NoError(t, err)

	first, err := codec.Encrypt([]byte("same input"))
	require.NoError(t, err)
	second, err := codec.Encrypt([]byte("same input"))
	require.NoError(t, err)

	assert.False(t, bytes.Equal(first, second), "two encryptions of the same plaintext must differ")
}

func TestCodec_WrongKey(t *testing.T) {
	codec, err := NewCodec(testKey(t))
	require.NoError(t, err)
	other, err := NewCodec(testKey(t))
	require.NoError(t, err)

	ciphertext, err := codec.Encrypt([]byte("secret"))
	require.NoError(t, err)

	_, err = other.Decrypt(ciphertext)
	assert.ErrorIs(t, err, ErrCiphertextInvalid)
}

func TestCodec_CorruptCiphertext(t *testing.T) {
	codec, err := NewCodec(testKey(t))
	require.NoError(t, err)

	ciphertext, err := codec.Encrypt([]byte("secret"))
	require.NoError(t, err)
	ciphertext[len(ciphertext)-1] ^= 0xFF

	_, err = codec.Decrypt(ciphertext)
	assert.ErrorIs(t, err, ErrCiphertextInvalid)

	_, err = codec.Decrypt([]byte("short"))
	assert.ErrorIs(t, err, ErrCiphertextInvalid)
}

func TestNewCodec_KeySize(t *testing.T) {
	_, err := NewCodec(make([]byte, 16))
	assert.ErrorIs(t, err, ErrInvalidKey)
}

func TestNewCodecFromEnv(t *testing.T) {
	t.Run("missing", func(t *testing.T) {
		t.Setenv(KeyEnvVar, "")
		_, err := NewCodecFromEnv()
		assert.ErrorIs(t, err, ErrMissingKey)
	})

	t.Run("not base64", func(t *testing.T) {
		t.Setenv(KeyEnvVar, "not-base64!!!")
		_, err := NewCodecFromEnv()
		assert.ErrorIs(t, err, ErrInvalidKey)
	})

	t.Run("wrong length", func(t *testing.T) {
		t.Setenv(KeyEnvVar, base64.StdEncoding.EncodeToString(make([]byte, 16)))
		_, err := NewCodecFromEnv()
		assert.ErrorIs(t, err, ErrInvalidKey)
	})

	t.Run("valid", func(t *testing.T) {
		t.Setenv(KeyEnvVar, base64.StdEncoding.EncodeToString(testKey(t)))
		codec, err := NewCodecFromEnv()
		require.NoError(t, err)

		ciphertext, err := codec.Encrypt([]byte("hello"))
		require.NoError(t, err)
		decrypted, err := codec.Decrypt(ciphertext)
		require.NoError(t, err)
		assert.Equal(t, []byte("hello"), decrypted)
	})
}

func TestMaskSecret(t *testing.T) {
	tests := []struct {
		name   string
		secret string
		want   string
	}{
		{name: "normal key", secret: "sk_live_abcdef123456", want: "****3456"},
		{name: "short value", secret: "abc", want: "****"},
		{name: "boundary", secret: "12345678", want: "****"},
		{name: "empty", secret: "", want: "****"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MaskSecret(tt.secret))
		})
	}
}

func TestMaskStored(t *testing.T) {
	assert.Equal(t, "", MaskStored(nil))
	assert.Equal(t, "****", MaskStored([]byte{0x01, 0x02}))
}
