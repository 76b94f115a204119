package crypto

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testKey() string {
	return base64.StdEncoding.EncodeToString([]byte("0123456789abcdef0123456789abcdef"))
}

func TestEncryptDecryptRoundTrip(t *testing.T) {
	enc, err := NewTokenEncryptor(testKey())
	require.NoError(t, err)

	ciphertext, err := enc.Encrypt("reset-token-value")
	require.NoError(t, err)
	require.NotEmpty(t, ciphertext)
	assert.NotEqual(t, "reset-token-value", ciphertext)

	plaintext, err := enc.Decrypt(ciphertext)
	require.NoError(t, err)
	assert.Equal(t, "reset-token-value", plaintext)
}

func TestEncryptEmptyString(t *testing.T) {
	enc, err := NewTokenEncryptor(testKey())
	require.NoError(t, err)

	ciphertext, err := enc.Encrypt("")
	require.NoError(t, err)
	assert.Empty(t, ciphertext)

	plaintext, err := enc.Decrypt("")
	require.NoError(t, err)
	assert.Empty(t, plaintext)
}

func TestNewTokenEncryptorRejectsBadKeys(t *testing.T) {
	_, err := NewTokenEncryptor("")
	assert.Error(t, err)

	_, err = NewTokenEncryptor("not-base64!!!")
	assert.Error(t, err)

	short := base64.StdEncoding.EncodeToString([]byte("too-short"))
	_, err = NewTokenEncryptor(short)
	assert.Error(t, err)
}

func TestDecryptTamperedCiphertext(t *testing.T) {
	enc, err := NewTokenEncryptor(testKey())
	require.NoError(t, err)

	ciphertext, err := enc.Encrypt("secret")
	require.NoError(t, err)

	raw, err := base64.StdEncoding.DecodeString(ciphertext)
	require.NoError(t, err)
	raw[len(raw)-1] ^= 0xff
	tampered := base64.StdEncoding.EncodeToString(raw)

	_, err = enc.Decrypt(tampered)
	assert.Error(t, err)
}
