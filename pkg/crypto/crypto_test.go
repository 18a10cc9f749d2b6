package crypto

import (
	"crypto/sha256"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("s3cret")
	require.NoError(t, err)
	require.NotEmpty(t, hash)

	assert.True(t, VerifyPassword("s3cret", hash))
	assert.False(t, VerifyPassword("wrong", hash))
	assert.False(t, VerifyPassword("s3cret", "not-a-hash"))
}

func TestGenerateRandomString(t *testing.T) {
	a, err := GenerateRandomString(8)
	require.NoError(t, err)
	b, err := GenerateRandomString(8)
	require.NoError(t, err)

	assert.NotEmpty(t, a)
	assert.NotEqual(t, a, b)
}

func TestEncryptDecryptRoundTrip(t *testing.T) {
	key := sha256.Sum256([]byte("test key material"))

	sealed, err := Encrypt(key[:], []byte("api-token-value"))
	require.NoError(t, err)
	assert.NotContains(t, string(sealed), "api-token-value")

	plain, err := Decrypt(key[:], sealed)
	require.NoError(t, err)
	assert.Equal(t, "api-token-value", string(plain))
}

func TestDecryptWrongKey(t *testing.T) {
	key := sha256.Sum256([]byte("key one"))
	other := sha256.Sum256([]byte("key two"))

	sealed, err := Encrypt(key[:], []byte("payload"))
	require.NoError(t, err)

	_, err = Decrypt(other[:], sealed)
	assert.Error(t, err)
}

func TestDecryptShortCiphertext(t *testing.T) {
	key := sha256.Sum256([]byte("key"))
	_, err := Decrypt(key[:], []byte("short"))
	assert.Error(t, err)
}
