package cryptox

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSealOpen_RoundTrip(t *testing.T) {
	key := DeriveKey([]byte("test-passphrase"), []byte("feed-sync-engine"))
	plaintext := []byte(`{"access_token":"at-1234","refresh_token":"rt-5678"}`)

	ciphertext, nonce, authTag, err := Seal(plaintext, key)
	require.NoError(t, err)
	assert.NotEqual(t, plaintext, ciphertext)
	assert.Len(t, nonce, nonceSize)
	assert.Len(t, authTag, tagSize)

	recovered, err := Open(ciphertext, nonce, authTag, key)
	require.NoError(t, err)
	assert.Equal(t, plaintext, recovered)
}

func TestOpen_TamperedAuthTag(t *testing.T) {
	key := DeriveKey([]byte("test-passphrase"), []byte("feed-sync-engine"))

	ciphertext, nonce, authTag, err := Seal([]byte("secret payload"), key)
	require.NoError(t, err)

	authTag[0] ^= 0xff

	plaintext, err := Open(ciphertext, nonce, authTag, key)
	assert.ErrorIs(t, err, ErrAuthFailed)
	assert.Nil(t, plaintext)
}

func TestOpen_WrongKey(t *testing.T) {
	key := DeriveKey([]byte("test-passphrase"), []byte("feed-sync-engine"))
	otherKey := DeriveKey([]byte("other-passphrase"), []byte("feed-sync-engine"))

	ciphertext, nonce, authTag, err := Seal([]byte("secret payload"), key)
	require.NoError(t, err)

	plaintext, err := Open(ciphertext, nonce, authTag, otherKey)
	assert.ErrorIs(t, err, ErrAuthFailed)
	assert.Nil(t, plaintext)
}

func TestDeriveKey_Deterministic(t *testing.T) {
	a := DeriveKey([]byte("passphrase"), []byte("salt"))
	b := DeriveKey([]byte("passphrase"), []byte("salt"))
	c := DeriveKey([]byte("passphrase"), []byte("other-salt"))

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Len(t, a, keySize)
}

func TestSeal_InvalidKeySize(t *testing.T) {
	_, _, _, err := Seal([]byte("data"), []byte("short-key"))
	assert.Error(t, err)
}
