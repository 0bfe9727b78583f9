// ABOUTME: AES-256-GCM sealing helpers for the encrypted credential file
// ABOUTME: Derives the vault key from a passphrase using argon2id

package cryptox

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"errors"
	"fmt"

	"golang.org/x/crypto/argon2"
)

const (
	keySize   = 32
	nonceSize = 12
	tagSize   = 16
)

// ErrAuthFailed is returned when decryption fails authentication. No partial
// plaintext is ever returned alongside it.
var ErrAuthFailed = errors.New("ciphertext authentication failed")

// DeriveKey derives a 256-bit AES key from a passphrase and salt using
// argon2id with the recommended interactive parameters.
func DeriveKey(passphrase, salt []byte) []byte {
	return argon2.IDKey(passphrase, salt, 1, 64*1024, 4, keySize)
}

// Seal encrypts plaintext with AES-256-GCM under a fresh random nonce.
// The 16-byte authentication tag is returned separately from the ciphertext
// so the credential file can store all three fields individually.
func Seal(plaintext, key []byte) (ciphertext, nonce, authTag []byte, err error) {
	if len(key) != keySize {
		return nil, nil, nil, fmt.Errorf("invalid key size: %d", len(key))
	}

	nonce = make([]byte, nonceSize)
	if _, err := rand.Read(nonce); err != nil {
		return nil, nil, nil, fmt.Errorf("failed to generate nonce: %w", err)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, nil, nil, err
	}
	aesgcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, nil, nil, err
	}

	sealed := aesgcm.Seal(nil, nonce, plaintext, nil)

	split := len(sealed) - tagSize
	return sealed[:split], nonce, sealed[split:], nil
}

// Open decrypts ciphertext produced by Seal. A tampered ciphertext, nonce,
// or tag fails closed with ErrAuthFailed.
func Open(ciphertext, nonce, authTag, key []byte) ([]byte, error) {
	if len(key) != keySize {
		return nil, fmt.Errorf("invalid key size: %d", len(key))
	}
	if len(nonce) != nonceSize {
		return nil, fmt.Errorf("invalid nonce size: %d", len(nonce))
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	aesgcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	sealed := make([]byte, 0, len(ciphertext)+len(authTag))
	sealed = append(sealed, ciphertext...)
	sealed = append(sealed, authTag...)

	plaintext, err := aesgcm.Open(nil, nonce, sealed, nil)
	if err != nil {
		return nil, ErrAuthFailed
	}

	return plaintext, nil
}
