// ABOUTME: Encrypted file implementation of TokenRepository
// ABOUTME: Stores credentials as AES-256-GCM sealed JSON with atomic rewrite

package repository

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"feed-sync-engine/cryptox"
	"feed-sync-engine/models"
)

// vaultKeySalt is fixed per service; the passphrase carries the secrecy.
const vaultKeySalt = "feed-sync-engine/token-vault"

// FileTokenRepository implements TokenRepository on an encrypted local file.
// The file holds base64 ciphertext, IV, and auth tag, with owner-only
// permissions, and is rewritten atomically via write-temp-then-rename.
type FileTokenRepository struct {
	filePath string
	key      []byte
	logger   *slog.Logger
	mu       sync.RWMutex
}

// NewFileTokenRepository creates an encrypted file token repository. The AES
// key is derived once from the passphrase with argon2id.
func NewFileTokenRepository(filePath, passphrase string, logger *slog.Logger) *FileTokenRepository {
	if logger == nil {
		logger = slog.Default()
	}

	return &FileTokenRepository{
		filePath: filePath,
		key:      cryptox.DeriveKey([]byte(passphrase), []byte(vaultKeySalt)),
		logger:   logger,
	}
}

// GetCurrentToken decrypts and parses the credential file.
func (r *FileTokenRepository) GetCurrentToken(ctx context.Context) (*models.Token, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	raw, err := os.ReadFile(r.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNoTokenFile
		}
		return nil, fmt.Errorf("failed to read credential file: %w", err)
	}

	var envelope models.EncryptedTokenFile
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTokenFile, err)
	}

	ciphertext, iv, authTag, err := decodeEnvelope(&envelope)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTokenFile, err)
	}

	plaintext, err := cryptox.Open(ciphertext, iv, authTag, r.key)
	if err != nil {
		r.logger.Error("Credential file decryption failed")
		return nil, ErrDecryptFailed
	}

	var token models.Token
	if err := json.Unmarshal(plaintext, &token); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTokenFile, err)
	}

	if token.AccessToken == "" && token.RefreshToken == "" {
		return nil, fmt.Errorf("%w: empty credential payload", ErrInvalidTokenFile)
	}

	return &token, nil
}

// SaveToken encrypts and atomically rewrites the credential file, preserving
// restrictive permissions through the rename.
func (r *FileTokenRepository) SaveToken(ctx context.Context, token *models.Token) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	plaintext, err := json.Marshal(token)
	if err != nil {
		return fmt.Errorf("failed to serialize token: %w", err)
	}

	ciphertext, iv, authTag, err := cryptox.Seal(plaintext, r.key)
	if err != nil {
		return fmt.Errorf("failed to encrypt token: %w", err)
	}

	envelope := models.EncryptedTokenFile{
		Ciphertext: base64.StdEncoding.EncodeToString(ciphertext),
		IV:         base64.StdEncoding.EncodeToString(iv),
		AuthTag:    base64.StdEncoding.EncodeToString(authTag),
	}

	raw, err := json.Marshal(&envelope)
	if err != nil {
		return fmt.Errorf("failed to serialize credential envelope: %w", err)
	}

	dir := filepath.Dir(r.filePath)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create credential directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".credentials-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp credential file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if err := tmp.Chmod(0600); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to restrict temp file permissions: %w", err)
	}

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write credential file: %w", err)
	}

	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close credential file: %w", err)
	}

	if err := os.Rename(tmpPath, r.filePath); err != nil {
		return fmt.Errorf("failed to replace credential file: %w", err)
	}

	r.logger.Info("Credential file updated",
		"expires_at", token.ExpiresAt)

	return nil
}

func decodeEnvelope(envelope *models.EncryptedTokenFile) (ciphertext, iv, authTag []byte, err error) {
	ciphertext, err = base64.StdEncoding.DecodeString(envelope.Ciphertext)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("bad ciphertext encoding: %w", err)
	}

	iv, err = base64.StdEncoding.DecodeString(envelope.IV)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("bad iv encoding: %w", err)
	}

	authTag, err = base64.StdEncoding.DecodeString(envelope.AuthTag)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("bad auth tag encoding: %w", err)
	}

	return ciphertext, iv, authTag, nil
}
