// ABOUTME: This file defines domain models for OAuth2 credential lifecycle
// ABOUTME: Handles access token, refresh token, and expiration logic

package models

import (
	"time"
)

// Token represents an OAuth2 access token with metadata. The vault owns the
// only persisted copy; everything else receives it by value through the
// token service.
type Token struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	TokenType    string    `json:"token_type"`
	ExpiresIn    int       `json:"expires_in"`
	ExpiresAt    time.Time `json:"expires_at"`
	Scope        string    `json:"scope"`
	IssuedAt     time.Time `json:"issued_at"`

	// RequiresReauth marks a credential the provider has rejected with a
	// terminal grant error. Refresh attempts stop until a new authorization
	// code is exchanged out of band.
	RequiresReauth bool `json:"requires_reauth,omitempty"`
}

// TokenStatus describes the vault's current credential for health checks.
type TokenStatus struct {
	Exists         bool          `json:"exists"`
	IsValid        bool          `json:"is_valid"`
	IsExpired      bool          `json:"is_expired"`
	NeedsRefresh   bool          `json:"needs_refresh"`
	RequiresReauth bool          `json:"requires_reauth"`
	ExpiresAt      time.Time     `json:"expires_at,omitempty"`
	TimeToExpiry   time.Duration `json:"time_to_expiry,omitempty"`
	ErrorMessage   string        `json:"error_message,omitempty"`
}

// TokenResponse represents the OAuth2 token endpoint response from the
// provider, shared by the refresh-token and authorization-code grants.
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int    `json:"expires_in"`
	RefreshToken string `json:"refresh_token,omitempty"`
	Scope        string `json:"scope"`
}

// EncryptedTokenFile is the on-disk shape of the credential file. All three
// fields are base64 standard encoding.
type EncryptedTokenFile struct {
	Ciphertext string `json:"ciphertext"`
	IV         string `json:"iv"`
	AuthTag    string `json:"auth_tag"`
}

// NewToken creates a new Token from a provider token response. The existing
// refresh token is kept when the response omits one (the provider only
// rotates it occasionally).
func NewToken(response TokenResponse, existingRefreshToken string) *Token {
	now := time.Now()

	refreshToken := response.RefreshToken
	if refreshToken == "" {
		refreshToken = existingRefreshToken
	}

	return &Token{
		AccessToken:  response.AccessToken,
		RefreshToken: refreshToken,
		TokenType:    response.TokenType,
		ExpiresIn:    response.ExpiresIn,
		ExpiresAt:    now.Add(time.Duration(response.ExpiresIn) * time.Second),
		Scope:        response.Scope,
		IssuedAt:     now,
	}
}

// IsExpired checks if the token is expired.
func (t *Token) IsExpired() bool {
	return time.Now().After(t.ExpiresAt)
}

// NeedsRefresh checks if the token needs to be refreshed based on buffer time.
func (t *Token) NeedsRefresh(buffer time.Duration) bool {
	return time.Now().Add(buffer).After(t.ExpiresAt)
}

// TimeUntilExpiry returns the duration until token expiry.
func (t *Token) TimeUntilExpiry() time.Duration {
	return time.Until(t.ExpiresAt)
}

// IsValid checks if the token is usable for authenticated requests.
func (t *Token) IsValid() bool {
	return t.AccessToken != "" && !t.IsExpired()
}

// UpdateFromRefresh updates the token in place with a refresh response.
func (t *Token) UpdateFromRefresh(response TokenResponse) {
	now := time.Now()

	t.AccessToken = response.AccessToken
	t.TokenType = response.TokenType
	t.ExpiresIn = response.ExpiresIn
	t.ExpiresAt = now.Add(time.Duration(response.ExpiresIn) * time.Second)
	t.IssuedAt = now

	if response.Scope != "" {
		t.Scope = response.Scope
	}
	if response.RefreshToken != "" {
		t.RefreshToken = response.RefreshToken
	}
}
