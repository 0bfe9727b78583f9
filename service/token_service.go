// ABOUTME: This file implements OAuth2 token lifecycle management over the vault
// ABOUTME: Single-flight refresh, retry with backoff, and re-auth detection

package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"feed-sync-engine/driver"
	"feed-sync-engine/models"
	"feed-sync-engine/repository"

	"golang.org/x/sync/singleflight"
)

// ErrReauthRequired is returned when the refresh token itself is dead and
// only a new operator-driven authorization can recover the service.
var ErrReauthRequired = errors.New("provider re-authorization required")

const defaultRefreshBuffer = 10 * time.Minute

// TokenService owns the OAuth2 token lifecycle. The encrypted vault holds the
// only persisted copy; callers receive tokens by value and never cache the
// refresh token.
type TokenService struct {
	tokenRepo        repository.TokenRepository
	oauth2Client     OAuth2Driver
	logger           *slog.Logger
	refreshBuffer    time.Duration
	maxRetryAttempts int
	backoffUnit      time.Duration

	// Deduplicates concurrent refreshes: N callers hitting an expiring
	// token produce exactly one token endpoint call.
	refreshGroup singleflight.Group
}

// NewTokenService creates a token service with the default refresh buffer.
func NewTokenService(tokenRepo repository.TokenRepository, oauth2Client OAuth2Driver, logger *slog.Logger) *TokenService {
	return NewTokenServiceWithBuffer(tokenRepo, oauth2Client, logger, defaultRefreshBuffer)
}

// NewTokenServiceWithBuffer creates a token service with a custom refresh buffer.
func NewTokenServiceWithBuffer(tokenRepo repository.TokenRepository, oauth2Client OAuth2Driver, logger *slog.Logger, refreshBuffer time.Duration) *TokenService {
	if logger == nil {
		logger = slog.Default()
	}

	return &TokenService{
		tokenRepo:        tokenRepo,
		oauth2Client:     oauth2Client,
		logger:           logger,
		refreshBuffer:    refreshBuffer,
		maxRetryAttempts: 3,
		backoffUnit:      time.Second,
	}
}

// EnsureValidToken returns a token valid for at least the refresh buffer,
// refreshing through the provider when needed.
func (s *TokenService) EnsureValidToken(ctx context.Context) (*models.Token, error) {
	token, err := s.loadToken(ctx)
	if err != nil {
		return nil, err
	}

	if !token.NeedsRefresh(s.refreshBuffer) {
		return token, nil
	}

	s.logger.Info("Token needs refresh",
		"expires_at", token.ExpiresAt,
		"time_until_expiry", token.TimeUntilExpiry())

	refreshed, err := s.refresh(ctx, false)
	if err != nil {
		return nil, err
	}

	if !refreshed.IsValid() {
		return nil, fmt.Errorf("token is invalid after refresh")
	}

	return refreshed, nil
}

// ForceRefresh refreshes the token regardless of its apparent freshness.
// Used after the provider rejects an access token that looked valid locally.
func (s *TokenService) ForceRefresh(ctx context.Context) (*models.Token, error) {
	return s.refresh(ctx, true)
}

// InitializeFromAuthCode performs the one-time authorization code exchange
// and seeds the vault. Run by the operator during first-time setup.
func (s *TokenService) InitializeFromAuthCode(ctx context.Context, code, redirectURI string) (*models.Token, error) {
	response, err := s.oauth2Client.ExchangeAuthCode(ctx, code, redirectURI)
	if err != nil {
		return nil, fmt.Errorf("authorization code exchange failed: %w", err)
	}

	token := models.NewToken(*response, "")
	if token.RefreshToken == "" {
		return nil, fmt.Errorf("authorization response carried no refresh token")
	}

	if err := s.tokenRepo.SaveToken(ctx, token); err != nil {
		return nil, fmt.Errorf("failed to persist initial token: %w", err)
	}

	s.logger.Info("Initial token stored", "expires_at", token.ExpiresAt)
	return token, nil
}

// Status reports the current credential state without refreshing.
func (s *TokenService) Status(ctx context.Context) models.TokenStatus {
	token, err := s.loadToken(ctx)
	if err != nil {
		return models.TokenStatus{
			Exists:         !errors.Is(err, repository.ErrNoTokenFile),
			NeedsRefresh:   true,
			IsExpired:      true,
			RequiresReauth: errors.Is(err, ErrReauthRequired),
			ErrorMessage:   err.Error(),
		}
	}

	return models.TokenStatus{
		Exists:       true,
		IsValid:      token.IsValid(),
		IsExpired:    token.IsExpired(),
		NeedsRefresh: token.NeedsRefresh(s.refreshBuffer),
		ExpiresAt:    token.ExpiresAt,
		TimeToExpiry: token.TimeUntilExpiry(),
	}
}

func (s *TokenService) loadToken(ctx context.Context) (*models.Token, error) {
	token, err := s.tokenRepo.GetCurrentToken(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrNoTokenFile) {
			return nil, fmt.Errorf("%w: no credential file, run the oauth-init flow", ErrReauthRequired)
		}
		return nil, fmt.Errorf("credential storage access failed: %w", err)
	}

	// A credential flagged during an earlier run stays dead until the
	// operator re-authorizes; do not keep re-sending it to the provider.
	if token.RequiresReauth {
		return nil, fmt.Errorf("%w: stored credential was rejected by the provider", ErrReauthRequired)
	}

	return token, nil
}

// markReauthRequired durably flags the stored credential so later runs fail
// fast instead of replaying a dead refresh token against the provider.
func (s *TokenService) markReauthRequired(ctx context.Context, token *models.Token) {
	token.RequiresReauth = true
	if err := s.tokenRepo.SaveToken(ctx, token); err != nil {
		s.logger.Error("Failed to persist re-auth flag", "error", err)
	}
}

// refresh performs a single-flight protected token refresh. With force unset,
// a caller that lost the race gets the freshly stored token without a second
// endpoint call.
func (s *TokenService) refresh(ctx context.Context, force bool) (*models.Token, error) {
	result, err, shared := s.refreshGroup.Do("token_refresh", func() (interface{}, error) {
		current, err := s.loadToken(ctx)
		if err != nil {
			return nil, err
		}

		if !force && !current.NeedsRefresh(s.refreshBuffer) {
			s.logger.Debug("Token already refreshed by a concurrent caller")
			return current, nil
		}

		return s.refreshWithRetry(ctx, current)
	})
	if err != nil {
		return nil, err
	}

	if shared {
		s.logger.Debug("Token refresh result shared with concurrent caller")
	}

	return result.(*models.Token), nil
}

func (s *TokenService) refreshWithRetry(ctx context.Context, token *models.Token) (*models.Token, error) {
	var lastErr error

	for attempt := 1; attempt <= s.maxRetryAttempts; attempt++ {
		refreshed, err := s.performRefresh(ctx, token)
		if err == nil {
			s.logger.Info("Token refresh successful", "attempt", attempt)
			return refreshed, nil
		}
		lastErr = err

		if errors.Is(err, driver.ErrInvalidRefreshToken) ||
			errors.Is(err, driver.ErrTokenRevoked) ||
			errors.Is(err, driver.ErrInvalidGrant) {
			s.logger.Error("Refresh token is no longer usable", "error", err)
			s.markReauthRequired(ctx, token)
			return nil, fmt.Errorf("%w: %v", ErrReauthRequired, err)
		}

		if attempt < s.maxRetryAttempts {
			backoff := time.Duration(attempt) * 2 * s.backoffUnit
			if errors.Is(err, driver.ErrRateLimited) {
				backoff = time.Duration(attempt) * 30 * s.backoffUnit
			} else if errors.Is(err, driver.ErrTemporaryFailure) {
				backoff = time.Duration(attempt) * 10 * s.backoffUnit
			}

			s.logger.Warn("Token refresh attempt failed, backing off",
				"attempt", attempt,
				"backoff", backoff,
				"error", err)

			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(backoff):
			}
		}
	}

	return nil, fmt.Errorf("token refresh failed after %d attempts: %w", s.maxRetryAttempts, lastErr)
}

func (s *TokenService) performRefresh(ctx context.Context, token *models.Token) (*models.Token, error) {
	response, err := s.oauth2Client.RefreshToken(ctx, token.RefreshToken)
	if err != nil {
		return nil, err
	}

	rotated := response.RefreshToken != "" && response.RefreshToken != token.RefreshToken
	refreshed := models.NewToken(*response, token.RefreshToken)

	if err := s.tokenRepo.SaveToken(ctx, refreshed); err != nil {
		// A rotated refresh token that never reached disk is unrecoverable
		// after a restart, so surface that as a hard failure.
		if rotated {
			return nil, fmt.Errorf("refresh token rotated but vault write failed: %w", err)
		}
		s.logger.Warn("Token refreshed but vault write failed, using in-memory token", "error", err)
	}

	if rotated {
		s.logger.Info("Refresh token rotation detected and persisted")
	}

	return refreshed, nil
}
