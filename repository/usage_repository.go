// ABOUTME: PostgreSQL implementation of UsageRepository
// ABOUTME: Single-statement atomic increments keyed by (service, usage_date)

package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"feed-sync-engine/models"

	"github.com/google/uuid"
)

// PostgreSQLUsageRepository implements UsageRepository using PostgreSQL.
type PostgreSQLUsageRepository struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewPostgreSQLUsageRepository creates a new PostgreSQL usage repository.
func NewPostgreSQLUsageRepository(db *sql.DB, logger *slog.Logger) UsageRepository {
	return &PostgreSQLUsageRepository{
		db:     db,
		logger: logger,
	}
}

// Increment atomically adds count to the requested zone for today's record,
// inserting the row if absent. The uniqueness constraint on
// (service, usage_date) plus the single upsert statement rules out lost
// updates and duplicate rows under concurrent callers.
func (r *PostgreSQLUsageRepository) Increment(ctx context.Context, service string, zone int, count int, zone1Limit, zone2Limit int) (*models.UsageRecord, error) {
	zone1Add, zone2Add := count, 0
	if zone == models.Zone2 {
		zone1Add, zone2Add = 0, count
	}

	query := `
		INSERT INTO api_usage (
			id, service, usage_date, zone1_usage, zone1_limit,
			zone2_usage, zone2_limit, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (service, usage_date) DO UPDATE SET
			zone1_usage = api_usage.zone1_usage + EXCLUDED.zone1_usage,
			zone2_usage = api_usage.zone2_usage + EXCLUDED.zone2_usage,
			updated_at = EXCLUDED.updated_at
		RETURNING id, service, usage_date, zone1_usage, zone1_limit,
		          zone2_usage, zone2_limit, reset_after, updated_at`

	now := time.Now()
	record := &models.UsageRecord{}
	err := r.db.QueryRowContext(ctx, query,
		uuid.New(),
		service,
		models.UsageDay(now),
		zone1Add,
		zone1Limit,
		zone2Add,
		zone2Limit,
		now,
	).Scan(
		&record.ID,
		&record.Service,
		&record.UsageDate,
		&record.Zone1Usage,
		&record.Zone1Limit,
		&record.Zone2Usage,
		&record.Zone2Limit,
		&record.ResetAfter,
		&record.UpdatedAt,
	)

	if err != nil {
		r.logger.Error("Failed to increment API usage",
			"service", service,
			"zone", zone,
			"error", err)
		return nil, fmt.Errorf("failed to increment API usage: %w", err)
	}

	return record, nil
}

// GetToday retrieves today's usage record for a service.
func (r *PostgreSQLUsageRepository) GetToday(ctx context.Context, service string) (*models.UsageRecord, error) {
	query := `
		SELECT id, service, usage_date, zone1_usage, zone1_limit,
		       zone2_usage, zone2_limit, reset_after, updated_at
		FROM api_usage
		WHERE service = $1 AND usage_date = $2`

	record := &models.UsageRecord{}
	err := r.db.QueryRowContext(ctx, query, service, models.UsageDay(time.Now())).Scan(
		&record.ID,
		&record.Service,
		&record.UsageDate,
		&record.Zone1Usage,
		&record.Zone1Limit,
		&record.Zone2Usage,
		&record.Zone2Limit,
		&record.ResetAfter,
		&record.UpdatedAt,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to query today's usage: %w", err)
	}

	return record, nil
}

// ApplyProviderHeaders overwrites local estimates with the provider's
// authoritative counters. Counters never move backwards within a day except
// by this reconciliation, which treats the provider as ground truth.
func (r *PostgreSQLUsageRepository) ApplyProviderHeaders(ctx context.Context, service string, headers models.RateLimitHeaders) error {
	now := time.Now()

	var resetAfter *time.Time
	if headers.ResetAfter > 0 {
		t := now.Add(headers.ResetAfter)
		resetAfter = &t
	}

	query := `
		INSERT INTO api_usage (
			id, service, usage_date, zone1_usage, zone1_limit,
			zone2_usage, zone2_limit, reset_after, updated_at
		) VALUES ($1, $2, $3,
			GREATEST($4, 0), COALESCE(NULLIF($5, -1), 100),
			GREATEST($6, 0), COALESCE(NULLIF($7, -1), 100),
			$8, $9)
		ON CONFLICT (service, usage_date) DO UPDATE SET
			zone1_usage = GREATEST(COALESCE(NULLIF($4, -1), api_usage.zone1_usage), 0),
			zone1_limit = COALESCE(NULLIF($5, -1), api_usage.zone1_limit),
			zone2_usage = GREATEST(COALESCE(NULLIF($6, -1), api_usage.zone2_usage), 0),
			zone2_limit = COALESCE(NULLIF($7, -1), api_usage.zone2_limit),
			reset_after = COALESCE($8, api_usage.reset_after),
			updated_at = $9`

	_, err := r.db.ExecContext(ctx, query,
		uuid.New(),
		service,
		models.UsageDay(now),
		headers.Zone1Usage,
		headers.Zone1Limit,
		headers.Zone2Usage,
		headers.Zone2Limit,
		resetAfter,
		now,
	)
	if err != nil {
		return fmt.Errorf("failed to apply provider usage headers: %w", err)
	}

	r.logger.Debug("Reconciled usage with provider headers",
		"service", service,
		"zone1_usage", headers.Zone1Usage,
		"zone2_usage", headers.Zone2Usage)

	return nil
}
