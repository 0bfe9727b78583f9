// ABOUTME: PostgreSQL implementation of SettingsRepository
// ABOUTME: Reads key/value tunables and overlays them onto built-in defaults

package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"feed-sync-engine/models"
)

// PostgreSQLSettingsRepository implements SettingsRepository using PostgreSQL.
type PostgreSQLSettingsRepository struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewPostgreSQLSettingsRepository creates a new PostgreSQL settings repository.
func NewPostgreSQLSettingsRepository(db *sql.DB, logger *slog.Logger) SettingsRepository {
	return &PostgreSQLSettingsRepository{
		db:     db,
		logger: logger,
	}
}

// Load reads the tunables table. Unknown keys are ignored, malformed values
// keep the default so a bad row cannot take the engine down.
func (r *PostgreSQLSettingsRepository) Load(ctx context.Context) (models.SyncSettings, error) {
	settings := models.DefaultSyncSettings()

	rows, err := r.db.QueryContext(ctx, `SELECT key, value FROM sync_settings`)
	if err != nil {
		return settings, fmt.Errorf("failed to query sync settings: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return settings, fmt.Errorf("failed to scan sync setting: %w", err)
		}
		r.apply(&settings, key, value)
	}
	if err := rows.Err(); err != nil {
		return settings, fmt.Errorf("failed to iterate sync settings: %w", err)
	}

	return settings, nil
}

func (r *PostgreSQLSettingsRepository) apply(settings *models.SyncSettings, key, value string) {
	switch key {
	case "parse_timeout":
		if d, err := time.ParseDuration(value); err == nil && d > 0 {
			settings.ParseTimeout = d
		} else {
			r.logger.Warn("Ignoring malformed sync setting", "key", key, "value", value)
		}
	case "max_concurrent_parses":
		r.applyInt(&settings.MaxConcurrentParses, key, value)
	case "max_parse_attempts":
		r.applyInt(&settings.MaxParseAttempts, key, value)
	case "content_retention_days":
		r.applyInt(&settings.ContentRetentionDays, key, value)
	case "deletion_retention_days":
		r.applyInt(&settings.DeletionRetentionDays, key, value)
	default:
		r.logger.Debug("Ignoring unknown sync setting", "key", key)
	}
}

func (r *PostgreSQLSettingsRepository) applyInt(target *int, key, value string) {
	if n, err := strconv.Atoi(value); err == nil && n > 0 {
		*target = n
	} else {
		r.logger.Warn("Ignoring malformed sync setting", "key", key, "value", value)
	}
}
