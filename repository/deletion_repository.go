// ABOUTME: PostgreSQL implementation of DeletionRepository
// ABOUTME: Tracks purged provider article IDs to block resurrection on sync

package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"feed-sync-engine/models"

	"github.com/lib/pq"
)

// PostgreSQLDeletionRepository implements DeletionRepository using PostgreSQL.
type PostgreSQLDeletionRepository struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewPostgreSQLDeletionRepository creates a new PostgreSQL deletion repository.
func NewPostgreSQLDeletionRepository(db *sql.DB, logger *slog.Logger) DeletionRepository {
	return &PostgreSQLDeletionRepository{
		db:     db,
		logger: logger,
	}
}

// Record stores a deletion tombstone. Re-recording the same provider ID
// refreshes the deletion timestamp.
func (r *PostgreSQLDeletionRepository) Record(ctx context.Context, record *models.DeletedArticleRecord) error {
	query := `
		INSERT INTO deleted_articles (provider_id, feed_id, was_read, deleted_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (provider_id) DO UPDATE SET
			was_read = EXCLUDED.was_read,
			deleted_at = EXCLUDED.deleted_at`

	_, err := r.db.ExecContext(ctx, query,
		record.ProviderID,
		record.FeedID,
		record.WasRead,
		record.DeletedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to record article deletion: %w", err)
	}

	return nil
}

// Exists reports whether a provider article ID has a deletion tombstone.
func (r *PostgreSQLDeletionRepository) Exists(ctx context.Context, providerID string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM deleted_articles WHERE provider_id = $1)`

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, providerID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check deletion record: %w", err)
	}

	return exists, nil
}

// FilterDeleted returns the subset of providerIDs that have deletion
// tombstones, as a membership set. One query regardless of batch size.
func (r *PostgreSQLDeletionRepository) FilterDeleted(ctx context.Context, providerIDs []string) (map[string]bool, error) {
	deleted := make(map[string]bool, len(providerIDs))
	if len(providerIDs) == 0 {
		return deleted, nil
	}

	query := `SELECT provider_id FROM deleted_articles WHERE provider_id = ANY($1)`

	rows, err := r.db.QueryContext(ctx, query, pq.Array(providerIDs))
	if err != nil {
		return nil, fmt.Errorf("failed to filter deleted articles: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var providerID string
		if err := rows.Scan(&providerID); err != nil {
			return nil, fmt.Errorf("failed to scan deleted article ID: %w", err)
		}
		deleted[providerID] = true
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate deleted article IDs: %w", err)
	}

	return deleted, nil
}

// PurgeOlderThan removes tombstones past the retention window and returns
// the number removed.
func (r *PostgreSQLDeletionRepository) PurgeOlderThan(ctx context.Context, cutoff time.Time) (int, error) {
	query := `DELETE FROM deleted_articles WHERE deleted_at < $1`

	result, err := r.db.ExecContext(ctx, query, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to purge deletion records: %w", err)
	}

	count, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count purged deletion records: %w", err)
	}

	if count > 0 {
		r.logger.Info("Purged expired deletion records",
			"count", count,
			"cutoff", cutoff)
	}

	return int(count), nil
}
