// ABOUTME: PostgreSQL implementation of QueueRepository
// ABOUTME: Collapsing enqueue, pending retrieval, attempt tracking, purge

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

// PostgreSQLQueueRepository implements QueueRepository using PostgreSQL.
type PostgreSQLQueueRepository struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewPostgreSQLQueueRepository creates a new PostgreSQL queue repository.
func NewPostgreSQLQueueRepository(db *sql.DB, logger *slog.Logger) QueueRepository {
	return &PostgreSQLQueueRepository{
		db:     db,
		logger: logger,
	}
}

// EnqueueCollapsing deletes any existing entry in the same action group for
// the article, then inserts the new entry, inside one transaction. Only the
// latest user intent per (article, group) survives.
func (r *PostgreSQLQueueRepository) EnqueueCollapsing(ctx context.Context, entry *models.QueueEntry) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	group := string(entry.ActionType.Group())

	deleteQuery := `DELETE FROM sync_queue WHERE article_id = $1 AND action_group = $2`
	if _, err := tx.ExecContext(ctx, deleteQuery, entry.ArticleID, group); err != nil {
		return fmt.Errorf("failed to collapse queue entries: %w", err)
	}

	insertQuery := `
		INSERT INTO sync_queue (
			id, article_id, provider_id, action_type, action_group,
			action_timestamp, sync_attempts, last_attempt_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err = tx.ExecContext(ctx, insertQuery,
		entry.ID,
		entry.ArticleID,
		entry.ProviderID,
		string(entry.ActionType),
		group,
		entry.ActionTimestamp,
		entry.SyncAttempts,
		entry.LastAttemptAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert queue entry: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	r.logger.Debug("Enqueued mutation",
		"article_id", entry.ArticleID,
		"action_type", entry.ActionType)

	return nil
}

// GetPending retrieves queue entries oldest-first. Backoff eligibility is
// evaluated by the caller.
func (r *PostgreSQLQueueRepository) GetPending(ctx context.Context, limit int) ([]*models.QueueEntry, error) {
	query := `
		SELECT id, article_id, provider_id, action_type, action_timestamp,
		       sync_attempts, last_attempt_at
		FROM sync_queue
		ORDER BY action_timestamp ASC
		LIMIT $1`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query queue entries: %w", err)
	}
	defer rows.Close()

	var entries []*models.QueueEntry
	for rows.Next() {
		entry := &models.QueueEntry{}
		var actionType string
		err := rows.Scan(
			&entry.ID,
			&entry.ArticleID,
			&entry.ProviderID,
			&actionType,
			&entry.ActionTimestamp,
			&entry.SyncAttempts,
			&entry.LastAttemptAt,
		)
		if err != nil {
			r.logger.Error("Failed to scan queue entry row", "error", err)
			continue
		}
		entry.ActionType = models.ActionType(actionType)
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return entries, nil
}

// Delete removes an entry after a successful push.
func (r *PostgreSQLQueueRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM sync_queue WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete queue entry: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

// RecordAttempt bumps sync_attempts and stamps last_attempt_at after a
// failed push.
func (r *PostgreSQLQueueRepository) RecordAttempt(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE sync_queue
		SET sync_attempts = sync_attempts + 1, last_attempt_at = $2
		WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id, time.Now())
	if err != nil {
		return fmt.Errorf("failed to record queue attempt: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

// PurgeFailed removes entries that exhausted their attempts and aged past
// the retention window, returning them for diagnostics.
func (r *PostgreSQLQueueRepository) PurgeFailed(ctx context.Context, maxAttempts int, olderThan time.Time) ([]*models.QueueEntry, error) {
	query := `
		DELETE FROM sync_queue
		WHERE sync_attempts >= $1 AND action_timestamp < $2
		RETURNING id, article_id, provider_id, action_type, action_timestamp,
		          sync_attempts, last_attempt_at`

	rows, err := r.db.QueryContext(ctx, query, maxAttempts, olderThan)
	if err != nil {
		return nil, fmt.Errorf("failed to purge failed queue entries: %w", err)
	}
	defer rows.Close()

	var purged []*models.QueueEntry
	for rows.Next() {
		entry := &models.QueueEntry{}
		var actionType string
		err := rows.Scan(
			&entry.ID,
			&entry.ArticleID,
			&entry.ProviderID,
			&actionType,
			&entry.ActionTimestamp,
			&entry.SyncAttempts,
			&entry.LastAttemptAt,
		)
		if err != nil {
			r.logger.Error("Failed to scan purged queue entry", "error", err)
			continue
		}
		entry.ActionType = models.ActionType(actionType)
		purged = append(purged, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	if len(purged) > 0 {
		r.logger.Warn("Purged permanently failed queue entries",
			"count", len(purged))
	}

	return purged, nil
}

// CountPending returns the queue backlog size.
func (r *PostgreSQLQueueRepository) CountPending(ctx context.Context) (int, error) {
	query := `SELECT COUNT(*) FROM sync_queue`

	var count int
	if err := r.db.QueryRowContext(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count queue entries: %w", err)
	}

	return count, nil
}
