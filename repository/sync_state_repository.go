// ABOUTME: PostgreSQL implementation of SyncStateRepository
// ABOUTME: Persists per-stream continuation cursors for resumable ingestion

package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"feed-sync-engine/models"
)

// PostgreSQLSyncStateRepository implements SyncStateRepository using PostgreSQL.
type PostgreSQLSyncStateRepository struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewPostgreSQLSyncStateRepository creates a new PostgreSQL sync state repository.
func NewPostgreSQLSyncStateRepository(db *sql.DB, logger *slog.Logger) SyncStateRepository {
	return &PostgreSQLSyncStateRepository{
		db:     db,
		logger: logger,
	}
}

// FindByStreamID retrieves the sync state for a stream.
func (r *PostgreSQLSyncStateRepository) FindByStreamID(ctx context.Context, streamID string) (*models.SyncState, error) {
	query := `
		SELECT id, stream_id, continuation_token, last_sync
		FROM sync_state
		WHERE stream_id = $1`

	state := &models.SyncState{}
	err := r.db.QueryRowContext(ctx, query, streamID).Scan(
		&state.ID,
		&state.StreamID,
		&state.ContinuationToken,
		&state.LastSync,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to query sync state: %w", err)
	}

	return state, nil
}

// Save upserts the sync state for a stream.
func (r *PostgreSQLSyncStateRepository) Save(ctx context.Context, state *models.SyncState) error {
	query := `
		INSERT INTO sync_state (id, stream_id, continuation_token, last_sync)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (stream_id) DO UPDATE SET
			continuation_token = EXCLUDED.continuation_token,
			last_sync = EXCLUDED.last_sync`

	_, err := r.db.ExecContext(ctx, query,
		state.ID,
		state.StreamID,
		state.ContinuationToken,
		state.LastSync,
	)
	if err != nil {
		return fmt.Errorf("failed to save sync state: %w", err)
	}

	r.logger.Debug("Saved sync state",
		"stream_id", state.StreamID,
		"has_continuation", state.ContinuationToken != "")

	return nil
}
