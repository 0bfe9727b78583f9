// ABOUTME: PostgreSQL implementation of SyncRunRepository
// ABOUTME: Persists run status so progress survives restarts and is queryable

package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"feed-sync-engine/models"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// PostgreSQLSyncRunRepository implements SyncRunRepository using PostgreSQL.
type PostgreSQLSyncRunRepository struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewPostgreSQLSyncRunRepository creates a new PostgreSQL sync run repository.
func NewPostgreSQLSyncRunRepository(db *sql.DB, logger *slog.Logger) SyncRunRepository {
	return &PostgreSQLSyncRunRepository{
		db:     db,
		logger: logger,
	}
}

// Create persists a newly accepted run. The one_active_run partial unique
// index rejects the insert when another run is still pending or running;
// that conflict surfaces as ErrActiveRunExists.
func (r *PostgreSQLSyncRunRepository) Create(ctx context.Context, run *models.SyncRun) error {
	query := `
		INSERT INTO sync_runs (id, status, progress, message, error, started_at, finished_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.ExecContext(ctx, query,
		run.ID,
		run.Status,
		run.Progress,
		run.Message,
		run.Error,
		run.StartedAt,
		run.FinishedAt,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return ErrActiveRunExists
		}
		return fmt.Errorf("failed to create sync run: %w", err)
	}

	return nil
}

// Update persists the current state of a run. Progress is enforced monotonic
// at the statement level so a stale writer can never move it backwards.
func (r *PostgreSQLSyncRunRepository) Update(ctx context.Context, run *models.SyncRun) error {
	query := `
		UPDATE sync_runs
		SET status = $2,
		    progress = GREATEST(progress, $3),
		    message = $4,
		    error = $5,
		    finished_at = $6
		WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query,
		run.ID,
		run.Status,
		run.Progress,
		run.Message,
		run.Error,
		run.FinishedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update sync run: %w", err)
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

// FindByID retrieves a run by its ID.
func (r *PostgreSQLSyncRunRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.SyncRun, error) {
	query := `
		SELECT id, status, progress, message, error, started_at, finished_at
		FROM sync_runs
		WHERE id = $1`

	run := &models.SyncRun{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&run.ID,
		&run.Status,
		&run.Progress,
		&run.Message,
		&run.Error,
		&run.StartedAt,
		&run.FinishedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to query sync run: %w", err)
	}

	return run, nil
}

// FailStaleActive marks pending or running rows started before the cutoff as
// failed. A crash can leave a run active forever, which would block admission
// through the one_active_run index until someone intervened.
func (r *PostgreSQLSyncRunRepository) FailStaleActive(ctx context.Context, olderThan time.Time) (int, error) {
	query := `
		UPDATE sync_runs
		SET status = 'failed',
		    error = 'abandoned: no progress before staleness cutoff',
		    finished_at = now()
		WHERE status IN ('pending', 'running') AND started_at < $1`

	result, err := r.db.ExecContext(ctx, query, olderThan)
	if err != nil {
		return 0, fmt.Errorf("failed to fail stale sync runs: %w", err)
	}

	count, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count stale sync runs: %w", err)
	}

	if count > 0 {
		r.logger.Warn("Failed stale sync runs", "count", count, "older_than", olderThan)
	}

	return int(count), nil
}

// PurgeFinishedBefore removes terminal runs finished before the cutoff.
func (r *PostgreSQLSyncRunRepository) PurgeFinishedBefore(ctx context.Context, cutoff time.Time) (int, error) {
	query := `
		DELETE FROM sync_runs
		WHERE status IN ('completed', 'failed') AND finished_at < $1`

	result, err := r.db.ExecContext(ctx, query, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to purge finished sync runs: %w", err)
	}

	count, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count purged sync runs: %w", err)
	}

	if count > 0 {
		r.logger.Info("Purged finished sync runs", "count", count, "cutoff", cutoff)
	}

	return int(count), nil
}
