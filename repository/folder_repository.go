// ABOUTME: PostgreSQL implementation of FolderRepository
// ABOUTME: Upserts provider folders keyed by provider_id

package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"feed-sync-engine/models"
)

// PostgreSQLFolderRepository implements FolderRepository using PostgreSQL.
type PostgreSQLFolderRepository struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewPostgreSQLFolderRepository creates a new PostgreSQL folder repository.
func NewPostgreSQLFolderRepository(db *sql.DB, logger *slog.Logger) FolderRepository {
	return &PostgreSQLFolderRepository{
		db:     db,
		logger: logger,
	}
}

// Upsert inserts or updates a folder by provider_id and returns the stored
// row, keeping the original id on conflict.
func (r *PostgreSQLFolderRepository) Upsert(ctx context.Context, folder *models.Folder) (*models.Folder, error) {
	query := `
		INSERT INTO folders (id, provider_id, name, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (provider_id) DO UPDATE SET name = EXCLUDED.name
		RETURNING id, provider_id, name, created_at`

	var stored models.Folder
	err := r.db.QueryRowContext(ctx, query,
		folder.ID,
		folder.ProviderID,
		folder.Name,
		folder.CreatedAt,
	).Scan(&stored.ID, &stored.ProviderID, &stored.Name, &stored.CreatedAt)

	if err != nil {
		r.logger.Error("Failed to upsert folder",
			"provider_id", folder.ProviderID,
			"error", err)
		return nil, fmt.Errorf("failed to upsert folder: %w", err)
	}

	return &stored, nil
}
