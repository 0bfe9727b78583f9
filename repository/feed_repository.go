// ABOUTME: PostgreSQL implementation of FeedRepository
// ABOUTME: Upserts feeds by provider_id and maintains unread statistics

package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"feed-sync-engine/models"

	"github.com/google/uuid"
)

// PostgreSQLFeedRepository implements FeedRepository using PostgreSQL.
type PostgreSQLFeedRepository struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewPostgreSQLFeedRepository creates a new PostgreSQL feed repository.
func NewPostgreSQLFeedRepository(db *sql.DB, logger *slog.Logger) FeedRepository {
	return &PostgreSQLFeedRepository{
		db:     db,
		logger: logger,
	}
}

// Upsert inserts or updates a feed by provider_id. Remote metadata is
// refreshed on conflict; local flags like is_partial_feed are preserved.
func (r *PostgreSQLFeedRepository) Upsert(ctx context.Context, feed *models.Feed) (*models.Feed, error) {
	query := `
		INSERT INTO feeds (id, provider_id, folder_id, title, feed_url, site_url, synced_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (provider_id) DO UPDATE SET
			folder_id = EXCLUDED.folder_id,
			title = EXCLUDED.title,
			feed_url = EXCLUDED.feed_url,
			site_url = EXCLUDED.site_url,
			synced_at = EXCLUDED.synced_at
		RETURNING id, provider_id, folder_id, title, feed_url, site_url,
		          unread_count, is_partial_feed, synced_at, created_at`

	var stored models.Feed
	err := r.db.QueryRowContext(ctx, query,
		feed.ID,
		feed.ProviderID,
		feed.FolderID,
		feed.Title,
		feed.FeedURL,
		feed.SiteURL,
		feed.SyncedAt,
		feed.CreatedAt,
	).Scan(
		&stored.ID,
		&stored.ProviderID,
		&stored.FolderID,
		&stored.Title,
		&stored.FeedURL,
		&stored.SiteURL,
		&stored.UnreadCount,
		&stored.IsPartialFeed,
		&stored.SyncedAt,
		&stored.CreatedAt,
	)

	if err != nil {
		r.logger.Error("Failed to upsert feed",
			"provider_id", feed.ProviderID,
			"error", err)
		return nil, fmt.Errorf("failed to upsert feed: %w", err)
	}

	return &stored, nil
}

// GetAll retrieves all feeds.
func (r *PostgreSQLFeedRepository) GetAll(ctx context.Context) ([]*models.Feed, error) {
	query := `
		SELECT id, provider_id, folder_id, title, feed_url, site_url,
		       unread_count, is_partial_feed, synced_at, created_at
		FROM feeds
		ORDER BY title ASC`

	return r.queryFeeds(ctx, query)
}

// UpdateUnreadCount stores the provider-reported unread count for a feed.
func (r *PostgreSQLFeedRepository) UpdateUnreadCount(ctx context.Context, providerID string, count int) error {
	query := `UPDATE feeds SET unread_count = $2 WHERE provider_id = $1`

	if _, err := r.db.ExecContext(ctx, query, providerID, count); err != nil {
		return fmt.Errorf("failed to update unread count: %w", err)
	}

	return nil
}

// SetPartialFeed flags a feed as delivering truncated content.
func (r *PostgreSQLFeedRepository) SetPartialFeed(ctx context.Context, feedID uuid.UUID, partial bool) error {
	query := `UPDATE feeds SET is_partial_feed = $2 WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, feedID, partial)
	if err != nil {
		return fmt.Errorf("failed to set partial feed flag: %w", err)
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

// RefreshUnreadCounts recomputes unread counts from the article table. Used
// as the derived-statistics refresh at the end of a sync run.
func (r *PostgreSQLFeedRepository) RefreshUnreadCounts(ctx context.Context) error {
	query := `
		UPDATE feeds f
		SET unread_count = COALESCE(a.unread, 0)
		FROM (
			SELECT feed_id, COUNT(*) FILTER (WHERE NOT is_read) AS unread
			FROM articles
			GROUP BY feed_id
		) a
		WHERE a.feed_id = f.id`

	if _, err := r.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("failed to refresh unread counts: %w", err)
	}

	return nil
}

// queryFeeds is a helper to execute queries that return multiple feeds.
func (r *PostgreSQLFeedRepository) queryFeeds(ctx context.Context, query string, args ...interface{}) ([]*models.Feed, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query feeds: %w", err)
	}
	defer rows.Close()

	var feeds []*models.Feed
	for rows.Next() {
		feed := &models.Feed{}
		err := rows.Scan(
			&feed.ID,
			&feed.ProviderID,
			&feed.FolderID,
			&feed.Title,
			&feed.FeedURL,
			&feed.SiteURL,
			&feed.UnreadCount,
			&feed.IsPartialFeed,
			&feed.SyncedAt,
			&feed.CreatedAt,
		)
		if err != nil {
			r.logger.Error("Failed to scan feed row", "error", err)
			continue
		}
		feeds = append(feeds, feed)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return feeds, nil
}
