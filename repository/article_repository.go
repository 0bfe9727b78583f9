// ABOUTME: PostgreSQL implementation of ArticleRepository
// ABOUTME: Idempotent batch upserts plus read/star and extraction state updates

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

// PostgreSQLArticleRepository implements ArticleRepository using PostgreSQL.
type PostgreSQLArticleRepository struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewPostgreSQLArticleRepository creates a new PostgreSQL article repository.
func NewPostgreSQLArticleRepository(db *sql.DB, logger *slog.Logger) ArticleRepository {
	return &PostgreSQLArticleRepository{
		db:     db,
		logger: logger,
	}
}

// UpsertBatch inserts or updates articles in a single transaction, keyed by
// provider_id. Remote fields are refreshed on conflict; locally owned fields
// (is_read, is_starred, full_content, parse state) are left untouched so a
// re-run converges without clobbering user state. The first failed row fails
// the whole batch; the transaction is already aborted at that point.
func (r *PostgreSQLArticleRepository) UpsertBatch(ctx context.Context, articles []*models.Article) (int, error) {
	if len(articles) == 0 {
		return 0, nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO articles (
			id, feed_id, provider_id, url, title, author, content,
			is_read, is_starred, published_at, fetched_at, last_sync_update
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (provider_id) DO UPDATE SET
			feed_id = EXCLUDED.feed_id,
			url = EXCLUDED.url,
			title = EXCLUDED.title,
			author = EXCLUDED.author,
			content = EXCLUDED.content,
			last_sync_update = EXCLUDED.last_sync_update`

	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	upserted := 0
	for _, article := range articles {
		_, err := stmt.ExecContext(ctx,
			article.ID,
			article.FeedID,
			article.ProviderID,
			article.URL,
			article.Title,
			article.Author,
			article.Content,
			article.IsRead,
			article.IsStarred,
			article.PublishedAt,
			article.FetchedAt,
			article.LastSyncUpdate,
		)
		if err != nil {
			// PostgreSQL aborts the whole transaction on the first failed
			// statement, so there is no salvaging the rest of the batch.
			return 0, fmt.Errorf("failed to upsert article %s: %w", article.ProviderID, err)
		}
		upserted++
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}

	r.logger.Info("Batch article upsert completed", "upserted", upserted)

	return upserted, nil
}

// FindByID finds an article by its UUID.
func (r *PostgreSQLArticleRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Article, error) {
	query := selectArticle + ` WHERE id = $1`
	return r.queryArticle(ctx, query, id)
}

// FindByProviderID finds an article by its provider ID.
func (r *PostgreSQLArticleRepository) FindByProviderID(ctx context.Context, providerID string) (*models.Article, error) {
	query := selectArticle + ` WHERE provider_id = $1`
	return r.queryArticle(ctx, query, providerID)
}

// GetRecentByFeed retrieves the most recent articles of a feed, used by the
// partial-feed detection heuristic.
func (r *PostgreSQLArticleRepository) GetRecentByFeed(ctx context.Context, feedID uuid.UUID, limit int) ([]*models.Article, error) {
	query := selectArticle + `
		WHERE feed_id = $1
		ORDER BY published_at DESC NULLS LAST, fetched_at DESC
		LIMIT $2`

	return r.queryArticles(ctx, query, feedID, limit)
}

// SetReadState updates the local read flag, stamping last_local_update.
func (r *PostgreSQLArticleRepository) SetReadState(ctx context.Context, id uuid.UUID, isRead bool) error {
	query := `UPDATE articles SET is_read = $2, last_local_update = $3 WHERE id = $1`
	return r.execExpectingRow(ctx, query, id, isRead, time.Now())
}

// SetStarState updates the local star flag, stamping last_local_update.
func (r *PostgreSQLArticleRepository) SetStarState(ctx context.Context, id uuid.UUID, isStarred bool) error {
	query := `UPDATE articles SET is_starred = $2, last_local_update = $3 WHERE id = $1`
	return r.execExpectingRow(ctx, query, id, isStarred, time.Now())
}

// SaveFullContent stores extracted content and marks the parse successful.
func (r *PostgreSQLArticleRepository) SaveFullContent(ctx context.Context, id uuid.UUID, fullContent string) error {
	query := `
		UPDATE articles
		SET full_content = $2, parsed_at = $3, parse_failed = false,
		    parse_attempts = parse_attempts + 1
		WHERE id = $1`

	return r.execExpectingRow(ctx, query, id, fullContent, time.Now())
}

// RecordParseFailure bumps parse_attempts and sets parse_failed when the
// attempt ceiling is reached.
func (r *PostgreSQLArticleRepository) RecordParseFailure(ctx context.Context, id uuid.UUID, failed bool) error {
	query := `
		UPDATE articles
		SET parse_attempts = parse_attempts + 1, parse_failed = $2
		WHERE id = $1`

	return r.execExpectingRow(ctx, query, id, failed)
}

// PruneFullContent nulls extracted content for old, read, unstarred
// articles. Starred articles are exempt.
func (r *PostgreSQLArticleRepository) PruneFullContent(ctx context.Context, olderThan time.Time) (int, error) {
	query := `
		UPDATE articles
		SET full_content = NULL, parsed_at = NULL
		WHERE full_content IS NOT NULL
		  AND is_read = true
		  AND is_starred = false
		  AND fetched_at < $1`

	result, err := r.db.ExecContext(ctx, query, olderThan)
	if err != nil {
		return 0, fmt.Errorf("failed to prune full content: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get affected rows: %w", err)
	}

	pruned := int(rowsAffected)
	r.logger.Info("Pruned extracted content",
		"count", pruned,
		"older_than", olderThan)

	return pruned, nil
}

// Delete deletes an article by ID.
func (r *PostgreSQLArticleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM articles WHERE id = $1`
	return r.execExpectingRow(ctx, query, id)
}

// LatestPublishedAt returns the newest published timestamp, or nil when the
// article table is empty.
func (r *PostgreSQLArticleRepository) LatestPublishedAt(ctx context.Context) (*time.Time, error) {
	query := `SELECT MAX(published_at) FROM articles`

	var latest sql.NullTime
	if err := r.db.QueryRowContext(ctx, query).Scan(&latest); err != nil {
		return nil, fmt.Errorf("failed to query latest article: %w", err)
	}

	if !latest.Valid {
		return nil, nil
	}
	return &latest.Time, nil
}

// CountFetchedSince counts articles ingested since the given time.
func (r *PostgreSQLArticleRepository) CountFetchedSince(ctx context.Context, since time.Time) (int, error) {
	query := `SELECT COUNT(*) FROM articles WHERE fetched_at >= $1`

	var count int
	if err := r.db.QueryRowContext(ctx, query, since).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count recent articles: %w", err)
	}

	return count, nil
}

// ParseStats returns how many articles have been through extraction and how
// many of those ended in permanent failure.
func (r *PostgreSQLArticleRepository) ParseStats(ctx context.Context) (int, int, error) {
	query := `
		SELECT COUNT(*) FILTER (WHERE parse_attempts > 0),
		       COUNT(*) FILTER (WHERE parse_failed)
		FROM articles`

	var attempted, failed int
	if err := r.db.QueryRowContext(ctx, query).Scan(&attempted, &failed); err != nil {
		return 0, 0, fmt.Errorf("failed to query parse stats: %w", err)
	}

	return attempted, failed, nil
}

const selectArticle = `
	SELECT id, feed_id, provider_id, url, title, author, content,
	       full_content, is_read, is_starred, published_at, fetched_at,
	       parsed_at, parse_failed, parse_attempts, last_local_update,
	       last_sync_update
	FROM articles`

func (r *PostgreSQLArticleRepository) queryArticle(ctx context.Context, query string, args ...interface{}) (*models.Article, error) {
	article := &models.Article{}
	var fullContent sql.NullString

	err := r.db.QueryRowContext(ctx, query, args...).Scan(
		&article.ID,
		&article.FeedID,
		&article.ProviderID,
		&article.URL,
		&article.Title,
		&article.Author,
		&article.Content,
		&fullContent,
		&article.IsRead,
		&article.IsStarred,
		&article.PublishedAt,
		&article.FetchedAt,
		&article.ParsedAt,
		&article.ParseFailed,
		&article.ParseAttempts,
		&article.LastLocalUpdate,
		&article.LastSyncUpdate,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to query article: %w", err)
	}

	article.FullContent = fullContent.String
	return article, nil
}

func (r *PostgreSQLArticleRepository) queryArticles(ctx context.Context, query string, args ...interface{}) ([]*models.Article, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query articles: %w", err)
	}
	defer rows.Close()

	var articles []*models.Article
	for rows.Next() {
		article := &models.Article{}
		var fullContent sql.NullString
		err := rows.Scan(
			&article.ID,
			&article.FeedID,
			&article.ProviderID,
			&article.URL,
			&article.Title,
			&article.Author,
			&article.Content,
			&fullContent,
			&article.IsRead,
			&article.IsStarred,
			&article.PublishedAt,
			&article.FetchedAt,
			&article.ParsedAt,
			&article.ParseFailed,
			&article.ParseAttempts,
			&article.LastLocalUpdate,
			&article.LastSyncUpdate,
		)
		if err != nil {
			r.logger.Error("Failed to scan article row", "error", err)
			continue
		}
		article.FullContent = fullContent.String
		articles = append(articles, article)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return articles, nil
}

func (r *PostgreSQLArticleRepository) execExpectingRow(ctx context.Context, query string, args ...interface{}) error {
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to execute article update: %w", err)
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
