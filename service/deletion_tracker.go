// ABOUTME: This file implements local deletion tracking with anti-resurrection
// ABOUTME: Tombstones keep purged articles from returning on the next sync

package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"feed-sync-engine/models"
	"feed-sync-engine/repository"

	"github.com/google/uuid"
)

// DeletionTracker records local article deletions as tombstones and screens
// incoming stream items against them. Without the tombstone, the provider
// would resurrect a purged article on the very next sync run.
type DeletionTracker struct {
	deletionRepo repository.DeletionRepository
	articleRepo  repository.ArticleRepository
	logger       *slog.Logger
}

// NewDeletionTracker creates a deletion tracker.
func NewDeletionTracker(deletionRepo repository.DeletionRepository, articleRepo repository.ArticleRepository, logger *slog.Logger) *DeletionTracker {
	if logger == nil {
		logger = slog.Default()
	}

	return &DeletionTracker{
		deletionRepo: deletionRepo,
		articleRepo:  articleRepo,
		logger:       logger,
	}
}

// DeleteArticle removes an article locally and records its tombstone. The
// tombstone is written before the row is deleted so a crash between the two
// steps cannot lose the deletion intent. Only read, unstarred articles get a
// tombstone: deleting something unread or starred is treated as accidental
// and the next sync may resurrect it.
func (t *DeletionTracker) DeleteArticle(ctx context.Context, articleID uuid.UUID) error {
	article, err := t.articleRepo.FindByID(ctx, articleID)
	if err != nil {
		return fmt.Errorf("failed to load article for deletion: %w", err)
	}

	if article.IsRead && !article.IsStarred {
		record := models.NewDeletedArticleRecord(article.ProviderID, article.FeedID, article.IsRead)
		if err := t.deletionRepo.Record(ctx, record); err != nil {
			return fmt.Errorf("failed to record deletion tombstone: %w", err)
		}
	}

	if err := t.articleRepo.Delete(ctx, articleID); err != nil {
		return fmt.Errorf("failed to delete article: %w", err)
	}

	t.logger.Info("Article deleted",
		"article_id", articleID,
		"provider_id", article.ProviderID)

	return nil
}

// IsDeleted reports whether a provider article ID has a tombstone.
func (t *DeletionTracker) IsDeleted(ctx context.Context, providerID string) (bool, error) {
	return t.deletionRepo.Exists(ctx, providerID)
}

// FilterResurrected returns the membership set of providerIDs that have
// tombstones. The sync run drops those items before upserting a batch.
func (t *DeletionTracker) FilterResurrected(ctx context.Context, providerIDs []string) (map[string]bool, error) {
	deleted, err := t.deletionRepo.FilterDeleted(ctx, providerIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to screen stream items against tombstones: %w", err)
	}
	return deleted, nil
}

// PurgeExpired removes tombstones older than the retention window. After
// retention the provider has long rotated the article out of its streams,
// so the tombstone no longer serves a purpose.
func (t *DeletionTracker) PurgeExpired(ctx context.Context, retention time.Duration) (int, error) {
	return t.deletionRepo.PurgeOlderThan(ctx, time.Now().Add(-retention))
}
