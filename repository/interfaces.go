// ABOUTME: Repository interfaces and sentinel errors for the sync engine
// ABOUTME: All persistence goes through these; services never touch SQL

package repository

import (
	"context"
	"errors"
	"time"

	"feed-sync-engine/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/mock_repositories.go -package=mocks

// Sentinel errors shared across repository implementations.
var (
	ErrNotFound         = errors.New("record not found")
	ErrActiveRunExists  = errors.New("another sync run is already active")
	ErrNoTokenFile      = errors.New("credential file does not exist")
	ErrDecryptFailed    = errors.New("credential file decryption failed")
	ErrInvalidTokenFile = errors.New("credential file has invalid format")
)

// TokenRepository stores the provider credential set. The file-backed
// implementation encrypts at rest.
type TokenRepository interface {
	GetCurrentToken(ctx context.Context) (*models.Token, error)
	SaveToken(ctx context.Context, token *models.Token) error
}

// FolderRepository persists provider folders.
type FolderRepository interface {
	Upsert(ctx context.Context, folder *models.Folder) (*models.Folder, error)
}

// FeedRepository persists synced feeds.
type FeedRepository interface {
	Upsert(ctx context.Context, feed *models.Feed) (*models.Feed, error)
	GetAll(ctx context.Context) ([]*models.Feed, error)
	UpdateUnreadCount(ctx context.Context, providerID string, count int) error
	SetPartialFeed(ctx context.Context, feedID uuid.UUID, partial bool) error
	RefreshUnreadCounts(ctx context.Context) error
}

// ArticleRepository persists synced articles and their extraction state.
type ArticleRepository interface {
	UpsertBatch(ctx context.Context, articles []*models.Article) (int, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Article, error)
	FindByProviderID(ctx context.Context, providerID string) (*models.Article, error)
	GetRecentByFeed(ctx context.Context, feedID uuid.UUID, limit int) ([]*models.Article, error)
	SetReadState(ctx context.Context, id uuid.UUID, isRead bool) error
	SetStarState(ctx context.Context, id uuid.UUID, isStarred bool) error
	SaveFullContent(ctx context.Context, id uuid.UUID, fullContent string) error
	RecordParseFailure(ctx context.Context, id uuid.UUID, failed bool) error
	PruneFullContent(ctx context.Context, olderThan time.Time) (int, error)
	Delete(ctx context.Context, id uuid.UUID) error
	LatestPublishedAt(ctx context.Context) (*time.Time, error)
	CountFetchedSince(ctx context.Context, since time.Time) (int, error)
	ParseStats(ctx context.Context) (attempted int, failed int, err error)
}

// QueueRepository persists the mutation outbox.
type QueueRepository interface {
	EnqueueCollapsing(ctx context.Context, entry *models.QueueEntry) error
	GetPending(ctx context.Context, limit int) ([]*models.QueueEntry, error)
	Delete(ctx context.Context, id uuid.UUID) error
	RecordAttempt(ctx context.Context, id uuid.UUID) error
	PurgeFailed(ctx context.Context, maxAttempts int, olderThan time.Time) ([]*models.QueueEntry, error)
	CountPending(ctx context.Context) (int, error)
}

// UsageRepository persists daily API usage. Increment is a single atomic
// upsert; callers never read-modify-write.
type UsageRepository interface {
	Increment(ctx context.Context, service string, zone int, count int, zone1Limit, zone2Limit int) (*models.UsageRecord, error)
	GetToday(ctx context.Context, service string) (*models.UsageRecord, error)
	ApplyProviderHeaders(ctx context.Context, service string, headers models.RateLimitHeaders) error
}

// DeletionRepository persists purged-article records.
type DeletionRepository interface {
	Record(ctx context.Context, record *models.DeletedArticleRecord) error
	Exists(ctx context.Context, providerID string) (bool, error)
	FilterDeleted(ctx context.Context, providerIDs []string) (map[string]bool, error)
	PurgeOlderThan(ctx context.Context, cutoff time.Time) (int, error)
}

// SyncRunRepository persists run status so it survives restarts and is
// queryable by run ID.
type SyncRunRepository interface {
	Create(ctx context.Context, run *models.SyncRun) error
	Update(ctx context.Context, run *models.SyncRun) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.SyncRun, error)
	FailStaleActive(ctx context.Context, olderThan time.Time) (int, error)
	PurgeFinishedBefore(ctx context.Context, cutoff time.Time) (int, error)
}

// SyncStateRepository persists continuation cursors per stream.
type SyncStateRepository interface {
	FindByStreamID(ctx context.Context, streamID string) (*models.SyncState, error)
	Save(ctx context.Context, state *models.SyncState) error
}

// SettingsRepository reads the tunables table.
type SettingsRepository interface {
	Load(ctx context.Context) (models.SyncSettings, error)
}
