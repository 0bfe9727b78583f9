// ABOUTME: This file implements the bi-directional sync run orchestrator
// ABOUTME: Push-before-pull, checkpointed progress, and anti-resurrection

package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"feed-sync-engine/config"
	"feed-sync-engine/metrics"
	"feed-sync-engine/models"
	"feed-sync-engine/repository"

	"github.com/google/uuid"
)

// ErrSyncInProgress is returned when a run is requested while another run
// is still pending or running.
var ErrSyncInProgress = errors.New("a sync run is already in progress")

// ReadingListStreamID is the provider stream covering all subscribed feeds.
const ReadingListStreamID = "user/-/state/com.google/reading-list"

const feedStreamPrefix = "feed/"

// SyncService orchestrates one full sync run: drain the mutation queue so
// the provider reflects local intent, then pull subscriptions, unread
// counts, and stream items. Progress is persisted at named checkpoints and
// never moves backwards.
type SyncService struct {
	provider      ProviderAPI
	tokens        TokenProvider
	queue         QueueDrainer
	deletions     DeletionFilter
	folderRepo    repository.FolderRepository
	feedRepo      repository.FeedRepository
	articleRepo   repository.ArticleRepository
	syncRunRepo   repository.SyncRunRepository
	syncStateRepo repository.SyncStateRepository
	logger        *slog.Logger
	cfg           config.SyncConfig
}

// NewSyncService creates a sync orchestrator.
func NewSyncService(
	provider ProviderAPI,
	tokens TokenProvider,
	queue QueueDrainer,
	deletions DeletionFilter,
	folderRepo repository.FolderRepository,
	feedRepo repository.FeedRepository,
	articleRepo repository.ArticleRepository,
	syncRunRepo repository.SyncRunRepository,
	syncStateRepo repository.SyncStateRepository,
	cfg config.SyncConfig,
	logger *slog.Logger,
) *SyncService {
	if logger == nil {
		logger = slog.Default()
	}

	return &SyncService{
		provider:      provider,
		tokens:        tokens,
		queue:         queue,
		deletions:     deletions,
		folderRepo:    folderRepo,
		feedRepo:      feedRepo,
		articleRepo:   articleRepo,
		syncRunRepo:   syncRunRepo,
		syncStateRepo: syncStateRepo,
		logger:        logger,
		cfg:           cfg,
	}
}

// StartRun registers a new pending run. At most one run may be active;
// callers execute the returned run with Execute, typically on a background
// goroutine. Admission is enforced by a partial unique index at insert time,
// so two concurrent callers cannot both be accepted. Active rows left behind
// by a crashed process are failed once they exceed twice the run budget.
func (s *SyncService) StartRun(ctx context.Context) (*models.SyncRun, error) {
	staleCutoff := time.Now().Add(-2 * s.cfg.RunBudget)
	if _, err := s.syncRunRepo.FailStaleActive(ctx, staleCutoff); err != nil {
		return nil, fmt.Errorf("failed to reconcile stale runs: %w", err)
	}

	run := models.NewSyncRun()
	if err := s.syncRunRepo.Create(ctx, run); err != nil {
		if errors.Is(err, repository.ErrActiveRunExists) {
			return nil, ErrSyncInProgress
		}
		return nil, fmt.Errorf("failed to create sync run: %w", err)
	}

	s.logger.Info("Sync run accepted", "run_id", run.ID)
	return run, nil
}

// GetRun returns a run by ID.
func (s *SyncService) GetRun(ctx context.Context, id uuid.UUID) (*models.SyncRun, error) {
	return s.syncRunRepo.FindByID(ctx, id)
}

// Execute runs a sync run to completion under the configured time budget.
// Progress checkpoints already committed survive a mid-run failure; the
// next run simply continues from the stored continuation cursor.
func (s *SyncService) Execute(ctx context.Context, run *models.SyncRun) (*models.SyncRunResult, error) {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.RunBudget)
	defer cancel()

	started := time.Now()
	run.Status = models.SyncRunRunning
	s.persist(ctx, run)

	result, err := s.execute(ctx, run)
	duration := time.Since(started)

	if err != nil {
		run.Fail(err)
		s.persist(context.WithoutCancel(ctx), run)
		metrics.RecordSyncRun(string(models.SyncRunFailed), duration.Seconds())
		s.logger.Error("Sync run failed",
			"run_id", run.ID,
			"progress", run.Progress,
			"duration", duration,
			"error", err)
		return nil, err
	}

	run.Complete(fmt.Sprintf("synced %d articles", result.ArticlesUpserted))
	s.persist(ctx, run)
	metrics.RecordSyncRun(string(models.SyncRunCompleted), duration.Seconds())

	result.RunID = run.ID
	result.Duration = duration

	s.logger.Info("Sync run completed",
		"run_id", run.ID,
		"folders", result.FoldersUpserted,
		"feeds", result.FeedsUpserted,
		"articles_fetched", result.ArticlesFetched,
		"articles_skipped", result.ArticlesSkipped,
		"articles_upserted", result.ArticlesUpserted,
		"duration", duration)

	if s.cfg.RunRetention > 0 {
		if _, err := s.syncRunRepo.PurgeFinishedBefore(ctx, time.Now().Add(-s.cfg.RunRetention)); err != nil {
			s.logger.Warn("Failed to purge finished runs", "error", err)
		}
	}

	return result, nil
}

func (s *SyncService) execute(ctx context.Context, run *models.SyncRun) (*models.SyncRunResult, error) {
	result := &models.SyncRunResult{}

	if _, err := s.tokens.EnsureValidToken(ctx); err != nil {
		return nil, fmt.Errorf("token acquisition failed: %w", err)
	}
	s.advance(ctx, run, models.ProgressTokenAcquired, "token acquired")

	// Push before pull: local read/star intent reaches the provider before
	// its state is pulled back, so the pull cannot undo a pending mutation.
	if _, err := s.queue.Drain(ctx); err != nil {
		s.logger.Warn("Queue drain failed, continuing with pull", "error", err)
	}

	subscriptions, err := s.provider.ListSubscriptions(ctx)
	if err != nil {
		return nil, fmt.Errorf("subscription sync failed: %w", err)
	}
	s.advance(ctx, run, models.ProgressSubscriptions, "subscriptions fetched")

	unreadCounts, err := s.provider.FetchUnreadCounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("unread count sync failed: %w", err)
	}
	s.advance(ctx, run, models.ProgressUnreadCounts, "unread counts fetched")

	folderIDs, foldersUpserted, err := s.upsertFolders(ctx, subscriptions)
	if err != nil {
		return nil, err
	}
	result.FoldersUpserted = foldersUpserted
	s.advance(ctx, run, models.ProgressFoldersUpserted, "folders upserted")

	feedIDs, err := s.upsertFeeds(ctx, subscriptions, folderIDs)
	if err != nil {
		return nil, err
	}
	result.FeedsUpserted = len(feedIDs)
	s.advance(ctx, run, models.ProgressFeedsUpserted, "feeds upserted")

	items, err := s.fetchStream(ctx)
	if err != nil {
		return nil, err
	}
	result.ArticlesFetched = len(items)
	s.advance(ctx, run, models.ProgressStreamFetched, "stream fetched")

	upserted, skipped, err := s.storeArticles(ctx, items, feedIDs)
	if err != nil {
		return nil, err
	}
	result.ArticlesUpserted = upserted
	result.ArticlesSkipped = skipped
	s.advance(ctx, run, models.ProgressArticlesStored, "articles stored")

	s.refreshStats(ctx, unreadCounts)
	s.advance(ctx, run, models.ProgressStatsRefreshed, "stats refreshed")

	return result, nil
}

// upsertFolders writes every distinct category across the subscription list.
func (s *SyncService) upsertFolders(ctx context.Context, subscriptions []models.ProviderSubscription) (map[string]uuid.UUID, int, error) {
	folderIDs := make(map[string]uuid.UUID)
	count := 0

	for _, sub := range subscriptions {
		for _, category := range sub.Categories {
			if _, seen := folderIDs[category.ID]; seen {
				continue
			}

			folder, err := s.folderRepo.Upsert(ctx, models.NewFolder(category))
			if err != nil {
				return nil, 0, fmt.Errorf("folder upsert failed for %q: %w", category.Label, err)
			}

			folderIDs[category.ID] = folder.ID
			count++
		}
	}

	return folderIDs, count, nil
}

// upsertFeeds writes all subscriptions, keyed locally by provider ID.
func (s *SyncService) upsertFeeds(ctx context.Context, subscriptions []models.ProviderSubscription, folderIDs map[string]uuid.UUID) (map[string]uuid.UUID, error) {
	feedIDs := make(map[string]uuid.UUID, len(subscriptions))

	for _, sub := range subscriptions {
		var folderID *uuid.UUID
		if len(sub.Categories) > 0 {
			if id, ok := folderIDs[sub.Categories[0].ID]; ok {
				folderID = &id
			}
		}

		feed, err := s.feedRepo.Upsert(ctx, models.NewFeedFromProvider(sub, folderID))
		if err != nil {
			return nil, fmt.Errorf("feed upsert failed for %q: %w", sub.Title, err)
		}

		feedIDs[feed.ProviderID] = feed.ID
	}

	return feedIDs, nil
}

// fetchStream pulls reading-list pages through the continuation cursor until
// the per-run article cap, the end of the stream, or the time budget.
func (s *SyncService) fetchStream(ctx context.Context) ([]models.ProviderStreamItem, error) {
	continuation := ""
	state, err := s.syncStateRepo.FindByStreamID(ctx, ReadingListStreamID)
	if err == nil {
		continuation = state.ContinuationToken
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("failed to load sync state: %w", err)
	}
	if state == nil {
		state = models.NewSyncState(ReadingListStreamID, "")
	}

	var items []models.ProviderStreamItem
	for len(items) < s.cfg.MaxArticlesPerRun {
		if ctx.Err() != nil {
			s.logger.Warn("Run budget reached mid-stream, stopping fetch",
				"items_so_far", len(items))
			break
		}

		pageSize := s.cfg.MaxArticlesPerRequest
		if remaining := s.cfg.MaxArticlesPerRun - len(items); remaining < pageSize {
			pageSize = remaining
		}

		page, err := s.provider.FetchStreamContents(ctx, ReadingListStreamID, continuation, pageSize, false)
		if err != nil {
			// A budget failure mid-stream is not fatal: everything fetched
			// so far still gets stored, and the cursor resumes next run.
			if errors.Is(err, ErrBudgetExhausted) && len(items) > 0 {
				s.logger.Warn("Zone 1 budget exhausted mid-stream", "items_so_far", len(items))
				break
			}
			return nil, fmt.Errorf("stream fetch failed: %w", err)
		}

		items = append(items, page.Items...)
		continuation = page.Continuation

		// Persist the cursor after every page so an interrupted run resumes
		// where it stopped instead of refetching.
		state.UpdateContinuationToken(continuation)
		if err := s.syncStateRepo.Save(ctx, state); err != nil {
			s.logger.Warn("Failed to persist continuation cursor", "error", err)
		}

		if continuation == "" {
			break
		}
	}

	return items, nil
}

// storeArticles screens items against deletion tombstones and upserts the
// survivors in batches.
func (s *SyncService) storeArticles(ctx context.Context, items []models.ProviderStreamItem, feedIDs map[string]uuid.UUID) (upserted, skipped int, err error) {
	if len(items) == 0 {
		return 0, 0, nil
	}

	providerIDs := make([]string, 0, len(items))
	for _, item := range items {
		providerIDs = append(providerIDs, item.ID)
	}

	deleted, err := s.deletions.FilterResurrected(ctx, providerIDs)
	if err != nil {
		return 0, 0, err
	}

	var batch []*models.Article
	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		n, err := s.articleRepo.UpsertBatch(ctx, batch)
		if err != nil {
			return fmt.Errorf("article batch upsert failed: %w", err)
		}
		upserted += n
		metrics.ArticlesUpserted.Add(float64(n))
		batch = batch[:0]
		return nil
	}

	for _, item := range items {
		if deleted[item.ID] {
			skipped++
			metrics.ArticlesSkippedDeleted.Inc()
			continue
		}

		feedID, ok := feedIDs[item.Origin.StreamID]
		if !ok {
			// Orphan item from a feed unsubscribed mid-run.
			s.logger.Debug("Skipping item with unknown origin feed",
				"item_id", item.ID,
				"origin", item.Origin.StreamID)
			skipped++
			continue
		}

		batch = append(batch, models.NewArticleFromStreamItem(item, feedID))
		if len(batch) >= s.cfg.UpsertBatchSize {
			if err := flush(); err != nil {
				return upserted, skipped, err
			}
		}
	}

	if err := flush(); err != nil {
		return upserted, skipped, err
	}

	return upserted, skipped, nil
}

// refreshStats recomputes per-feed unread counts from the local article
// table, then overlays the provider's own counts for feeds it reports. The
// provider still sees articles the bounded local window has already dropped.
// Folder and aggregate count entries are skipped. Stats are best effort and
// never fail the run.
func (s *SyncService) refreshStats(ctx context.Context, counts []models.ProviderUnreadCount) {
	if err := s.feedRepo.RefreshUnreadCounts(ctx); err != nil {
		s.logger.Warn("Failed to refresh derived unread counts", "error", err)
	}

	for _, entry := range counts {
		if !strings.HasPrefix(entry.StreamID, feedStreamPrefix) {
			continue
		}
		if err := s.feedRepo.UpdateUnreadCount(ctx, entry.StreamID, entry.Count); err != nil {
			if !errors.Is(err, repository.ErrNotFound) {
				s.logger.Warn("Failed to update unread count",
					"stream_id", entry.StreamID,
					"error", err)
			}
		}
	}
}

func (s *SyncService) advance(ctx context.Context, run *models.SyncRun, progress int, message string) {
	run.Advance(progress, message)
	s.persist(ctx, run)
}

func (s *SyncService) persist(ctx context.Context, run *models.SyncRun) {
	if err := s.syncRunRepo.Update(ctx, run); err != nil {
		s.logger.Error("Failed to persist run state",
			"run_id", run.ID,
			"status", run.Status,
			"error", err)
	}
}
