// ABOUTME: This file is the entrypoint for the feed-sync-engine service
// ABOUTME: Wires repositories, services, and the admin API, then runs sync loops

package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"feed-sync-engine/config"
	"feed-sync-engine/driver"
	"feed-sync-engine/handler"
	"feed-sync-engine/models"
	"feed-sync-engine/repository"
	"feed-sync-engine/service"
)

func main() {
	healthCheck := flag.Bool("health-check", false, "Probe the admin API health endpoint and exit")
	oauthInit := flag.Bool("oauth-init", false, "Exchange an authorization code for tokens and exit")
	authCode := flag.String("auth-code", "", "Authorization code for -oauth-init")
	redirectURI := flag.String("redirect-uri", "", "Redirect URI used during authorization for -oauth-init")
	flag.Parse()

	logLevel := os.Getenv("LOG_LEVEL")
	var level slog.Level
	switch logLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	if *healthCheck {
		os.Exit(performHealthCheck(os.Getenv("ADMIN_API_ADDR")))
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	if *oauthInit {
		if err := runOAuthInit(context.Background(), cfg, *authCode, *redirectURI, logger); err != nil {
			logger.Error("OAuth initialization failed", "error", err)
			os.Exit(1)
		}
		logger.Info("OAuth tokens stored in vault", "vault_file", cfg.Vault.CredentialFile)
		return
	}

	if err := run(cfg, logger); err != nil {
		logger.Error("Service terminated with error", "error", err)
		os.Exit(1)
	}
}

// runOAuthInit performs the one-time authorization-code exchange that seeds
// the encrypted vault. Everything after this bootstrap is refresh-token based.
func runOAuthInit(ctx context.Context, cfg *config.Config, code, redirectURI string, logger *slog.Logger) error {
	if code == "" {
		return errors.New("-auth-code is required with -oauth-init")
	}

	tokenRepo := repository.NewFileTokenRepository(cfg.Vault.CredentialFile, cfg.Vault.Passphrase, logger)
	oauth2Client := driver.NewOAuth2Client(cfg.Provider.ClientID, cfg.Provider.ClientSecret, cfg.Provider.BaseURL, logger)
	tokenService := service.NewTokenServiceWithBuffer(tokenRepo, oauth2Client, logger, cfg.Vault.RefreshBuffer)

	_, err := tokenService.InitializeFromAuthCode(ctx, code, redirectURI)
	return err
}

func run(cfg *config.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info("Feed sync engine starting",
		"service", cfg.ServiceName,
		"sync_interval", cfg.Sync.Interval,
		"zone1_daily_limit", cfg.Provider.Zone1DailyLimit,
		"zone2_daily_limit", cfg.Provider.Zone2DailyLimit)

	db, err := repository.OpenDatabase(ctx, cfg.Database.DSN())
	if err != nil {
		return err
	}
	defer db.Close()

	if err := repository.RunMigrations(ctx, db); err != nil {
		return err
	}

	// Repositories.
	tokenRepo := repository.NewFileTokenRepository(cfg.Vault.CredentialFile, cfg.Vault.Passphrase, logger)
	folderRepo := repository.NewPostgreSQLFolderRepository(db, logger)
	feedRepo := repository.NewPostgreSQLFeedRepository(db, logger)
	articleRepo := repository.NewPostgreSQLArticleRepository(db, logger)
	queueRepo := repository.NewPostgreSQLQueueRepository(db, logger)
	usageRepo := repository.NewPostgreSQLUsageRepository(db, logger)
	deletionRepo := repository.NewPostgreSQLDeletionRepository(db, logger)
	syncRunRepo := repository.NewPostgreSQLSyncRunRepository(db, logger)
	syncStateRepo := repository.NewPostgreSQLSyncStateRepository(db, logger)
	settingsRepo := repository.NewPostgreSQLSettingsRepository(db, logger)

	settings, err := settingsRepo.Load(ctx)
	if err != nil {
		logger.Warn("Failed to load sync settings, using defaults", "error", err)
		settings = models.DefaultSyncSettings()
	}

	// Drivers and services.
	oauth2Client := driver.NewOAuth2Client(cfg.Provider.ClientID, cfg.Provider.ClientSecret, cfg.Provider.BaseURL, logger)
	apiClient := driver.NewAPIClient(cfg.Provider.APIBaseURL, logger)

	tokenService := service.NewTokenServiceWithBuffer(tokenRepo, oauth2Client, logger, cfg.Vault.RefreshBuffer)
	usageTracker := service.NewUsageTracker(usageRepo, "inoreader", cfg.Provider.Zone1DailyLimit, cfg.Provider.Zone2DailyLimit, logger)
	providerClient := service.NewProviderClient(apiClient, tokenService, usageTracker, logger)
	deletionTracker := service.NewDeletionTracker(deletionRepo, articleRepo, logger)
	mutationQueue := service.NewMutationQueue(queueRepo, articleRepo, providerClient, cfg.Queue.DrainBatchSize, cfg.Queue.Retention, logger)
	contentFetcher := service.NewContentFetcher(articleRepo, feedRepo, service.NewReadabilityExtractor(), settings, cfg.Content.FetchRatePerSecond, cfg.Content.UserAgent, logger)
	syncService := service.NewSyncService(providerClient, tokenService, mutationQueue, deletionTracker,
		folderRepo, feedRepo, articleRepo, syncRunRepo, syncStateRepo, cfg.Sync, logger)
	healthMonitor := service.NewHealthMonitor(articleRepo, queueRepo, usageTracker, logger)

	adminHandler := handler.NewAdminAPIHandler(syncService, mutationQueue, deletionTracker, contentFetcher, healthMonitor, tokenService, logger)

	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      adminHandler.Routes(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Admin API listening", "addr", cfg.Server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	go syncLoop(ctx, syncService, cfg.Sync.Interval, logger)
	go drainLoop(ctx, mutationQueue, cfg.Queue.DrainInterval, logger)
	go maintenanceLoop(ctx, deletionTracker, contentFetcher, settings, cfg.Maintenance.Interval, logger)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

// syncLoop triggers a full sync run on a fixed interval. A trigger that
// overlaps a still-running sync is skipped, not queued.
func syncLoop(ctx context.Context, syncService *service.SyncService, interval time.Duration, logger *slog.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	trigger := func() {
		run, err := syncService.StartRun(ctx)
		if err != nil {
			if errors.Is(err, service.ErrSyncInProgress) {
				logger.Info("Skipping scheduled sync, run already in progress")
				return
			}
			logger.Error("Failed to start scheduled sync", "error", err)
			return
		}

		if _, err := syncService.Execute(ctx, run); err != nil {
			logger.Error("Scheduled sync run failed", "run_id", run.ID, "error", err)
		}
	}

	// First run on startup rather than waiting a full interval.
	trigger()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			trigger()
		}
	}
}

// drainLoop pushes queued mutations between sync runs so user actions do not
// wait for the next full sync.
func drainLoop(ctx context.Context, queue *service.MutationQueue, interval time.Duration, logger *slog.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			result, err := queue.Drain(ctx)
			if err != nil {
				logger.Error("Scheduled queue drain failed", "error", err)
				continue
			}
			if result.Attempted > 0 {
				logger.Info("Scheduled queue drain finished",
					"attempted", result.Attempted,
					"pushed", result.Pushed,
					"failed", result.Failed)
			}
		}
	}
}

// maintenanceLoop enforces the retention windows for deletion tombstones and
// extracted article content, and re-runs partial-feed detection.
func maintenanceLoop(
	ctx context.Context,
	deletions *service.DeletionTracker,
	content *service.ContentFetcher,
	settings models.SyncSettings,
	interval time.Duration,
	logger *slog.Logger,
) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			tombstones, err := deletions.PurgeExpired(ctx, time.Duration(settings.DeletionRetentionDays)*24*time.Hour)
			if err != nil {
				logger.Error("Tombstone purge failed", "error", err)
			} else if tombstones > 0 {
				logger.Info("Purged expired deletion tombstones", "count", tombstones)
			}

			pruned, err := content.PruneExpiredContent(ctx, settings.ContentRetentionDays)
			if err != nil {
				logger.Error("Content prune failed", "error", err)
			} else if pruned > 0 {
				logger.Info("Pruned expired article content", "count", pruned)
			}

			if err := content.RefreshPartialFlags(ctx); err != nil {
				logger.Error("Partial feed sweep failed", "error", err)
			}
		}
	}
}
