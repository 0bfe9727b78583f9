// ABOUTME: This file implements read-only health checks over the sync engine
// ABOUTME: Aggregates freshness, parse rate, queue backlog, and budget headroom

package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"feed-sync-engine/metrics"
	"feed-sync-engine/models"
	"feed-sync-engine/repository"
)

// Health thresholds. A stale datastore degrades first and goes unhealthy
// once no article has been seen for two days.
const (
	freshnessDegradedAfter  = 24 * time.Hour
	freshnessUnhealthyAfter = 48 * time.Hour
	minParseSuccessRate     = 0.90
	maxQueueBacklog         = 100
	minBudgetHeadroom       = 0.05
)

// HealthMonitor runs read-only probes against the datastore and the usage
// tracker. It never mutates state and never calls the provider.
type HealthMonitor struct {
	articleRepo repository.ArticleRepository
	queueRepo   repository.QueueRepository
	usage       UsageLimiter
	logger      *slog.Logger
}

// NewHealthMonitor creates a health monitor.
func NewHealthMonitor(
	articleRepo repository.ArticleRepository,
	queueRepo repository.QueueRepository,
	usage UsageLimiter,
	logger *slog.Logger,
) *HealthMonitor {
	if logger == nil {
		logger = slog.Default()
	}

	return &HealthMonitor{
		articleRepo: articleRepo,
		queueRepo:   queueRepo,
		usage:       usage,
		logger:      logger,
	}
}

// Report runs all probes and returns the aggregate. Probe errors count as
// unhealthy for that check rather than failing the report.
func (m *HealthMonitor) Report(ctx context.Context) *models.HealthReport {
	report := &models.HealthReport{
		Status:      models.HealthHealthy,
		GeneratedAt: time.Now(),
	}

	report.Add(m.checkFreshness(ctx))
	report.Add(m.checkParseRate(ctx))
	report.Add(m.checkQueueBacklog(ctx))
	report.Add(m.checkBudgetHeadroom(ctx))

	metrics.HealthStatus.Set(float64(report.Status.Severity()))

	if report.Status != models.HealthHealthy {
		m.logger.Warn("Health check not healthy", "status", report.Status)
	}

	return report
}

func (m *HealthMonitor) checkFreshness(ctx context.Context) models.HealthCheck {
	check := models.HealthCheck{Name: "article_freshness", Status: models.HealthHealthy}

	latest, err := m.articleRepo.LatestPublishedAt(ctx)
	if err != nil {
		check.Status = models.HealthUnhealthy
		check.Detail = fmt.Sprintf("freshness probe failed: %v", err)
		return check
	}
	if latest == nil {
		// An empty datastore before the first sync is expected, not broken.
		check.Detail = "no articles synced yet"
		return check
	}

	age := time.Since(*latest)
	check.Detail = fmt.Sprintf("latest article published %s ago", age.Round(time.Minute))

	switch {
	case age > freshnessUnhealthyAfter:
		check.Status = models.HealthUnhealthy
	case age > freshnessDegradedAfter:
		check.Status = models.HealthDegraded
	}

	fetched24h, err := m.articleRepo.CountFetchedSince(ctx, time.Now().Add(-24*time.Hour))
	if err == nil {
		check.Detail += fmt.Sprintf(", %d fetched in last 24h", fetched24h)
	}

	return check
}

func (m *HealthMonitor) checkParseRate(ctx context.Context) models.HealthCheck {
	check := models.HealthCheck{Name: "parse_success_rate", Status: models.HealthHealthy}

	attempted, failed, err := m.articleRepo.ParseStats(ctx)
	if err != nil {
		check.Status = models.HealthUnhealthy
		check.Detail = fmt.Sprintf("parse stats probe failed: %v", err)
		return check
	}
	if attempted == 0 {
		check.Detail = "no parse attempts yet"
		return check
	}

	rate := float64(attempted-failed) / float64(attempted)
	check.Detail = fmt.Sprintf("%.1f%% of %d attempts", rate*100, attempted)
	if rate < minParseSuccessRate {
		check.Status = models.HealthDegraded
	}

	return check
}

func (m *HealthMonitor) checkQueueBacklog(ctx context.Context) models.HealthCheck {
	check := models.HealthCheck{Name: "queue_backlog", Status: models.HealthHealthy}

	pending, err := m.queueRepo.CountPending(ctx)
	if err != nil {
		check.Status = models.HealthUnhealthy
		check.Detail = fmt.Sprintf("backlog probe failed: %v", err)
		return check
	}

	check.Detail = fmt.Sprintf("%d pending mutations", pending)
	if pending > maxQueueBacklog {
		check.Status = models.HealthDegraded
	}

	return check
}

func (m *HealthMonitor) checkBudgetHeadroom(ctx context.Context) models.HealthCheck {
	check := models.HealthCheck{Name: "budget_headroom", Status: models.HealthHealthy}

	zone1, zone2, err := m.usage.Snapshot(ctx)
	if err != nil {
		check.Status = models.HealthUnhealthy
		check.Detail = fmt.Sprintf("budget probe failed: %v", err)
		return check
	}

	check.Detail = fmt.Sprintf("zone1 %d/%d, zone2 %d/%d",
		zone1.Used, zone1.Limit, zone2.Used, zone2.Limit)

	if lowHeadroom(zone1) || lowHeadroom(zone2) {
		check.Status = models.HealthDegraded
	}

	return check
}

func lowHeadroom(status models.ZoneStatus) bool {
	if status.Limit <= 0 {
		return false
	}
	return float64(status.Remaining)/float64(status.Limit) < minBudgetHeadroom
}
