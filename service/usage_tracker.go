// ABOUTME: This file implements the two-zone daily API budget tracker
// ABOUTME: Atomic persisted counters, provider header reconciliation, warnings

package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"feed-sync-engine/metrics"
	"feed-sync-engine/models"
	"feed-sync-engine/repository"
)

// ErrBudgetExhausted is returned when a zone has no remaining calls for today.
var ErrBudgetExhausted = errors.New("daily API budget exhausted")

// Warning thresholds as a fraction of the zone limit.
const (
	warnThreshold     = 0.80
	criticalThreshold = 0.95
)

// UsageTracker is the single authority for the provider's two-zone daily
// budget. All increments go through the repository's atomic upsert, so
// concurrent callers never lose counts.
type UsageTracker struct {
	usageRepo  repository.UsageRepository
	service    string
	zone1Limit int
	zone2Limit int
	logger     *slog.Logger

	// Dedup threshold warnings per zone per day.
	mu     sync.Mutex
	warned map[string]bool
}

// NewUsageTracker creates a usage tracker for one provider account.
func NewUsageTracker(usageRepo repository.UsageRepository, service string, zone1Limit, zone2Limit int, logger *slog.Logger) *UsageTracker {
	if logger == nil {
		logger = slog.Default()
	}

	return &UsageTracker{
		usageRepo:  usageRepo,
		service:    service,
		zone1Limit: zone1Limit,
		zone2Limit: zone2Limit,
		logger:     logger,
		warned:     make(map[string]bool),
	}
}

// CheckBudget reports whether the zone can afford the given number of calls.
// Returns ErrBudgetExhausted when it cannot.
func (t *UsageTracker) CheckBudget(ctx context.Context, zone int, calls int) error {
	record, err := t.today(ctx)
	if err != nil {
		return err
	}

	status := record.ZoneStatus(zone)
	if status.Remaining < calls {
		return fmt.Errorf("%w: zone %d has %d remaining, %d requested",
			ErrBudgetExhausted, zone, status.Remaining, calls)
	}

	return nil
}

// RecordCall counts one completed API call against the zone.
func (t *UsageTracker) RecordCall(ctx context.Context, zone int) error {
	record, err := t.usageRepo.Increment(ctx, t.service, zone, 1, t.zone1Limit, t.zone2Limit)
	if err != nil {
		return fmt.Errorf("failed to record API call: %w", err)
	}

	t.publish(record)
	t.warnIfNearLimit(record, zone)

	return nil
}

// CaptureHeaders reconciles local counters with the provider's authoritative
// rate-limit headers. Snapshots without any reported zones are ignored.
func (t *UsageTracker) CaptureHeaders(ctx context.Context, headers models.RateLimitHeaders) {
	if headers.Zone1Usage < 0 && headers.Zone2Usage < 0 {
		return
	}

	if err := t.usageRepo.ApplyProviderHeaders(ctx, t.service, headers); err != nil {
		t.logger.Warn("Failed to apply provider rate-limit headers", "error", err)
		return
	}

	if record, err := t.today(ctx); err == nil {
		t.publish(record)
		t.warnIfNearLimit(record, models.Zone1)
		t.warnIfNearLimit(record, models.Zone2)
	}
}

// Snapshot returns the budget view of both zones.
func (t *UsageTracker) Snapshot(ctx context.Context) (models.ZoneStatus, models.ZoneStatus, error) {
	record, err := t.today(ctx)
	if err != nil {
		return models.ZoneStatus{}, models.ZoneStatus{}, err
	}

	return record.ZoneStatus(models.Zone1), record.ZoneStatus(models.Zone2), nil
}

func (t *UsageTracker) today(ctx context.Context) (*models.UsageRecord, error) {
	record, err := t.usageRepo.GetToday(ctx, t.service)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			// Nothing recorded yet today; a fresh day starts with zero usage.
			return models.NewUsageRecord(t.service, t.zone1Limit, t.zone2Limit), nil
		}
		return nil, fmt.Errorf("failed to load today's usage: %w", err)
	}
	return record, nil
}

func (t *UsageTracker) publish(record *models.UsageRecord) {
	metrics.SetZoneBudget("zone1", record.Zone1Usage, record.Zone1Limit)
	metrics.SetZoneBudget("zone2", record.Zone2Usage, record.Zone2Limit)
}

func (t *UsageTracker) warnIfNearLimit(record *models.UsageRecord, zone int) {
	percent := record.UsagePercent(zone)

	var level string
	switch {
	case percent >= criticalThreshold*100:
		level = "critical"
	case percent >= warnThreshold*100:
		level = "warning"
	default:
		return
	}

	key := record.UsageDate.Format(time.DateOnly) + "/" + strconv.Itoa(zone) + "/" + level

	t.mu.Lock()
	already := t.warned[key]
	t.warned[key] = true
	t.mu.Unlock()

	if already {
		return
	}

	status := record.ZoneStatus(zone)
	t.logger.Warn("API budget threshold crossed",
		"zone", zone,
		"level", level,
		"used", status.Used,
		"limit", status.Limit,
		"percent", fmt.Sprintf("%.1f", percent))
}
