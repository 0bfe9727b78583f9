// ABOUTME: This file defines domain models for API usage tracking
// ABOUTME: Handles two-zone daily call counters and rate-limit header state

package models

import (
	"time"

	"github.com/google/uuid"
)

// Rate-limit zones. Zone 1 covers read operations, Zone 2 write operations.
const (
	Zone1 = 1
	Zone2 = 2
)

// UsageRecord represents daily API usage for one service. One row exists per
// (service, usage date); counters only grow within a day.
type UsageRecord struct {
	ID         uuid.UUID  `json:"id" db:"id"`
	Service    string     `json:"service" db:"service"`
	UsageDate  time.Time  `json:"usage_date" db:"usage_date"`
	Zone1Usage int        `json:"zone1_usage" db:"zone1_usage"`
	Zone1Limit int        `json:"zone1_limit" db:"zone1_limit"`
	Zone2Usage int        `json:"zone2_usage" db:"zone2_usage"`
	Zone2Limit int        `json:"zone2_limit" db:"zone2_limit"`
	ResetAfter *time.Time `json:"reset_after,omitempty" db:"reset_after"`
	UpdatedAt  time.Time  `json:"updated_at" db:"updated_at"`
}

// ZoneStatus represents the budget of one zone for limit checks.
type ZoneStatus struct {
	Zone      int `json:"zone"`
	Used      int `json:"used"`
	Limit     int `json:"limit"`
	Remaining int `json:"remaining"`
}

// RateLimitHeaders holds the authoritative values parsed from provider
// response headers. Negative fields mean the header was absent.
type RateLimitHeaders struct {
	Zone1Usage     int
	Zone1Limit     int
	Zone1Remaining int
	Zone2Usage     int
	Zone2Limit     int
	Zone2Remaining int
	ResetAfter     time.Duration
}

// UsageDay truncates a timestamp to the day boundary used as the usage key.
func UsageDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// NewUsageRecord creates an empty usage record for today.
func NewUsageRecord(service string, zone1Limit, zone2Limit int) *UsageRecord {
	now := time.Now()

	return &UsageRecord{
		ID:         uuid.New(),
		Service:    service,
		UsageDate:  UsageDay(now),
		Zone1Limit: zone1Limit,
		Zone2Limit: zone2Limit,
		UpdatedAt:  now,
	}
}

// ZoneStatus returns the budget view of the requested zone.
func (u *UsageRecord) ZoneStatus(zone int) ZoneStatus {
	used, limit := u.Zone1Usage, u.Zone1Limit
	if zone == Zone2 {
		used, limit = u.Zone2Usage, u.Zone2Limit
	}

	remaining := limit - used
	if remaining < 0 {
		remaining = 0
	}

	return ZoneStatus{Zone: zone, Used: used, Limit: limit, Remaining: remaining}
}

// UsagePercent returns the usage percentage of the requested zone.
func (u *UsageRecord) UsagePercent(zone int) float64 {
	status := u.ZoneStatus(zone)
	if status.Limit == 0 {
		return 0.0
	}
	return float64(status.Used) / float64(status.Limit) * 100.0
}

// IsStale reports whether the record belongs to a previous day.
func (u *UsageRecord) IsStale() bool {
	return u.UsageDate.Before(UsageDay(time.Now()))
}
