// ABOUTME: This file defines domain models for stream synchronization state
// ABOUTME: Handles continuation cursors and last-sync metadata per stream

package models

import (
	"time"

	"github.com/google/uuid"
)

// SyncState holds the continuation cursor and last-sync metadata for one
// provider stream, letting an interrupted ingestion resume where it stopped.
type SyncState struct {
	ID                uuid.UUID `json:"id" db:"id"`
	StreamID          string    `json:"stream_id" db:"stream_id"`
	ContinuationToken string    `json:"continuation_token" db:"continuation_token"`
	LastSync          time.Time `json:"last_sync" db:"last_sync"`
}

// SyncSettings holds the tunables table. Values are read once per run.
type SyncSettings struct {
	ParseTimeout          time.Duration `json:"parse_timeout"`
	MaxConcurrentParses   int           `json:"max_concurrent_parses"`
	MaxParseAttempts      int           `json:"max_parse_attempts"`
	ContentRetentionDays  int           `json:"content_retention_days"`
	DeletionRetentionDays int           `json:"deletion_retention_days"`
}

// DefaultSyncSettings returns the built-in tunable defaults, used when the
// settings table has no override for a key.
func DefaultSyncSettings() SyncSettings {
	return SyncSettings{
		ParseTimeout:          30 * time.Second,
		MaxConcurrentParses:   5,
		MaxParseAttempts:      3,
		ContentRetentionDays:  30,
		DeletionRetentionDays: 90,
	}
}

// NewSyncState creates a sync state for a stream.
func NewSyncState(streamID, continuationToken string) *SyncState {
	return &SyncState{
		ID:                uuid.New(),
		StreamID:          streamID,
		ContinuationToken: continuationToken,
		LastSync:          time.Now(),
	}
}

// UpdateContinuationToken updates the cursor and sync time.
func (s *SyncState) UpdateContinuationToken(token string) {
	s.ContinuationToken = token
	s.LastSync = time.Now()
}
