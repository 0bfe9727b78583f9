// ABOUTME: This file defines domain models for the read/star mutation outbox
// ABOUTME: Handles action groups, intent collapsing, and retry backoff windows

package models

import (
	"time"

	"github.com/google/uuid"
)

// ActionType identifies a queued mutation.
type ActionType string

const (
	ActionRead    ActionType = "read"
	ActionUnread  ActionType = "unread"
	ActionStar    ActionType = "star"
	ActionUnstar  ActionType = "unstar"
)

// ActionGroup identifies an action group; at most one live queue entry
// exists per (article, group).
type ActionGroup string

const (
	GroupReadState ActionGroup = "read_state"
	GroupStarState ActionGroup = "star_state"
)

// Retry policy for queued mutations.
const (
	MaxSyncAttempts = 3
)

// queueBackoff is the wait between attempts, indexed by completed attempts.
var queueBackoff = []time.Duration{
	1 * time.Minute,
	5 * time.Minute,
	30 * time.Minute,
}

// QueueEntry represents one pending mutation awaiting push to the provider.
type QueueEntry struct {
	ID              uuid.UUID  `json:"id" db:"id"`
	ArticleID       uuid.UUID  `json:"article_id" db:"article_id"`
	ProviderID      string     `json:"provider_id" db:"provider_id"`
	ActionType      ActionType `json:"action_type" db:"action_type"`
	ActionTimestamp time.Time  `json:"action_timestamp" db:"action_timestamp"`
	SyncAttempts    int        `json:"sync_attempts" db:"sync_attempts"`
	LastAttemptAt   *time.Time `json:"last_attempt_at,omitempty" db:"last_attempt_at"`
}

// IsValid reports whether the action type is one of the four known actions.
func (a ActionType) IsValid() bool {
	switch a {
	case ActionRead, ActionUnread, ActionStar, ActionUnstar:
		return true
	}
	return false
}

// Group returns the action group the action belongs to.
func (a ActionType) Group() ActionGroup {
	if a == ActionStar || a == ActionUnstar {
		return GroupStarState
	}
	return GroupReadState
}

// StateTag returns the provider state tag the action manipulates.
func (a ActionType) StateTag() string {
	if a.Group() == GroupStarState {
		return StateTagStarred
	}
	return StateTagRead
}

// AddsTag reports whether the action adds (true) or removes (false) its tag.
func (a ActionType) AddsTag() bool {
	return a == ActionRead || a == ActionStar
}

// NewQueueEntry creates a queue entry capturing the user's latest intent.
func NewQueueEntry(articleID uuid.UUID, providerID string, action ActionType) *QueueEntry {
	return &QueueEntry{
		ID:              uuid.New(),
		ArticleID:       articleID,
		ProviderID:      providerID,
		ActionType:      action,
		ActionTimestamp: time.Now(),
	}
}

// NextAttemptAt returns the earliest time the entry may be retried. Entries
// that were never attempted are eligible immediately.
func (e *QueueEntry) NextAttemptAt() time.Time {
	if e.LastAttemptAt == nil {
		return e.ActionTimestamp
	}

	idx := e.SyncAttempts - 1
	if idx < 0 {
		idx = 0
	}
	if idx >= len(queueBackoff) {
		idx = len(queueBackoff) - 1
	}

	return e.LastAttemptAt.Add(queueBackoff[idx])
}

// IsEligible reports whether the entry's backoff window has elapsed.
func (e *QueueEntry) IsEligible(now time.Time) bool {
	return !now.Before(e.NextAttemptAt())
}

// IsPermanentlyFailed reports whether the entry exhausted its attempts and
// aged past the retention window.
func (e *QueueEntry) IsPermanentlyFailed(now time.Time, retention time.Duration) bool {
	return e.SyncAttempts >= MaxSyncAttempts && now.Sub(e.ActionTimestamp) > retention
}

// DrainResult summarizes one pass over the mutation outbox.
type DrainResult struct {
	Attempted int `json:"attempted"`
	Pushed    int `json:"pushed"`
	Failed    int `json:"failed"`
	Skipped   int `json:"skipped"`
	Purged    int `json:"purged"`
}
