// ABOUTME: This file defines the domain model for locally purged articles
// ABOUTME: Supports the anti-resurrection filter applied during sync runs

package models

import (
	"time"

	"github.com/google/uuid"
)

// DeletedArticleRecord marks an article the user purged locally so a later
// sync pass does not reimport it. Records are only written for read and
// unstarred articles.
type DeletedArticleRecord struct {
	ProviderID string    `json:"provider_id" db:"provider_id"`
	FeedID     uuid.UUID `json:"feed_id" db:"feed_id"`
	WasRead    bool      `json:"was_read" db:"was_read"`
	DeletedAt  time.Time `json:"deleted_at" db:"deleted_at"`
}

// NewDeletedArticleRecord creates a deletion record for a purged article.
func NewDeletedArticleRecord(providerID string, feedID uuid.UUID, wasRead bool) *DeletedArticleRecord {
	return &DeletedArticleRecord{
		ProviderID: providerID,
		FeedID:     feedID,
		WasRead:    wasRead,
		DeletedAt:  time.Now(),
	}
}
