// ABOUTME: This file defines domain models for synced feeds and folders
// ABOUTME: Represents provider subscription data upserted by the sync run

package models

import (
	"time"

	"github.com/google/uuid"
)

// Folder represents a provider folder/label, upserted by provider ID.
type Folder struct {
	ID         uuid.UUID `json:"id" db:"id"`
	ProviderID string    `json:"provider_id" db:"provider_id"`
	Name       string    `json:"name" db:"name"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}

// Feed represents a synced subscription, upserted by provider ID.
type Feed struct {
	ID            uuid.UUID  `json:"id" db:"id"`
	ProviderID    string     `json:"provider_id" db:"provider_id"`
	FolderID      *uuid.UUID `json:"folder_id,omitempty" db:"folder_id"`
	Title         string     `json:"title" db:"title"`
	FeedURL       string     `json:"feed_url" db:"feed_url"`
	SiteURL       string     `json:"site_url" db:"site_url"`
	UnreadCount   int        `json:"unread_count" db:"unread_count"`
	IsPartialFeed bool       `json:"is_partial_feed" db:"is_partial_feed"`
	SyncedAt      time.Time  `json:"synced_at" db:"synced_at"`
	CreatedAt     time.Time  `json:"created_at" db:"created_at"`
}

// ProviderSubscription represents a single subscription from the provider's
// subscription-list endpoint.
type ProviderSubscription struct {
	ProviderID string             `json:"id"`
	Title      string             `json:"title"`
	Categories []ProviderCategory `json:"categories"`
	URL        string             `json:"url"`
	HTMLURL    string             `json:"htmlUrl"`
	IconURL    string             `json:"iconUrl"`
}

// ProviderCategory represents a folder/label entry on a subscription.
type ProviderCategory struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// ProviderUnreadCount represents one entry of the provider's unread-count
// endpoint. Stream IDs cover both feeds and folders; feed entries start with
// "feed/".
type ProviderUnreadCount struct {
	StreamID string `json:"id"`
	Count    int    `json:"count"`
}

// NewFolder creates a folder from a provider category.
func NewFolder(category ProviderCategory) *Folder {
	return &Folder{
		ID:         uuid.New(),
		ProviderID: category.ID,
		Name:       category.Label,
		CreatedAt:  time.Now(),
	}
}

// NewFeedFromProvider creates a feed from provider subscription data.
func NewFeedFromProvider(sub ProviderSubscription, folderID *uuid.UUID) *Feed {
	now := time.Now()

	return &Feed{
		ID:         uuid.New(),
		ProviderID: sub.ProviderID,
		FolderID:   folderID,
		Title:      sub.Title,
		FeedURL:    sub.URL,
		SiteURL:    sub.HTMLURL,
		SyncedAt:   now,
		CreatedAt:  now,
	}
}
