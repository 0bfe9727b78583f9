// ABOUTME: This file defines domain models for article metadata and content
// ABOUTME: Represents stream items from the provider and local read/star state

package models

import (
	"time"

	"github.com/google/uuid"
)

// Provider state tags carried on stream items.
const (
	StateTagRead    = "user/-/state/com.google/read"
	StateTagStarred = "user/-/state/com.google/starred"
)

// Article represents a synced article. Remote fields are written by the sync
// run; read/star fields are written locally first and pushed through the
// mutation queue.
type Article struct {
	ID              uuid.UUID  `json:"id" db:"id"`
	FeedID          uuid.UUID  `json:"feed_id" db:"feed_id"`
	ProviderID      string     `json:"provider_id" db:"provider_id"`
	URL             string     `json:"url" db:"url"`
	Title           string     `json:"title" db:"title"`
	Author          string     `json:"author" db:"author"`
	Content         string     `json:"content" db:"content"`
	FullContent     string     `json:"full_content,omitempty" db:"full_content"`
	IsRead          bool       `json:"is_read" db:"is_read"`
	IsStarred       bool       `json:"is_starred" db:"is_starred"`
	PublishedAt     *time.Time `json:"published_at" db:"published_at"`
	FetchedAt       time.Time  `json:"fetched_at" db:"fetched_at"`
	ParsedAt        *time.Time `json:"parsed_at,omitempty" db:"parsed_at"`
	ParseFailed     bool       `json:"parse_failed" db:"parse_failed"`
	ParseAttempts   int        `json:"parse_attempts" db:"parse_attempts"`
	LastLocalUpdate *time.Time `json:"last_local_update,omitempty" db:"last_local_update"`
	LastSyncUpdate  time.Time  `json:"last_sync_update" db:"last_sync_update"`

	// Temporary field for feed resolution during a sync run, not persisted.
	OriginStreamID string `json:"-" db:"-"`
}

// ProviderStreamResponse represents the provider's stream-contents response.
type ProviderStreamResponse struct {
	ID           string               `json:"id"`
	Updated      int64                `json:"updated"`
	Items        []ProviderStreamItem `json:"items"`
	Continuation string               `json:"continuation,omitempty"`
}

// ProviderStreamItem represents a single article item from the provider.
type ProviderStreamItem struct {
	ID         string          `json:"id"`
	Title      string          `json:"title"`
	Published  int64           `json:"published"`
	Updated    int64           `json:"updated"`
	Author     string          `json:"author"`
	Canonical  []ProviderLink  `json:"canonical"`
	Origin     ProviderOrigin  `json:"origin"`
	Summary    ProviderSummary `json:"summary"`
	Categories []string        `json:"categories"`
}

// ProviderLink represents a link entry in a stream item.
type ProviderLink struct {
	Href string `json:"href"`
	Type string `json:"type,omitempty"`
}

// ProviderOrigin represents the source feed of a stream item.
type ProviderOrigin struct {
	StreamID string `json:"streamId"`
	Title    string `json:"title"`
	HTMLURL  string `json:"htmlUrl"`
}

// ProviderSummary represents the delivered article body.
type ProviderSummary struct {
	Content   string `json:"content"`
	Direction string `json:"direction"`
}

// NewArticleFromStreamItem creates an article from a provider stream item.
// The feed ID is resolved by the caller from the item's origin stream.
func NewArticleFromStreamItem(item ProviderStreamItem, feedID uuid.UUID) *Article {
	now := time.Now()

	articleURL := ""
	if len(item.Canonical) > 0 {
		articleURL = item.Canonical[0].Href
	}

	var publishedAt *time.Time
	if item.Published > 0 {
		published := time.Unix(item.Published, 0)
		publishedAt = &published
	}

	return &Article{
		ID:             uuid.New(),
		FeedID:         feedID,
		ProviderID:     item.ID,
		URL:            articleURL,
		Title:          item.Title,
		Author:         item.Author,
		Content:        item.Summary.Content,
		IsRead:         item.HasCategory(StateTagRead),
		IsStarred:      item.HasCategory(StateTagStarred),
		PublishedAt:    publishedAt,
		FetchedAt:      now,
		LastSyncUpdate: now,
		OriginStreamID: item.Origin.StreamID,
	}
}

// HasCategory reports whether the stream item carries the given state tag.
func (i ProviderStreamItem) HasCategory(tag string) bool {
	for _, category := range i.Categories {
		if category == tag {
			return true
		}
	}
	return false
}
