// ABOUTME: This file defines domain models for sync run status tracking
// ABOUTME: Handles the pending/running/completed/failed state machine

package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// SyncRunStatus is the lifecycle state of a sync run.
type SyncRunStatus string

const (
	SyncRunPending   SyncRunStatus = "pending"
	SyncRunRunning   SyncRunStatus = "running"
	SyncRunCompleted SyncRunStatus = "completed"
	SyncRunFailed    SyncRunStatus = "failed"
)

// Progress checkpoints of a sync run, in execution order.
const (
	ProgressTokenAcquired   = 10
	ProgressSubscriptions   = 20
	ProgressUnreadCounts    = 30
	ProgressFoldersUpserted = 40
	ProgressFeedsUpserted   = 60
	ProgressStreamFetched   = 70
	ProgressArticlesStored  = 90
	ProgressStatsRefreshed  = 95
	ProgressDone            = 100
)

// SyncRun represents one persisted sync run. Progress never decreases; a
// failed run carries a non-empty error, a completed run has progress 100.
type SyncRun struct {
	ID         uuid.UUID     `json:"id" db:"id"`
	Status     SyncRunStatus `json:"status" db:"status"`
	Progress   int           `json:"progress" db:"progress"`
	Message    string        `json:"message,omitempty" db:"message"`
	Error      string        `json:"error,omitempty" db:"error"`
	StartedAt  time.Time     `json:"started_at" db:"started_at"`
	FinishedAt *time.Time    `json:"finished_at,omitempty" db:"finished_at"`
}

// SyncRunResult summarizes the work done by a completed run.
type SyncRunResult struct {
	RunID            uuid.UUID     `json:"run_id"`
	FoldersUpserted  int           `json:"folders_upserted"`
	FeedsUpserted    int           `json:"feeds_upserted"`
	ArticlesFetched  int           `json:"articles_fetched"`
	ArticlesSkipped  int           `json:"articles_skipped"`
	ArticlesUpserted int           `json:"articles_upserted"`
	Duration         time.Duration `json:"duration"`
}

// NewSyncRun creates a pending sync run.
func NewSyncRun() *SyncRun {
	return &SyncRun{
		ID:        uuid.New(),
		Status:    SyncRunPending,
		StartedAt: time.Now(),
	}
}

// IsTerminal reports whether the run reached a terminal state.
func (r *SyncRun) IsTerminal() bool {
	return r.Status == SyncRunCompleted || r.Status == SyncRunFailed
}

// Advance moves progress forward. Progress is monotonic: a lower checkpoint
// is ignored rather than applied.
func (r *SyncRun) Advance(progress int, message string) {
	if progress > r.Progress {
		r.Progress = progress
	}
	r.Message = message
}

// Complete marks the run completed at full progress.
func (r *SyncRun) Complete(message string) {
	now := time.Now()
	r.Status = SyncRunCompleted
	r.Progress = ProgressDone
	r.Message = message
	r.FinishedAt = &now
}

// Fail marks the run failed, capturing the error. Progress is left at the
// last reached checkpoint since committed upserts are not rolled back.
func (r *SyncRun) Fail(err error) {
	now := time.Now()
	r.Status = SyncRunFailed
	r.Error = fmt.Sprintf("%v", err)
	r.FinishedAt = &now
}
