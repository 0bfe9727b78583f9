// ABOUTME: This file implements the admin HTTP API for the sync engine
// ABOUTME: Sync triggering, run status, queue drain, mutations, and health

package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"feed-sync-engine/models"
	"feed-sync-engine/repository"
	"feed-sync-engine/service"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

//go:generate mockgen -source=admin_api_handler.go -destination=../mocks/mock_handler.go -package=mocks

// SyncRunner starts and reports sync runs.
type SyncRunner interface {
	StartRun(ctx context.Context) (*models.SyncRun, error)
	Execute(ctx context.Context, run *models.SyncRun) (*models.SyncRunResult, error)
	GetRun(ctx context.Context, id uuid.UUID) (*models.SyncRun, error)
}

// QueueService exposes the mutation queue to the API.
type QueueService interface {
	Apply(ctx context.Context, articleID uuid.UUID, action models.ActionType) error
	Drain(ctx context.Context) (*models.DrainResult, error)
}

// ArticleDeleter removes articles with tombstone tracking.
type ArticleDeleter interface {
	DeleteArticle(ctx context.Context, articleID uuid.UUID) error
}

// ContentRefetcher runs on-demand full-content extraction for one article.
type ContentRefetcher interface {
	FetchFullContentByID(ctx context.Context, id uuid.UUID) error
}

// HealthReporter produces the aggregate health report.
type HealthReporter interface {
	Report(ctx context.Context) *models.HealthReport
}

// TokenReporter reports credential state without refreshing.
type TokenReporter interface {
	Status(ctx context.Context) models.TokenStatus
}

// ErrorResponse is the sanitized error body. It never carries tokens,
// vault paths, or upstream response bodies.
type ErrorResponse struct {
	Status    string    `json:"status"`
	ErrorCode string    `json:"error_code"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// AdminAPIHandler serves the admin endpoints.
type AdminAPIHandler struct {
	sync    SyncRunner
	queue   QueueService
	deleter ArticleDeleter
	content ContentRefetcher
	health  HealthReporter
	tokens  TokenReporter
	logger  *slog.Logger
}

// NewAdminAPIHandler creates the admin API handler.
func NewAdminAPIHandler(
	sync SyncRunner,
	queue QueueService,
	deleter ArticleDeleter,
	content ContentRefetcher,
	health HealthReporter,
	tokens TokenReporter,
	logger *slog.Logger,
) *AdminAPIHandler {
	if logger == nil {
		logger = slog.Default()
	}

	return &AdminAPIHandler{
		sync:    sync,
		queue:   queue,
		deleter: deleter,
		content: content,
		health:  health,
		tokens:  tokens,
		logger:  logger,
	}
}

// Routes returns the admin API mux.
func (h *AdminAPIHandler) Routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /v1/sync", h.handleTriggerSync)
	mux.HandleFunc("GET /v1/sync/runs/{id}", h.handleGetRun)
	mux.HandleFunc("POST /v1/queue/drain", h.handleDrainQueue)
	mux.HandleFunc("POST /v1/articles/{id}/actions", h.handleArticleAction)
	mux.HandleFunc("POST /v1/articles/{id}/fetch-content", h.handleFetchContent)
	mux.HandleFunc("DELETE /v1/articles/{id}", h.handleDeleteArticle)
	mux.HandleFunc("GET /v1/health", h.handleHealth)
	mux.HandleFunc("GET /v1/token/status", h.handleTokenStatus)
	mux.Handle("GET /metrics", promhttp.Handler())

	return mux
}

// handleTriggerSync accepts a sync run and executes it in the background.
// A second trigger while a run is active returns 409.
func (h *AdminAPIHandler) handleTriggerSync(w http.ResponseWriter, r *http.Request) {
	run, err := h.sync.StartRun(r.Context())
	if err != nil {
		if errors.Is(err, service.ErrSyncInProgress) {
			h.respondWithError(w, "SYNC_IN_PROGRESS", "a sync run is already in progress", http.StatusConflict)
			return
		}
		h.logger.Error("Failed to start sync run", "error", err)
		h.respondWithError(w, "SYNC_START_FAILED", "failed to start sync run", http.StatusInternalServerError)
		return
	}

	// The request context dies with the response; the run keeps going.
	go func() {
		if _, err := h.sync.Execute(context.Background(), run); err != nil {
			h.logger.Error("Background sync run failed", "run_id", run.ID, "error", err)
		}
	}()

	h.respondWithJSON(w, http.StatusAccepted, run)
}

func (h *AdminAPIHandler) handleGetRun(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		h.respondWithError(w, "INVALID_RUN_ID", "run ID must be a UUID", http.StatusBadRequest)
		return
	}

	run, err := h.sync.GetRun(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			h.respondWithError(w, "RUN_NOT_FOUND", "sync run not found", http.StatusNotFound)
			return
		}
		h.logger.Error("Failed to load sync run", "run_id", id, "error", err)
		h.respondWithError(w, "RUN_LOOKUP_FAILED", "failed to load sync run", http.StatusInternalServerError)
		return
	}

	h.respondWithJSON(w, http.StatusOK, run)
}

func (h *AdminAPIHandler) handleDrainQueue(w http.ResponseWriter, r *http.Request) {
	result, err := h.queue.Drain(r.Context())
	if err != nil {
		h.logger.Error("Queue drain failed", "error", err)
		h.respondWithError(w, "DRAIN_FAILED", "failed to drain mutation queue", http.StatusInternalServerError)
		return
	}

	h.respondWithJSON(w, http.StatusOK, result)
}

// articleActionRequest is the body of POST /v1/articles/{id}/actions.
type articleActionRequest struct {
	Action models.ActionType `json:"action"`
}

func (h *AdminAPIHandler) handleArticleAction(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		h.respondWithError(w, "INVALID_ARTICLE_ID", "article ID must be a UUID", http.StatusBadRequest)
		return
	}

	var req articleActionRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 4096)).Decode(&req); err != nil {
		h.respondWithError(w, "INVALID_BODY", "request body must be JSON with an action field", http.StatusBadRequest)
		return
	}

	if err := h.queue.Apply(r.Context(), id, req.Action); err != nil {
		switch {
		case errors.Is(err, service.ErrUnknownAction):
			h.respondWithError(w, "UNKNOWN_ACTION", "action must be read, unread, star, or unstar", http.StatusBadRequest)
		case errors.Is(err, repository.ErrNotFound):
			h.respondWithError(w, "ARTICLE_NOT_FOUND", "article not found", http.StatusNotFound)
		default:
			h.logger.Error("Failed to apply mutation", "article_id", id, "error", err)
			h.respondWithError(w, "MUTATION_FAILED", "failed to apply mutation", http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// handleFetchContent runs extraction synchronously; the fetch is already
// bounded by the extraction timeout.
func (h *AdminAPIHandler) handleFetchContent(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		h.respondWithError(w, "INVALID_ARTICLE_ID", "article ID must be a UUID", http.StatusBadRequest)
		return
	}

	if err := h.content.FetchFullContentByID(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			h.respondWithError(w, "ARTICLE_NOT_FOUND", "article not found", http.StatusNotFound)
		case errors.Is(err, service.ErrParseBudgetExhausted):
			h.respondWithError(w, "PARSE_BUDGET_EXHAUSTED", "article failed extraction too many times", http.StatusUnprocessableEntity)
		default:
			h.logger.Error("On-demand content fetch failed", "article_id", id, "error", err)
			h.respondWithError(w, "FETCH_FAILED", "failed to fetch article content", http.StatusBadGateway)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *AdminAPIHandler) handleDeleteArticle(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		h.respondWithError(w, "INVALID_ARTICLE_ID", "article ID must be a UUID", http.StatusBadRequest)
		return
	}

	if err := h.deleter.DeleteArticle(r.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			h.respondWithError(w, "ARTICLE_NOT_FOUND", "article not found", http.StatusNotFound)
			return
		}
		h.logger.Error("Failed to delete article", "article_id", id, "error", err)
		h.respondWithError(w, "DELETE_FAILED", "failed to delete article", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// handleHealth serves the aggregate report. Degraded stays 200 so
// orchestrators only restart on unhealthy.
func (h *AdminAPIHandler) handleHealth(w http.ResponseWriter, r *http.Request) {
	report := h.health.Report(r.Context())

	status := http.StatusOK
	if report.Status == models.HealthUnhealthy {
		status = http.StatusServiceUnavailable
	}

	h.respondWithJSON(w, status, report)
}

func (h *AdminAPIHandler) handleTokenStatus(w http.ResponseWriter, r *http.Request) {
	h.respondWithJSON(w, http.StatusOK, h.tokens.Status(r.Context()))
}

func (h *AdminAPIHandler) respondWithJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("Failed to encode response", "error", err)
	}
}

func (h *AdminAPIHandler) respondWithError(w http.ResponseWriter, code, message string, status int) {
	h.respondWithJSON(w, status, ErrorResponse{
		Status:    "error",
		ErrorCode: code,
		Message:   message,
		Timestamp: time.Now(),
	})
}
