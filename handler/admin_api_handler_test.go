// ABOUTME: This file tests the admin HTTP API handler
// ABOUTME: Covers sync triggering, run lookup, queue drain, mutations, and health

package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"feed-sync-engine/mocks"
	"feed-sync-engine/models"
	"feed-sync-engine/repository"
	"feed-sync-engine/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type handlerFixture struct {
	sync    *mocks.MockSyncRunner
	queue   *mocks.MockQueueService
	deleter *mocks.MockArticleDeleter
	content *mocks.MockContentRefetcher
	health  *mocks.MockHealthReporter
	tokens  *mocks.MockTokenReporter
	mux     *http.ServeMux
}

func newHandlerFixture(ctrl *gomock.Controller) *handlerFixture {
	f := &handlerFixture{
		sync:    mocks.NewMockSyncRunner(ctrl),
		queue:   mocks.NewMockQueueService(ctrl),
		deleter: mocks.NewMockArticleDeleter(ctrl),
		content: mocks.NewMockContentRefetcher(ctrl),
		health:  mocks.NewMockHealthReporter(ctrl),
		tokens:  mocks.NewMockTokenReporter(ctrl),
	}
	h := NewAdminAPIHandler(f.sync, f.queue, f.deleter, f.content, f.health, f.tokens, nil)
	f.mux = h.Routes()
	return f
}

func (f *handlerFixture) do(method, path string, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	}
	rec := httptest.NewRecorder()
	f.mux.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestAdminAPIHandler_TriggerSync(t *testing.T) {
	t.Run("accepted run executes in background", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		f := newHandlerFixture(ctrl)

		run := models.NewSyncRun()
		executed := make(chan struct{})

		f.sync.EXPECT().StartRun(gomock.Any()).Return(run, nil)
		f.sync.EXPECT().Execute(gomock.Any(), run).DoAndReturn(
			func(_ any, _ *models.SyncRun) (*models.SyncRunResult, error) {
				close(executed)
				return &models.SyncRunResult{RunID: run.ID}, nil
			})

		rec := f.do(http.MethodPost, "/v1/sync", "")

		assert.Equal(t, http.StatusAccepted, rec.Code)

		var got models.SyncRun
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, run.ID, got.ID)
		assert.Equal(t, models.SyncRunPending, got.Status)

		select {
		case <-executed:
		case <-time.After(2 * time.Second):
			t.Fatal("background execution never started")
		}
	})

	t.Run("active run conflicts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		f := newHandlerFixture(ctrl)

		f.sync.EXPECT().StartRun(gomock.Any()).Return(nil, service.ErrSyncInProgress)

		rec := f.do(http.MethodPost, "/v1/sync", "")

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "SYNC_IN_PROGRESS", decodeError(t, rec).ErrorCode)
	})
}

func TestAdminAPIHandler_GetRun(t *testing.T) {
	runID := uuid.New()

	tests := map[string]struct {
		path           string
		setupMock      func(f *handlerFixture)
		expectedStatus int
		expectedCode   string
	}{
		"existing run returned": {
			path: "/v1/sync/runs/" + runID.String(),
			setupMock: func(f *handlerFixture) {
				run := models.NewSyncRun()
				run.ID = runID
				f.sync.EXPECT().GetRun(gomock.Any(), runID).Return(run, nil)
			},
			expectedStatus: http.StatusOK,
		},
		"malformed id rejected": {
			path:           "/v1/sync/runs/not-a-uuid",
			setupMock:      func(f *handlerFixture) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "INVALID_RUN_ID",
		},
		"unknown run not found": {
			path: "/v1/sync/runs/" + runID.String(),
			setupMock: func(f *handlerFixture) {
				f.sync.EXPECT().GetRun(gomock.Any(), runID).Return(nil, repository.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedCode:   "RUN_NOT_FOUND",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			f := newHandlerFixture(ctrl)
			tt.setupMock(f)

			rec := f.do(http.MethodGet, tt.path, "")

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedCode != "" {
				assert.Equal(t, tt.expectedCode, decodeError(t, rec).ErrorCode)
			}
		})
	}
}

func TestAdminAPIHandler_DrainQueue(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newHandlerFixture(ctrl)

	f.queue.EXPECT().Drain(gomock.Any()).Return(&models.DrainResult{
		Attempted: 3,
		Pushed:    2,
		Failed:    1,
	}, nil)

	rec := f.do(http.MethodPost, "/v1/queue/drain", "")

	assert.Equal(t, http.StatusOK, rec.Code)

	var result models.DrainResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, 3, result.Attempted)
	assert.Equal(t, 2, result.Pushed)
	assert.Equal(t, 1, result.Failed)
}

func TestAdminAPIHandler_ArticleAction(t *testing.T) {
	articleID := uuid.New()

	tests := map[string]struct {
		body           string
		setupMock      func(f *handlerFixture)
		expectedStatus int
		expectedCode   string
	}{
		"read action queued": {
			body: `{"action":"read"}`,
			setupMock: func(f *handlerFixture) {
				f.queue.EXPECT().Apply(gomock.Any(), articleID, models.ActionRead).Return(nil)
			},
			expectedStatus: http.StatusNoContent,
		},
		"unknown action rejected": {
			body: `{"action":"archive"}`,
			setupMock: func(f *handlerFixture) {
				f.queue.EXPECT().Apply(gomock.Any(), articleID, models.ActionType("archive")).
					Return(service.ErrUnknownAction)
			},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "UNKNOWN_ACTION",
		},
		"malformed body rejected": {
			body:           `{"action":`,
			setupMock:      func(f *handlerFixture) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "INVALID_BODY",
		},
		"missing article not found": {
			body: `{"action":"star"}`,
			setupMock: func(f *handlerFixture) {
				f.queue.EXPECT().Apply(gomock.Any(), articleID, models.ActionStar).
					Return(repository.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedCode:   "ARTICLE_NOT_FOUND",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			f := newHandlerFixture(ctrl)
			tt.setupMock(f)

			rec := f.do(http.MethodPost, "/v1/articles/"+articleID.String()+"/actions", tt.body)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedCode != "" {
				assert.Equal(t, tt.expectedCode, decodeError(t, rec).ErrorCode)
			}
		})
	}
}

func TestAdminAPIHandler_FetchContent(t *testing.T) {
	articleID := uuid.New()

	tests := map[string]struct {
		path           string
		fetchErr       error
		expectFetch    bool
		expectedStatus int
		expectedCode   string
	}{
		"extraction succeeds": {
			path:           "/v1/articles/" + articleID.String() + "/fetch-content",
			expectFetch:    true,
			expectedStatus: http.StatusNoContent,
		},
		"invalid id": {
			path:           "/v1/articles/not-a-uuid/fetch-content",
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "INVALID_ARTICLE_ID",
		},
		"unknown article": {
			path:           "/v1/articles/" + articleID.String() + "/fetch-content",
			fetchErr:       repository.ErrNotFound,
			expectFetch:    true,
			expectedStatus: http.StatusNotFound,
			expectedCode:   "ARTICLE_NOT_FOUND",
		},
		"parse budget exhausted": {
			path:           "/v1/articles/" + articleID.String() + "/fetch-content",
			fetchErr:       service.ErrParseBudgetExhausted,
			expectFetch:    true,
			expectedStatus: http.StatusUnprocessableEntity,
			expectedCode:   "PARSE_BUDGET_EXHAUSTED",
		},
		"origin failure": {
			path:           "/v1/articles/" + articleID.String() + "/fetch-content",
			fetchErr:       errors.New("origin timed out"),
			expectFetch:    true,
			expectedStatus: http.StatusBadGateway,
			expectedCode:   "FETCH_FAILED",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			f := newHandlerFixture(ctrl)

			if tt.expectFetch {
				f.content.EXPECT().FetchFullContentByID(gomock.Any(), articleID).Return(tt.fetchErr)
			}

			rec := f.do(http.MethodPost, tt.path, "")

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedCode != "" {
				assert.Equal(t, tt.expectedCode, decodeError(t, rec).ErrorCode)
			}
		})
	}
}

func TestAdminAPIHandler_DeleteArticle(t *testing.T) {
	articleID := uuid.New()

	tests := map[string]struct {
		setupMock      func(f *handlerFixture)
		expectedStatus int
	}{
		"deleted with tombstone": {
			setupMock: func(f *handlerFixture) {
				f.deleter.EXPECT().DeleteArticle(gomock.Any(), articleID).Return(nil)
			},
			expectedStatus: http.StatusNoContent,
		},
		"missing article not found": {
			setupMock: func(f *handlerFixture) {
				f.deleter.EXPECT().DeleteArticle(gomock.Any(), articleID).Return(repository.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
		"tombstone failure keeps row": {
			setupMock: func(f *handlerFixture) {
				f.deleter.EXPECT().DeleteArticle(gomock.Any(), articleID).
					Return(errors.New("tombstone write failed"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			f := newHandlerFixture(ctrl)
			tt.setupMock(f)

			rec := f.do(http.MethodDelete, "/v1/articles/"+articleID.String(), "")

			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}

func TestAdminAPIHandler_Health(t *testing.T) {
	tests := map[string]struct {
		report         *models.HealthReport
		expectedStatus int
	}{
		"healthy returns 200": {
			report:         &models.HealthReport{Status: models.HealthHealthy},
			expectedStatus: http.StatusOK,
		},
		"degraded still returns 200": {
			report:         &models.HealthReport{Status: models.HealthDegraded},
			expectedStatus: http.StatusOK,
		},
		"unhealthy returns 503": {
			report:         &models.HealthReport{Status: models.HealthUnhealthy},
			expectedStatus: http.StatusServiceUnavailable,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			f := newHandlerFixture(ctrl)
			f.health.EXPECT().Report(gomock.Any()).Return(tt.report)

			rec := f.do(http.MethodGet, "/v1/health", "")

			assert.Equal(t, tt.expectedStatus, rec.Code)

			var report models.HealthReport
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
			assert.Equal(t, tt.report.Status, report.Status)
		})
	}
}

func TestAdminAPIHandler_TokenStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newHandlerFixture(ctrl)

	f.tokens.EXPECT().Status(gomock.Any()).Return(models.TokenStatus{
		Exists:  true,
		IsValid: true,
	})

	rec := f.do(http.MethodGet, "/v1/token/status", "")

	assert.Equal(t, http.StatusOK, rec.Code)

	var status models.TokenStatus
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
	assert.True(t, status.Exists)
	assert.True(t, status.IsValid)
}

func TestAdminAPIHandler_MethodNotAllowed(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newHandlerFixture(ctrl)

	rec := f.do(http.MethodGet, "/v1/sync", "")

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
