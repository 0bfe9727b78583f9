// ABOUTME: Tests for the PostgreSQL sync run repository
// ABOUTME: Covers admission conflicts and stale-run reconciliation via sqlmock

package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"feed-sync-engine/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSyncRunRepository_Create(t *testing.T) {
	connErr := errors.New("connection reset")

	tests := map[string]struct {
		execErr     error
		expectedErr error
	}{
		"insert succeeds": {},
		"unique violation means another run is active": {
			execErr:     &pq.Error{Code: "23505", Constraint: "one_active_run"},
			expectedErr: ErrActiveRunExists,
		},
		"other errors are wrapped": {
			execErr:     connErr,
			expectedErr: connErr,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			exec := mock.ExpectExec("INSERT INTO sync_runs")
			if tt.execErr != nil {
				exec.WillReturnError(tt.execErr)
			} else {
				exec.WillReturnResult(sqlmock.NewResult(0, 1))
			}

			repo := &PostgreSQLSyncRunRepository{db: db, logger: testLogger()}
			err = repo.Create(context.Background(), models.NewSyncRun())

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestSyncRunRepository_FailStaleActive(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	cutoff := time.Now().Add(-10 * time.Minute)
	mock.ExpectExec("UPDATE sync_runs").
		WithArgs(cutoff).
		WillReturnResult(sqlmock.NewResult(0, 2))

	repo := &PostgreSQLSyncRunRepository{db: db, logger: testLogger()}
	count, err := repo.FailStaleActive(context.Background(), cutoff)

	require.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}
