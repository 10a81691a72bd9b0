package repositories

import (
	"context"
	"flight-analytics-service/internal/domain"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLAuditRepository_Record(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	ts := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	entry := domain.AuditEntry{
		Method:         "GET",
		Path:           "/airlines/occupancy",
		StatusCode:     200,
		ResponseTimeMS: 12,
		ClientIP:       "10.0.0.1",
		Timestamp:      ts,
	}

	mock.ExpectExec("INSERT INTO audits").
		WithArgs("GET", "/airlines/occupancy", nil, 200, int64(12), "10.0.0.1", nil, ts, nil).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, NewSQLAuditRepository(db).Record(context.Background(), entry))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLAuditRepository_RecordError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("INSERT INTO audits").WillReturnError(assert.AnError)

	err = NewSQLAuditRepository(db).Record(context.Background(), domain.AuditEntry{Timestamp: time.Now()})
	assert.ErrorIs(t, err, assert.AnError)
}
