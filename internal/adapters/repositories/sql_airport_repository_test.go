package repositories

import (
	"context"
	"errors"
	"flight-analytics-service/internal/domain"
	"flight-analytics-service/internal/ports"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestSQLAirportRepository_NilDB(t *testing.T) {
	repo := &SQLAirportRepository{}
	ctx := context.Background()

	_, err := repo.ExistingCodes(ctx)
	assert.ErrorContains(t, err, "DB is nil")

	err = repo.InsertBatch(ctx, []domain.Airport{{ID: 1}})
	assert.ErrorContains(t, err, "DB is nil")

	_, err = repo.List(ctx)
	assert.ErrorContains(t, err, "DB is nil")
}

func TestSQLAirportRepository_ExistingCodes(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"icao_code", "iata_code"}).
		AddRow("SCEL", "SCL").
		AddRow(nil, "LIM").
		AddRow("SPJC", "")
	mock.ExpectQuery("SELECT icao_code, iata_code").WillReturnRows(rows)

	set, err := NewSQLAirportRepository(db).ExistingCodes(context.Background())
	require.NoError(t, err)

	assert.Equal(t, map[string]struct{}{"SCEL": {}, "SPJC": {}}, set.ICAO)
	assert.Equal(t, map[string]struct{}{"SCL": {}, "LIM": {}}, set.IATA)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLAirportRepository_InsertBatch(t *testing.T) {
	airports := []domain.Airport{
		{ID: 1, Name: "One", City: "Santiago", Country: "Chile", IATACode: strPtr("SCL"), ICAOCode: strPtr("SCEL")},
		{ID: 2, Name: "Two", City: "Lima", Country: "Peru"},
	}

	tests := []struct {
		name      string
		setupMock func(mock sqlmock.Sqlmock)
		wantErr   error
	}{
		{
			name: "commits every row",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				prep := mock.ExpectPrepare("INSERT INTO airports")
				prep.ExpectExec().
					WithArgs(1, "One", "Santiago", "Chile", "SCL", "SCEL", nil, nil, nil, nil, nil, nil).
					WillReturnResult(sqlmock.NewResult(0, 1))
				prep.ExpectExec().
					WithArgs(2, "Two", "Lima", "Peru", nil, nil, nil, nil, nil, nil, nil, nil).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			},
		},
		{
			name: "unique violation rolls back",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				prep := mock.ExpectPrepare("INSERT INTO airports")
				prep.ExpectExec().WillReturnResult(sqlmock.NewResult(0, 1))
				prep.ExpectExec().WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "airports_icao_code_key"})
				mock.ExpectRollback()
			},
			wantErr: ports.ErrConstraintViolation,
		},
		{
			name: "begin failure",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin().WillReturnError(assert.AnError)
			},
			wantErr: assert.AnError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.setupMock(mock)

			err = NewSQLAirportRepository(db).InsertBatch(context.Background(), airports)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestSQLAirportRepository_InsertBatchEmpty(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, NewSQLAirportRepository(db).InsertBatch(context.Background(), nil))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLAirportRepository_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	cols := []string{
		"id", "name", "city", "country", "iata_code", "icao_code",
		"latitude", "longitude", "altitude", "utc_offset", "continent_code", "timezone",
	}
	rows := sqlmock.NewRows(cols).
		AddRow(1, "Arturo Merino Benitez", "Santiago", "Chile", "SCL", "SCEL", -33.39, -70.79, 474, -4.0, "S", "America/Santiago").
		AddRow(2, "Jorge Chavez", "Lima", "Peru", nil, nil, nil, nil, nil, nil, nil, nil)
	mock.ExpectQuery("FROM airports").WillReturnRows(rows)

	airports, err := NewSQLAirportRepository(db).List(context.Background())
	require.NoError(t, err)
	require.Len(t, airports, 2)

	scl := airports[0]
	assert.Equal(t, "SCL", *scl.IATACode)
	assert.Equal(t, 474, *scl.Altitude)
	assert.InDelta(t, -33.39, *scl.Latitude, 1e-9)
	assert.Equal(t, "America/Santiago", *scl.Timezone)

	lim := airports[1]
	assert.Nil(t, lim.IATACode)
	assert.Nil(t, lim.Altitude)
	assert.Nil(t, lim.UTCOffset)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLAirportRepository_ListQueryError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("FROM airports").WillReturnError(assert.AnError)

	_, err = NewSQLAirportRepository(db).List(context.Background())
	assert.ErrorIs(t, err, assert.AnError)
	assert.ErrorContains(t, err, "list airports: query airports table")
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		constraint bool
	}{
		{"unique violation", &pgconn.PgError{Code: "23505"}, true},
		{"foreign key violation", &pgconn.PgError{Code: "23503"}, true},
		{"check violation", &pgconn.PgError{Code: "23514"}, true},
		{"syntax error", &pgconn.PgError{Code: "42601"}, false},
		{"plain error", assert.AnError, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := classify(tt.err)
			assert.Equal(t, tt.constraint, errors.Is(err, ports.ErrConstraintViolation))
			assert.ErrorIs(t, err, tt.err)
		})
	}
}
