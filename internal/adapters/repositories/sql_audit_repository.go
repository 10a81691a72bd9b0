package repositories

import (
	"context"
	"database/sql"
	"errors"
	"flight-analytics-service/internal/domain"
	"fmt"
)

// PostgreSQL-backed implementation of the AuditRepository port.
type SQLAuditRepository struct{ DB *sql.DB }

func NewSQLAuditRepository(db *sql.DB) *SQLAuditRepository {
	return &SQLAuditRepository{DB: db}
}

func (s *SQLAuditRepository) Record(ctx context.Context, e domain.AuditEntry) error {
	if s.DB == nil {
		return errors.New("sql audit repository: DB is nil")
	}

	query := `
	INSERT INTO audits (
		method, path, query_params, status_code, response_time_ms,
		client_ip, user_agent, timestamp, error_detail
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := s.DB.ExecContext(ctx, query,
		e.Method, e.Path, nullText(e.QueryParams), e.StatusCode, e.ResponseTimeMS,
		nullText(e.ClientIP), nullText(e.UserAgent), e.Timestamp.UTC(), nullText(e.ErrorDetail),
	)
	if err != nil {
		return fmt.Errorf("record audit: insert audits row: %w", err)
	}

	return nil
}
