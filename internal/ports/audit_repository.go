package ports

import (
	"context"
	"flight-analytics-service/internal/domain"
)

// Port: sink for request audit entries.
type AuditRepository interface {
	Record(ctx context.Context, entry domain.AuditEntry) error
}
