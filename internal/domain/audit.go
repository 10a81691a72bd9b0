package domain

import "time"

// One served HTTP request, persisted for auditing.
type AuditEntry struct {
	Method         string
	Path           string
	QueryParams    string
	StatusCode     int
	ResponseTimeMS int64
	ClientIP       string
	UserAgent      string
	Timestamp      time.Time
	ErrorDetail    string
}
