package handlers

import (
	"context"
	"net/http"
)

type errDetailKey struct{}

// ErrorDetail is a per-request slot the audit middleware reads after the
// handler returns.
type ErrorDetail struct{ Msg string }

// WithErrorDetail attaches an empty slot to ctx.
func WithErrorDetail(ctx context.Context) (context.Context, *ErrorDetail) {
	d := &ErrorDetail{}
	return context.WithValue(ctx, errDetailKey{}, d), d
}

func setErrorDetail(r *http.Request, msg string) {
	if d, ok := r.Context().Value(errDetailKey{}).(*ErrorDetail); ok {
		d.Msg = msg
	}
}
